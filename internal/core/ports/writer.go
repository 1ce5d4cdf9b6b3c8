package ports

// ArtifactWriter persists rendered artifacts with write-if-changed semantics.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ArtifactWriter interface {
	// WriteIfChanged compares content against the file at path and writes only
	// on difference. It reports whether a write happened. A read failure
	// during comparison is treated as a difference.
	WriteIfChanged(path, content string) (bool, error)
}
