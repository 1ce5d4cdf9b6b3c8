package domain

// ResponseFileData is the structured content of one compiler response file.
// Errors are non-fatal: a file that failed to parse reports them and
// contributes nothing to the merged compiler arguments.
type ResponseFileData struct {
	Defines            []string
	FullPathReferences []string
	OtherArguments     map[string][]string
	Unsafe             bool
	Errors             []string
}

// Valid reports whether the file parsed cleanly and may contribute arguments.
func (d ResponseFileData) Valid() bool {
	return len(d.Errors) == 0
}
