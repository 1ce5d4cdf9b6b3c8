package ports

import "context"

// Tracer is the entry point for recording sync progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start opens a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one unit of recorded work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
