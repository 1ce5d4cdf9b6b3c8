// Package progrock provides the Progrock implementation of the tracer.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/slnsync/internal/core/ports"
)

// Recorder implements ports.Tracer using the progrock library. Every span
// becomes one vertex on the tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() ports.Tracer {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start opens a vertex named after the span.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span wraps one *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// End completes the vertex, carrying any recorded error.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

// RecordError stores the error reported when the vertex completes.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute writes the pair to the vertex output stream.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}
