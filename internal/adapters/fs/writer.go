// Package fs provides the write-if-changed artifact writer.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/slnsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactWriter = (*Writer)(nil)

// Writer persists rendered artifacts, skipping writes whose content already
// matches the file on disk.
type Writer struct {
	log ports.Logger
}

// NewWriter creates a Writer.
func NewWriter(log ports.Logger) *Writer {
	return &Writer{log: log}
}

// WriteIfChanged compares content against the file at path and writes only on
// difference. A read failure during comparison is logged and conservatively
// treated as a difference.
func (w *Writer) WriteIfChanged(path, content string) (bool, error) {
	rendered := []byte(content)

	existing, err := os.ReadFile(path) //nolint:gosec // Path is derived from the project root
	switch {
	case err == nil:
		if len(existing) == len(rendered) && xxhash.Sum64(existing) == xxhash.Sum64(rendered) {
			return false, nil
		}
	case errors.Is(err, iofs.ErrNotExist):
		// First write for this artifact.
	default:
		w.log.Warn("failed to read " + path + " for comparison, assuming changed")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to create artifact directory"), "path", path)
	}
	if err := os.WriteFile(path, rendered, 0o644); err != nil { //nolint:gosec // Descriptors are world-readable by design
		return false, zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", path)
	}
	return true, nil
}
