// Package shell runs the external build-verification subprocess.
package shell

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/slnsync/internal/core/domain"
	"go.trai.ch/slnsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildVerifier = (*Verifier)(nil)

// Verifier implements ports.BuildVerifier using os/exec. Subprocess output is
// streamed to the logger.
type Verifier struct {
	log ports.Logger
}

// NewVerifier creates a Verifier.
func NewVerifier(log ports.Logger) *Verifier {
	return &Verifier{log: log}
}

// Verify executes command with root as working directory.
func (v *Verifier) Verify(ctx context.Context, root string, command []string) error {
	if len(command) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // Command comes from configuration
	cmd.Dir = root
	cmd.Stdout = &logWriter{log: v.log, level: "info"}
	cmd.Stderr = &logWriter{log: v.log, level: "warn"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(err, domain.ErrVerificationFailed.Error())
		return zerr.With(zerr.With(wrapped, "command", strings.Join(command, " ")), "exit_code", exitCode)
	}
	return nil
}

// logWriter forwards subprocess output lines to the logger.
type logWriter struct {
	log   ports.Logger
	level string
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		if w.level == "warn" {
			w.log.Warn(line)
		} else {
			w.log.Info(line)
		}
	}
	return len(p), nil
}
