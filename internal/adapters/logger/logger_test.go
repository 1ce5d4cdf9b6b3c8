package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slnsync/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Info("wrote Projects/Core/Core.csproj")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "wrote Projects/Core/Core.csproj")
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Warn("response file csc.rsp: unbalanced quotes")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "csc.rsp")
}

func TestLogger_Error(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(zerr.New("snapshot unreadable"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "snapshot unreadable")
}
