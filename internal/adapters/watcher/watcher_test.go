package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/slnsync/internal/adapters/watcher"
)

func waitForEvent(t *testing.T, events <-chan string, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case path, ok := <-events:
			require.True(t, ok, "event channel closed before %q arrived", want)
			if path == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event %q", want)
		}
	}
}

func TestWatcher_EmitsChangedPath(t *testing.T) {
	root := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))

	path := filepath.Join(root, "Player.cs")
	require.NoError(t, os.WriteFile(path, []byte("class Player {}"), 0o600))

	waitForEvent(t, w.Events(), path)
}

func TestWatcher_PicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))

	subDir := filepath.Join(root, "Scripts")
	require.NoError(t, os.Mkdir(subDir, 0o750))
	waitForEvent(t, w.Events(), subDir)

	path := filepath.Join(subDir, "Enemy.cs")
	require.NoError(t, os.WriteFile(path, []byte("class Enemy {}"), 0o600))
	waitForEvent(t, w.Events(), path)
}

func TestWatcher_StopClosesEventChannel(t *testing.T) {
	root := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	require.NoError(t, w.Stop())

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event channel not closed after Stop")
		}
	}
}
