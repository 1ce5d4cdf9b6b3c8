// Package watcher implements file system watching for continuous syncing.
package watcher

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// shouldSkipDirectories are directories that are never watched.
var shouldSkipDirectories = map[string]bool{
	".git":    true,
	".jj":     true,
	"Library": true,
	"Temp":    true,
}

const eventChannelBuffer = 100

// Watcher watches a project tree recursively and emits changed paths.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan string
}

// NewWatcher creates a file system watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan string, eventChannelBuffer),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable directories rather than failing the watch.
			return nil //nolint:nilerr // Intentional
		}
		if !d.IsDir() {
			return nil
		}
		if shouldSkipDirectories[d.Name()] {
			return fs.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
	if err != nil {
		return err
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases its resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns the channel of changed paths. It is closed when the watcher
// stops.
func (w *Watcher) Events() <-chan string {
	return w.events
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// New directories must be added to the watch set as they appear.
			if event.Op.Has(fsnotify.Create) {
				w.addIfDirectory(event.Name)
			}
			select {
			case w.events <- event.Name:
			default:
				// Drop events under backpressure; the next sync pass walks
				// the full snapshot anyway.
			}
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) addIfDirectory(path string) {
	if shouldSkipDirectories[filepath.Base(path)] {
		return
	}
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil //nolint:nilerr // Intentional
		}
		if shouldSkipDirectories[d.Name()] {
			return fs.SkipDir
		}
		return w.fsWatcher.Add(p)
	})
}
