package ports

import "context"

// Watcher observes a project tree and emits changed paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching root recursively.
	Start(ctx context.Context, root string) error
	// Stop releases the watcher's resources.
	Stop() error
	// Events returns the channel of changed paths. It closes when the
	// watcher stops.
	Events() <-chan string
}

// ProviderFactory builds a graph provider for one settings snapshot.
type ProviderFactory func(snapshotPath string) GraphProvider
