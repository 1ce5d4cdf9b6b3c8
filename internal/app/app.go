// Package app implements the application layer for slnsync.
package app

import (
	"context"
	"time"

	"go.trai.ch/slnsync/internal/adapters/config"
	"go.trai.ch/slnsync/internal/adapters/watcher" //nolint:depguard // Debouncer is wired in the app layer
	"go.trai.ch/slnsync/internal/core/ports"
	"go.trai.ch/slnsync/internal/engine/hooks"
	"go.trai.ch/slnsync/internal/engine/synchronizer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App wires the synchronizer to its collaborators. A fresh engine is built
// per call so that every sync operates on the settings current at its start.
type App struct {
	store           *config.Store
	providerFactory ports.ProviderFactory
	writer          ports.ArtifactWriter
	verifier        ports.BuildVerifier
	tracer          ports.Tracer
	log             ports.Logger
	hooks           *hooks.Chain
	watcher         ports.Watcher
}

// New creates an App instance.
func New(
	store *config.Store,
	providerFactory ports.ProviderFactory,
	writer ports.ArtifactWriter,
	verifier ports.BuildVerifier,
	tracer ports.Tracer,
	log ports.Logger,
	chain *hooks.Chain,
	w ports.Watcher,
) *App {
	return &App{
		store:           store,
		providerFactory: providerFactory,
		writer:          writer,
		verifier:        verifier,
		tracer:          tracer,
		log:             log,
		hooks:           chain,
		watcher:         w,
	}
}

// Hooks exposes the post-generation hook chain so process startup can
// register transforms before the first sync.
func (a *App) Hooks() *hooks.Chain {
	return a.hooks
}

// SetSettingsPath points the settings store at a different file and reloads.
func (a *App) SetSettingsPath(path string) error {
	a.store.SetPath(path)
	return a.store.Reload()
}

// Sync performs an unconditional full regeneration.
func (a *App) Sync(ctx context.Context) {
	a.newSynchronizer().Sync(ctx)
}

// SyncIfNeeded evaluates the change set and syncs the implicated subset. It
// reports whether any artifact was written.
func (a *App) SyncIfNeeded(ctx context.Context, affected, reimported []string) bool {
	return a.newSynchronizer().SyncIfNeeded(ctx, affected, reimported)
}

// CheckNeeded reports whether the change set would trigger a sync, without
// doing any work.
func (a *App) CheckNeeded(affected, reimported []string) bool {
	return a.newSynchronizer().SyncNeeded(affected, reimported)
}

// Watch performs a full sync and then keeps the artifacts up to date until
// the context is canceled. Change bursts are debounced; syncs run strictly
// one at a time.
func (a *App) Watch(ctx context.Context) error {
	a.Sync(ctx)

	settings := a.store.Current()
	if err := a.watcher.Start(ctx, settings.ProjectRoot); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() { _ = a.watcher.Stop() }()

	changes := make(chan []string, 1)
	window := time.Duration(settings.DebounceMillis) * time.Millisecond
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		select {
		case changes <- paths:
		case <-ctx.Done():
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-changes:
				a.SyncIfNeeded(ctx, paths, nil)
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				debouncer.Flush()
				return nil
			case path, ok := <-a.watcher.Events():
				if !ok {
					return nil
				}
				debouncer.Add(path)
			}
		}
	})

	return g.Wait()
}

func (a *App) newSynchronizer() *synchronizer.Synchronizer {
	settings := a.store.Current()
	provider := a.providerFactory(settings.GraphSnapshotPath())
	return synchronizer.New(settings, provider, a.writer, a.verifier, a.tracer, a.log, a.hooks)
}
