package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnsync/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/slnsync/internal/adapters/fs"
	"go.trai.ch/slnsync/internal/adapters/graph"
	"go.trai.ch/slnsync/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/slnsync/internal/adapters/shell"
	"go.trai.ch/slnsync/internal/adapters/telemetry"
	"go.trai.ch/slnsync/internal/adapters/watcher"
	"go.trai.ch/slnsync/internal/core/ports"
	"go.trai.ch/slnsync/internal/engine/hooks"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			graph.FactoryNodeID,
			fs.WriterNodeID,
			shell.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[*config.Store](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.ProviderFactory](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ArtifactWriter](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.BuildVerifier](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, factory, writer, verifier, tracer, log, hooks.NewChain(), w), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[*config.Store](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(application, log, store), nil
}
