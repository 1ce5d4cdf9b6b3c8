package graph

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnsync/internal/core/ports"
)

const FactoryNodeID graft.ID = "adapter.graph.factory"

func init() {
	// The provider is rebuilt per sync from the active settings, so the node
	// exposes a factory rather than a provider instance.
	graft.Register(graft.Node[ports.ProviderFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProviderFactory, error) {
			return func(snapshotPath string) ports.GraphProvider {
				return NewSnapshotProvider(snapshotPath)
			}, nil
		},
	})
}
