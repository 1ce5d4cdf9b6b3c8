package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnsync/internal/adapters/logger"
	"go.trai.ch/slnsync/internal/core/ports"
)

const NodeID graft.ID = "adapter.verifier"

func init() {
	graft.Register(graft.Node[ports.BuildVerifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildVerifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewVerifier(log), nil
		},
	})
}
