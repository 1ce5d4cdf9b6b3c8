package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slnsync/internal/adapters/logger"
	"go.trai.ch/slnsync/internal/core/ports"
)

const WriterNodeID graft.ID = "adapter.fs.writer"

func init() {
	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactWriter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}
