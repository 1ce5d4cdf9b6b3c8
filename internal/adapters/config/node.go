package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.settings_store"

// defaultSettingsFile is used when SLNSYNC_CONFIG is unset.
const defaultSettingsFile = "slnsync.yaml"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Store, error) {
			path := os.Getenv("SLNSYNC_CONFIG")
			if path == "" {
				path = defaultSettingsFile
			}
			return NewStore(path)
		},
	})
}
