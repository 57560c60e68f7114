package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcbatch/internal/core/ports"
)

// NodeID is the graft identifier of the config loader.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})
}
