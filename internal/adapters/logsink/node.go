package logsink

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcbatch/internal/core/ports"
)

// NodeID is the unique identifier for the log sink Graft node.
const NodeID graft.ID = "adapter.logsink"

func init() {
	graft.Register(graft.Node[ports.LogSinkManager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LogSinkManager, error) {
			return NewManager(), nil
		},
	})
}
