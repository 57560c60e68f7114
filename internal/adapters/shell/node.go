package shell

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the launcher Graft node.
const NodeID graft.ID = "adapter.launcher"

func init() {
	graft.Register(graft.Node[*Launcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (*Launcher, error) {
			return NewLauncher(), nil
		},
	})
}
