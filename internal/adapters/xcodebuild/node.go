package xcodebuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcbatch/internal/adapters/logger"
	"go.trai.ch/xcbatch/internal/adapters/shell"
	"go.trai.ch/xcbatch/internal/core/domain"
	"go.trai.ch/xcbatch/internal/core/ports"
)

const (
	// ListerNodeID is the unique identifier for the scheme lister Graft node.
	ListerNodeID graft.ID = "adapter.lister"
	// BuildersNodeID is the unique identifier for the builders Graft node.
	BuildersNodeID graft.ID = "adapter.builders"
)

func init() {
	graft.Register(graft.Node[ports.SchemeLister]{
		ID:        ListerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SchemeLister, error) {
			launcher, err := graft.Dep[*shell.Launcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLister(launcher, log), nil
		},
	})

	graft.Register(graft.Node[ports.Builders]{
		ID:        BuildersNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Builders, error) {
			launcher, err := graft.Dep[*shell.Launcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return ports.Builders{
				domain.ModeSimple:  NewSimpleBuilder(launcher),
				domain.ModeChained: NewChainedBuilder(launcher, log),
			}, nil
		},
	})
}
