package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcbatch/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/xcbatch/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/xcbatch/internal/adapters/logsink"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xcbatch/internal/adapters/xcodebuild" //nolint:depguard // Wired in app layer
	"go.trai.ch/xcbatch/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			xcodebuild.ListerNodeID,
			logsink.NodeID,
			xcodebuild.BuildersNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	lister, err := graft.Dep[ports.SchemeLister](ctx)
	if err != nil {
		return nil, err
	}

	sinks, err := graft.Dep[ports.LogSinkManager](ctx)
	if err != nil {
		return nil, err
	}

	builders, err := graft.Dep[ports.Builders](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, lister, sinks, builders, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: a, Logger: log}, nil
}
