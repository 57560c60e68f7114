// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xcbatch/internal/adapters/config"
	_ "go.trai.ch/xcbatch/internal/adapters/logger"
	_ "go.trai.ch/xcbatch/internal/adapters/logsink"
	_ "go.trai.ch/xcbatch/internal/adapters/shell"
	_ "go.trai.ch/xcbatch/internal/adapters/xcodebuild"
	// Register app nodes.
	_ "go.trai.ch/xcbatch/internal/app"
)
