// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/slnsync/internal/adapters/config"
	_ "go.trai.ch/slnsync/internal/adapters/fs"
	_ "go.trai.ch/slnsync/internal/adapters/graph"
	_ "go.trai.ch/slnsync/internal/adapters/logger"
	_ "go.trai.ch/slnsync/internal/adapters/shell"
	_ "go.trai.ch/slnsync/internal/adapters/telemetry"
	_ "go.trai.ch/slnsync/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/slnsync/internal/app"
)
