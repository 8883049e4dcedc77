// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/blackcheck/internal/adapters/cachedir"
	_ "go.trai.ch/blackcheck/internal/adapters/config"
	_ "go.trai.ch/blackcheck/internal/adapters/fs"
	_ "go.trai.ch/blackcheck/internal/adapters/logger"
	_ "go.trai.ch/blackcheck/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/blackcheck/internal/app"
)
