// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ouroinstall/internal/adapters/cmake"
	_ "go.trai.ch/ouroinstall/internal/adapters/config"
	_ "go.trai.ch/ouroinstall/internal/adapters/fs"
	_ "go.trai.ch/ouroinstall/internal/adapters/logger"
	_ "go.trai.ch/ouroinstall/internal/adapters/probe"
	_ "go.trai.ch/ouroinstall/internal/adapters/shell"
	_ "go.trai.ch/ouroinstall/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/ouroinstall/internal/app"
	_ "go.trai.ch/ouroinstall/internal/engine/orchestrator"
)
