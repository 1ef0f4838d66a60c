// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/memo/internal/adapters/diskstore"
	_ "go.trai.ch/memo/internal/adapters/formats"
	// Register app nodes.
	_ "go.trai.ch/memo/internal/app"
)
