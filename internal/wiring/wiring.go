// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nodepack/internal/adapters/config"
	_ "go.trai.ch/nodepack/internal/adapters/esbuild"
	_ "go.trai.ch/nodepack/internal/adapters/fs"
	_ "go.trai.ch/nodepack/internal/adapters/logger"
	_ "go.trai.ch/nodepack/internal/adapters/manifest"
	_ "go.trai.ch/nodepack/internal/adapters/pkgcli"
	_ "go.trai.ch/nodepack/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/nodepack/internal/app"
)
