// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/folio/internal/adapters/cas"
	_ "go.trai.ch/folio/internal/adapters/config"
	_ "go.trai.ch/folio/internal/adapters/formats"
	_ "go.trai.ch/folio/internal/adapters/fs"
	_ "go.trai.ch/folio/internal/adapters/logger"
	_ "go.trai.ch/folio/internal/adapters/markdown"
	_ "go.trai.ch/folio/internal/adapters/render"
	_ "go.trai.ch/folio/internal/adapters/scaffold"
	_ "go.trai.ch/folio/internal/adapters/telemetry"
	_ "go.trai.ch/folio/internal/adapters/template"
	_ "go.trai.ch/folio/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/folio/internal/app"
	_ "go.trai.ch/folio/internal/engine/builder"
)
