package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/folio/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/folio/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/folio/internal/adapters/formats"  //nolint:depguard // Wired in app layer
	"go.trai.ch/folio/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/folio/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/folio/internal/adapters/markdown" //nolint:depguard // Wired in app layer
	"go.trai.ch/folio/internal/adapters/render"   //nolint:depguard // Wired in app layer
	"go.trai.ch/folio/internal/adapters/scaffold" //nolint:depguard // Wired in app layer
	"go.trai.ch/folio/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/folio/internal/engine/builder"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the CLI needs from the wired graph.
type Components struct {
	App    *App
	Logger ports.Logger
	// ConcreteLogger lets the CLI switch to JSON output and debug level.
	ConcreteLogger *logger.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			builder.NodeID,
			cas.NodeID,
			config.NodeID,
			watcher.NodeID,
			scaffold.NodeID,
			markdown.NodeID,
			formats.NodeID,
			render.CheckerNodeID,
			fs.ProjectNodeID,
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
			logger.ConcreteNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	project, err := graft.Dep[domain.Project](ctx)
	if err != nil {
		return nil, err
	}

	var deps Deps
	if deps.Builder, err = graft.Dep[*builder.Builder](ctx); err != nil {
		return nil, err
	}
	if deps.Cache, err = graft.Dep[ports.BuildCache](ctx); err != nil {
		return nil, err
	}
	if deps.Config, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}
	if deps.Scaffolder, err = graft.Dep[ports.Scaffolder](ctx); err != nil {
		return nil, err
	}
	if deps.Processor, err = graft.Dep[ports.ContentProcessor](ctx); err != nil {
		return nil, err
	}
	if deps.Generator, err = graft.Dep[ports.FormatGenerator](ctx); err != nil {
		return nil, err
	}
	if deps.Checker, err = graft.Dep[ports.DependencyChecker](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	return New(project, deps), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	concrete, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:            app,
		Logger:         log,
		ConcreteLogger: concrete,
	}, nil
}
