package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/folio/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/folio/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/folio/internal/adapters/formats"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/folio/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/folio/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/folio/internal/adapters/markdown"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/folio/internal/adapters/render"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/folio/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/folio/internal/adapters/template"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ProjectNodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			config.NodeID,
			template.NodeID,
			markdown.NodeID,
			render.NodeID,
			render.CheckerNodeID,
			formats.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Builder, error) {
	project, err := graft.Dep[domain.Project](ctx)
	if err != nil {
		return nil, err
	}

	var deps Deps
	if deps.Walker, err = graft.Dep[ports.SourceWalker](ctx); err != nil {
		return nil, err
	}
	if deps.Hasher, err = graft.Dep[ports.ContentHasher](ctx); err != nil {
		return nil, err
	}
	if deps.Cache, err = graft.Dep[ports.BuildCache](ctx); err != nil {
		return nil, err
	}
	if deps.Config, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Analyzer, err = graft.Dep[ports.TemplateAnalyzer](ctx); err != nil {
		return nil, err
	}
	if deps.Processor, err = graft.Dep[ports.ContentProcessor](ctx); err != nil {
		return nil, err
	}
	if deps.Renderer, err = graft.Dep[ports.LayoutRenderer](ctx); err != nil {
		return nil, err
	}
	if deps.Checker, err = graft.Dep[ports.DependencyChecker](ctx); err != nil {
		return nil, err
	}
	if deps.Generator, err = graft.Dep[ports.FormatGenerator](ctx); err != nil {
		return nil, err
	}
	if deps.Tracer, err = graft.Dep[ports.Tracer](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	return New(project, deps), nil
}
