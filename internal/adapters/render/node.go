package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/folio/internal/adapters/fs"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the layout renderer Graft node.
	NodeID graft.ID = "adapter.render.renderer"
	// CheckerNodeID exposes the renderer's prerequisite check.
	CheckerNodeID graft.ID = "adapter.render.checker"
	concreteNodeID graft.ID = "adapter.render.concrete"
)

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        concreteNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ProjectNodeID},
		Run: func(ctx context.Context) (*Renderer, error) {
			project, err := graft.Dep[domain.Project](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(project.TemplatesDir()), nil
		},
	})

	graft.Register(graft.Node[ports.LayoutRenderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{concreteNodeID},
		Run: func(ctx context.Context) (ports.LayoutRenderer, error) {
			r, err := graft.Dep[*Renderer](ctx)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	})

	graft.Register(graft.Node[ports.DependencyChecker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{concreteNodeID},
		Run: func(ctx context.Context) (ports.DependencyChecker, error) {
			r, err := graft.Dep[*Renderer](ctx)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	})
}
