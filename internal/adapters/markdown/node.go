package markdown

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/folio/internal/adapters/fs"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
)

// NodeID is the unique identifier for the content processor Graft node.
const NodeID graft.ID = "adapter.markdown.processor"

func init() {
	graft.Register(graft.Node[ports.ContentProcessor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ProjectNodeID},
		Run: func(ctx context.Context) (ports.ContentProcessor, error) {
			project, err := graft.Dep[domain.Project](ctx)
			if err != nil {
				return nil, err
			}
			return NewProcessor(project.ContentDir()), nil
		},
	})
}
