package template

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/folio/internal/adapters/fs"
	"go.trai.ch/folio/internal/adapters/logger"
	"go.trai.ch/folio/internal/core/ports"
)

// NodeID is the unique identifier for the template analyzer Graft node.
const NodeID graft.ID = "adapter.template.analyzer"

func init() {
	graft.Register(graft.Node[ports.TemplateAnalyzer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.TemplateAnalyzer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewAnalyzer(log, hasher), nil
		},
	})
}
