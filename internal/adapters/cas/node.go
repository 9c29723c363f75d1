package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/folio/internal/adapters/fs"
	"go.trai.ch/folio/internal/adapters/logger"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
)

// NodeID is the graft node for the project build cache.
const NodeID graft.ID = "adapter.build_cache"

func init() {
	graft.Register(graft.Node[ports.BuildCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ProjectNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildCache, error) {
			project, err := graft.Dep[domain.Project](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(project.CacheDir(), WithLogger(log)), nil
		},
	})
}
