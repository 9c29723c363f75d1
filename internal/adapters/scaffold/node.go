package scaffold

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/folio/internal/adapters/config"
	"go.trai.ch/folio/internal/adapters/logger"
	"go.trai.ch/folio/internal/core/ports"
)

// NodeID is the unique identifier for the scaffolder Graft node.
const NodeID graft.ID = "adapter.scaffolder"

func init() {
	graft.Register(graft.Node[ports.Scaffolder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Scaffolder, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, log), nil
		},
	})
}
