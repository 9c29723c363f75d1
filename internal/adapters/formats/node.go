package formats

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/folio/internal/adapters/render"
	"go.trai.ch/folio/internal/core/ports"
)

// NodeID is the unique identifier for the format generator Graft node.
const NodeID graft.ID = "adapter.formats.generator"

func init() {
	graft.Register(graft.Node[ports.FormatGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{render.NodeID},
		Run: func(ctx context.Context) (ports.FormatGenerator, error) {
			renderer, err := graft.Dep[ports.LayoutRenderer](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(afero.NewOsFs(), renderer), nil
		},
	})
}
