package fs

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
)

const (
	WalkerNodeID  graft.ID = "adapter.fs.walker"
	HasherNodeID  graft.ID = "adapter.fs.hasher"
	ProjectNodeID graft.ID = "adapter.fs.project"
)

func init() {
	graft.Register(graft.Node[ports.SourceWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ContentHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContentHasher, error) {
			return NewHasher(), nil
		},
	})

	// The project root is the working directory the binary was started in.
	graft.Register(graft.Node[domain.Project]{
		ID:        ProjectNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Project, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return domain.Project{}, err
			}
			return domain.NewProject(cwd)
		},
	})
}
