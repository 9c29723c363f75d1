package ports

import (
	"context"

	"go.trai.ch/folio/internal/core/domain"
)

// SiteBuilder runs one build invocation over the project.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type SiteBuilder interface {
	// Build reconciles the output directory with the sources. Per-file
	// failures are reported on the stats and wrap domain.ErrPartialBuild.
	Build(ctx context.Context, opts domain.BuildOptions) (*domain.BuildStats, error)
}
