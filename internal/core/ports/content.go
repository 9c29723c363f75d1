package ports

import (
	"context"

	"go.trai.ch/folio/internal/core/domain"
)

// ContentProcessor turns a content source into a page.
//
//go:generate mockgen -source=content.go -destination=mocks/mock_content.go -package=mocks
type ContentProcessor interface {
	Process(ctx context.Context, path domain.SourcePath) (*domain.Page, error)
}

// LayoutRenderer renders a named layout with a data context.
type LayoutRenderer interface {
	Render(layout string, data map[string]any) ([]byte, error)
}

// FormatGenerator writes one output artifact and returns its path.
type FormatGenerator interface {
	Generate(ctx context.Context, site *domain.SiteConfig, page *domain.Page,
		source domain.SourcePath, outputBase, format string) (string, error)
}

// DependencyChecker verifies that an external prerequisite is available.
type DependencyChecker interface {
	Check(ctx context.Context) error
}
