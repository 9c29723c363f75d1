package ports

import "go.trai.ch/folio/internal/core/domain"

// Scaffolder lays out new projects and new content documents.
//
//go:generate mockgen -source=scaffold.go -destination=mocks/mock_scaffold.go -package=mocks
type Scaffolder interface {
	// Init writes the directory layout, starter templates, sample content and a
	// config titled title under root. Files that already exist are kept. It
	// returns the files written.
	Init(root, title string) ([]string, error)

	// NewContent writes a post or page skeleton for title into the project at
	// root and returns its path.
	NewContent(root string, kind domain.ContentKind, title string) (string, error)
}
