package ports

import (
	"iter"

	"go.trai.ch/folio/internal/core/domain"
)

// SourceWalker enumerates project files.
type SourceWalker interface {
	// SourceFiles returns the sorted files under dir with extension ext.
	// A missing directory yields no files.
	SourceFiles(dir, ext string) ([]domain.SourcePath, error)
	// WalkFiles yields every regular file under root except hidden entries
	// and names matching ignores.
	WalkFiles(root string, ignores []string) iter.Seq[string]
}
