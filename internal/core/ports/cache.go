package ports

import (
	"time"

	"go.trai.ch/folio/internal/core/domain"
)

// ManifestStore persists the manifest.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ManifestStore interface {
	// Load returns the stored manifest. It always returns a usable manifest;
	// a non-nil error explains why an empty one was substituted.
	Load() (*domain.Manifest, error)

	// Save writes m atomically.
	Save(m *domain.Manifest) error

	// Validate checks the cache directory layout and manifest shape.
	Validate() error
}

// ContentCache stores processed pages keyed by content hash.
type ContentCache interface {
	// Get returns the cached page for hash. Unreadable entries are reported absent.
	Get(hash string) (*domain.CachedPage, bool)

	// Put stores page under hash on disk and in memory.
	Put(hash string, page *domain.Page) error

	// Remove deletes the entry for hash from both tiers.
	Remove(hash string) error

	// Prune deletes disk entries whose hash is not in keep and returns how many were removed.
	Prune(keep map[string]struct{}) (int, error)

	// Reset drops every entry from both tiers and recreates the cache layout.
	Reset() error

	// Resize changes the memory tier ceiling, evicting as needed.
	Resize(maxBytes int64)

	// MemoryStats returns the entry count and estimated byte size of the memory tier.
	MemoryStats() (entries int, bytes int64)

	// DiskUsage returns the total size of the cache directory.
	DiskUsage() (int64, error)
}

// BuildCache is the incremental build cache used by the orchestrator. Every
// mutating call persists the manifest before returning.
type BuildCache interface {
	// Open loads the manifest and returns why it was degraded, if it was.
	Open() error

	// Manifest returns the live manifest. Callers must not mutate it directly.
	Manifest() *domain.Manifest

	// Validate checks the cache structure.
	Validate() error

	// Reset discards the manifest and content entries.
	Reset() error

	// UpdateFile records a (re)processed source.
	UpdateFile(path domain.SourcePath, hash, layout string, templates []string) error

	// TrackOutputs records the artifacts generated for a source.
	TrackOutputs(path domain.SourcePath, outputs []string) error

	// RemoveFile drops a source record and its content entry.
	RemoveFile(path domain.SourcePath) (*domain.FileRecord, error)

	// UpdateTemplates replaces the template table.
	UpdateTemplates(g domain.TemplateGraph) error

	// SetLastBuild stamps the manifest with the build time.
	SetLastBuild(t time.Time) error

	// GetContent returns a cached page by hash.
	GetContent(hash string) (*domain.CachedPage, bool)

	// PutContent stores a processed page by hash.
	PutContent(hash string, page *domain.Page) error

	// SetMemoryLimit sets the memory tier ceiling in bytes.
	SetMemoryLimit(maxBytes int64)

	// Clean removes records older than maxAge and unreferenced content entries.
	Clean(maxAge time.Duration) (int, error)

	// Clear wipes the cache directory.
	Clear() error

	// Info reports cache statistics.
	Info() (*domain.CacheInfo, error)
}
