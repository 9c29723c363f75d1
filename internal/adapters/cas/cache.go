package cas

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildCache = (*Cache)(nil)

// Cache is the build cache of one project: the manifest plus the content
// store. Every mutation saves the manifest immediately. It is not safe for
// concurrent builds; concurrent processes race with last-writer-wins.
type Cache struct {
	fs       afero.Fs
	dir      string
	logger   ports.Logger
	now      NowFunc
	store    *ManifestStore
	content  *ContentCache
	manifest *domain.Manifest
}

// New creates the cache rooted at dir (normally <project>/.cache).
func New(dir string, opts ...Option) *Cache {
	cfg := config{
		fs:       afero.NewOsFs(),
		now:      time.Now,
		logger:   nopLogger{},
		maxBytes: domain.MBToBytes(domain.DefaultMaxMemoryMB),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache{
		fs:       cfg.fs,
		dir:      dir,
		logger:   cfg.logger,
		now:      cfg.now,
		store:    NewManifestStore(cfg.fs, dir),
		content:  NewContentCache(cfg.fs, dir, cfg.maxBytes, cfg.logger, cfg.now),
		manifest: domain.NewManifest(),
	}
}

// Open loads the manifest and makes sure the cache layout exists. A
// returned error is the reason the manifest was discarded; the cache is
// still usable, starting empty.
func (c *Cache) Open() error {
	m, loadErr := c.store.Load()
	c.manifest = m
	if loadErr != nil {
		c.logger.Warn("discarding build cache manifest", "path", c.store.Path(), "kind", domain.KindOf(loadErr).String())
	}
	if err := ensureLayout(c.fs, c.dir); err != nil {
		return errors.Join(loadErr, err)
	}
	return loadErr
}

// Manifest returns the live manifest.
func (c *Cache) Manifest() *domain.Manifest {
	return c.manifest
}

// Validate checks the on-disk layout and manifest.
func (c *Cache) Validate() error {
	return c.store.Validate()
}

// Reset starts over with an empty manifest and content store.
func (c *Cache) Reset() error {
	c.manifest = domain.NewManifest()
	if err := c.content.Reset(); err != nil {
		return err
	}
	return c.save()
}

func (c *Cache) save() error {
	return c.store.Save(c.manifest)
}

// UpdateFile records a (re)processed source.
func (c *Cache) UpdateFile(path domain.SourcePath, hash, layout string, templates []string) error {
	c.manifest.Record(path, hash, layout, templates, c.now())
	return c.save()
}

// TrackOutputs records the artifacts generated for path. Untracked paths are ignored.
func (c *Cache) TrackOutputs(path domain.SourcePath, outputs []string) error {
	if !c.manifest.SetOutputs(path, outputs) {
		return nil
	}
	return c.save()
}

// RemoveFile drops the record for path and its content entry, unless another
// source with identical bytes still references it.
func (c *Cache) RemoveFile(path domain.SourcePath) (*domain.FileRecord, error) {
	rec, ok := c.manifest.Remove(path)
	if !ok {
		return nil, nil
	}

	var errs error
	if _, shared := c.manifest.ReferencedHashes()[rec.Hash]; !shared && !path.IsConfig() {
		if err := c.content.Remove(rec.Hash); err != nil {
			c.logger.Warn("could not remove cache entry", "hash", rec.Hash, "error", err)
		}
	}
	if err := c.save(); err != nil {
		errs = err
	}
	return rec, errs
}

// UpdateTemplates replaces the template table.
func (c *Cache) UpdateTemplates(g domain.TemplateGraph) error {
	c.manifest.ReplaceTemplates(g)
	return c.save()
}

// SetLastBuild stamps the manifest.
func (c *Cache) SetLastBuild(t time.Time) error {
	c.manifest.LastBuild = &t
	return c.save()
}

// GetContent returns a cached page.
func (c *Cache) GetContent(hash string) (*domain.CachedPage, bool) {
	return c.content.Get(hash)
}

// PutContent stores a processed page.
func (c *Cache) PutContent(hash string, page *domain.Page) error {
	return c.content.Put(hash, page)
}

// SetMemoryLimit changes the memory tier ceiling.
func (c *Cache) SetMemoryLimit(maxBytes int64) {
	c.content.Resize(maxBytes)
}

// Clean removes records last built before now-maxAge together with their
// content entries and output files, then deletes content entries no record
// references. Output deletion is best effort. It returns the number of
// records and entries removed.
func (c *Cache) Clean(maxAge time.Duration) (int, error) {
	cutoff := c.now().Add(-maxAge)
	removed := 0

	for _, path := range c.manifest.SourcePaths() {
		if !c.manifest.Files[path].LastBuiltTime().Before(cutoff) {
			continue
		}
		rec, err := c.RemoveFile(path)
		if err != nil {
			return removed, err
		}
		c.removeOutputs(rec)
		removed++
	}

	pruned, err := c.content.Prune(c.manifest.ReferencedHashes())
	removed += pruned
	if err != nil {
		return removed, err
	}
	return removed, c.save()
}

func (c *Cache) removeOutputs(rec *domain.FileRecord) {
	if rec == nil {
		return
	}
	for _, out := range rec.Outputs {
		if err := c.fs.Remove(out); err != nil && !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("could not remove output of cleaned record", "path", out, "error", err)
		}
	}
}

// Clear wipes the cache directory and starts with an empty manifest.
func (c *Cache) Clear() error {
	if err := c.fs.RemoveAll(c.dir); err != nil {
		return errors.Join(domain.ErrCacheClearFailed, zerr.With(err, "path", c.dir))
	}
	c.manifest = domain.NewManifest()
	return c.content.Reset()
}

// Info reports tracked counts, sizes and the last build time.
func (c *Cache) Info() (*domain.CacheInfo, error) {
	entries, memBytes := c.content.MemoryStats()
	disk, err := c.content.DiskUsage()
	if err != nil {
		return nil, zerr.With(err, "path", c.dir)
	}

	return &domain.CacheInfo{
		FilesTracked:     len(c.manifest.SourcePaths()),
		TemplatesTracked: len(c.manifest.Templates),
		DiskBytes:        disk,
		MemoryBytes:      memBytes,
		MemoryEntries:    entries,
		LastBuild:        c.manifest.LastBuild,
	}, nil
}
