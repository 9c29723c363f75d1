package cas

import (
	"bytes"
	"container/list"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

const entryExt = ".json"

var _ ports.ContentCache = (*ContentCache)(nil)

// memEntry is one page held in the memory tier.
type memEntry struct {
	hash string
	page *domain.CachedPage
	size int64
}

// ContentCache stores processed pages as content/<hash>.json with a bounded
// in-memory tier in front. The memory tier evicts in insertion order.
type ContentCache struct {
	fs     afero.Fs
	dir    string
	logger ports.Logger
	now    NowFunc

	mu       sync.Mutex
	order    *list.List
	entries  map[string]*list.Element
	size     int64
	maxBytes int64
}

// NewContentCache creates a content cache under cacheDir.
func NewContentCache(fs afero.Fs, cacheDir string, maxBytes int64, logger ports.Logger, now NowFunc) *ContentCache {
	if logger == nil {
		logger = nopLogger{}
	}
	if now == nil {
		now = time.Now
	}
	return &ContentCache{
		fs:       fs,
		dir:      cacheDir,
		logger:   logger,
		now:      now,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
		maxBytes: maxBytes,
	}
}

func (c *ContentCache) contentDir() string {
	return filepath.Join(c.dir, domain.ContentDirName)
}

func (c *ContentCache) entryPath(hash string) string {
	return filepath.Join(c.contentDir(), hash+entryExt)
}

// Get returns the page for hash, checking memory first and then disk. Disk
// hits are promoted into memory. Unreadable or stale entries are treated as
// absent.
func (c *ContentCache) Get(hash string) (*domain.CachedPage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[hash]; ok {
		return clonePage(el.Value.(*memEntry).page), true
	}

	page, size, err := c.load(hash)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrCacheEntryCorrupt):
		c.logger.Warn("discarding corrupt cache entry", "hash", hash, "error", err)
		return nil, false
	case errors.Is(err, domain.ErrCacheEntryNotFound):
		c.logger.Debug("cache entry unavailable", "hash", hash, "error", err)
		return nil, false
	default:
		c.logger.Warn("could not read cache entry", "hash", hash, "kind", domain.KindOf(err).String(), "error", err)
		return nil, false
	}

	c.insert(hash, page, size)
	return clonePage(page), true
}

// Load reads the disk entry for hash without touching the memory tier. A
// missing entry or one written by another cache version wraps
// domain.ErrCacheEntryNotFound; undecodable JSON wraps
// domain.ErrCacheEntryCorrupt.
func (c *ContentCache) Load(hash string) (*domain.CachedPage, error) {
	page, _, err := c.load(hash)
	return page, err
}

// load returns the decoded entry and its compact JSON size.
func (c *ContentCache) load(hash string) (*domain.CachedPage, int64, error) {
	path := c.entryPath(hash)
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, errors.Join(domain.ErrCacheEntryNotFound, zerr.With(err, "path", path))
		}
		return nil, 0, errors.Join(domain.ErrCacheReadFailed, zerr.With(err, "path", path))
	}

	var page domain.CachedPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, 0, errors.Join(domain.ErrCacheEntryCorrupt, zerr.With(err, "path", path))
	}
	if page.Version != domain.CacheVersion {
		return nil, 0, errors.Join(domain.ErrCacheEntryNotFound,
			zerr.With(zerr.With(zerr.New("entry from another cache version"), "path", path), "version", page.Version))
	}

	var compact bytes.Buffer
	size := int64(len(data))
	if err := json.Compact(&compact, data); err == nil {
		size = int64(compact.Len())
	}
	return &page, size, nil
}

// Put stamps page with the cache version and write time, writes it to disk
// and inserts it into memory. A page that cannot be serialized is neither
// written nor kept in memory.
func (c *ContentCache) Put(hash string, page *domain.Page) error {
	entry := &domain.CachedPage{
		Page:     *page.Clone(),
		Version:  domain.CacheVersion,
		CachedAt: domain.TimeToEpoch(c.now()),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.Warn("skipping cache write, page is not serializable", "hash", hash, "error", err)
		return errors.Join(domain.ErrSerializationFailed, zerr.With(err, "hash", hash))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return errors.Join(domain.ErrSerializationFailed, zerr.With(err, "hash", hash))
	}

	if err := c.write(hash, pretty.Bytes()); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.insert(hash, entry, int64(len(data)))
	return nil
}

// write persists one entry through a temp file and rename.
func (c *ContentCache) write(hash string, data []byte) error {
	if err := c.fs.MkdirAll(c.contentDir(), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrCacheWriteFailed, zerr.With(err, "path", c.contentDir()))
	}

	path := c.entryPath(hash)
	tmp := path + tmpSuffix
	if err := afero.WriteFile(c.fs, tmp, data, domain.FilePerm); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.Join(domain.ErrCacheWriteFailed, zerr.With(err, "path", tmp))
	}
	if err := c.fs.Rename(tmp, path); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.Join(domain.ErrCacheWriteFailed, zerr.With(err, "path", path))
	}
	return nil
}

// insert adds or refreshes hash in the memory tier, evicting the oldest
// entries while the new entry would push the tier over its ceiling.
// Callers must hold mu.
func (c *ContentCache) insert(hash string, page *domain.CachedPage, size int64) {
	c.drop(hash)

	for c.size+size > c.maxBytes && c.order.Len() > 0 {
		oldest := c.order.Front()
		c.drop(oldest.Value.(*memEntry).hash)
	}

	c.entries[hash] = c.order.PushBack(&memEntry{hash: hash, page: page, size: size})
	c.size += size
}

// drop removes hash from the memory tier. Callers must hold mu.
func (c *ContentCache) drop(hash string) {
	el, ok := c.entries[hash]
	if !ok {
		return
	}
	c.size -= el.Value.(*memEntry).size
	c.order.Remove(el)
	delete(c.entries, hash)
}

// Remove deletes hash from memory and disk.
func (c *ContentCache) Remove(hash string) error {
	c.mu.Lock()
	c.drop(hash)
	c.mu.Unlock()

	path := c.entryPath(hash)
	if err := c.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(domain.ErrCacheWriteFailed, zerr.With(err, "path", path))
	}
	return nil
}

// Prune deletes disk entries whose hash is not in keep.
func (c *ContentCache) Prune(keep map[string]struct{}) (int, error) {
	infos, err := afero.ReadDir(c.fs, c.contentDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, errors.Join(domain.ErrCacheWriteFailed, zerr.With(err, "path", c.contentDir()))
	}

	removed := 0
	var errs error
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || !strings.HasSuffix(name, entryExt) {
			continue
		}
		hash := strings.TrimSuffix(name, entryExt)
		if _, ok := keep[hash]; ok {
			continue
		}
		if err := c.Remove(hash); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		removed++
	}
	return removed, errs
}

// Reset empties both tiers and recreates the cache subdirectories.
func (c *ContentCache) Reset() error {
	c.mu.Lock()
	c.order.Init()
	c.entries = make(map[string]*list.Element)
	c.size = 0
	c.mu.Unlock()

	if err := c.fs.RemoveAll(c.contentDir()); err != nil {
		return errors.Join(domain.ErrCacheClearFailed, zerr.With(err, "path", c.contentDir()))
	}
	return ensureLayout(c.fs, c.dir)
}

// Resize changes the ceiling and evicts oldest entries until under it.
func (c *ContentCache) Resize(maxBytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maxBytes = maxBytes
	for c.size > c.maxBytes && c.order.Len() > 0 {
		c.drop(c.order.Front().Value.(*memEntry).hash)
	}
}

// MemoryStats returns the entry count and estimated byte size of the memory tier.
func (c *ContentCache) MemoryStats() (int, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len(), c.size
}

// DiskUsage sums the sizes of every file under the cache directory.
func (c *ContentCache) DiskUsage() (int64, error) {
	var total int64
	err := afero.Walk(c.fs, c.dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, err
	}
	return total, nil
}

// ensureLayout creates the content and conversions directories.
func ensureLayout(fsys afero.Fs, dir string) error {
	for _, sub := range []string{domain.ContentDirName, domain.ConversionsDirName} {
		path := filepath.Join(dir, sub)
		if err := fsys.MkdirAll(path, domain.DirPerm); err != nil {
			return errors.Join(domain.ErrCacheWriteFailed, zerr.With(err, "path", path))
		}
	}
	return nil
}

func clonePage(p *domain.CachedPage) *domain.CachedPage {
	return &domain.CachedPage{
		Page:     *p.Page.Clone(),
		Version:  p.Version,
		CachedAt: p.CachedAt,
	}
}
