package watcher

import (
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Fingerprints remembers a fast digest of every file seen so writes that
// leave the bytes unchanged (editor saves, touch) can be dropped.
type Fingerprints struct {
	mu   sync.Mutex
	seen map[string]uint64
}

// NewFingerprints creates an empty set.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{seen: make(map[string]uint64)}
}

// Seed records the current digest of path without reporting a change.
func (f *Fingerprints) Seed(path string) {
	if sum, ok := digest(path); ok {
		f.mu.Lock()
		f.seen[path] = sum
		f.mu.Unlock()
	}
}

// Changed updates the digest of path and reports whether it differs from
// the last one recorded. Missing or unreadable files count as changed when
// they were known before.
func (f *Fingerprints) Changed(path string) bool {
	sum, ok := digest(path)

	f.mu.Lock()
	defer f.mu.Unlock()

	prev, known := f.seen[path]
	if !ok {
		delete(f.seen, path)
		return known
	}
	f.seen[path] = sum
	return !known || prev != sum
}

// Forget drops path and everything recorded under it.
func (f *Fingerprints) Forget(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for p := range f.seen {
		if p == path || isWithin(path, p) {
			delete(f.seen, p)
		}
	}
}

func digest(path string) (uint64, bool) {
	file, err := os.Open(path) //nolint:gosec // path comes from the watched tree
	if err != nil {
		return 0, false
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		return 0, false
	}

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, false
	}
	return h.Sum64(), true
}
