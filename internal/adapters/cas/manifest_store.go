// Package cas implements the on-disk build cache: the manifest and the
// content-addressed store of processed pages.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

const tmpSuffix = ".tmp"

var _ ports.ManifestStore = (*ManifestStore)(nil)

// ManifestStore reads and atomically writes manifest.json inside a cache directory.
type ManifestStore struct {
	fs  afero.Fs
	dir string
}

// NewManifestStore creates a store for the manifest in dir.
func NewManifestStore(fs afero.Fs, dir string) *ManifestStore {
	return &ManifestStore{fs: fs, dir: dir}
}

// Path returns the manifest file location.
func (s *ManifestStore) Path() string {
	return filepath.Join(s.dir, domain.ManifestFileName)
}

// Load reads the manifest. It always returns a usable manifest; when the
// file is unreadable, corrupt or from another cache version, an empty
// manifest is returned together with the reason.
func (s *ManifestStore) Load() (*domain.Manifest, error) {
	path := s.Path()

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewManifest(), nil
		}
		return domain.NewManifest(), errors.Join(domain.ErrManifestReadFailed, zerr.With(err, "path", path))
	}

	m, err := decodeManifest(data)
	if err != nil {
		return domain.NewManifest(), err
	}
	return m, nil
}

// decodeManifest parses data and checks version and required keys.
func decodeManifest(data []byte) (*domain.Manifest, error) {
	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(domain.ErrManifestCorrupt, err)
	}
	if m.Version != domain.CacheVersion {
		detail := zerr.With(zerr.With(zerr.New("unexpected cache version"), "found", m.Version), "expected", domain.CacheVersion)
		return nil, errors.Join(domain.ErrManifestVersionMismatch, detail)
	}
	if m.Files == nil || m.Templates == nil {
		return nil, errors.Join(domain.ErrManifestCorrupt, zerr.New("manifest is missing files or templates"))
	}
	return &m, nil
}

// Save writes m to a temporary file in the cache directory and renames it
// over the manifest, so readers never observe a partial write.
func (s *ManifestStore) Save(m *domain.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrManifestMarshalFailed, err)
	}

	if err := s.fs.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(err, "path", s.dir))
	}

	path := s.Path()
	tmp := path + tmpSuffix
	if err := afero.WriteFile(s.fs, tmp, data, domain.FilePerm); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(err, "path", tmp))
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(err, "path", path))
	}
	return nil
}

// Validate checks that the cache layout and manifest are intact.
func (s *ManifestStore) Validate() error {
	for _, sub := range []string{domain.ContentDirName, domain.ConversionsDirName} {
		dir := filepath.Join(s.dir, sub)
		ok, err := afero.DirExists(s.fs, dir)
		if err != nil || !ok {
			return errors.Join(domain.ErrCacheStructure, zerr.With(zerr.New("missing cache directory"), "path", dir))
		}
	}

	data, err := afero.ReadFile(s.fs, s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Join(domain.ErrCacheStructure, zerr.With(err, "path", s.Path()))
	}
	if _, err := decodeManifest(data); err != nil {
		return errors.Join(domain.ErrCacheStructure, err)
	}
	return nil
}
