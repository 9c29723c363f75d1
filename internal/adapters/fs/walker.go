// Package fs provides file system adapters for walking and hashing site sources.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceWalker = (*Walker)(nil)

// Walker enumerates files under a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root, skipping VCS and hidden
// directories and any entry whose name matches one of ignores.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != root {
				if skip, action := w.skip(d, ignores); skip {
					return action
				}
			}
			if d.IsDir() {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// SourceFiles returns the sorted files under dir with extension ext. A missing
// directory yields no files.
func (w *Walker) SourceFiles(dir, ext string) ([]domain.SourcePath, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrSourceWalkFailed, zerr.With(err, "path", dir))
	}

	var files []domain.SourcePath
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir {
			if skip, action := w.skip(d, nil); skip {
				return action
			}
		}
		if d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}
		files = append(files, domain.MustSourcePath(path))
		return nil
	})
	if err != nil {
		return nil, errors.Join(domain.ErrSourceWalkFailed, zerr.With(err, "path", dir))
	}
	slices.Sort(files)
	return files, nil
}

// skip reports whether d should be left out, and the WalkDir action to return.
func (w *Walker) skip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if strings.HasPrefix(name, ".") {
		if d.IsDir() {
			return true, filepath.SkipDir
		}
		return true, nil
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
