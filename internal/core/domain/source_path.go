package domain

import (
	"path/filepath"
	"strings"
)

// configKeyPrefix marks pseudo entries in Manifest.Files that fingerprint
// the site configuration rather than a content source.
const configKeyPrefix = "config:"

// SourcePath is the canonical key for a tracked file: absolute, cleaned,
// without a trailing separator. Symlinks are resolved for the project root
// only, once, by the caller that builds paths from it.
type SourcePath string

// NewSourcePath canonicalizes p. Relative paths are made absolute against
// the working directory.
func NewSourcePath(p string) (SourcePath, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return SourcePath(filepath.Clean(abs)), nil
}

// MustSourcePath is NewSourcePath for paths already known to be absolute.
func MustSourcePath(p string) SourcePath {
	return SourcePath(filepath.Clean(p))
}

// ConfigKey returns the pseudo key under which a config file is fingerprinted.
func ConfigKey(name string) SourcePath {
	return SourcePath(configKeyPrefix + name)
}

// IsConfig reports whether p is a config pseudo key.
func (p SourcePath) IsConfig() bool {
	return strings.HasPrefix(string(p), configKeyPrefix)
}

// String returns the path as a string.
func (p SourcePath) String() string {
	return string(p)
}

// Rel returns p relative to base, using forward slashes.
func (p SourcePath) Rel(base string) (string, error) {
	rel, err := filepath.Rel(base, string(p))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
