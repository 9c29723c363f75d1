package config

import (
	"bytes"
	"errors"
	"maps"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/zerr"
)

// Encode renders cfg as a config.toml document with [site] and [build]
// tables. Extra keys are written to [site]. Decode reads the result back
// into an equal config.
func Encode(cfg *domain.SiteConfig) ([]byte, error) {
	site := make(map[string]any, len(cfg.Extra)+4)
	maps.Copy(site, cfg.Extra)
	site[keyTitle] = cfg.Title
	site[keyURL] = cfg.URL
	site[keyDescription] = cfg.Description
	site[keyAuthor] = cfg.Author

	doc := map[string]any{
		"site": site,
		"build": map[string]any{
			keyOutputDir:     cfg.OutputDir,
			keyOutputFormats: cfg.OutputFormats,
			keyIncremental:   cfg.Incremental,
			keyCache: map[string]any{
				keyMaxMemoryMB: cfg.Cache.MaxMemoryMB,
				keyMaxAgeDays:  cfg.Cache.MaxAgeDays,
			},
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores cfg as config.toml under root and returns the written path.
func (l *Loader) Write(root string, cfg *domain.SiteConfig) (string, error) {
	path := filepath.Join(root, domain.ConfigTOML)
	data, err := Encode(cfg)
	if err != nil {
		return "", errors.Join(domain.ErrScaffoldFailed, zerr.With(err, "path", path))
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return "", errors.Join(domain.ErrScaffoldFailed, zerr.With(err, "path", path))
	}
	l.logger.Debug("wrote site config", "path", path)
	return path, nil
}
