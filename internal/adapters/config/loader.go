// Package config loads the site configuration from config.toml or config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader reads the site configuration of a project root.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Path returns config.toml when present, else config.yaml when present, else "".
func (l *Loader) Path(root string) string {
	for _, name := range []string{domain.ConfigTOML, domain.ConfigYAML} {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads the project config. When no config file exists it returns the
// defaults together with ErrConfigNotFound.
func (l *Loader) Load(root string) (*domain.SiteConfig, error) {
	path := l.Path(root)
	if path == "" {
		return domain.DefaultSiteConfig(), errors.Join(domain.ErrConfigNotFound, zerr.With(zerr.New("no config file"), "root", root))
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is the project config file
	if err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	raw := map[string]any{}
	if filepath.Base(path) == domain.ConfigTOML {
		err = toml.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}

	cfg, err := Decode(raw)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}
	cfg.Source = path
	l.logger.Debug("loaded site config", "path", path)
	return cfg, nil
}

// Decode maps a parsed config document onto SiteConfig, applying defaults.
func Decode(raw map[string]any) (*domain.SiteConfig, error) {
	flat := make(map[string]any, len(raw))
	for k, v := range raw {
		flat[k] = v
	}
	for _, table := range sectionTables {
		section, ok := flat[table].(map[string]any)
		if !ok {
			continue
		}
		delete(flat, table)
		for k, v := range section {
			flat[k] = v
		}
	}

	cfg := domain.DefaultSiteConfig()
	var err error
	take := func(key string, dst *string) {
		v, ok := flat[key]
		if !ok || err != nil {
			return
		}
		delete(flat, key)
		s, isString := v.(string)
		if !isString {
			err = typeError(key, "string", v)
			return
		}
		*dst = s
	}
	take(keyTitle, &cfg.Title)
	take(keyURL, &cfg.URL)
	take(keyDescription, &cfg.Description)
	take(keyAuthor, &cfg.Author)
	take(keyOutputDir, &cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = domain.DefaultOutputDir
	}

	if v, ok := flat[keyOutputFormats]; ok {
		delete(flat, keyOutputFormats)
		formats, ferr := stringList(keyOutputFormats, v)
		if ferr != nil {
			return nil, ferr
		}
		if len(formats) > 0 {
			cfg.OutputFormats = formats
		}
	}

	if v, ok := flat[keyIncremental]; ok {
		delete(flat, keyIncremental)
		b, isBool := v.(bool)
		if !isBool {
			return nil, typeError(keyIncremental, "bool", v)
		}
		cfg.Incremental = b
	}

	if v, ok := flat[keyCache]; ok {
		delete(flat, keyCache)
		table, isTable := v.(map[string]any)
		if !isTable {
			return nil, typeError(keyCache, "table", v)
		}
		if err := decodeCache(table, &cfg.Cache); err != nil {
			return nil, err
		}
	}

	cfg.Extra = flat
	return cfg, nil
}

func decodeCache(table map[string]any, dst *domain.CacheConfig) error {
	if v, ok := table[keyMaxMemoryMB]; ok {
		mb, isNum := number(v)
		if !isNum || mb < 0 {
			return typeError(keyCache+"."+keyMaxMemoryMB, "non-negative number", v)
		}
		dst.MaxMemoryMB = mb
	}
	if v, ok := table[keyMaxAgeDays]; ok {
		days, isNum := number(v)
		if !isNum || days < 0 || days != float64(int(days)) {
			return typeError(keyCache+"."+keyMaxAgeDays, "non-negative integer", v)
		}
		dst.MaxAgeDays = int(days)
	}
	return nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func stringList(key string, v any) ([]string, error) {
	switch val := v.(type) {
	case string:
		return []string{val}, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, typeError(key, "list of strings", v)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, typeError(key, "list of strings", v)
	}
}

func typeError(key, want string, got any) error {
	return zerr.With(zerr.With(zerr.New("invalid config value"), "key", key),
		"expected", fmt.Sprintf("%s, got %T", want, got))
}
