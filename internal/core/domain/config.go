package domain

import "time"

const (
	// DefaultMaxMemoryMB is the default ceiling of the in-memory content cache tier.
	DefaultMaxMemoryMB = 50
	// DefaultMaxAgeDays is the default retention for FileRecords during cache clean.
	DefaultMaxAgeDays = 30
	// DefaultIndexLimit is how many posts the index page lists.
	DefaultIndexLimit = 10
)

// DefaultFormats is the output format list used when the config names none.
var DefaultFormats = []string{"html"}

// SiteConfig is the project-wide configuration.
type SiteConfig struct {
	Title         string
	URL           string
	Description   string
	Author        string
	OutputDir     string
	OutputFormats []string
	Incremental   bool
	Cache         CacheConfig
	// Extra holds unrecognized keys, exposed to templates under site.
	Extra map[string]any
	// Source is the path of the file the config was loaded from.
	Source string
}

// CacheConfig tunes the build cache.
type CacheConfig struct {
	MaxMemoryMB float64
	MaxAgeDays  int
}

// DefaultSiteConfig returns a config with every default applied.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		OutputDir:     DefaultOutputDir,
		OutputFormats: append([]string(nil), DefaultFormats...),
		Incremental:   true,
		Cache: CacheConfig{
			MaxMemoryMB: DefaultMaxMemoryMB,
			MaxAgeDays:  DefaultMaxAgeDays,
		},
		Extra: make(map[string]any),
	}
}

// MaxAge returns the retention as a duration.
func (c CacheConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeDays) * 24 * time.Hour
}

// SiteFields returns the config as the `site` template context.
func (c *SiteConfig) SiteFields() map[string]any {
	out := make(map[string]any, len(c.Extra)+5)
	for k, v := range c.Extra {
		out[k] = v
	}
	out["title"] = c.Title
	out["url"] = c.URL
	out["description"] = c.Description
	out["author"] = c.Author
	out["output_formats"] = c.OutputFormats
	return out
}
