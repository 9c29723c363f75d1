package cas

import (
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/folio/internal/core/ports"
)

// NowFunc returns the current time.
type NowFunc func() time.Time

// Option configures a Cache.
type Option func(*config)

type config struct {
	fs       afero.Fs
	now      NowFunc
	logger   ports.Logger
	maxBytes int64
}

// WithFs sets the filesystem the cache reads and writes through.
// Tests use afero.NewMemMapFs().
func WithFs(fs afero.Fs) Option {
	return func(c *config) {
		c.fs = fs
	}
}

// WithNowFunc sets the clock used for last_built and cached_at stamps.
func WithNowFunc(now NowFunc) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithLogger sets the logger for degraded-path warnings.
func WithLogger(logger ports.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMemoryLimit sets the memory tier ceiling in bytes.
func WithMemoryLimit(maxBytes int64) Option {
	return func(c *config) {
		c.maxBytes = maxBytes
	}
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}
