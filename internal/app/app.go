// Package app implements the application layer for folio.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	builder    ports.SiteBuilder
	cache      ports.BuildCache
	loader     ports.ConfigLoader
	watcher    ports.Watcher
	scaffolder ports.Scaffolder
	processor  ports.ContentProcessor
	generator  ports.FormatGenerator
	checker    ports.DependencyChecker
	project    domain.Project
	logger     ports.Logger
}

// Deps are the collaborators of an App.
type Deps struct {
	Builder    ports.SiteBuilder
	Cache      ports.BuildCache
	Config     ports.ConfigLoader
	Watcher    ports.Watcher
	Scaffolder ports.Scaffolder
	Processor  ports.ContentProcessor
	Generator  ports.FormatGenerator
	Checker    ports.DependencyChecker
	Logger     ports.Logger
}

// New creates a new App instance for project.
func New(project domain.Project, deps Deps) *App {
	return &App{
		builder:    deps.Builder,
		cache:      deps.Cache,
		loader:     deps.Config,
		watcher:    deps.Watcher,
		scaffolder: deps.Scaffolder,
		processor:  deps.Processor,
		generator:  deps.Generator,
		checker:    deps.Checker,
		project:    project,
		logger:     deps.Logger,
	}
}

// Build runs one build. A partial build returns its stats together with an
// error wrapping domain.ErrPartialBuild.
func (a *App) Build(ctx context.Context, opts domain.BuildOptions) (*domain.BuildStats, error) {
	stats, err := a.builder.Build(ctx, opts)
	if err != nil && !errors.Is(err, domain.ErrPartialBuild) {
		return stats, zerr.Wrap(err, domain.ErrBuildExecutionFailed.Error())
	}
	return stats, err
}

// CacheInfo reports the state of the build cache.
func (a *App) CacheInfo(_ context.Context) (*domain.CacheInfo, error) {
	a.open()
	info, err := a.cache.Info()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read cache info")
	}
	return info, nil
}

// CacheClear wipes the build cache. Generated output is left in place.
func (a *App) CacheClear(_ context.Context) error {
	if err := a.cache.Clear(); err != nil {
		return err
	}
	a.logger.Info("cache cleared", "path", a.project.CacheDir())
	return nil
}

// CacheClean drops records not rebuilt within days and the content entries
// no remaining record references. Zero days uses the configured retention.
func (a *App) CacheClean(_ context.Context, days int) (int, error) {
	if days < 0 {
		return 0, zerr.With(zerr.New("retention must not be negative"), "days", days)
	}
	if days == 0 {
		cfg, err := a.config()
		if err != nil {
			return 0, err
		}
		days = cfg.Cache.MaxAgeDays
	}

	a.open()
	removed, err := a.cache.Clean(time.Duration(days) * 24 * time.Hour)
	if err != nil {
		return removed, err
	}
	a.logger.Info("cache cleaned", "removed", removed, "older_than_days", days)
	return removed, nil
}

// Watch builds once and then rebuilds whenever sources, templates, static
// assets or the config change. onBuild receives the outcome of every build.
// It returns when ctx is cancelled.
func (a *App) Watch(ctx context.Context, opts domain.BuildOptions, onBuild func(*domain.BuildStats, error)) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	ignore := []string{a.project.OutputDir(cfg), a.project.CacheDir()}
	if err := a.watcher.Start(ctx, a.project.Root, ignore); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	r := &rebuilder{
		build: func(opts domain.BuildOptions) {
			onBuild(a.Build(ctx, opts))
		},
		opts: opts,
	}
	r.trigger()

	a.logger.Info("watching for changes", "root", a.project.Root)
	for batch := range a.watcher.Changes() {
		if ctx.Err() != nil {
			break
		}
		a.logger.Info("changes detected, rebuilding", "files", len(batch))
		for _, c := range batch {
			a.logger.Debug("changed", "path", c.Path)
		}
		r.trigger()
	}

	r.wait()
	return nil
}

// rebuilder runs one build at a time. Triggers that arrive while a build is
// running collapse into a single follow-up build.
type rebuilder struct {
	build func(domain.BuildOptions)
	opts  domain.BuildOptions

	mu      sync.Mutex
	running bool
	pending bool
	wg      sync.WaitGroup
}

func (r *rebuilder) trigger() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		r.pending = true
		return
	}
	r.running = true
	r.wg.Add(1)
	go r.loop()
}

func (r *rebuilder) loop() {
	defer r.wg.Done()
	for {
		r.build(r.opts)
		// Only the first build of a session may wipe the output.
		r.opts.Clean = false

		r.mu.Lock()
		if !r.pending {
			r.running = false
			r.mu.Unlock()
			return
		}
		r.pending = false
		r.mu.Unlock()
	}
}

func (r *rebuilder) wait() {
	r.wg.Wait()
}

// open loads the manifest from disk. A degraded manifest is reported as empty.
func (a *App) open() {
	if err := a.cache.Open(); err != nil {
		a.logger.Warn("build cache unusable, reporting it as empty", "error", err)
	}
}

// config loads the site config, falling back to defaults.
func (a *App) config() (*domain.SiteConfig, error) {
	cfg, err := a.loader.Load(a.project.Root)
	if err != nil {
		if !errors.Is(err, domain.ErrConfigNotFound) {
			return nil, err
		}
		return domain.DefaultSiteConfig(), nil
	}
	return cfg, nil
}
