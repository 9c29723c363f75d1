// Package builder implements the incremental site build.
package builder

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the collaborators a Builder drives.
type Deps struct {
	Cache     ports.BuildCache
	Config    ports.ConfigLoader
	Walker    ports.SourceWalker
	Hasher    ports.ContentHasher
	Analyzer  ports.TemplateAnalyzer
	Processor ports.ContentProcessor
	Renderer  ports.LayoutRenderer
	Generator ports.FormatGenerator
	Checker   ports.DependencyChecker
	Tracer    ports.Tracer
	Logger    ports.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithFs sets the filesystem used for output cleanup, the index page and
// static assets.
func WithFs(fs afero.Fs) Option {
	return func(b *Builder) {
		b.fs = fs
	}
}

// WithClock sets the time source for build stamps and durations.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// WithWorkers bounds the number of sources hashed concurrently.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

// Builder runs build invocations for one project. Builds must not overlap;
// the caller serializes them.
type Builder struct {
	project domain.Project
	Deps

	fs      afero.Fs
	now     func() time.Time
	workers int
}

// New creates a Builder for project.
func New(project domain.Project, deps Deps, opts ...Option) *Builder {
	b := &Builder{
		project: project,
		Deps:    deps,
		fs:      afero.NewOsFs(),
		now:     time.Now,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs one build invocation. Per-file failures do not stop the build;
// they are reported on the returned stats and the error wraps
// domain.ErrPartialBuild. A structural cache failure during an incremental
// build restarts it once as a full rebuild.
func (b *Builder) Build(ctx context.Context, opts domain.BuildOptions) (*domain.BuildStats, error) {
	start := b.now()
	ctx, span := b.Tracer.Start(ctx, "build")
	defer span.End()

	if err := b.Checker.Check(ctx); err != nil {
		span.RecordError(err)
		if !errors.Is(err, domain.ErrDependencyMissing) {
			err = errors.Join(domain.ErrDependencyMissing, err)
		}
		return nil, err
	}

	cfg, err := b.loadConfig()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	b.Cache.SetMemoryLimit(domain.MBToBytes(cfg.Cache.MaxMemoryMB))

	mode := domain.ModeIncremental
	if opts.Clean || !opts.Incremental || !cfg.Incremental {
		mode = domain.ModeFull
	}

	if err := b.Cache.Open(); err != nil && mode == domain.ModeIncremental {
		b.Logger.Warn("build cache unusable, rebuilding everything", "kind", domain.KindOf(err).String())
		mode = domain.ModeFallback
	}
	if mode == domain.ModeIncremental {
		if err := b.Cache.Validate(); err != nil {
			b.Logger.Warn("build cache failed validation, rebuilding everything", "error", err)
			mode = domain.ModeFallback
		}
	}
	span.SetAttribute("mode", string(mode))

	stats, err := b.run(ctx, cfg, opts, mode)
	if err != nil && mode == domain.ModeIncremental && domain.IsStructural(err) {
		b.Logger.Warn("build cache structure is invalid, rebuilding everything", "error", err)
		stats, err = b.run(ctx, cfg, opts, domain.ModeFallback)
		span.SetAttribute("mode", string(domain.ModeFallback))
	}
	if stats != nil {
		stats.Duration = b.now().Sub(start)
	}
	if err != nil {
		span.RecordError(err)
		return stats, err
	}

	span.SetAttribute("files", stats.TotalFiles)
	span.SetAttribute("rebuilt", stats.Rebuilt)
	span.SetAttribute("cached", stats.Cached)
	b.Logger.Info("build finished",
		"mode", string(stats.Mode),
		"files", stats.TotalFiles,
		"rebuilt", stats.Rebuilt,
		"cached", stats.Cached,
		"removed", stats.Removed,
		"duration", stats.Duration.Round(time.Millisecond),
	)

	if len(stats.Errors) > 0 {
		errs := make([]error, 0, len(stats.Errors)+1)
		errs = append(errs, domain.ErrPartialBuild)
		for _, fe := range stats.Errors {
			errs = append(errs, fe)
		}
		err = errors.Join(errs...)
		span.RecordError(err)
		return stats, err
	}
	return stats, nil
}

// loadConfig reads the site config, falling back to defaults when the
// project has none.
func (b *Builder) loadConfig() (*domain.SiteConfig, error) {
	cfg, err := b.Config.Load(b.project.Root)
	if err != nil {
		if !errors.Is(err, domain.ErrConfigNotFound) {
			return nil, err
		}
		b.Logger.Debug("no site config found, using defaults", "root", b.project.Root)
	}
	if cfg == nil {
		cfg = domain.DefaultSiteConfig()
	}
	return cfg, nil
}

// run is a single build attempt in the given mode.
func (b *Builder) run(ctx context.Context, cfg *domain.SiteConfig, opts domain.BuildOptions, mode domain.BuildMode) (*domain.BuildStats, error) {
	stats := &domain.BuildStats{
		Mode:         mode,
		CacheEnabled: mode == domain.ModeIncremental,
	}
	outDir := b.project.OutputDir(cfg)

	if mode != domain.ModeIncremental {
		if err := b.resetOutput(outDir); err != nil {
			return stats, err
		}
		reset := b.Cache.Reset
		if opts.Clean {
			reset = b.Cache.Clear
		}
		if err := reset(); err != nil {
			return stats, err
		}
	}

	previous, graph, changedTemplates, err := b.refreshTemplates(ctx)
	if err != nil {
		return stats, err
	}

	sources, digests, err := b.detect(ctx, stats)
	if err != nil {
		return stats, err
	}
	stats.TotalFiles = len(sources)

	cfgState := b.detectConfig()
	affected := b.expand(ctx, sources, digests, cfgState.changed, changedTemplates, previous, graph)

	stats.Removed = b.removeOrphans(ctx, sources)

	plan := &reconcilePlan{
		cfg:      cfg,
		outDir:   outDir,
		formats:  outputFormats(cfg, opts),
		digests:  digests,
		affected: affected,
		previous: previous,
		graph:    graph,
	}
	pages, err := b.reconcileAll(ctx, plan, sources, stats)
	if err != nil {
		return stats, err
	}

	written, err := b.writeIndex(ctx, cfg, outDir, graph, pages)
	switch {
	case err != nil:
		stats.Errors = append(stats.Errors, &domain.FileError{Path: domain.MustSourcePath(filepath.Join(outDir, indexFile)), Err: err})
	case written:
		stats.Outputs++
	}
	stats.Errors = append(stats.Errors, b.copyStatic(outDir)...)

	if err := b.recordConfig(cfgState); err != nil {
		return stats, err
	}
	if err := b.Cache.SetLastBuild(b.now()); err != nil {
		return stats, err
	}
	return stats, nil
}

// resetOutput wipes the output directory. It refuses to touch a directory
// that contains the project itself.
func (b *Builder) resetOutput(outDir string) error {
	if within(b.project.Root, outDir) {
		return errors.Join(domain.ErrOutputCleanFailed,
			zerr.With(zerr.With(zerr.New("output directory contains the project"), "path", outDir), "root", b.project.Root))
	}
	if err := b.fs.RemoveAll(outDir); err != nil {
		return errors.Join(domain.ErrOutputCleanFailed, zerr.With(err, "path", outDir))
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// outputFormats returns the requested formats, deduplicated in order.
func outputFormats(cfg *domain.SiteConfig, opts domain.BuildOptions) []string {
	formats := opts.Formats
	if len(formats) == 0 {
		formats = cfg.OutputFormats
	}
	if len(formats) == 0 {
		formats = domain.DefaultFormats
	}

	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		out = append(out, f)
	}
	return out
}
