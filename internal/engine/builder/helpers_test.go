package builder_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"go.trai.ch/folio/internal/adapters/cas"
	"go.trai.ch/folio/internal/adapters/config"
	"go.trai.ch/folio/internal/adapters/formats"
	"go.trai.ch/folio/internal/adapters/fs"
	"go.trai.ch/folio/internal/adapters/logger"
	"go.trai.ch/folio/internal/adapters/markdown"
	"go.trai.ch/folio/internal/adapters/render"
	"go.trai.ch/folio/internal/adapters/telemetry"
	"go.trai.ch/folio/internal/adapters/template"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/folio/internal/engine/builder"
)

const defaultLayout = `<html><head><title>{{ site.title }} | {{ page.title }}</title></head><body>{{ page.content|safe }}</body></html>`

var incremental = domain.BuildOptions{Incremental: true, CollectStats: true}

// site is a project on disk under a temporary directory.
type site struct {
	t       *testing.T
	project domain.Project
}

func newSite(t *testing.T) *site {
	t.Helper()
	project, err := domain.NewProject(t.TempDir())
	require.NoError(t, err)
	s := &site{t: t, project: project}
	s.write("templates/default.html", defaultLayout)
	return s
}

func (s *site) path(rel string) string {
	return filepath.Join(s.project.Root, filepath.FromSlash(rel))
}

func (s *site) source(rel string) domain.SourcePath {
	return domain.MustSourcePath(filepath.Join(s.project.ContentDir(), filepath.FromSlash(rel)))
}

func (s *site) write(rel, content string) {
	s.t.Helper()
	path := s.path(rel)
	require.NoError(s.t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(s.t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func (s *site) read(rel string) string {
	s.t.Helper()
	data, err := os.ReadFile(s.path(rel))
	require.NoError(s.t, err)
	return string(data)
}

func (s *site) exists(rel string) bool {
	_, err := os.Stat(s.path(rel))
	return err == nil
}

func (s *site) remove(rel string) {
	s.t.Helper()
	require.NoError(s.t, os.Remove(s.path(rel)))
}

// countingProcessor records how often each source was processed.
type countingProcessor struct {
	inner ports.ContentProcessor

	mu    sync.Mutex
	calls map[domain.SourcePath]int
}

func (p *countingProcessor) Process(ctx context.Context, src domain.SourcePath) (*domain.Page, error) {
	p.mu.Lock()
	p.calls[src]++
	p.mu.Unlock()
	return p.inner.Process(ctx, src)
}

func (p *countingProcessor) count(src domain.SourcePath) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[src]
}

// recordingHasher counts the fresh digests and change checks per source.
type recordingHasher struct {
	ports.ContentHasher

	mu      sync.Mutex
	hashed  map[string]int
	checked map[string]int
}

func newRecordingHasher() *recordingHasher {
	return &recordingHasher{
		ContentHasher: fs.NewHasher(),
		hashed:        make(map[string]int),
		checked:       make(map[string]int),
	}
}

func (h *recordingHasher) Hash(path string) (string, error) {
	h.mu.Lock()
	h.hashed[path]++
	h.mu.Unlock()
	return h.ContentHasher.Hash(path)
}

func (h *recordingHasher) Changed(path, cached string) (bool, error) {
	h.mu.Lock()
	h.checked[path]++
	h.mu.Unlock()
	return h.ContentHasher.Changed(path, cached)
}

func (h *recordingHasher) reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.hashed)
	clear(h.checked)
}

func (h *recordingHasher) counts(path string) (hashed, checked int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hashed[path], h.checked[path]
}

// harness is a Builder over real adapters.
type harness struct {
	*builder.Builder
	cache     *cas.Cache
	processor *countingProcessor
	spans     *tracetest.SpanRecorder
}

// newHarness wires a Builder for s. Overrides are applied to the deps
// before construction.
func newHarness(t *testing.T, s *site, overrides ...func(*builder.Deps)) *harness {
	t.Helper()

	log := logger.New()
	log.SetOutput(io.Discard)

	hasher := fs.NewHasher()
	renderer := render.NewRenderer(s.project.TemplatesDir())
	cache := cas.New(s.project.CacheDir(), cas.WithLogger(log))
	processor := &countingProcessor{
		inner: markdown.NewProcessor(s.project.ContentDir()),
		calls: make(map[domain.SourcePath]int),
	}
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	deps := builder.Deps{
		Cache:     cache,
		Config:    config.NewLoader(log),
		Walker:    fs.NewWalker(),
		Hasher:    hasher,
		Analyzer:  template.NewAnalyzer(log, hasher),
		Processor: processor,
		Renderer:  renderer,
		Generator: formats.NewGenerator(afero.NewOsFs(), renderer),
		Checker:   renderer,
		Tracer:    telemetry.NewOTelTracerFrom(tp, "test"),
		Logger:    log,
	}
	for _, o := range overrides {
		o(&deps)
	}

	return &harness{
		Builder:   builder.New(s.project, deps, builder.WithWorkers(2)),
		cache:     cache,
		processor: processor,
		spans:     spans,
	}
}
