package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/folio/internal/app"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	builder *mocks.MockSiteBuilder
	cache   *mocks.MockBuildCache
	config  *mocks.MockConfigLoader
	checker *mocks.MockDependencyChecker
	logger  *mocks.MockLogger
	app     *app.App
}

func newApp(t *testing.T) *appMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	project, err := domain.NewProject(t.TempDir())
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}

	m := &appMocks{
		builder: mocks.NewMockSiteBuilder(ctrl),
		cache:   mocks.NewMockBuildCache(ctrl),
		config:  mocks.NewMockConfigLoader(ctrl),
		checker: mocks.NewMockDependencyChecker(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	m.app = app.New(project, app.Deps{
		Builder:    m.builder,
		Cache:      m.cache,
		Config:     m.config,
		Watcher:    mocks.NewMockWatcher(ctrl),
		Scaffolder: mocks.NewMockScaffolder(ctrl),
		Processor:  mocks.NewMockContentProcessor(ctrl),
		Generator:  mocks.NewMockFormatGenerator(ctrl),
		Checker:    m.checker,
		Logger:     m.logger,
	})
	return m
}

func provide(m *appMocks) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: m.app, Logger: m.logger}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	m := newApp(t)
	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provide(m))
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "folio version")
}

// TestRun_ProviderError verifies that initialization failures are reported on stderr.
func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: wiring failed")
}

// TestRun_BuildFailure verifies that fatal build errors are logged once.
func TestRun_BuildFailure(t *testing.T) {
	m := newApp(t)
	m.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDependencyMissing)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrDependencyMissing)
	}).Times(1)

	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), new(bytes.Buffer), provide(m))
	assert.Equal(t, 1, exitCode)
}

// TestRun_PartialBuild verifies that per-file failures are reported without a
// second log line.
func TestRun_PartialBuild(t *testing.T) {
	m := newApp(t)
	fe := &domain.FileError{Path: "content/broken.md", Err: domain.ErrFrontMatterInvalid}
	m.builder.EXPECT().Build(gomock.Any(), gomock.Any()).
		Return(&domain.BuildStats{TotalFiles: 1, Errors: []*domain.FileError{fe}}, errors.Join(domain.ErrPartialBuild, fe))
	m.logger.EXPECT().Error(gomock.Any()).Times(0)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), stderr, provide(m))
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "content/broken.md")
}

// TestRun_VerboseFlag verifies that -v selects verbose logging and leaves the
// version flag reachable through its long name.
func TestRun_VerboseFlag(t *testing.T) {
	m := newApp(t)
	m.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(&domain.BuildStats{TotalFiles: 1, Rebuilt: 1}, nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-v", "build"}, stdout, new(bytes.Buffer), provide(m))
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "Site built")

	stdout.Reset()
	exitCode = run(context.Background(), []string{"--version"}, stdout, new(bytes.Buffer), provide(m))
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "folio version")
}

// TestRun_DoctorFailure verifies that failed checks exit non-zero without a
// second log line.
func TestRun_DoctorFailure(t *testing.T) {
	m := newApp(t)
	m.checker.EXPECT().Check(gomock.Any()).Return(domain.ErrDependencyMissing)
	m.config.EXPECT().Path(gomock.Any()).Return("")
	m.cache.EXPECT().Open().Return(nil)
	m.cache.EXPECT().Validate().Return(nil)
	m.cache.EXPECT().Info().Return(&domain.CacheInfo{}, nil)
	m.logger.EXPECT().Error(gomock.Any()).Times(0)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"doctor"}, stdout, new(bytes.Buffer), provide(m))
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stdout.String(), "Build dependencies")
}
