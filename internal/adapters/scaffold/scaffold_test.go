package scaffold_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/folio/internal/adapters/config"
	"go.trai.ch/folio/internal/adapters/logger"
	"go.trai.ch/folio/internal/adapters/markdown"
	"go.trai.ch/folio/internal/adapters/scaffold"
	"go.trai.ch/folio/internal/core/domain"
)

var fixedNow = time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC)

func newScaffolder(t *testing.T) (*scaffold.Scaffolder, *config.Loader) {
	t.Helper()
	log := logger.New()
	log.SetOutput(io.Discard)
	loader := config.NewLoader(log)
	return scaffold.New(loader, log, scaffold.WithNow(func() time.Time { return fixedNow })), loader
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInit(t *testing.T) {
	root := t.TempDir()
	s, loader := newScaffolder(t)

	written, err := s.Init(root, "Notebook")
	require.NoError(t, err)

	for _, rel := range []string{
		"templates/base.html",
		"templates/default.html",
		"templates/post.html",
		"templates/index.html",
		"content/about.md",
		"content/posts/welcome.md",
		"static/css/style.css",
		"config.toml",
	} {
		assert.Contains(t, written, filepath.Join(root, filepath.FromSlash(rel)))
	}
	assert.DirExists(t, filepath.Join(root, "static", "js"))

	cfg, err := loader.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "Notebook", cfg.Title)
	assert.Equal(t, []string{"html", "plain", "xml", "json"}, cfg.OutputFormats)
	assert.Equal(t, domain.DefaultOutputDir, cfg.OutputDir)
}

func TestInit_DefaultTitle(t *testing.T) {
	root := t.TempDir()
	s, loader := newScaffolder(t)

	_, err := s.Init(root, "")
	require.NoError(t, err)

	cfg, err := loader.Load(root)
	require.NoError(t, err)
	assert.Equal(t, scaffold.DefaultTitle, cfg.Title)
}

func TestInit_KeepsExistingFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "content"), domain.DirPerm))
	about := filepath.Join(root, "content", "about.md")
	require.NoError(t, os.WriteFile(about, []byte("mine\n"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigYAML), []byte("title: Old\n"), domain.FilePerm))
	s, _ := newScaffolder(t)

	written, err := s.Init(root, "New")
	require.NoError(t, err)

	assert.NotContains(t, written, about)
	assert.Equal(t, "mine\n", read(t, about))
	assert.NoFileExists(t, filepath.Join(root, domain.ConfigTOML))
	assert.FileExists(t, filepath.Join(root, "templates", "default.html"))
}

func TestNewContent(t *testing.T) {
	root := t.TempDir()
	s, _ := newScaffolder(t)
	_, err := s.Init(root, "Notebook")
	require.NoError(t, err)

	t.Run("post", func(t *testing.T) {
		path, err := s.NewContent(root, domain.KindPost, "Hello: World")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "content", "posts", "2024-05-01-hello-world.md"), path)

		meta, body, err := markdown.SplitFrontMatter([]byte(read(t, path)))
		require.NoError(t, err)
		assert.Equal(t, "Hello: World", meta["title"])
		assert.Equal(t, "post", meta["layout"])
		assert.Equal(t, "2024-05-01T10:20:30Z", meta["date"])
		assert.Equal(t, "\nWrite your content here...\n", string(body))
	})

	t.Run("page", func(t *testing.T) {
		path, err := s.NewContent(root, domain.KindPage, "Contact Me")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "content", "contact-me.md"), path)

		meta, _, err := markdown.SplitFrontMatter([]byte(read(t, path)))
		require.NoError(t, err)
		assert.Equal(t, "default", meta["layout"])
		assert.NotContains(t, meta, "date")
	})

	t.Run("existing file", func(t *testing.T) {
		_, err := s.NewContent(root, domain.KindPage, "About")
		require.ErrorIs(t, err, domain.ErrContentExists)
		assert.Equal(t, domain.KindExists, domain.KindOf(err))
	})

	t.Run("unusable title", func(t *testing.T) {
		_, err := s.NewContent(root, domain.KindPage, "???")
		require.ErrorIs(t, err, domain.ErrInvalidContentName)
	})
}

func TestNewContent_RequiresConfig(t *testing.T) {
	s, _ := newScaffolder(t)
	_, err := s.NewContent(t.TempDir(), domain.KindPost, "Hello")
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}
