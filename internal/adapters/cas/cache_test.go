package cas_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/folio/internal/adapters/cas"
	"go.trai.ch/folio/internal/core/domain"
)

func newCache(t *testing.T, fsys afero.Fs, now cas.NowFunc) *cas.Cache {
	t.Helper()
	c := cas.New(cacheDir, cas.WithFs(fsys), cas.WithNowFunc(now))
	require.NoError(t, c.Open())
	return c
}

func TestCache_OpenCreatesLayout(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := newCache(t, fsys, clock)

	for _, sub := range []string{domain.ContentDirName, domain.ConversionsDirName} {
		ok, err := afero.DirExists(fsys, filepath.Join(cacheDir, sub))
		require.NoError(t, err)
		assert.True(t, ok, sub)
	}
	require.NoError(t, c.Validate())
	assert.Empty(t, c.Manifest().Files)
}

func TestCache_OpenDiscardsCorruptManifest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, domain.DefaultManifestPath("/site"), []byte("garbage"), domain.FilePerm))

	c := cas.New(cacheDir, cas.WithFs(fsys), cas.WithNowFunc(clock))
	err := c.Open()
	require.Error(t, err)
	assert.True(t, domain.IsStructural(err))
	assert.Empty(t, c.Manifest().Files)
}

func TestCache_MutationsPersist(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := newCache(t, fsys, clock)
	path := domain.MustSourcePath("/site/content/index.md")

	require.NoError(t, c.UpdateFile(path, "1111111111111111", "default", []string{"default.html"}))
	require.NoError(t, c.TrackOutputs(path, []string{"/site/_site/index.html"}))
	require.NoError(t, c.UpdateTemplates(domain.TemplateGraph{
		"default.html": {Hash: "2222222222222222", Path: "/site/templates/default.html"},
	}))
	require.NoError(t, c.SetLastBuild(fixedNow))

	reopened := newCache(t, fsys, clock)
	rec := reopened.Manifest().Files[path]
	require.NotNil(t, rec)
	assert.Equal(t, "1111111111111111", rec.Hash)
	assert.Equal(t, []string{"/site/_site/index.html"}, rec.Outputs)
	assert.Contains(t, reopened.Manifest().Templates, "default.html")
	require.NotNil(t, reopened.Manifest().LastBuild)
	assert.True(t, fixedNow.Equal(*reopened.Manifest().LastBuild))
}

func TestCache_RemoveFileKeepsSharedContent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := newCache(t, fsys, clock)
	a := domain.MustSourcePath("/site/content/a.md")
	b := domain.MustSourcePath("/site/content/b.md")
	const hash = "3333333333333333"

	require.NoError(t, c.UpdateFile(a, hash, "default", nil))
	require.NoError(t, c.UpdateFile(b, hash, "default", nil))
	require.NoError(t, c.PutContent(hash, samplePage("shared")))

	rec, err := c.RemoveFile(a)
	require.NoError(t, err)
	require.NotNil(t, rec)
	_, ok := c.GetContent(hash)
	assert.True(t, ok, "b still references the entry")

	_, err = c.RemoveFile(b)
	require.NoError(t, err)
	_, ok = c.GetContent(hash)
	assert.False(t, ok)

	rec, err = c.RemoveFile(b)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestCache_Clean(t *testing.T) {
	fsys := afero.NewMemMapFs()
	now := fixedNow
	c := newCache(t, fsys, func() time.Time { return now })

	old := domain.MustSourcePath("/site/content/old.md")
	fresh := domain.MustSourcePath("/site/content/fresh.md")
	const oldOut = "/site/_site/old.html"

	require.NoError(t, c.UpdateFile(old, "4444444444444444", "default", nil))
	require.NoError(t, c.PutContent("4444444444444444", samplePage("old")))
	require.NoError(t, afero.WriteFile(fsys, oldOut, []byte("<html></html>"), domain.FilePerm))
	require.NoError(t, c.TrackOutputs(old, []string{oldOut}))
	require.NoError(t, c.PutContent("orphan0000000000", samplePage("orphan")))

	now = fixedNow.Add(40 * 24 * time.Hour)
	require.NoError(t, c.UpdateFile(fresh, "5555555555555555", "default", nil))
	require.NoError(t, c.PutContent("5555555555555555", samplePage("fresh")))

	removed, err := c.Clean(30 * 24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, removed, "one stale record and one orphan entry")

	assert.NotContains(t, c.Manifest().Files, old)
	assert.Contains(t, c.Manifest().Files, fresh)

	exists, err := afero.Exists(fsys, oldOut)
	require.NoError(t, err)
	assert.False(t, exists, "outputs of cleaned records are deleted")

	_, ok := c.GetContent("orphan0000000000")
	assert.False(t, ok)
	_, ok = c.GetContent("5555555555555555")
	assert.True(t, ok)
}

func TestCache_ClearAndInfo(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := newCache(t, fsys, clock)
	path := domain.MustSourcePath("/site/content/a.md")

	require.NoError(t, c.UpdateFile(path, "6666666666666666", "default", nil))
	require.NoError(t, c.UpdateFile(domain.ConfigKey(domain.ConfigTOML), "7777777777777777", "", nil))
	require.NoError(t, c.PutContent("6666666666666666", samplePage("a")))
	require.NoError(t, c.SetLastBuild(fixedNow))

	info, err := c.Info()
	require.NoError(t, err)
	assert.Equal(t, 1, info.FilesTracked, "config fingerprint is not a file")
	assert.Equal(t, 1, info.MemoryEntries)
	assert.Positive(t, info.DiskBytes)
	assert.Positive(t, info.MemoryBytes)
	require.NotNil(t, info.LastBuild)

	require.NoError(t, c.Clear())

	info, err = c.Info()
	require.NoError(t, err)
	assert.Zero(t, info.FilesTracked)
	assert.Zero(t, info.MemoryEntries)
	assert.Zero(t, info.DiskBytes)
	assert.Nil(t, info.LastBuild)

	ok, err := afero.DirExists(fsys, filepath.Join(cacheDir, domain.ContentDirName))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCache_SetMemoryLimit(t *testing.T) {
	c := newCache(t, afero.NewMemMapFs(), clock)
	require.NoError(t, c.PutContent("a", samplePage("a")))
	require.NoError(t, c.PutContent("b", samplePage("b")))

	c.SetMemoryLimit(0)
	info, err := c.Info()
	require.NoError(t, err)
	assert.Zero(t, info.MemoryEntries)
	assert.Zero(t, info.MemoryBytes)
}
