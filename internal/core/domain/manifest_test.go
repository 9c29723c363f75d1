package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/folio/internal/core/domain"
)

func TestManifest_RecordKeepsOutputs(t *testing.T) {
	m := domain.NewManifest()
	p := domain.MustSourcePath("/site/content/about.md")
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m.Record(p, "aaaaaaaaaaaaaaaa", "default", []string{"default.html"}, now)
	require.True(t, m.SetOutputs(p, []string{"/site/_site/about.html"}))

	rec := m.Record(p, "bbbbbbbbbbbbbbbb", "default", nil, now.Add(time.Hour))
	assert.Equal(t, []string{"/site/_site/about.html"}, rec.Outputs)
	assert.Equal(t, []string{}, rec.Templates)
	assert.True(t, now.Add(time.Hour).Equal(rec.LastBuiltTime()))
}

func TestManifest_SetOutputsUntracked(t *testing.T) {
	m := domain.NewManifest()
	assert.False(t, m.SetOutputs(domain.MustSourcePath("/nope.md"), []string{"x"}))
}

func TestManifest_SourcePathsSkipsConfig(t *testing.T) {
	m := domain.NewManifest()
	now := time.Now()
	m.Record(domain.MustSourcePath("/s/content/b.md"), "1", "", nil, now)
	m.Record(domain.MustSourcePath("/s/content/a.md"), "2", "", nil, now)
	m.Record(domain.ConfigKey("config.toml"), "3", "", nil, now)

	assert.Equal(t, []domain.SourcePath{"/s/content/a.md", "/s/content/b.md"}, m.SourcePaths())
	assert.Equal(t, map[string]struct{}{"1": {}, "2": {}}, m.ReferencedHashes())
}

func TestManifest_Remove(t *testing.T) {
	m := domain.NewManifest()
	p := domain.MustSourcePath("/s/content/a.md")
	m.Record(p, "1", "", nil, time.Now())

	rec, ok := m.Remove(p)
	require.True(t, ok)
	assert.Equal(t, "1", rec.Hash)
	assert.Empty(t, m.Files)

	_, ok = m.Remove(p)
	assert.False(t, ok)
}

func TestFileRecord_UsesAny(t *testing.T) {
	rec := &domain.FileRecord{Templates: []string{"post.html", "base.html"}}
	assert.True(t, rec.UsesAny(map[string]struct{}{"base.html": {}}))
	assert.False(t, rec.UsesAny(map[string]struct{}{"index.html": {}}))
}

func TestSourcePath(t *testing.T) {
	p, err := domain.NewSourcePath("/site/content/../content/a.md/")
	require.NoError(t, err)
	assert.Equal(t, domain.SourcePath("/site/content/a.md"), p)

	rel, err := p.Rel("/site")
	require.NoError(t, err)
	assert.Equal(t, "content/a.md", rel)

	assert.True(t, domain.ConfigKey("config.yaml").IsConfig())
	assert.False(t, p.IsConfig())
}

func TestBuildStats_HitRate(t *testing.T) {
	assert.Zero(t, (&domain.BuildStats{}).HitRate())
	assert.InDelta(t, 75.0, (&domain.BuildStats{TotalFiles: 4, Cached: 3}).HitRate(), 1e-9)
}
