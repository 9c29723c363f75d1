package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/folio/internal/core/domain"
)

func node(extends []string, includes ...string) *domain.TemplateRecord {
	if includes == nil {
		includes = []string{}
	}
	if extends == nil {
		extends = []string{}
	}
	return &domain.TemplateRecord{Extends: extends, Includes: includes}
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestTemplateGraph_Link(t *testing.T) {
	g := domain.TemplateGraph{
		"base.html": node(nil),
		"post.html": node([]string{"base.html"}, "nav.html", "missing.html"),
		"nav.html":  node(nil),
	}
	g.Link()

	assert.Equal(t, []string{"post.html"}, g["base.html"].ExtendedBy)
	assert.Equal(t, []string{"post.html"}, g["nav.html"].IncludedBy)
	assert.Empty(t, g["post.html"].ExtendedBy)
	assert.NotContains(t, g, "missing.html")
}

func TestTemplateGraph_Dependents(t *testing.T) {
	t.Run("extends chain", func(t *testing.T) {
		g := domain.TemplateGraph{
			"a.html": node([]string{"b.html"}),
			"b.html": node([]string{"c.html"}),
			"c.html": node(nil),
		}
		g.Link()

		got := g.Dependents("c.html")
		assert.ElementsMatch(t, []string{"a.html", "b.html", "c.html"}, keys(got))
	})

	t.Run("include chain", func(t *testing.T) {
		g := domain.TemplateGraph{
			"a.html": node(nil, "b.html"),
			"b.html": node(nil, "c.html"),
			"c.html": node(nil),
		}
		g.Link()

		got := g.Dependents("c.html")
		assert.ElementsMatch(t, []string{"a.html", "b.html", "c.html"}, keys(got))
	})

	t.Run("cycle terminates", func(t *testing.T) {
		g := domain.TemplateGraph{
			"a.html": node(nil, "b.html"),
			"b.html": node(nil, "a.html"),
		}
		g.Link()

		got := g.Dependents("a.html")
		assert.ElementsMatch(t, []string{"a.html", "b.html"}, keys(got))
	})

	t.Run("unknown seed", func(t *testing.T) {
		g := domain.TemplateGraph{}
		got := g.Dependents("ghost.html")
		assert.Equal(t, []string{"ghost.html"}, keys(got))
	})
}

func TestTemplateGraph_Chain(t *testing.T) {
	g := domain.TemplateGraph{
		"post.html":   node([]string{"base.html"}, "byline.html"),
		"base.html":   node(nil, "nav.html"),
		"nav.html":    node(nil),
		"byline.html": node(nil, "nav.html"),
	}
	g.Link()

	assert.Equal(t,
		[]string{"post.html", "base.html", "byline.html", "nav.html"},
		g.Chain("post"),
	)
	assert.Equal(t, []string{"orphan.html"}, g.Chain("orphan.html"))
	assert.Empty(t, g.Chain(""))
}

func TestTemplateGraph_ChainCycle(t *testing.T) {
	g := domain.TemplateGraph{
		"a.html": node([]string{"b.html"}),
		"b.html": node([]string{"a.html"}),
	}
	g.Link()

	assert.Equal(t, []string{"a.html", "b.html"}, g.Chain("a"))
}
