package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/folio/internal/core/domain"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in       string
		dateOnly bool
		want     time.Time
	}{
		{"2024-03-15", true, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15T10:30:00Z", false, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15T10:30:00.5", false, time.Date(2024, 3, 15, 10, 30, 0, 500000000, time.UTC)},
		{"2024-03-15 10:30:00", false, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ts, err := domain.ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.dateOnly, ts.DateOnly)
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}

	_, err := domain.ParseTimestamp("last tuesday")
	require.Error(t, err)
}

func TestTimestamp_String(t *testing.T) {
	assert.Equal(t, "2024-03-15", domain.NewDate(2024, 3, 15).String())

	ts := domain.Timestamp{Time: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2024-03-15T10:30:00Z", ts.String())
}

func TestCachedPage_RoundTrip(t *testing.T) {
	date := domain.NewDate(2024, 1, 2)
	updated := domain.Timestamp{Time: time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)}

	in := domain.CachedPage{
		Page: domain.Page{
			Title:     "Hello",
			Content:   "<p>hi</p>",
			Layout:    "post",
			URL:       "/posts/hello.html",
			Date:      &date,
			Templates: []string{"post.html", "base.html"},
			Meta: map[string]any{
				"updated": updated,
				"tags":    []any{"go", "cache"},
				"draft":   false,
				"weight":  3,
			},
		},
		Version:  domain.CacheVersion,
		CachedAt: 1700000000.25,
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2024-01-02", raw["date"])
	assert.Equal(t, "2024-02-03T04:05:06Z", raw["updated"])
	assert.EqualValues(t, domain.CacheVersion, raw["version"])
	assert.Contains(t, raw, "cached_at")

	var out domain.CachedPage
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.Content, out.Content)
	assert.Equal(t, in.Layout, out.Layout)
	assert.Equal(t, in.URL, out.URL)
	assert.Equal(t, in.Templates, out.Templates)
	assert.Equal(t, in.Version, out.Version)
	assert.InDelta(t, in.CachedAt, out.CachedAt, 1e-6)

	require.NotNil(t, out.Date)
	assert.True(t, out.Date.DateOnly, "pure date must stay a date")
	assert.True(t, date.Equal(*out.Date))

	gotUpdated, ok := out.Meta["updated"].(domain.Timestamp)
	require.True(t, ok)
	assert.False(t, gotUpdated.DateOnly)
	assert.True(t, updated.Equal(gotUpdated))

	assert.Equal(t, []any{"go", "cache"}, out.Meta["tags"])
	assert.Equal(t, false, out.Meta["draft"])
	assert.Equal(t, 3, out.Meta["weight"])
	assert.NotContains(t, out.Meta, "version")
	assert.NotContains(t, out.Meta, "cached_at")
}

func TestPage_Fields(t *testing.T) {
	date := domain.NewDate(2024, 1, 2)
	p := &domain.Page{
		Title: "T",
		URL:   "/t.html",
		Date:  &date,
		Meta:  map[string]any{"author": "me", "updated": domain.NewDate(2024, 5, 6)},
	}

	f := p.Fields()
	assert.Equal(t, "T", f["title"])
	assert.Equal(t, "me", f["author"])
	assert.Equal(t, date.Time, f["date"])
	assert.IsType(t, time.Time{}, f["updated"])
}

func TestPage_MarshalUnsupported(t *testing.T) {
	p := domain.Page{Meta: map[string]any{"bad": make(chan int)}}
	_, err := json.Marshal(p)
	require.Error(t, err)
}

func TestDecodeDates(t *testing.T) {
	at := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	meta := map[string]any{
		"updated":   at,
		"published": "2024-01-15",
		"expires":   "not a date",
		"note":      "2024-01-15",
	}

	domain.DecodeDates(meta)

	assert.Equal(t, domain.Timestamp{Time: at}, meta["updated"])
	assert.Equal(t, domain.NewDate(2024, 1, 15), meta["published"])
	assert.Equal(t, "not a date", meta["expires"])
	assert.Equal(t, "2024-01-15", meta["note"], "only date fields are decoded")
}

func TestContentSlug(t *testing.T) {
	tests := map[string]string{
		"Hello World":        "hello-world",
		"Go/Rust: A Compare": "go-rust-a-compare",
		"Ünïcode Títle":      "ünïcode-títle",
		"!!!":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, domain.ContentSlug(in), in)
	}
}

func TestParseContentKind(t *testing.T) {
	kind, err := domain.ParseContentKind("page")
	require.NoError(t, err)
	assert.Equal(t, domain.KindPage, kind)

	_, err = domain.ParseContentKind("draft")
	require.ErrorIs(t, err, domain.ErrInvalidContentName)
}

func TestDiagnosis_Failed(t *testing.T) {
	var d domain.Diagnosis
	d.Add(domain.CheckOK, "templates/", "found")
	d.Add(domain.CheckWarn, "static/", "not found")
	assert.False(t, d.Failed())

	d.Add(domain.CheckFail, "config", "invalid")
	assert.True(t, d.Failed())
}
