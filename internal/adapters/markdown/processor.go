// Package markdown turns content sources with YAML front matter into pages.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultLayout is used when front matter names no layout.
const DefaultLayout = "default"

const fence = "---"

var _ ports.ContentProcessor = (*Processor)(nil)

// Processor converts markdown sources under a content directory.
type Processor struct {
	contentDir string
	md         goldmark.Markdown
}

// NewProcessor creates a Processor for sources under contentDir.
func NewProcessor(contentDir string) *Processor {
	return &Processor{
		contentDir: contentDir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Process reads the source at p, splits off its front matter and renders the
// body. Missing title, layout and url fall back to the file stem, "default"
// and the source path relative to the content directory. A missing date
// falls back to the file's modification time.
func (p *Processor) Process(ctx context.Context, src domain.SourcePath) (*domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(src.String())
	if err != nil {
		return nil, errors.Join(domain.ErrContentProcessFailed, zerr.With(err, "path", src.String()))
	}
	data, err := os.ReadFile(src.String())
	if err != nil {
		return nil, errors.Join(domain.ErrContentProcessFailed, zerr.With(err, "path", src.String()))
	}

	meta, body, err := SplitFrontMatter(data)
	if err != nil {
		return nil, errors.Join(domain.ErrFrontMatterInvalid, zerr.With(err, "path", src.String()))
	}

	var out bytes.Buffer
	if err := p.md.Convert(body, &out); err != nil {
		return nil, errors.Join(domain.ErrContentProcessFailed, zerr.With(err, "path", src.String()))
	}

	url, err := p.URL(src)
	if err != nil {
		return nil, errors.Join(domain.ErrContentProcessFailed, zerr.With(err, "path", src.String()))
	}

	page := &domain.Page{
		Title:     strings.TrimSuffix(filepath.Base(src.String()), filepath.Ext(src.String())),
		Content:   out.String(),
		Layout:    DefaultLayout,
		URL:       url,
		Templates: []string{},
		Meta:      make(map[string]any, len(meta)),
	}

	for k, v := range meta {
		switch k {
		case "title":
			if s, ok := scalarString(v); ok {
				page.Title = s
			}
		case "layout":
			if s, ok := scalarString(v); ok && s != "" {
				page.Layout = s
			}
		case "url":
			if s, ok := v.(string); ok && s != "" {
				page.URL = s
			}
		case "date":
			ts, ok := domain.TimestampFrom(v)
			if !ok {
				return nil, errors.Join(domain.ErrFrontMatterInvalid,
					zerr.With(zerr.With(zerr.New("unparseable date"), "path", src.String()), "date", v))
			}
			page.Date = &ts
		case "content", "templates":
		default:
			page.Meta[k] = v
		}
	}
	domain.DecodeDates(page.Meta)

	if page.Date == nil {
		ts := domain.Timestamp{Time: info.ModTime().UTC()}
		page.Date = &ts
	}
	return page, nil
}

// URL returns the site URL for src: its path relative to the content
// directory with a .html extension, always slash separated. Sources outside
// the content directory map to their file name.
func (p *Processor) URL(src domain.SourcePath) (string, error) {
	rel, err := src.Rel(p.contentDir)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		rel = path.Base(filepath.ToSlash(src.String()))
	}
	rel = strings.TrimSuffix(rel, path.Ext(rel)) + domain.TemplateExt
	return "/" + rel, nil
}

// SplitFrontMatter separates a leading YAML block delimited by --- lines
// from the markdown body. Data without front matter yields an empty map.
func SplitFrontMatter(data []byte) (map[string]any, []byte, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	meta := map[string]any{}

	first, rest, ok := cutLine(data)
	if !ok || strings.TrimRight(string(first), " \t\r") != fence {
		return meta, data, nil
	}

	var header []byte
	for {
		line, next, more := cutLine(rest)
		if strings.TrimRight(string(line), " \t\r") == fence {
			meta, err := decodeFrontMatter(header)
			if err != nil {
				return nil, nil, err
			}
			return meta, next, nil
		}
		if !more {
			// No closing fence: the whole file is body.
			return map[string]any{}, data, nil
		}
		header = append(header, line...)
		header = append(header, '\n')
		rest = next
	}
}

// decodeFrontMatter decodes a YAML mapping. Timestamp scalars keep their
// source text so a bare date stays distinguishable from a date-time.
func decodeFrontMatter(header []byte) (map[string]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(header, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return map[string]any{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.New("front matter is not a mapping"), "line", root.Line)
	}
	v, err := nodeValue(root)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			v, err := nodeValue(val)
			if err != nil {
				return nil, err
			}
			if key.Tag == "!!merge" {
				if merged, ok := v.(map[string]any); ok {
					for mk, mv := range merged {
						if _, exists := out[mk]; !exists {
							out[mk] = mv
						}
					}
				}
				continue
			}
			out[key.Value] = v
		}
		return out, nil
	default:
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// cutLine splits off the first line of b. ok is false when b is empty.
func cutLine(b []byte) (line, rest []byte, ok bool) {
	if len(b) == 0 {
		return nil, nil, false
	}
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i], b[i+1:], true
	}
	return b, nil, true
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case int, int64, float64, bool:
		return fmt.Sprint(val), true
	default:
		return "", false
	}
}
