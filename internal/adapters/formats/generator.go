// Package formats writes the output artifacts of a page: the rendered HTML
// layout plus plain text, XML and JSON renditions of its content.
package formats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/afero"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

// Supported output formats.
const (
	FormatHTML  = "html"
	FormatPlain = "plain"
	FormatTxt   = "txt"
	FormatXML   = "xml"
	FormatJSON  = "json"
)

const ruleWidth = 80

var _ ports.FormatGenerator = (*Generator)(nil)

// Generator writes one artifact per (page, format) pair.
type Generator struct {
	fs       afero.Fs
	renderer ports.LayoutRenderer
}

// NewGenerator creates a Generator writing through fs.
func NewGenerator(fs afero.Fs, renderer ports.LayoutRenderer) *Generator {
	return &Generator{fs: fs, renderer: renderer}
}

// Supported reports whether format is known.
func Supported(format string) bool {
	switch format {
	case FormatHTML, FormatPlain, FormatTxt, FormatXML, FormatJSON:
		return true
	default:
		return false
	}
}

// Generate renders page as format and writes it next to outputBase with the
// format's extension. It returns the written path.
func (g *Generator) Generate(
	ctx context.Context,
	site *domain.SiteConfig,
	page *domain.Page,
	source domain.SourcePath,
	outputBase, format string,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		data []byte
		ext  string
		err  error
	)
	switch format {
	case FormatHTML:
		ext = ".html"
		data, err = g.renderer.Render(page.Layout, map[string]any{
			"site": site.SiteFields(),
			"page": page.Fields(),
		})
	case FormatPlain, FormatTxt:
		ext = ".txt"
		data, err = plainText(page)
	case FormatXML:
		ext = ".xml"
		data, err = xmlDocument(page)
	case FormatJSON:
		ext = ".json"
		data, err = jsonDocument(page)
	default:
		return "", errors.Join(domain.ErrUnsupportedFormat,
			zerr.With(zerr.With(zerr.New("unknown output format"), "format", format), "source", source.String()))
	}
	if err != nil {
		if errors.Is(err, domain.ErrLayoutRenderFailed) {
			return "", err
		}
		return "", errors.Join(domain.ErrContentProcessFailed, zerr.With(zerr.With(err, "format", format), "source", source.String()))
	}

	out := outputBase + ext
	if err := g.fs.MkdirAll(filepath.Dir(out), domain.DirPerm); err != nil {
		return "", errors.Join(domain.ErrOutputWriteFailed, zerr.With(err, "path", out))
	}
	if err := afero.WriteFile(g.fs, out, data, domain.FilePerm); err != nil {
		return "", errors.Join(domain.ErrOutputWriteFailed, zerr.With(err, "path", out))
	}
	return out, nil
}

// metaField is one metadata entry of a page, in output order.
type metaField struct {
	Key   string
	Value any
}

// metadata lists the page's fields except content and url: title, date and
// layout first, then the remaining front matter sorted by key. Nil values
// are skipped.
func metadata(page *domain.Page) []metaField {
	fields := []metaField{{Key: "title", Value: page.Title}}
	if page.Date != nil {
		fields = append(fields, metaField{Key: "date", Value: *page.Date})
	}
	fields = append(fields, metaField{Key: "layout", Value: page.Layout})

	keys := make([]string, 0, len(page.Meta))
	for k, v := range page.Meta {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fields = append(fields, metaField{Key: k, Value: page.Meta[k]})
	}
	return fields
}

// formatValue renders a metadata value for the text and XML outputs.
func formatValue(v any) string {
	switch val := v.(type) {
	case domain.Timestamp:
		return val.String()
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

// titleCase upper-cases every letter that follows a non-letter.
func titleCase(s string) string {
	var sb strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		sb.WriteRune(r)
		prevLetter = false
	}
	return sb.String()
}

func plainText(page *domain.Page) ([]byte, error) {
	body, err := htmltomarkdown.ConvertString(page.Content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("METADATA:\n")
	for _, f := range metadata(page) {
		fmt.Fprintf(&buf, "%s: %s\n", titleCase(f.Key), formatValue(f.Value))
	}
	buf.WriteString("\nCONTENT:\n")
	buf.WriteString(strings.Repeat("=", ruleWidth))
	buf.WriteString("\n\n")
	buf.WriteString(strings.TrimSpace(body))
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func jsonDocument(page *domain.Page) ([]byte, error) {
	sections, err := ExtractSections(page.Content)
	if err != nil {
		return nil, err
	}
	if sections == nil {
		sections = []Section{}
	}

	meta := make(map[string]any)
	for _, f := range metadata(page) {
		if ts, ok := f.Value.(domain.Timestamp); ok {
			meta[f.Key] = ts.String()
			continue
		}
		meta[f.Key] = f.Value
	}

	doc := struct {
		Metadata map[string]any `json:"metadata"`
		Content  struct {
			Sections []Section `json:"sections"`
		} `json:"content"`
	}{Metadata: meta}
	doc.Content.Sections = sections

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
