package formats

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"go.trai.ch/folio/internal/core/domain"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// xmlName turns a front-matter key into a valid element name.
func xmlName(key string) string {
	var sb strings.Builder
	for i, r := range key {
		valid := unicode.IsLetter(r) || r == '_' || (i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'))
		if !valid {
			if i == 0 && unicode.IsDigit(r) {
				sb.WriteRune('_')
				sb.WriteRune(r)
				continue
			}
			sb.WriteRune('_')
			continue
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

func xmlDocument(page *domain.Page) ([]byte, error) {
	sections, err := ExtractSections(page.Content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<document>\n  <meta>\n")
	for _, f := range metadata(page) {
		name := xmlName(f.Key)
		fmt.Fprintf(&buf, "    <%s>%s</%s>\n", name, escapeXML(formatValue(f.Value)), name)
	}
	buf.WriteString("  </meta>\n  <content>\n")

	for _, s := range sections {
		indent := "    "
		if s.Level > 0 {
			fmt.Fprintf(&buf, "    <section id=\"%s\" level=\"%d\">\n", escapeXML(s.ID), s.Level)
			fmt.Fprintf(&buf, "      <title>%s</title>\n", escapeXML(s.Title))
			indent = "      "
		}
		for _, b := range s.Content {
			writeXMLBlock(&buf, indent, b)
		}
		if s.Level > 0 {
			buf.WriteString("    </section>\n")
		}
	}

	buf.WriteString("  </content>\n</document>\n")
	return buf.Bytes(), nil
}

func writeXMLBlock(buf *bytes.Buffer, indent string, b Block) {
	switch b.Type {
	case BlockParagraph:
		fmt.Fprintf(buf, "%s<paragraph>%s</paragraph>\n", indent, escapeXML(b.Text))
	case BlockList:
		fmt.Fprintf(buf, "%s<list type=\"%s\">\n", indent, b.Style)
		for _, item := range b.Items {
			fmt.Fprintf(buf, "%s  <item>%s</item>\n", indent, escapeXML(item))
		}
		fmt.Fprintf(buf, "%s</list>\n", indent)
	case BlockCode:
		lang := ""
		if b.Language != "" {
			lang = fmt.Sprintf(" language=\"%s\"", escapeXML(b.Language))
		}
		fmt.Fprintf(buf, "%s<code%s>%s</code>\n", indent, lang, escapeXML(b.Text))
	case BlockQuote:
		fmt.Fprintf(buf, "%s<quote>%s</quote>\n", indent, escapeXML(b.Text))
	}
}
