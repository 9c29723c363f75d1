package formats

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Block types inside a section.
const (
	BlockParagraph = "paragraph"
	BlockList      = "list"
	BlockCode      = "code"
	BlockQuote     = "quote"
)

// Section is a heading and the blocks that follow it up to the next heading.
// Blocks before the first heading land in a section with level 0 and no title.
type Section struct {
	ID      string  `json:"id"`
	Level   int     `json:"level"`
	Title   string  `json:"title"`
	Content []Block `json:"content"`
}

// Block is one paragraph, list, code listing or quote.
type Block struct {
	Type     string   `json:"type"`
	Text     string   `json:"text,omitempty"`
	Style    string   `json:"style,omitempty"`
	Items    []string `json:"items,omitempty"`
	Language string   `json:"language,omitempty"`
}

var slugStrip = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)

// Slug derives a section id from a heading: characters other than ASCII
// letters, digits, whitespace and dashes are dropped, the rest is trimmed,
// lowercased and spaces become dashes.
func Slug(title string) string {
	s := slugStrip.ReplaceAllString(title, "")
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}

// ExtractSections parses an HTML fragment into sections. Headings h1-h6 open
// a section; p, ul, ol, pre and blockquote elements become blocks. Matched
// elements are not searched for further matches.
func ExtractSections(fragment string) ([]Section, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}

	var sections []Section
	current := -1
	add := func(b Block) {
		if current < 0 {
			sections = append(sections, Section{Content: []Block{}})
			current = 0
		}
		sections[current].Content = append(sections[current].Content, b)
	}

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				title := strings.TrimSpace(textOf(n))
				sections = append(sections, Section{ID: Slug(title), Level: level, Title: title, Content: []Block{}})
				current = len(sections) - 1
				return
			}
			switch n.Data {
			case "p":
				if text := strings.TrimSpace(textOf(n)); text != "" {
					add(Block{Type: BlockParagraph, Text: text})
				}
				return
			case "ul", "ol":
				style := "bullet"
				if n.Data == "ol" {
					style = "ordered"
				}
				add(Block{Type: BlockList, Style: style, Items: listItems(n)})
				return
			case "pre":
				add(codeBlock(n))
				return
			case "blockquote":
				add(Block{Type: BlockQuote, Text: strings.TrimSpace(textOf(n))})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}

	for _, n := range nodes {
		visit(n)
	}
	return sections, nil
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func listItems(n *html.Node) []string {
	items := []string{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				items = append(items, strings.TrimSpace(textOf(c)))
			}
			walk(c)
		}
	}
	walk(n)
	return items
}

func codeBlock(pre *html.Node) Block {
	for c := pre.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "code" {
			continue
		}
		b := Block{Type: BlockCode, Text: textOf(c)}
		for _, attr := range c.Attr {
			if attr.Key != "class" {
				continue
			}
			for _, cls := range strings.Fields(attr.Val) {
				if lang, ok := strings.CutPrefix(cls, "language-"); ok {
					b.Language = lang
					break
				}
			}
		}
		return b
	}
	return Block{Type: BlockCode, Text: textOf(pre)}
}
