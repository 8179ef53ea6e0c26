// Package render turns a docset's HTML pages into styled terminal text.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
)

// Styles contains pre-configured lipgloss styles for page elements.
type Styles struct {
	Heading lipgloss.Style
	Code    lipgloss.Style
	Rule    lipgloss.Style
}

// DefaultStyles returns the default page styling.
func DefaultStyles() Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true),
		Code:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Ensure Renderer implements the interface.
var _ driven.PageRenderer = (*Renderer)(nil)

// Renderer writes rendered pages to out.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out, styles: DefaultStyles()}
}

// Render parses the page addressed by (docsetPath, item) and writes it
// wrapped to width columns. A non-nil fragment starts output at the
// element whose id matches; a fragment matching nothing renders the
// whole page.
func (r *Renderer) Render(docsetPath, item string, fragment *string, width int) error {
	path := filepath.Join(docsetPath, filepath.FromSlash(item)+domain.PageExtension)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: `%s`", domain.ErrPageNotFound, path)
		}
		return fmt.Errorf("open `%s`: %w", path, err)
	}
	defer file.Close()

	doc, err := html.Parse(file)
	if err != nil {
		return fmt.Errorf("parse `%s`: %w", path, err)
	}

	blocks := collectBlocks(doc)
	if fragment != nil {
		for i, b := range blocks {
			if b.anchor == *fragment {
				blocks = blocks[i:]
				break
			}
		}
	}

	for _, b := range blocks {
		r.printBlock(b, width)
	}
	return nil
}

type blockKind int

const (
	kindParagraph blockKind = iota
	kindHeading
	kindCode
	kindBullet
)

// block is one renderable unit of a page, tagged with the nearest
// enclosing anchor id so fragments can address it.
type block struct {
	kind   blockKind
	text   string
	anchor string
}

func (r *Renderer) printBlock(b block, width int) {
	switch b.kind {
	case kindHeading:
		fmt.Fprintln(r.out, r.styles.Heading.Render(wrap(b.text, width)))
		fmt.Fprintln(r.out, r.styles.Rule.Render(strings.Repeat("-", min(width, len(b.text)))))
	case kindCode:
		// Preformatted text keeps its own line structure.
		for _, line := range strings.Split(strings.TrimRight(b.text, "\n"), "\n") {
			fmt.Fprintln(r.out, r.styles.Code.Render("    "+line))
		}
	case kindBullet:
		fmt.Fprintln(r.out, wrapIndent("  - "+b.text, width, "    "))
	default:
		fmt.Fprintln(r.out, wrap(b.text, width))
	}
	fmt.Fprintln(r.out)
}

var blockTags = map[string]blockKind{
	"p": kindParagraph, "div": kindParagraph, "section": kindParagraph,
	"article": kindParagraph, "blockquote": kindParagraph,
	"table": kindParagraph, "tr": kindParagraph,
	"h1": kindHeading, "h2": kindHeading, "h3": kindHeading,
	"h4": kindHeading, "h5": kindHeading, "h6": kindHeading,
	"pre": kindCode,
	"li":  kindBullet,
}

var skipTags = map[string]bool{
	"head": true, "script": true, "style": true, "noscript": true,
}

// collectBlocks flattens the DOM into a sequence of text blocks.
type collector struct {
	blocks []block
	buf    strings.Builder
	anchor string
}

func collectBlocks(doc *html.Node) []block {
	c := &collector{}
	c.walk(doc, kindParagraph, false)
	c.flush(kindParagraph)
	return c.blocks
}

func (c *collector) walk(n *html.Node, kind blockKind, pre bool) {
	switch n.Type {
	case html.ElementNode:
		if skipTags[n.Data] {
			return
		}
		if id := attr(n, "id"); id != "" {
			c.flush(kind)
			c.anchor = id
		}
		if n.Data == "br" {
			c.flush(kind)
			return
		}
		if k, ok := blockTags[n.Data]; ok {
			c.flush(kind)
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				c.walk(child, k, k == kindCode)
			}
			c.flush(k)
			return
		}
	case html.TextNode:
		if pre {
			c.buf.WriteString(n.Data)
		} else {
			c.appendInline(n.Data)
		}
		return
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child, kind, pre)
	}
}

// appendInline adds text with runs of whitespace collapsed to a
// single space.
func (c *collector) appendInline(text string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}
	if c.buf.Len() > 0 {
		c.buf.WriteByte(' ')
	}
	c.buf.WriteString(strings.Join(fields, " "))
}

func (c *collector) flush(kind blockKind) {
	text := c.buf.String()
	c.buf.Reset()
	if kind != kindCode {
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return
	}
	c.blocks = append(c.blocks, block{kind: kind, text: text, anchor: c.anchor})
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// wrap greedily wraps text at word boundaries to width columns.
func wrap(text string, width int) string {
	return wrapIndent(text, width, "")
}

func wrapIndent(text string, width int, indent string) string {
	if width <= 0 {
		return text
	}

	var out strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		wordLen := len([]rune(word))
		switch {
		case i == 0:
			out.WriteString(word)
			lineLen = wordLen
		case lineLen+1+wordLen > width:
			out.WriteByte('\n')
			out.WriteString(indent)
			out.WriteString(word)
			lineLen = len(indent) + wordLen
		default:
			out.WriteByte(' ')
			out.WriteString(word)
			lineLen += 1 + wordLen
		}
	}
	return out.String()
}
