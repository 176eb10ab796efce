package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webquery"
	"golang.org/x/net/html"
)

// Ensure Converter implements webquery.Converter at compile time.
var _ webquery.Converter = (*Converter)(nil)

// invisible matches elements whose content is never rendered as text.
const invisible = "script, style, noscript, template, iframe, svg, object, head"

// paragraphElements are separated from their surroundings by a blank line.
var paragraphElements = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"article": true, "section": true, "blockquote": true, "pre": true, "table": true,
	"ul": true, "ol": true, "dl": true, "figure": true, "header": true, "footer": true,
	"main": true, "aside": true, "nav": true, "form": true, "hr": true,
}

// lineElements start on a new line.
var lineElements = map[string]bool{
	"div": true, "br": true, "li": true, "tr": true, "dt": true, "dd": true,
	"figcaption": true, "caption": true, "address": true, "details": true, "summary": true,
}

var (
	spaceRe    = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlinesRe = regexp.MustCompile(`\n{3,}`)
)

// Converter renders the visible text of HTML content.
// Paragraph-level elements are separated by blank lines and other block
// elements by single newlines, so downstream splitters can keep them intact.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert returns the visible text of html.
func (c *Converter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", webquery.Errorf(webquery.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", webquery.Errorf(webquery.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(invisible).Remove()

	var sb strings.Builder
	for _, n := range doc.Nodes {
		render(&sb, n, false)
	}

	return normalize(sb.String()), nil
}

func render(sb *strings.Builder, n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			sb.WriteString(n.Data)
			return
		}
		text := spaceRe.ReplaceAllString(strings.ReplaceAll(n.Data, "\n", " "), " ")
		if strings.TrimSpace(text) == "" && atLineStart(sb) {
			return
		}
		sb.WriteString(text)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	}

	breaks := 0
	if n.Type == html.ElementNode {
		switch {
		case paragraphElements[n.Data]:
			breaks = 2
		case lineElements[n.Data]:
			breaks = 1
		}
		if n.Data == "pre" {
			pre = true
		}
	}

	newlines(sb, breaks)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		render(sb, child, pre)
	}
	newlines(sb, breaks)
}

// newlines makes sure the output ends with at least n newlines, ignoring
// trailing spaces.
func newlines(sb *strings.Builder, n int) {
	if n == 0 {
		return
	}
	s := sb.String()
	have := 0
	for i := len(s) - 1; i >= 0 && have < n; i-- {
		if s[i] == '\n' {
			have++
		} else if s[i] != ' ' {
			break
		}
	}
	if len(s) == 0 {
		have = n
	}
	sb.WriteString(strings.Repeat("\n", n-have))
}

// atLineStart reports whether nothing but spaces follows the last newline.
func atLineStart(sb *strings.Builder) bool {
	s := strings.TrimRight(sb.String(), " ")
	return s == "" || s[len(s)-1] == '\n'
}

// normalize trims every line and collapses runs of blank lines.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = newlinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
