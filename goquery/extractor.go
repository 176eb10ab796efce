// Package goquery implements webquery.Extractor and webquery.Converter with
// github.com/PuerkitoBio/goquery. The extractor keeps the whole page body and
// the converter renders its visible text, which mirrors what a browser user
// would read on the page.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webquery"
)

// Ensure Extractor implements webquery.Extractor at compile time.
var _ webquery.Extractor = (*Extractor)(nil)

// Extractor returns the page title and the full body HTML without any
// boilerplate removal.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns its title and body.
func (e *Extractor) Extract(rawHTML string) (*webquery.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webquery.Errorf(webquery.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webquery.Errorf(webquery.EINVALID, "failed to parse HTML: %v", err)
	}

	body, err := goquery.OuterHtml(doc.Find("body").First())
	if err != nil {
		return nil, err
	}

	return &webquery.ExtractResult{
		Title:       title(doc),
		ContentHTML: body,
	}, nil
}

// title returns the document title, preferring <title> over og:title.
func title(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("head title").First().Text()); t != "" {
		return t
	}
	if t, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		return strings.TrimSpace(t)
	}
	return ""
}
