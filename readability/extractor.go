// Package readability implements webquery.Extractor with go-readability,
// the Go port of Mozilla's reader view.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/webquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webquery.Extractor at compile time.
var _ webquery.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// WithPageURL returns a copy of the extractor that resolves relative links
// against pageURL.
func (e *Extractor) WithPageURL(pageURL string) *Extractor {
	u, err := url.Parse(pageURL)
	if err != nil {
		return e
	}
	return &Extractor{pageURL: u}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*webquery.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webquery.Errorf(webquery.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, webquery.Wrap(webquery.EFETCH, err, "readability extraction failed")
	}

	return &webquery.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
