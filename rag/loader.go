package rag

import (
	"context"
	"strings"

	"github.com/fwojciec/webquery"
	"github.com/google/uuid"
)

// Ensure Loader implements webquery.Loader at compile time.
var _ webquery.Loader = (*Loader)(nil)

// Loader turns a web page into a Document by fetching it, selecting its
// content and converting that content to text.
type Loader struct {
	Fetcher   webquery.Fetcher
	Extractor webquery.Extractor
	Converter webquery.Converter
}

// Load fetches url and returns its text. Every failure is reported as EFETCH.
func (l *Loader) Load(ctx context.Context, url string) (*webquery.Document, error) {
	html, err := l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fail(webquery.EFETCH, err, "fetch %s", url)
	}

	extracted, err := l.Extractor.Extract(html)
	if err != nil {
		return nil, fail(webquery.EFETCH, err, "extract content from %s", url)
	}

	text, err := l.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, fail(webquery.EFETCH, err, "convert content from %s", url)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, webquery.Errorf(webquery.EFETCH, "no text content found at %s", url)
	}

	doc := &webquery.Document{
		ID:        uuid.NewString(),
		SourceURL: url,
		Title:     extracted.Title,
		Content:   text,
	}
	if err := doc.Validate(); err != nil {
		return nil, fail(webquery.EFETCH, err, "load %s", url)
	}
	return doc, nil
}
