package mock

import (
	"context"

	"github.com/fwojciec/webquery"
)

var (
	_ webquery.Loader   = (*Loader)(nil)
	_ webquery.Splitter = (*Splitter)(nil)
)

// Loader is a mock implementation of webquery.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, url string) (*webquery.Document, error)
}

func (l *Loader) Load(ctx context.Context, url string) (*webquery.Document, error) {
	return l.LoadFn(ctx, url)
}

// Splitter is a mock implementation of webquery.Splitter.
type Splitter struct {
	SplitFn func(doc *webquery.Document) ([]*webquery.Chunk, error)
}

func (s *Splitter) Split(doc *webquery.Document) ([]*webquery.Chunk, error) {
	return s.SplitFn(doc)
}
