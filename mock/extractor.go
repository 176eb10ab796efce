package mock

import "github.com/fwojciec/webquery"

var _ webquery.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webquery.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webquery.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webquery.ExtractResult, error) {
	return e.ExtractFn(html)
}
