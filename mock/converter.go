package mock

import "github.com/fwojciec/webquery"

var _ webquery.Converter = (*Converter)(nil)

// Converter is a mock implementation of webquery.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
