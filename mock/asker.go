package mock

import (
	"context"

	"github.com/fwojciec/webquery"
)

var (
	_ webquery.Asker     = (*Asker)(nil)
	_ webquery.Generator = (*Generator)(nil)
)

// Asker is a mock implementation of webquery.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string, results []webquery.SearchResult) (*webquery.Answer, error)
}

func (a *Asker) Ask(ctx context.Context, question string, results []webquery.SearchResult) (*webquery.Answer, error) {
	return a.AskFn(ctx, question, results)
}

// Generator is a mock implementation of webquery.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req *webquery.GenerateRequest) (string, error)
}

func (g *Generator) Generate(ctx context.Context, req *webquery.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}
