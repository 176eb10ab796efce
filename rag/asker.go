package rag

import (
	"context"
	"strings"

	"github.com/fwojciec/webquery"
)

// DefaultContextWindow is the number of tokens the model may condition on.
const DefaultContextWindow = 2048

// Ensure Asker implements webquery.Asker at compile time.
var _ webquery.Asker = (*Asker)(nil)

// Asker composes the prompt and calls the Generator.
type Asker struct {
	Generator     webquery.Generator
	System        string
	Temperature   float64
	ContextWindow int
}

// Ask answers question from the retrieved results.
func (a *Asker) Ask(ctx context.Context, question string, results []webquery.SearchResult) (*webquery.Answer, error) {
	window := a.ContextWindow
	if window <= 0 {
		window = DefaultContextWindow
	}

	p := webquery.NewPrompt(a.System, question, results)
	text, err := a.Generator.Generate(ctx, &webquery.GenerateRequest{
		System:        p.System,
		Prompt:        p.User(),
		Temperature:   a.Temperature,
		ContextWindow: window,
	})
	if err != nil {
		return nil, fail(webquery.EINFERENCE, err, "generate answer")
	}

	return &webquery.Answer{
		Text:    strings.TrimSpace(text),
		Prompt:  p.String(),
		Sources: results,
	}, nil
}
