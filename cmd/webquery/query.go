package main

import (
	"github.com/fwojciec/webquery"
	"github.com/fwojciec/webquery/rag"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	ans, err := deps.Pipeline.Run(deps.Ctx, rag.Request{
		BaseURL:    c.BaseURL,
		Website:    c.Website,
		Question:   c.Question,
		TopMatches: c.TopMatches,
	})
	if err != nil {
		return err
	}

	if err := webquery.WriteAnswer(deps.Stdout, ans); err != nil {
		return err
	}
	if c.Sources {
		return webquery.WriteSources(deps.Stdout, ans)
	}
	return nil
}
