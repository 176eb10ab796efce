package rag

import (
	"context"

	"github.com/fwojciec/webquery"
)

// Request holds the inputs of one pipeline run.
type Request struct {
	BaseURL    string
	Website    string
	Question   string
	TopMatches int
}

// Validate returns an error if the request contains invalid fields.
func (r *Request) Validate() error {
	switch {
	case r.BaseURL == "":
		return webquery.Errorf(webquery.EINVALID, "base URL required")
	case r.Website == "":
		return webquery.Errorf(webquery.EINVALID, "website required")
	case r.Question == "":
		return webquery.Errorf(webquery.EINVALID, "question required")
	case r.TopMatches <= 0:
		return webquery.Errorf(webquery.EINVALID, "top matches must be positive, got %d", r.TopMatches)
	}
	return nil
}

// Event reports a pipeline state transition.
type Event struct {
	State webquery.State

	// Count is the size of what the step produced: runes of page text
	// after StateLoaded, chunks after StateChunked, indexed chunks after
	// StateIndexed and results after StateRetrieved.
	Count int

	// Err is set for StateFailed.
	Err error
}

// ProgressFunc is a callback for observing pipeline progress.
type ProgressFunc func(event Event)

// Pipeline answers a question about a web page. Steps run strictly in
// order and the first failure ends the run.
type Pipeline struct {
	Health   webquery.HealthChecker
	Loader   webquery.Loader
	Splitter webquery.Splitter
	Builder  webquery.IndexBuilder
	Embedder webquery.Embedder
	Asker    webquery.Asker

	// Progress, if set, receives every state transition.
	Progress ProgressFunc
}

// Run executes the pipeline for req.
func (p *Pipeline) Run(ctx context.Context, req Request) (ans *webquery.Answer, err error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p.report(Event{State: webquery.StateInit})
	defer func() {
		if err != nil {
			p.report(Event{State: webquery.StateFailed, Err: err})
		}
	}()

	if err := p.Health.Check(ctx, req.BaseURL); err != nil {
		return nil, webquery.Wrap(webquery.EUNAVAILABLE, err, "check %s", req.BaseURL)
	}
	p.report(Event{State: webquery.StateChecked})

	doc, err := p.Loader.Load(ctx, req.Website)
	if err != nil {
		return nil, err
	}
	p.report(Event{State: webquery.StateLoaded, Count: len([]rune(doc.Content))})

	chunks, err := p.Splitter.Split(doc)
	if err != nil {
		return nil, webquery.Wrap(webquery.EINVALID, err, "split document")
	}
	p.report(Event{State: webquery.StateChunked, Count: len(chunks)})

	idx, err := p.Builder.Build(ctx, chunks)
	if err != nil {
		return nil, fail(webquery.EEMBED, err, "build index")
	}
	p.report(Event{State: webquery.StateIndexed, Count: idx.Len()})

	retriever := &Retriever{Embedder: p.Embedder, Index: idx}
	results, err := retriever.Retrieve(ctx, webquery.Query{Text: req.Question, TopK: req.TopMatches})
	if err != nil {
		return nil, err
	}
	p.report(Event{State: webquery.StateRetrieved, Count: len(results)})

	ans, err = p.Asker.Ask(ctx, req.Question, results)
	if err != nil {
		return nil, err
	}
	p.report(Event{State: webquery.StateAnswered})
	p.report(Event{State: webquery.StateDone})
	return ans, nil
}

func (p *Pipeline) report(e Event) {
	if p.Progress != nil {
		p.Progress(e)
	}
}
