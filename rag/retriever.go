package rag

import (
	"context"

	"github.com/fwojciec/webquery"
)

// Ensure Retriever implements webquery.Retriever at compile time.
var _ webquery.Retriever = (*Retriever)(nil)

// Retriever embeds questions with the embedder that built Index.
type Retriever struct {
	Embedder webquery.Embedder
	Index    webquery.Index
}

// Retrieve returns the chunks closest to q.Text.
func (r *Retriever) Retrieve(ctx context.Context, q webquery.Query) ([]webquery.SearchResult, error) {
	if q.TopK <= 0 {
		return nil, webquery.Errorf(webquery.EINVALID, "top matches must be positive, got %d", q.TopK)
	}
	if r.Index == nil || r.Index.Len() == 0 {
		return nil, webquery.Errorf(webquery.EQUERY, "index is empty")
	}

	vec, err := r.Embedder.EmbedQuery(ctx, q.Text)
	if err != nil {
		return nil, fail(webquery.EQUERY, err, "embed question")
	}

	results, err := r.Index.Search(ctx, vec, q.TopK)
	if err != nil {
		return nil, webquery.Wrap(webquery.EQUERY, err, "search index")
	}
	return results, nil
}
