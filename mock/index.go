package mock

import (
	"context"

	"github.com/fwojciec/webquery"
)

var (
	_ webquery.Embedder     = (*Embedder)(nil)
	_ webquery.Index        = (*Index)(nil)
	_ webquery.IndexBuilder = (*IndexBuilder)(nil)
	_ webquery.Retriever    = (*Retriever)(nil)
)

// Embedder is a mock implementation of webquery.Embedder.
type Embedder struct {
	EmbedDocumentsFn func(ctx context.Context, texts []string) ([]webquery.Vector, error)
	EmbedQueryFn     func(ctx context.Context, text string) (webquery.Vector, error)
}

func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([]webquery.Vector, error) {
	return e.EmbedDocumentsFn(ctx, texts)
}

func (e *Embedder) EmbedQuery(ctx context.Context, text string) (webquery.Vector, error) {
	return e.EmbedQueryFn(ctx, text)
}

// Index is a mock implementation of webquery.Index.
type Index struct {
	SearchFn func(ctx context.Context, vec webquery.Vector, k int) ([]webquery.SearchResult, error)
	LenFn    func() int
}

func (i *Index) Search(ctx context.Context, vec webquery.Vector, k int) ([]webquery.SearchResult, error) {
	return i.SearchFn(ctx, vec, k)
}

func (i *Index) Len() int {
	return i.LenFn()
}

// IndexBuilder is a mock implementation of webquery.IndexBuilder.
type IndexBuilder struct {
	BuildFn func(ctx context.Context, chunks []*webquery.Chunk) (webquery.Index, error)
}

func (b *IndexBuilder) Build(ctx context.Context, chunks []*webquery.Chunk) (webquery.Index, error) {
	return b.BuildFn(ctx, chunks)
}

// Retriever is a mock implementation of webquery.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, q webquery.Query) ([]webquery.SearchResult, error)
}

func (r *Retriever) Retrieve(ctx context.Context, q webquery.Query) ([]webquery.SearchResult, error) {
	return r.RetrieveFn(ctx, q)
}
