package webquery

import "context"

// Query is a question to retrieve supporting chunks for.
type Query struct {
	Text string `json:"text"`

	// TopK is the maximum number of chunks to return.
	TopK int `json:"topK"`
}

// SearchResult represents a retrieved chunk.
type SearchResult struct {
	Chunk *Chunk `json:"chunk"`

	// Distance to the query vector. Lower is more relevant.
	Distance float32 `json:"distance"`
}

// Index is a read-only nearest-neighbour index over chunk embeddings.
type Index interface {
	// Search returns up to k results ordered by increasing distance to
	// vec. Ties keep document order. Returns EQUERY if the index is empty.
	Search(ctx context.Context, vec Vector, k int) ([]SearchResult, error)

	// Len returns the number of indexed chunks.
	Len() int
}

// IndexBuilder embeds chunks and builds an Index in one bulk operation.
type IndexBuilder interface {
	// Build returns an index over all chunks.
	// Returns EEMBED if any chunk fails to embed; no partial index is returned.
	Build(ctx context.Context, chunks []*Chunk) (Index, error)
}

// Retriever finds the chunks most relevant to a query.
type Retriever interface {
	// Retrieve returns min(q.TopK, n) results, most relevant first.
	// Returns EQUERY if the index is empty or the query cannot be embedded.
	Retrieve(ctx context.Context, q Query) ([]SearchResult, error)
}
