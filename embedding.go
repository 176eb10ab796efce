package webquery

import "context"

// Vector is an embedding of a piece of text.
type Vector []float32

// Embedder computes vector embeddings for chunks and queries.
// All vectors produced by one Embedder share the same dimension.
type Embedder interface {
	// EmbedDocuments returns one vector per text, in order.
	EmbedDocuments(ctx context.Context, texts []string) ([]Vector, error)

	// EmbedQuery returns the vector for a single query text.
	EmbedQuery(ctx context.Context, text string) (Vector, error)
}
