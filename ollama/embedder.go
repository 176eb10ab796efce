package ollama

import (
	"context"

	"github.com/fwojciec/webquery"
	"github.com/ollama/ollama/api"
)

// DefaultEmbedModel is the embedding model used when none is configured.
const DefaultEmbedModel = "nomic-embed-text"

// Ensure Embedder implements webquery.Embedder at compile time.
var _ webquery.Embedder = (*Embedder)(nil)

// Embedder computes embeddings with an Ollama embedding model.
type Embedder struct {
	client *Client
	model  string
}

// NewEmbedder creates an Embedder for model.
func NewEmbedder(client *Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbedModel
	}
	return &Embedder{client: client, model: model}
}

// EmbedDocuments embeds texts in a single request.
// Returns EEMBED on failure or if the server returns the wrong number of vectors.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([]webquery.Vector, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.api.Embed(ctx, &api.EmbedRequest{
		Model: e.model,
		Input: texts,
	})
	if err != nil {
		return nil, webquery.Errorf(webquery.EEMBED, "embed with %s: %s", e.model, describe(ctx, err))
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, webquery.Errorf(webquery.EEMBED, "embed with %s: got %d vectors for %d texts", e.model, len(resp.Embeddings), len(texts))
	}

	vecs := make([]webquery.Vector, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		vecs[i] = webquery.Vector(emb)
	}
	return vecs, nil
}

// EmbedQuery embeds a single text.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) (webquery.Vector, error) {
	vecs, err := e.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}
