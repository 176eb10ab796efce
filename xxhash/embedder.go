// Package xxhash implements an in-process webquery.Embedder using feature
// hashing: each lowercased word is hashed into one of a fixed number of
// buckets, and the bucket counts are L2-normalised.
package xxhash

import (
	"context"
	"math"
	"strings"
	"unicode"

	xxh "github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webquery"
)

// DefaultDimension is the vector size used when none is configured.
const DefaultDimension = 1024

// Ensure Embedder implements webquery.Embedder at compile time.
var _ webquery.Embedder = (*Embedder)(nil)

// Embedder produces bag-of-words vectors without a model.
type Embedder struct {
	dim int
}

// Option configures an Embedder.
type Option func(*Embedder)

// WithDimension sets the vector size. Non-positive values are ignored.
func WithDimension(dim int) Option {
	return func(e *Embedder) {
		if dim > 0 {
			e.dim = dim
		}
	}
}

// NewEmbedder creates an Embedder.
func NewEmbedder(opts ...Option) *Embedder {
	e := &Embedder{dim: DefaultDimension}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dimension returns the length of every produced vector.
func (e *Embedder) Dimension() int {
	return e.dim
}

// EmbedDocuments returns one vector per text.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([]webquery.Vector, error) {
	vecs := make([]webquery.Vector, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, webquery.Wrap(webquery.EEMBED, err, "embedding interrupted")
		}
		vecs[i] = e.embed(text)
	}
	return vecs, nil
}

// EmbedQuery returns the vector for text. Text without words maps to the
// zero vector.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) (webquery.Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, webquery.Wrap(webquery.EEMBED, err, "embedding interrupted")
	}
	return e.embed(text), nil
}

func (e *Embedder) embed(text string) webquery.Vector {
	vec := make(webquery.Vector, e.dim)
	for _, tok := range Tokenize(text) {
		vec[xxh.Sum64String(tok)%uint64(e.dim)]++
	}

	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vec
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Tokenize splits text into lowercased runs of letters and digits.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
