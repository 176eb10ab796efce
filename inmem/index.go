// Package inmem implements webquery.Index as an exact nearest-neighbour
// search over vectors held in memory.
package inmem

import (
	"context"
	"math"
	"sort"

	"github.com/fwojciec/webquery"
)

// Ensure service implements interface.
var (
	_ webquery.Index        = (*Index)(nil)
	_ webquery.IndexBuilder = (*Builder)(nil)
)

// Builder builds an Index by embedding chunks with an Embedder.
type Builder struct {
	Embedder webquery.Embedder
}

// NewBuilder creates a Builder.
func NewBuilder(embedder webquery.Embedder) *Builder {
	return &Builder{Embedder: embedder}
}

// Build embeds every chunk in one call and indexes the result.
func (b *Builder) Build(ctx context.Context, chunks []*webquery.Chunk) (webquery.Index, error) {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		if c == nil {
			return nil, webquery.Errorf(webquery.EEMBED, "chunk %d is nil", i)
		}
		texts[i] = c.Content
	}

	var vecs []webquery.Vector
	if len(texts) > 0 {
		var err error
		if vecs, err = b.Embedder.EmbedDocuments(ctx, texts); err != nil {
			return nil, webquery.Wrap(webquery.EEMBED, err, "embed chunks")
		}
	}
	idx, err := NewIndex(chunks, vecs)
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Index holds chunks and their vectors. It is read-only after construction.
type Index struct {
	chunks []*webquery.Chunk
	vecs   []webquery.Vector
	norms  []float64
}

// NewIndex creates an Index pairing chunks[i] with vecs[i].
// Returns EEMBED if the counts differ or the vectors disagree on dimension.
func NewIndex(chunks []*webquery.Chunk, vecs []webquery.Vector) (*Index, error) {
	if len(chunks) != len(vecs) {
		return nil, webquery.Errorf(webquery.EEMBED, "got %d vectors for %d chunks", len(vecs), len(chunks))
	}
	norms := make([]float64, len(vecs))
	for i, v := range vecs {
		if len(v) == 0 || len(v) != len(vecs[0]) {
			return nil, webquery.Errorf(webquery.EEMBED, "vector %d has dimension %d, want %d", i, len(v), len(vecs[0]))
		}
		norms[i] = norm(v)
	}
	return &Index{chunks: chunks, vecs: vecs, norms: norms}, nil
}

// Len returns the number of indexed chunks.
func (idx *Index) Len() int {
	return len(idx.chunks)
}

// Search returns the k chunks closest to vec by cosine distance.
func (idx *Index) Search(ctx context.Context, vec webquery.Vector, k int) ([]webquery.SearchResult, error) {
	if k <= 0 {
		return nil, webquery.Errorf(webquery.EINVALID, "top matches must be positive, got %d", k)
	}
	if idx.Len() == 0 {
		return nil, webquery.Errorf(webquery.EQUERY, "index is empty")
	}
	if len(vec) != len(idx.vecs[0]) {
		return nil, webquery.Errorf(webquery.EQUERY, "query vector has dimension %d, want %d", len(vec), len(idx.vecs[0]))
	}
	if err := ctx.Err(); err != nil {
		return nil, webquery.Wrap(webquery.EQUERY, err, "search interrupted")
	}

	qnorm := norm(vec)
	results := make([]webquery.SearchResult, len(idx.chunks))
	for i, c := range idx.chunks {
		results[i] = webquery.SearchResult{
			Chunk:    c,
			Distance: distance(vec, idx.vecs[i], qnorm, idx.norms[i]),
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// distance returns 1 - cos(a, b). A zero vector is at distance 1 from
// everything.
func distance(a, b webquery.Vector, na, nb float64) float32 {
	if na == 0 || nb == 0 {
		return 1
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return float32(1 - dot/(na*nb))
}

func norm(v webquery.Vector) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
