package inmem_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/webquery"
	"github.com/fwojciec/webquery/inmem"
	"github.com/fwojciec/webquery/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunks(contents ...string) []*webquery.Chunk {
	out := make([]*webquery.Chunk, len(contents))
	for i, c := range contents {
		out[i] = &webquery.Chunk{DocumentID: "doc", Index: i, Content: c}
	}
	return out
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	idx, err := inmem.NewIndex(chunks("east", "north", "east-ish", "north-copy"), []webquery.Vector{
		{1, 0},
		{0, 1},
		{1, 1},
		{0, 2},
	})
	require.NoError(t, err)
	require.Equal(t, 4, idx.Len())

	t.Run("orders by distance with stable ties", func(t *testing.T) {
		t.Parallel()

		results, err := idx.Search(context.Background(), webquery.Vector{0, 1}, 4)
		require.NoError(t, err)
		require.Len(t, results, 4)

		var got []string
		for _, r := range results {
			got = append(got, r.Chunk.Content)
		}
		assert.Equal(t, []string{"north", "north-copy", "east-ish", "east"}, got)
		assert.InDelta(t, 0, results[0].Distance, 1e-6)
		assert.InDelta(t, 1, results[3].Distance, 1e-6)
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i-1].Distance, results[i].Distance)
		}
	})

	t.Run("returns min of k and n", func(t *testing.T) {
		t.Parallel()

		results, err := idx.Search(context.Background(), webquery.Vector{1, 0}, 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)

		results, err = idx.Search(context.Background(), webquery.Vector{1, 0}, 10)
		require.NoError(t, err)
		assert.Len(t, results, 4)
	})

	t.Run("zero query vector", func(t *testing.T) {
		t.Parallel()

		results, err := idx.Search(context.Background(), webquery.Vector{0, 0}, 4)
		require.NoError(t, err)
		assert.Equal(t, "east", results[0].Chunk.Content)
		for _, r := range results {
			assert.InDelta(t, 1, r.Distance, 1e-6)
		}
	})

	t.Run("rejects non-positive k", func(t *testing.T) {
		t.Parallel()

		_, err := idx.Search(context.Background(), webquery.Vector{1, 0}, 0)
		assert.Equal(t, webquery.EINVALID, webquery.ErrorCode(err))
	})

	t.Run("rejects wrong dimension", func(t *testing.T) {
		t.Parallel()

		_, err := idx.Search(context.Background(), webquery.Vector{1, 0, 0}, 1)
		assert.Equal(t, webquery.EQUERY, webquery.ErrorCode(err))
	})
}

func TestIndex_Empty(t *testing.T) {
	t.Parallel()

	idx, err := inmem.NewIndex(nil, nil)
	require.NoError(t, err)

	_, err = idx.Search(context.Background(), webquery.Vector{1}, 1)
	assert.Equal(t, webquery.EQUERY, webquery.ErrorCode(err))
}

func TestNewIndex(t *testing.T) {
	t.Parallel()

	t.Run("count mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := inmem.NewIndex(chunks("a", "b"), []webquery.Vector{{1}})
		assert.Equal(t, webquery.EEMBED, webquery.ErrorCode(err))
	})

	t.Run("inconsistent dimensions", func(t *testing.T) {
		t.Parallel()

		_, err := inmem.NewIndex(chunks("a", "b"), []webquery.Vector{{1, 0}, {1}})
		assert.Equal(t, webquery.EEMBED, webquery.ErrorCode(err))
	})
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("embeds all chunks in one call", func(t *testing.T) {
		t.Parallel()

		var calls int
		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(_ context.Context, texts []string) ([]webquery.Vector, error) {
				calls++
				assert.Equal(t, []string{"a", "b", "c"}, texts)
				return []webquery.Vector{{1, 0}, {0, 1}, {1, 1}}, nil
			},
		}

		idx, err := inmem.NewBuilder(embedder).Build(context.Background(), chunks("a", "b", "c"))
		require.NoError(t, err)
		assert.Equal(t, 3, idx.Len())
		assert.Equal(t, 1, calls)
	})

	t.Run("embedding failure returns no index", func(t *testing.T) {
		t.Parallel()

		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(context.Context, []string) ([]webquery.Vector, error) {
				return nil, errors.New("model not loaded")
			},
		}

		idx, err := inmem.NewBuilder(embedder).Build(context.Background(), chunks("a"))
		assert.Nil(t, idx)
		assert.Equal(t, webquery.EEMBED, webquery.ErrorCode(err))
	})

	t.Run("short vector list returns no index", func(t *testing.T) {
		t.Parallel()

		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(context.Context, []string) ([]webquery.Vector, error) {
				return []webquery.Vector{{1}}, nil
			},
		}

		idx, err := inmem.NewBuilder(embedder).Build(context.Background(), chunks("a", "b"))
		assert.Nil(t, idx)
		assert.Equal(t, webquery.EEMBED, webquery.ErrorCode(err))
	})

	t.Run("no chunks builds empty index", func(t *testing.T) {
		t.Parallel()

		idx, err := inmem.NewBuilder(&mock.Embedder{}).Build(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, idx.Len())
	})
}
