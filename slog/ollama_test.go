package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/webquery"
	"github.com/fwojciec/webquery/mock"
	wqslog "github.com/fwojciec/webquery/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingEmbedder(t *testing.T) {
	t.Parallel()

	inner := &mock.Embedder{
		EmbedDocumentsFn: func(_ context.Context, texts []string) ([]webquery.Vector, error) {
			vecs := make([]webquery.Vector, len(texts))
			for i := range vecs {
				vecs[i] = webquery.Vector{1, 0, 0}
			}
			return vecs, nil
		},
		EmbedQueryFn: func(context.Context, string) (webquery.Vector, error) {
			return nil, errors.New("model not loaded")
		},
	}

	t.Run("logs document count and dimension", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		e := wqslog.NewLoggingEmbedder(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		vecs, err := e.EmbedDocuments(context.Background(), []string{"a", "b"})

		require.NoError(t, err)
		assert.Len(t, vecs, 2)
		output := buf.String()
		assert.Contains(t, output, "embed documents")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "dimension=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs query error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		e := wqslog.NewLoggingEmbedder(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := e.EmbedQuery(context.Background(), "sky")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "embed query")
		assert.Contains(t, output, "err=\"model not loaded\"")
	})
}

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Generator{
		GenerateFn: func(context.Context, *webquery.GenerateRequest) (string, error) {
			return "The sky is blue.", nil
		},
	}
	g := wqslog.NewLoggingGenerator(inner, slog.New(slog.NewTextHandler(&buf, nil)))

	text, err := g.Generate(context.Background(), &webquery.GenerateRequest{Prompt: "What color is the sky?", ContextWindow: 2048})

	require.NoError(t, err)
	assert.Equal(t, "The sky is blue.", text)
	output := buf.String()
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "prompt_chars=22")
	assert.Contains(t, output, "num_ctx=2048")
	assert.Contains(t, output, "response_chars=16")
}
