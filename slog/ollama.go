package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webquery"
)

// Ensure service implements interface.
var (
	_ webquery.Embedder  = (*LoggingEmbedder)(nil)
	_ webquery.Generator = (*LoggingGenerator)(nil)
)

// LoggingEmbedder wraps an Embedder with logging.
type LoggingEmbedder struct {
	next   webquery.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next webquery.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// EmbedDocuments delegates to the wrapped embedder.
func (e *LoggingEmbedder) EmbedDocuments(ctx context.Context, texts []string) (vecs []webquery.Vector, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed documents",
			"count", len(texts),
			"dimension", dimension(vecs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedDocuments(ctx, texts)
}

// EmbedQuery delegates to the wrapped embedder.
func (e *LoggingEmbedder) EmbedQuery(ctx context.Context, text string) (vec webquery.Vector, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed query",
			"chars", len(text),
			"dimension", len(vec),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedQuery(ctx, text)
}

func dimension(vecs []webquery.Vector) int {
	if len(vecs) == 0 {
		return 0
	}
	return len(vecs[0])
}

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next   webquery.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next webquery.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator.
func (g *LoggingGenerator) Generate(ctx context.Context, req *webquery.GenerateRequest) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"prompt_chars", len(req.Prompt),
			"temperature", req.Temperature,
			"num_ctx", req.ContextWindow,
			"response_chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, req)
}
