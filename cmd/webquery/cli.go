package main

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/webquery"
	"github.com/fwojciec/webquery/rag"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Pipeline *rag.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Website  string `arg:"" help:"URL of the web page to query"`
	Question string `arg:"" help:"Question to answer from the page"`

	Model            string        `name:"model" default:"zephyr:latest" env:"WEBQUERY_MODEL" help:"Ollama model used to answer"`
	BaseURL          string        `name:"base_url" default:"http://localhost:11434" env:"WEBQUERY_BASE_URL" help:"Base URL of the Ollama server"`
	ChunkSize        int           `name:"chunk_size" default:"200" help:"Maximum chunk length in characters"`
	ChunkOverlap     int           `name:"chunk_overlap" default:"50" help:"Characters shared by consecutive chunks"`
	TopMatches       int           `name:"top_matches" default:"4" help:"Number of chunks passed to the model"`
	System           string        `name:"system" default:"You are a helpful assistant." help:"System instruction for the model"`
	Temp             float64       `name:"temp" default:"0.0" help:"Sampling temperature (0.0-2.0)"`
	NumCtx           int           `name:"num_ctx" default:"2048" help:"Model context window in tokens"`
	Timeout          time.Duration `name:"timeout" default:"10s" help:"Timeout for the availability check and the page fetch"`
	InferenceTimeout time.Duration `name:"inference_timeout" default:"5m" help:"Timeout for embedding and generation requests"`
	Embedder         string        `name:"embedder" enum:"hash,ollama" default:"hash" help:"Embedding backend (hash, ollama)"`
	EmbedModel       string        `name:"embed_model" default:"nomic-embed-text" help:"Ollama embedding model for --embedder=ollama"`
	Extractor        string        `name:"extractor" enum:"page,trafilatura,readability" default:"page" help:"Content extraction (page, trafilatura, readability)"`
	Format           string        `name:"format" enum:"text,markdown" default:"text" help:"Text format of the indexed content (text, markdown)"`
	Render           bool          `name:"render" help:"Render the page in headless Chrome before extraction"`
	Sources          bool          `name:"sources" help:"Print the retrieved chunks after the answer"`
	Verbose          bool          `name:"verbose" short:"v" help:"Log each step to stderr"`
}

// validate checks the values kong cannot express in struct tags.
func (c *CLI) validate() error {
	switch {
	case !isHTTPURL(c.Website):
		return webquery.Errorf(webquery.EINVALID, "website must be an http or https URL, got %q", c.Website)
	case !isHTTPURL(c.BaseURL):
		return webquery.Errorf(webquery.EINVALID, "base_url must be an http or https URL, got %q", c.BaseURL)
	case c.Question == "":
		return webquery.Errorf(webquery.EINVALID, "question required")
	case c.ChunkSize <= 0:
		return webquery.Errorf(webquery.EINVALID, "chunk_size must be positive, got %d", c.ChunkSize)
	case c.ChunkOverlap < 0:
		return webquery.Errorf(webquery.EINVALID, "chunk_overlap must not be negative, got %d", c.ChunkOverlap)
	case c.ChunkOverlap >= c.ChunkSize:
		return webquery.Errorf(webquery.EINVALID, "chunk_overlap (%d) must be less than chunk_size (%d)", c.ChunkOverlap, c.ChunkSize)
	case c.TopMatches <= 0:
		return webquery.Errorf(webquery.EINVALID, "top_matches must be positive, got %d", c.TopMatches)
	case c.Temp < 0 || c.Temp > 2:
		return webquery.Errorf(webquery.EINVALID, "temp must be between 0.0 and 2.0, got %g", c.Temp)
	case c.NumCtx <= 0:
		return webquery.Errorf(webquery.EINVALID, "num_ctx must be positive, got %d", c.NumCtx)
	case c.Timeout <= 0 || c.InferenceTimeout <= 0:
		return webquery.Errorf(webquery.EINVALID, "timeouts must be positive")
	}
	return nil
}

func isHTTPURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// QueryCmd answers one question about one page.
type QueryCmd struct {
	Website    string
	Question   string
	BaseURL    string
	TopMatches int
	Sources    bool
}
