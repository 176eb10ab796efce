package ollama

import (
	"context"
	"strings"

	"github.com/fwojciec/webquery"
	"github.com/ollama/ollama/api"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "zephyr:latest"

// Ensure Generator implements webquery.Generator at compile time.
var _ webquery.Generator = (*Generator)(nil)

// Generator produces completions with one Ollama model.
type Generator struct {
	client *Client
	model  string
}

// NewGenerator creates a Generator for model.
func NewGenerator(client *Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Model returns the model name.
func (g *Generator) Model() string {
	return g.model
}

// Generate runs one non-streaming completion.
// Returns EINFERENCE if the request fails or the server rejects it.
func (g *Generator) Generate(ctx context.Context, req *webquery.GenerateRequest) (string, error) {
	if req == nil || req.Prompt == "" {
		return "", webquery.Errorf(webquery.EINVALID, "prompt required")
	}

	stream := false
	options := map[string]any{
		"temperature": req.Temperature,
	}
	if req.ContextWindow > 0 {
		options["num_ctx"] = req.ContextWindow
	}

	var sb strings.Builder
	err := g.client.api.Generate(ctx, &api.GenerateRequest{
		Model:   g.model,
		Prompt:  req.Prompt,
		System:  req.System,
		Stream:  &stream,
		Options: options,
	}, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", webquery.Errorf(webquery.EINFERENCE, "generate with %s: %s", g.model, describe(ctx, err))
	}
	return sb.String(), nil
}
