package webquery

import "context"

// Answer is the generated response to a question.
type Answer struct {
	Text string `json:"text"`

	// Prompt is the full rendered prompt that produced Text.
	Prompt string `json:"prompt"`

	// Sources are the retrieved chunks used as context.
	Sources []SearchResult `json:"sources,omitempty"`
}

// Asker answers a question using retrieved chunks as context.
type Asker interface {
	// Ask composes a prompt from the results and the question and returns
	// the model's answer. Returns EINFERENCE if the model call fails.
	Ask(ctx context.Context, question string, results []SearchResult) (*Answer, error)
}

// GenerateRequest is a single completion request to a language model.
type GenerateRequest struct {
	System string

	// Prompt is the user prompt holding the context and the question.
	Prompt string

	Temperature float64

	// ContextWindow is the number of tokens the model may condition on.
	ContextWindow int
}

// Generator produces text completions with a language model.
type Generator interface {
	// Generate returns the model's response to req.
	// Returns EINFERENCE on transport failure or a non-success response.
	Generate(ctx context.Context, req *GenerateRequest) (string, error)
}
