package webquery

import "strings"

// DefaultSystem is the system instruction used when none is given.
const DefaultSystem = "You are a helpful assistant."

const instruction = "Use the following pieces of context to answer the question at the end. " +
	"If you don't know the answer, just say that you don't know, don't try to make up an answer."

// Prompt holds the parts of a retrieval-augmented prompt.
type Prompt struct {
	System   string
	Context  string
	Question string
}

// NewPrompt builds a Prompt from retrieved results.
func NewPrompt(system, question string, results []SearchResult) *Prompt {
	return &Prompt{
		System:   system,
		Context:  FormatContext(results),
		Question: question,
	}
}

// User renders the user part of the prompt: instruction, context, question.
func (p *Prompt) User() string {
	var sb strings.Builder
	sb.WriteString(instruction)
	sb.WriteString("\n\n")
	sb.WriteString(p.Context)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(p.Question)
	sb.WriteString("\nHelpful Answer:")
	return sb.String()
}

// String renders the whole prompt with the system instruction first.
func (p *Prompt) String() string {
	if p.System == "" {
		return p.User()
	}
	return p.System + "\n\n" + p.User()
}
