package webquery

import (
	"fmt"
	"io"
	"strings"
)

// AnswerHeading precedes the answer on standard output.
const AnswerHeading = "### Answer:"

// FormatContext joins the chunk texts of results for use as LLM context.
// Chunks are trimmed and separated by blank lines.
func FormatContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Chunk == nil {
			continue
		}
		parts = append(parts, strings.TrimSpace(r.Chunk.Content))
	}

	return strings.Join(parts, "\n\n")
}

// WriteAnswer writes the answer under the answer heading.
func WriteAnswer(w io.Writer, answer *Answer) error {
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", AnswerHeading, strings.TrimSpace(answer.Text))
	return err
}

// WriteSources writes one line per source chunk with its distance and
// a single-line excerpt of its content.
func WriteSources(w io.Writer, answer *Answer) error {
	if len(answer.Sources) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n### Sources:\n"); err != nil {
		return err
	}
	for i, r := range answer.Sources {
		excerpt := strings.Join(strings.Fields(r.Chunk.Content), " ")
		if _, err := fmt.Fprintf(w, "%d. [chunk %d, distance %.4f] %s\n", i+1, r.Chunk.Index, r.Distance, excerpt); err != nil {
			return err
		}
	}
	return nil
}
