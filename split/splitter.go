// Package split implements webquery.Splitter.
//
// RecursiveSplitter cuts text into windows of at most a fixed number of runes.
// Each window ends at the strongest boundary it contains, trying paragraph
// breaks, then line breaks, then sentence ends, then spaces, and finally a
// hard cut at the size limit. Consecutive chunks share exactly the configured
// overlap, so the text can always be rebuilt from the chunks.
package split

import (
	"fmt"

	"github.com/fwojciec/webquery"
)

// DefaultSeparators are the boundaries tried, strongest first.
var DefaultSeparators = []string{"\n\n", "\n", ". ", " "}

// Ensure RecursiveSplitter implements webquery.Splitter at compile time.
var _ webquery.Splitter = (*RecursiveSplitter)(nil)

// RecursiveSplitter splits documents into overlapping chunks of runes.
type RecursiveSplitter struct {
	size       int
	overlap    int
	separators [][]rune
}

// Option configures a RecursiveSplitter.
type Option func(*RecursiveSplitter)

// WithSeparators replaces DefaultSeparators. Empty separators are ignored;
// the hard cut at the size limit is always the last resort.
func WithSeparators(seps ...string) Option {
	return func(s *RecursiveSplitter) {
		s.separators = toRunes(seps)
	}
}

// NewRecursiveSplitter returns a splitter producing chunks of at most size
// runes with overlap runes shared between neighbours.
// Returns EINVALID unless 0 <= overlap < size.
func NewRecursiveSplitter(size, overlap int, opts ...Option) (*RecursiveSplitter, error) {
	if err := validate(size, overlap); err != nil {
		return nil, err
	}
	s := &RecursiveSplitter{
		size:       size,
		overlap:    overlap,
		separators: toRunes(DefaultSeparators),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Split returns the chunks of doc in document order. Text no longer than
// the chunk size yields a single chunk and empty text yields none.
func (s *RecursiveSplitter) Split(doc *webquery.Document) ([]*webquery.Chunk, error) {
	if err := validate(s.size, s.overlap); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, webquery.Errorf(webquery.EINVALID, "document required")
	}

	text := []rune(doc.Content)
	spans := s.spans(text)

	chunks := make([]*webquery.Chunk, 0, len(spans))
	for i, sp := range spans {
		chunks = append(chunks, &webquery.Chunk{
			ID:         fmt.Sprintf("%s-%d", doc.ID, i),
			DocumentID: doc.ID,
			Index:      i,
			Content:    string(text[sp.start:sp.end]),
			Start:      sp.start,
			End:        sp.end,
			SourceURL:  doc.SourceURL,
		})
	}
	return chunks, nil
}

type span struct {
	start, end int
}

func (s *RecursiveSplitter) spans(text []rune) []span {
	n := len(text)
	if n == 0 {
		return nil
	}

	var out []span
	start := 0
	for {
		if n-start <= s.size {
			return append(out, span{start, n})
		}
		end := s.breakPoint(text, start)
		out = append(out, span{start, end})
		// end > start+overlap, so every step advances.
		start = end - s.overlap
	}
}

// breakPoint returns the end of the chunk that begins at start.
func (s *RecursiveSplitter) breakPoint(text []rune, start int) int {
	limit := start + s.size
	lowest := start + s.overlap + 1
	for _, sep := range s.separators {
		if p, ok := lastBreak(text, sep, start, lowest, limit); ok {
			return p
		}
	}
	return limit
}

// lastBreak finds the largest p in [lowest, limit] such that sep ends at p
// and begins at or after start.
func lastBreak(text, sep []rune, start, lowest, limit int) (int, bool) {
	for p := limit; p >= lowest; p-- {
		from := p - len(sep)
		if from < start {
			break
		}
		if equal(text[from:p], sep) {
			return p, true
		}
	}
	return 0, false
}

func equal(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func toRunes(seps []string) [][]rune {
	out := make([][]rune, 0, len(seps))
	for _, sep := range seps {
		if sep == "" {
			continue
		}
		out = append(out, []rune(sep))
	}
	return out
}

func validate(size, overlap int) error {
	switch {
	case size <= 0:
		return webquery.Errorf(webquery.EINVALID, "chunk size must be positive, got %d", size)
	case overlap < 0:
		return webquery.Errorf(webquery.EINVALID, "chunk overlap must not be negative, got %d", overlap)
	case overlap >= size:
		return webquery.Errorf(webquery.EINVALID, "chunk overlap %d must be less than chunk size %d", overlap, size)
	}
	return nil
}
