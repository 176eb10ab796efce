package split_test

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/webquery"
	"github.com/fwojciec/webquery/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(content string) *webquery.Document {
	return &webquery.Document{ID: "doc", SourceURL: "https://example.com", Content: content}
}

// reconstruct concatenates chunks after dropping the overlap each chunk
// shares with its predecessor.
func reconstruct(chunks []*webquery.Chunk, overlap int) string {
	var sb strings.Builder
	for i, c := range chunks {
		r := []rune(c.Content)
		if i > 0 {
			r = r[overlap:]
		}
		sb.WriteString(string(r))
	}
	return sb.String()
}

func TestNewRecursiveSplitter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		size, overlap int
	}{
		{"overlap equal to size", 10, 10},
		{"overlap greater than size", 10, 11},
		{"zero size", 0, 0},
		{"negative overlap", 10, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := split.NewRecursiveSplitter(tt.size, tt.overlap)
			assert.Nil(t, s)
			assert.Equal(t, webquery.EINVALID, webquery.ErrorCode(err))
		})
	}

	t.Run("zero value splitter rejects split", func(t *testing.T) {
		t.Parallel()

		var s split.RecursiveSplitter
		_, err := s.Split(doc("abc"))
		assert.Equal(t, webquery.EINVALID, webquery.ErrorCode(err))
	})
}

func TestRecursiveSplitter_Split(t *testing.T) {
	t.Parallel()

	t.Run("splits sentences at sentence boundary", func(t *testing.T) {
		t.Parallel()

		s, err := split.NewRecursiveSplitter(20, 5)
		require.NoError(t, err)

		chunks, err := s.Split(doc("The sky is blue. Water is wet."))
		require.NoError(t, err)
		require.Len(t, chunks, 2)

		assert.Equal(t, "The sky is blue. ", chunks[0].Content)
		assert.Equal(t, 0, chunks[0].Start)
		assert.Equal(t, 17, chunks[0].End)
		assert.Equal(t, "lue. Water is wet.", chunks[1].Content)
		assert.Equal(t, 12, chunks[1].Start)
		assert.Equal(t, 30, chunks[1].End)
		assert.Equal(t, "The sky is blue. Water is wet.", reconstruct(chunks, 5))
	})

	t.Run("short text yields single chunk", func(t *testing.T) {
		t.Parallel()

		s, err := split.NewRecursiveSplitter(200, 50)
		require.NoError(t, err)

		chunks, err := s.Split(doc("short text"))
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "short text", chunks[0].Content)
		assert.Equal(t, "doc-0", chunks[0].ID)
		assert.Equal(t, "doc", chunks[0].DocumentID)
		assert.Equal(t, "https://example.com", chunks[0].SourceURL)
		require.NoError(t, chunks[0].Validate())
	})

	t.Run("empty text yields no chunks", func(t *testing.T) {
		t.Parallel()

		s, err := split.NewRecursiveSplitter(10, 2)
		require.NoError(t, err)

		chunks, err := s.Split(doc(""))
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("nil document", func(t *testing.T) {
		t.Parallel()

		s, err := split.NewRecursiveSplitter(10, 2)
		require.NoError(t, err)

		_, err = s.Split(nil)
		assert.Equal(t, webquery.EINVALID, webquery.ErrorCode(err))
	})

	t.Run("hard cuts text without separators", func(t *testing.T) {
		t.Parallel()

		s, err := split.NewRecursiveSplitter(4, 1)
		require.NoError(t, err)

		chunks, err := s.Split(doc("abcdefghij"))
		require.NoError(t, err)

		var got []string
		for _, c := range chunks {
			got = append(got, c.Content)
		}
		assert.Equal(t, []string{"abcd", "defg", "ghij"}, got)
	})

	t.Run("prefers paragraph break over sentence break", func(t *testing.T) {
		t.Parallel()

		s, err := split.NewRecursiveSplitter(30, 0)
		require.NoError(t, err)

		chunks, err := s.Split(doc("One. Two.\n\nThree. Four. Five. Six."))
		require.NoError(t, err)
		require.NotEmpty(t, chunks)
		assert.Equal(t, "One. Two.\n\n", chunks[0].Content)
	})

	t.Run("custom separators", func(t *testing.T) {
		t.Parallel()

		s, err := split.NewRecursiveSplitter(6, 0, split.WithSeparators("|", ""))
		require.NoError(t, err)

		chunks, err := s.Split(doc("ab|cd|efgh"))
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, "ab|cd|", chunks[0].Content)
		assert.Equal(t, "efgh", chunks[1].Content)
	})

	t.Run("offsets count runes", func(t *testing.T) {
		t.Parallel()

		s, err := split.NewRecursiveSplitter(5, 1)
		require.NoError(t, err)

		text := "zażółć gęślą jaźń"
		chunks, err := s.Split(doc(text))
		require.NoError(t, err)

		runes := []rune(text)
		for _, c := range chunks {
			assert.Equal(t, string(runes[c.Start:c.End]), c.Content)
		}
		assert.Equal(t, text, reconstruct(chunks, 1))
	})
}

func TestRecursiveSplitter_Properties(t *testing.T) {
	t.Parallel()

	words := []string{"sky", "blue", "water", "wet.", "ląd", "\n", "\n\n", "a", "longerwordwithoutspaces", ". "}
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		var sb strings.Builder
		for n := rng.IntN(60); n > 0; n-- {
			sb.WriteString(words[rng.IntN(len(words))])
			if rng.IntN(3) > 0 {
				sb.WriteString(" ")
			}
		}
		text := sb.String()
		size := 1 + rng.IntN(40)
		overlap := rng.IntN(size)

		s, err := split.NewRecursiveSplitter(size, overlap)
		require.NoError(t, err)

		chunks, err := s.Split(doc(text))
		require.NoError(t, err)

		if text == "" {
			assert.Empty(t, chunks)
			continue
		}
		require.NotEmpty(t, chunks)
		assert.Equal(t, text, reconstruct(chunks, overlap), "size=%d overlap=%d", size, overlap)
		for j, c := range chunks {
			assert.LessOrEqual(t, utf8.RuneCountInString(c.Content), size)
			assert.Equal(t, j, c.Index)
			if j > 0 {
				assert.Equal(t, chunks[j-1].End-overlap, c.Start)
			}
		}
		assert.Equal(t, utf8.RuneCountInString(text), chunks[len(chunks)-1].End)
	}
}
