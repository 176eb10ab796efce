package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/webquery"
	"github.com/fwojciec/webquery/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements webquery.Converter at compile time.
var _ webquery.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs and headings", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h1>Weather</h1><p>The sky is blue.</p><h2>Water</h2><p>Water is wet.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Weather")
		assert.Contains(t, md, "## Water")
		assert.Contains(t, md, "The sky is blue.")
	})

	t.Run("separates blocks with blank lines", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>First.</p><p>Second.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "First.\n\nSecond.", md)
	})

	t.Run("keeps links", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>See <a href="https://example.com">Example</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Planet</th><th>Moons</th></tr></thead>
<tbody><tr><td>Mars</td><td>2</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Planet")
		assert.Contains(t, md, "Mars")
		assert.Contains(t, md, "|")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, webquery.EINVALID, webquery.ErrorCode(err))
	})
}
