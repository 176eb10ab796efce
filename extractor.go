package webquery

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the selected content as HTML. Depending on the
	// implementation this is the whole document body or only the main
	// content with boilerplate removed.
	ContentHTML string
}

// Extractor selects the content of an HTML page that should be indexed.
type Extractor interface {
	// Extract processes raw HTML and returns the title and content HTML.
	Extract(html string) (*ExtractResult, error)
}
