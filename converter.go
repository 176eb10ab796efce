package webquery

// Converter turns content HTML into the text that gets chunked and indexed.
type Converter interface {
	// Convert transforms HTML content into plain text or Markdown.
	Convert(html string) (string, error)
}
