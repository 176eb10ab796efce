package webquery

import "context"

// Document represents the text content of a fetched web page.
type Document struct {
	ID        string `json:"id"`
	SourceURL string `json:"sourceUrl"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// Loader fetches a web page and extracts its text content.
type Loader interface {
	// Load fetches the page at url and returns its text as a Document.
	// Returns EFETCH if the page cannot be fetched or holds no text.
	Load(ctx context.Context, url string) (*Document, error)
}
