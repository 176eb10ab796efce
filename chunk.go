package webquery

// Chunk represents a segment of a document used as the unit of retrieval.
type Chunk struct {
	ID         string `json:"id"`
	DocumentID string `json:"documentId"`

	// Position of the chunk within the document, starting at zero.
	Index int `json:"index"`

	Content string `json:"content"`

	// Rune offsets of Content within the document content.
	Start int `json:"start"`
	End   int `json:"end"`

	// Source URL for citation
	SourceURL string `json:"sourceUrl,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.DocumentID == "" {
		return Errorf(EINVALID, "chunk document ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	if c.Start < 0 || c.End < c.Start {
		return Errorf(EINVALID, "chunk offsets out of range: [%d, %d)", c.Start, c.End)
	}
	return nil
}

// Splitter splits a document into ordered, overlapping chunks.
type Splitter interface {
	// Split returns the chunks of doc in document order.
	// Returns EINVALID if the splitter is misconfigured.
	Split(doc *Document) ([]*Chunk, error)
}
