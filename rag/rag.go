// Package rag wires the retrieval-augmented generation steps together: it
// loads a page into a document, retrieves the chunks most similar to a
// question and asks a language model to answer from them.
package rag

import (
	"fmt"

	"github.com/fwojciec/webquery"
)

// fail returns err under code, keeping err as the cause.
// Errors that already carry code are returned unchanged.
func fail(code string, err error, format string, args ...any) error {
	if webquery.ErrorCode(err) == code {
		return err
	}
	return &webquery.Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
