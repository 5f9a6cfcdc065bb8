// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"errors"
	"fmt"
)

// ErrInvalidSpan is the sentinel error wrapped by InvalidSpanError.
var ErrInvalidSpan = errors.New("invalid span")

type (
	// Document is read-only access to the text an invocation operates on.
	// Implementations must return stable contents for the duration of an
	// invocation; the pipeline never writes back into a Document.
	Document interface {
		// Contents returns the document's full contents.
		Contents() []byte
		// Span returns the bytes between start (inclusive) and end
		// (exclusive). Offsets are byte offsets into Contents.
		Span(start, end int) ([]byte, error)
	}

	// InvalidSpanError is returned when span offsets are negative,
	// decreasing, or past the end of the document. It wraps ErrInvalidSpan
	// for errors.Is() compatibility.
	InvalidSpanError struct {
		Start, End, Len int
	}

	// TextDocument is an in-memory Document. The CLI builds one from a file
	// or from stdin; tests build them from literals.
	TextDocument struct {
		data []byte
	}
)

// Error implements the error interface.
func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("invalid span [%d, %d) in document of %d bytes", e.Start, e.End, e.Len)
}

// Unwrap returns ErrInvalidSpan for errors.Is().
func (e *InvalidSpanError) Unwrap() error {
	return ErrInvalidSpan
}

// NewTextDocument creates a Document over the given bytes.
func NewTextDocument(data []byte) *TextDocument {
	return &TextDocument{data: data}
}

// Contents returns the full document contents.
func (d *TextDocument) Contents() []byte {
	return d.data
}

// Span returns the bytes in [start, end).
func (d *TextDocument) Span(start, end int) ([]byte, error) {
	if start < 0 || end < start || end > len(d.data) {
		return nil, &InvalidSpanError{Start: start, End: end, Len: len(d.data)}
	}
	return d.data[start:end], nil
}

// Len returns the document length in bytes.
func (d *TextDocument) Len() int {
	return len(d.data)
}
