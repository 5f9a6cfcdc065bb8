// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"errors"
	"fmt"

	"github.com/emacsmirror/sq/internal/editor"
)

// ErrNoDocument is returned when a document-backed source is resolved
// without a document.
var ErrNoDocument = errors.New("no document to read input from")

type sourceKind int

const (
	sourceDocument sourceKind = iota
	sourceSpan
	sourceLiteral
)

// Source identifies the bytes an invocation feeds to the external process.
// Exactly one variant is active: the entire document, a byte span of the
// document, or a literal string that bypasses any document.
type Source struct {
	kind       sourceKind
	start, end int
	text       string
}

// EntireDocument selects the full contents of the current document.
func EntireDocument() Source {
	return Source{kind: sourceDocument}
}

// Span selects the document bytes in [start, end). Offsets are validated
// against the document at resolve time.
func Span(start, end int) Source {
	return Source{kind: sourceSpan, start: start, end: end}
}

// Literal selects the given string, ignoring any document. This variant is
// for programmatic callers; the interactive command surface never uses it.
func Literal(text string) Source {
	return Source{kind: sourceLiteral, text: text}
}

// Resolve returns the input bytes this source stands for. doc may be nil
// for the literal variant only.
func (s Source) Resolve(doc editor.Document) ([]byte, error) {
	switch s.kind {
	case sourceLiteral:
		return []byte(s.text), nil
	case sourceDocument:
		if doc == nil {
			return nil, ErrNoDocument
		}
		return doc.Contents(), nil
	case sourceSpan:
		if doc == nil {
			return nil, ErrNoDocument
		}
		return doc.Span(s.start, s.end)
	default:
		return nil, fmt.Errorf("unknown input source kind %d", s.kind)
	}
}

// IsLiteral reports whether the source is the literal-string variant.
func (s Source) IsLiteral() bool {
	return s.kind == sourceLiteral
}
