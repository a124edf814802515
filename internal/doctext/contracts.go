// Package doctext acquires plain text from lease document files. The
// extraction engine only ever sees the text this package produces.
package doctext

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.DOCX | constants.TXT
	Method     string // "pdf-text" | "docx-xml" | "txt-read"
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// Empty reports whether extraction produced no usable text. Callers treat
// this as "no data extracted", a warning rather than an error.
func (r TextExtractionResult) Empty() bool {
	for _, c := range r.Text {
		switch c {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			return false
		}
	}
	return true
}
