// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import (
	"context"

	"github.com/pdforacle/pdforacle/internal/core/domain"
)

// PDFLoadResult is the outcome of extracting one PDF.
type PDFLoadResult struct {
	// SourcePath is the resolved absolute path of the PDF.
	SourcePath string

	// Pages holds one PageDocument per page that yielded text, in page
	// order. Pages with no extractable text are omitted.
	Pages []domain.PageDocument

	// TotalPages is the page count of the PDF, including empty pages.
	TotalPages int
}

// PDFLoader extracts ordered page texts and document metadata from a PDF
// file. Implementations distinguish failure modes through the domain
// sentinels: domain.ErrNotFound (missing path), domain.ErrUnreadableSource
// (not a PDF, corrupt), and domain.ErrNoContent (no page yields text).
type PDFLoader interface {
	Load(ctx context.Context, path string) (*PDFLoadResult, error)
}
