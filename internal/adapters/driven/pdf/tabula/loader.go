// Package tabula adapts the tabula PDF library to the page loader port.
// Extraction is page by page so downstream chunks keep their page numbers.
package tabula

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/tabula"

	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
)

var _ driven.PDFLoader = (*Loader)(nil)

// Loader extracts per-page text and document metadata from PDF files.
type Loader struct{}

// NewLoader creates a PDF loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the PDF at path and returns one page document per non-empty
// page. Page numbers are 1-based and refer to the position in the
// original file, so skipped blank pages leave gaps.
func (l *Loader) Load(ctx context.Context, path string) (*driven.PDFLoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: file not found: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: accessing %s: %w", domain.ErrUnreadableSource, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory, not a PDF file", domain.ErrUnreadableSource, path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, fmt.Errorf("%w: %s is not a PDF file", domain.ErrUnreadableSource, path)
	}

	doc, _, err := tabula.Open(path).Document()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", domain.ErrUnreadableSource, path, err)
	}

	fileName := filepath.Base(path)
	totalPages := doc.PageCount()

	pages := make([]domain.PageDocument, 0, totalPages)
	for _, page := range doc.Pages {
		text := strings.TrimSpace(page.ExtractText())
		if text == "" {
			continue
		}
		pages = append(pages, domain.PageDocument{
			Text:       text,
			Source:     path,
			FileName:   fileName,
			Page:       page.Number,
			TotalPages: totalPages,
			Title:      doc.Metadata.Title,
			Author:     doc.Metadata.Author,
		})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: no extractable text in %s", domain.ErrNoContent, path)
	}

	return &driven.PDFLoadResult{
		SourcePath: path,
		Pages:      pages,
		TotalPages: totalPages,
	}, nil
}
