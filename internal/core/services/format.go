package services

import (
	"fmt"
	"strings"

	"github.com/pdforacle/pdforacle/internal/core/domain"
)

// formatContext renders retrieved chunks as numbered context blocks. The
// labels match the citation labels the prompt invites the model to use.
func formatContext(chunks []domain.Chunk) string {
	if len(chunks) == 0 {
		return "No relevant context found."
	}

	blocks := make([]string, len(chunks))
	for i, chunk := range chunks {
		blocks[i] = fmt.Sprintf("[%d] (doc: %s, p. %d)\n%s", i+1, chunk.DocumentID, chunk.Page, chunk.Content)
	}
	return strings.Join(blocks, "\n\n")
}

// dedupeSources collapses retrieved chunks into unique (document, page)
// citations, preserving first-seen order.
func dedupeSources(chunks []domain.Chunk) []domain.SourceRef {
	seen := make(map[domain.SourceRef]bool, len(chunks))
	sources := make([]domain.SourceRef, 0, len(chunks))

	for _, chunk := range chunks {
		ref := domain.SourceRef{DocumentID: chunk.DocumentID, Page: chunk.Page}
		if seen[ref] {
			continue
		}
		seen[ref] = true
		sources = append(sources, ref)
	}
	return sources
}
