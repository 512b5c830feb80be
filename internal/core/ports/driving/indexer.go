package driving

import (
	"context"

	"github.com/pdforacle/pdforacle/internal/core/domain"
)

// IndexOptions configures one index operation. Zero values fall back to
// the process configuration, which falls back to hard defaults.
type IndexOptions struct {
	// PersistDir is the vector store persistence directory.
	PersistDir string

	// Collection is the vector store collection name.
	Collection string

	// ChunkSize overrides the configured chunk size when > 0.
	ChunkSize int

	// ChunkOverlap overrides the configured chunk overlap when >= 0.
	// Use -1 to inherit the configured value.
	ChunkOverlap int

	// Tag is an optional label stamped on every chunk of the document.
	Tag string
}

// IndexerService indexes PDF documents into the vector store.
type IndexerService interface {
	// Index extracts, chunks, embeds, and stores one PDF. Re-indexing a
	// document replaces all of its previously stored chunks.
	Index(ctx context.Context, path string, opts IndexOptions) (*domain.IndexResult, error)

	// IndexAll indexes several PDFs independently. A failure on one path
	// is recorded and does not abort the remaining paths. tags must be
	// empty or the same length as paths.
	IndexAll(ctx context.Context, paths []string, opts IndexOptions, tags []string) (*domain.BatchIndexResult, error)
}
