// Package chunker splits extracted PDF pages into overlapping,
// metadata-rich segments suitable for embedding and retrieval.
package chunker

import (
	"github.com/google/uuid"

	"github.com/pdforacle/pdforacle/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Chunker splits page documents into bounded-size chunks with section and
// positional metadata.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between consecutive chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed chunk size
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// ChunkSize returns the configured chunk size.
func (c *Chunker) ChunkSize() int { return c.chunkSize }

// Overlap returns the configured chunk overlap.
func (c *Chunker) Overlap() int { return c.overlap }

// Chunk splits each page independently and stamps every resulting chunk
// with chunk_index (0-based per page), document_id (file name, falling
// back to the source path), and section.
//
// The section label is the most recent chunk-leading heading line seen on
// the same page. It carries forward across subsequent chunks of the page
// until a new heading-looking chunk appears, and resets to empty on every
// page boundary.
func (c *Chunker) Chunk(pages []domain.PageDocument) []domain.Chunk {
	if len(pages) == 0 {
		return nil
	}

	sp := &splitter{chunkSize: c.chunkSize, overlap: c.overlap}

	var chunks []domain.Chunk
	for _, page := range pages {
		docID := page.FileName
		if docID == "" {
			docID = page.Source
		}

		pieces := sp.split(ensureHeadingBreaks(page.Text))

		section := ""
		for idx, piece := range pieces {
			if heading, ok := headingOf(piece); ok {
				section = heading
			}

			meta := map[string]any{
				domain.MetaSource:     page.Source,
				domain.MetaFileName:   page.FileName,
				domain.MetaTotalPages: page.TotalPages,
			}
			if page.Title != "" {
				meta[domain.MetaDocumentTitle] = page.Title
			}
			if page.Author != "" {
				meta[domain.MetaDocumentAuthor] = page.Author
			}

			chunks = append(chunks, domain.Chunk{
				ID:         uuid.New().String(),
				DocumentID: docID,
				Content:    piece,
				ChunkIndex: idx,
				Page:       page.Page,
				Section:    section,
				Metadata:   meta,
			})
		}
	}
	return chunks
}
