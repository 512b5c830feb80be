package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
	"github.com/pdforacle/pdforacle/internal/core/ports/driving"
	"github.com/pdforacle/pdforacle/internal/logger"
)

// Ensure VectorRetriever implements the interface.
var _ driving.Retriever = (*VectorRetriever)(nil)

// VectorRetriever retrieves chunks by embedding the query and running a
// filtered similarity search. The filter is fixed at construction; one
// retriever serves one query scope.
type VectorRetriever struct {
	store     driven.VectorStore
	embedding driven.EmbeddingService
	filter    *domain.Filter
}

// NewVectorRetriever creates a retriever over the given store. filter may
// be nil to search the whole collection.
func NewVectorRetriever(store driven.VectorStore, embedding driven.EmbeddingService, filter *domain.Filter) *VectorRetriever {
	return &VectorRetriever{
		store:     store,
		embedding: embedding,
		filter:    filter,
	}
}

// Retrieve returns the top-k chunks for the query.
func (r *VectorRetriever) Retrieve(ctx context.Context, query string, k int) ([]domain.Chunk, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", domain.ErrInvalidInput)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive", domain.ErrInvalidInput)
	}

	logger.Debug("Retrieving top %d chunks for query: %q", k, query)

	embedding, err := r.embedding.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding query: %w", domain.ErrEmbeddingUnavailable, err)
	}

	chunks, err := r.store.SimilaritySearch(ctx, embedding, k, r.filter)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	logger.Debug("Retrieved %d chunks", len(chunks))
	return chunks, nil
}
