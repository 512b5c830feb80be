package driven

import (
	"context"

	"github.com/pdforacle/pdforacle/internal/core/domain"
)

// VectorStore persists chunk records (content + embedding + metadata) for
// one collection and serves filtered similarity search over them. The
// store exclusively owns persisted chunks; the indexer only holds them
// transiently before insertion.
type VectorStore interface {
	// Add inserts chunk records. Records must carry embeddings.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// SimilaritySearch returns the k chunks nearest to the query vector,
	// best first, considering only chunks matching the filter. A nil
	// filter means every chunk is eligible. Ranking is owned by the store.
	SimilaritySearch(ctx context.Context, embedding []float32, k int, filter *domain.Filter) ([]domain.Chunk, error)

	// Get returns all chunks matching the filter, without ranking.
	// Embeddings are not populated.
	Get(ctx context.Context, filter *domain.Filter) ([]domain.Chunk, error)

	// Count reports how many chunks match the filter.
	Count(ctx context.Context, filter *domain.Filter) (int, error)

	// Delete removes all chunks matching the filter and reports how many
	// were removed.
	Delete(ctx context.Context, filter *domain.Filter) (int, error)

	// Close releases the underlying storage handle.
	Close() error
}

// VectorStoreOpener opens the vector store collection identified by a
// persistence directory and a collection name, creating it if absent.
// Injected into services so tests can substitute an in-memory store.
type VectorStoreOpener func(persistDir, collection string) (VectorStore, error)
