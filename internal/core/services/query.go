package services

import (
	"context"
	"fmt"
	"os"

	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
	"github.com/pdforacle/pdforacle/internal/core/ports/driving"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// Bounds on the retrieval depth of one query.
const (
	MinTopK = 1
	MaxTopK = 100

	// DefaultTopK is applied by the CLI and MCP surfaces when unset.
	DefaultTopK = 5
)

// QueryService answers questions over an indexed collection. It opens the
// vector store per call so a long-running MCP server always sees the
// latest indexed state.
type QueryService struct {
	openStore driven.VectorStoreOpener
	embedding driven.EmbeddingService
	llm       driven.LLMService
}

// NewQueryService creates a query service.
func NewQueryService(
	openStore driven.VectorStoreOpener,
	embedding driven.EmbeddingService,
	llm driven.LLMService,
) *QueryService {
	return &QueryService{
		openStore: openStore,
		embedding: embedding,
		llm:       llm,
	}
}

// Query answers one question. Unlike listing, querying an index that was
// never created is an error.
func (s *QueryService) Query(ctx context.Context, query string, k int, filter *domain.Filter, persistDir, collection string) (*domain.RAGResult, error) {
	if k < MinTopK || k > MaxTopK {
		return nil, fmt.Errorf("%w: k must be between %d and %d, got %d",
			domain.ErrInvalidInput, MinTopK, MaxTopK, k)
	}
	if persistDir == "" || collection == "" {
		return nil, fmt.Errorf("%w: persist directory and collection are required", domain.ErrInvalidInput)
	}

	if _, err := os.Stat(persistDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: no index found at %s, index documents first",
			domain.ErrNotFound, persistDir)
	}

	store, err := s.openStore(persistDir, collection)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	retriever := NewVectorRetriever(store, s.embedding, filter)
	return NewRAGService(retriever, s.llm).Answer(ctx, query, k)
}
