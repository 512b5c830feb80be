package driving

import (
	"context"

	"github.com/pdforacle/pdforacle/internal/core/domain"
)

// Retriever fetches the top-k chunks for a query string. Ranking is owned
// by the underlying vector store.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]domain.Chunk, error)
}

// RAGService answers natural-language questions over indexed documents.
type RAGService interface {
	// Answer retrieves, prompts the chat model, and returns the generated
	// answer with deduplicated citations. Generation failures degrade into
	// a normal result; they are never returned as errors.
	Answer(ctx context.Context, query string, k int) (*domain.RAGResult, error)
}

// QueryService is the question-answering entry point used by the CLI and
// MCP adapters. Each call carries its own retrieval filter and store
// location, matching LibraryService.
type QueryService interface {
	// Query answers one question over the given collection, restricting
	// retrieval to chunks matching the filter (nil for none). k must be
	// between 1 and 100.
	Query(ctx context.Context, query string, k int, filter *domain.Filter, persistDir, collection string) (*domain.RAGResult, error)
}
