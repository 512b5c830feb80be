package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdforacle/pdforacle/internal/core/domain"
)

func TestVectorRetrieverRetrieve(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query", func(t *testing.T) {
		retriever := NewVectorRetriever(&memStore{}, &mockEmbedding{}, nil)
		_, err := retriever.Retrieve(ctx, "   ", 5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("non-positive k", func(t *testing.T) {
		retriever := NewVectorRetriever(&memStore{}, &mockEmbedding{}, nil)
		_, err := retriever.Retrieve(ctx, "question", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("embedding failure", func(t *testing.T) {
		embedding := &mockEmbedding{
			embedFn: func(ctx context.Context, text string) ([]float32, error) {
				return nil, errors.New("connection refused")
			},
		}
		retriever := NewVectorRetriever(&memStore{}, embedding, nil)

		_, err := retriever.Retrieve(ctx, "question", 5)
		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	})

	t.Run("returns store results under filter", func(t *testing.T) {
		store := &memStore{chunks: []domain.Chunk{
			chunkOf("c1", "guide.pdf", 1, "alpha"),
			chunkOf("c2", "manual.pdf", 2, "beta"),
		}}
		filter := &domain.Filter{DocumentID: "guide.pdf"}
		retriever := NewVectorRetriever(store, &mockEmbedding{}, filter)

		chunks, err := retriever.Retrieve(ctx, "question", 5)
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "guide.pdf", chunks[0].DocumentID)
	})
}
