package services

import (
	"context"
	"fmt"

	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
)

// mockLoader implements driven.PDFLoader with a configurable function.
type mockLoader struct {
	loadFn func(ctx context.Context, path string) (*driven.PDFLoadResult, error)
}

func (m *mockLoader) Load(ctx context.Context, path string) (*driven.PDFLoadResult, error) {
	return m.loadFn(ctx, path)
}

// mockEmbedding implements driven.EmbeddingService. Unset functions fall
// back to a deterministic embedding derived from the text length.
type mockEmbedding struct {
	embedFn      func(ctx context.Context, text string) ([]float32, error)
	embedBatchFn func(ctx context.Context, texts []string) ([][]float32, error)
	batchCalls   int
}

func fakeEmbedding(text string) []float32 {
	return []float32{float32(len(text)), 1, 0}
}

func (m *mockEmbedding) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.embedFn != nil {
		return m.embedFn(ctx, text)
	}
	return fakeEmbedding(text), nil
}

func (m *mockEmbedding) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	m.batchCalls++
	if m.embedBatchFn != nil {
		return m.embedBatchFn(ctx, texts)
	}
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embeddings[i] = fakeEmbedding(text)
	}
	return embeddings, nil
}

func (m *mockEmbedding) Dimensions() int   { return 3 }
func (m *mockEmbedding) ModelName() string { return "mock-embedding" }

func (m *mockEmbedding) Ping(ctx context.Context) error { return nil }
func (m *mockEmbedding) Close() error                   { return nil }

// mockLLM implements driven.LLMService with a configurable chat function.
type mockLLM struct {
	chatFn       func(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error)
	lastMessages []driven.ChatMessage
	chatCalls    int
}

func (m *mockLLM) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	m.chatCalls++
	m.lastMessages = messages
	if m.chatFn != nil {
		return m.chatFn(ctx, messages, opts)
	}
	return "mock answer", nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }

func (m *mockLLM) Ping(ctx context.Context) error { return nil }
func (m *mockLLM) Close() error                   { return nil }

// mockRetriever implements driving.Retriever.
type mockRetriever struct {
	retrieveFn func(ctx context.Context, query string, k int) ([]domain.Chunk, error)
}

func (m *mockRetriever) Retrieve(ctx context.Context, query string, k int) ([]domain.Chunk, error) {
	return m.retrieveFn(ctx, query, k)
}

// memStore is an in-memory vector store for service tests. Filter
// matching mirrors the persistent store's column filters.
type memStore struct {
	chunks   []domain.Chunk
	closed   bool
	addErr   error
	addCalls int
}

func (m *memStore) opener() driven.VectorStoreOpener {
	return func(persistDir, collection string) (driven.VectorStore, error) {
		return m, nil
	}
}

func (m *memStore) Add(ctx context.Context, chunks []domain.Chunk) error {
	m.addCalls++
	if m.addErr != nil {
		return m.addErr
	}
	for _, chunk := range chunks {
		replaced := false
		for i := range m.chunks {
			if m.chunks[i].ID == chunk.ID {
				m.chunks[i] = chunk
				replaced = true
				break
			}
		}
		if !replaced {
			m.chunks = append(m.chunks, chunk)
		}
	}
	return nil
}

func (m *memStore) SimilaritySearch(ctx context.Context, embedding []float32, k int, filter *domain.Filter) ([]domain.Chunk, error) {
	matched, err := m.Get(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(matched) > k {
		matched = matched[:k]
	}
	return matched, nil
}

func (m *memStore) Get(ctx context.Context, filter *domain.Filter) ([]domain.Chunk, error) {
	var matched []domain.Chunk
	for _, chunk := range m.chunks {
		if filter.Matches(chunk) {
			matched = append(matched, chunk)
		}
	}
	return matched, nil
}

func (m *memStore) Count(ctx context.Context, filter *domain.Filter) (int, error) {
	n := 0
	for _, chunk := range m.chunks {
		if filter.Matches(chunk) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) Delete(ctx context.Context, filter *domain.Filter) (int, error) {
	var kept []domain.Chunk
	removed := 0
	for _, chunk := range m.chunks {
		if filter.Matches(chunk) {
			removed++
			continue
		}
		kept = append(kept, chunk)
	}
	m.chunks = kept
	return removed, nil
}

func (m *memStore) Close() error {
	m.closed = true
	return nil
}

// pageOf builds a loader result page for indexer tests.
func pageOf(fileName, text string, page, totalPages int) domain.PageDocument {
	return domain.PageDocument{
		Text:       text,
		Source:     "/docs/" + fileName,
		FileName:   fileName,
		Page:       page,
		TotalPages: totalPages,
	}
}

// chunkOf builds a stored chunk for retrieval and library tests.
func chunkOf(id, docID string, page int, content string) domain.Chunk {
	return domain.Chunk{
		ID:         id,
		DocumentID: docID,
		Content:    content,
		Page:       page,
		Embedding:  []float32{1, 0, 0},
		Metadata: map[string]any{
			domain.MetaSource: "/docs/" + docID,
		},
	}
}

// errLoader returns a loader that always fails with err.
func errLoader(err error) *mockLoader {
	return &mockLoader{
		loadFn: func(ctx context.Context, path string) (*driven.PDFLoadResult, error) {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		},
	}
}
