package services

import (
	"context"
	"fmt"

	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
	"github.com/pdforacle/pdforacle/internal/core/ports/driving"
	"github.com/pdforacle/pdforacle/internal/logger"
)

// Ensure RAGService implements the interface.
var _ driving.RAGService = (*RAGService)(nil)

// noPassagesAnswer is returned when retrieval comes back empty. The
// question never reaches the model in that case.
const noPassagesAnswer = "No relevant passages found in the indexed PDFs. " +
	"Try indexing more documents or rephrasing the question."

// RAGService answers questions over indexed documents: retrieve, prompt,
// generate, cite.
type RAGService struct {
	retriever driving.Retriever
	llm       driven.LLMService
}

// NewRAGService creates a RAG service over the given retriever and model.
func NewRAGService(retriever driving.Retriever, llm driven.LLMService) *RAGService {
	return &RAGService{
		retriever: retriever,
		llm:       llm,
	}
}

// Answer retrieves the top-k chunks for the query and generates an answer
// grounded in them. Retrieval failures are returned as errors; generation
// failures degrade into a result with no citations, since nothing was
// generated from them.
func (s *RAGService) Answer(ctx context.Context, query string, k int) (*domain.RAGResult, error) {
	logger.Section("RAG Query")
	logger.Debug("Question: %q (k=%d)", query, k)

	chunks, err := s.retriever.Retrieve(ctx, query, k)
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		logger.Debug("No chunks retrieved, skipping generation")
		return &domain.RAGResult{
			Answer:  noPassagesAnswer,
			Sources: []domain.SourceRef{},
		}, nil
	}

	messages := []driven.ChatMessage{
		{Role: driven.RoleSystem, Content: ragSystemPrompt},
		{Role: driven.RoleUser, Content: fmt.Sprintf(ragUserTemplate, formatContext(chunks), query)},
	}

	answer, err := s.llm.Chat(ctx, messages, driven.ChatOptions{Temperature: ptrFloat64(0)})
	if err != nil {
		logger.Warn("Generation failed: %v", err)
		return &domain.RAGResult{
			Answer:  fmt.Sprintf("Answer generation failed: %v", err),
			Sources: []domain.SourceRef{},
		}, nil
	}

	return &domain.RAGResult{
		Answer:  answer,
		Sources: dedupeSources(chunks),
	}, nil
}

func ptrFloat64(v float64) *float64 { return &v }
