package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist
	// (a missing PDF path, or a missing persistence directory on query).
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input. Surfaced to the
	// caller immediately, never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnreadableSource indicates a corrupt, non-PDF, or image-only file.
	ErrUnreadableSource = errors.New("unreadable source")

	// ErrNoContent indicates a PDF yielded no extractable text on any page.
	ErrNoContent = errors.New("no extractable text")

	// ErrStorage indicates a vector store I/O failure. Not recovered
	// locally; propagated to the caller.
	ErrStorage = errors.New("storage failure")

	// ErrLLMUnavailable indicates the chat model service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
