package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdforacle/pdforacle/internal/chunker"
	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
	"github.com/pdforacle/pdforacle/internal/core/ports/driving"
	"github.com/pdforacle/pdforacle/internal/logger"
)

// Ensure IndexerService implements the interface.
var _ driving.IndexerService = (*IndexerService)(nil)

// embedBatchSize bounds how many chunks go to the embedding API per call.
const embedBatchSize = 100

// IndexerDefaults holds the configured fallbacks applied when an index
// operation leaves an option unset.
type IndexerDefaults struct {
	PersistDir   string
	Collection   string
	ChunkSize    int
	ChunkOverlap int
}

// IndexerService turns PDF files into embedded chunks in the vector store.
type IndexerService struct {
	loader    driven.PDFLoader
	embedding driven.EmbeddingService
	openStore driven.VectorStoreOpener
	defaults  IndexerDefaults
}

// NewIndexerService creates an indexer service.
func NewIndexerService(
	loader driven.PDFLoader,
	embedding driven.EmbeddingService,
	openStore driven.VectorStoreOpener,
	defaults IndexerDefaults,
) *IndexerService {
	return &IndexerService{
		loader:    loader,
		embedding: embedding,
		openStore: openStore,
		defaults:  defaults,
	}
}

// Index extracts, chunks, embeds, and stores one PDF. All previously
// stored chunks of the same document id are replaced.
func (s *IndexerService) Index(ctx context.Context, path string, opts driving.IndexOptions) (*domain.IndexResult, error) {
	logger.Section("Index Document")
	logger.Debug("Path: %s", path)

	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", domain.ErrInvalidInput)
	}

	persistDir, collection, err := s.resolveTarget(opts)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving path %s: %w", domain.ErrInvalidInput, path, err)
	}

	loaded, err := s.loader.Load(ctx, absPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Extracted %d non-empty pages of %d", len(loaded.Pages), loaded.TotalPages)

	chunks := s.chunk(loaded.Pages, opts)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: no chunks produced from %s", domain.ErrNoContent, absPath)
	}
	logger.Debug("Produced %d chunks", len(chunks))

	s.stampChunks(chunks, loaded, opts.Tag)

	store, err := s.openStore(persistDir, collection)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	// Replace any previous version of this document
	documentID := chunks[0].DocumentID
	removed, err := store.Delete(ctx, &domain.Filter{DocumentID: documentID})
	if err != nil {
		return nil, err
	}
	if removed > 0 {
		logger.Debug("Replaced %d existing chunks of %s", removed, documentID)
	}

	if err := s.embedAndStore(ctx, store, chunks); err != nil {
		return nil, err
	}

	return &domain.IndexResult{
		SourcePath:       absPath,
		TotalPages:       loaded.TotalPages,
		TotalChunks:      len(chunks),
		PersistDirectory: persistDir,
		CollectionName:   collection,
	}, nil
}

// IndexAll indexes several PDFs independently. One bad path is recorded
// as a failure and never aborts the rest of the batch.
func (s *IndexerService) IndexAll(ctx context.Context, paths []string, opts driving.IndexOptions, tags []string) (*domain.BatchIndexResult, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no paths provided", domain.ErrInvalidInput)
	}
	if len(tags) > 0 && len(tags) != len(paths) {
		return nil, fmt.Errorf("%w: tags length (%d) must match paths length (%d)",
			domain.ErrInvalidInput, len(tags), len(paths))
	}

	result := &domain.BatchIndexResult{
		Indexed: []domain.IndexResult{},
		Failed:  []domain.IndexFailure{},
	}

	for i, path := range paths {
		pathOpts := opts
		if len(tags) > 0 {
			pathOpts.Tag = tags[i]
		}

		indexed, err := s.Index(ctx, path, pathOpts)
		if err != nil {
			logger.Warn("Indexing %s failed: %v", path, err)
			result.Failed = append(result.Failed, domain.IndexFailure{
				Path:  path,
				Error: err.Error(),
			})
			continue
		}

		result.Indexed = append(result.Indexed, *indexed)
		result.TotalPages += indexed.TotalPages
		result.TotalChunks += indexed.TotalChunks
	}

	return result, nil
}

// resolveTarget applies configured fallbacks to the store coordinates.
func (s *IndexerService) resolveTarget(opts driving.IndexOptions) (persistDir, collection string, err error) {
	persistDir = opts.PersistDir
	if persistDir == "" {
		persistDir = s.defaults.PersistDir
	}
	collection = opts.Collection
	if collection == "" {
		collection = s.defaults.Collection
	}
	if persistDir == "" {
		return "", "", fmt.Errorf("%w: persist directory is required", domain.ErrInvalidInput)
	}
	if collection == "" {
		return "", "", fmt.Errorf("%w: collection is required", domain.ErrInvalidInput)
	}
	return persistDir, collection, nil
}

// chunk splits the loaded pages using the per-call overrides, then the
// configured defaults.
func (s *IndexerService) chunk(pages []domain.PageDocument, opts driving.IndexOptions) []domain.Chunk {
	size := opts.ChunkSize
	if size <= 0 {
		size = s.defaults.ChunkSize
	}
	overlap := opts.ChunkOverlap
	if overlap < 0 {
		overlap = s.defaults.ChunkOverlap
	}

	var chunkerOpts []chunker.Option
	if size > 0 {
		chunkerOpts = append(chunkerOpts, chunker.WithChunkSize(size))
	}
	if overlap >= 0 {
		chunkerOpts = append(chunkerOpts, chunker.WithOverlap(overlap))
	}

	return chunker.New(chunkerOpts...).Chunk(pages)
}

// stampChunks adds the document-level stats shared by every chunk of one
// index operation.
func (s *IndexerService) stampChunks(chunks []domain.Chunk, loaded *driven.PDFLoadResult, tag string) {
	uploadedAt := time.Now().UTC().Format(time.RFC3339)

	var sizeBytes int64
	if info, err := os.Stat(loaded.SourcePath); err == nil {
		sizeBytes = info.Size()
	}

	for i := range chunks {
		if tag != "" {
			chunks[i].Tag = tag
		}
		chunks[i].Metadata[domain.MetaUploadTimestamp] = uploadedAt
		chunks[i].Metadata[domain.MetaDocPages] = loaded.TotalPages
		chunks[i].Metadata[domain.MetaDocBytes] = sizeBytes
		chunks[i].Metadata[domain.MetaDocTotalChunks] = len(chunks)
	}
}

// embedAndStore embeds chunks in bounded batches and inserts each batch
// as soon as its vectors arrive.
func (s *IndexerService) embedAndStore(ctx context.Context, store driven.VectorStore, chunks []domain.Chunk) error {
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Content
		}

		embeddings, err := s.embedding.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("%w: embedding chunks %d-%d: %w",
				domain.ErrEmbeddingUnavailable, start, end-1, err)
		}
		if len(embeddings) != len(batch) {
			return fmt.Errorf("%w: expected %d embeddings, got %d",
				domain.ErrEmbeddingUnavailable, len(batch), len(embeddings))
		}

		for i := range batch {
			batch[i].Embedding = embeddings[i]
		}

		if err := store.Add(ctx, batch); err != nil {
			return err
		}
		logger.Debug("Stored chunks %d-%d", start, end-1)
	}
	return nil
}
