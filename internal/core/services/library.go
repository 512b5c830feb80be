package services

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
	"github.com/pdforacle/pdforacle/internal/core/ports/driving"
	"github.com/pdforacle/pdforacle/internal/logger"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService lists and removes indexed documents.
type LibraryService struct {
	openStore driven.VectorStoreOpener
}

// NewLibraryService creates a library service.
func NewLibraryService(openStore driven.VectorStoreOpener) *LibraryService {
	return &LibraryService{openStore: openStore}
}

// List returns the documents in a collection with their index-time stats.
// A persistence directory that does not exist yields an empty listing.
func (s *LibraryService) List(ctx context.Context, persistDir, collection string) (*domain.LibraryListing, error) {
	listing := &domain.LibraryListing{
		Documents:        []string{},
		DocumentDetails:  map[string]domain.DocumentDetails{},
		PersistDirectory: persistDir,
		CollectionName:   collection,
	}

	if _, err := os.Stat(persistDir); os.IsNotExist(err) {
		logger.Debug("Persist directory %s does not exist, listing empty", persistDir)
		return listing, nil
	}

	store, err := s.openStore(persistDir, collection)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	total, err := store.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	listing.TotalChunks = total

	chunks, err := store.Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	for _, chunk := range chunks {
		if _, known := listing.DocumentDetails[chunk.DocumentID]; known {
			continue
		}
		listing.Documents = append(listing.Documents, chunk.DocumentID)
		listing.DocumentDetails[chunk.DocumentID] = domain.DocumentDetails{
			Pages:           metaInt(chunk.Metadata, domain.MetaDocPages),
			Bytes:           metaInt64(chunk.Metadata, domain.MetaDocBytes),
			Chunks:          metaInt(chunk.Metadata, domain.MetaDocTotalChunks),
			UploadTimestamp: metaString(chunk.Metadata, domain.MetaUploadTimestamp),
			Tag:             chunk.Tag,
		}
	}

	sort.Strings(listing.Documents)
	return listing, nil
}

// Remove deletes every chunk of one document. An unknown document id or
// an absent persistence directory reports zero deletions.
func (s *LibraryService) Remove(ctx context.Context, documentID, persistDir, collection string) (int, error) {
	if strings.TrimSpace(documentID) == "" {
		return 0, fmt.Errorf("%w: document id cannot be empty", domain.ErrInvalidInput)
	}

	if _, err := os.Stat(persistDir); os.IsNotExist(err) {
		return 0, nil
	}

	store, err := s.openStore(persistDir, collection)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	removed, err := store.Delete(ctx, &domain.Filter{DocumentID: documentID})
	if err != nil {
		return 0, err
	}

	logger.Debug("Removed %d chunks of %s", removed, documentID)
	return removed, nil
}

// metaInt reads an integer metadata value, tolerating the float64 form
// JSON decoding produces.
func metaInt(md map[string]any, key string) int {
	switch v := md[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// metaInt64 reads a 64-bit integer metadata value.
func metaInt64(md map[string]any, key string) int64 {
	switch v := md[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// metaString reads a string metadata value.
func metaString(md map[string]any, key string) string {
	if v, ok := md[key].(string); ok {
		return v
	}
	return ""
}
