package driving

import (
	"context"

	"github.com/pdforacle/pdforacle/internal/core/domain"
)

// LibraryService lists and removes indexed documents.
type LibraryService interface {
	// List returns the unique document ids in a collection with their
	// index-time stats. A missing persistence directory yields an empty
	// listing, not an error.
	List(ctx context.Context, persistDir, collection string) (*domain.LibraryListing, error)

	// Remove deletes every chunk of one document and reports how many
	// chunks were removed.
	Remove(ctx context.Context, documentID, persistDir, collection string) (int, error)
}
