package mcp

import (
	"context"

	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driving"
)

// mockIndexerService is a mock implementation of driving.IndexerService.
type mockIndexerService struct {
	result      *domain.IndexResult
	batchResult *domain.BatchIndexResult
	err         error
	lastOpts    driving.IndexOptions
	lastTags    []string
}

func (m *mockIndexerService) Index(_ context.Context, _ string, opts driving.IndexOptions) (*domain.IndexResult, error) {
	m.lastOpts = opts
	return m.result, m.err
}

func (m *mockIndexerService) IndexAll(_ context.Context, _ []string, opts driving.IndexOptions, tags []string) (*domain.BatchIndexResult, error) {
	m.lastOpts = opts
	m.lastTags = tags
	return m.batchResult, m.err
}

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	result     *domain.RAGResult
	err        error
	lastQuery  string
	lastK      int
	lastFilter *domain.Filter
	lastDir    string
	lastColl   string
}

func (m *mockQueryService) Query(_ context.Context, query string, k int, filter *domain.Filter, persistDir, collection string) (*domain.RAGResult, error) {
	m.lastQuery = query
	m.lastK = k
	m.lastFilter = filter
	m.lastDir = persistDir
	m.lastColl = collection
	return m.result, m.err
}

// mockLibraryService is a mock implementation of driving.LibraryService.
type mockLibraryService struct {
	listing    *domain.LibraryListing
	removed    int
	err        error
	lastDocID  string
	lastDir    string
	lastColl   string
}

func (m *mockLibraryService) List(_ context.Context, persistDir, collection string) (*domain.LibraryListing, error) {
	m.lastDir = persistDir
	m.lastColl = collection
	return m.listing, m.err
}

func (m *mockLibraryService) Remove(_ context.Context, documentID, persistDir, collection string) (int, error) {
	m.lastDocID = documentID
	m.lastDir = persistDir
	m.lastColl = collection
	return m.removed, m.err
}

// testPorts returns a fully mocked Ports value.
func testPorts() *Ports {
	return &Ports{
		Indexer:    &mockIndexerService{},
		Query:      &mockQueryService{},
		Library:    &mockLibraryService{},
		PersistDir: "/tmp/index",
		Collection: "test",
	}
}
