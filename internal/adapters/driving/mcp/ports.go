package mcp

import (
	"github.com/pdforacle/pdforacle/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Indexer indexes PDF documents.
	Indexer driving.IndexerService

	// Query answers questions over the indexed documents.
	Query driving.QueryService

	// Library lists and removes indexed documents.
	Library driving.LibraryService

	// PersistDir and Collection identify the store the library tools
	// operate on.
	PersistDir string
	Collection string
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Indexer == nil {
		return ErrMissingIndexerService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	return nil
}
