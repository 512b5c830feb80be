// Package mcp provides an MCP (Model Context Protocol) server adapter for
// pdforacle. It lets AI assistants index PDFs and ask questions over them.
package mcp

import "errors"

// Errors returned when required ports are not provided.
var (
	ErrMissingIndexerService = errors.New("mcp: indexer service is required")
	ErrMissingQueryService   = errors.New("mcp: query service is required")
	ErrMissingLibraryService = errors.New("mcp: library service is required")
)
