package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driving"
	"github.com/pdforacle/pdforacle/internal/core/services"
)

// AddPDFInput is the input schema for the add_pdf tool.
type AddPDFInput struct {
	Path         string `json:"path" jsonschema:"path to the PDF file to index"`
	Tag          string `json:"tag,omitempty" jsonschema:"optional label stamped on every chunk of the document"`
	ChunkSize    int    `json:"chunk_size,omitempty" jsonschema:"chunk size in characters (default 1000)"`
	ChunkOverlap *int   `json:"chunk_overlap,omitempty" jsonschema:"chunk overlap in characters (default 200)"`
	PersistDir   string `json:"persist_dir,omitempty" jsonschema:"override the configured index directory"`
	Collection   string `json:"collection,omitempty" jsonschema:"override the configured collection name"`
}

// AddPDFOutput is the output schema for the add_pdf tool.
type AddPDFOutput struct {
	SourcePath       string `json:"source_path"`
	TotalPages       int    `json:"total_pages"`
	TotalChunks      int    `json:"total_chunks"`
	PersistDirectory string `json:"persist_directory"`
	CollectionName   string `json:"collection_name"`
}

// AddPDFsInput is the input schema for the add_pdfs tool.
type AddPDFsInput struct {
	Paths      []string `json:"paths" jsonschema:"paths of the PDF files to index"`
	Tags       []string `json:"tags,omitempty" jsonschema:"optional per-path labels, must match paths in length"`
	PersistDir string   `json:"persist_dir,omitempty" jsonschema:"override the configured index directory"`
	Collection string   `json:"collection,omitempty" jsonschema:"override the configured collection name"`
}

// AddPDFsOutput is the output schema for the add_pdfs tool.
type AddPDFsOutput struct {
	Indexed     []AddPDFOutput        `json:"indexed"`
	Failed      []domain.IndexFailure `json:"failed"`
	TotalPages  int                   `json:"total_pages"`
	TotalChunks int                   `json:"total_chunks"`
}

// QueryPDFInput is the input schema for the query_pdf tool.
type QueryPDFInput struct {
	Question   string `json:"question" jsonschema:"the question to answer from the indexed PDFs"`
	K          int    `json:"k,omitempty" jsonschema:"number of chunks to retrieve, 1 to 100 (default 5)"`
	DocumentID string `json:"document_id,omitempty" jsonschema:"restrict retrieval to one document"`
	Tag        string `json:"tag,omitempty" jsonschema:"restrict retrieval to documents indexed with this tag"`
	PageMin    *int   `json:"page_min,omitempty" jsonschema:"restrict retrieval to pages >= page_min, requires page_max"`
	PageMax    *int   `json:"page_max,omitempty" jsonschema:"restrict retrieval to pages <= page_max, requires page_min"`
	PersistDir string `json:"persist_dir,omitempty" jsonschema:"override the configured index directory"`
	Collection string `json:"collection,omitempty" jsonschema:"override the configured collection name"`
}

// QueryPDFOutput is the output schema for the query_pdf tool.
type QueryPDFOutput struct {
	Answer  string             `json:"answer"`
	Sources []domain.SourceRef `json:"sources"`
}

// ListPDFsInput is the input schema for the list_pdfs tool.
type ListPDFsInput struct {
	PersistDir string `json:"persist_dir,omitempty" jsonschema:"override the configured index directory"`
	Collection string `json:"collection,omitempty" jsonschema:"override the configured collection name"`
}

// ListPDFsOutput is the output schema for the list_pdfs tool.
type ListPDFsOutput struct {
	Documents       []string                          `json:"documents"`
	TotalChunks     int                               `json:"total_chunks"`
	DocumentDetails map[string]domain.DocumentDetails `json:"document_details"`
	CollectionName  string                            `json:"collection_name"`
}

// RemovePDFInput is the input schema for the remove_pdf tool.
type RemovePDFInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document id to remove, as shown by list_pdfs"`
	PersistDir string `json:"persist_dir,omitempty" jsonschema:"override the configured index directory"`
	Collection string `json:"collection,omitempty" jsonschema:"override the configured collection name"`
}

// RemovePDFOutput is the output schema for the remove_pdf tool.
type RemovePDFOutput struct {
	DocumentID    string `json:"document_id"`
	DeletedChunks int    `json:"deleted_chunks"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_pdf",
		Description: "Index a PDF file so its content can be queried",
	}, s.handleAddPDF)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_pdfs",
		Description: "Index several PDF files, reporting per-file outcomes",
	}, s.handleAddPDFs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_pdf",
		Description: "Answer a question from the indexed PDFs, with citations",
	}, s.handleQueryPDF)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_pdfs",
		Description: "List the indexed PDF documents and their stats",
	}, s.handleListPDFs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_pdf",
		Description: "Remove all indexed chunks of one PDF document",
	}, s.handleRemovePDF)
}

// storeTarget resolves the per-call store location, falling back to the
// server defaults.
func (s *Server) storeTarget(persistDir, collection string) (string, string) {
	if persistDir == "" {
		persistDir = s.ports.PersistDir
	}
	if collection == "" {
		collection = s.ports.Collection
	}
	return persistDir, collection
}

// handleAddPDF handles the add_pdf tool invocation.
func (s *Server) handleAddPDF(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddPDFInput,
) (*mcp.CallToolResult, AddPDFOutput, error) {
	persistDir, collection := s.storeTarget(input.PersistDir, input.Collection)
	opts := driving.IndexOptions{
		PersistDir:   persistDir,
		Collection:   collection,
		ChunkSize:    input.ChunkSize,
		ChunkOverlap: -1,
		Tag:          input.Tag,
	}
	if input.ChunkOverlap != nil {
		opts.ChunkOverlap = *input.ChunkOverlap
	}

	result, err := s.ports.Indexer.Index(ctx, input.Path, opts)
	if err != nil {
		return nil, AddPDFOutput{}, err
	}

	return nil, indexOutput(result), nil
}

// handleAddPDFs handles the add_pdfs tool invocation.
func (s *Server) handleAddPDFs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddPDFsInput,
) (*mcp.CallToolResult, AddPDFsOutput, error) {
	persistDir, collection := s.storeTarget(input.PersistDir, input.Collection)
	opts := driving.IndexOptions{
		PersistDir:   persistDir,
		Collection:   collection,
		ChunkOverlap: -1,
	}

	result, err := s.ports.Indexer.IndexAll(ctx, input.Paths, opts, input.Tags)
	if err != nil {
		return nil, AddPDFsOutput{}, err
	}

	output := AddPDFsOutput{
		Indexed:     make([]AddPDFOutput, len(result.Indexed)),
		Failed:      result.Failed,
		TotalPages:  result.TotalPages,
		TotalChunks: result.TotalChunks,
	}
	for i := range result.Indexed {
		output.Indexed[i] = indexOutput(&result.Indexed[i])
	}

	return nil, output, nil
}

// handleQueryPDF handles the query_pdf tool invocation.
func (s *Server) handleQueryPDF(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryPDFInput,
) (*mcp.CallToolResult, QueryPDFOutput, error) {
	filter, err := domain.BuildFilter(input.DocumentID, input.Tag, input.PageMin, input.PageMax)
	if err != nil {
		return nil, QueryPDFOutput{}, err
	}

	k := input.K
	if k == 0 {
		k = services.DefaultTopK
	}

	persistDir, collection := s.storeTarget(input.PersistDir, input.Collection)
	result, err := s.ports.Query.Query(ctx, input.Question, k, filter, persistDir, collection)
	if err != nil {
		return nil, QueryPDFOutput{}, err
	}

	return nil, QueryPDFOutput{
		Answer:  result.Answer,
		Sources: result.Sources,
	}, nil
}

// handleListPDFs handles the list_pdfs tool invocation.
func (s *Server) handleListPDFs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListPDFsInput,
) (*mcp.CallToolResult, ListPDFsOutput, error) {
	persistDir, collection := s.storeTarget(input.PersistDir, input.Collection)
	listing, err := s.ports.Library.List(ctx, persistDir, collection)
	if err != nil {
		return nil, ListPDFsOutput{}, err
	}

	return nil, ListPDFsOutput{
		Documents:       listing.Documents,
		TotalChunks:     listing.TotalChunks,
		DocumentDetails: listing.DocumentDetails,
		CollectionName:  listing.CollectionName,
	}, nil
}

// handleRemovePDF handles the remove_pdf tool invocation.
func (s *Server) handleRemovePDF(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RemovePDFInput,
) (*mcp.CallToolResult, RemovePDFOutput, error) {
	persistDir, collection := s.storeTarget(input.PersistDir, input.Collection)
	removed, err := s.ports.Library.Remove(ctx, input.DocumentID, persistDir, collection)
	if err != nil {
		return nil, RemovePDFOutput{}, err
	}

	return nil, RemovePDFOutput{
		DocumentID:    input.DocumentID,
		DeletedChunks: removed,
	}, nil
}

// indexOutput converts a domain index result to the tool output shape.
func indexOutput(result *domain.IndexResult) AddPDFOutput {
	return AddPDFOutput{
		SourcePath:       result.SourcePath,
		TotalPages:       result.TotalPages,
		TotalChunks:      result.TotalChunks,
		PersistDirectory: result.PersistDirectory,
		CollectionName:   result.CollectionName,
	}
}
