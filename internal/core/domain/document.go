package domain

// Metadata keys carried on every stored chunk. The filterable subset
// (document_id, tag, page) is also stored in dedicated columns by the
// vector store; the rest travels in the metadata map.
const (
	MetaSource          = "source"
	MetaFileName        = "file_name"
	MetaTotalPages      = "total_pages"
	MetaDocumentTitle   = "document_title"
	MetaDocumentAuthor  = "document_author"
	MetaUploadTimestamp = "upload_timestamp"
	MetaDocPages        = "doc_pages"
	MetaDocBytes        = "doc_bytes"
	MetaDocTotalChunks  = "doc_total_chunks"
)

// PageDocument is one extracted PDF page. Pages are created once by the
// PDF loader, consumed by the chunker, and never persisted directly.
type PageDocument struct {
	// Text is the extracted page text, trimmed. Pages with no text are
	// dropped by the loader and never reach the chunker.
	Text string

	// Source is the resolved path of the PDF the page came from.
	Source string

	// FileName is the base name of the PDF. It is the default document id.
	FileName string

	// Page is the 1-based page number.
	Page int

	// TotalPages is the page count of the source PDF.
	TotalPages int

	// Title is the document title from PDF metadata, if any.
	Title string

	// Author is the document author from PDF metadata, if any.
	Author string
}

// Chunk is one indexed and retrievable unit of a document.
type Chunk struct {
	// ID is the vector store record identifier. Chunk identities are not
	// stable across re-chunking; replacing a document is delete-then-insert.
	ID string

	// DocumentID groups all chunks of one source PDF (default: file name).
	DocumentID string

	// Content is the chunk text. At most the configured chunk size, except
	// when a single unbreakable run exceeds it.
	Content string

	// ChunkIndex is the 0-based position of this chunk within its source
	// page. Indexes restart at 0 on every page.
	ChunkIndex int

	// Page is the 1-based page number of the source page.
	Page int

	// Section is the most recent heading-like line seen at or before this
	// chunk within its page. Empty until a heading appears.
	Section string

	// Tag is the optional user label stamped on every chunk of a document.
	Tag string

	// Embedding is the vector representation used for similarity search.
	Embedding []float32

	// Metadata carries the remaining page- and document-level fields.
	Metadata map[string]any
}

// IndexResult summarises one successful index operation.
type IndexResult struct {
	SourcePath       string `json:"source_path"`
	TotalPages       int    `json:"total_pages"`
	TotalChunks      int    `json:"total_chunks"`
	PersistDirectory string `json:"persist_directory"`
	CollectionName   string `json:"collection_name"`
}

// IndexFailure records one failed path in a batch index operation.
type IndexFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// BatchIndexResult aggregates per-path outcomes of indexing several PDFs.
// One bad path never aborts the batch.
type BatchIndexResult struct {
	Indexed     []IndexResult  `json:"indexed"`
	Failed      []IndexFailure `json:"failed"`
	TotalPages  int            `json:"total_pages"`
	TotalChunks int            `json:"total_chunks"`
}

// SourceRef is one citation: a (document id, page) pair.
type SourceRef struct {
	DocumentID string `json:"document_id"`
	Page       int    `json:"page"`
}

// RAGResult is the answer to one query plus its deduplicated citations.
type RAGResult struct {
	Answer  string      `json:"answer"`
	Sources []SourceRef `json:"sources"`
}

// DocumentDetails holds the document-level stats stamped on chunks at
// index time, as surfaced by the list operation.
type DocumentDetails struct {
	Pages           int    `json:"pages"`
	Bytes           int64  `json:"bytes"`
	Chunks          int    `json:"chunks"`
	UploadTimestamp string `json:"upload_timestamp"`
	Tag             string `json:"tag,omitempty"`
}

// LibraryListing describes the contents of one collection.
type LibraryListing struct {
	Documents        []string                   `json:"documents"`
	TotalChunks      int                        `json:"total_chunks"`
	DocumentDetails  map[string]DocumentDetails `json:"document_details"`
	PersistDirectory string                     `json:"persist_directory"`
	CollectionName   string                     `json:"collection_name"`
}
