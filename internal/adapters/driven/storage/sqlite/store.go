// Package sqlite implements the vector store on a single SQLite database
// per persistence directory. Chunks carry their embedding as a BLOB and
// their metadata as JSON; the filterable fields (document id, tag, page)
// live in dedicated indexed columns. Similarity ranking is brute-force
// cosine over the filter-eligible rows, computed in-process.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/pdforacle/pdforacle/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
)

// DBFileName is the database file created inside each persist directory.
const DBFileName = "index.db"

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is a SQLite-backed vector store bound to one collection.
type Store struct {
	db         *sql.DB
	path       string
	collection string
}

// Open opens (or creates) the vector store for the given persistence
// directory and collection name.
func Open(persistDir, collection string) (*Store, error) {
	if persistDir == "" {
		return nil, fmt.Errorf("%w: persist directory is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(collection) == "" {
		return nil, fmt.Errorf("%w: collection cannot be empty", domain.ErrInvalidInput)
	}

	// Ensure directory exists
	if err := os.MkdirAll(persistDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating persist directory: %w", domain.ErrStorage, err)
	}

	dbPath := filepath.Join(persistDir, DBFileName)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", domain.ErrStorage, err)
	}

	s := &Store{
		db:         db,
		path:       dbPath,
		collection: collection,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: running migrations: %w", domain.ErrStorage, err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Collection returns the collection name this store is bound to.
func (s *Store) Collection() string {
	return s.collection
}

// Add inserts chunk records into the collection.
func (s *Store) Add(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %w", domain.ErrStorage, err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, collection, document_id, tag, page, chunk_index, section, content, embedding, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document_id = excluded.document_id,
			tag = excluded.tag,
			page = excluded.page,
			chunk_index = excluded.chunk_index,
			section = excluded.section,
			content = excluded.content,
			embedding = excluded.embedding,
			metadata = excluded.metadata
	`)
	if err != nil {
		return fmt.Errorf("%w: preparing statement: %w", domain.ErrStorage, err)
	}
	defer stmt.Close()

	for _, chunk := range chunks {
		metadataJSON, err := json.Marshal(chunk.Metadata)
		if err != nil {
			return fmt.Errorf("%w: marshalling chunk metadata: %w", domain.ErrStorage, err)
		}

		embeddingBlob := float32SliceToBytes(chunk.Embedding)

		if _, err := stmt.ExecContext(ctx, chunk.ID, s.collection, chunk.DocumentID, chunk.Tag,
			chunk.Page, chunk.ChunkIndex, chunk.Section, chunk.Content,
			embeddingBlob, string(metadataJSON)); err != nil {
			return fmt.Errorf("%w: saving chunk: %w", domain.ErrStorage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %w", domain.ErrStorage, err)
	}
	return nil
}

// SimilaritySearch returns the k chunks nearest to the query vector under
// the filter, best first. The filter only restricts eligibility; ranking
// is pure cosine similarity.
func (s *Store) SimilaritySearch(ctx context.Context, embedding []float32, k int, filter *domain.Filter) ([]domain.Chunk, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive", domain.ErrInvalidInput)
	}

	where, args := s.filterClause(filter)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, tag, page, chunk_index, section, content, embedding, metadata
		FROM chunks WHERE `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying chunks: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	type scored struct {
		chunk domain.Chunk
		score float64
	}

	var candidates []scored
	for rows.Next() {
		chunk, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, scored{
			chunk: *chunk,
			score: cosineSimilarity(embedding, chunk.Embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating chunks: %w", domain.ErrStorage, err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	result := make([]domain.Chunk, len(candidates))
	for i, c := range candidates {
		result[i] = c.chunk
	}
	return result, nil
}

// Get returns all chunks matching the filter, in insertion order.
// Embeddings are not loaded.
func (s *Store) Get(ctx context.Context, filter *domain.Filter) ([]domain.Chunk, error) {
	where, args := s.filterClause(filter)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, tag, page, chunk_index, section, content, NULL, metadata
		FROM chunks WHERE `+where+` ORDER BY rowid`, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying chunks: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	var chunks []domain.Chunk //nolint:prealloc // size unknown from query
	for rows.Next() {
		chunk, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, *chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating chunks: %w", domain.ErrStorage, err)
	}
	return chunks, nil
}

// Count reports how many chunks match the filter.
func (s *Store) Count(ctx context.Context, filter *domain.Filter) (int, error) {
	where, args := s.filterClause(filter)
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks WHERE `+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: counting chunks: %w", domain.ErrStorage, err)
	}
	return n, nil
}

// Delete removes all chunks matching the filter and reports the count.
func (s *Store) Delete(ctx context.Context, filter *domain.Filter) (int, error) {
	where, args := s.filterClause(filter)
	res, err := s.db.ExecContext(ctx, `DELETE FROM chunks WHERE `+where, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting chunks: %w", domain.ErrStorage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: counting deleted chunks: %w", domain.ErrStorage, err)
	}
	return int(n), nil
}

// filterClause renders the filter as a conjunctive WHERE clause. The
// collection clause is always present.
func (s *Store) filterClause(filter *domain.Filter) (string, []any) {
	clauses := []string{"collection = ?"}
	args := []any{s.collection}

	if filter != nil {
		if filter.DocumentID != "" {
			clauses = append(clauses, "document_id = ?")
			args = append(args, filter.DocumentID)
		}
		if filter.Tag != "" {
			clauses = append(clauses, "tag = ?")
			args = append(args, filter.Tag)
		}
		if filter.Pages != nil {
			clauses = append(clauses, "page >= ?", "page <= ?")
			args = append(args, filter.Pages.Min, filter.Pages.Max)
		}
	}

	return strings.Join(clauses, " AND "), args
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_chunks.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// scanChunk scans one chunk row (embedding column may be NULL).
func scanChunk(rows *sql.Rows) (*domain.Chunk, error) {
	var chunk domain.Chunk
	var embeddingBlob []byte
	var metadataJSON string

	if err := rows.Scan(&chunk.ID, &chunk.DocumentID, &chunk.Tag, &chunk.Page,
		&chunk.ChunkIndex, &chunk.Section, &chunk.Content,
		&embeddingBlob, &metadataJSON); err != nil {
		return nil, fmt.Errorf("%w: scanning chunk: %w", domain.ErrStorage, err)
	}

	chunk.Embedding = bytesToFloat32Slice(embeddingBlob)

	if metadataJSON != "" {
		if err := json.Unmarshal([]byte(metadataJSON), &chunk.Metadata); err != nil {
			return nil, fmt.Errorf("%w: decoding chunk metadata: %w", domain.ErrStorage, err)
		}
	}

	return &chunk, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-length vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
