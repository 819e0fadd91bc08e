// Package store holds the in-memory vector index backing similarity
// scoring. It runs sqlite-vec over an in-memory SQLite database, so
// nothing survives the process; the same database also memoizes
// embeddings by content hash within a run.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	sqlite_vec "github.com/asg017/sqlite-vec-go-bindings/cgo"
	_ "github.com/mattn/go-sqlite3"
)

func init() {
	sqlite_vec.Auto()
}

// Index is an in-memory cosine similarity index over float32 vectors.
type Index struct {
	db           *sql.DB
	embeddingDim int
}

// New creates an in-memory index for vectors of the given dimension.
func New(embeddingDim int) (*Index, error) {
	if embeddingDim <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension %d", embeddingDim)
	}

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every connection to :memory: is a distinct database, so the pool
	// must be pinned to a single connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL(embeddingDim)); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Index{db: db, embeddingDim: embeddingDim}, nil
}

// Close closes the underlying database, discarding the index.
func (x *Index) Close() error {
	return x.db.Close()
}

// EmbeddingDim returns the configured embedding dimension.
func (x *Index) EmbeddingDim() int {
	return x.embeddingDim
}

// Add inserts or replaces the vector for an item.
func (x *Index) Add(ctx context.Context, itemID int64, embedding []float32) error {
	if len(embedding) != x.embeddingDim {
		return fmt.Errorf("embedding dimension %d, index expects %d", len(embedding), x.embeddingDim)
	}
	_, err := x.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO vec_items (item_id, embedding) VALUES (?, ?)",
		itemID, serializeFloat32(embedding))
	return err
}

// Count returns the number of indexed items.
func (x *Index) Count(ctx context.Context) (int, error) {
	var n int
	err := x.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vec_items").Scan(&n)
	return n, err
}

// Reset drops all indexed vectors but keeps the embedding cache.
func (x *Index) Reset(ctx context.Context) error {
	_, err := x.db.ExecContext(ctx, "DELETE FROM vec_items")
	return err
}

// Similarities runs a KNN scan over every indexed item and returns the
// cosine similarity of each to the query vector, keyed by item ID.
func (x *Index) Similarities(ctx context.Context, query []float32) (map[int64]float64, error) {
	if len(query) != x.embeddingDim {
		return nil, fmt.Errorf("query dimension %d, index expects %d", len(query), x.embeddingDim)
	}

	n, err := x.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return map[int64]float64{}, nil
	}

	rows, err := x.db.QueryContext(ctx, `
		SELECT item_id, distance
		FROM vec_items
		WHERE embedding MATCH ? AND k = ?
		ORDER BY distance
	`, serializeFloat32(query), n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sims := make(map[int64]float64, n)
	for rows.Next() {
		var id int64
		var distance float64
		if err := rows.Scan(&id, &distance); err != nil {
			return nil, err
		}
		// Cosine distance to similarity.
		sims[id] = 1.0 - distance
	}
	return sims, rows.Err()
}

// --- Embedding cache ---

// CacheKey returns the cache key for a text: its SHA-256 hex digest.
func CacheKey(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// CacheGet looks up a memoized embedding by text. The second return is
// false on a cache miss.
func (x *Index) CacheGet(ctx context.Context, text string) ([]float32, bool, error) {
	var blob []byte
	err := x.db.QueryRowContext(ctx,
		"SELECT embedding FROM embedding_cache WHERE content_hash = ?",
		CacheKey(text)).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return deserializeFloat32(blob), true, nil
}

// CachePut memoizes an embedding for a text.
func (x *Index) CachePut(ctx context.Context, text string, embedding []float32) error {
	_, err := x.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO embedding_cache (content_hash, embedding) VALUES (?, ?)",
		CacheKey(text), serializeFloat32(embedding))
	return err
}

// serializeFloat32 converts a float32 slice to little-endian bytes for sqlite-vec.
func serializeFloat32(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// deserializeFloat32 is the inverse of serializeFloat32.
func deserializeFloat32(buf []byte) []float32 {
	v := make([]float32, len(buf)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return v
}
