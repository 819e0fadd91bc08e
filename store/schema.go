package store

import "fmt"

// schemaSQL returns the DDL for the in-memory index. embeddingDim
// controls the vec0 virtual table dimension.
func schemaSQL(embeddingDim int) string {
	return fmt.Sprintf(`
-- Vector index via sqlite-vec. Cosine distance so similarity = 1 - distance.
CREATE VIRTUAL TABLE IF NOT EXISTS vec_items USING vec0(
    item_id INTEGER PRIMARY KEY,
    embedding float[%d] distance_metric=cosine
);

-- Per-run embedding memoization keyed by content hash.
CREATE TABLE IF NOT EXISTS embedding_cache (
    content_hash TEXT PRIMARY KEY,
    embedding BLOB NOT NULL
);
`, embeddingDim)
}
