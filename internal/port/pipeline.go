package port

import (
	"context"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
)

// DocumentIndex is a similarity-searchable index over the fixed corpus.
// It is built once at startup and read-only afterwards.
type DocumentIndex interface {
	// Search returns the k documents most similar to the query vector,
	// ordered by descending similarity. Ties break by insertion order.
	Search(query []float32, k int) []domain.ScoredDocument

	// Size returns the number of indexed documents.
	Size() int
}

// ResponseCache memoizes formatted answers keyed by a content hash of the
// resolved question text.
type ResponseCache interface {
	// Get returns the cached answer for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Put stores an answer under key.
	Put(ctx context.Context, key, value string) error
}

// QueryExecutor runs a SQL statement against the relational store and
// returns rows with column order preserved.
type QueryExecutor interface {
	Query(ctx context.Context, sqlText string) ([]domain.Row, error)
}

// SQLExtractor parses a raw LLM completion into a single executable SQL
// statement. Implementations return ErrNoSQL when nothing usable is found,
// so a stricter grammar-aware extractor can be swapped in without touching
// callers.
type SQLExtractor interface {
	Extract(raw string) (string, error)
}
