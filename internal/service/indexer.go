package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/adapter/index"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/corpus"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/port"
)

// Indexer builds or loads the corpus vector index.
type Indexer struct {
	ai   port.AIProvider
	path string
}

// NewIndexer creates an indexer that persists the index blob at path.
func NewIndexer(ai port.AIProvider, path string) *Indexer {
	return &Indexer{ai: ai, path: path}
}

// BuildOrLoad returns the corpus index, loading the persisted blob when one
// exists and otherwise embedding the full corpus, building the index, and
// saving it. Write-once semantics: a corpus change requires deleting the
// blob out-of-band so the next start rebuilds it.
//
// Failure here is fatal to the process: without an index no question can be
// answered.
func (ix *Indexer) BuildOrLoad(ctx context.Context) (*index.Memory, error) {
	idx := index.NewMemory()

	if _, err := os.Stat(ix.path); err == nil {
		if err := idx.Load(ix.path); err != nil {
			return nil, fmt.Errorf("load index: %w", err)
		}
		slog.Info("loaded corpus index", "path", ix.path, "documents", idx.Size())
		return idx, nil
	}

	docs := corpus.Documents()
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}

	slog.Info("building corpus index", "documents", len(docs))
	vectors, err := ix.ai.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed corpus: %w", err)
	}
	if len(vectors) != len(docs) {
		return nil, fmt.Errorf("embed corpus: got %d vectors for %d documents", len(vectors), len(docs))
	}

	if err := idx.Add(docs, vectors); err != nil {
		return nil, err
	}
	if err := idx.Save(ix.path); err != nil {
		return nil, fmt.Errorf("persist index: %w", err)
	}

	slog.Info("corpus index built", "path", ix.path, "documents", idx.Size())
	return idx, nil
}
