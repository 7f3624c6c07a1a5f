// Package index provides the similarity-searchable document index.
// The corpus is small and static, so an in-process cosine index persisted
// as a JSON blob replaces an external vector database.
package index

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
)

// Memory is an in-memory cosine-similarity index over corpus documents.
// It is built once at startup and treated as read-only afterwards.
type Memory struct {
	mu      sync.RWMutex
	docs    []domain.Document
	vectors [][]float32
}

// NewMemory creates an empty index.
func NewMemory() *Memory {
	return &Memory{}
}

// Add appends documents with their embedding vectors. docs and vectors
// must be parallel slices.
func (m *Memory) Add(docs []domain.Document, vectors [][]float32) error {
	if len(docs) != len(vectors) {
		return fmt.Errorf("index add: %d documents but %d vectors", len(docs), len(vectors))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs = append(m.docs, docs...)
	m.vectors = append(m.vectors, vectors...)
	return nil
}

// Search returns the k documents most similar to the query vector, ordered
// by descending cosine similarity. Ties break by corpus insertion order,
// which keeps retrieval deterministic.
func (m *Memory) Search(query []float32, k int) []domain.ScoredDocument {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scored := make([]domain.ScoredDocument, len(m.docs))
	for i, doc := range m.docs {
		scored[i] = domain.ScoredDocument{
			Document:   doc,
			Similarity: cosineSimilarity(query, m.vectors[i]),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// Size returns the number of indexed documents.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

// blob is the on-disk representation of the index.
type blob struct {
	Documents []domain.Document `json:"documents"`
	Vectors   [][]float32       `json:"vectors"`
}

// Save persists the index as a JSON blob at path.
func (m *Memory) Save(path string) error {
	m.mu.RLock()
	b := blob{Documents: m.docs, Vectors: m.vectors}
	m.mu.RUnlock()

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write index blob: %w", err)
	}
	return nil
}

// Load replaces the index contents with the blob at path.
func (m *Memory) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read index blob: %w", err)
	}

	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("unmarshal index: %w", err)
	}
	if len(b.Documents) != len(b.Vectors) {
		return fmt.Errorf("corrupt index blob: %d documents but %d vectors", len(b.Documents), len(b.Vectors))
	}

	m.mu.Lock()
	m.docs = b.Documents
	m.vectors = b.Vectors
	m.mu.Unlock()
	return nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-magnitude vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
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
