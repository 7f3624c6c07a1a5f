package index

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
)

func doc(text string) domain.Document {
	return domain.Document{Text: text, Kind: domain.KindExample}
}

func TestSearchRanksBySimilarity(t *testing.T) {
	m := NewMemory()
	err := m.Add(
		[]domain.Document{doc("orthogonal"), doc("exact"), doc("close")},
		[][]float32{{0, 1}, {1, 0}, {0.9, 0.1}},
	)
	require.NoError(t, err)

	hits := m.Search([]float32{1, 0}, 2)

	require.Len(t, hits, 2)
	assert.Equal(t, "exact", hits[0].Text)
	assert.Equal(t, "close", hits[1].Text)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-6)
}

func TestSearchTiesBreakByInsertionOrder(t *testing.T) {
	m := NewMemory()
	err := m.Add(
		[]domain.Document{doc("first"), doc("second"), doc("third")},
		[][]float32{{1, 0}, {1, 0}, {1, 0}},
	)
	require.NoError(t, err)

	hits := m.Search([]float32{1, 0}, 3)

	assert.Equal(t, []string{"first", "second", "third"},
		[]string{hits[0].Text, hits[1].Text, hits[2].Text})
}

func TestSearchKLargerThanCorpus(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Add([]domain.Document{doc("only")}, [][]float32{{1}}))

	hits := m.Search([]float32{1}, 10)

	assert.Len(t, hits, 1)
}

func TestTopExemplarWinsForVerbatimQuestion(t *testing.T) {
	// The exemplar whose vector matches the question exactly must be the
	// top hit when present in the corpus.
	m := NewMemory()
	err := m.Add(
		[]domain.Document{
			doc("Who delivered VDT-052025-A? => SELECT employees.name ..."),
			doc("Table: employees - Stores employee records"),
			doc("Which batches did John work on? => SELECT DISTINCT ..."),
		},
		[][]float32{{0.8, 0.6, 0}, {0.1, 0.9, 0.4}, {0, 0.3, 0.95}},
	)
	require.NoError(t, err)

	hits := m.Search([]float32{0.8, 0.6, 0}, 1)

	require.Len(t, hits, 1)
	assert.Equal(t, "Who delivered VDT-052025-A? => SELECT employees.name ...", hits[0].Text)
}

func TestAddRejectsMismatchedLengths(t *testing.T) {
	m := NewMemory()

	err := m.Add([]domain.Document{doc("a")}, [][]float32{{1}, {2}})

	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Add(
		[]domain.Document{doc("a"), {Text: "Table: batches", Kind: domain.KindSchemaFact}},
		[][]float32{{1, 0}, {0, 1}},
	))

	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, m.Save(path))

	loaded := NewMemory()
	require.NoError(t, loaded.Load(path))

	assert.Equal(t, 2, loaded.Size())
	hits := loaded.Search([]float32{0, 1}, 1)
	require.Len(t, hits, 1)
	assert.Equal(t, "Table: batches", hits[0].Text)
	assert.Equal(t, domain.KindSchemaFact, hits[0].Kind)
}

func TestLoadMissingFile(t *testing.T) {
	m := NewMemory()

	err := m.Load(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestCosineSimilarityEdgeCases(t *testing.T) {
	assert.Zero(t, cosineSimilarity([]float32{1, 0}, []float32{1}))
	assert.Zero(t, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
	assert.Zero(t, cosineSimilarity(nil, nil))
}
