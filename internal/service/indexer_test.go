package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/corpus"
)

// batchAI implements port.AIProvider for index-build tests.
type batchAI struct {
	batchCalls int
	batchErr   error
}

func (b *batchAI) ModelName() string { return "mock" }

func (b *batchAI) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0}, nil
}

func (b *batchAI) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	b.batchCalls++
	if b.batchErr != nil {
		return nil, b.batchErr
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(i), 1}
	}
	return vectors, nil
}

func (b *batchAI) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return "", nil
}

func TestBuildOrLoadBuildsAndPersists(t *testing.T) {
	ai := &batchAI{}
	path := filepath.Join(t.TempDir(), "index.json")

	idx, err := NewIndexer(ai, path).BuildOrLoad(context.Background())

	require.NoError(t, err)
	assert.Equal(t, len(corpus.Documents()), idx.Size())
	assert.Equal(t, 1, ai.batchCalls)
	assert.FileExists(t, path)
}

func TestBuildOrLoadReusesBlob(t *testing.T) {
	ai := &batchAI{}
	path := filepath.Join(t.TempDir(), "index.json")

	_, err := NewIndexer(ai, path).BuildOrLoad(context.Background())
	require.NoError(t, err)

	idx, err := NewIndexer(ai, path).BuildOrLoad(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(corpus.Documents()), idx.Size())
	assert.Equal(t, 1, ai.batchCalls, "second start must load the blob, not re-embed")
}

func TestBuildOrLoadFailsWithoutEmbedder(t *testing.T) {
	ai := &batchAI{batchErr: errors.New("embedding endpoint unreachable")}
	path := filepath.Join(t.TempDir(), "index.json")

	_, err := NewIndexer(ai, path).BuildOrLoad(context.Background())

	assert.Error(t, err)
}
