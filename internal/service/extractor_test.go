package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/port"
)

func TestExtractFencedBlock(t *testing.T) {
	e := NewHeuristicExtractor()

	got, err := e.Extract("Here is the query:\n```sql\nSELECT 1;\n```\nHope that helps!")

	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;", got)
}

func TestExtractFirstFencedBlockWins(t *testing.T) {
	e := NewHeuristicExtractor()

	raw := "```sql\nSELECT a FROM t;\n```\nor alternatively\n```sql\nSELECT b FROM t;\n```"
	got, err := e.Extract(raw)

	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t;", got)
}

func TestExtractKeywordFallback(t *testing.T) {
	e := NewHeuristicExtractor()

	raw := "Sure! The query you want is:\nSELECT status\nFROM batch_tracking\nWHERE batch_id = 1;\nLet me know if you need more."
	got, err := e.Extract(raw)

	require.NoError(t, err)
	assert.Equal(t, "SELECT status FROM batch_tracking WHERE batch_id = 1;", got)
}

func TestExtractStopsAtSemicolon(t *testing.T) {
	e := NewHeuristicExtractor()

	raw := "SELECT a FROM t;\nSELECT b FROM t;"
	got, err := e.Extract(raw)

	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t;", got)
}

func TestExtractNoSQL(t *testing.T) {
	e := NewHeuristicExtractor()

	_, err := e.Extract("I am not sure what you mean. Could you rephrase?")

	assert.ErrorIs(t, err, port.ErrNoSQL)
}

func TestExtractAbsorbsProseKeywordLines(t *testing.T) {
	e := NewHeuristicExtractor()

	// A prose line mentioning LIMIT is kept by the fallback scan. Known
	// false positive of the heuristic, asserted here as current behaviour.
	raw := "There is no LIMIT to what you can ask\nSELECT 1;"
	got, err := e.Extract(raw)

	require.NoError(t, err)
	assert.Equal(t, "There is no LIMIT to what you can ask SELECT 1;", got)
}

func TestExtractCaseInsensitiveKeywords(t *testing.T) {
	e := NewHeuristicExtractor()

	got, err := e.Extract("select name from employees;")

	require.NoError(t, err)
	assert.Equal(t, "select name from employees;", got)
}
