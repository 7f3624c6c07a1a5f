package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
)

func TestResolveStoresBatchCode(t *testing.T) {
	sess := &domain.ConversationContext{}

	got := Resolve("Where is batch VDT-052025-A?", sess)

	assert.Equal(t, "Where is batch VDT-052025-A?", got)
	assert.Equal(t, "VDT-052025-A", sess.LastBatchCode())
}

func TestResolveRewritesPronoun(t *testing.T) {
	sess := &domain.ConversationContext{}
	Resolve("Where is batch VDT-052025-A?", sess)

	got := Resolve("Who inspected it?", sess)

	assert.Equal(t, "Who inspected it? for batch VDT-052025-A", got)
}

func TestResolveThatBatchPhrase(t *testing.T) {
	sess := &domain.ConversationContext{}
	sess.SetLastBatchCode("CSY-052025-C")

	got := Resolve("Who packed that batch?", sess)

	assert.Equal(t, "Who packed that batch? for batch CSY-052025-C", got)
}

func TestResolvePronounWithoutContext(t *testing.T) {
	sess := &domain.ConversationContext{}

	got := Resolve("Who inspected it?", sess)

	assert.Equal(t, "Who inspected it?", got)
}

func TestResolveNewCodeOverwritesOld(t *testing.T) {
	sess := &domain.ConversationContext{}
	Resolve("Where is batch VDT-052025-A?", sess)
	Resolve("Where is batch PRG-052025-B?", sess)

	assert.Equal(t, "PRG-052025-B", sess.LastBatchCode())
}

func TestResolveExplicitCodeWinsOverPronoun(t *testing.T) {
	sess := &domain.ConversationContext{}
	sess.SetLastBatchCode("VDT-052025-A")

	// "it" appears but an explicit code is present; question stays unchanged
	// and the new code replaces the remembered one.
	got := Resolve("Is it true that CSY-052025-C was stored?", sess)

	assert.Equal(t, "Is it true that CSY-052025-C was stored?", got)
	assert.Equal(t, "CSY-052025-C", sess.LastBatchCode())
}

func TestResolveIgnoresMalformedCodes(t *testing.T) {
	sess := &domain.ConversationContext{}

	Resolve("Where is batch VD-052025-A?", sess)

	assert.Empty(t, sess.LastBatchCode())
}

func TestResolvePronounCaseInsensitive(t *testing.T) {
	sess := &domain.ConversationContext{}
	sess.SetLastBatchCode("VDT-052025-A")

	got := Resolve("Who inspected IT?", sess)

	assert.Equal(t, "Who inspected IT? for batch VDT-052025-A", got)
}
