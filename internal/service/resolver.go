package service

import (
	"regexp"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
)

// Batch codes look like VDT-052025-A: product code, month-year, suffix.
var batchCodeRe = regexp.MustCompile(`\b([A-Z]{3}-\d{6}-[A-Z])\b`)

// Pronoun triggers that refer back to the last mentioned batch.
var pronounRe = regexp.MustCompile(`(?i)\bit\b|\bthat batch\b`)

// Resolve rewrites a pronoun-bearing question using the session's last
// mentioned batch code, and records any batch code the question contains.
//
// This is a one-slot coreference heuristic, not general anaphora resolution:
// only the single most recent batch mention is remembered, and only the
// literal triggers "it" and "that batch" are rewritten.
func Resolve(question string, ctx *domain.ConversationContext) string {
	if match := batchCodeRe.FindString(question); match != "" {
		ctx.SetLastBatchCode(match)
		return question
	}

	if pronounRe.MatchString(question) {
		if code := ctx.LastBatchCode(); code != "" {
			return question + " for batch " + code
		}
	}

	return question
}
