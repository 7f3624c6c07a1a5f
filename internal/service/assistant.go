package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/adapter/cache"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/port"
)

const (
	msgGreeting         = "👋 Hi! I'm your Batch Control Assistant. How can I help you today?"
	msgCannotUnderstand = "🤖 Sorry, I couldn't understand your question. Try asking about batches, employees, or products."
)

// greetings short-circuit the pipeline; no retrieval or generation happens.
var greetings = map[string]bool{
	"hello":       true,
	"hi":          true,
	"hey":         true,
	"how are you": true,
	"thank you":   true,
}

// Assistant runs the question-answering pipeline: resolve conversational
// references, check the response cache, retrieve corpus context, compose the
// prompt, invoke the model, extract SQL, execute it, and format the rows.
//
// Happy path and degraded paths share the same return type: a user-facing
// string. Only retrieval-level and programmer errors surface as real errors.
type Assistant struct {
	ai        port.AIProvider
	index     port.DocumentIndex
	cache     port.ResponseCache
	executor  port.QueryExecutor
	extractor port.SQLExtractor

	topK         int
	llmTimeout   time.Duration
	queryTimeout time.Duration
}

// Options tune the pipeline.
type Options struct {
	TopK         int           // retrieved documents per question
	LLMTimeout   time.Duration // budget for one completion call
	QueryTimeout time.Duration // budget for one SQL execution
}

// NewAssistant wires the pipeline from its collaborators.
func NewAssistant(ai port.AIProvider, idx port.DocumentIndex, respCache port.ResponseCache,
	executor port.QueryExecutor, extractor port.SQLExtractor, opts Options) *Assistant {

	if opts.TopK <= 0 {
		opts.TopK = 4
	}
	if opts.LLMTimeout <= 0 {
		opts.LLMTimeout = 2 * time.Minute
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 30 * time.Second
	}

	return &Assistant{
		ai:           ai,
		index:        idx,
		cache:        respCache,
		executor:     executor,
		extractor:    extractor,
		topK:         opts.TopK,
		llmTimeout:   opts.LLMTimeout,
		queryTimeout: opts.QueryTimeout,
	}
}

// Answer processes one question within the given session context and returns
// the formatted response text. The error return is reserved for failures the
// transport should report as internal (embedding/index unavailable); every
// model- or SQL-level failure degrades to a user-facing string instead.
func (a *Assistant) Answer(ctx context.Context, sess *domain.ConversationContext, question string) (string, error) {
	question = strings.TrimSpace(question)

	if greetings[strings.ToLower(question)] {
		return msgGreeting, nil
	}

	// 1. Resolve pronoun references against session state.
	resolved := Resolve(question, sess)

	// 2. Response cache: key is a content hash of the resolved text only,
	// so identical input always hits after the first answer.
	key := cache.Key(resolved)
	if cached, err := a.cache.Get(ctx, key); err == nil {
		slog.Info("cache hit", "key", key)
		return cached, nil
	} else if !errors.Is(err, port.ErrCacheMiss) {
		// A degraded cache costs latency, not answers.
		slog.Warn("cache get failed", "error", err)
	}

	// 3. Retrieve blended context: worked examples plus schema facts.
	vector, err := a.ai.Embed(ctx, resolved)
	if err != nil {
		return "", fmt.Errorf("embed question: %w", err)
	}
	hits := a.index.Search(vector, a.topK)
	contextDocs := make([]string, len(hits))
	for i, hit := range hits {
		contextDocs[i] = strings.TrimSpace(hit.Text)
	}

	// 4. Compose and complete.
	prompt := composePrompt(contextDocs, resolved)

	chatCtx, cancel := context.WithTimeout(ctx, a.llmTimeout)
	defer cancel()

	raw, err := a.ai.Chat(chatCtx, sqlSystemPrompt, prompt)
	if err != nil {
		slog.Error("completion failed", "error", err)
		return msgCannotUnderstand, nil
	}

	// 5. Extract a single statement or give up on this question.
	sqlText, err := a.extractor.Extract(raw)
	if err != nil {
		slog.Info("no SQL extracted", "question", resolved)
		return msgCannotUnderstand, nil
	}

	// 6. Execute. Failures surface inline with the attempted SQL; useful
	// for operators, leaky for end users. Tradeoff kept from the original
	// behaviour until a debug flag hides it.
	queryCtx, cancel := context.WithTimeout(ctx, a.queryTimeout)
	defer cancel()

	rows, err := a.executor.Query(queryCtx, sqlText)
	if err != nil {
		return fmt.Sprintf("❌ SQL execution failed:\n%s\n\nError: %s", sqlText, err), nil
	}

	// 7. Format and memoize.
	answer := formatRows(rows)
	if err := a.cache.Put(ctx, key, answer); err != nil {
		slog.Warn("cache put failed", "error", err)
	}

	return answer, nil
}
