package domain

import "sync"

// ConversationContext carries the cross-turn state of one chat session.
// The only slot today is the most recently mentioned batch code, used to
// resolve pronoun references like "it" or "that batch".
//
// One instance exists per session; it must never be shared across sessions.
type ConversationContext struct {
	mu            sync.Mutex
	lastBatchCode string
}

// LastBatchCode returns the most recently mentioned batch code, or "" if none.
func (c *ConversationContext) LastBatchCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastBatchCode
}

// SetLastBatchCode overwrites the remembered batch code.
func (c *ConversationContext) SetLastBatchCode(code string) {
	c.mu.Lock()
	c.lastBatchCode = code
	c.mu.Unlock()
}
