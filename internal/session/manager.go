// Package session tracks per-session conversation state. Each chat session
// (HTTP caller or websocket connection) gets its own ConversationContext, so
// concurrent conversations cannot clobber each other's last-referenced batch.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
)

// Manager hands out conversation contexts keyed by session ID.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*domain.ConversationContext
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*domain.ConversationContext)}
}

// Get returns the context for the given session ID, creating it on first use.
func (m *Manager) Get(id string) *domain.ConversationContext {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctx, ok := m.sessions[id]
	if !ok {
		ctx = &domain.ConversationContext{}
		m.sessions[id] = ctx
	}
	return ctx
}

// NewID generates a fresh session identifier.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
