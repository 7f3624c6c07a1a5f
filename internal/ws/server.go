// Package ws serves the long-lived chat surface: one websocket connection
// per conversation, one question per text message. It runs next to the HTTP
// API on its own port.
package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/service"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/session"
)

const msgTyping = "typing..."
const msgTurnFailed = "⚠️ Something went wrong answering that. Please try again."

// Server accepts websocket chat connections.
type Server struct {
	assistant *service.Assistant
	sessions  *session.Manager
	port      string
}

// NewServer creates a websocket chat server listening on the given port.
func NewServer(assistant *service.Assistant, sessions *session.Manager, port string) *Server {
	return &Server{assistant: assistant, sessions: sessions, port: port}
}

// Start begins serving websocket connections. Blocks until the listener fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/chat", s.handleChat)

	slog.Info("websocket chat server starting", "port", s.port)
	return http.ListenAndServe(":"+s.port, mux)
}

// Handler returns the chat handler for mounting on an external mux (tests).
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.handleChat)
}

// handleChat runs the per-connection loop: read a question, emit a
// provisional typing notice, answer, repeat until the client disconnects.
// Questions within one connection are processed strictly in arrival order;
// a failed turn sends an inline error string and keeps the session alive.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("websocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "server shutting down")

	ctx := r.Context()
	sessionID := s.sessions.NewID()
	sess := s.sessions.Get(sessionID)
	slog.Info("websocket session opened", "session_id", sessionID)

	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			slog.Info("websocket session closed", "session_id", sessionID)
			return
		}
		if msgType != websocket.MessageText {
			continue
		}

		if err := s.send(ctx, conn, msgTyping); err != nil {
			return
		}

		answer, err := s.assistant.Answer(ctx, sess, string(data))
		if err != nil {
			slog.Error("websocket turn failed", "session_id", sessionID, "error", err)
			answer = msgTurnFailed
		}

		if err := s.send(ctx, conn, answer); err != nil {
			return
		}
	}
}

func (s *Server) send(ctx context.Context, conn *websocket.Conn, text string) error {
	return conn.Write(ctx, websocket.MessageText, []byte(text))
}
