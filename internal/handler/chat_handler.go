package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/service"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/session"
)

// sessionHeader carries the caller's session identity across requests so
// pronoun resolution works per conversation, not process-wide.
const sessionHeader = "X-Session-ID"

// ChatHandler handles the one-shot request/response chat surface.
type ChatHandler struct {
	assistant *service.Assistant
	sessions  *session.Manager
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(assistant *service.Assistant, sessions *session.Manager) *ChatHandler {
	return &ChatHandler{assistant: assistant, sessions: sessions}
}

// Register sets up chat routes.
func (h *ChatHandler) Register(router fiber.Router) {
	router.Post("/chat", h.Chat)
}

// Chat answers one question and returns the formatted text. Callers that
// omit the session header get a fresh session; the assigned ID is echoed
// back so follow-up questions ("who inspected it?") can reuse it.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	sessionID := c.Get(sessionHeader)
	if sessionID == "" {
		sessionID = h.sessions.NewID()
	}
	sess := h.sessions.Get(sessionID)

	answer, err := h.assistant.Answer(c.Context(), sess, body.Query)
	if err != nil {
		slog.Error("chat pipeline failed", "session_id", sessionID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to answer question"})
	}

	c.Set(sessionHeader, sessionID)
	return c.SendString(answer)
}
