package handler

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"book-summarizer/backend/internal/agent/response"
	"book-summarizer/backend/internal/model"

	"github.com/gin-gonic/gin"
)

// MaxMessageLength is the maximum allowed chat message length in characters
const MaxMessageLength = 1000

type OpenChatRequest struct {
	Summary json.RawMessage `json:"summary" binding:"required"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponseDTO struct {
	SessionID string              `json:"sessionId"`
	Messages  []model.ChatMessage `json:"messages"`
}

func toChatResponse(t model.ChatTranscript) ChatResponseDTO {
	return ChatResponseDTO{SessionID: t.ID, Messages: t.Messages}
}

// HandleOpenChat starts a chat about a summary the client already holds.
// The summary goes through the same schema check as model output.
func (h *Handler) HandleOpenChat(c *gin.Context) {
	var req OpenChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", "Invalid request: summary is required")
		return
	}

	summary, err := response.DecodeSummary(req.Summary)
	if err != nil {
		badRequest(c, "INVALID_SUMMARY", "Invalid request: summary is malformed or incomplete")
		return
	}

	t := h.summarizer.OpenChat(*summary)
	c.JSON(http.StatusCreated, toChatResponse(t))
}

// HandleChat sends one question. Generation failures come back as the
// apology message in the transcript, not as an error status.
func (h *Handler) HandleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", "Invalid request: message is required")
		return
	}
	if utf8.RuneCountInString(req.Message) > MaxMessageLength {
		badRequest(c, "MESSAGE_TOO_LONG", msgMessageTooLong)
		return
	}

	t, err := h.summarizer.Ask(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toChatResponse(t))
}

// HandleCloseChat destroys a transcript
func (h *Handler) HandleCloseChat(c *gin.Context) {
	if _, ok := h.summarizer.CloseChat(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": msgChatNotFound,
			"code":  "SESSION_NOT_FOUND",
		})
		return
	}
	c.Status(http.StatusNoContent)
}
