package handler

import (
	"errors"
	"net/http"

	"book-summarizer/backend/internal/agent"
	"book-summarizer/backend/internal/agent/deps"
	"book-summarizer/backend/internal/agent/failure"

	"github.com/gin-gonic/gin"
)

const (
	msgTitleRequired    = "Please enter a book title."
	msgQuestionRequired = "Please type a question."
	msgMessageTooLong   = "Message is too long (max 1000 characters)"
	msgChatNotFound     = "This chat has ended. Generate the summary again to start a new one."
	msgPageNotFound     = "Page not found."
)

// statusForKind maps a generation failure to the JSON API status code
func statusForKind(kind failure.Kind) int {
	switch kind {
	case failure.Config:
		return http.StatusServiceUnavailable
	case failure.Auth:
		return http.StatusBadGateway
	case failure.RateLimit:
		return http.StatusTooManyRequests
	case failure.ServiceUnavailable:
		return http.StatusServiceUnavailable
	case failure.Parse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// describeError returns the status, code and user-facing message for err
func describeError(err error) (int, string, string) {
	switch {
	case errors.Is(err, agent.ErrTitleRequired):
		return http.StatusBadRequest, "TITLE_REQUIRED", msgTitleRequired
	case errors.Is(err, agent.ErrEmptyQuestion):
		return http.StatusBadRequest, "INVALID_REQUEST", msgQuestionRequired
	case errors.Is(err, deps.ErrTranscriptNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", msgChatNotFound
	}

	kind := failure.KindOf(err)
	return statusForKind(kind), kind.Code(), kind.Message()
}

// respondError writes the {error, code} body for err
func respondError(c *gin.Context, err error) {
	status, code, message := describeError(err)
	_ = c.Error(err)
	c.JSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": message,
		"code":  code,
	})
}
