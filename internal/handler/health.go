package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	// Generator is "ready" or "unconfigured" when GEMINI_API_KEY is missing
	Generator string `json:"generator"`
	OpenChats int    `json:"openChats"`
}

// HandleHealth is the liveness probe. A missing credential degrades the
// service but never fails liveness: pages still render.
func (h *Handler) HandleHealth(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Generator: "ready",
		OpenChats: h.summarizer.OpenChats(),
	}
	if !h.summarizer.Configured() {
		resp.Status = "degraded"
		resp.Generator = "unconfigured"
	}
	c.JSON(http.StatusOK, resp)
}

// HandleReadiness is the startup probe; it fails until summaries can be generated
func (h *Handler) HandleReadiness(c *gin.Context) {
	if h.summarizer.Configured() {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status": "not_ready",
		"reason": "api_key_not_configured",
	})
}
