package handler

import (
	"net/http"

	"book-summarizer/backend/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const mimeMarkdown = "text/markdown"

type SummaryRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author"`
}

// HandleSummarize generates a summary. Clients sending Accept: text/markdown
// get a markdown document instead of JSON.
func (h *Handler) HandleSummarize(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", "Invalid request: title is required")
		return
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), req.Title, req.Author)
	if err != nil {
		h.logger.Info("summary request failed", zap.String("title", req.Title), zap.Error(err))
		respondError(c, err)
		return
	}

	if c.NegotiateFormat(gin.MIMEJSON, mimeMarkdown) == mimeMarkdown {
		c.Data(http.StatusOK, mimeMarkdown+"; charset=utf-8", []byte(view.SummaryMarkdown(summary)))
		return
	}
	c.JSON(http.StatusOK, summary)
}
