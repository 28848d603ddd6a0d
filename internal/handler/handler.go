package handler

import (
	"book-summarizer/backend/internal/agent"
	"book-summarizer/backend/internal/site"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the HTML pages, the JSON API and the health probes
type Handler struct {
	summarizer *agent.Summarizer
	site       *site.Content
	logger     *zap.Logger
}

// New creates a Handler. A nil content uses the built-in site copy.
func New(summarizer *agent.Summarizer, content *site.Content, logger *zap.Logger) *Handler {
	if content == nil {
		content = site.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		summarizer: summarizer,
		site:       content,
		logger:     logger.With(zap.String("component", "handler")),
	}
}

// RegisterPages mounts the server-rendered screens
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/", h.HandleLanding)
	r.GET("/summary/", h.HandleSearchForm)
	r.GET("/summary/:title", h.HandleSearchTitle)
	r.POST("/summary", h.HandleSummaryForm)
	r.POST("/summary/chat", h.HandleOpenChatForm)
	r.GET("/chat/:id", h.HandleChatPage)
	r.POST("/chat/:id", h.HandleChatForm)
	r.POST("/chat/:id/close", h.HandleCloseChatForm)
}

// RegisterAPI mounts the JSON API under rg
func (h *Handler) RegisterAPI(rg *gin.RouterGroup) {
	rg.POST("/summary", h.HandleSummarize)
	rg.POST("/chat", h.HandleOpenChat)
	rg.POST("/chat/:id/messages", h.HandleChat)
	rg.DELETE("/chat/:id", h.HandleCloseChat)
}

// RegisterHealth mounts the liveness and readiness probes
func (h *Handler) RegisterHealth(r gin.IRoutes) {
	r.GET("/health", h.HandleHealth)
	r.GET("/ready", h.HandleReadiness)
}
