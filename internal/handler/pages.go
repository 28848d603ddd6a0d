package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"book-summarizer/backend/internal/agent"
	"book-summarizer/backend/internal/agent/response"
	"book-summarizer/backend/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) page(title string) view.Page {
	return view.Page{Site: h.site, PageTitle: title}
}

func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", view.ErrorPage{
		Page:    h.page(http.StatusText(status)),
		Status:  status,
		Message: message,
	})
}

// HandleLanding renders the marketing page with the hero search box
func (h *Handler) HandleLanding(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", view.LandingPage{Page: h.page("")})
}

// HandleSearchForm renders the empty search form. The hero box submits
// here with ?title=, which redirects to the pre-filled form.
func (h *Handler) HandleSearchForm(c *gin.Context) {
	if title := strings.TrimSpace(c.Query("title")); title != "" {
		c.Redirect(http.StatusFound, "/summary/"+url.PathEscape(title))
		return
	}
	c.HTML(http.StatusOK, "search.html", view.NewSearchPage(h.site, "", "", nil))
}

// HandleSearchTitle renders the search form pre-filled from the path
func (h *Handler) HandleSearchTitle(c *gin.Context) {
	c.HTML(http.StatusOK, "search.html", view.NewSearchPage(h.site, c.Param("title"), "", nil))
}

// HandleSummaryForm generates a summary from the search form
func (h *Handler) HandleSummaryForm(c *gin.Context) {
	title := c.PostForm("title")
	author := c.PostForm("author")

	summary, err := h.summarizer.Summarize(c.Request.Context(), title, author)
	if err != nil {
		status, _, message := describeError(err)
		if !errors.Is(err, agent.ErrTitleRequired) {
			_ = c.Error(err)
		}
		page := view.NewSearchPage(h.site, title, author, nil)
		page.Error = message
		c.HTML(status, "search.html", page)
		return
	}

	c.HTML(http.StatusOK, "search.html", view.NewSearchPage(h.site, title, author, summary))
}

// HandleOpenChatForm opens the chat overlay for the summary posted back by the page
func (h *Handler) HandleOpenChatForm(c *gin.Context) {
	summary, err := response.DecodeSummary([]byte(c.PostForm("summary")))
	if err != nil {
		h.logger.Info("rejected posted summary", zap.Error(err))
		h.renderError(c, http.StatusBadRequest, "That summary could not be read. Please generate it again.")
		return
	}

	t := h.summarizer.OpenChat(*summary)
	c.Redirect(http.StatusSeeOther, "/chat/"+url.PathEscape(t.ID))
}

// HandleChatPage renders the summary with the chat overlay open
func (h *Handler) HandleChatPage(c *gin.Context) {
	t, ok := h.summarizer.Transcript(c.Param("id"))
	if !ok {
		h.renderError(c, http.StatusNotFound, msgChatNotFound)
		return
	}
	c.HTML(http.StatusOK, "chat.html", view.NewChatPage(h.site, t))
}

// HandleChatForm sends one question and redirects back to the overlay
func (h *Handler) HandleChatForm(c *gin.Context) {
	id := c.Param("id")
	message := c.PostForm("message")

	if utf8.RuneCountInString(message) > MaxMessageLength {
		h.renderChatFormError(c, id, msgMessageTooLong)
		return
	}

	_, err := h.summarizer.Ask(c.Request.Context(), id, message)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/chat/"+url.PathEscape(id))
	case errors.Is(err, agent.ErrEmptyQuestion):
		h.renderChatFormError(c, id, msgQuestionRequired)
	default:
		status, _, message := describeError(err)
		h.renderError(c, status, message)
	}
}

// renderChatFormError re-renders the open overlay with an inline error
func (h *Handler) renderChatFormError(c *gin.Context, id, message string) {
	t, ok := h.summarizer.Transcript(id)
	if !ok {
		h.renderError(c, http.StatusNotFound, msgChatNotFound)
		return
	}
	page := view.NewChatPage(h.site, t)
	page.Error = message
	c.HTML(http.StatusBadRequest, "chat.html", page)
}

// HandleCloseChatForm closes the overlay and shows the summary again
func (h *Handler) HandleCloseChatForm(c *gin.Context) {
	t, ok := h.summarizer.CloseChat(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusSeeOther, "/summary/")
		return
	}

	summary := t.Summary
	c.HTML(http.StatusOK, "search.html", view.NewSearchPage(h.site, summary.Title, summary.Author, &summary))
}

// HandleNoRoute answers unknown API paths with JSON and everything else with the error page
func (h *Handler) HandleNoRoute(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "code": "NOT_FOUND"})
		return
	}
	h.renderError(c, http.StatusNotFound, msgPageNotFound)
}
