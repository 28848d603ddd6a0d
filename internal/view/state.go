package view

import (
	"encoding/json"

	"book-summarizer/backend/internal/model"
	"book-summarizer/backend/internal/site"
)

// Page is the chrome shared by every screen
type Page struct {
	Site      *site.Content
	PageTitle string
}

// LandingPage is the state of GET /
type LandingPage struct {
	Page
}

// SearchPage is the state of the search form and the summary below it
type SearchPage struct {
	Page
	BookTitle string
	Author    string
	Error     string
	Summary   *model.BookSummary
	// SummaryJSON is posted back to open the chat overlay
	SummaryJSON string
}

// ChatPage is the summary with the chat overlay open on top of it
type ChatPage struct {
	Page
	SessionID string
	Summary   model.BookSummary
	Messages  []model.ChatMessage
	Error     string
}

// ErrorPage is rendered for unknown routes and expired chats
type ErrorPage struct {
	Page
	Status  int
	Message string
}

// NewSearchPage builds the state for a search form, with summary when one was generated
func NewSearchPage(content *site.Content, title, author string, summary *model.BookSummary) SearchPage {
	p := SearchPage{
		Page:      Page{Site: content, PageTitle: "Get Book Summary"},
		BookTitle: title,
		Author:    author,
		Summary:   summary,
	}
	if summary != nil {
		p.PageTitle = summary.Title
		if data, err := json.Marshal(summary); err == nil {
			p.SummaryJSON = string(data)
		}
	}
	return p
}

// NewChatPage builds the overlay state from a transcript
func NewChatPage(content *site.Content, t model.ChatTranscript) ChatPage {
	return ChatPage{
		Page:      Page{Site: content, PageTitle: t.Summary.Title},
		SessionID: t.ID,
		Summary:   t.Summary,
		Messages:  t.Messages,
	}
}
