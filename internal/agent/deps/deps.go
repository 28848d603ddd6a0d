package deps

import (
	"context"
	"errors"

	"book-summarizer/backend/internal/model"
)

// ErrTranscriptNotFound is returned for unknown, closed, or expired chat transcripts
var ErrTranscriptNotFound = errors.New("chat transcript not found")

// LLMClient abstracts one request/response exchange with the generation API
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string, temperature float32, maxOutputTokens int32) (string, error)
}

// TranscriptRepository holds the transcripts of open chat overlays
type TranscriptRepository interface {
	Open(summary model.BookSummary, greeting string) model.ChatTranscript
	Get(id string) (model.ChatTranscript, bool)
	Append(id string, messages ...model.ChatMessage) (model.ChatTranscript, error)
	Close(id string) (model.ChatTranscript, bool)
	Count() int
}
