package prompt

import (
	"fmt"

	"book-summarizer/backend/internal/model"
)

// Builder constructs prompts for the summarizer
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildSummaryPrompt creates the instruction asking the model for a JSON book summary.
// Title and author are interpolated verbatim; an empty author switches to the
// template that asks the model to identify the author itself.
func (b *Builder) BuildSummaryPrompt(title, author string) string {
	if author == "" {
		return fmt.Sprintf(SummaryPromptTemplateNoAuthor, title, AuthorPlaceholder)
	}
	return fmt.Sprintf(SummaryPromptTemplate, title, author)
}

// BuildChatPrompt creates the prompt for one follow-up question about a summary
func (b *Builder) BuildChatPrompt(summary model.BookSummary, question string) string {
	return fmt.Sprintf(ChatPromptTemplate, summary.Title, summary.Author, BuildBookContext(summary), question)
}

// BuildCorrectionPrompt creates a stricter prompt used when a chat reply fails validation
func (b *Builder) BuildCorrectionPrompt(summary model.BookSummary, question string) string {
	return fmt.Sprintf(ChatCorrectionPromptTemplate, summary.Title, summary.Author, BuildBookContext(summary), question)
}

// BuildChatGreeting creates the assistant message that opens every transcript
func (b *Builder) BuildChatGreeting(summary model.BookSummary) string {
	return fmt.Sprintf(ChatGreetingTemplate, summary.Title, summary.Author)
}
