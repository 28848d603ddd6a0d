package prompt

import (
	"fmt"
	"strings"

	"book-summarizer/backend/internal/model"
)

// BuildBookContext renders a summary as the knowledge block embedded in chat prompts
func BuildBookContext(summary model.BookSummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\nBook Title: %s\n", summary.Title))
	sb.WriteString(fmt.Sprintf("Author: %s\n\n", summary.Author))
	sb.WriteString(fmt.Sprintf("Book Summary: %s\n\n", summary.Foreword))

	sb.WriteString("Key Takeaways:\n")
	for i, t := range summary.KeyTakeaways {
		sb.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, t.Title, t.Description))
	}

	sb.WriteString("\nCore Concepts:\n")
	writeNumbered(&sb, summary.CoreConcepts)

	sb.WriteString("\nActionable Steps:\n")
	writeNumbered(&sb, summary.ActionableSteps)

	return sb.String()
}

func writeNumbered(sb *strings.Builder, items []string) {
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}
}
