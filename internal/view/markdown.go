package view

import (
	"fmt"
	"strings"

	"book-summarizer/backend/internal/model"
)

// Sections are the summary headings shared by the HTML card and markdown export
type Sections struct {
	Overview        string
	WhoIsItFor      string
	KeyTakeaways    string
	ActionableSteps string
	StepsIntro      string
	CoreConcepts    string
}

var SummarySections = Sections{
	Overview:        "Overview",
	WhoIsItFor:      "Who This Book Is For",
	KeyTakeaways:    "Key Takeaways",
	ActionableSteps: "Actionable Steps",
	StepsIntro:      "Start implementing today:",
	CoreConcepts:    "Core Concepts to Remember",
}

// SummaryMarkdown renders a summary as a markdown document
func SummaryMarkdown(s *model.BookSummary) string {
	var b strings.Builder
	sec := SummarySections

	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	fmt.Fprintf(&b, "*by %s*\n\n", s.Author)
	fmt.Fprintf(&b, "## %s\n\n%s\n", sec.Overview, s.Foreword)

	writeList(&b, sec.WhoIsItFor, s.WhoIsItFor, false)

	fmt.Fprintf(&b, "\n## %s\n\n", sec.KeyTakeaways)
	for i, t := range s.KeyTakeaways {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, t.Title, t.Description)
	}

	fmt.Fprintf(&b, "\n## %s\n\n%s\n\n", sec.ActionableSteps, sec.StepsIntro)
	writeItems(&b, s.ActionableSteps, true)
	writeList(&b, sec.CoreConcepts, s.CoreConcepts, false)

	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string, numbered bool) {
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	writeItems(b, items, numbered)
}

func writeItems(b *strings.Builder, items []string, numbered bool) {
	for i, item := range items {
		if numbered {
			fmt.Fprintf(b, "%d. %s\n", i+1, item)
		} else {
			fmt.Fprintf(b, "- %s\n", item)
		}
	}
}
