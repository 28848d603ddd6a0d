package response

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"book-summarizer/backend/internal/agent/failure"
	"book-summarizer/backend/internal/agent/sanitize"
	"book-summarizer/backend/internal/model"
)

// Parse failure details
const (
	DetailNoJSONObject     = "no JSON object found"
	DetailMalformedSummary = "malformed or incomplete summary"
)

var (
	openingFenceRegex = regexp.MustCompile("^```[\\w+-]*[ \\t]*\\r?\\n?")
	closingFenceRegex = regexp.MustCompile("\\r?\\n?```\\s*$")
)

// ParseSummary recovers a BookSummary from raw model output.
// Leading code fences and prose around the outermost {...} span are tolerated;
// anything that does not satisfy the summary schema fails with a Parse failure.
func ParseSummary(text string) (*model.BookSummary, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}
	return DecodeSummary([]byte(raw))
}

// ExtractJSONObject returns the span from the first '{' to the last '}' after
// trimming and removing a leading code fence
func ExtractJSONObject(text string) (string, error) {
	cleaned := stripCodeFence(strings.TrimSpace(text))

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", failure.New(failure.Parse, DetailNoJSONObject)
	}
	return cleaned[start : end+1], nil
}

// DecodeSummary validates raw JSON against the summary schema and decodes it
func DecodeSummary(raw []byte) (*model.BookSummary, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, failure.Wrap(failure.Parse, DetailMalformedSummary, err)
	}
	if err := summarySchema.Validate(doc); err != nil {
		return nil, failure.Wrap(failure.Parse, DetailMalformedSummary, err)
	}

	var summary model.BookSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, failure.Wrap(failure.Parse, DetailMalformedSummary, err)
	}

	return cleanSummary(summary), nil
}

// stripCodeFence removes a leading ``` (optionally with a language tag) and its
// matching trailing fence
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = openingFenceRegex.ReplaceAllString(text, "")
	text = closingFenceRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// cleanSummary strips markdown residue the prompt asks the model not to emit
func cleanSummary(s model.BookSummary) *model.BookSummary {
	s.Title = strings.TrimSpace(s.Title)
	s.Author = strings.TrimSpace(s.Author)
	s.Foreword = strings.TrimSpace(s.Foreword)
	s.WhoIsItFor = sanitize.MarkdownAll(s.WhoIsItFor)
	s.ActionableSteps = sanitize.MarkdownAll(s.ActionableSteps)
	s.CoreConcepts = sanitize.MarkdownAll(s.CoreConcepts)
	for i, t := range s.KeyTakeaways {
		s.KeyTakeaways[i] = model.KeyTakeaway{
			Title:       sanitize.Markdown(t.Title),
			Description: sanitize.Markdown(t.Description),
		}
	}
	return &s
}
