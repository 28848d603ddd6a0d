package model

import "slices"

// BookSummary is the structured result of one generation request.
// It is never mutated after the parser builds it.
type BookSummary struct {
	Title           string        `json:"title"`
	Author          string        `json:"author"`
	Foreword        string        `json:"foreword"`
	WhoIsItFor      []string      `json:"whoIsItFor"`
	KeyTakeaways    []KeyTakeaway `json:"keyTakeaways"`
	ActionableSteps []string      `json:"actionableSteps"`
	CoreConcepts    []string      `json:"coreConcepts"`
}

type KeyTakeaway struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Clone returns a deep copy so callers can hand the summary to another owner
func (s BookSummary) Clone() BookSummary {
	s.WhoIsItFor = slices.Clone(s.WhoIsItFor)
	s.KeyTakeaways = slices.Clone(s.KeyTakeaways)
	s.ActionableSteps = slices.Clone(s.ActionableSteps)
	s.CoreConcepts = slices.Clone(s.CoreConcepts)
	return s
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatTranscript is the conversation of one open chat overlay about one summary
type ChatTranscript struct {
	ID       string        `json:"sessionId"`
	Summary  BookSummary   `json:"summary"`
	Messages []ChatMessage `json:"messages"`
}

// Clone returns a copy that shares no slices with the original
func (t ChatTranscript) Clone() ChatTranscript {
	t.Summary = t.Summary.Clone()
	t.Messages = slices.Clone(t.Messages)
	return t
}
