package validation

import (
	"book-summarizer/backend/internal/model"
)

// Reply is a chat reply under review, with what it answers
type Reply struct {
	Question string
	Text     string
	Summary  model.BookSummary
}

// Action is what the pipeline does with a reply after a check
type Action int

const (
	// ActionAccept keeps the reply as it is
	ActionAccept Action = iota
	// ActionReplace swaps in Verdict.Replacement and keeps checking
	ActionReplace
	// ActionRegenerate discards the reply and asks the model again
	ActionRegenerate
)

// Verdict is one check's judgement on a reply
type Verdict struct {
	Action      Action
	Reason      string
	Replacement string
}

// Pass accepts the reply
func Pass() Verdict {
	return Verdict{Action: ActionAccept}
}

// Redo rejects the reply so it is generated again
func Redo(reason string) Verdict {
	return Verdict{Action: ActionRegenerate, Reason: reason}
}

// ReplaceWith keeps a repaired version of the reply
func ReplaceWith(reason, replacement string) Verdict {
	return Verdict{Action: ActionReplace, Reason: reason, Replacement: replacement}
}

// Check is one rule a chat reply must satisfy
type Check interface {
	Name() string
	Check(reply Reply) Verdict
}

// truncateForLog truncates a string for logging purposes
func truncateForLog(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}
