package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// EmptyReplyCheck rejects blank replies
type EmptyReplyCheck struct{}

func NewEmptyReplyCheck() *EmptyReplyCheck {
	return &EmptyReplyCheck{}
}

func (v *EmptyReplyCheck) Name() string {
	return "EmptyReplyCheck"
}

func (v *EmptyReplyCheck) Check(reply Reply) Verdict {
	if strings.TrimSpace(reply.Text) == "" {
		return Redo("empty reply")
	}
	return Pass()
}

// LengthCheck trims replies that run far past the requested length
// back to the last complete sentence within maxWords
type LengthCheck struct {
	maxWords int
}

func NewLengthCheck(maxWords int) *LengthCheck {
	return &LengthCheck{maxWords: maxWords}
}

func (v *LengthCheck) Name() string {
	return "LengthCheck"
}

func (v *LengthCheck) Check(reply Reply) Verdict {
	words := strings.Fields(reply.Text)
	if len(words) <= v.maxWords {
		return Pass()
	}

	truncated := cutAfterWords(reply.Text, v.maxWords)
	if idx := strings.LastIndexAny(truncated, ".!?"); idx > 0 {
		truncated = truncated[:idx+1]
	} else {
		truncated += "..."
	}
	return ReplaceWith(fmt.Sprintf("reply has %d words (max %d)", len(words), v.maxWords), truncated)
}

// cutAfterWords returns s up to the end of its n-th whitespace-separated word
func cutAfterWords(s string, n int) string {
	count := 0
	inWord := false
	for i, r := range s {
		if unicode.IsSpace(r) {
			if inWord {
				count++
				inWord = false
				if count == n {
					return s[:i]
				}
			}
			continue
		}
		inWord = true
	}
	return s
}
