// Package sanitize normalizes user input before it is interpolated into prompts
// and strips markdown residue from model output.
// Reference: OWASP LLM Prompt Injection Prevention Cheat Sheet
// https://cheatsheetseries.owasp.org/cheatsheets/LLM_Prompt_Injection_Prevention_Cheat_Sheet.html
package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// instructionPatterns detects instruction-like content in a chat question.
// They are joined into one alternation so overlapping matches are wrapped once.
var instructionPatterns = []string{
	`ignore\s+(?:all\s+)?(?:the\s+)?(?:previous|prior|above)\s+(?:instructions|prompts?)`,
	`disregard\s+(?:all\s+)?(?:the\s+)?(?:previous|prior|above|system)\s+\w+`,
	`forget\s+(?:everything|all)\s+(?:above|before|you\s+know)`,
	`you\s+are\s+now\s+(?:a|an|the)\s+`,
	`(?:reveal|print|show|repeat)\s+(?:me\s+)?(?:your|the)\s+(?:system\s+)?(?:prompt|instructions)`,
	`system\s*prompt`,
	`developer\s+mode`,
}

var instructionRegex = regexp.MustCompile(`(?i)` + strings.Join(instructionPatterns, "|"))

// Input normalizes a form field to NFC and trims surrounding whitespace.
// NFC first so lookalike code point sequences compare equal downstream.
func Input(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Question normalizes a chat question and neutralizes instruction-like phrases by
// wrapping them in 【】 so the model reads them as quoted text.
func Question(s string) string {
	return instructionRegex.ReplaceAllStringFunc(Input(s), func(match string) string {
		return "【" + match + "】"
	})
}
