package response

import (
	"regexp"
	"strings"
)

var speakerLabelRegex = regexp.MustCompile(`^(?i)(assistant|ai|model)\s*:\s*`)

// CleanReply trims a chat reply and drops a leading speaker label some models echo
func CleanReply(text string) string {
	result := strings.TrimSpace(text)
	result = speakerLabelRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}
