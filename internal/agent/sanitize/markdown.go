package sanitize

import (
	"regexp"
	"strings"
)

var (
	boldPattern    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	bulletPattern  = regexp.MustCompile(`^\s*(?:[*\-•]|\d+[.)])\s+`)
	headingPattern = regexp.MustCompile(`^\s*#{1,6}\s+`)
)

// Markdown strips bold markers and any run of leading bullets, list numbers
// and heading markers from a single-line string value.
// Markdown(Markdown(s)) == Markdown(s).
func Markdown(s string) string {
	result := strings.TrimSpace(s)
	for {
		next := boldPattern.ReplaceAllString(result, "$1")
		next = headingPattern.ReplaceAllString(next, "")
		next = bulletPattern.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == result {
			return result
		}
		result = next
	}
}

// MarkdownAll applies Markdown to every element in place and returns the slice
func MarkdownAll(items []string) []string {
	for i, item := range items {
		items[i] = Markdown(item)
	}
	return items
}
