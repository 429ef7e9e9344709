package security

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<.*?>`)

// SanitizeText strips HTML tags, control characters and surrounding
// whitespace from an inbound message before it reaches the dialogue.
func SanitizeText(input string) string {
	cleaned := tagPattern.ReplaceAllString(input, "")

	cleaned = strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, cleaned)

	return strings.TrimSpace(cleaned)
}
