package ai

import (
	"regexp"
	"strings"
)

var (
	leadingFence  = regexp.MustCompile("^```json\\s*")
	trailingFence = regexp.MustCompile("```$")
)

// StripCodeFence removes a leading ```json fence and a trailing ``` fence
// from a model reply and trims surrounding whitespace. Models routinely wrap
// the JSON they were asked for in a markdown code block despite the prompt.
func StripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = leadingFence.ReplaceAllString(cleaned, "")
	cleaned = trailingFence.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
