package blog

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const wordsPerMinute = 200

var (
	textPolicy    = bluemonday.StrictPolicy()
	contentPolicy = bluemonday.UGCPolicy()
)

// ReadTime estimates reading minutes for HTML content, never less than one.
func ReadTime(content string) int {
	// keep words in adjacent elements apart once tags are stripped
	spaced := strings.ReplaceAll(content, ">", "> ")
	text := html.UnescapeString(textPolicy.Sanitize(spaced))
	words := len(strings.Fields(text))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute

	return max(minutes, 1)
}

// SanitizeContent drops markup that is unsafe to render in a post body.
func SanitizeContent(content string) string {
	return contentPolicy.Sanitize(content)
}
