package sentiment

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`http\S+`)
	mentionPattern    = regexp.MustCompile(`@[A-Za-z0-9_]+`)
	hashtagPattern    = regexp.MustCompile(`#\w+`)
	nonAlphanumerics  = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw social-media style text before tokenization:
// lowercase, then strip URLs, mentions, hashtags and punctuation, and
// collapse runs of whitespace.
func Clean(text string) string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = hashtagPattern.ReplaceAllString(text, "")
	text = nonAlphanumerics.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
