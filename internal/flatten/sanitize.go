package flatten

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Sanitize makes a free-text value safe for a single delimited-text
// field: whitespace runs (including embedded newlines) collapse to one
// space, literal quotes are doubled, and the result is trimmed.
// Sanitizing an already-sanitized value is a no-op, which is why
// already-doubled quotes are folded back before doubling.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, `""`, `"`)
	text = strings.ReplaceAll(text, `"`, `""`)
	return strings.TrimSpace(text)
}
