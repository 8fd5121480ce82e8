package latex

import (
	"regexp"
	"strings"
)

var (
	// A command is a backslash-led identifier, optionally starred, followed
	// by optional bracket and brace argument groups.
	commandPattern = regexp.MustCompile(`\\[a-zA-Z]+\*?(\[[^\]]*\])?(\{[^\}]*\})*`)
	// Brace groups are unwrapped to their inner text.
	bracePattern = regexp.MustCompile(`\{([^\}]+)\}`)
	// Line comments start at an unescaped percent sign.
	commentPattern    = regexp.MustCompile(`%.*`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripToText removes LaTeX markup from source, yielding comparable plain
// text. It always returns a string, possibly empty.
func StripToText(source string) string {
	text := commandPattern.ReplaceAllString(source, "")
	text = bracePattern.ReplaceAllString(text, "$1")
	text = commentPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
