// Package budget bounds text length fed to the Generator while preserving
// head/tail structure.
package budget

import "unicode/utf8"

// Marker is inserted between the head and tail of truncated text so the
// Generator can see that content was elided.
const Marker = "\n\n[... content truncated ...]\n\n"

// headShare is the fraction of the budget kept from the start of the text;
// the remainder is kept from the end.
const headShare = 0.6

// Truncate bounds text to roughly maxLen bytes by keeping the first 60%
// and last 40% of the budget around a visible marker. Both seams land on
// rune boundaries so multibyte text never yields invalid UTF-8. Text
// within budget is returned unchanged; a non-positive budget disables
// truncation.
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 || len(text) <= maxLen {
		return text
	}
	head := int(float64(maxLen) * headShare)
	for head > 0 && !utf8.RuneStart(text[head]) {
		head--
	}
	tailStart := len(text) - (maxLen - head)
	for tailStart < len(text) && !utf8.RuneStart(text[tailStart]) {
		tailStart++
	}
	return text[:head] + Marker + text[tailStart:]
}
