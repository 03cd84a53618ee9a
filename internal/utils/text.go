package utils

import "unicode/utf8"

// Truncate caps s at max bytes, appending an ellipsis when cut. The cut backs
// off to a rune boundary so multi-byte characters are never split. A max <= 0
// disables truncation.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
