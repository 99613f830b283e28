package domain

import "unicode/utf8"

// TruncateText cuts s to at most limit bytes without splitting a multi-byte
// rune, so the result is always valid UTF-8. Returns s unchanged when it fits.
func TruncateText(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
