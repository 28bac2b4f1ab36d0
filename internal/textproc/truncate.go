package textproc

import "unicode/utf8"

// TruncateBytes caps text to at most limit bytes without splitting a
// UTF-8 sequence: a cut that would land inside a multi-byte rune backs
// up to the preceding rune boundary.
func TruncateBytes(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
