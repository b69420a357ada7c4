package pipeline

import (
	"strings"
	"unicode"
)

// Slugify maps heading text to a URL-safe anchor id.
//
// The text is lowercased, every rune other than a-z, 0-9, a CJK ideograph
// (U+4E00..U+9FA5), whitespace or '-' is dropped, and whitespace runs become a
// single '-'. Leading and trailing whitespace is trimmed first.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if isSlugRune(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		return true
	case r >= 0x4E00 && r <= 0x9FA5:
		return true
	default:
		return unicode.IsSpace(r)
	}
}
