package phonediff

import "strings"

// Placeholder is the visible glyph substituted for each invisible character by
// SanitizeInvisible.
const Placeholder = '�'

// SanitizeInvisible replaces every invisible character in s with Placeholder,
// one for one. Zero-width characters, bidi controls and atypical space variants
// would otherwise be silently lost in rendered output, or break separator
// matching in Split; substituting a visible glyph keeps the position occupied
// so a reviewer can see that something was there.
//
// Run this before segmentation.
func SanitizeInvisible(s string) string {
	if !strings.ContainsFunc(s, isInvisible) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isInvisible(r) {
			b.WriteRune(Placeholder)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isInvisible(r rune) bool {
	switch r {
	case '\t',
		0x00A0, // NO-BREAK SPACE
		0x00AD, // SOFT HYPHEN
		0x061C, // ARABIC LETTER MARK
		0x180E, // MONGOLIAN VOWEL SEPARATOR
		0x202F, // NARROW NO-BREAK SPACE
		0x205F, // MEDIUM MATHEMATICAL SPACE
		0x3000, // IDEOGRAPHIC SPACE
		0xFEFF: // ZERO WIDTH NO-BREAK SPACE / BOM
		return true
	}
	// Space family, zero-width space/joiners and directional marks: U+2000–U+200F.
	if r >= 0x2000 && r <= 0x200F {
		return true
	}
	// Line/paragraph separators and bidi embeddings/overrides: U+2028–U+202E.
	if r >= 0x2028 && r <= 0x202E {
		return true
	}
	// Word joiner and invisible operators: U+2060–U+2064.
	if r >= 0x2060 && r <= 0x2064 {
		return true
	}
	// Bidi isolates, including pop-directional-isolate: U+2066–U+2069.
	if r >= 0x2066 && r <= 0x2069 {
		return true
	}
	return false
}
