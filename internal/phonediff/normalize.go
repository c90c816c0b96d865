package phonediff

import "strings"

// NormalizeDigits strips s to its bare digit sequence: every character that is
// not a decimal digit is removed, order preserved.
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
