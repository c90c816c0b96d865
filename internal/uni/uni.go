// Package uni provides monospace text-width helpers for terminal output.
// Widths are computed per grapheme cluster so combining marks and joined emoji
// count as one column-occupying unit, not several.
package uni

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

var cond = defaultCondition()

func defaultCondition() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}

// TextWidth returns the display width of s in terminal columns.
func TextWidth(s string) int {
	w := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		w += clusterWidth(iter.Value())
	}
	return w
}

// clusterWidth is the width of one grapheme cluster: the widest rune in it.
// Zero-width joiners and combining marks contribute nothing.
func clusterWidth(cluster string) int {
	w := 0
	for _, r := range cluster {
		if rw := cond.RuneWidth(r); rw > w {
			w = rw
		}
	}
	return w
}

// PadRight pads s with spaces to at least width columns. Strings already wider
// than width are returned unchanged.
func PadRight(s string, width int) string {
	if pad := width - TextWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
