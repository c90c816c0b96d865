package phonediff

import "strings"

// classifier is the cursor state of one classification pass over one side of a
// number pair: a forward-only pointer into the common digit sequence, and a
// remainder cursor into the opposite side's string used to keep the two raw
// strings loosely re-synchronized when one has been reformatted.
//
// Neither cursor ever moves backward, and the pass's own index advances by at
// least one character per iteration, so every pass terminates in linear time.
type classifier struct {
	common []rune // digits shared by both sides, in order
	cp     int    // next unconsumed common digit
	other  []rune // the opposite side's raw string
	oc     int    // remainder cursor into other
}

func (c *classifier) nextCommon() (rune, bool) {
	if c.cp < len(c.common) {
		return c.common[c.cp], true
	}
	return 0, false
}

func (c *classifier) otherAt() (rune, bool) {
	if c.oc < len(c.other) {
		return c.other[c.oc], true
	}
	return 0, false
}

// resync discards leading characters of the other-side remainder until it
// points at ch again or at the next expected common digit, then consumes one
// more character. This absorbs spacing inserted on the other side.
func (c *classifier) resync(ch rune) {
	next, hasNext := c.nextCommon()
	for c.oc < len(c.other) {
		o := c.other[c.oc]
		if o == ch || (hasNext && o == next) {
			break
		}
		c.oc++
	}
	if c.oc < len(c.other) {
		c.oc++
	}
}

// skipOtherPrefix advances the other-side remainder to the first space,
// stepping over an inserted international prefix such as "+49".
func (c *classifier) skipOtherPrefix() {
	for c.oc < len(c.other) && c.other[c.oc] != ' ' {
		c.oc++
	}
}

// indexInOther returns the remainder-relative position of ch in the other-side
// remainder, or -1.
func (c *classifier) indexInOther(ch rune) int {
	for i := c.oc; i < len(c.other); i++ {
		if c.other[i] == ch {
			return i
		}
	}
	return -1
}

// startsWithTrunkZero reports whether the dialable part of suggested — the
// token after the first space, i.e. what follows an international prefix like
// "+49" — starts with '0'. A suggested value with no space has no such token.
func startsWithTrunkZero(suggested string) bool {
	_, rest, ok := strings.Cut(suggested, " ")
	return ok && strings.HasPrefix(rest, "0")
}

// classifyOriginal walks the original raw string and marks every character
// unchanged or removed, guided by the common digit sequence. The suggested raw
// string is consulted only through the remainder cursor.
func classifyOriginal(original, suggested string, common []rune) []Run {
	orig := []rune(original)
	c := &classifier{common: common, other: []rune(suggested)}
	var runs []Run
	for i := 0; i < len(orig); i++ {
		ch := orig[i]

		// A national trunk '0' being dropped in favor of an inserted +country
		// prefix: the suggested remainder sits on '+' while the original sits
		// on '0', and the suggested number does not itself start with '0'.
		// A second '0' right after means this is the international access code
		// "00", not a trunk prefix; the plain digit rule handles it.
		loneZero := ch == '0' && (i+1 >= len(orig) || orig[i+1] != '0')
		if o, ok := c.otherAt(); ok && o == '+' && loneZero && !startsWithTrunkZero(suggested) {
			runs = append(runs, removedRun(ch))
			if cd, ok := c.nextCommon(); ok && cd == '0' {
				// The dropped trunk zero coincidentally matches the next
				// common digit; consume it so it is not matched again.
				c.cp++
			}
			c.skipOtherPrefix()
			continue
		}

		if isDigit(ch) {
			if cd, ok := c.nextCommon(); ok && cd == ch {
				runs = append(runs, unchangedRun(ch))
				c.cp++
				c.resync(ch)
			} else {
				// A digit present originally but not retained.
				runs = append(runs, removedRun(ch))
			}
			continue
		}

		if o, ok := c.otherAt(); ok && o == ch {
			runs = append(runs, unchangedRun(ch))
			c.oc++
		} else {
			// A dropped formatting character: parenthesis, stray letter,
			// wrong separator.
			runs = append(runs, removedRun(ch))
		}
	}
	return runs
}

// classifySuggested walks the suggested raw string and marks every character
// unchanged or added. It mirrors classifyOriginal, with its own special case
// for a newly inserted international prefix.
func classifySuggested(original, suggested string, common []rune) []Run {
	sugg := []rune(suggested)
	c := &classifier{common: common, other: []rune(original)}
	origDigits := NormalizeDigits(original)
	suggDigits := NormalizeDigits(suggested)
	var runs []Run
	for i := 0; i < len(sugg); i++ {
		ch := sugg[i]

		if ch == '+' && prefixIsNew(original, origDigits, suggDigits, sugg, i) {
			// The entire inserted prefix, through its first space, is added.
			j := i
			for j < len(sugg) && sugg[j] != ' ' {
				runs = append(runs, addedRun(sugg[j]))
				j++
			}
			if j < len(sugg) {
				runs = append(runs, addedRun(sugg[j]))
				j++
			}
			// A redundant trunk '0' superseded by the prefix is skipped on the
			// original side rather than matched.
			if o, ok := c.otherAt(); ok && o == '0' && !startsWithTrunkZero(suggested) {
				c.oc++
				if cd, ok := c.nextCommon(); ok && cd == '0' {
					c.cp++
				}
			}
			i = j - 1 // consumed sugg[i:j]; loop increment lands on j
			continue
		}

		if isDigit(ch) {
			if cd, ok := c.nextCommon(); ok && cd == ch {
				runs = append(runs, unchangedRun(ch))
				c.cp++
				c.resync(ch)
			} else {
				runs = append(runs, addedRun(ch))
			}
			continue
		}

		if o, ok := c.otherAt(); ok && o == ch {
			runs = append(runs, unchangedRun(ch))
			c.oc++
			continue
		}

		// Realignment fallback: a formatting character that still exists later
		// in the original remainder has merely moved. '+', spaces and dashes
		// are excluded; those are exactly the characters normalization inserts,
		// and skipping ahead to one would eat unrelated text.
		if ch != '+' && ch != ' ' && ch != '-' {
			if idx := c.indexInOther(ch); idx >= 0 {
				c.oc = idx + 1
				runs = append(runs, unchangedRun(ch))
				continue
			}
		}
		runs = append(runs, addedRun(ch))
	}
	return runs
}

// prefixIsNew reports whether the '+' at sugg[i] starts an international
// prefix that is genuinely new to the suggested side. All guards must hold:
//   - the original contains no '+' anywhere;
//   - the original digits do not already start with the international access
//     code "00";
//   - the change is not merely a '+' added to an otherwise identical digit
//     sequence;
//   - the digits of the inserted prefix are not already the start of the
//     original digits (a prefix present unformatted in the source is not new).
//
// These guards are tuned against real-world malformed numbers; their exact
// conditions and ordering are load-bearing.
func prefixIsNew(original, origDigits, suggDigits string, sugg []rune, i int) bool {
	if strings.ContainsRune(original, '+') {
		return false
	}
	if strings.HasPrefix(origDigits, "00") {
		return false
	}
	if origDigits == suggDigits {
		return false
	}
	var prefix strings.Builder
	for j := i; j < len(sugg) && sugg[j] != ' '; j++ {
		if isDigit(sugg[j]) {
			prefix.WriteRune(sugg[j])
		}
	}
	if prefix.Len() > 0 && strings.HasPrefix(origDigits, prefix.String()) {
		return false
	}
	return true
}
