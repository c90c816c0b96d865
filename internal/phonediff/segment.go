package phonediff

import (
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/language"
)

// SegmentKind classifies a Segment.
type SegmentKind int

const (
	// SegmentNumber is a segment containing at least one digit.
	SegmentNumber SegmentKind = iota
	// SegmentSeparator is a separator match or a digit-free chunk between
	// separators.
	SegmentSeparator
)

// Segment is a substring of a multi-valued field value.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Profile is a separator policy for splitting multi-valued fields. Separator
// sets are locale policy, not behavior: German numbers may legitimately contain
// '/', so the profile for de omits it.
type Profile struct {
	name string
	sep  *regexp2.Regexp
}

// Separator rules, shared by both profiles:
//   - ';', ',' and (default profile only) '/' split, with any surrounding
//     spaces belonging to the separator match;
//   - a ';' preceded by a backslash is an escaped extension delimiter and must
//     not split;
//   - a ',' followed by an extension marker ("ext") must not split;
//   - the words or/and/oder/y split only with whitespace on both sides.
//
// The escape and extension guards are look-arounds, which stdlib regexp (RE2)
// cannot express; hence regexp2.
var (
	// DefaultProfile splits on ';', ',' and '/'.
	DefaultProfile = Profile{
		name: "default",
		sep:  regexp2.MustCompile(`\s*(?<!\\);\s*|\s*,(?!\s*ext)\s*|\s*/\s*|\s+(?:or|and|oder|y)\s+`, regexp2.IgnoreCase),
	}

	// NoSlashProfile splits on ';' and ',' only, for locales where '/' is part
	// of a well-formed number.
	NoSlashProfile = Profile{
		name: "no-slash",
		sep:  regexp2.MustCompile(`\s*(?<!\\);\s*|\s*,(?!\s*ext)\s*|\s+(?:or|and|oder|y)\s+`, regexp2.IgnoreCase),
	}
)

// Name returns the profile's configuration name ("default" or "no-slash").
func (p Profile) Name() string { return p.name }

// ProfileByName returns the profile with the given configuration name.
func ProfileByName(name string) (Profile, bool) {
	switch name {
	case DefaultProfile.name, "":
		return DefaultProfile, true
	case NoSlashProfile.name:
		return NoSlashProfile, true
	}
	return Profile{}, false
}

var profileTags = []language.Tag{
	language.English, // default profile
	language.German,  // '/' is a legitimate part of German numbers
}

var profileMatcher = language.NewMatcher(profileTags)

// ProfileForTag selects the separator profile for a locale tag.
func ProfileForTag(tag language.Tag) Profile {
	_, idx, _ := profileMatcher.Match(tag)
	if profileTags[idx] == language.German {
		return NoSlashProfile
	}
	return DefaultProfile
}

// Split splits a sanitized field value into an ordered list of segments.
// Separator matches (including their surrounding spaces) are kept as
// SegmentSeparator segments, so concatenating all segment texts reconstructs
// value. Chunks that are empty or whitespace-only are discarded; remaining
// chunks are SegmentNumber if they contain a digit, SegmentSeparator otherwise.
// A chunk that is a lone "+" is consolidated into the number that follows it.
func (p Profile) Split(value string) []Segment {
	runes := []rune(value)
	var segs []Segment
	last := 0
	// regexp2 match indexes are rune offsets.
	m, err := p.sep.FindStringMatch(value)
	for err == nil && m != nil {
		if m.Index > last {
			segs = appendChunk(segs, string(runes[last:m.Index]))
		}
		if m.Length > 0 {
			segs = append(segs, Segment{Text: m.String(), Kind: SegmentSeparator})
		}
		last = m.Index + m.Length
		if m.Length == 0 {
			break
		}
		m, err = p.sep.FindNextMatch(m)
	}
	if last < len(runes) {
		segs = appendChunk(segs, string(runes[last:]))
	}
	return consolidatePlus(segs)
}

func appendChunk(segs []Segment, text string) []Segment {
	if strings.TrimSpace(text) == "" {
		return segs
	}
	kind := SegmentSeparator
	if strings.ContainsFunc(text, isDigit) {
		kind = SegmentNumber
	}
	return append(segs, Segment{Text: text, Kind: kind})
}

// consolidatePlus merges a lone "+" segment into the next number segment by
// prepending it. A "+" on its own is never a meaningful token; it belongs to
// the international-prefix number that follows.
func consolidatePlus(segs []Segment) []Segment {
	var out []Segment
	for i := 0; i < len(segs); i++ {
		s := segs[i]
		if strings.TrimSpace(s.Text) != "+" {
			out = append(out, s)
			continue
		}
		merged := false
		for j := i + 1; j < len(segs); j++ {
			if segs[j].Kind == SegmentNumber {
				segs[j].Text = "+" + segs[j].Text
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, s)
		}
	}
	return out
}
