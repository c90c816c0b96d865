package phonediff

import (
	"html"
	"strings"

	"github.com/fatih/color"
)

// DiffHTML diffs two full field values and renders each side as HTML span
// markup. An empty input side yields an empty HTML string for that side. The
// output is fully escaped inline content; consumers must not re-escape it.
func DiffHTML(original, suggested string, p Profile) (oldHTML, newHTML string) {
	oldRuns, newRuns := DiffValues(original, suggested, p)
	return RenderHTML(oldRuns), RenderHTML(newRuns)
}

// RenderHTML renders runs as a sequence of spans with classes diff-removed,
// diff-added and diff-unchanged. Spaces are emitted as &nbsp; so that
// whitespace-only changes remain visible.
func RenderHTML(runs []Run) string {
	if len(runs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(`<span class="`)
		b.WriteString(runClass(r))
		b.WriteString(`">`)
		b.WriteString(escapeHTML(r.Value))
		b.WriteString(`</span>`)
	}
	return b.String()
}

func runClass(r Run) string {
	switch {
	case r.Removed:
		return "diff-removed"
	case r.Added:
		return "diff-added"
	default:
		return "diff-unchanged"
	}
}

func escapeHTML(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), " ", "&nbsp;")
}

// contactNamespace is the tag-key namespace that gets shared-prefix collapsing
// in DiffTagsHTML.
const contactNamespace = "contact:"

// DiffTagsHTML renders a tag-key rename. When both keys live in the contact:
// namespace, the shared prefix is shown unchanged and only the suffixes are
// marked removed/added; otherwise the whole old key is removed and the whole
// new key added.
func DiffTagsHTML(oldKey, newKey string) (oldHTML, newHTML string) {
	if strings.HasPrefix(oldKey, contactNamespace) && strings.HasPrefix(newKey, contactNamespace) {
		// MergeRuns drops the empty suffix run of a bare "contact:" key.
		oldHTML = RenderHTML(MergeRuns([]Run{
			{Value: contactNamespace},
			{Value: strings.TrimPrefix(oldKey, contactNamespace), Removed: true},
		}))
		newHTML = RenderHTML(MergeRuns([]Run{
			{Value: contactNamespace},
			{Value: strings.TrimPrefix(newKey, contactNamespace), Added: true},
		}))
		return oldHTML, newHTML
	}
	oldHTML = RenderHTML([]Run{{Value: oldKey, Removed: true}})
	newHTML = RenderHTML([]Run{{Value: newKey, Added: true}})
	return oldHTML, newHTML
}

var (
	termRemoved = color.New(color.FgWhite, color.BgRed, color.CrossedOut)
	termAdded   = color.New(color.FgBlack, color.BgGreen)
)

// RenderTerm renders runs for terminal output: removed text on a red
// background, added text on a green background, unchanged text plain. Color
// output honors the fatih/color global NoColor switch.
func RenderTerm(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		switch {
		case r.Removed:
			b.WriteString(termRemoved.Sprint(r.Value))
		case r.Added:
			b.WriteString(termAdded.Sprint(r.Value))
		default:
			b.WriteString(r.Value)
		}
	}
	return b.String()
}
