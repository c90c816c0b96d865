package phonediff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffHTML_TrunkZeroReplacedByPrefix(t *testing.T) {
	oldHTML, newHTML := DiffHTML("023 456 7890", "+37 23 456 7890", DefaultProfile)

	assert.Equal(t,
		`<span class="diff-removed">0</span><span class="diff-unchanged">23&nbsp;456&nbsp;7890</span>`,
		oldHTML)
	assert.Equal(t,
		`<span class="diff-added">+37&nbsp;</span><span class="diff-unchanged">23&nbsp;456&nbsp;7890</span>`,
		newHTML)
}

func TestDiffHTML_EmptySides(t *testing.T) {
	oldHTML, newHTML := DiffHTML("", "+32 58 51 55 92", DefaultProfile)
	assert.Equal(t, "", oldHTML)
	assert.Equal(t, `<span class="diff-added">+32&nbsp;58&nbsp;51&nbsp;55&nbsp;92</span>`, newHTML)

	oldHTML, newHTML = DiffHTML("+32 58 51 55 92", "", DefaultProfile)
	assert.Equal(t, `<span class="diff-removed">+32&nbsp;58&nbsp;51&nbsp;55&nbsp;92</span>`, oldHTML)
	assert.Equal(t, "", newHTML)
}

func TestDiffHTML_Escapes(t *testing.T) {
	oldHTML, _ := DiffHTML(`<b>555</b>`, "555", DefaultProfile)
	assert.NotContains(t, oldHTML, "<b>")
	assert.Contains(t, oldHTML, "&lt;b&gt;")
}

func TestDiffHTML_WhitespaceVisible(t *testing.T) {
	// Space-only changes must survive HTML whitespace collapsing.
	_, newHTML := DiffHTML("+3258", "+32 58", DefaultProfile)
	assert.Contains(t, newHTML, `<span class="diff-added">&nbsp;</span>`)
	assert.NotContains(t, newHTML, "> <")
}

func TestRenderHTML_ClassPerStatus(t *testing.T) {
	out := RenderHTML([]Run{
		{Value: "a", Removed: true},
		{Value: "b"},
		{Value: "c", Added: true},
	})
	assert.Equal(t,
		`<span class="diff-removed">a</span><span class="diff-unchanged">b</span><span class="diff-added">c</span>`,
		out)
}

func TestDiffTagsHTML_SharedContactPrefix(t *testing.T) {
	oldHTML, newHTML := DiffTagsHTML("contact:mobile", "contact:phone")
	assert.Equal(t,
		`<span class="diff-unchanged">contact:</span><span class="diff-removed">mobile</span>`,
		oldHTML)
	assert.Equal(t,
		`<span class="diff-unchanged">contact:</span><span class="diff-added">phone</span>`,
		newHTML)
}

func TestDiffTagsHTML_NoSharedPrefix(t *testing.T) {
	oldHTML, newHTML := DiffTagsHTML("mobile", "phone")
	assert.Equal(t, `<span class="diff-removed">mobile</span>`, oldHTML)
	assert.Equal(t, `<span class="diff-added">phone</span>`, newHTML)
}

func TestDiffTagsHTML_BareNamespaceKey(t *testing.T) {
	oldHTML, newHTML := DiffTagsHTML("contact:", "contact:phone")
	assert.Equal(t, `<span class="diff-unchanged">contact:</span>`, oldHTML)
	assert.Equal(t,
		`<span class="diff-unchanged">contact:</span><span class="diff-added">phone</span>`,
		newHTML)
}

func TestDiffTagsHTML_OneSidedContactPrefix(t *testing.T) {
	oldHTML, newHTML := DiffTagsHTML("phone", "contact:phone")
	assert.Equal(t, `<span class="diff-removed">phone</span>`, oldHTML)
	assert.Equal(t, `<span class="diff-added">contact:phone</span>`, newHTML)
}

func TestRenderTerm_PlainWhenUnchanged(t *testing.T) {
	out := RenderTerm([]Run{{Value: "+32 58"}})
	assert.Equal(t, "+32 58", out)
}

func TestRenderTerm_CoversAllRuns(t *testing.T) {
	runs := []Run{
		{Value: "0", Removed: true},
		{Value: "23"},
		{Value: "+", Added: true},
	}
	out := RenderTerm(runs)
	// Regardless of color mode, every run's text is present in order.
	idx := 0
	for _, r := range runs {
		pos := strings.Index(out[idx:], r.Value)
		assert.GreaterOrEqual(t, pos, 0, "missing %q", r.Value)
		idx += pos + len(r.Value)
	}
}
