package phonediff

import "github.com/sergi/go-diff/diffmatchpatch"

// commonDigits computes the common digit sequence of two number strings: the
// digits present, unmodified and in the same relative order, in both sides'
// digit streams. It is the semantic backbone the classifier passes walk; a
// digit in this sequence is never shown as both removed and added.
func commonDigits(original, suggested string) []rune {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(NormalizeDigits(original), NormalizeDigits(suggested), false)
	diffs = dmp.DiffCleanupMerge(diffs)
	var common []rune
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			common = append(common, []rune(d.Text)...)
		}
	}
	return common
}

// plainDiff runs an ordinary character diff, for separator segments and other
// text where digit alignment does not apply.
func plainDiff(original, suggested string) (oldRuns, newRuns []Run) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupMerge(dmp.DiffMain(original, suggested, false))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldRuns = append(oldRuns, Run{Value: d.Text})
			newRuns = append(newRuns, Run{Value: d.Text})
		case diffmatchpatch.DiffDelete:
			oldRuns = append(oldRuns, Run{Value: d.Text, Removed: true})
		case diffmatchpatch.DiffInsert:
			newRuns = append(newRuns, Run{Value: d.Text, Added: true})
		}
	}
	return oldRuns, newRuns
}
