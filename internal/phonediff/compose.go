package phonediff

// DiffNumbers aligns one original number against one suggested number and
// classifies both sides character by character. The returned runs are
// per-character and unmerged; concatenating a side's values reconstructs that
// side's input exactly. Callers wanting maximal runs should pass the results
// through MergeRuns.
func DiffNumbers(original, suggested string) (oldRuns, newRuns []Run) {
	common := commonDigits(original, suggested)
	oldRuns = classifyOriginal(original, suggested, common)
	newRuns = classifySuggested(original, suggested, common)
	return oldRuns, newRuns
}

// DiffValues diffs a full original field value against a full suggested value,
// both possibly multi-valued. Both sides are sanitized, split with p, and
// paired segment by segment: number segments go through digit alignment and
// classification, separator segments through a plain character diff. Segments
// beyond the shorter list are wholesale removed (original side) or added
// (suggested side) — mismatched value counts are not aligned. Each side's runs
// are merged.
//
// An empty side short-circuits: the other side comes back as a single
// wholesale added or removed run, and the empty side as nil.
func DiffValues(original, suggested string, p Profile) (oldRuns, newRuns []Run) {
	if original == "" || suggested == "" {
		if original != "" {
			oldRuns = []Run{{Value: SanitizeInvisible(original), Removed: true}}
		}
		if suggested != "" {
			newRuns = []Run{{Value: SanitizeInvisible(suggested), Added: true}}
		}
		return oldRuns, newRuns
	}

	origSegs := p.Split(SanitizeInvisible(original))
	suggSegs := p.Split(SanitizeInvisible(suggested))

	n := min(len(origSegs), len(suggSegs))
	for k := 0; k < n; k++ {
		os, ss := origSegs[k], suggSegs[k]
		// The original segment's kind decides the strategy for the pair.
		if os.Kind == SegmentNumber {
			o, nw := DiffNumbers(os.Text, ss.Text)
			oldRuns = append(oldRuns, o...)
			newRuns = append(newRuns, nw...)
			continue
		}
		o, nw := plainDiff(os.Text, ss.Text)
		oldRuns = append(oldRuns, o...)
		newRuns = append(newRuns, nw...)
	}
	for _, s := range origSegs[n:] {
		oldRuns = append(oldRuns, Run{Value: s.Text, Removed: true})
	}
	for _, s := range suggSegs[n:] {
		newRuns = append(newRuns, Run{Value: s.Text, Added: true})
	}

	return MergeRuns(oldRuns), MergeRuns(newRuns)
}
