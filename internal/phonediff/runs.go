package phonediff

// Run is a maximal contiguous span of characters sharing one change status.
//
// At most one of Added and Removed is set: original-side runs are either
// Removed or unchanged, suggested-side runs are either Added or unchanged.
type Run struct {
	Value   string
	Added   bool
	Removed bool
}

// unchanged reports whether r carries no change flag.
func (r Run) unchanged() bool { return !r.Added && !r.Removed }

// MergeRuns coalesces adjacent runs with identical (Added, Removed) status and
// drops empty runs. Concatenation of Values is preserved. Merging an
// already-merged slice is a no-op; empty input yields nil.
func MergeRuns(runs []Run) []Run {
	var out []Run
	for _, r := range runs {
		if r.Value == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Added == r.Added && out[n-1].Removed == r.Removed {
			out[n-1].Value += r.Value
			continue
		}
		out = append(out, r)
	}
	return out
}

func removedRun(r rune) Run   { return Run{Value: string(r), Removed: true} }
func addedRun(r rune) Run     { return Run{Value: string(r), Added: true} }
func unchangedRun(r rune) Run { return Run{Value: string(r)} }
