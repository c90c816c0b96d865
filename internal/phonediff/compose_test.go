package phonediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffValues_EmptySides(t *testing.T) {
	oldRuns, newRuns := DiffValues("", "+32 58 51 55 92", DefaultProfile)
	assert.Nil(t, oldRuns)
	assert.Equal(t, []Run{{Value: "+32 58 51 55 92", Added: true}}, newRuns)

	oldRuns, newRuns = DiffValues("+32 58 51 55 92", "", DefaultProfile)
	assert.Equal(t, []Run{{Value: "+32 58 51 55 92", Removed: true}}, oldRuns)
	assert.Nil(t, newRuns)

	oldRuns, newRuns = DiffValues("", "", DefaultProfile)
	assert.Nil(t, oldRuns)
	assert.Nil(t, newRuns)
}

func TestDiffValues_SingleNumber(t *testing.T) {
	oldRuns, newRuns := DiffValues("023 456 7890", "+37 23 456 7890", DefaultProfile)

	assert.Equal(t, []Run{
		{Value: "0", Removed: true},
		{Value: "23 456 7890"},
	}, oldRuns)

	assert.Equal(t, []Run{
		{Value: "+37 ", Added: true},
		{Value: "23 456 7890"},
	}, newRuns)
}

func TestDiffValues_TwoNumbers(t *testing.T) {
	original := "+32 58 515 592;+32 0473 792 951"
	suggested := "+32 58 51 55 92; +32 473 79 29 51"
	oldRuns, newRuns := DiffValues(original, suggested, DefaultProfile)

	assertReconstructs(t, original, oldRuns, suggested, newRuns)

	// The redundant leading 0 is removed; every digit stays unchanged; the
	// original grouping spaces that moved are removed.
	assert.Equal(t, []Run{
		{Value: "+32 58 515"},
		{Value: " ", Removed: true},
		{Value: "592;+32 "},
		{Value: "0", Removed: true},
		{Value: "473 792"},
		{Value: " ", Removed: true},
		{Value: "951"},
	}, oldRuns)

	// The newly inserted internal spaces are added; every digit stays
	// unchanged.
	assert.Equal(t, []Run{
		{Value: "+32 58 51"},
		{Value: " ", Added: true},
		{Value: "55"},
		{Value: " ", Added: true},
		{Value: "92;"},
		{Value: " ", Added: true},
		{Value: "+32 473 79"},
		{Value: " ", Added: true},
		{Value: "29"},
		{Value: " ", Added: true},
		{Value: "51"},
	}, newRuns)
}

func TestDiffValues_ExtraTrailingNumberRemoved(t *testing.T) {
	oldRuns, newRuns := DiffValues("+32 58 515 592; +32 473 792 951", "+32 58 515 592", DefaultProfile)

	require.NotEmpty(t, oldRuns)
	last := oldRuns[len(oldRuns)-1]
	assert.True(t, last.Removed)
	assert.Contains(t, last.Value, "+32 473 792 951")

	for _, r := range newRuns {
		assert.False(t, r.Added, "nothing is added when the suggestion drops a number")
	}
}

func TestDiffValues_ExtraTrailingNumberAdded(t *testing.T) {
	oldRuns, newRuns := DiffValues("+32 58 515 592", "+32 58 515 592; +32 473 792 951", DefaultProfile)

	for _, r := range oldRuns {
		assert.False(t, r.Removed)
	}
	require.NotEmpty(t, newRuns)
	last := newRuns[len(newRuns)-1]
	assert.True(t, last.Added)
	assert.Contains(t, last.Value, "+32 473 792 951")
}

func TestDiffValues_SeparatorOnlyChange(t *testing.T) {
	oldRuns, newRuns := DiffValues("+32 58 515 592;+32 473 792 951", "+32 58 515 592; +32 473 792 951", DefaultProfile)

	assert.Equal(t, []Run{{Value: "+32 58 515 592;+32 473 792 951"}}, oldRuns)
	assert.Equal(t, []Run{
		{Value: "+32 58 515 592;"},
		{Value: " ", Added: true},
		{Value: "+32 473 792 951"},
	}, newRuns)
}

func TestDiffValues_MergedRunsAreMaximal(t *testing.T) {
	oldRuns, newRuns := DiffValues("023 456 7890", "+37 23 456 7890", DefaultProfile)
	for _, runs := range [][]Run{oldRuns, newRuns} {
		for i := 1; i < len(runs); i++ {
			same := runs[i].Added == runs[i-1].Added && runs[i].Removed == runs[i-1].Removed
			assert.False(t, same)
		}
	}
}

func TestDiffValues_SanitizesBeforeSegmenting(t *testing.T) {
	// The zero-width space is substituted, not lost: it shows up (as the
	// placeholder) in a removed run and the output still reconstructs the
	// sanitized input.
	original := "+32​58"
	oldRuns, _ := DiffValues(original, "+32 58", DefaultProfile)

	var concat string
	var sawPlaceholder bool
	for _, r := range oldRuns {
		concat += r.Value
		if r.Removed && r.Value == string(Placeholder) {
			sawPlaceholder = true
		}
	}
	assert.Equal(t, SanitizeInvisible(original), concat)
	assert.True(t, sawPlaceholder)
}
