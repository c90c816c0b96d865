// Package phonediff computes and renders structural diffs between a raw
// phone-number field value and a machine-normalized replacement.
//
// This is not a generic text diff. A generic diff marks digits as
// deleted-then-reinserted whenever reformatting shifts their position, which is
// visually noisy and semantically wrong: "023 456 7890" -> "+37 23 456 7890"
// changes almost nothing about the dialled number. phonediff instead aligns the
// two values on the digits they share and classifies every character as
// unchanged, removed (original side) or added (suggested side).
//
// Representation: a classified side is an ordered slice of Run values. Each Run
// carries a substring and at most one of Added/Removed; a Run with neither flag
// is unchanged. Concatenating the Values of a side's runs reconstructs that
// side's (sanitized) input exactly.
//
// Pipeline: SanitizeInvisible replaces invisible Unicode characters with a
// visible placeholder; a Profile splits multi-valued fields into number and
// separator segments; each paired number segment is aligned on its common digit
// sequence and classified by two independent cursor-driven passes; separator
// segments get a plain character diff; MergeRuns coalesces adjacent runs with
// the same status.
//
// Entry points: DiffNumbers aligns a single number pair and returns per-character
// runs. DiffValues handles full (possibly multi-valued) fields and returns merged
// runs. DiffHTML and DiffTagsHTML render HTML span markup; RenderTerm renders
// runs with ANSI colors for terminals.
//
// Everything in this package is pure and total: any two strings, including empty
// ones, produce a well-formed result in linear time. There is no shared mutable
// state; concurrent calls need no synchronization.
package phonediff
