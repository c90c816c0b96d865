// Package validator checks phone-number tag values and proposes normalized
// replacement values. It is the producer side of the diff engine: the engine
// compares a raw value against the replacement built here, and never judges
// validity itself.
package validator

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/osmtools/phonelint/internal/phonediff"
)

// Status classifies one number within a tag value.
type Status int

const (
	// StatusOK means the number is valid and already formatted as suggested.
	StatusOK Status = iota
	// StatusReformat means the number is valid but formatted differently.
	StatusReformat
	// StatusInvalid means the number parses but is not a valid number.
	StatusInvalid
	// StatusUnparseable means the number cannot be parsed at all.
	StatusUnparseable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusReformat:
		return "reformat"
	case StatusInvalid:
		return "invalid"
	default:
		return "unparseable"
	}
}

// Number is the outcome for one number segment of a tag value.
type Number struct {
	Raw       string
	Formatted string // international format; empty unless valid
	Status    Status
	Err       error // parse error when StatusUnparseable
}

// Result is the outcome of validating one tag value.
type Result struct {
	Value     string
	Numbers   []Number
	Suggested string // proposed replacement value; empty when none
}

// Fixable reports whether a replacement value is proposed.
func (r Result) Fixable() bool { return r.Suggested != "" }

// Validator validates phone-number tag values.
type Validator struct {
	region  string
	profile phonediff.Profile
}

// New returns a Validator. region is the default region (ISO 3166-1 alpha-2,
// e.g. "BE") used for numbers written without a country code; profile is the
// separator profile for multi-valued fields.
func New(region string, profile phonediff.Profile) *Validator {
	return &Validator{region: region, profile: profile}
}

// Check validates every number in value. When all numbers are valid, the
// suggested replacement is their international formats joined with "; "; a
// single invalid or unparseable number suppresses the suggestion, since a
// half-fixed value is worse than a flagged one. A value already in suggested
// form yields no suggestion.
func (v *Validator) Check(value string) Result {
	res := Result{Value: value}
	if strings.TrimSpace(value) == "" {
		return res
	}

	var formatted []string
	allValid := true
	for _, seg := range v.profile.Split(phonediff.SanitizeInvisible(value)) {
		if seg.Kind != phonediff.SegmentNumber {
			continue
		}
		raw := strings.TrimSpace(seg.Text)

		num, err := phonenumbers.Parse(raw, v.region)
		if err != nil {
			res.Numbers = append(res.Numbers, Number{Raw: raw, Status: StatusUnparseable, Err: err})
			allValid = false
			continue
		}
		if !phonenumbers.IsValidNumber(num) {
			res.Numbers = append(res.Numbers, Number{Raw: raw, Status: StatusInvalid})
			allValid = false
			continue
		}

		f := phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
		status := StatusReformat
		if f == raw {
			status = StatusOK
		}
		res.Numbers = append(res.Numbers, Number{Raw: raw, Formatted: f, Status: status})
		formatted = append(formatted, f)
	}

	if allValid && len(formatted) > 0 {
		if joined := strings.Join(formatted, "; "); joined != value {
			res.Suggested = joined
		}
	}
	return res
}
