// Package features turns a raw password string into a fixed-schema numeric
// record describing its composition. Extraction is pure and total: every
// string, including the empty string, yields a well-defined record.
package features

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Record is a fixed-schema summary of a password's composition.
// Upper + Lower + Digits + Special always equals Length.
type Record struct {
	Length  int
	Upper   int
	Lower   int
	Digits  int
	Special int

	DigitRatio   float64
	SpecialRatio float64
	UpperRatio   float64
	LowerRatio   float64

	// CommonPattern is true when the lowercased password contains
	// any of the configured weak substrings.
	CommonPattern bool
}

// featureNames is the canonical ordering of the numeric feature vector.
// Scaler artifacts declare their feature order against these names.
var featureNames = []string{
	"length",
	"upper",
	"lower",
	"digits",
	"special",
	"digit_ratio",
	"special_ratio",
	"upper_ratio",
	"lower_ratio",
	"common_pattern",
}

// Names returns the feature names in vector order.
func Names() []string {
	names := make([]string, len(featureNames))
	copy(names, featureNames)
	return names
}

// Vector returns the record as a numeric vector in Names() order.
// CommonPattern is encoded as 0 or 1.
func (r Record) Vector() []float64 {
	pattern := 0.0
	if r.CommonPattern {
		pattern = 1.0
	}
	return []float64{
		float64(r.Length),
		float64(r.Upper),
		float64(r.Lower),
		float64(r.Digits),
		float64(r.Special),
		r.DigitRatio,
		r.SpecialRatio,
		r.UpperRatio,
		r.LowerRatio,
		pattern,
	}
}

// Extractor computes feature records. The weak-substring set is
// configuration data supplied at construction, not code.
type Extractor struct {
	patterns []string
}

// NewExtractor creates an extractor with the given weak substrings.
// Patterns are matched case-insensitively.
func NewExtractor(patterns []string) *Extractor {
	lowered := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	return &Extractor{patterns: lowered}
}

// Extract computes the feature record for a password.
//
// Each rune lands in exactly one bucket: decimal digits count as digits,
// cased letters as upper or lower, caseless letters as lower, and
// everything else (whitespace and punctuation included) as special.
func (e *Extractor) Extract(password string) Record {
	var rec Record

	for _, c := range password {
		switch {
		case unicode.IsDigit(c):
			rec.Digits++
		case unicode.IsUpper(c) || unicode.IsTitle(c):
			rec.Upper++
		case unicode.IsLetter(c):
			rec.Lower++
		default:
			rec.Special++
		}
	}
	rec.Length = utf8.RuneCountInString(password)

	// max(1, length) guard keeps ratios defined for the empty string.
	denom := float64(rec.Length)
	if denom < 1 {
		denom = 1
	}
	rec.DigitRatio = float64(rec.Digits) / denom
	rec.SpecialRatio = float64(rec.Special) / denom
	rec.UpperRatio = float64(rec.Upper) / denom
	rec.LowerRatio = float64(rec.Lower) / denom

	lowered := strings.ToLower(password)
	for _, p := range e.patterns {
		if strings.Contains(lowered, p) {
			rec.CommonPattern = true
			break
		}
	}

	return rec
}
