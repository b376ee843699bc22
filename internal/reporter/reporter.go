// Package reporter renders classification results for the terminal or
// as JSON. Reporters receive structured results only; raw passwords
// are never part of a report.
package reporter

import (
	"github.com/passgauge/passgauge/internal/classifier"
)

// Reporter defines the interface for outputting classification results
type Reporter interface {
	// Report outputs the results of one run
	Report(results []classifier.Result) error
}

// Summary holds per-label counts for a run
type Summary struct {
	Total    int `json:"total"`
	VeryWeak int `json:"very_weak"`
	Weak     int `json:"weak"`
	Medium   int `json:"medium"`
	Strong   int `json:"strong"`
}

// ComputeSummary computes the label distribution of a run
func ComputeSummary(results []classifier.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Label {
		case classifier.VeryWeak:
			s.VeryWeak++
		case classifier.Weak:
			s.Weak++
		case classifier.Medium:
			s.Medium++
		case classifier.Strong:
			s.Strong++
		}
	}
	return s
}

// Count returns the number of results carrying the given label.
func (s Summary) Count(l classifier.Label) int {
	switch l {
	case classifier.VeryWeak:
		return s.VeryWeak
	case classifier.Weak:
		return s.Weak
	case classifier.Medium:
		return s.Medium
	case classifier.Strong:
		return s.Strong
	default:
		return 0
	}
}
