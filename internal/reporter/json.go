package reporter

import (
	"encoding/json"
	"io"

	"github.com/passgauge/passgauge/internal/classifier"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Results []JSONResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// JSONResult represents one classification in JSON format
type JSONResult struct {
	Label         string             `json:"label"`
	Gauge         float64            `json:"gauge"`
	Source        string             `json:"source"`
	Features      JSONFeatures       `json:"features"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
}

// JSONFeatures mirrors the feature record with stable lowercase keys
type JSONFeatures struct {
	Length        int     `json:"length"`
	Upper         int     `json:"upper"`
	Lower         int     `json:"lower"`
	Digits        int     `json:"digits"`
	Special       int     `json:"special"`
	DigitRatio    float64 `json:"digit_ratio"`
	SpecialRatio  float64 `json:"special_ratio"`
	UpperRatio    float64 `json:"upper_ratio"`
	LowerRatio    float64 `json:"lower_ratio"`
	CommonPattern bool    `json:"common_pattern"`
}

// Report outputs results as JSON
func (r *JSONReporter) Report(results []classifier.Result) error {
	output := JSONOutput{
		Results: make([]JSONResult, 0, len(results)),
		Summary: ComputeSummary(results),
	}

	for _, res := range results {
		jr := JSONResult{
			Label:  res.Label.String(),
			Gauge:  res.Label.Gauge(),
			Source: res.Source.String(),
			Features: JSONFeatures{
				Length:        res.Features.Length,
				Upper:         res.Features.Upper,
				Lower:         res.Features.Lower,
				Digits:        res.Features.Digits,
				Special:       res.Features.Special,
				DigitRatio:    res.Features.DigitRatio,
				SpecialRatio:  res.Features.SpecialRatio,
				UpperRatio:    res.Features.UpperRatio,
				LowerRatio:    res.Features.LowerRatio,
				CommonPattern: res.Features.CommonPattern,
			},
		}
		if res.Probabilities != nil {
			jr.Probabilities = make(map[string]float64, len(res.Probabilities))
			for l, p := range res.Probabilities {
				jr.Probabilities[l.String()] = p
			}
		}
		output.Results = append(output.Results, jr)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
