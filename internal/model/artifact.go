// Package model consumes a trained classifier artifact as an opaque
// capability: a fitted scaler paired with a linear multi-class model,
// both decoded from a JSON document produced by an offline training
// pipeline. The package never trains anything; it only evaluates.
//
// Artifacts are loaded once at startup and are read-only afterwards,
// so a single Artifact is safe for concurrent use.
package model

import (
	"fmt"
	"math"

	"github.com/passgauge/passgauge/internal/features"
)

// Artifact pairs a fitted scaler with a trained classification model.
type Artifact struct {
	Scaler *Scaler `json:"scaler"`
	Model  *Linear `json:"model"`
}

// Scaler holds per-feature normalization parameters in a fixed
// feature order.
type Scaler struct {
	Features []string  `json:"features"`
	Center   []float64 `json:"center"`
	Scale    []float64 `json:"scale"`
}

// Linear is a multi-class linear model: one weight row and intercept
// per class, scores converted to probabilities by softmax.
type Linear struct {
	Classes    []string    `json:"classes"`
	Weights    [][]float64 `json:"weights"`
	Intercepts []float64   `json:"intercepts"`
}

// Validate checks internal consistency and that the scaler's feature
// order matches the extractor's record schema.
func (a *Artifact) Validate() error {
	if a.Scaler == nil || a.Model == nil {
		return fmt.Errorf("artifact missing scaler or model")
	}

	n := len(a.Scaler.Features)
	if len(a.Scaler.Center) != n || len(a.Scaler.Scale) != n {
		return fmt.Errorf("scaler parameter lengths disagree: %d features, %d center, %d scale",
			n, len(a.Scaler.Center), len(a.Scaler.Scale))
	}

	want := features.Names()
	if n != len(want) {
		return fmt.Errorf("scaler has %d features, extractor produces %d", n, len(want))
	}
	for i, name := range a.Scaler.Features {
		if name != want[i] {
			return fmt.Errorf("scaler feature %d is %q, extractor produces %q", i, name, want[i])
		}
	}

	if len(a.Model.Classes) == 0 {
		return fmt.Errorf("model declares no classes")
	}
	if len(a.Model.Weights) != len(a.Model.Classes) {
		return fmt.Errorf("model has %d weight rows for %d classes",
			len(a.Model.Weights), len(a.Model.Classes))
	}
	if len(a.Model.Intercepts) != len(a.Model.Classes) {
		return fmt.Errorf("model has %d intercepts for %d classes",
			len(a.Model.Intercepts), len(a.Model.Classes))
	}
	for i, row := range a.Model.Weights {
		if len(row) != n {
			return fmt.Errorf("weight row %d has %d entries, want %d", i, len(row), n)
		}
	}
	return nil
}

// Transform scales a raw feature vector with the stored normalization
// parameters.
func (a *Artifact) Transform(vec []float64) ([]float64, error) {
	s := a.Scaler
	if len(vec) != len(s.Center) {
		return nil, fmt.Errorf("feature vector has %d entries, scaler expects %d", len(vec), len(s.Center))
	}
	out := make([]float64, len(vec))
	for i, v := range vec {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Center[i]) / scale
	}
	return out, nil
}

// Predict returns the raw model output for a scaled vector. The shape
// of the value is not guaranteed stable across artifacts; callers must
// normalize it before use.
func (a *Artifact) Predict(scaled []float64) (any, error) {
	scores, err := a.Model.scores(scaled)
	if err != nil {
		return nil, err
	}
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return a.Model.Classes[best], nil
}

// PredictProba returns a probability per class name via softmax.
func (a *Artifact) PredictProba(scaled []float64) (map[string]float64, error) {
	scores, err := a.Model.scores(scaled)
	if err != nil {
		return nil, err
	}

	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	var sum float64
	exps := make([]float64, len(scores))
	for i, s := range scores {
		exps[i] = math.Exp(s - max)
		sum += exps[i]
	}

	probs := make(map[string]float64, len(scores))
	for i, class := range a.Model.Classes {
		probs[class] = exps[i] / sum
	}
	return probs, nil
}

func (m *Linear) scores(vec []float64) ([]float64, error) {
	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("model has no weights")
	}
	if len(vec) != len(m.Weights[0]) {
		return nil, fmt.Errorf("vector has %d entries, model expects %d", len(vec), len(m.Weights[0]))
	}
	scores := make([]float64, len(m.Weights))
	for i, row := range m.Weights {
		s := m.Intercepts[i]
		for j, w := range row {
			s += w * vec[j]
		}
		scores[i] = s
	}
	return scores, nil
}
