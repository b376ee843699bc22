package classifier

import (
	"math"
	"testing"
)

func TestNormalizeStrings(t *testing.T) {
	tests := []struct {
		raw  string
		want Label
	}{
		{"weak", Weak},
		{"Weak", Weak},
		{"  STRONG  ", Strong},
		{"moderate", Medium},
		{"Medium", Medium},
		{"good", Strong},
		{"very_weak", VeryWeak},
		{"Very Weak", VeryWeak},
		{"very-weak", VeryWeak},
		{"poor", Weak},
		{"excellent", Strong},
		{"2", Strong},
		{"0", Weak},
		{"0.9", Strong},
		{"totally-novel-class", Weak}, // documented safe default
		{"", Weak},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.raw)
		if !ok {
			t.Errorf("Normalize(%q) not resolved", tt.raw)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeNumeric(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Label
	}{
		{"ordinal 0", 0, Weak},
		{"ordinal 1", 1, Medium},
		{"ordinal 2", 2, Strong},
		{"ordinal out of range", 17, Weak},
		{"int64 ordinal", int64(2), Strong},
		{"integral float is ordinal", 1.0, Medium},
		{"low score", 0.21, VeryWeak},
		{"boundary 0.33", 0.33, VeryWeak},
		{"mid score", 0.5, Weak},
		{"boundary 0.66", 0.66, Weak},
		{"high score", 0.67, Strong},
		{"float32 score", float32(0.9), Strong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.raw)
			if !ok {
				t.Fatalf("Normalize(%v) not resolved", tt.raw)
			}
			if got != tt.want {
				t.Errorf("Normalize(%v) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeUnusable(t *testing.T) {
	for _, raw := range []any{nil, struct{}{}, []string{"weak"}, map[string]int{}} {
		if _, ok := Normalize(raw); ok {
			t.Errorf("Normalize(%#v) resolved, want unusable", raw)
		}
	}
}

func TestNormalizeProbs(t *testing.T) {
	probs := NormalizeProbs(map[string]float64{
		"Weak":     0.2,
		"moderate": 0.3,
		"strong":   0.5,
	})
	if probs == nil {
		t.Fatal("NormalizeProbs returned nil")
	}
	if probs[Medium] != 0.3 {
		t.Errorf("moderate not relabeled to medium: %v", probs)
	}
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %f, want 1", sum)
	}
}

func TestNormalizeProbsMergesSynonyms(t *testing.T) {
	probs := NormalizeProbs(map[string]float64{
		"weak": 0.3,
		"poor": 0.3,
		"good": 0.4,
	})
	if math.Abs(probs[Weak]-0.6) > 1e-9 {
		t.Errorf("probs[Weak] = %f, want 0.6", probs[Weak])
	}
	if math.Abs(probs[Strong]-0.4) > 1e-9 {
		t.Errorf("probs[Strong] = %f, want 0.4", probs[Strong])
	}
}

func TestNormalizeProbsRenormalizes(t *testing.T) {
	probs := NormalizeProbs(map[string]float64{"weak": 2, "strong": 2})
	if math.Abs(probs[Weak]-0.5) > 1e-9 || math.Abs(probs[Strong]-0.5) > 1e-9 {
		t.Errorf("unnormalized input not rescaled: %v", probs)
	}
}

func TestNormalizeProbsEmpty(t *testing.T) {
	if NormalizeProbs(nil) != nil {
		t.Error("NormalizeProbs(nil) != nil")
	}
	if NormalizeProbs(map[string]float64{"weak": -1}) != nil {
		t.Error("all-negative input should yield nil")
	}
}
