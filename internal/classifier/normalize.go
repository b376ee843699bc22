package classifier

import (
	"strconv"
	"strings"
)

// labelSynonyms maps the string labels trained models have been
// observed to emit onto canonical labels.
var labelSynonyms = map[string]Label{
	"veryweak":  VeryWeak,
	"terrible":  VeryWeak,
	"critical":  VeryWeak,
	"weak":      Weak,
	"poor":      Weak,
	"bad":       Weak,
	"low":       Weak,
	"medium":    Medium,
	"moderate":  Medium,
	"average":   Medium,
	"fair":      Medium,
	"ok":        Medium,
	"okay":      Medium,
	"strong":    Strong,
	"good":      Strong,
	"high":      Strong,
	"excellent": Strong,
}

// Normalize resolves a raw model prediction into a canonical label.
// Trained artifacts disagree about what a prediction looks like: some
// emit string class names, some 0/1/2 ordinals, some a continuous
// score. Any string or numeric value resolves to a label, with Weak as
// the documented default for unrecognized values. The boolean is false
// only for values no mapping applies to at all (nil, or a type that is
// neither string nor numeric); callers treat that as "no prediction".
func Normalize(raw any) (Label, bool) {
	switch v := raw.(type) {
	case string:
		return normalizeName(v), true
	case int:
		return ordinalLabel(v), true
	case int32:
		return ordinalLabel(int(v)), true
	case int64:
		return ordinalLabel(int(v)), true
	case float32:
		return scoreLabel(float64(v)), true
	case float64:
		return scoreLabel(v), true
	default:
		return Weak, false
	}
}

func normalizeName(s string) Label {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)

	if label, ok := labelSynonyms[key]; ok {
		return label
	}
	// Some artifacts serialize numeric predictions as strings.
	if n, err := strconv.Atoi(key); err == nil {
		return ordinalLabel(n)
	}
	if f, err := strconv.ParseFloat(key, 64); err == nil {
		return scoreLabel(f)
	}
	return Weak
}

// ordinalLabel maps the 0/1/2 class indices of a three-class model.
func ordinalLabel(n int) Label {
	switch n {
	case 0:
		return Weak
	case 1:
		return Medium
	case 2:
		return Strong
	default:
		return Weak
	}
}

// scoreLabel buckets a continuous score. Integral values in the
// ordinal range are class indices, not scores.
func scoreLabel(f float64) Label {
	if f == float64(int(f)) && f >= 0 && f <= 2 {
		return ordinalLabel(int(f))
	}
	switch {
	case f <= 0.33:
		return VeryWeak
	case f <= 0.66:
		return Weak
	default:
		return Strong
	}
}

// NormalizeProbs relabels a per-class probability map through the same
// mapping as Normalize, merging synonym classes and renormalizing so
// the result sums to one. Returns nil when nothing usable remains.
func NormalizeProbs(raw map[string]float64) map[Label]float64 {
	if len(raw) == 0 {
		return nil
	}

	probs := make(map[Label]float64)
	var sum float64
	for class, p := range raw {
		if p < 0 {
			continue
		}
		probs[normalizeName(class)] += p
		sum += p
	}
	if sum <= 0 {
		return nil
	}
	for label := range probs {
		probs[label] /= sum
	}
	return probs
}
