// Package classifier implements the strength-decision engine: ordered
// rule overrides around an optional statistical predictor, with a
// deterministic fallback ladder that labels every input.
package classifier

// Label is an ordered strength category, weakest first.
type Label int

const (
	VeryWeak Label = iota
	Weak
	Medium
	Strong
)

func (l Label) String() string {
	switch l {
	case VeryWeak:
		return "very_weak"
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// Display returns the label formatted for human-facing output.
func (l Label) Display() string {
	switch l {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// Gauge maps the label onto [0,1] for progress-bar scaling.
func (l Label) Gauge() float64 {
	switch l {
	case VeryWeak:
		return 0.15
	case Weak:
		return 0.4
	case Medium:
		return 0.7
	case Strong:
		return 1.0
	default:
		return 0
	}
}

// Labels returns all labels in order, weakest first.
func Labels() []Label {
	return []Label{VeryWeak, Weak, Medium, Strong}
}

// Source identifies which stage of the decision policy produced a label.
type Source int

const (
	SourceLengthRule Source = iota
	SourceDenylist
	SourceOverride
	SourceModel
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceLengthRule:
		return "length_rule"
	case SourceDenylist:
		return "denylist"
	case SourceOverride:
		return "strong_override"
	case SourceModel:
		return "model"
	case SourceFallback:
		return "fallback_rules"
	default:
		return "unknown"
	}
}
