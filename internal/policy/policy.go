// Package policy holds the named threshold sets that drive the strength
// engine. Policies are data, not code: every cutoff, denylist entry and
// weak substring lives in an embedded YAML document.
package policy

// Policy is a complete, frozen threshold configuration.
type Policy struct {
	// Name is the identifier for this policy (e.g. "default", "strict")
	Name string `yaml:"name"`

	// Description is a short human-readable summary
	Description string `yaml:"description"`

	// MinLength is the hard floor: passwords shorter than this are
	// very weak before any other check runs
	MinLength int `yaml:"min_length"`

	// Denylist holds known breached/common passwords, matched exactly
	// against the lowercased input
	Denylist []string `yaml:"denylist"`

	// DenylistLabel is the label assigned on an exact denylist hit
	// ("very_weak" or "weak")
	DenylistLabel string `yaml:"denylist_label"`

	// WeakPatterns are substrings that set the common_pattern feature
	WeakPatterns []string `yaml:"weak_patterns"`

	// StrongOverride is the composition bar that bypasses the model
	StrongOverride Thresholds `yaml:"strong_override"`

	// Ladder configures the deterministic fallback rules
	Ladder Ladder `yaml:"ladder"`

	// CollapseMedium folds the medium label into weak (3-label scheme)
	CollapseMedium bool `yaml:"collapse_medium"`
}

// Thresholds is a composition bar. A record meets the bar when every
// count is at or above its minimum.
type Thresholds struct {
	MinLength  int `yaml:"min_length"`
	MinDigits  int `yaml:"min_digits"`
	MinSpecial int `yaml:"min_special"`
	MinUpper   int `yaml:"min_upper"`
	MinLower   int `yaml:"min_lower"`
}

// Ladder configures the rule sequence used when no statistical
// prediction is available. It labels every possible input.
type Ladder struct {
	// VeryWeakLength: at or below this length the ladder says very weak
	VeryWeakLength int `yaml:"very_weak_length"`

	// WeakLength: at or below this length the ladder says weak
	WeakLength int `yaml:"weak_length"`

	// StrongBars: meeting any bar yields strong; otherwise weak
	StrongBars []Thresholds `yaml:"strong_bars"`
}
