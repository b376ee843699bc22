package classifier

import (
	"strings"

	"github.com/passgauge/passgauge/internal/features"
	"github.com/passgauge/passgauge/internal/policy"
)

// Predictor is the statistical capability consumed by the engine: a
// fitted scaler plus a trained model. It is optional; a nil Predictor
// degrades the engine to pure-rule mode.
type Predictor interface {
	// Transform scales a raw feature vector with stored
	// normalization parameters.
	Transform(vec []float64) ([]float64, error)

	// Predict returns the model's raw prediction for a scaled
	// vector. The value's shape is not stable across artifacts.
	Predict(scaled []float64) (any, error)
}

// ProbaPredictor is implemented by predictors that can also report a
// per-class probability distribution.
type ProbaPredictor interface {
	Predictor
	PredictProba(scaled []float64) (map[string]float64, error)
}

// Result is the structured outcome of one classification.
type Result struct {
	Label    Label
	Features features.Record

	// Probabilities is non-nil only when the model path ran and the
	// predictor supports probability output.
	Probabilities map[Label]float64

	// Source names the decision stage that produced the label.
	Source Source
}

// Engine classifies passwords. It holds no mutable state between
// calls; one Engine serves arbitrarily many concurrent callers.
type Engine struct {
	policy    *policy.Policy
	extractor *features.Extractor
	predictor Predictor
	denylist  map[string]struct{}
	denyLabel Label
}

// New builds an engine for a policy. predictor may be nil, in which
// case every classification resolves through the fallback ladder.
func New(p *policy.Policy, predictor Predictor) *Engine {
	deny := make(map[string]struct{}, len(p.Denylist))
	for _, entry := range p.Denylist {
		deny[strings.ToLower(entry)] = struct{}{}
	}

	denyLabel := VeryWeak
	if strings.EqualFold(p.DenylistLabel, "weak") {
		denyLabel = Weak
	}

	return &Engine{
		policy:    p,
		extractor: features.NewExtractor(p.WeakPatterns),
		predictor: predictor,
		denylist:  deny,
		denyLabel: denyLabel,
	}
}

// HasModel reports whether a statistical predictor is attached.
func (e *Engine) HasModel() bool {
	return e.predictor != nil
}

// Policy returns the engine's policy.
func (e *Engine) Policy() *policy.Policy {
	return e.policy
}

// Classify resolves a strength label for a password. It is total:
// every string, including the empty string, yields a label. The rule
// stages run in strict order and the first match wins.
func (e *Engine) Classify(password string) Result {
	rec := e.extractor.Extract(password)
	lowered := strings.ToLower(password)

	// 1. Length short-circuit.
	if rec.Length < e.policy.MinLength {
		return Result{Label: VeryWeak, Features: rec, Source: SourceLengthRule}
	}

	// 2. Exact weak-password denylist.
	if _, denied := e.denylist[lowered]; denied {
		return Result{Label: e.denyLabel, Features: rec, Source: SourceDenylist}
	}

	// 3. Strong override: genuinely complex passwords are never
	// downgraded by classifier noise.
	if meets(rec, e.policy.StrongOverride) {
		return Result{Label: Strong, Features: rec, Source: SourceOverride}
	}

	// 4. Statistical consult. Any failure here means the model is
	// unavailable for this call, not an error for the caller.
	if e.predictor != nil {
		if label, probs, ok := e.consult(rec); ok {
			return Result{
				Label:         e.collapse(label),
				Features:      rec,
				Probabilities: e.collapseProbs(probs),
				Source:        SourceModel,
			}
		}
	}

	// 5. Deterministic fallback ladder.
	return Result{Label: e.ladder(rec, lowered), Features: rec, Source: SourceFallback}
}

func (e *Engine) consult(rec features.Record) (Label, map[Label]float64, bool) {
	scaled, err := e.predictor.Transform(rec.Vector())
	if err != nil {
		return 0, nil, false
	}
	raw, err := e.predictor.Predict(scaled)
	if err != nil || raw == nil {
		return 0, nil, false
	}
	label, ok := Normalize(raw)
	if !ok {
		return 0, nil, false
	}

	var probs map[Label]float64
	if pp, hasProba := e.predictor.(ProbaPredictor); hasProba {
		if rawProbs, err := pp.PredictProba(scaled); err == nil {
			probs = NormalizeProbs(rawProbs)
		}
	}
	return label, probs, true
}

// ladder is the guaranteed terminal stage: it labels 100% of inputs
// and cannot fail.
func (e *Engine) ladder(rec features.Record, lowered string) Label {
	cfg := e.policy.Ladder

	_, denied := e.denylist[lowered]
	if rec.Length <= cfg.VeryWeakLength || denied || rec.CommonPattern {
		return VeryWeak
	}
	if rec.Length <= cfg.WeakLength || rec.Digits == 0 || rec.Upper == 0 || rec.Special == 0 {
		return Weak
	}
	for _, bar := range cfg.StrongBars {
		if meets(rec, bar) {
			return Strong
		}
	}
	return Weak
}

func (e *Engine) collapse(label Label) Label {
	if e.policy.CollapseMedium && label == Medium {
		return Weak
	}
	return label
}

func (e *Engine) collapseProbs(probs map[Label]float64) map[Label]float64 {
	if probs == nil || !e.policy.CollapseMedium {
		return probs
	}
	if p, ok := probs[Medium]; ok {
		probs[Weak] += p
		delete(probs, Medium)
	}
	return probs
}

func meets(rec features.Record, t policy.Thresholds) bool {
	return rec.Length >= t.MinLength &&
		rec.Digits >= t.MinDigits &&
		rec.Special >= t.MinSpecial &&
		rec.Upper >= t.MinUpper &&
		rec.Lower >= t.MinLower
}
