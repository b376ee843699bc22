package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/passgauge/passgauge/internal/classifier"
	"github.com/passgauge/passgauge/internal/features"
	"github.com/passgauge/passgauge/internal/ui"
)

func sampleResults() []classifier.Result {
	e := features.NewExtractor([]string{"123"})
	return []classifier.Result{
		{Label: classifier.VeryWeak, Features: e.Extract("ab1"), Source: classifier.SourceLengthRule},
		{Label: classifier.Strong, Features: e.Extract("Tr0ub4dor&3xyz"), Source: classifier.SourceOverride},
		{
			Label:         classifier.Medium,
			Features:      e.Extract("hellothere"),
			Source:        classifier.SourceModel,
			Probabilities: map[classifier.Label]float64{classifier.Weak: 0.3, classifier.Medium: 0.5, classifier.Strong: 0.2},
		},
	}
}

func TestComputeSummary(t *testing.T) {
	s := ComputeSummary(sampleResults())
	if s.Total != 3 || s.VeryWeak != 1 || s.Medium != 1 || s.Strong != 1 || s.Weak != 0 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if s.Count(classifier.Medium) != 1 {
		t.Errorf("Count(Medium) = %d, want 1", s.Count(classifier.Medium))
	}
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(sampleResults()); err != nil {
		t.Fatal(err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(out.Results))
	}
	if out.Results[0].Label != "very_weak" || out.Results[0].Source != "length_rule" {
		t.Errorf("unexpected first result: %+v", out.Results[0])
	}
	if out.Results[0].Probabilities != nil {
		t.Error("rule result should omit probabilities")
	}
	if out.Results[2].Probabilities["medium"] != 0.5 {
		t.Errorf("probabilities not serialized: %+v", out.Results[2].Probabilities)
	}
	if out.Summary.Total != 3 {
		t.Errorf("summary total = %d, want 3", out.Summary.Total)
	}

	// The report must never contain the password itself.
	if strings.Contains(buf.String(), "Tr0ub4dor") {
		t.Error("report leaked a raw password")
	}
}

func TestTerminalReportSingle(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal")

	res := sampleResults()[1:2]
	if err := NewTerminalReporter(&buf, u, false).Report(res); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "STRONG") {
		t.Errorf("missing label in output:\n%s", out)
	}
	if !strings.Contains(out, "length") {
		t.Errorf("missing composition metrics:\n%s", out)
	}
	if strings.Contains(out, "Tr0ub4dor") {
		t.Error("report leaked a raw password")
	}
}

func TestTerminalReportShowsFeatures(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal")

	if err := NewTerminalReporter(&buf, u, true).Report(sampleResults()[2:3]); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "common_pattern") {
		t.Errorf("feature panel missing:\n%s", out)
	}
	if !strings.Contains(out, "model:") {
		t.Errorf("probability panel missing:\n%s", out)
	}
}

func TestTerminalReportBatch(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal")

	if err := NewTerminalReporter(&buf, u, false).Report(sampleResults()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Analyzed 3 passwords") {
		t.Errorf("missing batch summary:\n%s", out)
	}
}

func TestTerminalReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal")
	if err := NewTerminalReporter(&buf, u, false).Report(nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "nothing to analyze") {
		t.Errorf("unexpected empty-run output: %s", buf.String())
	}
}
