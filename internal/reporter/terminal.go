package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/passgauge/passgauge/internal/classifier"
	"github.com/passgauge/passgauge/internal/ui"
)

// TerminalReporter renders results as styled terminal output.
type TerminalReporter struct {
	w            io.Writer
	ui           *ui.UI
	showFeatures bool
}

// NewTerminalReporter creates a terminal reporter. When showFeatures
// is set, the full feature record and any model probabilities are
// printed alongside each result.
func NewTerminalReporter(w io.Writer, u *ui.UI, showFeatures bool) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u, showFeatures: showFeatures}
}

// Report renders the results. A single result gets the full card
// treatment; multiple results get one line each plus a distribution.
func (r *TerminalReporter) Report(results []classifier.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(r.w, r.ui.Styles.Subtle.Render("nothing to analyze"))
		return nil
	}
	if len(results) == 1 {
		r.printCard(results[0])
		return nil
	}
	return r.printBatch(results)
}

var labelBlurbs = map[classifier.Label]string{
	classifier.VeryWeak: "Trivially guessable. Replace it now.",
	classifier.Weak:     "Needs improvement to protect your accounts.",
	classifier.Medium:   "A good foundation, but could be stronger.",
	classifier.Strong:   "Provides strong protection against guessing attacks.",
}

func (r *TerminalReporter) printCard(res classifier.Result) {
	s := r.ui.Styles

	title := fmt.Sprintf("%s %s", s.Icon(res.Label), s.Label(res.Label).Render(strings.ToUpper(res.Label.Display())))
	body := []string{
		title,
		s.Meter(res.Label, 30),
		labelBlurbs[res.Label],
	}
	fmt.Fprintln(r.w, s.Card.Render(strings.Join(body, "\n")))

	f := res.Features
	fmt.Fprintf(r.w, "  %s %d   %s %d   %s %d   %s %d   %s %d\n",
		s.Metric.Render("length"), f.Length,
		s.Metric.Render("upper"), f.Upper,
		s.Metric.Render("lower"), f.Lower,
		s.Metric.Render("digits"), f.Digits,
		s.Metric.Render("special"), f.Special)
	fmt.Fprintf(r.w, "  %s\n", s.Subtle.Render(fmt.Sprintf("decided by %s", res.Source)))

	if r.showFeatures {
		fmt.Fprintf(r.w, "  %s\n", s.Subtle.Render(fmt.Sprintf(
			"ratios: digit %.3f  special %.3f  upper %.3f  lower %.3f  common_pattern %v",
			f.DigitRatio, f.SpecialRatio, f.UpperRatio, f.LowerRatio, f.CommonPattern)))
		if res.Probabilities != nil {
			var parts []string
			for _, l := range classifier.Labels() {
				if p, ok := res.Probabilities[l]; ok {
					parts = append(parts, fmt.Sprintf("%s %.3f", l, p))
				}
			}
			fmt.Fprintf(r.w, "  %s\n", s.Subtle.Render("model: "+strings.Join(parts, "  ")))
		}
	}
}

func (r *TerminalReporter) printBatch(results []classifier.Result) error {
	s := r.ui.Styles

	for i, res := range results {
		fmt.Fprintf(r.w, "%4d  %s %-10s %s\n",
			i+1,
			s.Icon(res.Label),
			s.Label(res.Label).Render(res.Label.Display()),
			s.Subtle.Render(fmt.Sprintf("(length %d, via %s)", res.Features.Length, res.Source)))
	}

	summary := ComputeSummary(results)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render(fmt.Sprintf("Analyzed %d passwords", summary.Total)))
	for _, l := range classifier.Labels() {
		count := summary.Count(l)
		if count == 0 {
			continue
		}
		fmt.Fprintf(r.w, "  %-10s %s %d\n",
			l.Display(),
			s.Meter(l, 20),
			count)
	}
	return nil
}
