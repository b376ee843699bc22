package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/passgauge/passgauge/internal/classifier"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Per-label styles
	VeryWeak lipgloss.Style
	Weak     lipgloss.Style
	Medium   lipgloss.Style
	Strong   lipgloss.Style

	// Structural styles
	Header  lipgloss.Style
	Subtle  lipgloss.Style
	Card    lipgloss.Style
	Metric  lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconVeryWeak string
	IconWeak     string
	IconMedium   string
	IconStrong   string
	IconWarning  string
}

// NewStyles creates a Styles instance. When enabled is false, styles
// return text unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.VeryWeak = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // Red
		s.Weak = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)   // Orange
		s.Medium = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)  // Yellow
		s.Strong = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)  // Green

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Card = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			BorderForeground(lipgloss.Color("8"))
		s.Metric = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

		s.IconVeryWeak = "\U0001f534" // red circle
		s.IconWeak = "\U0001f7e0"     // orange circle
		s.IconMedium = "\U0001f7e1"   // yellow circle
		s.IconStrong = "\U0001f7e2"   // green circle
		s.IconWarning = "⚠"
	} else {
		s.VeryWeak = lipgloss.NewStyle()
		s.Weak = lipgloss.NewStyle()
		s.Medium = lipgloss.NewStyle()
		s.Strong = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subtle = lipgloss.NewStyle()
		s.Card = lipgloss.NewStyle()
		s.Metric = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.IconVeryWeak = "[--]"
		s.IconWeak = "[- ]"
		s.IconMedium = "[+ ]"
		s.IconStrong = "[++]"
		s.IconWarning = "WARN:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Label returns the style for a strength label.
func (s *Styles) Label(l classifier.Label) lipgloss.Style {
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
		return s.Subtle
	}
}

// Icon returns the icon for a strength label.
func (s *Styles) Icon(l classifier.Label) string {
	switch l {
	case classifier.VeryWeak:
		return s.IconVeryWeak
	case classifier.Weak:
		return s.IconWeak
	case classifier.Medium:
		return s.IconMedium
	case classifier.Strong:
		return s.IconStrong
	default:
		return ""
	}
}

// Meter renders a fixed-width strength bar filled to frac, colored by
// the label. Plain mode renders ASCII.
func (s *Styles) Meter(l classifier.Label, width int) string {
	if width < 4 {
		width = 4
	}
	frac := l.Gauge()
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}

	if !s.enabled {
		return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
	}
	bar := s.Label(l).Render(strings.Repeat("█", filled))
	rest := s.Subtle.Render(strings.Repeat("░", width-filled))
	return bar + rest
}
