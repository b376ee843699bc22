package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/passgauge/passgauge/internal/classifier"
)

// MeterModel is the Bubbletea model for the live strength meter. The
// candidate password lives only in the text input; nothing is written
// anywhere.
type MeterModel struct {
	engine   *classifier.Engine
	styles   *Styles
	input    textinput.Model
	progress progress.Model

	result       classifier.Result
	showFeatures bool
	masked       bool
	width        int
	quitting     bool
}

// NewMeterModel creates the live meter for an engine.
func NewMeterModel(engine *classifier.Engine, styles *Styles) MeterModel {
	ti := textinput.New()
	ti.Placeholder = "Type a password..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()

	p := progress.New(progress.WithGradient("#ff5f5f", "#5fd75f"))

	return MeterModel{
		engine:   engine,
		styles:   styles,
		input:    ti,
		progress: p,
		result:   engine.Classify(""),
		masked:   true,
	}
}

// Init initializes the model
func (m MeterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m MeterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.showFeatures = !m.showFeatures
			return m, nil
		case "ctrl+r":
			m.masked = !m.masked
			if m.masked {
				m.input.EchoMode = textinput.EchoPassword
			} else {
				m.input.EchoMode = textinput.EchoNormal
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 50 {
			m.progress.Width = 50
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.result = m.engine.Classify(m.input.Value())
	return m, cmd
}

// View renders the model
func (m MeterModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("Password strength meter"))
	sb.WriteString(m.styles.Subtle.Render("  (enter: done, tab: features, ctrl+r: reveal)"))
	sb.WriteString("\n\n")

	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	res := m.result
	sb.WriteString(m.progress.ViewAs(res.Label.Gauge()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s", m.styles.Icon(res.Label),
		m.styles.Label(res.Label).Render(res.Label.Display())))
	sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  via %s", res.Source)))
	sb.WriteString("\n\n")

	f := res.Features
	sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf(
		"length %d  upper %d  lower %d  digits %d  special %d",
		f.Length, f.Upper, f.Lower, f.Digits, f.Special)))
	sb.WriteString("\n")

	if m.showFeatures {
		sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf(
			"ratios: digit %.2f  special %.2f  upper %.2f  lower %.2f  pattern %v",
			f.DigitRatio, f.SpecialRatio, f.UpperRatio, f.LowerRatio, f.CommonPattern)))
		sb.WriteString("\n")
		if res.Probabilities != nil {
			var parts []string
			for _, l := range classifier.Labels() {
				if p, ok := res.Probabilities[l]; ok {
					parts = append(parts, fmt.Sprintf("%s %.2f", l, p))
				}
			}
			sb.WriteString(m.styles.Subtle.Render("model: " + strings.Join(parts, "  ")))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Result returns the classification of the final input.
func (m MeterModel) Result() classifier.Result {
	return m.result
}
