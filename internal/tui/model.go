package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/twucrit/internal/analysis"
	"github.com/san-kum/twucrit/internal/report"
	"github.com/san-kum/twucrit/internal/twu"
	"github.com/san-kum/twucrit/internal/units"
)

const (
	historyCapacity = 60
	sweepPoints     = 40
	sweepSpan       = 0.2
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	sidebar = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

var unitCycle = []units.Temperature{units.Rankine, units.Kelvin, units.Celsius, units.Fahrenheit}

type field struct {
	name      string
	value     float64
	step      float64
	coarse    float64
	precision int
}

// Model is an interactive estimator: the arrow keys move Tb or SG and the
// estimate, its history and a local sweep update on every change.
type Model struct {
	est      *twu.Estimator
	fields   []field
	initial  twu.Component
	selected int
	unit     int
	property int

	result  twu.Result
	err     error
	history []float64
	xs, ys  []float64

	width, height int
}

func NewModel(est *twu.Estimator, c twu.Component, unit units.Temperature) Model {
	m := Model{
		est: est,
		fields: []field{
			{name: "Tb", value: c.BoilingTemperature, step: 5, coarse: 50, precision: 2},
			{name: "SG", value: c.SpecificGravity, step: 0.005, coarse: 0.05, precision: 4},
		},
		initial: c,
		history: make([]float64, 0, historyCapacity),
		width:   100,
		height:  30,
	}
	for i, u := range unitCycle {
		if u == unit {
			m.unit = i
		}
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Component() twu.Component {
	return twu.Component{BoilingTemperature: m.fields[0].value, SpecificGravity: m.fields[1].value}
}

func (m Model) Result() (twu.Result, error) { return m.result, m.err }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(m.fields)
		case "up", "k":
			m.adjust(m.fields[m.selected].step)
		case "down", "j":
			m.adjust(-m.fields[m.selected].step)
		case "K", "pgup":
			m.adjust(m.fields[m.selected].coarse)
		case "J", "pgdown":
			m.adjust(-m.fields[m.selected].coarse)
		case "u":
			m.unit = (m.unit + 1) % len(unitCycle)
		case "p":
			m.property = (m.property + 1) % len(analysis.Properties)
			m.sweep()
		case "r":
			m.fields[0].value = m.initial.BoilingTemperature
			m.fields[1].value = m.initial.SpecificGravity
			m.history = m.history[:0]
			m.recompute()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *Model) adjust(delta float64) {
	f := &m.fields[m.selected]
	if f.value+delta <= 0 {
		return
	}
	f.value += delta
	m.recompute()
}

func (m *Model) recompute() {
	m.result, m.err = m.est.Estimate(m.Component())
	if m.err == nil {
		if len(m.history) == historyCapacity {
			m.history = m.history[1:]
		}
		m.history = append(m.history, m.result.Corrected.CriticalTemperature)
	}
	m.sweep()
}

// sweep refreshes the plot of the selected property over Tb ± 20 %.
func (m *Model) sweep() {
	c := m.Component()
	points, err := analysis.Sweep(context.Background(), m.est, c.SpecificGravity,
		c.BoilingTemperature*(1-sweepSpan), c.BoilingTemperature*(1+sweepSpan), sweepPoints)
	if err != nil {
		m.xs, m.ys = nil, nil
		return
	}
	m.xs, m.ys = analysis.Series(points, analysis.Properties[m.property])
}

func (m Model) View() string {
	u := unitCycle[m.unit]

	var left strings.Builder
	left.WriteString(cyan.Render("twucrit") + dim.Render(" · interactive") + "\n\n")
	for i, f := range m.fields {
		v := fmt.Sprintf("%.*f", f.precision, f.value)
		if f.name == "Tb" {
			v = report.Temperature(f.value, u)
		}
		label := fmt.Sprintf("%-4s %s", f.name, v)
		if i == m.selected {
			left.WriteString(magenta.Render("▸ "+label) + "\n")
		} else {
			left.WriteString(dim.Render("  "+label) + "\n")
		}
	}
	left.WriteString("\n")

	if m.err != nil {
		left.WriteString(report.Error(m.err) + "\n")
	} else {
		left.WriteString(report.Estimate("", m.result, u) + "\n")
	}

	var right strings.Builder
	right.WriteString(cyan.Render("Tc history") + "\n")
	right.WriteString(report.Sparkline(m.history, 30) + "\n\n")
	right.WriteString(report.Plot(m.xs, m.ys, analysis.Properties[m.property], 40, 10) + "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), sidebar.Render(right.String()))
	help := report.KeyHint.Render("↑/↓ adjust · J/K coarse · tab field · p property · u unit · r reset · q quit")
	return body + "\n" + help
}

// Run starts the interactive screen and returns the last estimate shown.
func Run(est *twu.Estimator, c twu.Component, unit units.Temperature) (twu.Result, error) {
	final, err := tea.NewProgram(NewModel(est, c, unit), tea.WithAltScreen()).Run()
	if err != nil {
		return twu.Result{}, err
	}
	return final.(Model).Result()
}
