package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/twucrit/internal/twu"
	"github.com/san-kum/twucrit/internal/units"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func newTestModel() Model {
	return NewModel(twu.NewEstimator(), twu.Component{BoilingTemperature: 919.34, SpecificGravity: 1.097}, units.Rankine)
}

func TestModel_AdjustBoilingPoint(t *testing.T) {
	m := newTestModel()
	tc0 := m.result.Corrected.CriticalTemperature

	m = send(m, "up", "k")
	if got := m.Component().BoilingTemperature; math.Abs(got-929.34) > 1e-9 {
		t.Errorf("expected tb 929.34, got %g", got)
	}
	if m.result.Corrected.CriticalTemperature <= tc0 {
		t.Error("tc should rise with tb")
	}
	if len(m.history) != 3 {
		t.Errorf("expected 3 history entries, got %d", len(m.history))
	}
}

func TestModel_AdjustGravity(t *testing.T) {
	m := send(newTestModel(), "tab", "J")
	if got := m.Component().SpecificGravity; got < 1.0469 || got > 1.0471 {
		t.Errorf("expected sg 1.047, got %g", got)
	}
	if m.Component().BoilingTemperature != 919.34 {
		t.Error("tb should not change")
	}
}

func TestModel_RejectsNonPositive(t *testing.T) {
	m := NewModel(twu.NewEstimator(), twu.Component{BoilingTemperature: 919.34, SpecificGravity: 0.004}, units.Rankine)
	m = send(m, "tab", "down")
	if got := m.Component().SpecificGravity; got != 0.004 {
		t.Errorf("sg should stay positive, got %g", got)
	}
}

func TestModel_Reset(t *testing.T) {
	m := send(newTestModel(), "K", "K", "r")
	if m.Component().BoilingTemperature != 919.34 {
		t.Errorf("expected reset tb, got %g", m.Component().BoilingTemperature)
	}
	if len(m.history) != 1 {
		t.Errorf("expected fresh history, got %d entries", len(m.history))
	}
}

func TestModel_ShowsErrors(t *testing.T) {
	m := NewModel(twu.NewEstimator(), twu.Component{BoilingTemperature: 100, SpecificGravity: 0.8}, units.Rankine)
	if _, err := m.Result(); err == nil {
		t.Fatal("expected an estimate error")
	}
	if !strings.Contains(m.View(), twu.StageAlkanePressure) {
		t.Error("view should name the failed stage")
	}
}

func TestModel_View(t *testing.T) {
	m := send(newTestModel(), "u", "p")
	view := m.View()

	for _, w := range []string{"510.74 K", "Critical volume", "q quit"} {
		if !strings.Contains(view, w) {
			t.Errorf("view missing %q", w)
		}
	}
}

func TestModel_Quit(t *testing.T) {
	_, cmd := newTestModel().Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModel_HistoryCapacity(t *testing.T) {
	m := newTestModel()
	for i := 0; i < historyCapacity+10; i++ {
		m = send(m, "up")
	}
	if len(m.history) != historyCapacity {
		t.Errorf("expected %d entries, got %d", historyCapacity, len(m.history))
	}
}
