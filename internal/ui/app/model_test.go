package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	ritualdto "genie/internal/modules/ritual/dto"
	ritualview "genie/internal/ui/views/ritual"
)

type stubPort struct{ view ritualdto.RitualView }

func (s stubPort) Observe(context.Context) (ritualdto.RitualView, error) { return s.view, nil }
func (s stubPort) Continue(context.Context) (ritualdto.RitualView, error) { return s.view, nil }
func (s stubPort) Next(context.Context) (ritualdto.RitualView, error) { return s.view, nil }
func (s stubPort) Back(context.Context) (ritualdto.RitualView, error) { return s.view, nil }
func (s stubPort) Submit(context.Context, string, int) (ritualdto.RitualView, error) {
	return s.view, nil
}

func load(t *testing.T, view ritualdto.RitualView) Model {
	t.Helper()
	m := NewModel(stubPort{view: view}, ritualview.Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	next, _ = next.Update(ritualview.LoadedMsg{View: view})
	return next.(Model)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestQuitKey(t *testing.T) {
	t.Parallel()
	m := load(t, ritualdto.RitualView{DayKey: "2026-03-14", Stage: "shock"})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !isQuit(cmd) {
		t.Fatalf("q should quit outside the check-in form")
	}
}

func TestCheckInFormSwallowsQuitKey(t *testing.T) {
	t.Parallel()
	m := load(t, ritualdto.RitualView{
		DayKey:    "2026-03-14",
		Stage:     "exercise",
		StepIndex: 2,
		StepCount: 2,
		InCheckIn: true,
		Exercise:  ritualdto.ExerciseOutput{Title: "Orienting", Steps: []string{"a", "b"}},
	})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if isQuit(cmd) {
		t.Fatalf("q must be typed into the check-in, not quit")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatalf("ctrl+c always quits")
	}
}

func TestHelpToggles(t *testing.T) {
	t.Parallel()
	m := load(t, ritualdto.RitualView{DayKey: "2026-03-14", Stage: "shock"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !next.(Model).showHelp {
		t.Fatalf("expected help overlay")
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).showHelp {
		t.Fatalf("esc should close help")
	}
}
