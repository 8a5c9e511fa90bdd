package viz

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/physlab/internal/scenario"
)

func shmFactory(params map[string]float64) func() (scenario.Scenario, error) {
	reg := scenario.NewRegistry()
	return func() (scenario.Scenario, error) { return reg.Get("shm", params) }
}

func TestLive_StepsOnTick(t *testing.T) {
	m, err := NewLive(shmFactory(nil), 0.001, LiveOptions{StepsPerFrame: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	if m.Steps() != 10 {
		t.Errorf("expected 10 steps, got %d", m.Steps())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.Steps() != 10 {
		t.Errorf("expected no steps while paused, got %d", m.Steps())
	}
}

func TestLive_RunsToDoneAndRestarts(t *testing.T) {
	m, err := NewLive(shmFactory(map[string]float64{"duration": 0.05}), 0.001, LiveOptions{StepsPerFrame: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10 && !m.Done(); i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	if !m.Done() || m.Err() != nil {
		t.Fatalf("expected a clean finish, done=%t err=%v", m.Done(), m.Err())
	}
	if !strings.Contains(m.View(), "DONE") {
		t.Error("expected DONE in the view")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	if m.Done() || m.Steps() != 0 || m.Scenario().Time() != 0 {
		t.Error("expected a fresh run after restart")
	}
}

func TestLive_MaxTime(t *testing.T) {
	m, err := NewLive(shmFactory(nil), 0.01, LiveOptions{MaxTime: 0.1, StepsPerFrame: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next, _ := m.Update(TickMsg{})
	m = next.(Model)
	if !m.Done() {
		t.Error("expected the run to stop at max time")
	}
	if m.Steps() > 11 {
		t.Errorf("expected about 10 steps, got %d", m.Steps())
	}
}

func TestLive_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewLive(func() (scenario.Scenario, error) { return nil, boom }, 0, LiveOptions{})
	if !errors.Is(err, boom) {
		t.Errorf("expected factory error, got %v", err)
	}
}

// failingStep wraps a real scenario and fails its step once it has taken ok steps.
type failingStep struct {
	scenario.Scenario
	ok, taken int
}

func (f *failingStep) Step(dt float64) error {
	if f.taken == f.ok {
		return errors.New("diverged")
	}
	f.taken++
	return f.Scenario.Step(dt)
}

func TestLive_StepErrorStopsRun(t *testing.T) {
	reg := scenario.NewRegistry()
	factory := func() (scenario.Scenario, error) {
		s, err := reg.Get("shm", nil)
		if err != nil {
			return nil, err
		}
		return &failingStep{Scenario: s, ok: 3}, nil
	}

	m, err := NewLive(factory, 0.001, LiveOptions{StepsPerFrame: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next, _ := m.Update(TickMsg{})
	m = next.(Model)

	if m.Err() == nil || !m.Done() {
		t.Fatalf("expected the run to stop on the step error, done=%t err=%v", m.Done(), m.Err())
	}
	if m.Steps() != 3 {
		t.Errorf("expected 3 completed steps, got %d", m.Steps())
	}
	if !strings.Contains(m.View(), "ERROR") {
		t.Error("expected ERROR in the view")
	}
}

func TestLive_ThemeCycle(t *testing.T) {
	m, err := NewLive(shmFactory(nil), 0, LiveOptions{Theme: "ocean"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if next.(Model).theme.Name != "sunset" {
		t.Errorf("expected sunset after ocean, got %s", next.(Model).theme.Name)
	}
}

func TestApp_MenuToLive(t *testing.T) {
	a := NewApp(scenario.NewRegistry(), LiveOptions{})
	if !strings.Contains(a.View(), "projectile") {
		t.Error("expected scenarios listed")
	}

	next, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = next.(App)
	if a.state != stateConfig || len(a.params) == 0 {
		t.Fatalf("expected parameter editor, got state %d", a.state)
	}

	next, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	a = next.(App)
	if a.state != stateSim || cmd == nil {
		t.Fatalf("expected live view, got state %d err %v", a.state, a.err)
	}
	if a.live.Scenario().Name() != a.selected {
		t.Errorf("expected %s running, got %s", a.selected, a.live.Scenario().Name())
	}
}
