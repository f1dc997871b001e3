package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/springlab/internal/config"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNewModel_SolvesImmediately(t *testing.T) {
	m := newTestModel(t)

	if m.solveErr != nil {
		t.Fatalf("default config should solve: %v", m.solveErr)
	}
	if len(m.targets) != 4 {
		t.Errorf("expected 4 displacement targets, got %d", len(m.targets))
	}
}

func TestModel_AdjustResolves(t *testing.T) {
	m := newTestModel(t)
	before := m.targets[0]

	m.Update(key("right")) // stiffen spring 0
	after := m.targets[0]

	if math.Abs(before-after) < 1e-12 {
		t.Error("adjusting a spring constant should change the solution")
	}
}

func TestModel_AdjustFloor(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 50; i++ {
		m.Update(key("left"))
	}
	if m.constants[0] < 0.1 {
		t.Errorf("constant dropped below floor: %v", m.constants[0])
	}
	if m.solveErr != nil {
		t.Errorf("floored constant should still solve: %v", m.solveErr)
	}
}

func TestModel_SectionSwitch(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("tab"))
	if m.section != sectionMasses {
		t.Error("tab should switch to masses")
	}
	m.Update(key("tab"))
	if m.section != sectionSprings {
		t.Error("tab should switch back to springs")
	}
}

func TestModel_AddDelete(t *testing.T) {
	m := newTestModel(t)
	n := len(m.constants)

	m.Update(key("a"))
	if len(m.constants) != n+1 {
		t.Fatalf("add: got %d constants, want %d", len(m.constants), n+1)
	}

	m.Update(key("d"))
	if len(m.constants) != n {
		t.Fatalf("delete: got %d constants, want %d", len(m.constants), n)
	}
}

func TestModel_AnchorToggleCanFail(t *testing.T) {
	m := newTestModel(t)

	// Default chain has one spare spring; deleting one and fixing the
	// bottom leaves the system under-supplied.
	m.Update(key("d"))
	m.Update(key("b"))

	if m.solveErr == nil {
		t.Error("under-supplied system should surface a solve error")
	}
	if m.View() == "" {
		t.Error("view should still render with a solve error")
	}
}

func TestSpringField_Settles(t *testing.T) {
	f := newSpringField(30, 6.0, 0.8)
	targets := []float64{1.0, -2.0}

	var pos []float64
	for i := 0; i < 600; i++ {
		pos = f.step(targets)
	}

	if !f.settled(targets) {
		t.Fatalf("field did not settle: %v", pos)
	}
	if math.Abs(pos[0]-1.0) > 1e-3 || math.Abs(pos[1]+2.0) > 1e-3 {
		t.Errorf("positions off target: %v", pos)
	}
}
