package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/springlab/internal/chain"
	"github.com/san-kum/springlab/internal/config"
	"github.com/san-kum/springlab/internal/solve"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type section int

const (
	sectionSprings section = iota
	sectionMasses
)

// Model is an interactive chain editor: adjust spring constants and
// masses, watch the solved displacements settle.
type Model struct {
	constants []float64
	masses    []float64
	fixTop    bool
	fixBottom bool
	gravity   float64

	section section
	cursor  int

	sol      *solve.Solution
	solveErr error
	targets  []float64
	field    springField
	shown    []float64

	width  int
	height int
}

func NewModel(cfg *config.Config) (*Model, error) {
	constants, err := chain.ParseFloats(cfg.SpringConstants)
	if err != nil {
		return nil, err
	}
	masses, err := chain.ParseFloats(cfg.Masses)
	if err != nil {
		return nil, err
	}

	m := &Model{
		constants: constants,
		masses:    masses,
		fixTop:    cfg.FixTop,
		fixBottom: cfg.FixBottom,
		gravity:   cfg.Gravity,
		field:     newSpringField(30, 6.0, 0.8),
		width:     80,
		height:    24,
	}
	m.resolve()
	return m, nil
}

// Run starts the interactive editor.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) resolve() {
	ch, err := chain.New(m.constants, m.masses, m.fixTop, m.fixBottom)
	if err != nil {
		m.sol = nil
		m.solveErr = err
		m.targets = nil
		return
	}
	sol, err := solve.Solve(ch, solve.Options{Gravity: m.gravity})
	if err != nil {
		m.sol = nil
		m.solveErr = err
		m.targets = nil
		return
	}
	m.sol = sol
	m.solveErr = nil
	m.targets = make([]float64, sol.Displacements.Len())
	for i := range m.targets {
		m.targets[i] = sol.Displacements.AtVec(i)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.targets != nil {
			m.shown = m.field.step(m.targets)
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) current() []float64 {
	if m.section == sectionSprings {
		return m.constants
	}
	return m.masses
}

func (m *Model) clampCursor() {
	if n := len(m.current()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.current())-1 {
			m.cursor++
		}
	case "tab":
		if m.section == sectionSprings {
			m.section = sectionMasses
		} else {
			m.section = sectionSprings
		}
		m.clampCursor()
	case "left", "h":
		m.adjust(-0.1)
	case "right", "l":
		m.adjust(0.1)
	case "shift+left", "H":
		m.adjust(-1.0)
	case "shift+right", "L":
		m.adjust(1.0)
	case "a":
		vals := m.current()
		m.setCurrent(append(vals, vals[len(vals)-1]))
		m.cursor = len(m.current()) - 1
		m.resolve()
	case "d":
		vals := m.current()
		if len(vals) > 1 {
			m.setCurrent(append(vals[:m.cursor], vals[m.cursor+1:]...))
			m.clampCursor()
			m.resolve()
		}
	case "t":
		m.fixTop = !m.fixTop
		m.resolve()
	case "b":
		m.fixBottom = !m.fixBottom
		m.resolve()
	}
	return m, nil
}

func (m *Model) setCurrent(vals []float64) {
	if m.section == sectionSprings {
		m.constants = vals
	} else {
		m.masses = vals
	}
}

func (m *Model) adjust(delta float64) {
	vals := m.current()
	v := vals[m.cursor] + delta
	if v < 0.1 {
		v = 0.1
	}
	vals[m.cursor] = v
	m.resolve()
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(white.Render("springlab") + dim.Render("  spring-mass chain editor") + "\n\n")

	b.WriteString(m.viewSection(sectionSprings, "spring constants", m.constants))
	b.WriteString("\n")
	b.WriteString(m.viewSection(sectionMasses, "masses", m.masses))
	b.WriteString("\n")

	anchors := fmt.Sprintf("fixed: top=%v bottom=%v", m.fixTop, m.fixBottom)
	b.WriteString(dim.Render(anchors) + "\n\n")

	if m.solveErr != nil {
		b.WriteString(red.Render("✗ "+m.solveErr.Error()) + "\n")
	} else if m.sol != nil {
		b.WriteString(m.viewSolution())
	}

	b.WriteString("\n" + dim.Render("tab section · ←/→ adjust · a add · d delete · t/b anchors · q quit"))
	return b.String()
}

func (m *Model) viewSection(s section, title string, vals []float64) string {
	var b strings.Builder
	style := dim
	if m.section == s {
		style = yellow
	}
	b.WriteString(style.Render(title) + "\n")
	for i, v := range vals {
		marker := "  "
		if m.section == s && i == m.cursor {
			marker = cyan.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%2d: %.2f\n", marker, i, v))
	}
	return b.String()
}

func (m *Model) viewSolution() string {
	var b strings.Builder

	b.WriteString(white.Render("displacements") + "\n")

	maxAbs := 0.0
	for _, t := range m.targets {
		if a := math.Abs(t); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	shown := m.shown
	if shown == nil {
		shown = m.targets
	}

	barWidth := 30
	for i, v := range shown {
		n := int(math.Abs(v) / maxAbs * float64(barWidth))
		if n > barWidth {
			n = barWidth
		}
		bar := strings.Repeat("█", n)
		b.WriteString(fmt.Sprintf("  u%d %10.4f %s\n", i, v, green.Render(bar)))
	}

	b.WriteString(dim.Render(fmt.Sprintf("cond A=%.3f  C=%.3f  Aᵀ=%.3f",
		m.sol.CondA, m.sol.CondC, m.sol.CondAT)) + "\n")

	if m.field.settled(m.targets) {
		b.WriteString(green.Render("● settled") + "\n")
	} else {
		b.WriteString(yellow.Render("○ settling") + "\n")
	}

	return b.String()
}
