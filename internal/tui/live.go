package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mathkit/internal/catalog"
	"github.com/san-kum/mathkit/internal/solver"
)

const residualCapacity = 256

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	convergedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	failedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
	runningStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	graphStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a Newton-Raphson solve one iteration at a time so the
// convergence behavior can be watched live.
type Model struct {
	problem catalog.Problem
	guess   float64
	tol     float64
	maxIter int

	x         float64
	iter      int
	steps     []solver.Step
	residuals []float64
	running   bool
	converged bool
	failed    bool
	err       error
}

func NewModel(problem catalog.Problem, guess, tol float64, maxIter int) Model {
	return Model{
		problem:   problem,
		guess:     guess,
		tol:       tol,
		maxIter:   maxIter,
		x:         guess,
		steps:     make([]solver.Step, 0, 16),
		residuals: make([]float64, 0, residualCapacity),
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/4, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the iteration.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.advance()
		case "r":
			m.reset()
		}
		return m, nil
	case TickMsg:
		if m.running && !m.done() {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) done() bool {
	return m.converged || m.failed || m.iter >= m.maxIter
}

func (m *Model) reset() {
	m.x = m.guess
	m.iter = 0
	m.steps = m.steps[:0]
	m.residuals = m.residuals[:0]
	m.running = true
	m.converged = false
	m.failed = false
	m.err = nil
}

// advance performs one Newton-Raphson iteration, mirroring the solver's
// per-iteration contract: derivative guard first, then the update.
func (m *Model) advance() {
	if m.done() {
		return
	}

	y := m.problem.F(m.x)
	deriv := m.problem.DF(m.x)

	if math.Abs(deriv) < m.tol {
		m.failed = true
		m.err = &solver.DerivativeError{Iter: m.iter, X: m.x, Deriv: deriv, Tol: m.tol}
		return
	}

	xNew := m.x - y/deriv
	delta := math.Abs(xNew - m.x)

	m.steps = append(m.steps, solver.Step{Iter: m.iter, X: m.x, Y: y, Deriv: deriv, Delta: delta})
	if len(m.residuals) < residualCapacity {
		m.residuals = append(m.residuals, math.Log10(math.Abs(y)+1e-300))
	}

	m.iter++

	if delta < m.tol {
		m.x = xNew
		m.converged = true
		return
	}

	m.x = xNew
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("newton-raphson: %s (%s)", m.problem.Name, m.problem.Desc)))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("iteration", fmt.Sprintf("%d / %d", m.iter, m.maxIter))
	row("x", fmt.Sprintf("%.15g", m.x))

	if len(m.steps) > 0 {
		last := m.steps[len(m.steps)-1]
		row("f(x)", fmt.Sprintf("%.6e", last.Y))
		row("f'(x)", fmt.Sprintf("%.6e", last.Deriv))
		row("|dx|", fmt.Sprintf("%.6e", last.Delta))
	}

	if !math.IsNaN(m.problem.Root) {
		row("known root", fmt.Sprintf("%.15g", m.problem.Root))
		row("error", fmt.Sprintf("%.6e", math.Abs(m.x-m.problem.Root)))
	}

	b.WriteString("\n")
	switch {
	case m.failed:
		b.WriteString(failedStyle.Render(fmt.Sprintf("FAILED: %v", m.err)))
	case m.converged:
		b.WriteString(convergedStyle.Render(fmt.Sprintf("CONVERGED after %d iterations", m.iter)))
	case m.iter >= m.maxIter:
		b.WriteString(runningStyle.Render("max iterations reached, best effort result"))
	case m.running:
		b.WriteString(runningStyle.Render("RUNNING"))
	default:
		b.WriteString(runningStyle.Render("PAUSED"))
	}
	b.WriteString("\n")

	if len(m.residuals) >= 2 {
		graph := asciigraph.Plot(m.residuals,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("log10 |f(x)|"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space: pause/resume  n: single step  r: reset  q: quit"))
	b.WriteString("\n")

	return b.String()
}
