// Package tui is a bubbletea replay of a solve: the trajectory is revealed
// step by step next to the exact curve.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/decaylab/internal/decay"
	"github.com/san-kum/decaylab/internal/viz"
)

type Model struct {
	params decay.Params
	res    *decay.Result
	exact  decay.Solution

	shown  int
	paused bool
	done   bool

	width  int
	height int
}

func New(p decay.Params, res *decay.Result) Model {
	shown := 2
	if shown > len(res.U) {
		shown = len(res.U)
	}
	return Model{
		params: p,
		res:    res,
		exact:  decay.Sample(res.T, p.I, p.A),
		shown:  shown,
		width:  80,
		height: 24,
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused && !m.done {
				return m, tick()
			}
			return m, nil
		case "r":
			m.shown = 2
			if m.shown > len(m.res.U) {
				m.shown = len(m.res.U)
			}
			m.done = false
			m.paused = false
			return m, tick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.paused || m.done {
			return m, nil
		}
		stride := m.res.Nt / 200
		if stride < 1 {
			stride = 1
		}
		m.shown += stride
		if m.shown >= len(m.res.U) {
			m.shown = len(m.res.U)
			m.done = true
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(viz.Title.Render("decaylab live") + "  " +
		viz.Subtle.Render(fmt.Sprintf("%s · a=%g dt=%g",
			decay.SchemeName(m.res.Theta), m.params.A, m.res.Dt)) + "\n\n")

	plotW := m.width - 12
	if plotW < 20 {
		plotW = 20
	}
	plotH := m.height - 9
	if plotH < 5 {
		plotH = 5
	}

	graph := asciigraph.PlotMany(
		[][]float64{m.res.U[:m.shown], m.exact[:m.shown]},
		asciigraph.Height(plotH),
		asciigraph.Width(plotW),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.White),
		asciigraph.SeriesLegends("numerical", "exact"),
	)
	b.WriteString(graph + "\n\n")

	n := m.shown - 1
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		viz.MetricLabel.Render("t"),
		viz.MetricValue.Render(fmt.Sprintf("%.4f", m.res.T[n])),
		viz.MetricLabel.Render("u"),
		viz.MetricValue.Render(fmt.Sprintf("%.6f", m.res.U[n])),
		viz.MetricLabel.Render("exact"),
		viz.MetricValue.Render(fmt.Sprintf("%.6f", m.exact[n])),
	))

	status := "playing"
	if m.done {
		status = "done"
	} else if m.paused {
		status = "paused"
	}
	b.WriteString(viz.Subtle.Render(status) + "  " +
		viz.KeyHint.Render("space pause · r restart · q quit") + "\n")

	return b.String()
}

// Run drives the replay until the user quits.
func Run(p decay.Params, res *decay.Result) error {
	prog := tea.NewProgram(New(p, res))
	_, err := prog.Run()
	return err
}
