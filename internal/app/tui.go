package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/coreman2200/voxelcube/internal/preview"
	"github.com/coreman2200/voxelcube/internal/show"
)

var (
	title  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type tickMsg time.Time

// Model is the interactive simulator.
type Model struct {
	core *Core
	tick time.Duration
	hue  float64
}

func NewModel(core *Core, tick time.Duration, hue float64) Model {
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	return Model{core: core, tick: tick, hue: hue}
}

func (m Model) next() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	m.core.Player.Start()
	return m.next()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg)
	case tickMsg:
		m.core.Conductor.Step()
		return m, m.next()
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.core.Player
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		p.Stop()
		return m, tea.Quit
	case " ", "p":
		if p.State == show.Paused {
			p.Resume()
		} else {
			p.Pause()
		}
	case "n":
		p.Skip()
	case "r":
		p.Stop()
		p.Start()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(title.Render("voxelcube"))
	b.WriteString("  ")

	clip, idx := m.core.Player.Clip()
	state := string(m.core.Player.State)
	if m.core.Player.State == show.Paused {
		state = yellow.Render(state)
	}
	fmt.Fprintf(&b, "%s %s %s\n",
		white.Render(fmt.Sprintf("#%d %s", idx, clip.Name)),
		dim.Render("("+clip.Effect+")"),
		state)
	fmt.Fprintf(&b, "%s\n", dim.Render(fmt.Sprintf("brightness %d  lit %d", m.core.Conductor.Brightness(), m.core.Cube.Count())))
	b.WriteString(preview.Render(m.core.Cube, m.hue, m.core.Conductor.Brightness()))
	b.WriteString("\n")
	b.WriteString(dim.Render("[p] pause  [n] next  [r] restart  [q] quit"))
	return b.String()
}

// RunTUI runs the interactive simulator until the user quits.
func RunTUI(core *Core, tick time.Duration, hue float64) error {
	p := tea.NewProgram(NewModel(core, tick, hue), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
