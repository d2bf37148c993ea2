// Package tui renders the live dashboard: the 2x16 LCD, the indicator
// lamps, the switch bank and a speed sparkline.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cardash/internal/car"
	"github.com/san-kum/cardash/internal/hw"
	"github.com/san-kum/cardash/internal/tasks"
)

const (
	frameRate       = 30
	historyCapacity = 120
)

type TickMsg time.Time

// Model polls the running dashboard for snapshots and forwards key
// presses to the switch bank.
type Model struct {
	dashboard *tasks.Dashboard
	port      *hw.SimPort
	display   *hw.TextDisplay
	stop      func()

	snap    car.Snapshot
	history []float64
}

func NewModel(dashboard *tasks.Dashboard, port *hw.SimPort, display *hw.TextDisplay, stop func()) Model {
	return Model{
		dashboard: dashboard,
		port:      port,
		display:   display,
		stop:      stop,
		history:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stop()
			return m, tea.Quit
		case "i":
			m.port.ToggleSwitch(hw.IgnitionSwitch)
		case "a":
			m.port.ToggleSwitch(hw.AcceleratorSwitch)
		case "b":
			m.port.ToggleSwitch(hw.BrakeSwitch)
		case "c":
			m.port.ToggleSwitch(hw.CruiseSwitch)
		}
	case TickMsg:
		m.snap = m.dashboard.Snapshot()
		m.history = append(m.history, m.snap.Speed)
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("cardash"))
	b.WriteString("\n")

	b.WriteString(lcdStyle.Render(strings.Join(m.display.Rows(), "\n")))
	b.WriteString("\n\n")

	b.WriteString(m.lampLine())
	b.WriteString("\n")
	b.WriteString(m.switchLine())
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("speed"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%6.1f km/h", m.snap.Speed)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("odometry"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%6.1f km", m.snap.Odometry)))
	b.WriteString("\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(8),
			asciigraph.Width(48),
			asciigraph.Caption("speed (km/h)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("i ignition · a accelerator · b brake · c cruise · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) lampLine() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("lamps"),
		lamp("ignition", m.port.Indicator(hw.IgnitionLamp)),
		lamp("cruising", m.port.Indicator(hw.CruisingLamp)),
		lamp("speeding", m.port.Indicator(hw.SpeedingLamp)),
	)
}

func (m Model) switchLine() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("switches"),
		lamp("ignition", m.port.ReadBit(hw.IgnitionSwitch)),
		lamp("accel", m.port.ReadBit(hw.AcceleratorSwitch)),
		lamp("brake", m.port.ReadBit(hw.BrakeSwitch)),
		lamp("cruise", m.port.ReadBit(hw.CruiseSwitch)),
	)
}

func lamp(name string, on bool) string {
	if on {
		return lampOnStyle.Render("● "+name) + "  "
	}
	return lampOffStyle.Render("○ "+name) + "  "
}
