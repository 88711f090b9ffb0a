package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mpetriv/lcgviz/internal/layout"
	"github.com/mpetriv/lcgviz/internal/lcg"
	"github.com/mpetriv/lcgviz/internal/orbit"
)

const (
	canvasWidth  = 64
	canvasHeight = 30

	minDelay = 10 * time.Millisecond
	maxDelay = 2 * time.Second

	// Shade index 0 is the marker color; edge ramp levels start at 1.
	markerShade = 0
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model animates one orbit scene, revealing a single edge per tick.
type Model struct {
	traj     *lcg.Trajectory
	theme    Theme
	scene    *orbit.Scene
	frames   *orbit.Frames
	canvas   *Canvas
	revealed []orbit.Edge
	delay    time.Duration
	running  bool
	done     bool
}

// NewModel builds the animation state for a generated trajectory.
func NewModel(traj *lcg.Trajectory, themeName string, delay time.Duration) Model {
	theme := GetTheme(themeName)
	scene := buildScene(traj, theme)
	return Model{
		traj:     traj,
		theme:    theme,
		scene:    scene,
		frames:   scene.Frames(),
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		revealed: make([]orbit.Edge, 0, len(scene.Edges)),
		delay:    clampDelay(delay),
		running:  true,
	}
}

// buildScene lays the orbit out in sub-pixel coordinates. Braille cells are
// 2x4 dots on roughly 1:2 character cells, so sub-pixels come out close to
// square and the circle renders round.
func buildScene(traj *lcg.Trajectory, theme Theme) *orbit.Scene {
	cw := float64(canvasWidth * 2)
	ch := float64(canvasHeight * 4)
	r := ch/2 - 8
	if cw/2-8 < r {
		r = cw/2 - 8
	}
	markerR := 3.0
	if traj.Params.Modulus > 48 {
		markerR = 2.0
	}
	cfg := layout.Config{
		CenterX:      cw / 2,
		CenterY:      ch / 2,
		Radius:       r,
		MarkerRadius: markerR,
	}
	return orbit.Build(traj, cfg, theme.EdgeBase)
}

func clampDelay(d time.Duration) time.Duration {
	if d < minDelay {
		return minDelay
	}
	if d > maxDelay {
		return maxDelay
	}
	return d
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.advance()
			}
		case "r":
			m.restart()
		case "+", "=":
			m.delay = clampDelay(m.delay / 2)
		case "-", "_":
			m.delay = clampDelay(m.delay * 2)
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.rebuild()
		}
		return m, nil
	case TickMsg:
		if m.running && !m.done {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	e, ok := m.frames.Next()
	if !ok {
		m.done = true
		return
	}
	m.revealed = append(m.revealed, e)
	if m.frames.Remaining() == 0 {
		m.done = true
	}
}

func (m *Model) restart() {
	m.frames.Reset()
	m.revealed = m.revealed[:0]
	m.done = false
	m.running = true
}

// rebuild recreates the scene after a theme change so edge colors pick up
// the new ramp base; the reveal position is preserved.
func (m *Model) rebuild() {
	pos := len(m.revealed)
	m.scene = buildScene(m.traj, m.theme)
	m.frames = m.scene.Frames()
	m.revealed = m.revealed[:0]
	for i := 0; i < pos; i++ {
		e, ok := m.frames.Next()
		if !ok {
			break
		}
		m.revealed = append(m.revealed, e)
	}
}

func (m *Model) draw() {
	m.canvas.Clear()

	for _, mk := range m.scene.Markers {
		m.canvas.DrawCircle(int(mk.Center.X), int(mk.Center.Y), int(m.scene.Config.MarkerRadius), markerShade)
	}

	for _, e := range m.revealed {
		shade := e.Step%layout.RampLevels + 1
		m.canvas.DrawLine(int(e.Start.X), int(e.Start.Y), int(e.End.X), int(e.End.Y), shade)
		m.canvas.DrawLine(int(e.BarbA.X), int(e.BarbA.Y), int(e.End.X), int(e.End.Y), shade)
		m.canvas.DrawLine(int(e.BarbB.X), int(e.BarbB.Y), int(e.End.X), int(e.End.Y), shade)
	}
}

func (m Model) View() string {
	m.draw()

	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Header).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	accentStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)

	canvasView := canvasStyle.Render(m.canvas.Render(m.theme.EdgePalette()))

	var s strings.Builder
	s.WriteString(headerStyle.Render("LCG ORBIT") + "\n")

	status := "RUNNING"
	if m.done {
		status = "DONE"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(accentStyle.Render(status) + "\n\n")

	p := m.traj.Params
	s.WriteString(labelStyle.Render("Modulus") + valueStyle.Render(fmt.Sprintf("%d", p.Modulus)) + "\n")
	s.WriteString(labelStyle.Render("Multiplier") + valueStyle.Render(fmt.Sprintf("%d", p.Multiplier)) + "\n")
	s.WriteString(labelStyle.Render("Increment") + valueStyle.Render(fmt.Sprintf("%d", p.Increment)) + "\n")
	s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d", p.Seed)) + "\n")
	s.WriteString(labelStyle.Render("Delay") + valueStyle.Render(m.delay.String()) + "\n\n")

	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d / %d", len(m.revealed), len(m.scene.Edges))) + "\n")
	if m.done {
		c := m.traj.Cycle
		s.WriteString(labelStyle.Render("Tail") + valueStyle.Render(fmt.Sprintf("%d", c.TailLength)) + "\n")
		s.WriteString(labelStyle.Render("Cycle") + valueStyle.Render(fmt.Sprintf("%d (enters at %d)", c.Length, c.Start)) + "\n")
	}

	if len(m.revealed) > 1 {
		vals := make([]float64, len(m.revealed))
		for i, e := range m.revealed {
			vals[i] = float64(e.From)
		}
		chart := asciigraph.Plot(vals, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("residues"))
		s.WriteString("\n" + valueStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("\nSP:Pause N:Step R:Restart\n+/-:Speed T:Theme Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run generates the trajectory for params and blocks on the animation until
// the user quits.
func Run(params lcg.Params, themeName string, delay time.Duration) error {
	if params.Modulus > orbit.MaxDrawableModulus {
		return fmt.Errorf("viz: modulus %d exceeds drawable maximum %d", params.Modulus, orbit.MaxDrawableModulus)
	}
	traj, err := lcg.Generate(params)
	if err != nil {
		return err
	}
	p := tea.NewProgram(NewModel(traj, themeName, delay))
	_, err = p.Run()
	return err
}
