// Package ui is the terminal inspector: a live table of what the camera
// decided to draw, how, and how much light reaches each body.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"orrery/internal/camera"
	"orrery/internal/config"
	"orrery/internal/galaxy"
	"orrery/internal/session"
)

const tickInterval = 100 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	billboardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	shadowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))
)

// TickMsg advances the simulation and reruns the camera.
type TickMsg time.Time

// Row is one draw list entry as shown in the table.
type Row struct {
	Name        string
	Class       string
	Distance    float64
	PixSize     float64
	Intensities []float32
}

type Model struct {
	session *session.Session

	width  int
	height int
	ready  bool

	lastTick time.Time
	stats    camera.FrameStats
	rows     []Row
	lights   []string
}

func New(s *session.Session) Model {
	return Model{session: s}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.session.Paused = !m.session.Paused
		case "+", "=":
			m.session.ScaleWarp(session.WarpStep)
		case "-":
			m.session.ScaleWarp(1 / session.WarpStep)
		case "]":
			m.session.Zoom(-session.ZoomStep)
		case "[":
			m.session.Zoom(session.ZoomStep)
		case "e":
			m.session.Eclipse()
			m.refresh(0)
		case "d":
			m.session.ToggleDeepSpace()
			m.refresh(0)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		now := time.Time(msg)
		var dt float64
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
		}
		m.lastTick = now
		m.refresh(dt)
		return m, tickCmd()
	}

	return m, nil
}

// refresh steps the session by dt seconds and snapshots the camera.
func (m *Model) refresh(dt float64) {
	m.session.Step(dt)
	m.stats = m.session.Frame(nil)

	c := m.session.Camera
	m.lights = nil
	for _, l := range c.Lights() {
		if l.Body == nil {
			m.lights = append(m.lights, "ambient")
		} else {
			m.lights = append(m.lights, l.Body.Name)
		}
	}

	m.rows = nil
	for _, a := range c.DrawList() {
		row := Row{
			Name:     a.Body.Name,
			Class:    "full",
			Distance: a.CamDist,
			PixSize:  a.PixSize,
		}
		if a.Billboard {
			row.Class = "billboard"
		}
		if a.DrawLast() {
			row.Class += ", last"
		}
		for i := range c.Lights() {
			row.Intensities = append(row.Intensities, c.ShadowedIntensity(i, a.Body))
		}
		m.rows = append(m.rows, row)
	}
}

// Rows returns the table of the last refresh.
func (m Model) Rows() []Row { return m.rows }

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	place := "Sol"
	if m.session.DeepSpace {
		place = "deep space"
	}
	b.WriteString(titleStyle.Render("orrery inspector"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s · t=%s · warp ×%g · fov %g°",
		place, formatElapsed(m.session.System.Elapsed()), config.GetTimeWarp(), m.session.Context.FieldOfView())))
	if m.session.Paused {
		b.WriteString(shadowStyle.Render("  [paused]"))
	}
	b.WriteString("\n\n")

	st := m.stats
	b.WriteString(fmt.Sprintf("considered %d · excluded %d · culled %d · hidden %d · full %d · billboards %d · update %v\n\n",
		st.Considered, st.Excluded, st.Culled, st.Hidden, st.Full, st.Billboards, m.session.LastUpdate().Round(time.Microsecond)))

	header := fmt.Sprintf("%-14s %-16s %14s %10s", "BODY", "CLASS", "DISTANCE", "PIXELS")
	for _, l := range m.lights {
		header += fmt.Sprintf(" %10s", truncate(l, 10))
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for _, r := range m.rows {
		line := fmt.Sprintf("%-14s %-16s %14s %10.2f", truncate(r.Name, 14), r.Class, formatDistance(r.Distance), r.PixSize)
		style := rowStyle
		if strings.HasPrefix(r.Class, "billboard") {
			style = billboardStyle
		}
		b.WriteString(style.Render(line))
		for _, in := range r.Intensities {
			cell := fmt.Sprintf(" %10.3f", in)
			if in < 1 {
				b.WriteString(shadowStyle.Render(cell))
			} else {
				b.WriteString(style.Render(cell))
			}
		}
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render("  nothing in view"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("[space] pause  [+/-] warp  [ and ] fov  [e] eclipse  [d] deep space  [q] quit"))
	return b.String()
}

func formatDistance(m float64) string {
	switch {
	case m < 1e4:
		return fmt.Sprintf("%.0f m", m)
	case m < 0.01*galaxy.AU:
		return fmt.Sprintf("%.0f km", m/1000)
	default:
		return fmt.Sprintf("%.3f AU", m/galaxy.AU)
	}
}

func formatElapsed(s float64) string {
	d := time.Duration(s * float64(time.Second))
	if d >= 24*time.Hour {
		return fmt.Sprintf("%.1fd", d.Hours()/24)
	}
	return d.Round(time.Second).String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
