package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/galileo/internal/motion"
	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/vector"
)

const (
	historyCapacity = 120
	panelWidth      = 44
)

type TickMsg time.Time

// Term is the Bubble Tea model of the terminal scene view.
type Term struct {
	scene    *scene.Scene
	initial  []scene.Named
	selected int
	cam      *Camera
	theme    Theme
	spin     motion.Spin
	integ    motion.Integrator
	dt       float64
	t        float64
	spinning bool
	history  []float64
	width    int
	height   int
	err      error
}

// NewTerm builds the view. Space spins the selected vector with spin,
// stepped by integ every dt of simulated time per frame.
func NewTerm(s *scene.Scene, spin motion.Spin, integ motion.Integrator, dt float64) Term {
	cam := NewCamera()
	cam.Reset(s.Extent())
	return Term{
		scene:   s,
		initial: s.Vectors(),
		cam:     cam,
		theme:   ThemeChalk,
		spin:    spin,
		integ:   integ,
		dt:      dt,
		history: make([]float64, 0, historyCapacity),
		width:   100,
		height:  30,
	}
}

// WithTheme returns m drawn with the named theme.
func (m Term) WithTheme(name string) Term {
	m.theme = GetTheme(name)
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Term) Init() tea.Cmd {
	return tick()
}

func (m Term) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.cam.RotateY(-0.1)
		case "right", "l":
			m.cam.RotateY(0.1)
		case "up", "k":
			m.cam.RotateX(-0.1)
		case "down", "j":
			m.cam.RotateX(0.1)
		case "+", "=":
			m.cam.ZoomIn()
		case "-", "_":
			m.cam.ZoomOut()
		case "tab":
			if n := len(m.initial); n > 0 {
				m.selected = (m.selected + 1) % n
				m.history = m.history[:0]
			}
		case " ":
			m.spinning = !m.spinning
		case "t":
			m.theme = NextTheme(m.theme)
		case "r":
			m.reset()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if m.spinning {
			m.step()
		}
		m.record()
		return m, tick()
	}
	return m, nil
}

func (m *Term) current() (scene.Named, bool) {
	if len(m.initial) == 0 {
		return scene.Named{}, false
	}
	name := m.initial[m.selected].Name
	v, err := m.scene.Lookup(name)
	if err != nil {
		return scene.Named{}, false
	}
	return scene.Named{Name: name, Value: v}, true
}

func (m *Term) step() {
	cur, ok := m.current()
	if !ok || m.integ == nil {
		return
	}
	next := m.integ.Step(m.spin, cur.Value, m.t, m.dt)
	if err := m.scene.Set(cur.Name, next); err != nil {
		m.err, m.spinning = err, false
		return
	}
	m.t += m.dt
}

func (m *Term) record() {
	cur, ok := m.current()
	if !ok {
		return
	}
	if len(m.history) == historyCapacity {
		m.history = append(m.history[:0], m.history[1:]...)
	}
	m.history = append(m.history, cur.Value.Magnitude())
}

func (m *Term) reset() {
	for _, n := range m.initial {
		_ = m.scene.Set(n.Name, n.Value)
	}
	m.cam.Reset(m.scene.Extent())
	m.t, m.spinning, m.err = 0, false, nil
	m.history = m.history[:0]
}

func (m Term) canvasSize() (int, int) {
	return max(20, m.width-panelWidth-4), max(8, m.height-2)
}

func (m Term) View() string {
	cw, ch := m.canvasSize()
	canvas := NewCanvas(cw, ch)
	Render3D(canvas, m.scene, m.cam)
	canvasView := lipgloss.NewStyle().Foreground(m.theme.Canvas).Render(canvas.String())

	label := lipgloss.NewStyle().Foreground(m.theme.Muted)
	value := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(strings.ToUpper(m.scene.Name)) + "\n")
	if m.spinning {
		s.WriteString(StatusRunning.Render("SPINNING") + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("STILL") + "\n\n")
	}

	if cur, ok := m.current(); ok {
		s.WriteString(label.Render("vector ") + Selected.Render(cur.Name) + "\n")
		s.WriteString(value.Render(FormatVec(cur.Value)) + "\n")
		s.WriteString(label.Render("|v|    ") + value.Render(fmt.Sprintf("%.5f", cur.Value.Magnitude())) + "\n")
		s.WriteString(label.Render("ω      ") + value.Render(FormatVec(m.spin.Omega)) + "\n")
		s.WriteString(label.Render("ω×v    ") + value.Render(FormatVec(vector.Cross(m.spin.Omega, cur.Value))) + "\n")
		s.WriteString(label.Render("t      ") + value.Render(fmt.Sprintf("%.2f", m.t)) + "\n\n")
		if len(m.history) > 1 {
			chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("|v|"))
			s.WriteString(chart + "\n\n")
		}
	} else {
		s.WriteString(Subtle.Render("(no vectors)") + "\n\n")
	}

	if m.err != nil {
		s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Warning).Render(m.err.Error()) + "\n\n")
	}

	s.WriteString(Separator(panelWidth-4) + "\n")
	s.WriteString(label.Render("theme  " + m.theme.Name) + "\n")
	s.WriteString(KeyHint.Render("←→↑↓ rotate  +/- zoom  tab select\nspace spin  t theme  r reset  q quit"))

	panel := GlassPanel.Width(panelWidth).Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
}

// RunTerm runs the view until the user quits.
func RunTerm(m Term) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
