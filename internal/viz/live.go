package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/physlab/internal/logging"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/scenario"
)

const frameRate = 30

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// LiveOptions configure the live view.
type LiveOptions struct {
	Width, Height int
	Theme         string
	Graphs        bool
	MaxTime       float64

	// StepsPerFrame is how many scenario steps run between redraws. Zero
	// picks enough steps to advance roughly 1/30 s of simulated time.
	StepsPerFrame int
}

// Model steps a scenario on every tick and draws its scene.
type Model struct {
	factory  func() (scenario.Scenario, error)
	scen     scenario.Scenario
	scene    *render.Scene
	canvas   *Canvas
	camera   *Camera
	theme    Theme
	styles   Styles
	opts     LiveOptions
	dt       float64
	perFrame int
	running  bool
	done     bool
	steps    int
	err      error
	showHelp bool
}

// NewLive builds the live model. factory is called again on every restart
// so each run starts from a fresh scenario and scene.
func NewLive(factory func() (scenario.Scenario, error), dt float64, opts LiveOptions) (Model, error) {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	theme := GetTheme(opts.Theme)
	m := Model{
		factory: factory,
		canvas:  NewCanvas(opts.Width, opts.Height),
		camera:  NewCamera(),
		theme:   theme,
		styles:  NewStyles(theme),
		opts:    opts,
		dt:      dt,
	}
	if err := m.restart(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) restart() error {
	s, err := m.factory()
	if err != nil {
		return err
	}
	dt := m.dt
	if dt == 0 {
		dt = s.DefaultDt()
	}
	scene := render.NewScene(s.Name())
	if err := s.Setup(scene, dt); err != nil {
		return fmt.Errorf("setting up %s: %w", s.Name(), err)
	}

	m.scen, m.scene = s, scene
	m.dt = dt
	m.perFrame = m.opts.StepsPerFrame
	if m.perFrame <= 0 {
		m.perFrame = max(1, int(1/(frameRate*dt)))
	}
	m.running, m.done, m.steps, m.err = true, false, 0, nil
	m.camera.Reset()
	FitScene(m.camera, m.scene, m.canvas)
	return nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if err := m.restart(); err != nil {
				m.err = err
			}
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = NewStyles(m.theme)
		case "f":
			FitScene(m.camera, m.scene, m.canvas)
		case "g":
			m.opts.Graphs = !m.opts.Graphs
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		w, h := msg.Width/2, msg.Height-6
		if w >= 20 && h >= 8 {
			m.canvas = NewCanvas(w, h)
			FitScene(m.camera, m.scene, m.canvas)
		}
	case TickMsg:
		if m.running && !m.done {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

// advance runs one frame's worth of steps.
func (m *Model) advance() {
	for i := 0; i < m.perFrame; i++ {
		if m.scen.Done() || (m.opts.MaxTime > 0 && m.scen.Time() >= m.opts.MaxTime) {
			m.done = true
			return
		}
		if err := m.scen.Step(m.dt); err != nil {
			m.err = err
			m.done = true
			log := logging.Component("live")
			log.Error().Err(err).Str("scenario", m.scen.Name()).Msg("step failed")
			return
		}
		m.steps++
	}
}

func (m Model) status() string {
	switch {
	case m.err != nil:
		return m.styles.Error.Render("ERROR")
	case m.done:
		return m.styles.Done.Render("DONE")
	case !m.running:
		return m.styles.Paused.Render("PAUSED")
	default:
		return m.styles.Running.Render("RUNNING")
	}
}

func (m Model) View() string {
	Draw(m.canvas, m.scene, m.camera)
	canvasView := m.canvas.Render(m.theme.Palette)

	var s strings.Builder
	s.WriteString(m.styles.Header.Render(strings.ToUpper(m.scen.Name())) + "\n")
	s.WriteString(m.status() + "\n\n")
	s.WriteString(m.styles.Label.Render("time") + m.styles.Value.Render(fmt.Sprintf("%.4g s", m.scen.Time())) + "\n")
	s.WriteString(m.styles.Label.Render("steps") + m.styles.Value.Render(fmt.Sprintf("%d", m.steps)) + "\n")
	s.WriteString(m.styles.Label.Render("dt") + m.styles.Value.Render(fmt.Sprintf("%g s", m.dt)) + "\n")
	if m.opts.MaxTime > 0 {
		s.WriteString(ProgressBar(m.scen.Time()/m.opts.MaxTime, 20, m.theme) + "\n")
	}
	if m.done && m.err == nil {
		s.WriteString("\n")
		for _, st := range m.scen.Summary() {
			s.WriteString(m.styles.Label.Render(st.Name) + m.styles.Value.Render(st.Value) + "\n")
		}
	}
	if m.err != nil {
		s.WriteString("\n" + m.styles.Error.Render(m.err.Error()) + "\n")
	}
	s.WriteString("\n" + Separator(24, m.theme) + "\n")
	s.WriteString(m.styles.Hint.Render("SP:pause R:restart T:theme\nG:graphs F:fit Q:quit ?:help"))

	side := m.styles.Panel.Render(s.String())
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, side)

	if m.opts.Graphs {
		graphs := RenderGraphs(m.scene, 40, 6)
		if len(graphs) > 0 {
			main = lipgloss.JoinVertical(lipgloss.Left, main, m.styles.Graph.Render(strings.Join(graphs, "\n\n")))
		}
	}
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `
  Space    pause / resume
  R        restart from the initial parameters
  T        cycle themes
  G        toggle graphs
  F        refit the view to the scene
  X/Y      rotate the view (shift reverses)
  +/-      zoom
  Q        quit
`

// Err reports the error that stopped the run, if any.
func (m Model) Err() error { return m.err }

// Scenario returns the scenario being shown.
func (m Model) Scenario() scenario.Scenario { return m.scen }

// Steps returns the number of steps taken since the last restart.
func (m Model) Steps() int { return m.steps }

// Done reports whether the run has finished.
func (m Model) Done() bool { return m.done }

// RunLive runs the live view until the user quits.
func RunLive(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
