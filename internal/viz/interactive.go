package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/physlab/internal/scenario"
)

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// App is the scenario picker. Choosing a scenario opens its parameters for
// editing; s starts the live view with them.
type App struct {
	reg         *scenario.Registry
	state       int
	cursor      int
	names       []string
	descs       map[string]string
	selected    string
	params      []scenario.Param
	paramCursor int
	editing     bool
	editBuf     string
	opts        LiveOptions
	live        Model
	err         error
}

func NewApp(reg *scenario.Registry, opts LiveOptions) App {
	a := App{reg: reg, names: reg.List(), descs: make(map[string]string), opts: opts}
	for _, name := range a.names {
		if s, err := reg.Get(name, nil); err == nil {
			a.descs[name] = s.Description()
		}
	}
	return a
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	default:
		if a.state == stateSim {
			next, cmd := a.live.Update(msg)
			a.live = next.(Model)
			return a, cmd
		}
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateConfig:
		return a.configKey(msg)
	case stateSim:
		if msg.String() == "esc" {
			a.state = stateConfig
			return a, nil
		}
		next, cmd := a.live.Update(msg)
		a.live = next.(Model)
		return a, cmd
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.names)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.selected = a.names[a.cursor]
		s, err := a.reg.Get(a.selected, nil)
		if err != nil {
			a.err = err
			return a, nil
		}
		a.params = s.ParamList()
		a.state, a.paramCursor, a.err = stateConfig, 0, nil
	}
	return a, nil
}

func (a App) configKey(msg tea.KeyMsg) (App, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			v, err := strconv.ParseFloat(a.editBuf, 64)
			if err != nil {
				a.err = fmt.Errorf("invalid number %q", a.editBuf)
			} else {
				a.params[a.paramCursor].Value = v
				a.err = nil
			}
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == '+' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}
	switch msg.String() {
	case "q", "esc":
		a.state = stateMenu
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(a.params)-1 {
			a.paramCursor++
		}
	case "enter", " ":
		if len(a.params) > 0 {
			a.editing, a.editBuf = true, strconv.FormatFloat(a.params[a.paramCursor].Value, 'g', -1, 64)
		}
	case "s":
		return a.start()
	}
	return a, nil
}

func (a App) overrides() map[string]float64 {
	out := make(map[string]float64, len(a.params))
	for _, p := range a.params {
		out[p.Name] = p.Value
	}
	return out
}

func (a App) start() (App, tea.Cmd) {
	name, params := a.selected, a.overrides()
	live, err := NewLive(func() (scenario.Scenario, error) {
		return a.reg.Get(name, params)
	}, 0, a.opts)
	if err != nil {
		a.err = err
		return a, nil
	}
	a.live, a.state, a.err = live, stateSim, nil
	return a, a.live.Init()
}

func (a App) View() string {
	st := NewStyles(CurrentTheme)
	switch a.state {
	case stateSim:
		return a.live.View()
	case stateConfig:
		return a.configView(st)
	}

	var b strings.Builder
	b.WriteString(st.Header.Render("PHYSLAB") + "\n\n")
	for i, name := range a.names {
		marker, label := "  ", name
		if i == a.cursor {
			marker = "> "
			label = lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Primary).Render(name)
		}
		pad := strings.Repeat(" ", max(1, 23-len(name)))
		b.WriteString(marker + label + pad + st.Hint.Render(a.descs[name]) + "\n")
	}
	if a.err != nil {
		b.WriteString("\n" + st.Error.Render(a.err.Error()) + "\n")
	}
	b.WriteString("\n" + st.Hint.Render("↑↓:select  enter:configure  q:quit"))
	return st.Panel.Render(b.String())
}

func (a App) configView(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Header.Render(strings.ToUpper(a.selected)) + "\n\n")
	for i, p := range a.params {
		val := strconv.FormatFloat(p.Value, 'g', 6, 64)
		if a.editing && i == a.paramCursor {
			val = a.editBuf + "_"
		}
		line := fmt.Sprintf("%-16s %-12s %s", p.Name, val, st.Hint.Render(p.Usage))
		if i == a.paramCursor {
			b.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if a.err != nil {
		b.WriteString("\n" + st.Error.Render(a.err.Error()) + "\n")
	}
	b.WriteString("\n" + st.Hint.Render("↑↓:select  enter:edit  s:start  esc:back"))
	return st.Panel.Render(b.String())
}

// RunApp runs the picker until the user quits.
func RunApp(a App) error {
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}
