package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/physlab/internal/render"
)

// Theme defines the colour scheme for the terminal views. Scene colours are
// mapped through Palette so every theme keeps red distinguishable from
// green, but may shift the exact shades.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Colors    map[render.Color]lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
		Colors: map[render.Color]lipgloss.Color{
			render.Red:     "#ff3355",
			render.Green:   "#00ff88",
			render.Blue:    "#3399ff",
			render.Yellow:  "#ffff00",
			render.Orange:  "#ff8800",
			render.Cyan:    "#00ffff",
			render.Magenta: "#ff00ff",
		},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
		Colors: map[render.Color]lipgloss.Color{
			render.Red:    "#ff5500",
			render.Green:  "#00aa00",
			render.Blue:   "#88ffcc",
			render.Yellow: "#ccff66",
			render.White:  "#00ff00",
		},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		Colors: map[render.Color]lipgloss.Color{
			render.Blue:  "#00a8cc",
			render.Green: "#00ff88",
			render.White: "#e0f0ff",
		},
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
		Colors: map[render.Color]lipgloss.Color{
			render.Red:    "#ff4757",
			render.Yellow: "#feca57",
			render.White:  "#fff5f5",
		},
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// baseColors are the ANSI 256 fallbacks for colours a theme leaves out.
var baseColors = map[render.Color]lipgloss.Color{
	render.Red:     "9",
	render.Green:   "2",
	render.Blue:    "12",
	render.Yellow:  "11",
	render.Orange:  "214",
	render.Cyan:    "14",
	render.Magenta: "13",
	render.White:   "15",
	render.Black:   "0",
	render.Gray:    "8",
}

// Palette maps a scene colour to a terminal colour.
func (t Theme) Palette(c render.Color) lipgloss.Color {
	if col, ok := t.Colors[c]; ok {
		return col
	}
	if col, ok := baseColors[c]; ok {
		return col
	}
	return t.Text
}

// GetTheme returns a theme by name, or cyberpunk when unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
