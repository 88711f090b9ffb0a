package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mpetriv/lcgviz/internal/layout"
)

// Theme defines the TUI color scheme. EdgeBase seeds the 9-level brightness
// ramp applied to trajectory edges.
type Theme struct {
	Name     string
	Header   lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Marker   lipgloss.Color
	EdgeBase layout.RGB
}

var (
	ThemePhosphor = Theme{
		Name:     "phosphor",
		Header:   lipgloss.Color("#00ff88"),
		Accent:   lipgloss.Color("#88ff88"),
		Text:     lipgloss.Color("#ccffcc"),
		Muted:    lipgloss.Color("#005530"),
		Marker:   lipgloss.Color("#338855"),
		EdgeBase: layout.RGB{R: 0, G: 255, B: 136},
	}

	ThemeEmber = Theme{
		Name:     "ember",
		Header:   lipgloss.Color("#ff8800"),
		Accent:   lipgloss.Color("#ffcc66"),
		Text:     lipgloss.Color("#ffeedd"),
		Muted:    lipgloss.Color("#553311"),
		Marker:   lipgloss.Color("#aa6633"),
		EdgeBase: layout.RGB{R: 255, G: 136, B: 0},
	}

	ThemeIce = Theme{
		Name:     "ice",
		Header:   lipgloss.Color("#44bbff"),
		Accent:   lipgloss.Color("#99ddff"),
		Text:     lipgloss.Color("#e0f4ff"),
		Muted:    lipgloss.Color("#113355"),
		Marker:   lipgloss.Color("#3377aa"),
		EdgeBase: layout.RGB{R: 68, G: 187, B: 255},
	}

	ThemeMono = Theme{
		Name:     "mono",
		Header:   lipgloss.Color("#ffffff"),
		Accent:   lipgloss.Color("#cccccc"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#555555"),
		Marker:   lipgloss.Color("#888888"),
		EdgeBase: layout.RGB{R: 255, G: 255, B: 255},
	}

	Themes = []Theme{ThemePhosphor, ThemeEmber, ThemeIce, ThemeMono}
)

// GetTheme returns a theme by name, falling back to phosphor.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePhosphor
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemePhosphor
}

// EdgePalette builds the lipgloss styles for the theme's edge ramp. Index 0
// is reserved for the marker/circle shade; indices 1..RampLevels map ramp
// levels.
func (t Theme) EdgePalette() []lipgloss.Style {
	styles := make([]lipgloss.Style, layout.RampLevels+1)
	styles[0] = lipgloss.NewStyle().Foreground(t.Marker)
	for i, c := range layout.Ramp(t.EdgeBase) {
		styles[i+1] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return styles
}
