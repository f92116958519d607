package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for glyphs and the status bar.
type Theme struct {
	Name   string
	Levels [numLevels]lipgloss.Color // faint to hot
	Button lipgloss.Color
	Label  lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeMatrix = Theme{
		Name:   "matrix",
		Levels: [numLevels]lipgloss.Color{"#0b3d0b", "#1a7a1a", "#33cc33", "#b8ffb8"},
		Button: lipgloss.Color("#1a7a1a"),
		Label:  lipgloss.Color("#e0ffe0"),
		Muted:  lipgloss.Color("#3d5c3d"),
	}

	ThemeAmber = Theme{
		Name:   "amber",
		Levels: [numLevels]lipgloss.Color{"#4d2a00", "#995400", "#ff8c00", "#ffd27f"},
		Button: lipgloss.Color("#995400"),
		Label:  lipgloss.Color("#fff0d9"),
		Muted:  lipgloss.Color("#6b4a26"),
	}

	ThemeIce = Theme{
		Name:   "ice",
		Levels: [numLevels]lipgloss.Color{"#10304d", "#1f6399", "#4da6ff", "#d9ecff"},
		Button: lipgloss.Color("#1f6399"),
		Label:  lipgloss.Color("#f0f8ff"),
		Muted:  lipgloss.Color("#3a5670"),
	}

	ThemeMono = Theme{
		Name:   "mono",
		Levels: [numLevels]lipgloss.Color{"238", "244", "250", "255"},
		Button: lipgloss.Color("240"),
		Label:  lipgloss.Color("255"),
		Muted:  lipgloss.Color("242"),
	}

	Themes = []Theme{
		ThemeMatrix,
		ThemeAmber,
		ThemeIce,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to matrix.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMatrix
}

// NextTheme returns the theme after t in Themes.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
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

func (t Theme) glyphStyles() [numLevels]lipgloss.Style {
	var styles [numLevels]lipgloss.Style
	for i, c := range t.Levels {
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}
	styles[levelHot] = styles[levelHot].Bold(true)
	return styles
}
