package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Split views
	Sash       lipgloss.Color
	SashActive lipgloss.Color
	Accent     lipgloss.Color

	// Panes is the palette for panes without a color of their own.
	Panes []lipgloss.Color

	// Semantic
	StatusOK    lipgloss.Color
	StatusError lipgloss.Color

	// Syntax is the chroma style used for file panes.
	Syntax string
}

// PaneColor returns the palette color for the i-th leaf pane.
func (t Theme) PaneColor(i int) lipgloss.Color {
	if len(t.Panes) == 0 {
		return t.Surface
	}
	if i < 0 {
		i = -i
	}
	return t.Panes[i%len(t.Panes)]
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}
