package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/sashay/internal/ui/splitview"
)

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Text styles
	Title  lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style
	Hint   lipgloss.Style
	Error  lipgloss.Style

	// Split views
	Sash       lipgloss.Style
	SashActive lipgloss.Style
	PaneTitle  lipgloss.Style
	PaneBody   lipgloss.Style

	// Components
	StatusBar lipgloss.Style
	Key       lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Normal: lipgloss.NewStyle().Foreground(t.Text),
		Muted:  lipgloss.NewStyle().Foreground(t.Muted),
		Hint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Error:  lipgloss.NewStyle().Foreground(t.StatusError).Bold(true),

		Sash:       lipgloss.NewStyle().Foreground(t.Sash),
		SashActive: lipgloss.NewStyle().Foreground(t.SashActive).Bold(true),
		PaneTitle:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		PaneBody:   lipgloss.NewStyle().Foreground(t.Subtext),

		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		Key: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

// SplitView returns the sash styles for split views.
func (s Styles) SplitView() splitview.Styles {
	return splitview.Styles{
		Sash:       s.Sash,
		SashActive: s.SashActive,
	}
}
