package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/sashay/internal/ui/msgs"
	"github.com/sadopc/sashay/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	mode    msgs.AppMode
	message string
	sizes   []float64
	panes   int
	views   int
	cols    int
	rows    int
	width   int
	theme   theme.Theme
	styles  theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeNormal,
	}
}

// SetTheme swaps the colors used by the bar.
func (m *StatusBar) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// SetSizes sets the pane sizes shown on the left, usually the split view
// being dragged.
func (m *StatusBar) SetSizes(sizes []float64) {
	m.sizes = sizes
}

// SetTotals sets the pane/split-view counts and the terminal size.
func (m *StatusBar) SetTotals(panes, views, cols, rows int) {
	m.panes = panes
	m.views = views
	m.cols = cols
	m.rows = rows
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg.(type) {
	case clearStatusMsg:
		m.message = ""
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	// Left section: message or sizes
	var left string
	if m.message != "" {
		left = lipgloss.NewStyle().
			Foreground(m.theme.Text).
			Background(m.theme.Surface).
			Render(m.message)
	} else if len(m.sizes) > 0 {
		left = lipgloss.NewStyle().
			Foreground(m.theme.Subtext).
			Background(m.theme.Surface).
			Render(FormatSizes(m.sizes))
	}

	modeColor := m.theme.Accent
	if m.mode == msgs.ModeResize {
		modeColor = m.theme.SashActive
	}
	modeStr := lipgloss.NewStyle().
		Foreground(modeColor).
		Background(m.theme.Surface).
		Bold(true).
		Render("[" + m.mode.String() + "]")

	var rightParts []string
	if m.cols > 0 && m.rows > 0 {
		rightParts = append(rightParts, lipgloss.NewStyle().
			Foreground(m.theme.Subtext).
			Background(m.theme.Surface).
			Render(fmt.Sprintf("%d panes/%d splits %s×%s",
				m.panes, m.views, humanize.Comma(int64(m.cols)), humanize.Comma(int64(m.rows)))))
	}
	rightParts = append(rightParts, lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Background(m.theme.Surface).
		Render("?:help  q:quit"))
	hint := strings.Join(rightParts, " ")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.width {
		gap1 := m.width - totalContent
		if gap1 < 1 {
			gap1 = 1
		}
		line := " " + left + strings.Repeat(" ", gap1) + modeStr + " " + hint
		return barStyle.Render(line)
	}

	remaining := m.width - totalContent - 2 // padding
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}

// FormatSizes renders sizes as whole cells, e.g. "62 | 38".
func FormatSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = humanize.Comma(int64(s + 0.5))
	}
	return strings.Join(parts, " | ")
}
