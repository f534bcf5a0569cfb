package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/sashay/internal/ui/msgs"
	"github.com/sadopc/sashay/internal/ui/theme"
)

const defaultToastDuration = 3 * time.Second

// toastExpiredMsg hides the toast shown as number seq. A newer toast has a
// higher seq and outlives the timers of the ones it replaced.
type toastExpiredMsg struct {
	seq int
}

// Toast is a transient notice drawn over the top-right corner of the layout.
type Toast struct {
	Visible bool

	text     string
	level    msgs.ToastLevel
	duration time.Duration
	seq      int

	theme  theme.Theme
	styles theme.Styles
}

// NewToast creates a hidden toast.
func NewToast(t theme.Theme, s theme.Styles) Toast {
	return Toast{theme: t, styles: s, duration: defaultToastDuration}
}

// SetTheme swaps the colors used by the toast.
func (m *Toast) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme, m.styles = t, s
}

// Show replaces the current notice and returns the timer that hides it. A
// non-positive duration falls back to three seconds.
func (m *Toast) Show(text string, level msgs.ToastLevel, duration time.Duration) tea.Cmd {
	if duration <= 0 {
		duration = defaultToastDuration
	}
	m.seq++
	m.Visible = true
	m.text = text
	m.level = level
	m.duration = duration

	seq := m.seq
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Level reports how the current notice is decorated.
func (m Toast) Level() msgs.ToastLevel {
	return m.level
}

// Init implements tea.Model.
func (m Toast) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if exp, ok := msg.(toastExpiredMsg); ok && exp.seq == m.seq {
		m.Visible = false
		m.text = ""
	}
	return m, nil
}

// View renders the notice with a level marker in a rounded box.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	var fg lipgloss.Color
	var mark string
	switch m.level {
	case msgs.ToastError:
		fg, mark = m.theme.StatusError, "✗"
	case msgs.ToastResize:
		fg, mark = m.theme.SashActive, "↔"
	default:
		fg, mark = m.theme.StatusOK, "✓"
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(m.theme.Surface).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Render(mark + " " + m.text)
}
