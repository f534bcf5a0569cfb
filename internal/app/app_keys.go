package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sashay/internal/ui/msgs"
)

func (a App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Reset):
		return func() tea.Msg { return msgs.ResetLayoutMsg{} }
	case key.Matches(msg, a.keys.Copy):
		return func() tea.Msg { return msgs.CopySizesMsg{} }
	case key.Matches(msg, a.keys.Theme):
		return func() tea.Msg { return msgs.CycleThemeMsg{} }
	case key.Matches(msg, a.keys.Help):
		return func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeHelp} }
	}
	return nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.CancelDrag) {
		cmd := a.cancelDrag("esc")
		return a, cmd
	}
	return a, a.handleGlobalKey(msg)
}
