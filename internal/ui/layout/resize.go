package layout

import tea "github.com/charmbracelet/bubbletea"

// HandleResize processes a WindowSizeMsg and returns the updated frame.
func HandleResize(msg tea.WindowSizeMsg) Chrome {
	return Calculate(msg.Width, msg.Height)
}
