package log

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
)

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

func renderError(msg string) string {
	if noColor() {
		return msg
	}
	return errorStyle.Render(msg)
}

func renderSuccess(msg string) string {
	if noColor() {
		return msg
	}
	return successStyle.Render(msg)
}
