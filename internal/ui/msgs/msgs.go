package msgs

import "time"

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeResize
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeResize:
		return "RESIZE"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// ToastLevel selects how a toast is decorated.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastError
	// ToastResize reports on a sash drag, e.g. one cut short by focus loss.
	ToastResize
)

func (l ToastLevel) String() string {
	switch l {
	case ToastInfo:
		return "info"
	case ToastError:
		return "error"
	case ToastResize:
		return "resize"
	default:
		return "unknown"
	}
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	Level    ToastLevel
}

// ResetLayoutMsg restores every split view to its initial sizes.
type ResetLayoutMsg struct{}

// CopySizesMsg copies the current pane sizes to the clipboard.
type CopySizesMsg struct{}

// CycleThemeMsg switches to the next built-in theme.
type CycleThemeMsg struct{}
