package layout

// Chrome holds the calculated dimensions of the application frame.
type Chrome struct {
	Width  int
	Height int

	ContentWidth  int
	ContentHeight int // height minus status bar

	StatusBarVisible bool
}

const (
	statusBarHeight = 1
	// Below this height the status bar is dropped to leave room for panes.
	minStatusBarHeight = 4
)

// Calculate computes the frame layout from terminal dimensions.
func Calculate(width, height int) Chrome {
	width = max(width, 0)
	height = max(height, 0)

	c := Chrome{
		Width:            width,
		Height:           height,
		ContentWidth:     width,
		ContentHeight:    height,
		StatusBarVisible: height >= minStatusBarHeight,
	}

	if c.StatusBarVisible {
		c.ContentHeight = clamp(height-statusBarHeight, 1, height)
	}
	return c
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
