package splitview

import (
	"math"

	"github.com/charmbracelet/x/cellbuf"
)

// dragSession is the state of a sash drag, alive from pointer-down on a sash
// until the next pointer-up.
type dragSession struct {
	sash      int
	start     cellbuf.Position
	startSize []float64
}

// Resize applies a drag of sash by delta cells to startSize. Only the two
// panes adjacent to the sash change and their combined size is preserved;
// the delta is capped so neither pane drops below its minimum.
func Resize(startSize, minSize []float64, sash int, delta float64) []float64 {
	next := make([]float64, len(startSize))
	copy(next, startSize)

	before, after := startSize[sash], startSize[sash+1]

	var applied float64
	if delta > 0 {
		applied = after - math.Max(minSize[sash+1], after-delta)
	} else {
		applied = math.Max(minSize[sash], before+delta) - before
	}

	next[sash] = before + applied
	next[sash+1] = after - applied
	return next
}
