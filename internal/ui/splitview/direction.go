package splitview

import (
	"fmt"
	"strings"
)

// Direction is the axis along which a split view lays out its panes.
type Direction int

const (
	// Row places panes side by side, separated by vertical sashes.
	Row Direction = iota
	// Column stacks panes top to bottom, separated by horizontal sashes.
	Column
)

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "row" or "column". An empty string yields Row.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row", "horizontal":
		return Row, nil
	case "column", "col", "vertical":
		return Column, nil
	default:
		return Row, fmt.Errorf("unknown direction %q (must be row or column)", s)
	}
}

// axis returns the coordinate of p along the split axis.
func (d Direction) axis(x, y int) int {
	if d == Column {
		return y
	}
	return x
}
