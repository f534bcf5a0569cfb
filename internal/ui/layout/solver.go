package layout

import "math"

// Sum returns the total of values.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Solve reconciles declared pane sizes against a container extent.
//
// The result always sums to max(target, Sum(minSize)) and never places a pane
// below its minimum. When the declared sizes already fill the container the
// result is an exact copy of size. Otherwise the difference is first spread
// across panes in proportion to grow, clamped at each minimum, and whatever
// the clamping could not absorb is pushed into the panes from last to first,
// so earlier panes keep their size when space is scarce.
//
// size, minSize and grow must have equal length.
func Solve(size, minSize, grow []float64, target float64) []float64 {
	final := make([]float64, len(size))
	copy(final, size)

	targetTotal := math.Max(target, Sum(minSize))
	offsetTotal := targetTotal - Sum(size)
	if offsetTotal == 0 {
		return final
	}

	// A zero weight sum means no pane takes a proportional share.
	if growTotal := Sum(grow); growTotal != 0 {
		for i := range final {
			final[i] += grow[i] / growTotal * offsetTotal
		}
	}
	for i := range final {
		final[i] = math.Max(final[i], minSize[i])
	}

	remaining := targetTotal - Sum(final)
	for i := len(final) - 1; i >= 0; i-- {
		next := math.Max(minSize[i], final[i]+remaining)
		remaining -= next - final[i]
		final[i] = next
	}
	return final
}

// Offsets returns the leading edge of every pane along the split axis.
func Offsets(sizes []float64) []float64 {
	offsets := make([]float64, len(sizes))
	var edge float64
	for i, s := range sizes {
		offsets[i] = edge
		edge += s
	}
	return offsets
}

// SashPositions returns the leading edge of the sash between every adjacent
// pane pair, centered on the boundary and never negative.
func SashPositions(sizes []float64, thickness float64) []float64 {
	if len(sizes) < 2 {
		return nil
	}
	positions := make([]float64, len(sizes)-1)
	var edge float64
	for i := 0; i < len(sizes)-1; i++ {
		edge += sizes[i]
		positions[i] = math.Max(0, edge-thickness/2)
	}
	return positions
}

// Cells converts solved sizes into whole terminal cells. Edges are rounded
// rather than sizes, so the cells add up to the rounded total.
func Cells(sizes []float64) []int {
	cells := make([]int, len(sizes))
	var edge float64
	prev := 0
	for i, s := range sizes {
		edge += s
		next := int(math.Round(edge))
		if next < prev {
			next = prev
		}
		cells[i] = next - prev
		prev = next
	}
	return cells
}
