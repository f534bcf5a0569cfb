package splitview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"

	"github.com/sadopc/sashay/internal/ui/layout"
)

// sashThickness is the width of a sash in cells.
const sashThickness = 1

// run is a contiguous stretch of cells along the main axis owned either by a
// pane or by a sash.
type run struct {
	sash   bool
	index  int
	start  int
	length int
}

// View renders the split view at the current window render origin. Panes
// fill Width×Height exactly; anything beyond is clipped.
func (m *Model) View() string {
	p := m.props
	origin := m.window.Origin()
	m.bounds = cellbuf.Rectangle{Min: origin, Max: origin.Add(cellbuf.Pos(p.Width, p.Height))}
	m.sashes = m.sashes[:0]
	m.frame = m.window.Frame()

	if len(m.solved) == 0 || p.Width <= 0 || p.Height <= 0 {
		return ""
	}

	cells := layout.Cells(m.solved)
	edges := make([]int, len(cells)+1)
	for i, c := range cells {
		edges[i+1] = edges[i] + c
	}
	sashAt := sashCells(cells)
	extent := p.mainExtent()

	for _, c := range sashAt {
		m.sashes = append(m.sashes, m.sashRect(origin, c, extent))
	}

	runs := partition(edges, sashAt, extent)
	boxes := make([]string, 0, len(runs))
	rendered := make([]bool, len(cells))
	for _, r := range runs {
		if r.sash {
			boxes = append(boxes, m.renderSash(r))
			continue
		}
		w, h := m.runBox(r)
		if rendered[r.index] {
			boxes = append(boxes, fit("", w, h))
			continue
		}
		rendered[r.index] = true
		boxes = append(boxes, fit(m.renderPane(origin, r), w, h))
	}

	if p.Direction == Column {
		return lipgloss.JoinVertical(lipgloss.Left, boxes...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// sashCells returns the cell each sash is drawn on: centered on the boundary
// between two panes, never before the first cell and always after the
// previous sash.
func sashCells(cells []int) []int {
	sizes := make([]float64, len(cells))
	for i, c := range cells {
		sizes[i] = float64(c)
	}
	positions := layout.SashPositions(sizes, sashThickness)
	out := make([]int, len(positions))
	for i, pos := range positions {
		out[i] = int(math.Floor(pos))
		// A collapsed pane puts two boundaries on the same cell; each sash
		// still gets a cell of its own so it can be grabbed.
		if i > 0 && out[i] <= out[i-1] {
			out[i] = out[i-1] + 1
		}
	}
	return out
}

// partition splits [0, extent) into pane and sash runs. Sashes are drawn over
// the panes they overlap.
func partition(edges, sashes []int, extent int) []run {
	var runs []run
	pane := 0
	for c := 0; c < extent; c++ {
		cur := run{index: -1, start: c, length: 1}
		for i, s := range sashes {
			if s == c {
				cur.sash, cur.index = true, i
				break
			}
		}
		if !cur.sash {
			for pane < len(edges)-2 && c >= edges[pane+1] {
				pane++
			}
			cur.index = pane
		}

		if n := len(runs); n > 0 && !cur.sash && !runs[n-1].sash && runs[n-1].index == cur.index {
			runs[n-1].length++
			continue
		}
		runs = append(runs, cur)
	}
	return runs
}

func (m *Model) runBox(r run) (w, h int) {
	if m.props.Direction == Column {
		return m.props.Width, r.length
	}
	return r.length, m.props.Height
}

func (m *Model) sashRect(origin cellbuf.Position, c, extent int) cellbuf.Rectangle {
	if c >= extent {
		return cellbuf.Rectangle{}
	}
	if m.props.Direction == Column {
		at := origin.Add(cellbuf.Pos(0, c))
		return cellbuf.Rectangle{Min: at, Max: at.Add(cellbuf.Pos(m.props.Width, sashThickness))}
	}
	at := origin.Add(cellbuf.Pos(c, 0))
	return cellbuf.Rectangle{Min: at, Max: at.Add(cellbuf.Pos(sashThickness, m.props.Height))}
}

// renderPane resolves the content of the pane owning r. Content is sized to
// the visible run, which excludes any cell a sash is drawn over, and rendered
// with the run's first cell as origin.
func (m *Model) renderPane(origin cellbuf.Position, r run) string {
	p := m.props
	at := origin.Add(cellbuf.Pos(r.start, 0))
	if p.Direction == Column {
		at = origin.Add(cellbuf.Pos(0, r.start))
	}
	width, height := m.runBox(r)
	return m.window.Render(at, func() string {
		return p.Children[r.index].Resolve(width, height)
	})
}

func (m *Model) renderSash(r run) string {
	style := m.styles.Sash
	glyph := "│"
	if m.props.Direction == Column {
		glyph = "─"
	}
	if m.drag != nil && m.drag.sash == r.index {
		style = m.styles.SashActive
		glyph = "┃"
		if m.props.Direction == Column {
			glyph = "━"
		}
	}

	if m.props.Direction == Column {
		return style.Render(strings.Repeat(glyph, m.props.Width))
	}
	lines := make([]string, m.props.Height)
	for i := range lines {
		lines[i] = style.Render(glyph)
	}
	return strings.Join(lines, "\n")
}

// fit clips or pads s to exactly w×h cells.
func fit(s string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	src := strings.Split(s, "\n")
	lines := make([]string, h)
	for i := range lines {
		var line string
		if i < len(src) {
			line = truncate.String(src[i], uint(w))
		}
		lines[i] = padding.String(line, uint(w))
	}
	return strings.Join(lines, "\n")
}
