// Package splitview implements a resizable split-pane component.
//
// A Model lays out its panes along one axis, separated by sashes that can be
// dragged with the mouse. The owner of a Model keeps the authoritative size
// of every pane: on each render it passes the sizes in through Props, and a
// drag only proposes new sizes through Props.OnSizeChange. Nesting is done by
// rendering another Model from a Responsive pane.
package splitview

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/sadopc/sashay/internal/ui/layout"
)

var (
	ErrNoPanes        = errors.New("split view needs at least one pane")
	ErrLengthMismatch = errors.New("pane settings have different lengths")
	ErrNegative       = errors.New("pane settings must not be negative")
)

// Props configure a split view for one render.
type Props struct {
	Direction Direction

	// Size, MinSize and Grow hold one entry per pane.
	Size    []float64
	MinSize []float64
	Grow    []float64

	// Width and Height are the container extent in cells.
	Width  int
	Height int

	// OnSizeChange receives the proposed sizes on every drag move. May be nil.
	OnSizeChange func(size []float64)

	Children []Content
}

// Validate checks that every per-pane setting describes the same panes.
func (p Props) Validate() error {
	n := len(p.Size)
	if n == 0 {
		return ErrNoPanes
	}
	if len(p.MinSize) != n || len(p.Grow) != n || len(p.Children) != n {
		return fmt.Errorf("%w: size=%d min_size=%d grow=%d children=%d",
			ErrLengthMismatch, n, len(p.MinSize), len(p.Grow), len(p.Children))
	}
	for i := 0; i < n; i++ {
		if p.Size[i] < 0 || p.MinSize[i] < 0 || p.Grow[i] < 0 {
			return fmt.Errorf("%w: pane %d", ErrNegative, i)
		}
	}
	return nil
}

func (p Props) mainExtent() int {
	if p.Direction == Column {
		return p.Height
	}
	return p.Width
}

// Styles control how sashes are drawn.
type Styles struct {
	Sash       lipgloss.Style
	SashActive lipgloss.Style
}

// DefaultStyles returns unstyled sashes.
func DefaultStyles() Styles {
	return Styles{
		Sash:       lipgloss.NewStyle(),
		SashActive: lipgloss.NewStyle().Bold(true),
	}
}

// Model is one split view instance. It is bound to a Window for its whole
// lifetime; call Close when it is no longer rendered.
type Model struct {
	window      *Window
	unsubscribe func()

	props  Props
	solved []float64
	styles Styles

	drag *dragSession

	// Geometry of the last render, in absolute cells, and the window frame
	// it was drawn in.
	bounds cellbuf.Rectangle
	sashes []cellbuf.Rectangle
	frame  uint64
}

// New creates a split view listening to pointer events on w.
func New(w *Window) *Model {
	m := &Model{
		window: w,
		styles: DefaultStyles(),
	}
	m.unsubscribe = w.Subscribe(m)
	return m
}

// Close releases the window subscription. It is safe to call more than once.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.drag = nil
}

// SetStyles replaces the sash styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetProps validates p and solves the pane sizes against the container.
// Invalid props leave the previous configuration in place.
func (m *Model) SetProps(p Props) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.props = p
	m.solved = layout.Solve(p.Size, p.MinSize, p.Grow, float64(p.mainExtent()))
	return nil
}

// Sizes returns the pane sizes solved by the last SetProps.
func (m *Model) Sizes() []float64 {
	out := make([]float64, len(m.solved))
	copy(out, m.solved)
	return out
}

// Dragging reports the sash being dragged, if any.
func (m *Model) Dragging() (sash int, ok bool) {
	if m.drag == nil {
		return -1, false
	}
	return m.drag.sash, true
}

// Interactive reports whether pane content should receive pointer input.
// Panes are inert while a sash is being dragged.
func (m *Model) Interactive() bool {
	return m.drag == nil
}

// HandlePointer implements Handler.
func (m *Model) HandlePointer(ev PointerEvent) bool {
	if m.frame != m.window.Frame() {
		// Not drawn by the last render pass: the geometry is stale.
		m.CancelDrag()
		return false
	}
	switch ev.Kind {
	case PointerDown:
		return m.pointerDown(ev)
	case PointerMove:
		return m.pointerMove(ev)
	case PointerUp:
		if m.drag == nil {
			return false
		}
		slog.Debug("sash drag end", "sash", m.drag.sash)
		m.drag = nil
		return true
	}
	return false
}

// CancelDrag implements Handler.
func (m *Model) CancelDrag() {
	if m.drag != nil {
		slog.Debug("sash drag cancelled", "sash", m.drag.sash)
		m.drag = nil
	}
}

func (m *Model) pointerDown(ev PointerEvent) bool {
	pos := ev.Pos()
	if m.drag != nil {
		return pos.In(m.bounds)
	}
	for i, r := range m.sashes {
		if !pos.In(r) {
			continue
		}
		start := make([]float64, len(m.solved))
		copy(start, m.solved)
		m.drag = &dragSession{sash: i, start: pos, startSize: start}
		slog.Debug("sash drag start", "sash", i, "x", ev.X, "y", ev.Y)
		return true
	}
	return false
}

func (m *Model) pointerMove(ev PointerEvent) bool {
	if m.drag == nil {
		return false
	}
	if len(m.props.MinSize) != len(m.drag.startSize) {
		// Panes were added or removed mid-drag.
		m.drag = nil
		return false
	}
	d := m.props.Direction
	delta := d.axis(ev.X, ev.Y) - d.axis(m.drag.start.X, m.drag.start.Y)
	next := Resize(m.drag.startSize, m.props.MinSize, m.drag.sash, float64(delta))

	if m.props.OnSizeChange != nil {
		m.props.OnSizeChange(next)
	}
	return true
}
