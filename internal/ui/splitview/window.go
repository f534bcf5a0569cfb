package splitview

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/google/uuid"
)

// PointerKind identifies a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in absolute terminal cells.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// Pos returns the event position.
func (e PointerEvent) Pos() cellbuf.Position {
	return cellbuf.Pos(e.X, e.Y)
}

// FromMouse translates a Bubble Tea mouse message. Wheel and non-left button
// presses are not pointer events.
func FromMouse(msg tea.MouseMsg) (PointerEvent, bool) {
	ev := PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return PointerEvent{}, false
		}
		ev.Kind = PointerDown
	case tea.MouseActionMotion:
		ev.Kind = PointerMove
	case tea.MouseActionRelease:
		ev.Kind = PointerUp
	default:
		return PointerEvent{}, false
	}
	return ev, true
}

// Handler receives window-scope pointer events.
type Handler interface {
	// HandlePointer reports whether the event was consumed. A consumed
	// PointerDown is not offered to later subscribers.
	HandlePointer(ev PointerEvent) bool
	// CancelDrag force-ends any drag in progress without reporting sizes.
	CancelDrag()
}

type subscription struct {
	id      uuid.UUID
	handler Handler
}

// Window is the window-scope event source shared by every split view of an
// application. It also tracks the render origin so nested split views know
// where on screen they are drawn.
type Window struct {
	subs    []subscription
	origins []cellbuf.Position
	frame   uint64
}

// NewWindow creates an empty window.
func NewWindow() *Window {
	return &Window{}
}

// Subscribe registers h for pointer events and returns the function that
// removes it. The returned function is safe to call more than once.
func (w *Window) Subscribe(h Handler) (unsubscribe func()) {
	id := uuid.New()
	w.subs = append(w.subs, subscription{id: id, handler: h})
	slog.Debug("window subscribe", "id", id, "subscribers", len(w.subs))

	return func() {
		for i, s := range w.subs {
			if s.id == id {
				w.subs = append(w.subs[:i:i], w.subs[i+1:]...)
				slog.Debug("window unsubscribe", "id", id, "subscribers", len(w.subs))
				return
			}
		}
	}
}

// Subscribers returns the number of registered handlers.
func (w *Window) Subscribers() int {
	return len(w.subs)
}

// Dispatch delivers ev to subscribers in registration order and reports
// whether any of them consumed it. Move and up events reach every
// subscriber; a down event stops at the first one that claims it.
func (w *Window) Dispatch(ev PointerEvent) bool {
	subs := make([]subscription, len(w.subs))
	copy(subs, w.subs)

	handled := false
	for _, s := range subs {
		if s.handler.HandlePointer(ev) {
			handled = true
			if ev.Kind == PointerDown {
				break
			}
		}
	}
	return handled
}

// Cancel ends every drag in progress, e.g. when the terminal loses focus and
// the matching pointer-up will never arrive.
func (w *Window) Cancel() {
	subs := make([]subscription, len(w.subs))
	copy(subs, w.subs)
	for _, s := range subs {
		s.handler.CancelDrag()
	}
}

// Origin returns the absolute position of whatever is currently rendering.
func (w *Window) Origin() cellbuf.Position {
	if len(w.origins) == 0 {
		return cellbuf.Pos(0, 0)
	}
	return w.origins[len(w.origins)-1]
}

// Frame identifies the current render pass. Views record it when drawn so
// views that were skipped by the last pass stop taking pointer input.
func (w *Window) Frame() uint64 {
	return w.frame
}

// Render calls fn with origin as the current render origin. An outermost
// call starts a new frame.
func (w *Window) Render(origin cellbuf.Position, fn func() string) string {
	if len(w.origins) == 0 {
		w.frame++
	}
	w.origins = append(w.origins, origin)
	defer func() { w.origins = w.origins[:len(w.origins)-1] }()
	return fn()
}
