package log

import (
	"context"
	"io"
	"log/slog"
)

// appName is attached to every record at the top level, outside any group.
const appName = "sashay"

// Handler is the text handler installed by Setup. Records written to
// io.Discard are rejected in Enabled so drag-time debug logging costs
// nothing when the TUI runs without a log file.
type Handler struct {
	inner   slog.Handler
	discard bool
}

// NewHandler creates a handler writing logfmt records to w.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	text := slog.NewTextHandler(w, opts)
	return &Handler{
		inner:   text.WithAttrs([]slog.Attr{slog.String("app", appName)}),
		discard: w == io.Discard,
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return !h.discard && h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs), discard: h.discard}
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name), discard: h.discard}
}
