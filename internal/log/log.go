// Package log configures logging for sashay.
//
// The TUI owns the terminal, so while it runs developer logs go to a file
// (or nowhere). Subcommands run headless and log to stderr.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// OutputMode determines where user-facing output goes.
type OutputMode int

const (
	// ModeTUI means the terminal belongs to Bubble Tea; user output is dropped.
	ModeTUI OutputMode = iota
	// ModeHeadless means user output is printed to stdout.
	ModeHeadless
)

var mode atomic.Int32

func init() {
	mode.Store(int32(ModeHeadless))
}

// Setup installs the default slog logger. An empty path discards logs in TUI
// mode and writes them to stderr in headless mode. The returned function
// closes the log file, if any.
func Setup(path string, debug bool, m OutputMode) (func() error, error) {
	SetMode(m)

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closer := func() error { return nil }
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closer, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f.Close
	case m == ModeHeadless:
		w = os.Stderr
	}

	slog.SetDefault(slog.New(NewHandler(w, &slog.HandlerOptions{Level: level})))
	return closer, nil
}

// SetMode changes the output mode.
func SetMode(m OutputMode) {
	mode.Store(int32(m))
}

// GetMode returns the current output mode.
func GetMode() OutputMode {
	return OutputMode(mode.Load())
}

// --- User-Facing Output (styled, mode-aware) ---

// UserError prints a styled error message to the user.
func UserError(msg string) {
	printStyled(os.Stderr, renderError(msg))
}

// UserSuccess prints a styled success message to the user.
func UserSuccess(msg string) {
	printStyled(os.Stdout, renderSuccess(msg))
}

// UserInfo prints an informational message to the user.
func UserInfo(msg string) {
	printStyled(os.Stdout, msg)
}

func printStyled(w io.Writer, msg string) {
	if GetMode() == ModeHeadless {
		io.WriteString(w, msg+"\n")
	}
}
