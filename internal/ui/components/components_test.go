package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sashay/internal/ui/msgs"
	"github.com/sadopc/sashay/internal/ui/theme"
)

// helpers

func testStyles() theme.Styles {
	return theme.NewStyles(theme.Default())
}

func testTheme() theme.Theme {
	return theme.Default()
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func specialKeyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// ─────────────────────────────────────────────────────────────────────────────
// StatusBar tests
// ─────────────────────────────────────────────────────────────────────────────

func TestStatusBar_NewDefault(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	if sb.mode != msgs.ModeNormal {
		t.Fatalf("expected initial mode ModeNormal, got %d", sb.mode)
	}
}

func TestStatusBar_SetMode(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetMode(msgs.ModeResize)
	if sb.mode != msgs.ModeResize {
		t.Fatalf("expected ModeResize, got %d", sb.mode)
	}
}

func TestStatusBar_SetMessage(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetMessage("Copied!")
	if sb.message != "Copied!" {
		t.Fatalf("expected message 'Copied!', got '%s'", sb.message)
	}
}

func TestStatusBar_UpdateClearsMessage(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetMessage("temporary")

	sb, _ = sb.Update(clearStatusMsg{})
	if sb.message != "" {
		t.Fatalf("expected empty message after clearStatusMsg, got '%s'", sb.message)
	}
}

func TestStatusBar_View_ContainsModeIndicator(t *testing.T) {
	tests := []struct {
		mode     msgs.AppMode
		expected string
	}{
		{msgs.ModeNormal, "NORMAL"},
		{msgs.ModeResize, "RESIZE"},
		{msgs.ModeHelp, "HELP"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			sb := NewStatusBar(testTheme(), testStyles())
			sb.SetMode(tt.mode)
			sb.SetWidth(120)

			view := sb.View()
			if !strings.Contains(view, tt.expected) {
				t.Errorf("view should contain mode indicator '%s'", tt.expected)
			}
		})
	}
}

func TestStatusBar_View_ContainsSizes(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetSizes([]float64{61.8, 38.2})
	sb.SetWidth(120)

	view := sb.View()
	if !strings.Contains(view, "62 | 38") {
		t.Errorf("view should contain rounded sizes, got %q", view)
	}
}

func TestStatusBar_View_MessageWinsOverSizes(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetSizes([]float64{10, 20})
	sb.SetMessage("Theme: nord")
	sb.SetWidth(120)

	view := sb.View()
	if !strings.Contains(view, "Theme: nord") {
		t.Error("view should contain the message")
	}
	if strings.Contains(view, "10 | 20") {
		t.Error("sizes should be hidden while a message is shown")
	}
}

func TestStatusBar_View_ContainsTotals(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetTotals(4, 3, 1200, 40)
	sb.SetWidth(120)

	view := sb.View()
	if !strings.Contains(view, "4 panes/3 splits 1,200×40") {
		t.Errorf("view should contain totals, got %q", view)
	}
}

func TestStatusBar_View_ContainsHelpHint(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetWidth(120)

	view := sb.View()
	if !strings.Contains(view, "?:help") {
		t.Error("view should contain help hint")
	}
}

func TestFormatSizes(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		want  string
	}{
		{name: "empty", sizes: nil, want: ""},
		{name: "single", sizes: []float64{80}, want: "80"},
		{name: "rounds", sizes: []float64{33.4, 33.3, 33.3}, want: "33 | 33 | 33"},
		{name: "thousands", sizes: []float64{1500, 0.6}, want: "1,500 | 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSizes(tt.sizes); got != tt.want {
				t.Fatalf("FormatSizes(%v) = %q, want %q", tt.sizes, got, tt.want)
			}
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Toast tests
// ─────────────────────────────────────────────────────────────────────────────

func TestToast_NewDefault(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	if toast.Visible {
		t.Fatal("toast should start hidden")
	}
}

func TestToast_Show(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())

	cmd := toast.Show("Sizes copied", msgs.ToastInfo, 2*time.Second)
	if !toast.Visible {
		t.Fatal("toast should be visible after Show")
	}
	if toast.text != "Sizes copied" {
		t.Fatalf("expected text 'Sizes copied', got '%s'", toast.text)
	}
	if toast.Level() != msgs.ToastInfo {
		t.Fatalf("expected info level, got %v", toast.Level())
	}
	if toast.duration != 2*time.Second {
		t.Fatalf("expected duration 2s, got %v", toast.duration)
	}
	if cmd == nil {
		t.Fatal("Show should return a tick cmd for auto-dismiss")
	}
}

func TestToast_Show_ErrorState(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	toast.Show("Clipboard unavailable", msgs.ToastError, 0)
	if toast.Level() != msgs.ToastError {
		t.Fatal("toast should be in error state")
	}
	// Zero duration should default to 3s
	if toast.duration != 3*time.Second {
		t.Fatalf("expected default 3s duration, got %v", toast.duration)
	}
}

func TestToast_Update_DismissMsg(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	toast.Show("hello", msgs.ToastInfo, time.Second)

	toast, _ = toast.Update(toastExpiredMsg{seq: toast.seq})
	if toast.Visible {
		t.Fatal("toast should be hidden after dismiss")
	}
	if toast.text != "" {
		t.Fatalf("toast text should be empty after dismiss, got '%s'", toast.text)
	}
}

func TestToast_StaleTimerKeepsNewerToast(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	first := toast.Show("Layout reset", msgs.ToastInfo, time.Second)
	toast.Show("Resize of root cancelled (esc)", msgs.ToastResize, time.Second)

	if first == nil {
		t.Fatal("Show should return a tick cmd")
	}
	toast, _ = toast.Update(toastExpiredMsg{seq: 1})
	if !toast.Visible {
		t.Fatal("the first toast's timer should not hide the second")
	}
	toast, _ = toast.Update(toastExpiredMsg{seq: 2})
	if toast.Visible {
		t.Fatal("the second toast's timer should hide it")
	}
}

func TestToast_View_LevelMarkers(t *testing.T) {
	tests := []struct {
		level msgs.ToastLevel
		mark  string
	}{
		{msgs.ToastInfo, "✓"},
		{msgs.ToastError, "✗"},
		{msgs.ToastResize, "↔"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			toast := NewToast(testTheme(), testStyles())
			toast.Show("note", tt.level, time.Second)
			if view := toast.View(); !strings.Contains(view, tt.mark+" note") {
				t.Fatalf("view %q should contain %q", view, tt.mark+" note")
			}
		})
	}
}

func TestToast_View_WhenHidden(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	if view := toast.View(); view != "" {
		t.Fatalf("hidden toast should render empty string, got: %q", view)
	}
}

func TestToast_View_WhenVisible(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	toast.Show("Layout reset", msgs.ToastInfo, time.Second)
	view := toast.View()
	if view == "" {
		t.Fatal("visible toast should not render empty")
	}
	if !strings.Contains(view, "Layout reset") {
		t.Error("toast view should contain the message text")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Help tests
// ─────────────────────────────────────────────────────────────────────────────

func TestHelp_NewDefault(t *testing.T) {
	h := NewHelp(testTheme(), testStyles())
	if h.Visible {
		t.Fatal("help should start hidden")
	}
}

func TestHelp_Toggle(t *testing.T) {
	h := NewHelp(testTheme(), testStyles())
	h.SetSize(120, 40)

	h.Toggle()
	if !h.Visible {
		t.Fatal("should be visible after first toggle")
	}

	h.Toggle()
	if h.Visible {
		t.Fatal("should be hidden after second toggle")
	}
}

func TestHelp_Esc_Closes(t *testing.T) {
	h := NewHelp(testTheme(), testStyles())
	h.SetSize(120, 40)
	h.Toggle()

	h, cmd := h.Update(specialKeyMsg(tea.KeyEscape))
	if h.Visible {
		t.Fatal("help should close on esc")
	}
	if cmd == nil {
		t.Fatal("esc should emit SetModeMsg")
	}
	msg := cmd()
	setMode, ok := msg.(msgs.SetModeMsg)
	if !ok {
		t.Fatalf("expected SetModeMsg, got %T", msg)
	}
	if setMode.Mode != msgs.ModeNormal {
		t.Fatalf("expected ModeNormal, got %d", setMode.Mode)
	}
}

func TestHelp_QuestionMark_Closes(t *testing.T) {
	h := NewHelp(testTheme(), testStyles())
	h.SetSize(120, 40)
	h.Toggle()

	h, cmd := h.Update(keyMsg("?"))
	if h.Visible {
		t.Fatal("help should close on ?")
	}
	if cmd == nil {
		t.Fatal("? should emit SetModeMsg")
	}
}

func TestHelp_IgnoresInputWhenHidden(t *testing.T) {
	h := NewHelp(testTheme(), testStyles())
	_, cmd := h.Update(specialKeyMsg(tea.KeyEscape))
	if cmd != nil {
		t.Fatal("hidden help should not produce cmds")
	}
}

func TestHelp_View_WhenHidden(t *testing.T) {
	h := NewHelp(testTheme(), testStyles())
	if view := h.View(); view != "" {
		t.Fatalf("hidden help should render empty, got %q", view)
	}
}

func TestHelp_View_WhenVisible(t *testing.T) {
	h := NewHelp(testTheme(), testStyles())
	h.SetSize(120, 40)
	h.Toggle()

	view := h.View()
	if view == "" {
		t.Fatal("visible help should not render empty")
	}
	for _, want := range []string{"Keyboard & Mouse", "General", "Layout", "Mouse", "Drag sash"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view should contain %q", want)
		}
	}
}

func TestHelp_SetSize(t *testing.T) {
	h := NewHelp(testTheme(), testStyles())
	h.SetSize(200, 50)
	if h.width != 200 {
		t.Fatalf("expected width 200, got %d", h.width)
	}
	if h.height != 50 {
		t.Fatalf("expected height 50, got %d", h.height)
	}
}
