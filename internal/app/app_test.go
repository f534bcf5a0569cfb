package app

import (
	"math"
	"os"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sashay/internal/config"
	"github.com/sadopc/sashay/internal/ui/msgs"
	"github.com/sadopc/sashay/internal/ui/theme"
)

// testApp creates an App with the default golden-ratio layout.
func testApp() App {
	return New(config.DefaultConfig())
}

// testAppRendered returns an App resized to 80×25 and rendered once, so
// every split view knows where its sashes are.
func testAppRendered(t *testing.T) App {
	t.Helper()
	a := testApp()
	t.Cleanup(a.Close)
	a = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 25})
	return a
}

// update feeds msg to a and renders the result like the Bubble Tea loop does.
func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	a = m.(App)
	a.View()
	return a
}

// keyMsg creates a tea.KeyMsg for a single rune key.
func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// runCmd executes cmd and feeds its message back into a.
func runCmd(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a cmd")
	}
	return update(t, a, cmd())
}

func approxEqual(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			return false
		}
	}
	return true
}

// --- Tests ---

func TestNew_DefaultState(t *testing.T) {
	a := testApp()
	defer a.Close()

	if a.mode != msgs.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", a.mode)
	}
	if a.ready {
		t.Error("expected ready=false before WindowSizeMsg")
	}
	if a.store == nil {
		t.Fatal("expected non-nil store")
	}
	wantOrder := []string{"root", "root/0", "root/0/1"}
	if !slices.Equal(a.tree.order, wantOrder) {
		t.Errorf("split views = %v, want %v", a.tree.order, wantOrder)
	}
	if len(a.tree.leaves) != 4 {
		t.Errorf("expected 4 leaves, got %d", len(a.tree.leaves))
	}
	if a.window.Subscribers() != 3 {
		t.Errorf("expected 3 window subscribers, got %d", a.window.Subscribers())
	}
}

func TestNew_NilLayoutUsesDefault(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout = nil
	a := New(cfg)
	defer a.Close()

	if len(a.tree.order) != 3 {
		t.Fatalf("expected default layout, got %v", a.tree.order)
	}
}

func TestClose_Unsubscribes(t *testing.T) {
	a := update(t, testApp(), tea.WindowSizeMsg{Width: 80, Height: 25})
	a.Close()
	if a.window.Subscribers() != 0 {
		t.Fatalf("expected 0 subscribers after Close, got %d", a.window.Subscribers())
	}
	if keys := a.store.Keys(); len(keys) != 0 {
		t.Fatalf("expected an empty store after Close, got %v", keys)
	}
	a.Close()
}

func TestWindowSizeMsg_SetsReadyAndChrome(t *testing.T) {
	a := testApp()
	defer a.Close()

	m, cmd := a.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	if cmd != nil {
		t.Error("expected nil cmd from WindowSizeMsg")
	}
	a = m.(App)

	if !a.ready {
		t.Error("expected ready=true after WindowSizeMsg")
	}
	if a.chrome.ContentWidth != 120 || a.chrome.ContentHeight != 29 {
		t.Errorf("content = %dx%d, want 120x29", a.chrome.ContentWidth, a.chrome.ContentHeight)
	}
}

func TestView_NotReady(t *testing.T) {
	a := testApp()
	defer a.Close()
	if got := a.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestView_InitializesStore(t *testing.T) {
	a := testAppRendered(t)

	wantKeys := []string{"root", "root/0", "root/0/1"}
	if got := a.store.Keys(); !slices.Equal(got, wantKeys) {
		t.Fatalf("store keys = %v, want %v", got, wantKeys)
	}
	if got := a.store.Sizes("root"); !approxEqual(got, []float64{0.618 * 80, (1 - 0.618) * 80}) {
		t.Errorf("root sizes = %v", got)
	}
	if got := a.store.Sizes("root/0"); !approxEqual(got, []float64{(1 - 0.618) * 24, 0.618 * 24}) {
		t.Errorf("root/0 sizes = %v", got)
	}
}

func TestView_ShowsPanesAndStatusBar(t *testing.T) {
	a := testAppRendered(t)
	view := a.View()

	for _, want := range []string{"Olive", "Clay", "Ocean", "Lilac", "NORMAL", "?:help"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 25 {
		t.Errorf("view has %d lines, want 25", lines)
	}
}

func TestDrag_RootSash(t *testing.T) {
	a := testAppRendered(t)
	start := a.store.Sizes("root")

	// Root row: cells [49, 31], sash drawn on x=48.
	a = update(t, a, press(48, 3))
	if a.mode != msgs.ModeResize {
		t.Fatalf("expected ModeResize while dragging, got %v", a.mode)
	}

	a = update(t, a, motion(58, 3))
	want := []float64{start[0] + 10, start[1] - 10}
	if got := a.store.Sizes("root"); !approxEqual(got, want) {
		t.Fatalf("root sizes = %v, want %v", got, want)
	}

	a = update(t, a, release(58, 3))
	if a.mode != msgs.ModeNormal {
		t.Fatalf("expected ModeNormal after release, got %v", a.mode)
	}

	// Further motion without a press changes nothing.
	a = update(t, a, motion(70, 3))
	if got := a.store.Sizes("root"); !approxEqual(got, want) {
		t.Fatalf("sizes changed after release: %v", got)
	}
}

func TestDrag_RespectsMinimum(t *testing.T) {
	a := testAppRendered(t)
	start := a.store.Sizes("root")

	a = update(t, a, press(48, 3))
	a = update(t, a, motion(79, 3))

	// Lilac has a 10-cell minimum.
	want := []float64{start[0] + start[1] - 10, 10}
	if got := a.store.Sizes("root"); !approxEqual(got, want) {
		t.Fatalf("root sizes = %v, want %v", got, want)
	}
}

func TestDrag_NestedColumnSash(t *testing.T) {
	a := testAppRendered(t)
	rootStart := a.store.Sizes("root")
	start := a.store.Sizes("root/0")

	// Column inside the left pane: cells [9, 15], sash drawn on y=8.
	a = update(t, a, press(10, 8))
	a = update(t, a, motion(10, 12))

	want := []float64{start[0] + 4, start[1] - 4}
	if got := a.store.Sizes("root/0"); !approxEqual(got, want) {
		t.Fatalf("root/0 sizes = %v, want %v", got, want)
	}
	if got := a.store.Sizes("root"); !approxEqual(got, rootStart) {
		t.Fatalf("root sizes changed: %v", got)
	}
}

func TestDrag_InnermostRowSash(t *testing.T) {
	a := testAppRendered(t)
	start := a.store.Sizes("root/0/1")

	// Row at (0, 9), 48 wide (the root sash covers x=48): cells [18, 30],
	// sash drawn on x=17.
	a = update(t, a, press(17, 15))
	a = update(t, a, motion(25, 15))

	want := []float64{start[0] + 7, start[1] - 7}
	if got := a.store.Sizes("root/0/1"); !approxEqual(got, want) {
		t.Fatalf("root/0/1 sizes = %v, want %v", got, want)
	}
}

func TestDrag_PressOnPaneIsIgnored(t *testing.T) {
	a := testAppRendered(t)
	before := a.store.Snapshot()

	a = update(t, a, press(60, 5))
	a = update(t, a, motion(70, 5))

	if a.mode != msgs.ModeNormal {
		t.Fatalf("expected ModeNormal, got %v", a.mode)
	}
	for k, v := range before {
		if got := a.store.Sizes(k); !slices.Equal(got, v) {
			t.Errorf("%s changed: %v -> %v", k, v, got)
		}
	}
}

func TestBlur_CancelsDrag(t *testing.T) {
	a := testAppRendered(t)
	start := a.store.Sizes("root")

	a = update(t, a, press(48, 3))
	a = update(t, a, tea.BlurMsg{})
	if a.mode != msgs.ModeNormal {
		t.Fatalf("expected ModeNormal after blur, got %v", a.mode)
	}

	if !a.toast.Visible || a.toast.Level() != msgs.ToastResize {
		t.Fatalf("expected a resize toast after blur, visible=%v level=%v", a.toast.Visible, a.toast.Level())
	}
	if view := a.View(); !strings.Contains(view, "Resize of root cancelled (focus lost)") {
		t.Errorf("view should report the cancelled drag, got %q", view)
	}

	a = update(t, a, motion(60, 3))
	if got := a.store.Sizes("root"); !slices.Equal(got, start) {
		t.Fatalf("sizes changed after blur: %v", got)
	}
}

func TestBlur_WithoutDragIsSilent(t *testing.T) {
	a := testAppRendered(t)

	a = update(t, a, tea.BlurMsg{})
	if a.toast.Visible {
		t.Fatal("blur without a drag should not show a toast")
	}
}

func TestEsc_CancelsDrag(t *testing.T) {
	a := testAppRendered(t)
	start := a.store.Sizes("root")

	a = update(t, a, press(48, 3))
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEscape})
	if !a.toast.Visible || a.toast.Level() != msgs.ToastResize {
		t.Fatal("expected a resize toast after esc")
	}
	a = update(t, a, motion(60, 3))

	if got := a.store.Sizes("root"); !slices.Equal(got, start) {
		t.Fatalf("sizes changed after esc: %v", got)
	}
}

func TestGlobalKey_Quit(t *testing.T) {
	a := testAppRendered(t)

	_, cmd := a.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("expected quit cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestGlobalKey_ResetLayout(t *testing.T) {
	a := testAppRendered(t)
	start := a.store.Sizes("root")

	a = update(t, a, press(48, 3))
	a = update(t, a, motion(40, 3))
	a = update(t, a, release(40, 3))
	if got := a.store.Sizes("root"); slices.Equal(got, start) {
		t.Fatal("drag should have changed the sizes")
	}

	_, cmd := a.Update(keyMsg('r'))
	a = runCmd(t, a, cmd)

	if got := a.store.Sizes("root"); !slices.Equal(got, start) {
		t.Fatalf("root sizes = %v after reset, want %v", got, start)
	}
	if !a.toast.Visible {
		t.Error("expected a toast after reset")
	}
}

func TestGlobalKey_CycleTheme(t *testing.T) {
	a := testAppRendered(t)
	before := a.theme.Name

	_, cmd := a.Update(keyMsg('t'))
	a = runCmd(t, a, cmd)

	if want := theme.Next(before).Name; a.theme.Name != want {
		t.Fatalf("theme = %q, want %q", a.theme.Name, want)
	}
}

func TestGlobalKey_Help(t *testing.T) {
	a := testAppRendered(t)

	_, cmd := a.Update(keyMsg('?'))
	a = runCmd(t, a, cmd)
	if !a.help.Visible {
		t.Fatal("expected help visible")
	}
	if a.mode != msgs.ModeHelp {
		t.Fatalf("expected ModeHelp, got %v", a.mode)
	}

	// Mouse input does not reach the panes behind the overlay.
	a = update(t, a, press(48, 3))
	if _, _, ok := a.tree.dragging(); ok {
		t.Fatal("drag started under the help overlay")
	}

	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEscape})
	a = runCmd(t, m.(App), cmd)
	if a.help.Visible || a.mode != msgs.ModeNormal {
		t.Fatal("esc should close help and return to normal mode")
	}
}

func TestStatusBar_ShowsDraggedSizes(t *testing.T) {
	a := testAppRendered(t)

	a = update(t, a, press(48, 3))
	a = update(t, a, motion(58, 3))

	view := a.statusBar.View()
	if !strings.Contains(view, "RESIZE") {
		t.Error("status bar should show RESIZE while dragging")
	}
	if !strings.Contains(view, "59 | 21") {
		t.Errorf("status bar should show dragged sizes, got %q", view)
	}
}

func TestSizesYAML(t *testing.T) {
	a := testAppRendered(t)

	out, err := sizesYAML(a.store)
	if err != nil {
		t.Fatalf("sizesYAML: %v", err)
	}
	for _, want := range []string{"root:", "root/0:", "root/0/1:", "49.4", "30.6"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml %q missing %q", out, want)
		}
	}
}

func TestOverlayTopRight_KeepsGeometry(t *testing.T) {
	bg := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}, "\n")
	got := overlayTopRight(bg, "XY\nZW", 10)

	want := strings.Join([]string{"aaaaaaXY", "bbbbbbZW", "cccccccccc"}, "\n")
	if got != want {
		t.Fatalf("overlayTopRight = %q, want %q", got, want)
	}
}

func TestFilePane_RendersHighlightedFile(t *testing.T) {
	path := t.TempDir() + "/notes.go"
	if err := os.WriteFile(path, []byte("package notes\n\nconst Golden = 0.618\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Layout = &config.Node{
		Direction: "row",
		Panes: []*config.Node{
			{Title: "Code", File: path},
			{Title: "Plain"},
		},
	}
	a := New(cfg)
	t.Cleanup(a.Close)
	a = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 12})

	if _, ok := a.tree.files["root/0"]; !ok {
		t.Fatal("expected root/0 to be a file pane")
	}
	view := a.View()
	for _, want := range []string{"Code", "Plain"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	if !strings.Contains(a.tree.files["root/0"], "Golden") {
		t.Error("file pane should contain the file text")
	}
}

func TestFilePane_MissingFileShowsError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout = &config.Node{
		Panes: []*config.Node{{File: "/does/not/exist.go"}, {}},
	}
	a := New(cfg)
	defer a.Close()

	if !strings.Contains(a.tree.files["root/0"], "exist.go") {
		t.Fatalf("expected an error mentioning the file, got %q", a.tree.files["root/0"])
	}
}
