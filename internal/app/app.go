package app

import (
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"

	"github.com/sadopc/sashay/internal/config"
	"github.com/sadopc/sashay/internal/core/state"
	"github.com/sadopc/sashay/internal/ui/components"
	"github.com/sadopc/sashay/internal/ui/layout"
	"github.com/sadopc/sashay/internal/ui/msgs"
	"github.com/sadopc/sashay/internal/ui/splitview"
	"github.com/sadopc/sashay/internal/ui/theme"
)

// App is the root Bubble Tea model. It owns the pane sizes of every split
// view and feeds them back in on each render.
type App struct {
	statusBar components.StatusBar
	help      components.Help
	toast     components.Toast

	store  *state.Store
	window *splitview.Window
	tree   *tree

	mode   msgs.AppMode
	chrome layout.Chrome
	keys   KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model. cfg.Layout must be valid.
func New(cfg config.Config) App {
	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	layoutTree := cfg.Layout
	if layoutTree == nil {
		layoutTree = config.DefaultLayout()
	}

	store := state.NewStore()
	window := splitview.NewWindow()

	a := App{
		statusBar: components.NewStatusBar(t, s),
		help:      components.NewHelp(t, s),
		toast:     components.NewToast(t, s),

		store:  store,
		window: window,
		tree:   newTree(layoutTree, window, store, t, s),

		mode: msgs.ModeNormal,
		keys: DefaultKeyMap(),

		theme:  t,
		styles: s,
	}
	slog.Debug("app created", "theme", t.Name, "split_views", len(a.tree.order))
	return a
}

// Close releases every split view. The App must not be used afterwards.
func (a App) Close() {
	a.tree.close()
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.chrome = layout.HandleResize(msg)
		a.statusBar.SetWidth(a.chrome.Width)
		a.help.SetSize(a.width, a.height)
		a.ready = true
		a.syncStatus()
		return a, nil

	case tea.MouseMsg:
		if a.help.Visible {
			return a, nil
		}
		ev, ok := splitview.FromMouse(msg)
		if !ok {
			return a, nil
		}
		a.window.Dispatch(ev)
		a.syncStatus()
		return a, nil

	case tea.BlurMsg:
		// The pointer-up may never arrive once focus is gone.
		cmd := a.cancelDrag("focus lost")
		return a, cmd

	case tea.KeyMsg:
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			return a, cmd
		}
		return a.handleKey(msg)

	case msgs.SetModeMsg:
		a.mode = msg.Mode
		if msg.Mode == msgs.ModeHelp && !a.help.Visible {
			a.window.Cancel()
			a.help.Toggle()
		}
		a.statusBar.SetMode(msg.Mode)
		return a, nil

	case msgs.ResetLayoutMsg:
		a.window.Cancel()
		a.store.Reset()
		a.syncStatus()
		cmd := a.toast.Show("Layout reset", msgs.ToastInfo, 2*time.Second)
		return a, cmd

	case msgs.CopySizesMsg:
		return a.copySizes()

	case msgs.CycleThemeMsg:
		return a.switchTheme(theme.Next(a.theme.Name))

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg.Text, msg.Level, msg.Duration)
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// syncStatus reflects the drag state in the mode indicator and the sizes
// shown by the status bar.
// cancelDrag ends any sash drag and, if one was in progress, tells the user
// the sizes stay where the last move left them.
func (a *App) cancelDrag(reason string) tea.Cmd {
	key, _, ok := a.tree.dragging()
	a.window.Cancel()
	a.syncStatus()
	if !ok {
		return nil
	}
	return a.toast.Show("Resize of "+key+" cancelled ("+reason+")", msgs.ToastResize, 2*time.Second)
}

func (a *App) syncStatus() {
	if key, _, ok := a.tree.dragging(); ok {
		a.mode = msgs.ModeResize
		a.statusBar.SetSizes(a.store.Sizes(key))
	} else {
		if a.mode == msgs.ModeResize {
			a.mode = msgs.ModeNormal
		}
		if root, ok := a.tree.views[rootKey]; ok {
			a.statusBar.SetSizes(root.Sizes())
		}
	}
	a.statusBar.SetMode(a.mode)
	a.statusBar.SetTotals(len(a.tree.leaves), len(a.tree.order), a.chrome.ContentWidth, a.chrome.ContentHeight)
}

func (a App) switchTheme(t theme.Theme) (tea.Model, tea.Cmd) {
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s

	a.statusBar.SetTheme(t, s)
	a.help.SetTheme(t, s)
	a.toast.SetTheme(t, s)
	a.tree.setTheme(t, s)

	cmd := a.toast.Show("Theme: "+t.Name, msgs.ToastInfo, 2*time.Second)
	return a, cmd
}

func (a App) copySizes() (tea.Model, tea.Cmd) {
	text, err := sizesYAML(a.store)
	if err != nil {
		cmd := a.toast.Show(err.Error(), msgs.ToastError, 3*time.Second)
		return a, cmd
	}
	if err := clipboard.WriteAll(text); err != nil {
		slog.Warn("clipboard write failed", "error", err)
		cmd := a.toast.Show("Clipboard error: "+err.Error(), msgs.ToastError, 3*time.Second)
		return a, cmd
	}
	cmd := a.toast.Show("Copied pane sizes", msgs.ToastInfo, 2*time.Second)
	return a, cmd
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	content := a.window.Render(cellbuf.Pos(0, 0), func() string {
		return a.tree.render(a.chrome.ContentWidth, a.chrome.ContentHeight)
	})

	main := content
	if a.chrome.StatusBarVisible {
		main = lipgloss.JoinVertical(lipgloss.Left, content, a.statusBar.View())
	}

	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
	)
}

// overlayTopRight draws overlay over the top-right corner of bg without
// moving anything else, so sash hit rects stay where they were drawn.
func overlayTopRight(bg, overlay string, width int) string {
	overlayWidth := lipgloss.Width(overlay)
	gap := width - overlayWidth - 2
	if gap < 0 {
		gap = 0
	}

	lines := strings.Split(bg, "\n")
	for i, ol := range strings.Split(overlay, "\n") {
		if i >= len(lines) {
			break
		}
		left := truncate.String(lines[i], uint(gap))
		lines[i] = padding.String(left, uint(gap)) + ol
	}
	return strings.Join(lines, "\n")
}
