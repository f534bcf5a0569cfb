package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/sashay/internal/config"
	"github.com/sadopc/sashay/internal/core/state"
	"github.com/sadopc/sashay/internal/ui/preview"
	"github.com/sadopc/sashay/internal/ui/splitview"
	"github.com/sadopc/sashay/internal/ui/theme"
)

const rootKey = "root"

// tree holds one split view per split node of the layout, keyed by the
// node's path ("root", "root/0", "root/0/1", ...).
type tree struct {
	layout *config.Node
	window *splitview.Window
	store  *state.Store

	views  map[string]*splitview.Model
	order  []string
	leaves map[string]int
	// files caches the rendered content of file leaves.
	files map[string]string

	theme  theme.Theme
	styles theme.Styles
}

func childKey(parent string, i int) string {
	return fmt.Sprintf("%s/%d", parent, i)
}

// newTree creates the split views for n in pre-order, so a parent is
// subscribed before its children and wins pointer-downs on its own sashes.
func newTree(n *config.Node, w *splitview.Window, store *state.Store, t theme.Theme, s theme.Styles) *tree {
	tr := &tree{
		layout: n,
		window: w,
		store:  store,
		views:  make(map[string]*splitview.Model),
		leaves: make(map[string]int),
		files:  make(map[string]string),
		theme:  t,
		styles: s,
	}
	tr.build(n, rootKey)
	return tr
}

func (tr *tree) build(n *config.Node, key string) {
	if !n.IsSplit() {
		tr.leaves[key] = len(tr.leaves)
		if n.File != "" {
			tr.files[key] = tr.loadFile(n)
		}
		return
	}
	m := splitview.New(tr.window)
	m.SetStyles(tr.styles.SplitView())
	tr.views[key] = m
	tr.order = append(tr.order, key)
	for i, p := range n.Panes {
		tr.build(p, childKey(key, i))
	}
}

// close releases every split view's window subscription and forgets the
// sizes they were given.
func (tr *tree) close() {
	for _, key := range tr.order {
		tr.views[key].Close()
	}
	tr.store.Clear()
}

func (tr *tree) setTheme(t theme.Theme, s theme.Styles) {
	tr.theme = t
	tr.styles = s
	for _, m := range tr.views {
		m.SetStyles(s.SplitView())
	}
	tr.reloadFiles(tr.layout, rootKey)
}

func (tr *tree) reloadFiles(n *config.Node, key string) {
	if n.File != "" && !n.IsSplit() {
		tr.files[key] = tr.loadFile(n)
	}
	for i, p := range n.Panes {
		tr.reloadFiles(p, childKey(key, i))
	}
}

// loadFile renders a file leaf: a title line followed by the highlighted
// file.
func (tr *tree) loadFile(n *config.Node) string {
	title := n.Title
	if title == "" {
		title = n.File
	}
	header := tr.styles.PaneTitle.Foreground(tr.theme.Accent).Render(title)

	body, err := preview.File(n.File, n.Lang, tr.theme.Syntax)
	if err != nil {
		slog.Warn("file pane", "file", n.File, "error", err)
		body = tr.styles.Error.Render(err.Error())
	}
	return header + "\n" + body
}

// dragging returns the split view with a sash drag in progress.
func (tr *tree) dragging() (key string, m *splitview.Model, ok bool) {
	for _, k := range tr.order {
		if _, ok := tr.views[k].Dragging(); ok {
			return k, tr.views[k], true
		}
	}
	return "", nil, false
}

// render draws the whole layout into a width×height box.
func (tr *tree) render(width, height int) string {
	return tr.renderNode(tr.layout, rootKey, width, height)
}

func (tr *tree) renderNode(n *config.Node, key string, width, height int) string {
	if !n.IsSplit() {
		return tr.renderLeaf(n, key, width, height)
	}

	d := n.SplitDirection()
	extent := width
	if d == splitview.Column {
		extent = height
	}
	ratios := n.Ratios()
	initial := make([]float64, len(ratios))
	for i, r := range ratios {
		initial[i] = r * float64(extent)
	}
	tr.store.Init(key, initial)

	children := make([]splitview.Content, len(n.Panes))
	for i, p := range n.Panes {
		p, ck := p, childKey(key, i)
		if content, ok := tr.files[ck]; ok {
			children[i] = splitview.Fixed(content)
			continue
		}
		children[i] = splitview.Responsive(func(w, h int) string {
			return tr.renderNode(p, ck, w, h)
		})
	}

	store := tr.store
	m := tr.views[key]
	err := m.SetProps(splitview.Props{
		Direction: d,
		Size:      store.Sizes(key),
		MinSize:   n.MinSizes(),
		Grow:      n.GrowWeights(),
		Width:     width,
		Height:    height,
		OnSizeChange: func(size []float64) {
			if store.Commit(key, size) {
				slog.Debug("sizes committed", "key", key, "revision", store.Revision)
			}
		},
		Children: children,
	})
	if err != nil {
		return tr.styles.Error.Render(key + ": " + err.Error())
	}
	return m.View()
}

func (tr *tree) renderLeaf(n *config.Node, key string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if content, ok := tr.files[key]; ok {
		return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(content)
	}
	bg := lipgloss.Color(n.Color)
	if n.Color == "" {
		bg = tr.theme.PaneColor(tr.leaves[key])
	}

	var lines []string
	if n.Title != "" {
		lines = append(lines, tr.styles.PaneTitle.Foreground(tr.theme.Base).Render(n.Title))
	}
	if n.Body != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(tr.theme.Base).Render(n.Body))
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(tr.theme.Base).Faint(true).
		Render(fmt.Sprintf("%d×%d", width, height)))

	return lipgloss.NewStyle().
		Background(bg).
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// sizesYAML renders every split view's sizes, rounded to a tenth of a cell.
func sizesYAML(store *state.Store) (string, error) {
	snap := store.Snapshot()
	for k, sizes := range snap {
		for i, s := range sizes {
			sizes[i] = float64(int(s*10+0.5)) / 10
		}
		snap[k] = sizes
	}
	out, err := yaml.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encoding sizes: %w", err)
	}
	return string(out), nil
}
