package config

import (
	"errors"
	"fmt"

	"github.com/sadopc/sashay/internal/ui/splitview"
)

var (
	ErrNoLayout       = errors.New("no layout defined")
	ErrLengthMismatch = errors.New("layout lists differ in length")
	ErrInvalidValue   = errors.New("invalid layout value")
)

// Node is one element of the layout tree. A node with panes is a split view;
// a node without panes is a leaf showing Title and Body, or File when set.
type Node struct {
	Title string `yaml:"title,omitempty"`
	Body  string `yaml:"body,omitempty"`
	Color string `yaml:"color,omitempty"`
	File  string `yaml:"file,omitempty"`
	// Lang overrides the syntax detected from File.
	Lang string `yaml:"lang,omitempty"`

	Direction string `yaml:"direction,omitempty"`
	// Ratio is each pane's initial share of the container. Defaults to even.
	Ratio []float64 `yaml:"ratio,omitempty"`
	// MinSize is each pane's minimum size in cells. Defaults to zero.
	MinSize []float64 `yaml:"min_size,omitempty"`
	// Grow is each pane's share of container resizes. Defaults to one.
	Grow  []float64 `yaml:"grow,omitempty"`
	Panes []*Node   `yaml:"panes,omitempty"`
}

// IsSplit reports whether n splits its area between child panes.
func (n *Node) IsSplit() bool {
	return len(n.Panes) > 0
}

// Validate checks n and its descendants. Lists that are present must have
// one entry per pane.
func (n *Node) Validate() error {
	return n.validate("layout")
}

func (n *Node) validate(path string) error {
	if n == nil {
		return fmt.Errorf("%s: %w", path, ErrNoLayout)
	}
	if !n.IsSplit() {
		return nil
	}
	if n.File != "" {
		return fmt.Errorf("%s: %w: file set on a node with panes", path, ErrInvalidValue)
	}
	if _, err := splitview.ParseDirection(n.Direction); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrInvalidValue, err)
	}

	count := len(n.Panes)
	lists := []struct {
		name   string
		values []float64
	}{
		{"ratio", n.Ratio},
		{"min_size", n.MinSize},
		{"grow", n.Grow},
	}
	for _, l := range lists {
		name, list := l.name, l.values
		if list == nil {
			continue
		}
		if len(list) != count {
			return fmt.Errorf("%s: %w: %s has %d entries for %d panes", path, ErrLengthMismatch, name, len(list), count)
		}
		for i, v := range list {
			if v < 0 {
				return fmt.Errorf("%s: %w: %s[%d] = %v", path, ErrInvalidValue, name, i, v)
			}
		}
	}

	for i, p := range n.Panes {
		if err := p.validate(fmt.Sprintf("%s.panes[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// SplitDirection returns the parsed direction, Row if invalid.
func (n *Node) SplitDirection() splitview.Direction {
	d, _ := splitview.ParseDirection(n.Direction)
	return d
}

// Ratios returns Ratio or an even split.
func (n *Node) Ratios() []float64 {
	if n.Ratio != nil {
		return n.Ratio
	}
	return fill(len(n.Panes), 1/float64(max(len(n.Panes), 1)))
}

// MinSizes returns MinSize or all zeros.
func (n *Node) MinSizes() []float64 {
	if n.MinSize != nil {
		return n.MinSize
	}
	return fill(len(n.Panes), 0)
}

// GrowWeights returns Grow or all ones.
func (n *Node) GrowWeights() []float64 {
	if n.Grow != nil {
		return n.Grow
	}
	return fill(len(n.Panes), 1)
}

func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// DefaultLayout returns the golden-ratio composition of three nested split
// views.
func DefaultLayout() *Node {
	const golden = 0.618
	return &Node{
		Direction: "row",
		Ratio:     []float64{golden, 1 - golden},
		MinSize:   []float64{20, 10},
		Grow:      []float64{1, 1},
		Panes: []*Node{
			{
				Direction: "column",
				Ratio:     []float64{1 - golden, golden},
				MinSize:   []float64{3, 3},
				Grow:      []float64{1, 1},
				Panes: []*Node{
					{Title: "Olive", Color: "#C7C676", Body: "Drag the lines between panes to resize them."},
					{
						Direction: "row",
						Ratio:     []float64{1 - golden, golden},
						MinSize:   []float64{10, 10},
						Grow:      []float64{1, 1},
						Panes: []*Node{
							{Title: "Clay", Color: "#BF9086"},
							{Title: "Ocean", Color: "#2A8AB4"},
						},
					},
				},
			},
			{Title: "Lilac", Color: "#988DAD", Body: "Resize the terminal to see growth weights at work."},
		},
	}
}
