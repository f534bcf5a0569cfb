package splitview

// ContentKind tags the variant held by a Content.
type ContentKind int

const (
	// ContentFixed content is rendered as-is.
	ContentFixed ContentKind = iota
	// ContentResponsive content is produced from the pane's resolved extent.
	ContentResponsive
)

// Content is the body of a pane: either a fixed rendering or a function of
// the pane's width and height, re-evaluated on every render.
type Content struct {
	kind   ContentKind
	text   string
	render func(width, height int) string
}

// Fixed returns content that renders s unchanged.
func Fixed(s string) Content {
	return Content{kind: ContentFixed, text: s}
}

// Responsive returns content produced by fn for every render. fn may be
// called repeatedly and must return the same output for the same extent.
func Responsive(fn func(width, height int) string) Content {
	return Content{kind: ContentResponsive, render: fn}
}

// Kind reports which variant c holds.
func (c Content) Kind() ContentKind {
	return c.kind
}

// Resolve renders c for a pane of the given size.
func (c Content) Resolve(width, height int) string {
	switch c.kind {
	case ContentResponsive:
		if c.render == nil {
			return ""
		}
		return c.render(width, height)
	default:
		return c.text
	}
}
