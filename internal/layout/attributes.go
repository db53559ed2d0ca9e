package layout

import (
	"fmt"

	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/index"
)

// Attributes describe how one element is placed: its frame, transform,
// opacity, stacking order, visibility and identity.
//
// The category and element kind are fixed by the constructor. Everything else
// is written by a layout engine while it prepares; consumers treat the value
// as read-only and use Clone before adjusting it.
type Attributes struct {
	frame     geom.Rect
	alpha     float64
	Transform geom.Transform
	ZIndex    int
	Hidden    bool
	IndexPath index.Path

	category Category
	kind     string
}

func newAttributes(category Category, kind string, p index.Path) *Attributes {
	return &Attributes{
		alpha:     1,
		Transform: geom.Identity(),
		IndexPath: p,
		category:  category,
		kind:      kind,
	}
}

// NewCellAttributes returns attributes for the cell at p.
func NewCellAttributes(p index.Path) *Attributes {
	return newAttributes(CategoryCell, "", p)
}

// NewSupplementaryAttributes returns attributes for a supplementary view
// (header, footer, ...) of the given kind.
func NewSupplementaryAttributes(kind string, p index.Path) *Attributes {
	return newAttributes(CategorySupplementaryView, kind, p)
}

// NewDecorationAttributes returns attributes for a decoration view of the
// given kind.
func NewDecorationAttributes(kind string, p index.Path) *Attributes {
	return newAttributes(CategoryDecorationView, kind, p)
}

// Category returns what kind of view presents the element.
func (a *Attributes) Category() Category { return a.category }

// ElementKind returns the supplementary or decoration kind. It is empty for cells.
func (a *Attributes) ElementKind() string { return a.kind }

// IsCell reports whether the element is a cell.
func (a *Attributes) IsCell() bool { return a.category == CategoryCell }

// IsSupplementaryView reports whether the element is a supplementary view.
func (a *Attributes) IsSupplementaryView() bool { return a.category == CategorySupplementaryView }

// IsDecorationView reports whether the element is a decoration view.
func (a *Attributes) IsDecorationView() bool { return a.category == CategoryDecorationView }

// Frame returns the element's frame.
func (a *Attributes) Frame() geom.Rect { return a.frame }

// SetFrame sets the frame; center and size follow from it.
func (a *Attributes) SetFrame(r geom.Rect) { a.frame = r }

// Center returns the center of the frame.
func (a *Attributes) Center() geom.Point { return a.frame.Center() }

// SetCenter moves the frame so that it is centered on c, keeping its size.
func (a *Attributes) SetCenter(c geom.Point) {
	a.frame.X = c.X - a.frame.Width/2
	a.frame.Y = c.Y - a.frame.Height/2
}

// Size returns the frame size.
func (a *Attributes) Size() geom.Size { return a.frame.Size() }

// SetSize resizes the frame around its current center.
func (a *Attributes) SetSize(s geom.Size) {
	c := a.Center()
	a.frame = geom.Rect{X: c.X - s.Width/2, Y: c.Y - s.Height/2, Width: s.Width, Height: s.Height}
}

// Alpha returns the opacity in [0, 1].
func (a *Attributes) Alpha() float64 { return a.alpha }

// SetAlpha sets the opacity, clamped to [0, 1].
func (a *Attributes) SetAlpha(v float64) {
	a.alpha = min(max(v, 0), 1)
}

// Key returns the reuse key addressing this element.
func (a *Attributes) Key() ItemKey {
	return KeyFor(a)
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	c := *a
	return &c
}

// Equal reports whether both attributes describe the same element identically.
func (a *Attributes) Equal(b *Attributes) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (a *Attributes) String() string {
	switch a.category {
	case CategoryCell:
		return fmt.Sprintf("cell %v frame=%v", a.IndexPath, a.frame)
	default:
		return fmt.Sprintf("%s(%s) %v frame=%v", a.category, a.kind, a.IndexPath, a.frame)
	}
}
