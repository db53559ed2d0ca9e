package layout

import (
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/index"
)

// Geometry answers read-only queries over a prepared layout.
type Geometry interface {
	// ContentSize returns the size of the whole scrollable content.
	ContentSize() geom.Size

	// AttributesInRect returns attributes for every cell, supplementary and
	// decoration view whose frame intersects r, in section order.
	AttributesInRect(r geom.Rect) []*Attributes

	// AttributesForItem returns the attributes of the cell at p.
	AttributesForItem(p index.Path) (*Attributes, bool)

	// AttributesForSupplementary returns the attributes of a supplementary view.
	AttributesForSupplementary(kind string, p index.Path) (*Attributes, bool)

	// AttributesForDecoration returns the attributes of a decoration view.
	AttributesForDecoration(kind string, p index.Path) (*Attributes, bool)
}

// Layout is the capability interface every layout engine implements.
// The engine computes geometry in Prepare and answers Geometry queries from
// what it computed; it never calls the data source on its own.
type Layout interface {
	Geometry

	// Prepare recomputes geometry for the counts and bounds in ctx. On error
	// the previously prepared geometry stays in place.
	Prepare(ctx Context) error

	// Invalidate drops prepared geometry.
	Invalidate()

	// ShouldInvalidateForBoundsChange reports whether moving from oldBounds
	// to newBounds requires a new Prepare.
	ShouldInvalidateForBoundsChange(oldBounds, newBounds geom.Rect) bool

	// Snapshot returns an immutable copy of the prepared geometry that stays
	// valid after the layout is invalidated or prepared again.
	Snapshot() Geometry
}

// Context is what a layout engine sees of its collection while preparing.
type Context interface {
	NumberOfSections() int
	NumberOfItems(section int) int

	// Bounds is the visible area of the collection; engines pack against
	// its width (vertical scrolling) or height (horizontal scrolling).
	Bounds() geom.Rect

	// Delegate returns the sizing delegate, or nil. Engines type-assert it
	// against the optional interfaces they understand.
	Delegate() any
}

// StaticContext is a Context over a fixed count snapshot.
type StaticContext struct {
	Counts []int
	Rect   geom.Rect
	Sizing any
}

func (c StaticContext) NumberOfSections() int { return len(c.Counts) }

func (c StaticContext) NumberOfItems(section int) int {
	if section < 0 || section >= len(c.Counts) {
		return 0
	}
	return c.Counts[section]
}

func (c StaticContext) Bounds() geom.Rect { return c.Rect }

func (c StaticContext) Delegate() any { return c.Sizing }
