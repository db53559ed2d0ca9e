package geom

import (
	"fmt"
	"math"
)

// Rect represents a rectangle with a top-left origin.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFrom creates a Rect from an origin and a size.
func RectFrom(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the y-coordinate of the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the x-coordinate of the right edge (exclusive).
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Center returns the center point.
func (r Rect) Center() Point { return Point{X: r.MidX(), Y: r.MidY()} }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsNull returns true for the zero Rect.
func (r Rect) IsNull() bool {
	return r == Rect{}
}

// Valid reports whether the origin is finite and the size is a valid Size.
func (r Rect) Valid() bool {
	return !math.IsNaN(r.X) && !math.IsNaN(r.Y) && !math.IsInf(r.X, 0) && !math.IsInf(r.Y, 0) &&
		r.Size().Valid()
}

// Contains returns true if p is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.MaxX() <= r.MaxX() && other.MaxY() <= r.MaxY()
}

// Inset returns a new Rect inset by the given Insets.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Left - in.Right,
		Height: r.Height - in.Top - in.Bottom,
	}
}

// Offset returns a new Rect moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// OffsetBy returns a new Rect moved by the vector p.
func (r Rect) OffsetBy(p Point) Rect {
	return r.Offset(p.X, p.Y)
}

// Intersection returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.MaxX(), other.MaxX())
	bottom := min(r.MaxY(), other.MaxY())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.MaxX(), other.MaxX())
	bottom := max(r.MaxY(), other.MaxY())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping. A rectangle with zero width or
// height intersects when its edge lies inside the other rectangle, counting
// the leading edge but not the trailing one.
func (r Rect) Intersects(other Rect) bool {
	return spanOverlaps(r.X, r.Width, other.X, other.Width) &&
		spanOverlaps(r.Y, r.Height, other.Y, other.Height)
}

// spanOverlaps reports whether [a, a+alen) and [b, b+blen) overlap, treating
// a zero-length span as the single point it starts at.
func spanOverlaps(a, alen, b, blen float64) bool {
	switch {
	case alen < 0 || blen < 0:
		return false
	case alen > 0 && blen > 0:
		return a < b+blen && b < a+alen
	case alen == 0 && blen == 0:
		return a == b
	case alen == 0:
		return a >= b && a < b+blen
	default:
		return b >= a && b < a+alen
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
