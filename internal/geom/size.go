package geom

import "math"

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Valid reports whether both dimensions are finite and non-negative.
func (s Size) Valid() bool {
	return validLength(s.Width) && validLength(s.Height)
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// validLength reports whether v can be used as a length.
func validLength(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidLength reports whether v is finite and non-negative.
func ValidLength(v float64) bool {
	return validLength(v)
}
