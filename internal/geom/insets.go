package geom

// Insets represents distances inward from each side of a box.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// InsetAll creates Insets with the same value on all sides.
func InsetAll(n float64) Insets {
	return Insets{Top: n, Left: n, Bottom: n, Right: n}
}

// InsetSymmetric creates Insets with vertical (top/bottom) and horizontal (left/right) values.
func InsetSymmetric(v, h float64) Insets {
	return Insets{Top: v, Left: h, Bottom: v, Right: h}
}

// Horizontal returns the sum of Left and Right.
func (e Insets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Insets) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all inset values are zero.
func (e Insets) IsZero() bool {
	return e.Top == 0 && e.Left == 0 && e.Bottom == 0 && e.Right == 0
}

// Valid reports whether every side is finite and non-negative.
func (e Insets) Valid() bool {
	return validLength(e.Top) && validLength(e.Left) && validLength(e.Bottom) && validLength(e.Right)
}
