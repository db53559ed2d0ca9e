package geom

// Transform is a 4x4 homogeneous transform matrix in row-major order.
// The zero value is not the identity; use Identity.
type Transform struct {
	M [4][4]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	var t Transform
	for i := range 4 {
		t.M[i][i] = 1
	}
	return t
}

// IsIdentity reports whether t is the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Translate returns t followed by a translation.
func (t Transform) Translate(dx, dy, dz float64) Transform {
	for i := range 4 {
		w := t.M[i][3]
		t.M[i][0] += w * dx
		t.M[i][1] += w * dy
		t.M[i][2] += w * dz
	}
	return t
}

// Scale returns t with each axis scaled.
func (t Transform) Scale(sx, sy, sz float64) Transform {
	for i := range 4 {
		t.M[i][0] *= sx
		t.M[i][1] *= sy
		t.M[i][2] *= sz
	}
	return t
}
