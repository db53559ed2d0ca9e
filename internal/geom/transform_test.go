package geom

import "testing"

func TestIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false, want true")
	}
	if (Transform{}).IsIdentity() {
		t.Error("zero Transform reported as identity")
	}
}

func TestTransform_TranslateScale(t *testing.T) {
	tr := Identity().Translate(3, 4, 0)
	if tr.M[3][0] != 3 || tr.M[3][1] != 4 {
		t.Errorf("Translate() row 3 = %v, want [3 4 0 1]", tr.M[3])
	}
	if tr.IsIdentity() {
		t.Error("translated transform reported as identity")
	}

	sc := Identity().Scale(2, 3, 1)
	if sc.M[0][0] != 2 || sc.M[1][1] != 3 || sc.M[2][2] != 1 {
		t.Errorf("Scale() diagonal = %v %v %v, want 2 3 1", sc.M[0][0], sc.M[1][1], sc.M[2][2])
	}
}

func TestInsets(t *testing.T) {
	in := Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	if got := in.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %v, want 6", got)
	}
	if got := in.Vertical(); got != 4 {
		t.Errorf("Vertical() = %v, want 4", got)
	}
	if !in.Valid() {
		t.Error("Valid() = false, want true")
	}
	if (Insets{Top: -1}).Valid() {
		t.Error("negative inset reported valid")
	}
	if !InsetAll(0).IsZero() {
		t.Error("InsetAll(0).IsZero() = false")
	}
}
