package layout

import (
	"testing"

	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/index"
)

func TestNewAttributes_Defaults(t *testing.T) {
	a := NewCellAttributes(index.At(1, 2))

	if a.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", a.Alpha())
	}
	if a.ZIndex != 0 {
		t.Errorf("ZIndex = %d, want 0", a.ZIndex)
	}
	if a.Hidden {
		t.Error("Hidden = true, want false")
	}
	if !a.Transform.IsIdentity() {
		t.Error("Transform is not identity")
	}
	if a.ElementKind() != "" {
		t.Errorf("ElementKind() = %q, want empty for cells", a.ElementKind())
	}
	if !a.IsCell() || a.IsSupplementaryView() || a.IsDecorationView() {
		t.Errorf("category predicates wrong for %v", a.Category())
	}
}

func TestAttributes_FrameCenterSize(t *testing.T) {
	a := NewCellAttributes(index.At(0, 0))
	a.SetFrame(geom.NewRect(10, 20, 40, 60))

	if got, want := a.Center(), geom.Pt(30, 50); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
	if got, want := a.Size(), geom.Sz(40, 60); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}

	a.SetCenter(geom.Pt(100, 100))
	if got, want := a.Frame(), geom.NewRect(80, 70, 40, 60); got != want {
		t.Errorf("after SetCenter Frame() = %v, want %v", got, want)
	}

	a.SetSize(geom.Sz(20, 20))
	if got, want := a.Frame(), geom.NewRect(90, 90, 20, 20); got != want {
		t.Errorf("after SetSize Frame() = %v, want %v", got, want)
	}
	if got, want := a.Center(), geom.Pt(100, 100); got != want {
		t.Errorf("after SetSize Center() = %v, want %v", got, want)
	}
}

func TestAttributes_AlphaClamped(t *testing.T) {
	a := NewDecorationAttributes("separator", index.At(0, 0))

	type tc struct {
		in, want float64
	}

	tests := map[string]tc{
		"below": {in: -0.5, want: 0},
		"mid":   {in: 0.25, want: 0.25},
		"above": {in: 3, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a.SetAlpha(tt.in)
			if got := a.Alpha(); got != tt.want {
				t.Errorf("SetAlpha(%v); Alpha() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAttributes_CloneAndEqual(t *testing.T) {
	a := NewSupplementaryAttributes(KindSectionHeader, index.At(3, 0))
	a.SetFrame(geom.NewRect(0, 0, 100, 20))

	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone not equal to original")
	}
	b.ZIndex = 5
	if a.Equal(b) {
		t.Error("mutating clone changed equality with original")
	}
	if a.ZIndex != 0 {
		t.Errorf("original ZIndex = %d after mutating clone", a.ZIndex)
	}
	if b.Category() != CategorySupplementaryView || b.ElementKind() != KindSectionHeader {
		t.Errorf("clone lost identity: %v %q", b.Category(), b.ElementKind())
	}
}

func TestItemKey_MapKey(t *testing.T) {
	cache := map[ItemKey]string{
		CellKey(index.At(0, 1)):                             "cell",
		SupplementaryKey(KindSectionHeader, index.At(0, 0)): "header",
		DecorationKey("separator", index.At(0, 1)):          "separator",
	}

	type tc struct {
		key  ItemKey
		want string
		ok   bool
	}

	tests := map[string]tc{
		"cell by value":        {key: NewCellAttributes(index.At(0, 1)).Key(), want: "cell", ok: true},
		"header by value":      {key: NewSupplementaryAttributes(KindSectionHeader, index.At(0, 0)).Key(), want: "header", ok: true},
		"decoration by value":  {key: NewDecorationAttributes("separator", index.At(0, 1)).Key(), want: "separator", ok: true},
		"different index path": {key: CellKey(index.At(0, 2))},
		"different category":   {key: DecorationKey(KindCell, index.At(0, 1))},
		"different identifier": {key: SupplementaryKey(KindSectionFooter, index.At(0, 0))},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := cache[tt.key]
			if ok != tt.ok || got != tt.want {
				t.Errorf("cache[%v] = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.ok)
			}
		})
	}
}
