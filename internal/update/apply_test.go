package update

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

func TestApply(t *testing.T) {
	old := [][]string{{"a", "b", "c"}, {"d"}, {"e", "f"}}

	var b Batch
	b.DeleteItems(index.At(0, 1))
	b.MoveSection(2, 0)
	b.InsertSections(2)
	b.ReloadItems(index.At(0, 2))
	b.MoveItem(index.At(0, 0), index.At(1, 1))

	r, err := Reconcile(&b, []int{3, 1, 2}, []int{2, 2, 0, 1})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	got, err := Apply(old, r.Items, func(p index.Path) string { return "new" + p.String() })
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := [][]string{{"e", "f"}, {"new[1,0]", "a"}, nil, {"d"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"a", "b", "c"}, {"d"}, {"e", "f"}}, old); diff != "" {
		t.Errorf("Apply() modified its input (-want +got):\n%s", diff)
	}
}

func TestApply_OutOfRange(t *testing.T) {
	_, err := Apply([][]int{{1}}, []Item{NewDelete(index.At(0, 3))}, func(index.Path) int { return 0 })
	if !errors.Is(err, layout.ErrInconsistentDataSource) {
		t.Errorf("Apply() error = %v, want ErrInconsistentDataSource", err)
	}
}
