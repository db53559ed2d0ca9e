package update

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

func strs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}

func TestReconcile_DeleteAndInsert(t *testing.T) {
	var b Batch
	b.DeleteItems(index.At(0, 2))
	b.InsertItems(index.At(0, 0))

	r, err := Reconcile(&b, []int{4}, []int{4})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if diff := cmp.Diff([]string{"delete [0,2]", "insert [0,0]"}, strs(r.Items)); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, -1, 3}, r.OldToNew); diff != "" {
		t.Errorf("OldToNew mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{-1, 0, 1, 3}, r.NewToOld); diff != "" {
		t.Errorf("NewToOld mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcile_MixedBatch(t *testing.T) {
	var b Batch
	b.DeleteItems(index.At(0, 1), index.At(0, 3))
	b.InsertItems(index.At(0, 4), index.At(0, 0))
	b.DeleteSections(1)
	b.MoveItem(index.At(2, 0), index.At(1, 2))

	r, err := Reconcile(&b, []int{5, 2, 3}, []int{5, 3})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	wantItems := []string{
		"delete [1]",
		"delete [0,3]",
		"delete [0,1]",
		"move [2,0] -> [1,2]",
		"insert [0,0]",
		"insert [0,4]",
	}
	if diff := cmp.Diff(wantItems, strs(r.Items)); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, -1, 2, -1, 3, -1, -1, 7, 5, 6}, r.OldToNew); diff != "" {
		t.Errorf("OldToNew mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{-1, 0, 2, 4, -1, 8, 9, 7}, r.NewToOld); diff != "" {
		t.Errorf("NewToOld mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, -1, 1}, r.OldSectionToNew); diff != "" {
		t.Errorf("OldSectionToNew mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2}, r.NewSectionToOld); diff != "" {
		t.Errorf("NewSectionToOld mismatch (-want +got):\n%s", diff)
	}

	type tc struct {
		path index.Path
		want index.Path
		ok   bool
	}
	mapOld := map[string]tc{
		"survivor":        {path: index.At(0, 4), want: index.At(0, 3), ok: true},
		"deleted item":    {path: index.At(0, 1), ok: false},
		"deleted section": {path: index.SectionPath(1), ok: false},
		"moved":           {path: index.At(2, 0), want: index.At(1, 2), ok: true},
		"shifted section": {path: index.SectionPath(2), want: index.SectionPath(1), ok: true},
		"out of range":    {path: index.At(0, 9), ok: false},
	}
	for name, tt := range mapOld {
		t.Run("MapOld "+name, func(t *testing.T) {
			got, ok := r.MapOld(tt.path)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("MapOld(%v) = %v, %v, want %v, %v", tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
	if got, ok := r.MapNew(index.At(1, 0)); !ok || got != index.At(2, 1) {
		t.Errorf("MapNew([1,0]) = %v, %v, want [2,1], true", got, ok)
	}
	if _, ok := r.MapNew(index.At(0, 0)); ok {
		t.Error("MapNew([0,0]) ok = true for an inserted item")
	}
}

func TestReconcile_SectionOps(t *testing.T) {
	t.Run("insert carries its items", func(t *testing.T) {
		var b Batch
		b.InsertSections(0)
		r, err := Reconcile(&b, []int{2}, []int{4, 2})
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		if diff := cmp.Diff([]int{-1, -1, -1, -1, 0, 1}, r.NewToOld); diff != "" {
			t.Errorf("NewToOld mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{1}, r.OldSectionToNew); diff != "" {
			t.Errorf("OldSectionToNew mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("move section", func(t *testing.T) {
		var b Batch
		b.MoveSection(0, 2)
		r, err := Reconcile(&b, []int{1, 2, 3}, []int{2, 3, 1})
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		if diff := cmp.Diff([]int{5, 0, 1, 2, 3, 4}, r.OldToNew); diff != "" {
			t.Errorf("OldToNew mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"move [0] -> [2]"}, strs(r.Items)); diff != "" {
			t.Errorf("Items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reload section with new count", func(t *testing.T) {
		var b Batch
		b.ReloadSections(1)
		b.DeleteSections(0)
		r, err := Reconcile(&b, []int{1, 2}, []int{3})
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		if diff := cmp.Diff([]int{-1, -1, -1}, r.NewToOld); diff != "" {
			t.Errorf("NewToOld mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"delete [0]", "reload [1] -> [0]"}, strs(r.Items)); diff != "" {
			t.Errorf("Items mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestReconcile_ReloadFollowsItem(t *testing.T) {
	var b Batch
	b.ReloadItems(index.At(0, 2))
	b.DeleteItems(index.At(0, 0))

	r, err := Reconcile(&b, []int{3}, []int{2})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if diff := cmp.Diff([]string{"delete [0,0]", "reload [0,2] -> [0,1]"}, strs(r.Items)); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{-1, 0, 1}, r.OldToNew); diff != "" {
		t.Errorf("OldToNew mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcile_Rejects(t *testing.T) {
	type tc struct {
		build     func(b *Batch)
		oldCounts []int
		newCounts []int
		want      error
	}

	tests := map[string]tc{
		"delete out of bounds": {
			build:     func(b *Batch) { b.DeleteItems(index.At(0, 5)) },
			oldCounts: []int{5}, newCounts: []int{4},
			want: layout.ErrInvalidUpdateItem,
		},
		"insert past new count": {
			build:     func(b *Batch) { b.InsertItems(index.At(0, 5)) },
			oldCounts: []int{4}, newCounts: []int{5},
			want: layout.ErrInvalidUpdateItem,
		},
		"duplicate delete": {
			build:     func(b *Batch) { b.DeleteItems(index.At(0, 1), index.At(0, 1)) },
			oldCounts: []int{5}, newCounts: []int{4},
			want: layout.ErrInvalidUpdateItem,
		},
		"delete and move same item": {
			build: func(b *Batch) {
				b.DeleteItems(index.At(0, 1))
				b.MoveItem(index.At(0, 1), index.At(0, 3))
			},
			oldCounts: []int{5}, newCounts: []int{4},
			want: layout.ErrInvalidUpdateItem,
		},
		"move onto itself": {
			build:     func(b *Batch) { b.MoveItem(index.At(0, 1), index.At(0, 1)) },
			oldCounts: []int{3}, newCounts: []int{3},
			want: layout.ErrInvalidUpdateItem,
		},
		"move onto post-deletion source": {
			build: func(b *Batch) {
				b.DeleteItems(index.At(0, 0))
				b.MoveItem(index.At(0, 2), index.At(0, 1))
			},
			oldCounts: []int{4}, newCounts: []int{3},
			want: layout.ErrInvalidUpdateItem,
		},
		"section move onto itself": {
			build:     func(b *Batch) { b.MoveSection(1, 1) },
			oldCounts: []int{1, 1}, newCounts: []int{1, 1},
			want: layout.ErrInvalidUpdateItem,
		},
		"unknown section": {
			build:     func(b *Batch) { b.DeleteSections(2) },
			oldCounts: []int{1, 1}, newCounts: []int{1},
			want: layout.ErrInvalidUpdateItem,
		},
		"delete section and item": {
			build: func(b *Batch) {
				b.DeleteSections(0)
				b.DeleteItems(index.At(0, 1))
			},
			oldCounts: []int{3, 1}, newCounts: []int{1},
			want: layout.ErrConflictingUpdate,
		},
		"insert section and item": {
			build: func(b *Batch) {
				b.InsertSections(1)
				b.InsertItems(index.At(1, 0))
			},
			oldCounts: []int{3}, newCounts: []int{3, 1},
			want: layout.ErrConflictingUpdate,
		},
		"reload section and move item out": {
			build: func(b *Batch) {
				b.ReloadSections(0)
				b.MoveItem(index.At(0, 0), index.At(1, 0))
			},
			oldCounts: []int{2, 2}, newCounts: []int{1, 3},
			want: layout.ErrConflictingUpdate,
		},
		"count mismatch": {
			build:     func(b *Batch) { b.DeleteItems(index.At(0, 0)) },
			oldCounts: []int{3}, newCounts: []int{3},
			want: layout.ErrInconsistentDataSource,
		},
		"section count mismatch": {
			build:     func(b *Batch) {},
			oldCounts: []int{3}, newCounts: []int{3, 0},
			want: layout.ErrInconsistentDataSource,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var b Batch
			tt.build(&b)
			r, err := Reconcile(&b, tt.oldCounts, tt.newCounts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Reconcile() error = %v, want %v", err, tt.want)
			}
			if r != nil {
				t.Errorf("Reconcile() result = %v, want nil for a rejected batch", r)
			}
		})
	}
}

func TestReconcile_ErrorCarriesOp(t *testing.T) {
	var b Batch
	b.InsertItems(index.At(0, 0))
	b.DeleteItems(index.At(0, 7))

	_, err := Reconcile(&b, []int{2}, []int{3})
	var uerr *Error
	if !errors.As(err, &uerr) {
		t.Fatalf("Reconcile() error = %T, want *Error", err)
	}
	if uerr.Op.Kind != OpDeleteItem || uerr.Op.From != index.At(0, 7) {
		t.Errorf("Error.Op = %v, want delete item [0,7]", uerr.Op)
	}
	if want := "delete item [0,7]: layout: invalid update item: item out of bounds (section 0 has 2 items before the update)"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestReconcile_EmptyBatch(t *testing.T) {
	r, err := Reconcile(nil, []int{2, 0, 1}, []int{2, 0, 1})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if len(r.Items) != 0 {
		t.Errorf("Items = %v, want none", r.Items)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, r.OldToNew); diff != "" {
		t.Errorf("OldToNew mismatch (-want +got):\n%s", diff)
	}
}

// randomBatch builds a valid item-level batch over oldCounts and the
// post-update arrays it should produce, constructed by placing moved and
// inserted values at their destinations and filling the remaining slots
// with surviving items in order.
func randomBatch(rng *rand.Rand, oldCounts []int) (*Batch, []int, [][]int) {
	type dest struct {
		value int
		from  index.Path
		move  bool
	}

	var b Batch
	offset := 0
	survivors := make([][]int, len(oldCounts))
	var pending []dest
	for s, n := range oldCounts {
		for i := range n {
			g := offset + i
			p := index.At(s, i)
			switch rng.IntN(5) {
			case 0:
				b.DeleteItems(p)
			case 1:
				pending = append(pending, dest{value: g, from: p, move: true})
			default:
				survivors[s] = append(survivors[s], g)
			}
		}
		offset += n
	}
	for range rng.IntN(4) {
		pending = append(pending, dest{value: -1})
	}

	// spread destinations over sections
	placed := make([][]dest, len(oldCounts))
	for _, d := range pending {
		s := rng.IntN(len(oldCounts))
		placed[s] = append(placed[s], d)
	}

	newCounts := make([]int, len(oldCounts))
	want := make([][]int, len(oldCounts))
	for s := range oldCounts {
		n := len(survivors[s]) + len(placed[s])
		newCounts[s] = n
		slots := rng.Perm(n)[:len(placed[s])]
		taken := make(map[int]dest, len(slots))
		for k, slot := range slots {
			d := placed[s][k]
			taken[slot] = d
			if d.move {
				b.MoveItem(d.from, index.At(s, slot))
			} else {
				b.InsertItems(index.At(s, slot))
			}
		}
		rest := survivors[s]
		want[s] = make([]int, n)
		for i := range want[s] {
			if d, ok := taken[i]; ok {
				want[s][i] = d.value
				continue
			}
			want[s][i] = rest[0]
			rest = rest[1:]
		}
	}
	return &b, newCounts, want
}

func TestReconcile_RandomBatchesReplay(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	checked := 0
	for trial := range 500 {
		oldCounts := make([]int, 1+rng.IntN(4))
		for s := range oldCounts {
			oldCounts[s] = rng.IntN(7)
		}
		b, newCounts, want := randomBatch(rng, oldCounts)

		r, err := Reconcile(b, oldCounts, newCounts)
		if errors.Is(err, layout.ErrInvalidUpdateItem) {
			// a random move can land where deletions alone would put it
			continue
		}
		if err != nil {
			t.Fatalf("trial %d: Reconcile(%v) error = %v", trial, b.Ops(), err)
		}
		checked++

		old := make([][]int, len(oldCounts))
		g := 0
		for s, n := range oldCounts {
			for range n {
				old[s] = append(old[s], g)
				g++
			}
		}
		got, err := Apply(old, r.Items, func(index.Path) int { return -1 })
		if err != nil {
			t.Fatalf("trial %d: Apply() error = %v", trial, err)
		}
		if diff := cmp.Diff(want, got, cmpEmpty); diff != "" {
			t.Fatalf("trial %d: Apply(%v) mismatch (-want +got):\n%s", trial, strs(r.Items), diff)
		}

		flat := []int{}
		for _, sec := range want {
			flat = append(flat, sec...)
		}
		if diff := cmp.Diff(flat, r.NewToOld, cmpEmpty); diff != "" {
			t.Fatalf("trial %d: NewToOld mismatch (-want +got):\n%s", trial, diff)
		}
		for o, n := range r.OldToNew {
			if n >= 0 && r.NewToOld[n] != o {
				t.Fatalf("trial %d: OldToNew[%d] = %d but NewToOld[%d] = %d", trial, o, n, n, r.NewToOld[n])
			}
		}
	}
	if checked < 100 {
		t.Errorf("only %d of 500 random batches were accepted", checked)
	}
}

// cmpEmpty treats nil and empty slices alike.
var cmpEmpty = cmp.Transformer("nonNil", func(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
})

func TestItem_Compare(t *testing.T) {
	items := []Item{
		NewInsert(index.At(1, 0)),
		NewInsert(index.SectionPath(0)),
		NewInsert(index.At(0, 3)),
	}
	if Compare(items[2], items[1]) >= 0 {
		t.Error("Compare() puts a section insert before the items of its section")
	}
	if InverseCompare(items[1], items[2]) >= 0 {
		t.Error("InverseCompare() puts a section delete after the items of its section")
	}
	if Compare(items[1], items[0]) >= 0 {
		t.Error("Compare() does not order by section first")
	}
}
