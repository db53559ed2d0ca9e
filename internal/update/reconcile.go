package update

import (
	"fmt"
	"slices"
	"sort"

	"github.com/grindlemire/go-collection/internal/debug"
	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

// Result is a reconciled batch.
type Result struct {
	// Items holds deletes back to front, then moves, then inserts front to
	// back, then reloads at their new paths.
	Items []Item

	// OldToNew and NewToOld map global item indexes; -1 means deleted or
	// inserted.
	OldToNew []int
	NewToOld []int

	OldSectionToNew []int
	NewSectionToOld []int

	oldOffsets []int
	newOffsets []int
}

// MapOld returns where the element at p (old numbering) ends up. The second
// result is false for deleted elements and unknown paths.
func (r *Result) MapOld(p index.Path) (index.Path, bool) {
	return mapPath(p, r.OldSectionToNew, r.OldToNew, r.oldOffsets, r.newOffsets)
}

// MapNew returns where the element at p (new numbering) came from. The
// second result is false for inserted elements and unknown paths.
func (r *Result) MapNew(p index.Path) (index.Path, bool) {
	return mapPath(p, r.NewSectionToOld, r.NewToOld, r.newOffsets, r.oldOffsets)
}

func mapPath(p index.Path, sections, items, from, to []int) (index.Path, bool) {
	if p.Section < 0 || p.Section >= len(sections) {
		return index.Path{}, false
	}
	if p.IsSection() {
		s := sections[p.Section]
		return index.SectionPath(s), s >= 0
	}
	if p.Item < 0 || p.Item >= from[p.Section+1]-from[p.Section] {
		return index.Path{}, false
	}
	g := items[from[p.Section]+p.Item]
	if g < 0 {
		return index.Path{}, false
	}
	return pathAt(to, g), true
}

// pathAt converts a global index back to a path using prefix offsets.
func pathAt(offsets []int, g int) index.Path {
	s := sort.Search(len(offsets)-1, func(i int) bool { return offsets[i+1] > g })
	return index.At(s, g-offsets[s])
}

func prefix(counts []int) []int {
	offsets := make([]int, len(counts)+1)
	for s, n := range counts {
		offsets[s+1] = offsets[s] + n
	}
	return offsets
}

// Reconcile validates b against the counts before and after the batch and
// returns the ordered items with index maps. Errors are *Error values
// wrapping layout.ErrInvalidUpdateItem or layout.ErrConflictingUpdate, or
// errors wrapping layout.ErrInconsistentDataSource when the counts do not
// add up. Nothing is returned for a rejected batch.
func Reconcile(b *Batch, oldCounts, newCounts []int) (*Result, error) {
	var ops []Op
	if b != nil {
		ops = b.Ops()
	}

	c := newChecker(oldCounts, newCounts)
	for _, op := range ops {
		if err := c.check(op); err != nil {
			return nil, err
		}
	}
	for _, op := range ops {
		if err := c.conflict(op); err != nil {
			return nil, err
		}
	}
	for _, op := range ops {
		if err := c.noop(op); err != nil {
			return nil, err
		}
	}

	items := make([]Item, 0, len(ops))
	var sectionItems []Item
	for _, op := range ops {
		var it Item
		switch op.Kind {
		case OpInsertSection, OpInsertItem:
			it = NewInsert(op.To)
		case OpDeleteSection, OpDeleteItem:
			it = NewDelete(op.From)
		case OpReloadSection, OpReloadItem:
			it = NewReload(op.From, op.From)
		case OpMoveSection, OpMoveItem:
			it = NewMove(op.From, op.To)
		}
		items = append(items, it)
		if op.Kind.Section() {
			sectionItems = append(sectionItems, it)
		}
	}

	r := &Result{oldOffsets: prefix(oldCounts), newOffsets: prefix(newCounts)}
	if err := r.mapSections(sectionItems, len(oldCounts), len(newCounts)); err != nil {
		return nil, err
	}
	if err := r.mapItems(items, oldCounts, newCounts); err != nil {
		return nil, err
	}

	var dels, moves, ins, reloads []Item
	for _, it := range items {
		switch it.Action {
		case ActionDelete:
			dels = append(dels, it)
		case ActionMove:
			moves = append(moves, it)
		case ActionInsert:
			ins = append(ins, it)
		case ActionReload:
			after, ok := r.MapOld(*it.Before)
			if !ok {
				return nil, fmt.Errorf("update: %w: reloaded %v does not survive the batch", layout.ErrInconsistentDataSource, *it.Before)
			}
			reloads = append(reloads, NewReload(*it.Before, after))
		}
	}
	slices.SortStableFunc(dels, InverseCompare)
	slices.SortStableFunc(moves, Compare)
	slices.SortStableFunc(ins, Compare)
	slices.SortStableFunc(reloads, func(a, b Item) int { return index.Compare(*a.After, *b.After) })

	r.Items = slices.Concat(dels, moves, ins, reloads)
	debug.Log("update: reconciled %d ops into %d items (%d -> %d items)",
		len(ops), len(r.Items), r.oldOffsets[len(oldCounts)], r.newOffsets[len(newCounts)])
	return r, nil
}

func (r *Result) mapSections(items []Item, oldLen, newLen int) error {
	ids := make([][]int, oldLen)
	for s := range ids {
		ids[s] = []int{s}
	}
	out, err := replay(ids, items, func(index.Path) int { return -1 })
	if err != nil {
		return err
	}
	if len(out) != newLen {
		return fmt.Errorf("update: %w: %d sections after the batch, data source has %d",
			layout.ErrInconsistentDataSource, len(out), newLen)
	}
	r.OldSectionToNew = slices.Repeat([]int{-1}, oldLen)
	r.NewSectionToOld = slices.Repeat([]int{-1}, newLen)
	for s, sec := range out {
		if len(sec) == 1 {
			r.NewSectionToOld[s] = sec[0]
			r.OldSectionToNew[sec[0]] = s
		}
	}
	return nil
}

func (r *Result) mapItems(items []Item, oldCounts, newCounts []int) error {
	ids := make([][]int, len(oldCounts))
	for s, n := range oldCounts {
		ids[s] = make([]int, n)
		for i := range ids[s] {
			ids[s][i] = r.oldOffsets[s] + i
		}
	}
	out, err := replay(ids, items, func(index.Path) int { return -1 })
	if err != nil {
		return err
	}
	// inserted sections arrive with all their items; reloaded sections whose
	// count changed are replaced wholesale
	for s, o := range r.NewSectionToOld {
		if o < 0 && len(out[s]) == 0 {
			out[s] = slices.Repeat([]int{-1}, newCounts[s])
		}
	}
	for _, it := range items {
		if it.Action != ActionReload || !it.IsSection() {
			continue
		}
		if s := r.OldSectionToNew[it.Before.Section]; len(out[s]) != newCounts[s] {
			out[s] = slices.Repeat([]int{-1}, newCounts[s])
		}
	}
	for s, sec := range out {
		if len(sec) != newCounts[s] {
			old := "inserted"
			if o := r.NewSectionToOld[s]; o >= 0 {
				old = fmt.Sprintf("%d items before", oldCounts[o])
			}
			return fmt.Errorf("update: %w: section %d has %d items after the batch (%s), data source has %d",
				layout.ErrInconsistentDataSource, s, len(sec), old, newCounts[s])
		}
	}

	r.OldToNew = slices.Repeat([]int{-1}, r.oldOffsets[len(oldCounts)])
	r.NewToOld = slices.Repeat([]int{-1}, r.newOffsets[len(newCounts)])
	for s, sec := range out {
		for i, id := range sec {
			g := r.newOffsets[s] + i
			r.NewToOld[g] = id
			if id >= 0 {
				r.OldToNew[id] = g
			}
		}
	}
	return nil
}
