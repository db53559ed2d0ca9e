package update

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

type step struct {
	path index.Path
	// from is the move source for move destinations, nil otherwise
	from *index.Path
	move bool
}

// Apply replays reconciled items on a copy of old. Deletes and move sources
// are removed back to front, then inserts and move destinations are added
// front to back; reloaded elements are replaced last. fill supplies values
// for inserted and reloaded items, keyed by their new path.
func Apply[T any](old [][]T, items []Item, fill func(p index.Path) T) ([][]T, error) {
	out, err := replay(old, items, fill)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.Action != ActionReload {
			continue
		}
		p := *it.After
		if p.Section < 0 || p.Section >= len(out) {
			return nil, fmt.Errorf("update: %w: reload %v out of range", layout.ErrInconsistentDataSource, p)
		}
		if p.IsSection() {
			for i := range out[p.Section] {
				out[p.Section][i] = fill(index.At(p.Section, i))
			}
			continue
		}
		if p.Item < 0 || p.Item >= len(out[p.Section]) {
			return nil, fmt.Errorf("update: %w: reload %v out of range", layout.ErrInconsistentDataSource, p)
		}
		out[p.Section][p.Item] = fill(p)
	}
	return out, nil
}

// replay runs the removal and insertion phases. Reload items are skipped.
func replay[T any](old [][]T, items []Item, fill func(p index.Path) T) ([][]T, error) {
	sections := make([][]T, len(old))
	for s := range old {
		sections[s] = slices.Clone(old[s])
	}

	var removals, insertions []step
	for _, it := range items {
		switch it.Action {
		case ActionDelete:
			removals = append(removals, step{path: *it.Before})
		case ActionInsert:
			insertions = append(insertions, step{path: *it.After})
		case ActionMove:
			removals = append(removals, step{path: *it.Before, move: true})
			insertions = append(insertions, step{path: *it.After, from: it.Before, move: true})
		}
	}
	slices.SortStableFunc(removals, func(a, b step) int { return cmp.Compare(0, index.Compare(a.path, b.path)) })
	slices.SortStableFunc(insertions, func(a, b step) int { return index.Compare(a.path, b.path) })

	sectionStash := make(map[index.Path][]T)
	itemStash := make(map[index.Path]T)

	for _, st := range removals {
		p := st.path
		if p.Section < 0 || p.Section >= len(sections) {
			return nil, fmt.Errorf("update: %w: remove %v: %d sections", layout.ErrInconsistentDataSource, p, len(sections))
		}
		if p.IsSection() {
			if st.move {
				sectionStash[p] = sections[p.Section]
			}
			sections = slices.Delete(sections, p.Section, p.Section+1)
			continue
		}
		sec := sections[p.Section]
		if p.Item < 0 || p.Item >= len(sec) {
			return nil, fmt.Errorf("update: %w: remove %v: section has %d items", layout.ErrInconsistentDataSource, p, len(sec))
		}
		if st.move {
			itemStash[p] = sec[p.Item]
		}
		sections[p.Section] = slices.Delete(sec, p.Item, p.Item+1)
	}

	for _, st := range insertions {
		p := st.path
		if p.IsSection() {
			if p.Section < 0 || p.Section > len(sections) {
				return nil, fmt.Errorf("update: %w: insert %v: %d sections", layout.ErrInconsistentDataSource, p, len(sections))
			}
			var sec []T
			if st.move {
				sec = sectionStash[*st.from]
			}
			sections = slices.Insert(sections, p.Section, sec)
			continue
		}
		if p.Section < 0 || p.Section >= len(sections) || p.Item < 0 || p.Item > len(sections[p.Section]) {
			return nil, fmt.Errorf("update: %w: insert %v out of range", layout.ErrInconsistentDataSource, p)
		}
		var v T
		if st.move {
			v = itemStash[*st.from]
		} else {
			v = fill(p)
		}
		sections[p.Section] = slices.Insert(sections[p.Section], p.Item, v)
	}
	return sections, nil
}
