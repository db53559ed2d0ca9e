package update

import (
	"fmt"

	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

// checker validates raw operations. Sources are indexed in the old
// numbering, destinations in the new one.
type checker struct {
	before, after []int

	sectionSources map[int]Op
	sectionDests   map[int]Op
	itemSources    map[index.Path]Op
	itemDests      map[index.Path]Op

	deletedSections []int
	deletedItems    map[int][]int
}

func newChecker(oldCounts, newCounts []int) *checker {
	return &checker{
		before:         oldCounts,
		after:          newCounts,
		sectionSources: make(map[int]Op),
		sectionDests:   make(map[int]Op),
		itemSources:    make(map[index.Path]Op),
		itemDests:      make(map[index.Path]Op),
		deletedItems:   make(map[int][]int),
	}
}

func invalid(op Op, format string, args ...any) *Error {
	return newError(op, layout.ErrInvalidUpdateItem, fmt.Sprintf(format, args...), "")
}

// check rejects out-of-range and duplicate paths.
func (c *checker) check(op Op) error {
	switch op.Kind {
	case OpInsertSection:
		return c.sectionDest(op)
	case OpDeleteSection:
		if err := c.sectionSource(op); err != nil {
			return err
		}
		c.deletedSections = append(c.deletedSections, op.From.Section)
		return nil
	case OpReloadSection:
		return c.sectionSource(op)
	case OpMoveSection:
		if err := c.sectionSource(op); err != nil {
			return err
		}
		return c.sectionDest(op)
	case OpInsertItem:
		return c.itemDest(op)
	case OpDeleteItem:
		if err := c.itemSource(op); err != nil {
			return err
		}
		c.deletedItems[op.From.Section] = append(c.deletedItems[op.From.Section], op.From.Item)
		return nil
	case OpReloadItem:
		return c.itemSource(op)
	case OpMoveItem:
		if err := c.itemSource(op); err != nil {
			return err
		}
		return c.itemDest(op)
	}
	return invalid(op, "unknown operation")
}

func (c *checker) sectionSource(op Op) error {
	s := op.From.Section
	if !op.From.IsSection() || s < 0 || s >= len(c.before) {
		return newError(op, layout.ErrInvalidUpdateItem, "section out of bounds",
			fmt.Sprintf("there were %d sections before the update", len(c.before)))
	}
	if prev, ok := c.sectionSources[s]; ok {
		return invalid(op, "section %d already used by %v", s, prev)
	}
	c.sectionSources[s] = op
	return nil
}

func (c *checker) sectionDest(op Op) error {
	s := op.To.Section
	if !op.To.IsSection() || s < 0 || s >= len(c.after) {
		return newError(op, layout.ErrInvalidUpdateItem, "section out of bounds",
			fmt.Sprintf("there are %d sections after the update", len(c.after)))
	}
	if prev, ok := c.sectionDests[s]; ok {
		return invalid(op, "section %d already used by %v", s, prev)
	}
	c.sectionDests[s] = op
	return nil
}

func (c *checker) itemSource(op Op) error {
	p := op.From
	if !inBounds(p, c.before) {
		return newError(op, layout.ErrInvalidUpdateItem, "item out of bounds", boundsHint(p, c.before, "before"))
	}
	if prev, ok := c.itemSources[p]; ok {
		return invalid(op, "item %v already used by %v", p, prev)
	}
	c.itemSources[p] = op
	return nil
}

func (c *checker) itemDest(op Op) error {
	p := op.To
	if !inBounds(p, c.after) {
		return newError(op, layout.ErrInvalidUpdateItem, "item out of bounds", boundsHint(p, c.after, "after"))
	}
	if prev, ok := c.itemDests[p]; ok {
		return invalid(op, "item %v already used by %v", p, prev)
	}
	c.itemDests[p] = op
	return nil
}

func inBounds(p index.Path, counts []int) bool {
	return p.Section >= 0 && p.Section < len(counts) && p.Item >= 0 && p.Item < counts[p.Section]
}

func boundsHint(p index.Path, counts []int, when string) string {
	if p.Section < 0 || p.Section >= len(counts) {
		return fmt.Sprintf("there are %d sections %s the update", len(counts), when)
	}
	return fmt.Sprintf("section %d has %d items %s the update", p.Section, counts[p.Section], when)
}

// conflict rejects item operations inside a section that a section
// operation already touches.
func (c *checker) conflict(op Op) error {
	if op.Kind.Section() {
		return nil
	}
	if op.Kind != OpInsertItem {
		if prev, ok := c.sectionSources[op.From.Section]; ok {
			return newError(op, layout.ErrConflictingUpdate,
				fmt.Sprintf("section %d is also updated by %v", op.From.Section, prev),
				"split the batch or drop the item operation")
		}
	}
	if op.Kind == OpInsertItem || op.Kind == OpMoveItem {
		if prev, ok := c.sectionDests[op.To.Section]; ok {
			return newError(op, layout.ErrConflictingUpdate,
				fmt.Sprintf("section %d is also updated by %v", op.To.Section, prev),
				"split the batch or drop the item operation")
		}
	}
	return nil
}

// noop rejects moves whose destination is where deletions alone would have
// put the source.
func (c *checker) noop(op Op) error {
	switch op.Kind {
	case OpMoveSection:
		if shifted := op.From.Section - countBelow(c.deletedSections, op.From.Section); shifted == op.To.Section {
			return newError(op, layout.ErrInvalidUpdateItem, "move does not change the section's position", "")
		}
	case OpMoveItem:
		section := op.From.Section - countBelow(c.deletedSections, op.From.Section)
		item := op.From.Item - countBelow(c.deletedItems[op.From.Section], op.From.Item)
		if section == op.To.Section && item == op.To.Item {
			return newError(op, layout.ErrInvalidUpdateItem, "move does not change the item's position", "")
		}
	}
	return nil
}

func countBelow(values []int, v int) int {
	n := 0
	for _, x := range values {
		if x < v {
			n++
		}
	}
	return n
}
