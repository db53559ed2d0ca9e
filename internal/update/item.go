package update

import (
	"fmt"

	"github.com/grindlemire/go-collection/internal/index"
)

// Action is what an update item does.
type Action uint8

const (
	ActionNone Action = iota
	ActionInsert
	ActionDelete
	ActionReload
	ActionMove
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	case ActionReload:
		return "reload"
	case ActionMove:
		return "move"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Item is one reconciled update. Before is the path in the old numbering and
// After the path in the new numbering; inserts have no Before and deletes
// have no After. Section-level items carry section paths.
type Item struct {
	Before *index.Path
	After  *index.Path
	Action Action
}

// NewInsert returns an insert of the element at p (new numbering).
func NewInsert(p index.Path) Item {
	return Item{After: &p, Action: ActionInsert}
}

// NewDelete returns a delete of the element at p (old numbering).
func NewDelete(p index.Path) Item {
	return Item{Before: &p, Action: ActionDelete}
}

// NewReload returns a reload of the element at before that ends up at after.
func NewReload(before, after index.Path) Item {
	return Item{Before: &before, After: &after, Action: ActionReload}
}

// NewMove returns a move from from (old numbering) to to (new numbering).
func NewMove(from, to index.Path) Item {
	return Item{Before: &from, After: &to, Action: ActionMove}
}

// Path returns the path the item is ordered by: After for inserts, Before
// for everything else.
func (it Item) Path() index.Path {
	if it.Action == ActionInsert {
		return *it.After
	}
	return *it.Before
}

// IsSection reports whether the item updates a whole section.
func (it Item) IsSection() bool {
	return it.Path().IsSection()
}

func (it Item) String() string {
	switch it.Action {
	case ActionInsert:
		return fmt.Sprintf("insert %v", *it.After)
	case ActionDelete:
		return fmt.Sprintf("delete %v", *it.Before)
	case ActionMove, ActionReload:
		return fmt.Sprintf("%s %v -> %v", it.Action, *it.Before, *it.After)
	}
	return it.Action.String()
}

// Equal reports whether two items have the same action and paths.
func (it Item) Equal(o Item) bool {
	return it.Action == o.Action && samePath(it.Before, o.Before) && samePath(it.After, o.After)
}

func samePath(a, b *index.Path) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Compare orders items by Path ascending. A section-level item sorts after
// the items of its section, which is the order insertions are replayed in.
func Compare(a, b Item) int {
	return index.Compare(a.Path(), b.Path())
}

// InverseCompare orders items by Path descending, the order deletions are
// replayed in. A section-level item sorts before the items of its section.
func InverseCompare(a, b Item) int {
	return index.Compare(b.Path(), a.Path())
}
