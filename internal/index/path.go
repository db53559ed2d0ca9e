// Package index defines index paths: the (section, item) pairs that address
// every element of a section-grouped collection.
package index

import (
	"cmp"
	"fmt"
	"math"
)

// NoItem is the item component of a section-level path.
// It is larger than any real item index so that Compare orders a section
// after all of its items.
const NoItem = math.MaxInt

// Path identifies one element's logical position.
type Path struct {
	Section int
	Item    int
}

// At returns the path of item within section.
func At(section, item int) Path {
	return Path{Section: section, Item: item}
}

// SectionPath returns the path that addresses a whole section.
func SectionPath(section int) Path {
	return Path{Section: section, Item: NoItem}
}

// IsSection reports whether p addresses a whole section rather than an item.
func (p Path) IsSection() bool {
	return p.Item == NoItem
}

// Valid reports whether both components are non-negative.
func (p Path) Valid() bool {
	return p.Section >= 0 && p.Item >= 0
}

func (p Path) String() string {
	if p.IsSection() {
		return fmt.Sprintf("[%d]", p.Section)
	}
	return fmt.Sprintf("[%d,%d]", p.Section, p.Item)
}

// Compare orders paths lexicographically by section, then item.
// It returns -1, 0 or +1.
func Compare(a, b Path) int {
	if c := cmp.Compare(a.Section, b.Section); c != 0 {
		return c
	}
	return cmp.Compare(a.Item, b.Item)
}

// Less reports whether a sorts before b.
func Less(a, b Path) bool {
	return Compare(a, b) < 0
}
