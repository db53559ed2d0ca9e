package layout

import "github.com/grindlemire/go-collection/internal/index"

// ItemKey identifies an element uniquely within a reuse cache.
// It is a plain comparable value and can be used directly as a map key.
type ItemKey struct {
	Category   Category
	IndexPath  index.Path
	Identifier string
}

// CellKey returns the key of the cell at p.
func CellKey(p index.Path) ItemKey {
	return ItemKey{Category: CategoryCell, IndexPath: p, Identifier: KindCell}
}

// SupplementaryKey returns the key of a supplementary view.
func SupplementaryKey(kind string, p index.Path) ItemKey {
	return ItemKey{Category: CategorySupplementaryView, IndexPath: p, Identifier: kind}
}

// DecorationKey returns the key of a decoration view.
func DecorationKey(kind string, p index.Path) ItemKey {
	return ItemKey{Category: CategoryDecorationView, IndexPath: p, Identifier: kind}
}

// KeyFor returns the key of the element described by a.
func KeyFor(a *Attributes) ItemKey {
	switch a.category {
	case CategoryCell:
		return CellKey(a.IndexPath)
	case CategorySupplementaryView:
		return SupplementaryKey(a.kind, a.IndexPath)
	case CategoryDecorationView:
		return DecorationKey(a.kind, a.IndexPath)
	}
	panic("layout: unknown category " + a.category.String())
}

func (k ItemKey) String() string {
	return k.Category.String() + ":" + k.Identifier + k.IndexPath.String()
}
