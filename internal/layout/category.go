package layout

import "fmt"

// Category identifies what kind of view an element is presented with.
type Category uint8

const (
	CategoryCell Category = iota
	CategorySupplementaryView
	CategoryDecorationView
)

func (c Category) String() string {
	switch c {
	case CategoryCell:
		return "cell"
	case CategorySupplementaryView:
		return "supplementary"
	case CategoryDecorationView:
		return "decoration"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Element kinds.
const (
	// KindCell is the identifier used in item keys for cells. Cell attributes
	// themselves report an empty ElementKind.
	KindCell = "cell"

	KindSectionHeader = "section-header"
	KindSectionFooter = "section-footer"
)
