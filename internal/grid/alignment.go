package grid

import "fmt"

// Alignment positions the items of a row along the packing axis.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCentered
	AlignRight
	// AlignJustify stretches the gap between items so the row spans the whole
	// usable extent.
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCentered:
		return "centered"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// ParseAlignment converts a name produced by String back to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left", "":
		return AlignLeft, nil
	case "centered", "center":
		return AlignCentered, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	}
	return 0, fmt.Errorf("unknown row alignment %q", s)
}

// RowAlignment configures alignment separately for the last row of a section.
type RowAlignment struct {
	Common  Alignment
	LastRow Alignment
}

// DefaultRowAlignment justifies every row except the last, which is
// left-aligned with the minimum inter-item spacing.
func DefaultRowAlignment() RowAlignment {
	return RowAlignment{Common: AlignJustify, LastRow: AlignLeft}
}

// rowSpacing returns the offset of the first item and the gap between items
// for a row of n items that leaves leftover space unused at minimum spacing.
func rowSpacing(align Alignment, leftover float64, n int, spacing float64) (offset, gap float64) {
	if n <= 0 {
		return 0, 0
	}
	// space left once the minimum gaps are in place
	slack := leftover - spacing*float64(n-1)
	switch align {
	case AlignJustify:
		if n == 1 {
			return 0, 0
		}
		return 0, leftover / float64(n-1)
	case AlignCentered:
		return max(0, slack/2), spacing
	case AlignRight:
		return max(0, slack), spacing
	default:
		return 0, spacing
	}
}
