package flow

import (
	"fmt"

	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/grid"
)

// Direction is the scrolling direction of a flow layout.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseDirection converts "vertical" or "horizontal" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "vertical", "":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return 0, fmt.Errorf("unknown scroll direction %q", s)
}

// Option is a functional option for configuring a Layout.
type Option func(*Layout) error

// WithItemSize sets the size used when the delegate does not size items.
// Default is 50x50.
func WithItemSize(s geom.Size) Option {
	return func(l *Layout) error {
		if !s.Valid() {
			return fmt.Errorf("%w: item size %v", errInvalid, s)
		}
		l.itemSize = s
		return nil
	}
}

// WithLineSpacing sets the minimum spacing between rows. Default is 10.
func WithLineSpacing(v float64) Option {
	return func(l *Layout) error {
		if !geom.ValidLength(v) {
			return fmt.Errorf("%w: line spacing %v", errInvalid, v)
		}
		l.lineSpacing = v
		return nil
	}
}

// WithInteritemSpacing sets the minimum spacing between items of a row.
// Default is 10.
func WithInteritemSpacing(v float64) Option {
	return func(l *Layout) error {
		if !geom.ValidLength(v) {
			return fmt.Errorf("%w: inter-item spacing %v", errInvalid, v)
		}
		l.interitemSpacing = v
		return nil
	}
}

// WithSectionInset sets the insets applied to every section.
func WithSectionInset(in geom.Insets) Option {
	return func(l *Layout) error {
		if !in.Valid() {
			return fmt.Errorf("%w: section inset %+v", errInvalid, in)
		}
		l.sectionInset = in
		return nil
	}
}

// WithHeaderReferenceSize sets the default header size. A zero extent along
// the scrolling axis means no header.
func WithHeaderReferenceSize(s geom.Size) Option {
	return func(l *Layout) error {
		if !s.Valid() {
			return fmt.Errorf("%w: header size %v", errInvalid, s)
		}
		l.headerSize = s
		return nil
	}
}

// WithFooterReferenceSize sets the default footer size.
func WithFooterReferenceSize(s geom.Size) Option {
	return func(l *Layout) error {
		if !s.Valid() {
			return fmt.Errorf("%w: footer size %v", errInvalid, s)
		}
		l.footerSize = s
		return nil
	}
}

// WithScrollDirection sets the scrolling direction. Default is Vertical.
func WithScrollDirection(d Direction) Option {
	return func(l *Layout) error {
		if d != Vertical && d != Horizontal {
			return fmt.Errorf("unknown scroll direction %d", d)
		}
		l.direction = d
		return nil
	}
}

// WithRightToLeft mirrors items inside each row.
func WithRightToLeft() Option {
	return func(l *Layout) error {
		l.rightToLeft = true
		return nil
	}
}

// WithRowAlignment sets the alignment of common rows and of the last row of
// each section. Default justifies common rows and left-aligns the last one.
func WithRowAlignment(ra grid.RowAlignment) Option {
	return func(l *Layout) error {
		l.alignment = ra
		return nil
	}
}

// WithFloatingHeaders pins section headers to the top of the visible rect
// while their section is on screen.
func WithFloatingHeaders() Option {
	return func(l *Layout) error {
		l.floating = true
		return nil
	}
}
