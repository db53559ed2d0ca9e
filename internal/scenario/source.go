package scenario

import (
	"fmt"

	collection "github.com/grindlemire/go-collection"
	"github.com/grindlemire/go-collection/internal/flow"
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/grid"
	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
	"github.com/grindlemire/go-collection/internal/list"
	"github.com/grindlemire/go-collection/internal/update"
)

// CellReuseID is the reuse identifier cells of a Source are registered under.
const CellReuseID = "label"

// defaults mirror the engines' own.
var (
	defaultItemSize  = geom.Sz(50, 50)
	defaultRowHeight = 44.0
)

// Source is a static data source and sizing delegate over scenario
// sections. It presents every element as its label string.
type Source struct {
	sections []Section

	itemSize  geom.Size
	rowHeight float64
	header    geom.Size
	footer    geom.Size
}

var (
	_ collection.DataSource          = (*Source)(nil)
	_ collection.SectionCounter      = (*Source)(nil)
	_ collection.SupplementarySource = (*Source)(nil)
	_ flow.ItemSizer                 = (*Source)(nil)
	_ flow.HeaderSizer               = (*Source)(nil)
	_ flow.FooterSizer               = (*Source)(nil)
	_ list.RowHeighter               = (*Source)(nil)
	_ list.HeaderHeighter            = (*Source)(nil)
	_ list.FooterHeighter            = (*Source)(nil)
)

// Source returns a data source over the scenario's initial sections.
func (s *Scenario) Source() *Source {
	src := &Source{
		sections:  s.Sections,
		itemSize:  defaultItemSize,
		rowHeight: defaultRowHeight,
	}
	if l := s.Layout; l.ItemSize != nil {
		src.itemSize = l.ItemSize.geom()
	}
	if l := s.Layout; l.RowHeight != nil {
		src.rowHeight = *l.RowHeight
	}
	if l := s.Layout; l.Header != nil {
		src.header = l.Header.geom()
	}
	if l := s.Layout; l.Footer != nil {
		src.footer = l.Footer.geom()
	}
	return src
}

// SetSections replaces the sections the source reports.
func (src *Source) SetSections(sections []Section) { src.sections = sections }

func (src *Source) NumberOfSections() int { return len(src.sections) }

func (src *Source) NumberOfItems(section int) int {
	if section < 0 || section >= len(src.sections) {
		return 0
	}
	return src.sections[section].Count
}

// Label returns the text shown for the item at p.
func (src *Source) Label(p index.Path) string {
	if p.Section >= 0 && p.Section < len(src.sections) {
		if labels := src.sections[p.Section].Labels; p.Item >= 0 && p.Item < len(labels) {
			return labels[p.Item]
		}
	}
	return fmt.Sprintf("%d.%d", p.Section, p.Item)
}

// CellForItem dequeues a label cell and sets its text.
func (src *Source) CellForItem(cv *collection.CollectionView, p index.Path) (collection.View, error) {
	v, err := cv.DequeueReusableCell(CellReuseID, p)
	if err != nil {
		return nil, err
	}
	c := v.(*Cell)
	c.Text = src.Label(p)
	return c, nil
}

// SupplementaryForElement presents headers and footers as their kind and
// section.
func (src *Source) SupplementaryForElement(cv *collection.CollectionView, kind string, p index.Path) (collection.View, error) {
	v, err := cv.DequeueReusableSupplementary(kind, CellReuseID, p)
	if err != nil {
		return nil, err
	}
	c := v.(*Cell)
	c.Text = fmt.Sprintf("%s %d", kind, p.Section)
	return c, nil
}

// Cell is the view a Source presents elements with.
type Cell struct {
	Text string
}

// Register installs the cell factories a Source needs on cv.
func Register(cv *collection.CollectionView) {
	factory := func(string) collection.View { return &Cell{} }
	cv.RegisterCell(CellReuseID, factory)
	cv.RegisterSupplementary(layout.KindSectionHeader, CellReuseID, factory)
	cv.RegisterSupplementary(layout.KindSectionFooter, CellReuseID, factory)
}

func (src *Source) SizeForItem(p index.Path) geom.Size {
	if p.Section >= 0 && p.Section < len(src.sections) {
		if sizes := src.sections[p.Section].Sizes; p.Item >= 0 && p.Item < len(sizes) {
			return sizes[p.Item].geom()
		}
	}
	return src.itemSize
}

func (src *Source) HeaderSizeForSection(section int) geom.Size {
	if section >= 0 && section < len(src.sections) && src.sections[section].Header != nil {
		return src.sections[section].Header.geom()
	}
	return src.header
}

func (src *Source) FooterSizeForSection(section int) geom.Size {
	if section >= 0 && section < len(src.sections) && src.sections[section].Footer != nil {
		return src.sections[section].Footer.geom()
	}
	return src.footer
}

func (src *Source) HeightForRow(p index.Path) float64 {
	if p.Section >= 0 && p.Section < len(src.sections) {
		if sizes := src.sections[p.Section].Sizes; p.Item >= 0 && p.Item < len(sizes) {
			return sizes[p.Item].Height
		}
	}
	return src.rowHeight
}

func (src *Source) HeightForHeader(section int) float64 {
	return src.HeaderSizeForSection(section).Height
}

func (src *Source) HeightForFooter(section int) float64 {
	return src.FooterSizeForSection(section).Height
}

// NewLayout builds the layout engine the scenario configures.
func (s *Scenario) NewLayout() (collection.Layout, error) {
	l := s.Layout
	if l.Kind == "list" {
		var opts []list.Option
		if l.RowHeight != nil {
			opts = append(opts, list.WithRowHeight(*l.RowHeight))
		}
		if l.Header != nil {
			opts = append(opts, list.WithHeaderHeight(l.Header.Height))
		}
		if l.Footer != nil {
			opts = append(opts, list.WithFooterHeight(l.Footer.Height))
		}
		if l.SeparatorHeight != nil {
			opts = append(opts, list.WithSeparatorHeight(*l.SeparatorHeight))
		}
		return list.New(opts...)
	}

	var opts []flow.Option
	if l.Direction != "" {
		d, err := flow.ParseDirection(l.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		opts = append(opts, flow.WithScrollDirection(d))
	}
	if l.ItemSize != nil {
		opts = append(opts, flow.WithItemSize(l.ItemSize.geom()))
	}
	if l.LineSpacing != nil {
		opts = append(opts, flow.WithLineSpacing(*l.LineSpacing))
	}
	if l.InteritemSpacing != nil {
		opts = append(opts, flow.WithInteritemSpacing(*l.InteritemSpacing))
	}
	if l.Insets != nil {
		opts = append(opts, flow.WithSectionInset(l.Insets.geom()))
	}
	if l.Header != nil {
		opts = append(opts, flow.WithHeaderReferenceSize(l.Header.geom()))
	}
	if l.Footer != nil {
		opts = append(opts, flow.WithFooterReferenceSize(l.Footer.geom()))
	}
	if l.Alignment != "" || l.LastRowAlignment != "" {
		ra := grid.DefaultRowAlignment()
		var err error
		if l.Alignment != "" {
			if ra.Common, err = grid.ParseAlignment(l.Alignment); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
			}
		}
		if l.LastRowAlignment != "" {
			if ra.LastRow, err = grid.ParseAlignment(l.LastRowAlignment); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
			}
		}
		opts = append(opts, flow.WithRowAlignment(ra))
	}
	if l.RightToLeft {
		opts = append(opts, flow.WithRightToLeft())
	}
	if l.FloatingHeaders {
		opts = append(opts, flow.WithFloatingHeaders())
	}
	return flow.New(opts...)
}

// NewView builds a collection view over a fresh Source with cells
// registered.
func (s *Scenario) NewView(opts ...collection.Option) (*collection.CollectionView, *Source, error) {
	l, err := s.NewLayout()
	if err != nil {
		return nil, nil, err
	}
	src := s.Source()
	opts = append([]collection.Option{
		collection.WithDelegate(src),
		collection.WithBounds(s.BoundsRect()),
	}, opts...)
	cv, err := collection.New(src, l, opts...)
	if err != nil {
		return nil, nil, err
	}
	Register(cv)
	return cv, src, nil
}

// Apply switches src to the scenario's after sections and announces every
// update inside one batch on cv.
func (s *Scenario) Apply(cv *collection.CollectionView, src *Source) error {
	ops, err := s.Ops()
	if err != nil {
		return err
	}
	return cv.PerformBatchUpdates(func() error {
		src.SetSections(s.After)
		for _, op := range ops {
			if err := announce(cv, op); err != nil {
				return err
			}
		}
		return nil
	})
}

func announce(cv *collection.CollectionView, op update.Op) error {
	switch op.Kind {
	case update.OpInsertSection:
		return cv.InsertSections(op.To.Section)
	case update.OpDeleteSection:
		return cv.DeleteSections(op.From.Section)
	case update.OpReloadSection:
		return cv.ReloadSections(op.From.Section)
	case update.OpMoveSection:
		return cv.MoveSection(op.From.Section, op.To.Section)
	case update.OpInsertItem:
		return cv.InsertItems(op.To)
	case update.OpDeleteItem:
		return cv.DeleteItems(op.From)
	case update.OpReloadItem:
		return cv.ReloadItems(op.From)
	case update.OpMoveItem:
		return cv.MoveItem(op.From, op.To)
	}
	return fmt.Errorf("scenario: unknown operation %v", op.Kind)
}
