package grid

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/layout"
)

// Info owns the sections, rows and items of one flow layout pass.
//
// Pointers returned by Section, Row and Item point into the arenas and are
// only valid until the next call that adds to them (AddSection, AddItem,
// Compute).
type Info struct {
	sections []Section
	rows     []Row
	items    []Item

	// Horizontal selects horizontal scrolling: rows become columns and
	// Dimension is the available height.
	Horizontal bool
	// RightToLeft mirrors items inside the usable extent of each row.
	RightToLeft bool
	// Dimension is the extent rows are packed against.
	Dimension float64

	// RowAlignment is copied into sections created by AddSection.
	RowAlignment             RowAlignment
	UsesFloatingHeaderFooter bool

	contentSize geom.Size
	invalidated bool
}

// New returns an empty, invalidated Info with default row alignment.
func New() *Info {
	return &Info{
		RowAlignment: DefaultRowAlignment(),
		invalidated:  true,
	}
}

// AddSection appends a section and invalidates the layout.
func (inf *Info) AddSection() *Section {
	id := SectionID(len(inf.sections))
	inf.sections = append(inf.sections, Section{id: id, RowAlignment: inf.RowAlignment})
	inf.invalidated = true
	return &inf.sections[id]
}

// NumberOfSections returns the number of sections.
func (inf *Info) NumberOfSections() int { return len(inf.sections) }

// Section returns the section with the given handle.
func (inf *Info) Section(id SectionID) *Section { return &inf.sections[id] }

// Item returns the item with the given handle.
func (inf *Info) Item(id ItemID) *Item { return &inf.items[id] }

// Row returns the row with the given handle.
func (inf *Info) Row(id RowID) *Row { return &inf.rows[id] }

// AddItem appends an item of the given size to a variable-size section.
func (inf *Info) AddItem(sid SectionID, size geom.Size) ItemID {
	s := &inf.sections[sid]
	if s.FixedItemSize {
		panic(fmt.Sprintf("grid: AddItem on fixed-size section %d", sid))
	}
	id := ItemID(len(inf.items))
	inf.items = append(inf.items, Item{
		Section: sid,
		Row:     NoRow,
		Frame:   geom.Rect{Width: size.Width, Height: size.Height},
	})
	s.items = append(s.items, id)
	s.valid = false
	inf.invalidated = true
	return id
}

// SetFixedItems switches a section to the fixed-size fast path with count
// items of one size.
func (inf *Info) SetFixedItems(sid SectionID, count int, size geom.Size) {
	s := &inf.sections[sid]
	if len(s.items) > 0 {
		panic(fmt.Sprintf("grid: SetFixedItems on section %d that already has items", sid))
	}
	s.FixedItemSize = true
	s.fixedCount = count
	s.ItemSize = size
	s.valid = false
	inf.invalidated = true
}

// Invalidate forces a full recompute on the next Compute.
func (inf *Info) Invalidate() {
	inf.invalidated = true
	for i := range inf.sections {
		inf.sections[i].valid = false
	}
}

// Invalidated reports whether geometry needs to be computed.
func (inf *Info) Invalidated() bool { return inf.invalidated }

// ContentSize returns the size of all sections stacked together. The second
// result is false while the layout is invalidated.
func (inf *Info) ContentSize() (geom.Size, bool) {
	return inf.contentSize, !inf.invalidated
}

// Compute packs every section into rows and stacks the sections. It is a
// no-op when nothing was invalidated.
func (inf *Info) Compute() error {
	if !inf.invalidated {
		return nil
	}
	if err := inf.check(); err != nil {
		return err
	}

	inf.rows = inf.rows[:0]
	for i := range inf.items {
		inf.items[i].Row = NoRow
	}

	var across, along float64
	for i := range inf.sections {
		s := &inf.sections[i]
		s.rows = s.rows[:0]
		alongLen, acrossLen := inf.computeSection(s)
		s.Frame = inf.rect(0, across, alongLen, acrossLen)
		across += acrossLen
		along = max(along, alongLen)
	}
	inf.contentSize = inf.size(along, across)
	inf.invalidated = false
	return nil
}

func (inf *Info) check() error {
	if !geom.ValidLength(inf.Dimension) {
		return fmt.Errorf("%w: dimension %v", layout.ErrInvalidGeometry, inf.Dimension)
	}
	for i := range inf.sections {
		s := &inf.sections[i]
		switch {
		case !s.Margins.Valid():
			return fmt.Errorf("%w: section %d insets %+v", layout.ErrInvalidGeometry, i, s.Margins)
		case !geom.ValidLength(s.InteritemSpacing):
			return fmt.Errorf("%w: section %d inter-item spacing %v", layout.ErrInvalidGeometry, i, s.InteritemSpacing)
		case !geom.ValidLength(s.LineSpacing):
			return fmt.Errorf("%w: section %d line spacing %v", layout.ErrInvalidGeometry, i, s.LineSpacing)
		case !geom.ValidLength(s.HeaderDimension):
			return fmt.Errorf("%w: section %d header %v", layout.ErrInvalidGeometry, i, s.HeaderDimension)
		case !geom.ValidLength(s.FooterDimension):
			return fmt.Errorf("%w: section %d footer %v", layout.ErrInvalidGeometry, i, s.FooterDimension)
		}
		if s.FixedItemSize {
			if !s.ItemSize.Valid() || s.fixedCount < 0 {
				return fmt.Errorf("%w: section %d item size %v", layout.ErrInvalidGeometry, i, s.ItemSize)
			}
			continue
		}
		for j, id := range s.items {
			if size := inf.items[id].Frame.Size(); !size.Valid() {
				return fmt.Errorf("%w: section %d item %d size %v", layout.ErrInvalidGeometry, i, j, size)
			}
		}
	}
	return nil
}

// computeSection lays out header, rows and footer of s relative to the
// section origin and returns the section extent on both axes.
func (inf *Info) computeSection(s *Section) (alongLen, acrossLen float64) {
	alongBegin, alongEnd, acrossBegin, acrossEnd := inf.margins(s.Margins)
	usable := inf.Dimension - alongBegin - alongEnd

	s.HeaderFrame = inf.rect(0, 0, inf.Dimension, s.HeaderDimension)
	pos := s.HeaderDimension

	s.resetPacking()
	if s.ItemsCount() > 0 {
		pos += acrossBegin
		s.OtherMargin = acrossBegin
		s.rowsOrigin = pos

		var rowsLen, widest float64
		if s.FixedItemSize {
			rowsLen, widest = inf.packFixed(s, usable, alongBegin, alongEnd)
		} else {
			rowsLen, widest = inf.packRows(s, usable, alongBegin, alongEnd)
		}
		pos += rowsLen + acrossEnd
		alongLen = alongBegin + widest + alongEnd
	}

	s.FooterFrame = inf.rect(0, pos, inf.Dimension, s.FooterDimension)
	pos += s.FooterDimension

	if s.HeaderDimension > 0 || s.FooterDimension > 0 {
		alongLen = max(alongLen, inf.Dimension)
	}
	s.valid = true
	return alongLen, pos
}

func (s *Section) resetPacking() {
	s.OtherMargin = 0
	s.BeginMargin, s.EndMargin, s.ActualGap = 0, 0, 0
	s.LastRowBeginMargin, s.LastRowEndMargin, s.LastRowActualGap = 0, 0, 0
	s.LastRowIncomplete = false
	s.ItemsByRowCount = 0
	s.IncompleteRow = 0
	s.rowsOrigin = 0
	s.rowPitch = 0
	s.rowCount = 0
	s.commonOffsets = nil
	s.lastOffsets = nil
}

func (inf *Info) addRow(s *Section) RowID {
	id := RowID(len(inf.rows))
	inf.rows = append(inf.rows, Row{Section: s.id, Index: len(s.rows)})
	s.rows = append(s.rows, id)
	return id
}

// packRows is the variable-size path: items are appended to the open row
// until the next one would not fit, then a new row is started.
func (inf *Info) packRows(s *Section, usable, alongBegin, alongEnd float64) (rowsLen, widest float64) {
	cur := NoRow
	left := 0.0
	count := 0
	for _, id := range s.items {
		w := inf.alongOf(inf.items[id].Frame.Size())
		need := w
		if count > 0 {
			need += s.InteritemSpacing
		}
		if cur == NoRow || need > left {
			if cur != NoRow {
				inf.rows[cur].Complete = true
			}
			cur = inf.addRow(s)
			left = usable - w
			count = 0
		} else {
			left -= need
		}
		r := &inf.rows[cur]
		r.Items = append(r.Items, id)
		r.ItemCount++
		inf.items[id].Row = cur
		count++
	}

	for _, rid := range s.rows {
		s.ItemsByRowCount = max(s.ItemsByRowCount, inf.rows[rid].ItemCount)
	}
	s.IncompleteRow = len(s.rows) - 1
	s.LastRowIncomplete = inf.rows[s.rows[s.IncompleteRow]].ItemCount < s.ItemsByRowCount

	across := 0.0
	for i, rid := range s.rows {
		if i > 0 {
			across += s.LineSpacing
		}
		r := &inf.rows[rid]
		offset, gap, total := inf.layoutRow(s, r, usable)
		begin, end := rowMargins(offset, gap, total, r.ItemCount, usable)
		if i == 0 {
			s.BeginMargin, s.EndMargin, s.ActualGap = alongBegin+begin, alongEnd+end, gap
		}
		if i == s.IncompleteRow {
			s.LastRowBeginMargin, s.LastRowEndMargin, s.LastRowActualGap = alongBegin+begin, alongEnd+end, gap
		}
		r.Frame = inf.rect(alongBegin, s.rowsOrigin+across, inf.alongOf(r.Size), inf.acrossOf(r.Size))
		across += inf.acrossOf(r.Size)
		widest = max(widest, inf.alongOf(r.Size))
	}
	return across, widest
}

// layoutRow positions the items of r relative to the row origin and sets
// the row size. It returns the lead offset, the gap used and the summed item
// extent.
func (inf *Info) layoutRow(s *Section, r *Row, usable float64) (offset, gap, total float64) {
	align := s.RowAlignment.Common
	if r.Index == s.IncompleteRow {
		align = s.RowAlignment.LastRow
	}
	for _, id := range r.Items {
		total += inf.alongOf(inf.items[id].Frame.Size())
	}
	offset, gap = rowSpacing(align, usable-total, len(r.Items), s.InteritemSpacing)

	pos := offset
	var end, thickest float64
	for _, id := range r.Items {
		it := &inf.items[id]
		size := it.Frame.Size()
		w, h := inf.alongOf(size), inf.acrossOf(size)
		at := pos
		if inf.RightToLeft {
			at = usable - pos - w
		}
		it.Frame = inf.rect(at, 0, w, h)
		end = max(end, at+w)
		thickest = max(thickest, h)
		pos += w + gap
	}
	r.Size = inf.size(end, thickest)
	r.valid = true
	return offset, gap, total
}

// packFixed is the fast path. The number of items per row is found with the
// same arithmetic packRows uses, and column offsets are accumulated the same
// way layoutRow does, so both paths agree exactly.
func (inf *Info) packFixed(s *Section, usable, alongBegin, alongEnd float64) (rowsLen, widest float64) {
	n := s.fixedCount
	w, h := inf.alongOf(s.ItemSize), inf.acrossOf(s.ItemSize)

	perRow := 1
	left := usable - w
	for perRow < n && !(w+s.InteritemSpacing > left) {
		left -= w + s.InteritemSpacing
		perRow++
	}
	rows := (n + perRow - 1) / perRow
	lastCount := n - (rows-1)*perRow

	s.rowCount = rows
	s.rowPitch = h + s.LineSpacing
	s.ItemsByRowCount = perRow
	s.IncompleteRow = rows - 1
	s.LastRowIncomplete = lastCount < perRow

	if rows > 1 {
		offsets, offset, gap, total := inf.fixedOffsets(s.RowAlignment.Common, perRow, w, s.InteritemSpacing, usable)
		s.commonOffsets = offsets
		begin, end := rowMargins(offset, gap, total, perRow, usable)
		s.BeginMargin, s.EndMargin, s.ActualGap = alongBegin+begin, alongEnd+end, gap
		widest = rowEnd(offsets, w)
	}
	offsets, offset, gap, total := inf.fixedOffsets(s.RowAlignment.LastRow, lastCount, w, s.InteritemSpacing, usable)
	s.lastOffsets = offsets
	begin, end := rowMargins(offset, gap, total, lastCount, usable)
	s.LastRowBeginMargin, s.LastRowEndMargin, s.LastRowActualGap = alongBegin+begin, alongEnd+end, gap
	if rows == 1 {
		s.BeginMargin, s.EndMargin, s.ActualGap = s.LastRowBeginMargin, s.LastRowEndMargin, gap
	}
	widest = max(widest, rowEnd(offsets, w))

	return s.fixedRowOrigin(rows-1) - s.rowsOrigin + h, widest
}

func (inf *Info) fixedOffsets(align Alignment, count int, w, spacing, usable float64) (offsets []float64, offset, gap, total float64) {
	for range count {
		total += w
	}
	offset, gap = rowSpacing(align, usable-total, count, spacing)
	offsets = make([]float64, count)
	pos := offset
	for i := range offsets {
		at := pos
		if inf.RightToLeft {
			at = usable - pos - w
		}
		offsets[i] = at
		pos += w + gap
	}
	return offsets, offset, gap, total
}

func (s *Section) fixedRowOrigin(row int) float64 {
	return s.rowsOrigin + float64(row)*s.rowPitch
}

func rowEnd(offsets []float64, w float64) float64 {
	var end float64
	for _, at := range offsets {
		end = max(end, at+w)
	}
	return end
}

// rowMargins returns the unused space before the first and after the last
// item of a row, measured inside the usable extent.
func rowMargins(offset, gap, total float64, n int, usable float64) (begin, end float64) {
	if n == 0 {
		return 0, 0
	}
	used := offset + total + gap*float64(n-1)
	return offset, usable - used
}

// Rows returns copies of the rows of a section. Fixed-size sections get
// synthesised rows with FixedItemSize set and no item handles.
func (inf *Info) Rows(sid SectionID) []Row {
	s := &inf.sections[sid]
	if !s.FixedItemSize {
		rows := make([]Row, len(s.rows))
		for i, rid := range s.rows {
			rows[i] = inf.rows[rid]
			rows[i].Items = slices.Clone(rows[i].Items)
		}
		return rows
	}

	alongBegin, _, _, _ := inf.margins(s.Margins)
	w, h := inf.alongOf(s.ItemSize), inf.acrossOf(s.ItemSize)
	rows := make([]Row, s.rowCount)
	for r := range rows {
		offsets := s.commonOffsets
		if r == s.rowCount-1 {
			offsets = s.lastOffsets
		}
		end := rowEnd(offsets, w)
		rows[r] = Row{
			Section:       sid,
			Index:         r,
			ItemCount:     len(offsets),
			FixedItemSize: true,
			Size:          inf.size(end, h),
			Frame:         inf.rect(alongBegin, s.fixedRowOrigin(r), end, h),
			Complete:      r < s.rowCount-1,
			valid:         true,
		}
	}
	return rows
}

// Snapshot returns a deep copy that is unaffected by later changes to inf.
func (inf *Info) Snapshot() *Info {
	c := *inf
	c.sections = make([]Section, len(inf.sections))
	for i := range inf.sections {
		c.sections[i] = inf.sections[i].clone()
	}
	c.rows = make([]Row, len(inf.rows))
	for i, r := range inf.rows {
		r.Items = slices.Clone(r.Items)
		c.rows[i] = r
	}
	c.items = slices.Clone(inf.items)
	return &c
}

// margins maps section insets onto the packing axes.
func (inf *Info) margins(m geom.Insets) (alongBegin, alongEnd, acrossBegin, acrossEnd float64) {
	if inf.Horizontal {
		return m.Top, m.Bottom, m.Left, m.Right
	}
	return m.Left, m.Right, m.Top, m.Bottom
}

func (inf *Info) alongOf(s geom.Size) float64 {
	if inf.Horizontal {
		return s.Height
	}
	return s.Width
}

func (inf *Info) acrossOf(s geom.Size) float64 {
	if inf.Horizontal {
		return s.Width
	}
	return s.Height
}

func (inf *Info) size(along, across float64) geom.Size {
	if inf.Horizontal {
		return geom.Size{Width: across, Height: along}
	}
	return geom.Size{Width: along, Height: across}
}

func (inf *Info) rect(along, across, alongLen, acrossLen float64) geom.Rect {
	if inf.Horizontal {
		return geom.Rect{X: across, Y: along, Width: acrossLen, Height: alongLen}
	}
	return geom.Rect{X: along, Y: across, Width: alongLen, Height: acrossLen}
}

// acrossSpan returns the extent of r on the stacking axis.
func (inf *Info) acrossSpan(r geom.Rect) (lo, hi float64) {
	if inf.Horizontal {
		return r.X, r.MaxX()
	}
	return r.Y, r.MaxY()
}
