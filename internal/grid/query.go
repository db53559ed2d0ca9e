package grid

import (
	"math"

	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/index"
)

// FrameForItem returns the absolute frame of the item at p.
func (inf *Info) FrameForItem(p index.Path) (geom.Rect, bool) {
	s, ok := inf.section(p.Section)
	if !ok || p.Item < 0 || p.Item >= s.ItemsCount() {
		return geom.Rect{}, false
	}
	return inf.itemFrame(s, p.Item).OffsetBy(s.Frame.Origin()), true
}

// HeaderFrame returns the absolute header frame of a section. The second
// result is false when the section does not exist or has no header.
func (inf *Info) HeaderFrame(section int) (geom.Rect, bool) {
	s, ok := inf.section(section)
	if !ok || s.HeaderDimension <= 0 {
		return geom.Rect{}, false
	}
	return s.HeaderFrame.OffsetBy(s.Frame.Origin()), true
}

// FooterFrame is the footer counterpart of HeaderFrame.
func (inf *Info) FooterFrame(section int) (geom.Rect, bool) {
	s, ok := inf.section(section)
	if !ok || s.FooterDimension <= 0 {
		return geom.Rect{}, false
	}
	return s.FooterFrame.OffsetBy(s.Frame.Origin()), true
}

// SectionFrame returns the absolute frame of a section.
func (inf *Info) SectionFrame(section int) (geom.Rect, bool) {
	s, ok := inf.section(section)
	if !ok {
		return geom.Rect{}, false
	}
	return s.Frame, true
}

// VisitItems calls fn for every item whose absolute frame intersects r, in
// section then item order.
func (inf *Info) VisitItems(r geom.Rect, fn func(p index.Path, frame geom.Rect)) {
	if inf.invalidated {
		return
	}
	lo, hi := inf.acrossSpan(r)
	for si := range inf.sections {
		s := &inf.sections[si]
		sLo, sHi := inf.acrossSpan(s.Frame)
		if sHi < lo || sLo > hi {
			continue
		}
		if s.FixedItemSize {
			inf.visitFixed(s, r, fn)
			continue
		}
		origin := s.Frame.Origin()
		base := 0
		for _, rid := range s.rows {
			row := &inf.rows[rid]
			rLo, rHi := inf.acrossSpan(row.Frame.OffsetBy(origin))
			if rHi >= lo && rLo <= hi {
				for j, id := range row.Items {
					f := inf.items[id].Frame.OffsetBy(row.Frame.Origin()).OffsetBy(origin)
					if f.Intersects(r) {
						fn(index.At(si, base+j), f)
					}
				}
			}
			base += row.ItemCount
		}
	}
}

// visitFixed only walks the rows whose across range can overlap r.
func (inf *Info) visitFixed(s *Section, r geom.Rect, fn func(p index.Path, frame geom.Rect)) {
	if s.rowCount == 0 {
		return
	}
	lo, hi := inf.acrossSpan(r)
	sLo, _ := inf.acrossSpan(s.Frame)
	start := sLo + s.rowsOrigin

	first, last := 0, s.rowCount-1
	if s.rowPitch > 0 {
		first = max(0, clampRow((lo-start)/s.rowPitch, s.rowCount)-1)
		last = min(last, clampRow((hi-start)/s.rowPitch, s.rowCount))
	}
	origin := s.Frame.Origin()
	for row := first; row <= last; row++ {
		n := len(s.commonOffsets)
		if row == s.rowCount-1 {
			n = len(s.lastOffsets)
		}
		for c := range n {
			i := row*s.ItemsByRowCount + c
			f := inf.fixedFrame(s, row, c).OffsetBy(origin)
			if f.Intersects(r) {
				fn(index.At(int(s.id), i), f)
			}
		}
	}
}

func clampRow(v float64, n int) int {
	v = math.Floor(v)
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v >= float64(n):
		return n
	}
	return int(v)
}

func (inf *Info) section(i int) (*Section, bool) {
	if inf.invalidated || i < 0 || i >= len(inf.sections) {
		return nil, false
	}
	return &inf.sections[i], true
}

// itemFrame returns the frame of item i relative to its section.
func (inf *Info) itemFrame(s *Section, i int) geom.Rect {
	if s.FixedItemSize {
		k := s.ItemsByRowCount
		return inf.fixedFrame(s, i/k, i%k)
	}
	it := &inf.items[s.items[i]]
	return it.Frame.OffsetBy(inf.rows[it.Row].Frame.Origin())
}

func (inf *Info) fixedFrame(s *Section, row, col int) geom.Rect {
	offsets := s.commonOffsets
	if row == s.rowCount-1 {
		offsets = s.lastOffsets
	}
	alongBegin, _, _, _ := inf.margins(s.Margins)
	w, h := inf.alongOf(s.ItemSize), inf.acrossOf(s.ItemSize)
	return inf.rect(offsets[col]+alongBegin, s.fixedRowOrigin(row), w, h)
}
