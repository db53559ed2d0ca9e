package viewdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-collection/internal/flow"
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

// counter is a source that records how often it is asked for counts.
type counter struct {
	counts  []int
	fetches int
}

func (c *counter) NumberOfSections() int { return len(c.counts) }

func (c *counter) NumberOfItems(section int) int {
	c.fetches++
	return c.counts[section]
}

// single has no section counter and therefore one section.
type single int

func (s single) NumberOfItems(int) int { return int(s) }

// mutating changes the source counts while the layout sizes items.
type mutating struct{ src *counter }

func (m mutating) SizeForItem(index.Path) geom.Size {
	m.src.counts[0] = 1
	return geom.Sz(10, 10)
}

var screen = geom.NewRect(0, 0, 320, 480)

func newData(t *testing.T, src Source) *Data {
	t.Helper()
	l, err := flow.New()
	require.NoError(t, err)
	d := New(src, l)
	d.SetBounds(screen)
	return d
}

func TestData_NotPrepared(t *testing.T) {
	d := newData(t, &counter{counts: []int{3}})

	_, err := d.ContentSize()
	assert.ErrorIs(t, err, layout.ErrNotPrepared)
	_, err = d.AttributesInRect(screen)
	assert.ErrorIs(t, err, layout.ErrNotPrepared)
	_, err = d.GlobalIndex(index.At(0, 0))
	assert.ErrorIs(t, err, layout.ErrNotPrepared)

	require.NoError(t, d.Validate(screen))
	d.Invalidate()
	_, err = d.AttributesForItem(index.At(0, 0))
	assert.ErrorIs(t, err, layout.ErrNotPrepared)
}

func TestData_ValidateIsIdempotent(t *testing.T) {
	src := &counter{counts: []int{4, 0, 7}}
	d := newData(t, src)

	require.NoError(t, d.Validate(screen))
	fetches := src.fetches
	first, err := d.AttributesInRect(screen)
	require.NoError(t, err)

	require.NoError(t, d.Validate(screen))
	assert.Equal(t, fetches, src.fetches, "second Validate fetched from the source")
	second, err := d.AttributesInRect(screen)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]), "attributes %d differ: %v vs %v", i, first[i], second[i])
	}

	d.Invalidate()
	require.NoError(t, d.Validate(screen))
	assert.Greater(t, src.fetches, fetches)
}

func TestData_GlobalIndexBijection(t *testing.T) {
	src := &counter{counts: []int{3, 0, 0, 5, 1, 0, 2}}
	d := newData(t, src)
	require.NoError(t, d.Validate(screen))

	total, err := d.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, 11, total)

	n := 0
	for s, count := range src.counts {
		for i := range count {
			p := index.At(s, i)
			g, err := d.GlobalIndex(p)
			require.NoError(t, err)
			assert.Equal(t, n, g, "GlobalIndex(%v)", p)
			back, err := d.PathForGlobalIndex(g)
			require.NoError(t, err)
			assert.Equal(t, p, back, "PathForGlobalIndex(%d)", g)
			n++
		}
	}

	_, err = d.PathForGlobalIndex(total)
	assert.ErrorIs(t, err, layout.ErrNoSuchElement)
	_, err = d.GlobalIndex(index.At(1, 0))
	assert.ErrorIs(t, err, layout.ErrNoSuchElement)
}

func TestData_DefaultsToOneSection(t *testing.T) {
	d := newData(t, single(5))
	require.NoError(t, d.Validate(screen))

	sections, err := d.NumberOfSections()
	require.NoError(t, err)
	assert.Equal(t, 1, sections)
	items, err := d.NumberOfItems(0)
	require.NoError(t, err)
	assert.Equal(t, 5, items)
}

func TestData_InconsistentDataSource(t *testing.T) {
	t.Run("negative count", func(t *testing.T) {
		d := newData(t, &counter{counts: []int{2, -1}})
		assert.ErrorIs(t, d.Validate(screen), layout.ErrInconsistentDataSource)
		_, err := d.ContentSize()
		assert.ErrorIs(t, err, layout.ErrNotPrepared)
	})

	t.Run("counts change during prepare keep last good", func(t *testing.T) {
		src := &counter{counts: []int{6}}
		d := newData(t, src)
		require.NoError(t, d.Validate(screen))
		before, err := d.ContentSize()
		require.NoError(t, err)

		src.counts[0] = 9
		d.SetDelegate(mutating{src: src})
		assert.ErrorIs(t, d.Validate(screen), layout.ErrInconsistentDataSource)

		after, err := d.ContentSize()
		require.NoError(t, err)
		assert.Equal(t, before, after)
		counts, err := d.Counts()
		require.NoError(t, err)
		assert.Equal(t, []int{6}, counts)
	})
}

func TestData_Queries(t *testing.T) {
	d := newData(t, &counter{counts: []int{7}})
	require.NoError(t, d.Validate(screen))

	// five 50pt items in the first 320pt row, justified with 17.5pt gaps
	rect, err := d.RectForItem(index.At(0, 2))
	require.NoError(t, err)
	assert.Equal(t, geom.NewRect(135, 0, 50, 50), rect)

	p, err := d.IndexPathAtPoint(geom.Pt(140, 10))
	require.NoError(t, err)
	assert.Equal(t, index.At(0, 2), p)

	_, err = d.IndexPathAtPoint(geom.Pt(60, 10))
	assert.ErrorIs(t, err, layout.ErrNoSuchElement)

	_, err = d.AttributesForItem(index.At(0, 9))
	assert.ErrorIs(t, err, layout.ErrNoSuchElement)
	_, err = d.AttributesForSupplementary(layout.KindSectionHeader, index.SectionPath(0))
	assert.ErrorIs(t, err, layout.ErrNoSuchElement)

	content, err := d.ContentRect()
	require.NoError(t, err)
	assert.Equal(t, geom.NewRect(0, 0, 320, 110), content)

	// returned attributes are copies
	a, err := d.AttributesForItem(index.At(0, 0))
	require.NoError(t, err)
	a.SetAlpha(0)
	again, err := d.AttributesForItem(index.At(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, again.Alpha())
}

func TestData_SetBounds(t *testing.T) {
	d := newData(t, &counter{counts: []int{7}})
	require.NoError(t, d.Validate(screen))
	gen := d.Generation()

	assert.False(t, d.SetBounds(screen.Offset(0, 100)), "scrolling invalidated")
	assert.Equal(t, gen, d.Generation())

	assert.True(t, d.SetBounds(geom.NewRect(0, 0, 100, 480)))
	assert.Greater(t, d.Generation(), gen)
	require.NoError(t, d.Validate(screen))
	size, err := d.ContentSize()
	require.NoError(t, err)
	assert.Equal(t, geom.Sz(50, 410), size)
}
