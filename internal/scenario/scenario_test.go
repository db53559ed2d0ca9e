package scenario

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/update"
)

func load(t *testing.T, name string) *Scenario {
	t.Helper()
	s, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	return s
}

func TestFormatOf(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    Format
		wantErr bool
	}{
		"yaml":      {name: "a.yaml", want: YAML},
		"yml":       {name: "dir/a.YML", want: YAML},
		"toml":      {name: "a.toml", want: TOML},
		"json":      {name: "a.json", wantErr: true},
		"extension": {name: "scenario", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := FormatOf(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_YAMLAndTOMLAgree(t *testing.T) {
	y := load(t, "delete_insert.yaml")
	tm := load(t, "delete_insert.toml")
	assert.Equal(t, y, tm)

	assert.Equal(t, []int{5}, Counts(y.Sections))
	ops, err := y.Ops()
	require.NoError(t, err)
	assert.Equal(t, []update.Op{
		{Kind: update.OpDeleteItem, From: index.At(0, 2)},
		{Kind: update.OpInsertItem, To: index.At(0, 0)},
	}, ops)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]struct {
		format Format
		data   string
	}{
		"unknown yaml key": {
			format: YAML,
			data:   "bounds: {width: 10, height: 10}\nsurprise: 1\n",
		},
		"unknown toml key": {
			format: TOML,
			data:   "surprise = 1\n[bounds]\nwidth = 10\nheight = 10\n",
		},
		"no bounds": {
			format: YAML,
			data:   "sections: [{count: 1}]\n",
		},
		"negative count": {
			format: YAML,
			data:   "bounds: {width: 10, height: 10}\nsections: [{count: -1}]\n",
		},
		"too many sizes": {
			format: YAML,
			data:   "bounds: {width: 10, height: 10}\nsections: [{count: 1, sizes: [{width: 1, height: 1}, {width: 1, height: 1}]}]\n",
		},
		"unknown op": {
			format: YAML,
			data:   "bounds: {width: 10, height: 10}\nupdates: [{op: shuffle, from: '0'}]\nafter: []\n",
		},
		"item op with section path": {
			format: YAML,
			data:   "bounds: {width: 10, height: 10}\nupdates: [{op: delete item, from: '0'}]\nafter: []\n",
		},
		"move without to": {
			format: YAML,
			data:   "bounds: {width: 10, height: 10}\nupdates: [{op: move section, from: '0'}]\nafter: []\n",
		},
		"updates without after": {
			format: YAML,
			data:   "bounds: {width: 10, height: 10}\nupdates: [{op: delete section, from: '0'}]\n",
		},
		"bad path": {
			format: YAML,
			data:   "bounds: {width: 10, height: 10}\nupdates: [{op: delete item, from: '0,x'}]\nafter: []\n",
		},
		"unknown kind": {
			format: TOML,
			data:   "[layout]\nkind = \"masonry\"\n[bounds]\nwidth = 10\nheight = 10\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestScenario_NewView(t *testing.T) {
	s := load(t, "delete_insert.yaml")
	cv, src, err := s.NewView()
	require.NoError(t, err)

	size, err := cv.ContentSize()
	require.NoError(t, err)
	assert.Equal(t, 310.0, size.Height)

	elems, err := cv.VisibleElements(cv.Bounds())
	require.NoError(t, err)
	require.Len(t, elems, 5)
	assert.Equal(t, "c", elems[2].View.(*Cell).Text)
	assert.Equal(t, "c", src.Label(index.At(0, 2)))
	assert.Equal(t, "0.7", src.Label(index.At(0, 7)))
}

func TestScenario_Apply(t *testing.T) {
	s := load(t, "delete_insert.toml")
	cv, src, err := s.NewView()
	require.NoError(t, err)
	_, err = cv.VisibleElements(cv.Bounds())
	require.NoError(t, err)

	require.NoError(t, s.Apply(cv, src))

	updates := cv.Updates()
	require.Len(t, updates, 1)
	var got []string
	for _, it := range updates[0].Items {
		got = append(got, it.String())
	}
	assert.Equal(t, []string{"delete [0,2]", "insert [0,0]"}, got)

	// surviving views follow their items
	elems, err := cv.VisibleElements(cv.Bounds())
	require.NoError(t, err)
	require.Len(t, elems, 5)
	for i, want := range []string{"new", "a", "b", "d", "e"} {
		assert.Equal(t, want, src.Label(index.At(0, i)))
		assert.Equal(t, want, elems[i].View.(*Cell).Text, "view at %d", i)
	}
	created, reused := cv.ReuseStats()
	assert.Equal(t, 5, created)
	assert.Equal(t, 1, reused)
}

func TestScenario_ApplyRejected(t *testing.T) {
	s := load(t, "delete_insert.yaml")
	s.After[0].Count = 4
	cv, src, err := s.NewView()
	require.NoError(t, err)

	err = s.Apply(cv, src)
	assert.Error(t, err)
	assert.Empty(t, cv.Updates())
}

func TestScenario_List(t *testing.T) {
	s := load(t, "list.yaml")
	cv, _, err := s.NewView()
	require.NoError(t, err)

	// section 0: header 20, rows 60+30+30, two separators
	// section 1: header 20, rows 30+30, one separator
	size, err := cv.ContentSize()
	require.NoError(t, err)
	assert.Equal(t, 20+120+2.0+20+60+1, size.Height)

	a, err := cv.LayoutAttributesForItem(index.At(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 142.0+20, a.Frame().Y)
}
