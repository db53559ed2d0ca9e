package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/update"
)

// ErrInvalid is wrapped by every error about the content of a scenario.
var ErrInvalid = errors.New("invalid scenario")

// Format is a scenario file format.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf picks the format from a file name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("scenario: unsupported file extension %q", filepath.Ext(name))
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

func (s Size) geom() geom.Size { return geom.Sz(s.Width, s.Height) }

// Insets are section margins.
type Insets struct {
	Top    float64 `yaml:"top" toml:"top"`
	Left   float64 `yaml:"left" toml:"left"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
	Right  float64 `yaml:"right" toml:"right"`
}

func (in Insets) geom() geom.Insets {
	return geom.Insets{Top: in.Top, Left: in.Left, Bottom: in.Bottom, Right: in.Right}
}

// Layout configures the layout engine. Pointer fields fall back to the
// engine's defaults when unset.
type Layout struct {
	// Kind is "flow" (default) or "list".
	Kind string `yaml:"kind" toml:"kind"`

	Direction        string   `yaml:"direction" toml:"direction"`
	ItemSize         *Size    `yaml:"item_size" toml:"item_size"`
	LineSpacing      *float64 `yaml:"line_spacing" toml:"line_spacing"`
	InteritemSpacing *float64 `yaml:"interitem_spacing" toml:"interitem_spacing"`
	Insets           *Insets  `yaml:"insets" toml:"insets"`
	Header           *Size    `yaml:"header" toml:"header"`
	Footer           *Size    `yaml:"footer" toml:"footer"`
	Alignment        string   `yaml:"alignment" toml:"alignment"`
	LastRowAlignment string   `yaml:"last_row_alignment" toml:"last_row_alignment"`
	FloatingHeaders  bool     `yaml:"floating_headers" toml:"floating_headers"`
	RightToLeft      bool     `yaml:"right_to_left" toml:"right_to_left"`

	// list only
	RowHeight       *float64 `yaml:"row_height" toml:"row_height"`
	SeparatorHeight *float64 `yaml:"separator_height" toml:"separator_height"`
}

// Section describes one section of the static data source.
type Section struct {
	Count int `yaml:"count" toml:"count"`
	// Sizes overrides the size of the first len(Sizes) items.
	Sizes  []Size `yaml:"sizes" toml:"sizes"`
	Header *Size  `yaml:"header" toml:"header"`
	Footer *Size  `yaml:"footer" toml:"footer"`
	// Labels are shown by render; items without one are labelled by path.
	Labels []string `yaml:"labels" toml:"labels"`
}

// Path is an index path written as "section,item" or "section".
type Path struct {
	index.Path
}

// UnmarshalText parses "s,i" or "s".
func (p *Path) UnmarshalText(text []byte) error {
	parts := strings.Split(strings.TrimSpace(string(text)), ",")
	if len(parts) > 2 {
		return fmt.Errorf("%w: path %q", ErrInvalid, text)
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("%w: path %q: %v", ErrInvalid, text, err)
		}
		nums[i] = n
	}
	if len(nums) == 1 {
		p.Path = index.SectionPath(nums[0])
	} else {
		p.Path = index.At(nums[0], nums[1])
	}
	return nil
}

// UnmarshalYAML also accepts a flow sequence such as [0, 2].
func (p *Path) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var nums []int
		if err := node.Decode(&nums); err != nil {
			return err
		}
		if len(nums) < 1 || len(nums) > 2 {
			return fmt.Errorf("%w: line %d: path needs one or two numbers", ErrInvalid, node.Line)
		}
		if len(nums) == 1 {
			p.Path = index.SectionPath(nums[0])
		} else {
			p.Path = index.At(nums[0], nums[1])
		}
		return nil
	}
	return p.UnmarshalText([]byte(node.Value))
}

// MarshalText writes the "s,i" form.
func (p Path) MarshalText() ([]byte, error) {
	if p.IsSection() {
		return []byte(strconv.Itoa(p.Section)), nil
	}
	return []byte(strconv.Itoa(p.Section) + "," + strconv.Itoa(p.Item)), nil
}

// Op is one announced update.
type Op struct {
	// Op names the operation, e.g. "insert item" or "move section".
	Op   string `yaml:"op" toml:"op"`
	From *Path  `yaml:"from" toml:"from"`
	To   *Path  `yaml:"to" toml:"to"`
}

// Scenario is a parsed scenario file.
type Scenario struct {
	Layout   Layout    `yaml:"layout" toml:"layout"`
	Bounds   Size      `yaml:"bounds" toml:"bounds"`
	Sections []Section `yaml:"sections" toml:"sections"`
	Updates  []Op      `yaml:"updates" toml:"updates"`
	After    []Section `yaml:"after" toml:"after"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Scenario, error) {
	var s Scenario
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, err
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("scenario: unknown format %q", format)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks what decoding cannot: counts, sizes and op shapes.
// Whether the updates agree with the counts is left to the reconciler.
func (s *Scenario) Validate() error {
	if !s.Bounds.geom().Valid() || (s.Bounds.Width == 0 && s.Bounds.Height == 0) {
		return fmt.Errorf("%w: bounds %vx%v", ErrInvalid, s.Bounds.Width, s.Bounds.Height)
	}
	switch s.Layout.Kind {
	case "", "flow", "list":
	default:
		return fmt.Errorf("%w: layout kind %q", ErrInvalid, s.Layout.Kind)
	}
	if err := checkSections("sections", s.Sections); err != nil {
		return err
	}
	if err := checkSections("after", s.After); err != nil {
		return err
	}
	if len(s.Updates) > 0 && s.After == nil {
		return fmt.Errorf("%w: updates given without after", ErrInvalid)
	}
	for i, op := range s.Updates {
		if _, err := op.op(); err != nil {
			return fmt.Errorf("%w: updates[%d]: %v", ErrInvalid, i, err)
		}
	}
	return nil
}

func checkSections(field string, sections []Section) error {
	for i, sec := range sections {
		if sec.Count < 0 {
			return fmt.Errorf("%w: %s[%d]: count %d", ErrInvalid, field, i, sec.Count)
		}
		if len(sec.Sizes) > sec.Count {
			return fmt.Errorf("%w: %s[%d]: %d sizes for %d items", ErrInvalid, field, i, len(sec.Sizes), sec.Count)
		}
		for j, size := range sec.Sizes {
			if !size.geom().Valid() {
				return fmt.Errorf("%w: %s[%d].sizes[%d]: %vx%v", ErrInvalid, field, i, j, size.Width, size.Height)
			}
		}
	}
	return nil
}

// op converts o to a reconciler operation, checking that it names the paths
// its kind needs.
func (o Op) op() (update.Op, error) {
	kind, err := update.ParseOpKind(o.Op)
	if err != nil {
		return update.Op{}, err
	}
	var out update.Op
	out.Kind = kind
	needFrom := kind != update.OpInsertSection && kind != update.OpInsertItem
	needTo := kind == update.OpInsertSection || kind == update.OpInsertItem ||
		kind == update.OpMoveSection || kind == update.OpMoveItem
	if needFrom {
		if o.From == nil {
			return update.Op{}, fmt.Errorf("%s needs from", kind)
		}
		out.From = o.From.Path
	}
	if needTo {
		if o.To == nil {
			return update.Op{}, fmt.Errorf("%s needs to", kind)
		}
		out.To = o.To.Path
	}
	for _, p := range []*Path{o.From, o.To} {
		if p != nil && p.IsSection() != kind.Section() {
			return update.Op{}, fmt.Errorf("%s takes %s paths, got %v", kind, pathShape(kind.Section()), p.Path)
		}
	}
	return out, nil
}

func pathShape(section bool) string {
	if section {
		return "section"
	}
	return "item"
}

// Ops returns the updates as reconciler operations.
func (s *Scenario) Ops() ([]update.Op, error) {
	ops := make([]update.Op, 0, len(s.Updates))
	for i, o := range s.Updates {
		op, err := o.op()
		if err != nil {
			return nil, fmt.Errorf("%w: updates[%d]: %v", ErrInvalid, i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Batch returns the updates queued on a batch.
func (s *Scenario) Batch() (*update.Batch, error) {
	ops, err := s.Ops()
	if err != nil {
		return nil, err
	}
	var b update.Batch
	for _, op := range ops {
		b.Add(op)
	}
	return &b, nil
}

// Counts returns the item count of every section.
func Counts(sections []Section) []int {
	counts := make([]int, len(sections))
	for i, sec := range sections {
		counts[i] = sec.Count
	}
	return counts
}

// BoundsRect returns the bounds at the origin.
func (s *Scenario) BoundsRect() geom.Rect {
	return geom.RectFrom(geom.Point{}, s.Bounds.geom())
}
