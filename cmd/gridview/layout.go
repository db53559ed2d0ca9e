package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	collection "github.com/grindlemire/go-collection"
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/scenario"
)

// runLayout implements the layout subcommand.
func runLayout(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	s, err := scenario.Load(opts.path)
	if err != nil {
		return err
	}
	cv, _, err := s.NewView()
	if err != nil {
		return err
	}
	return writeLayout(os.Stdout, cv, painter(opts.colorOutput()))
}

func writeLayout(w io.Writer, cv *collection.CollectionView, p painter) error {
	size, err := cv.ContentSize()
	if err != nil {
		return err
	}
	attrs, err := cv.LayoutAttributesForElements(geom.RectFrom(geom.Point{}, size))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %gx%g\n", p.paint(ansiBold, "content"), size.Width, size.Height)
	for _, line := range dumpAttributes(attrs) {
		fmt.Fprint(w, line)
	}
	return nil
}

// dumpAttributes renders one newline-terminated line per element.
func dumpAttributes(attrs []*collection.Attributes) []string {
	lines := make([]string, 0, len(attrs))
	for _, a := range attrs {
		var b strings.Builder
		b.WriteString(a.String())
		if a.ZIndex != 0 {
			fmt.Fprintf(&b, " z=%d", a.ZIndex)
		}
		if a.Hidden {
			b.WriteString(" hidden")
		}
		b.WriteByte('\n')
		lines = append(lines, b.String())
	}
	return lines
}

// fullGeometry returns every element of g.
func fullGeometry(g collection.Geometry) []*collection.Attributes {
	size := g.ContentSize()
	return g.AttributesInRect(geom.RectFrom(geom.Point{}, size))
}
