package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	collection "github.com/grindlemire/go-collection"
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/scenario"
)

// maxRenderRows caps the height of a render so huge scenarios stay readable.
const maxRenderRows = 400

// runRender implements the render subcommand.
func runRender(args []string) error {
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
	cols := opts.width
	if cols == 0 {
		cols = terminalWidth()
	}
	return render(os.Stdout, cv, cols, painter(opts.colorOutput()))
}

// canvas is a grid of runes with one colour per cell.
type canvas struct {
	cells  [][]rune
	colors [][]string
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cells: make([][]rune, rows), colors: make([][]string, rows)}
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", cols))
		c.colors[y] = make([]string, cols)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, color string) {
	if y < 0 || y >= len(c.cells) || x < 0 || x >= len(c.cells[y]) {
		return
	}
	c.cells[y][x] = r
	c.colors[y][x] = color
}

// box draws the outline of a rect in canvas coordinates and writes label
// inside it when it fits.
func (c *canvas) box(x0, y0, x1, y1 int, label, color string) {
	for x := x0; x <= x1; x++ {
		c.set(x, y0, '-', color)
		c.set(x, y1, '-', color)
	}
	for y := y0; y <= y1; y++ {
		c.set(x0, y, '|', color)
		c.set(x1, y, '|', color)
	}
	for _, pt := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		c.set(pt[0], pt[1], '+', color)
	}
	inner := x1 - x0 - 1
	if inner <= 0 || y1-y0 < 2 {
		return
	}
	r := []rune(label)
	if len(r) > inner {
		r = r[:inner]
	}
	ly := y0 + (y1-y0)/2
	lx := x0 + 1 + (inner-len(r))/2
	for i, ch := range r {
		c.set(lx+i, ly, ch, color)
	}
}

func (c *canvas) write(w io.Writer, p painter) {
	for y, row := range c.cells {
		var b strings.Builder
		run, runColor := "", ""
		flush := func() {
			if run == "" {
				return
			}
			if runColor != "" {
				b.WriteString(p.paint(runColor, run))
			} else {
				b.WriteString(run)
			}
			run = ""
		}
		for x, r := range row {
			if color := c.colors[y][x]; color != runColor {
				flush()
				runColor = color
			}
			run += string(r)
		}
		flush()
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

// render draws every element of cv scaled so the content width fits cols.
// Terminal cells are about twice as tall as wide, so rows use half the
// horizontal scale.
func render(w io.Writer, cv *collection.CollectionView, cols int, p painter) error {
	size, err := cv.ContentSize()
	if err != nil {
		return err
	}
	if size.Width == 0 || size.Height == 0 {
		fmt.Fprintln(w, "(empty)")
		return nil
	}
	elems, err := cv.VisibleElements(geom.RectFrom(geom.Point{}, size))
	if err != nil {
		return err
	}

	scale := size.Width / float64(cols-1)
	rows := min(int(math.Ceil(size.Height/(2*scale)))+1, maxRenderRows)
	c := newCanvas(cols, rows)
	toX := func(v float64) int { return int(math.Round(v / scale)) }
	toY := func(v float64) int { return int(math.Round(v / (2 * scale))) }

	for _, e := range elems {
		a := e.Attributes
		if a.Hidden {
			continue
		}
		f := a.Frame()
		label := ""
		if cell, ok := e.View.(*scenario.Cell); ok {
			label = cell.Text
		}
		color := ansiCyan
		switch {
		case a.IsSupplementaryView():
			color = ansiBold
		case a.IsDecorationView():
			color = ansiDim
		}
		c.box(toX(f.MinX()), toY(f.MinY()), max(toX(f.MaxX())-1, toX(f.MinX())), max(toY(f.MaxY())-1, toY(f.MinY())), label, color)
	}
	c.write(w, p)
	if rows == maxRenderRows {
		fmt.Fprintln(w, p.paint(ansiDim, "(truncated)"))
	}
	return nil
}
