// Package rendertest provides a recording Canvas implementation for tests.
//
// The fake records every drawing call as an Op, letting tests assert on what
// a component painted without a PDF backend. Text is measured at a fixed
// width per rune, which keeps alignment math deterministic.
package rendertest

import (
	"github.com/andynu/bujo-pdf/pkg/grid"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// Op is one recorded canvas call.
type Op struct {
	Kind string // "page", "stroke", "fill", "dash", "cleardash", "line", "rect", "circle", "text", "link"

	// Populated depending on Kind.
	Dest   string
	Color  render.Color
	Width  float64
	Rect   grid.Rect
	Mode   render.PaintMode
	X1, Y1 float64
	X2, Y2 float64
	Radius float64
	Text   string
	Font   render.Font
	Quad   [4]float64
}

// Canvas records drawing operations. The zero value is ready to use.
type Canvas struct {
	Ops   []Op
	pages int

	// RuneWidth is the fixed width returned per rune by TextWidth.
	// Zero means 5 points per rune.
	RuneWidth float64

	// ForcedErr is returned by Err, simulating a backend failure.
	ForcedErr error
}

var _ render.Canvas = (*Canvas)(nil)

func (c *Canvas) BeginPage(dest string) {
	c.pages++
	c.Ops = append(c.Ops, Op{Kind: "page", Dest: dest})
}

func (c *Canvas) PageNumber() int { return c.pages }

func (c *Canvas) SetStroke(col render.Color, width float64) {
	c.Ops = append(c.Ops, Op{Kind: "stroke", Color: col, Width: width})
}

func (c *Canvas) SetFill(col render.Color) {
	c.Ops = append(c.Ops, Op{Kind: "fill", Color: col})
}

func (c *Canvas) SetDash(pattern []float64, phase float64) {
	c.Ops = append(c.Ops, Op{Kind: "dash"})
}

func (c *Canvas) ClearDash() {
	c.Ops = append(c.Ops, Op{Kind: "cleardash"})
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.Ops = append(c.Ops, Op{Kind: "line", X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (c *Canvas) Rect(r grid.Rect, mode render.PaintMode) {
	c.Ops = append(c.Ops, Op{Kind: "rect", Rect: r, Mode: mode})
}

func (c *Canvas) Circle(x, y, radius float64, mode render.PaintMode) {
	c.Ops = append(c.Ops, Op{Kind: "circle", X1: x, Y1: y, Radius: radius, Mode: mode})
}

func (c *Canvas) Text(x, y float64, s string, f render.Font) {
	c.Ops = append(c.Ops, Op{Kind: "text", X1: x, Y1: y, Text: s, Font: f})
}

func (c *Canvas) TextWidth(s string, f render.Font) float64 {
	w := c.RuneWidth
	if w == 0 {
		w = 5
	}
	return w * float64(len([]rune(s)))
}

func (c *Canvas) LinkRect(quad [4]float64, dest string) {
	c.Ops = append(c.Ops, Op{Kind: "link", Quad: quad, Dest: dest})
}

func (c *Canvas) Err() error { return c.ForcedErr }

// OfKind returns the recorded ops of one kind, in order.
func (c *Canvas) OfKind(kind string) []Op {
	var out []Op
	for _, op := range c.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Links returns the destinations of all recorded link ops, in order.
func (c *Canvas) Links() []string {
	var out []string
	for _, op := range c.OfKind("link") {
		out = append(out, op.Dest)
	}
	return out
}

// Texts returns the strings of all recorded text ops, in order.
func (c *Canvas) Texts() []string {
	var out []string
	for _, op := range c.OfKind("text") {
		out = append(out, op.Text)
	}
	return out
}
