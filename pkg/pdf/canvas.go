// Package pdf implements the render.Canvas interface on a PDF document.
//
// The adapter owns the coordinate flip between the planner's bottom-left
// render space and the PDF library's top-left page space, and maps symbolic
// named destinations onto the library's numeric internal links. It is the only
// package that imports the PDF backend.
package pdf

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/andynu/bujo-pdf/pkg/grid"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// Canvas renders drawing calls into an in-memory PDF document. One Canvas
// serves exactly one document generation; it is not safe for concurrent use.
type Canvas struct {
	doc        *fpdf.Fpdf
	pageHeight float64
	pages      int

	// Symbolic destination -> link id. Links may be drawn before their
	// destination page exists; the id is allocated on first sight either way.
	links map[string]int
}

var _ render.Canvas = (*Canvas)(nil)

// New creates a canvas for a fixed page size in points.
func New(pageWidth, pageHeight float64) *Canvas {
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	return &Canvas{
		doc:        doc,
		pageHeight: pageHeight,
		links:      make(map[string]int),
	}
}

// flip converts a bottom-up render y into the document's top-down y.
func (c *Canvas) flip(y float64) float64 { return c.pageHeight - y }

func (c *Canvas) linkID(dest string) int {
	id, ok := c.links[dest]
	if !ok {
		id = c.doc.AddLink()
		c.links[dest] = id
	}
	return id
}

// BeginPage starts a new page and anchors dest at its top.
func (c *Canvas) BeginPage(dest string) {
	c.doc.AddPage()
	c.pages++
	if dest != "" {
		c.doc.SetLink(c.linkID(dest), 0, c.pages)
	}
}

// PageNumber returns the 1-based current page, 0 before the first BeginPage.
func (c *Canvas) PageNumber() int { return c.pages }

func (c *Canvas) SetStroke(col render.Color, width float64) {
	c.doc.SetDrawColor(int(col.R), int(col.G), int(col.B))
	c.doc.SetLineWidth(width)
}

// SetFill sets the fill color for shapes and text alike; the planner draws
// text as filled glyphs.
func (c *Canvas) SetFill(col render.Color) {
	c.doc.SetFillColor(int(col.R), int(col.G), int(col.B))
	c.doc.SetTextColor(int(col.R), int(col.G), int(col.B))
}

func (c *Canvas) SetDash(pattern []float64, phase float64) {
	c.doc.SetDashPattern(pattern, phase)
}

func (c *Canvas) ClearDash() {
	c.doc.SetDashPattern([]float64{}, 0)
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.doc.Line(x1, c.flip(y1), x2, c.flip(y2))
}

// Rect draws r, whose Y is the top edge in render space.
func (c *Canvas) Rect(r grid.Rect, mode render.PaintMode) {
	c.doc.Rect(r.X, c.flip(r.Y), r.Width, r.Height, styleStr(mode))
}

func (c *Canvas) Circle(x, y, radius float64, mode render.PaintMode) {
	c.doc.Circle(x, c.flip(y), radius, styleStr(mode))
}

// Text draws s with its baseline at (x, y) in render space.
func (c *Canvas) Text(x, y float64, s string, f render.Font) {
	c.setFont(f)
	c.doc.Text(x, c.flip(y), s)
}

// TextWidth measures s in points at the given font.
func (c *Canvas) TextWidth(s string, f render.Font) float64 {
	c.setFont(f)
	return c.doc.GetStringWidth(s)
}

// LinkRect attaches a clickable region over quad ([left, bottom, right, top]
// in render space) that jumps to the named destination.
func (c *Canvas) LinkRect(quad [4]float64, dest string) {
	left, bottom, right, top := quad[0], quad[1], quad[2], quad[3]
	c.doc.Link(left, c.flip(top), right-left, top-bottom, c.linkID(dest))
}

// Err reports the document's sticky error, if any. The PDF library latches the
// first failure and turns later calls into no-ops; callers check once at the
// end of a generation.
func (c *Canvas) Err() error {
	if c.doc.Err() {
		return c.doc.Error()
	}
	return nil
}

// Output writes the finished document. The canvas must not be used afterward.
func (c *Canvas) Output(w io.Writer) error {
	return c.doc.Output(w)
}

// OutputFile writes the finished document to path.
func (c *Canvas) OutputFile(path string) error {
	return c.doc.OutputFileAndClose(path)
}

func (c *Canvas) setFont(f render.Font) {
	style := ""
	if f.Bold {
		style = "B"
	}
	c.doc.SetFont(f.Family, style, f.Size)
}

func styleStr(mode render.PaintMode) string {
	switch mode {
	case render.Fill:
		return "F"
	case render.FillStroke:
		return "FD"
	default:
		return "D"
	}
}
