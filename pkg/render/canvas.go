// Package render defines the drawing abstraction for planner pages: the
// backend Canvas interface, the per-page RenderContext, and the verb registry
// that aggregates drawing components into one namespace.
//
// # Architecture
//
// Pages never talk to a PDF library directly. They draw through named "verbs"
// (box, hline, text, ...) that take grid coordinates and a typed options
// struct. Verbs are registered once at composition time in a Registry, which
// rejects duplicate names, and are invoked through a Toolkit bound to one
// canvas, grid, and render context.
//
// # Error model
//
// Drawing is a pure side effect. Configuration mistakes (unknown verb, bad
// spans, wrong options type) surface as errors at construction; backend
// failures accumulate in the canvas and are reported once per document via
// Canvas.Err, mirroring how PDF backends track a sticky error.
package render

import "github.com/andynu/bujo-pdf/pkg/grid"

// Color is an opaque RGB color in backend color space.
type Color struct {
	R, G, B uint8
}

// PaintMode selects how a closed shape is painted.
type PaintMode int

const (
	// Stroke draws the outline only.
	Stroke PaintMode = iota
	// Fill paints the interior only.
	Fill
	// FillStroke paints the interior and draws the outline.
	FillStroke
)

// Font selects a backend font face. The planner uses a single family with
// regular and bold weights; text shaping and embedding are backend concerns.
type Font struct {
	Family string  // backend family name, e.g. "Helvetica"
	Size   float64 // size in points
	Bold   bool
}

// Canvas is the rendering backend consumed by all verbs. Coordinates are in
// points with the origin at the bottom-left and y increasing upward; the
// backend adapter owns any conversion to its native space.
//
// A canvas is mutable shared state scoped to exactly one in-flight document
// generation. It must never be touched by more than one logical page render
// at a time; concurrent generations need independent canvases.
type Canvas interface {
	// BeginPage starts a new page and registers dest as a named destination
	// for internal links targeting this page.
	BeginPage(dest string)

	// PageNumber returns the 1-based number of the current page,
	// or 0 before the first BeginPage.
	PageNumber() int

	// SetStroke sets the stroke color and line width for subsequent drawing.
	SetStroke(c Color, width float64)

	// SetFill sets the fill color for subsequent drawing.
	SetFill(c Color)

	// SetDash sets a dash pattern in points. An empty pattern is a no-op;
	// use ClearDash to return to solid lines.
	SetDash(pattern []float64, phase float64)

	// ClearDash returns to solid lines.
	ClearDash()

	// Line draws a line segment between two points.
	Line(x1, y1, x2, y2 float64)

	// Rect paints a rectangle. r.Y is the top edge in bottom-up space.
	Rect(r grid.Rect, mode PaintMode)

	// Circle paints a circle centered at (x, y).
	Circle(x, y, radius float64, mode PaintMode)

	// Text draws s with its baseline at (x, y) in the given font and the
	// current fill color.
	Text(x, y float64, s string, f Font)

	// TextWidth measures s in the given font.
	TextWidth(s string, f Font) float64

	// LinkRect adds a clickable region, quad = [left, bottom, right, top],
	// jumping to the named destination dest.
	LinkRect(quad [4]float64, dest string)

	// Err returns the first backend error encountered, if any. Once non-nil,
	// further drawing calls are no-ops in well-behaved backends.
	Err() error
}
