// Package render provides the drawing toolkit for planner pages.
//
// # Overview
//
// This package sits between page composition and the PDF backend. It
// provides:
//
//   - A [Canvas] interface abstracting the drawing surface
//   - An immutable per-page [Context] (destination, theme, week metadata)
//   - A verb [Registry] mapping names to drawing [Component]s
//   - A [Toolkit] bundling canvas, grid, registry, and context for one page
//
// # Drawing Model
//
// All drawing happens through named verbs. A page never calls a component
// directly; it asks the toolkit to draw a verb at a grid rectangle:
//
//	kit.Draw("dot_grid", render.Args{Col: 2, Row: 2, Width: 39, Height: 51}, nil)
//
// The registry resolves the verb, validates the rectangle against the
// grid, and invokes the component with the page context. Unknown verbs
// and out-of-grid rectangles are reported as structured errors rather
// than drawn partially.
//
// # Coordinates
//
// Verbs are expressed in grid units (column, row, width, height counted
// in boxes). The grid converts these to typographic points once, at the
// canvas boundary, so components never see page coordinates.
//
// The built-in verbs live in the [components] subpackage. The
// [rendertest] subpackage provides a recording canvas for tests.
//
// [components]: github.com/andynu/bujo-pdf/pkg/render/components
// [rendertest]: github.com/andynu/bujo-pdf/pkg/render/rendertest
package render
