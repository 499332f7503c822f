// Package grid implements the logical coordinate system for planner pages.
//
// All page content is positioned in "grid boxes": uniform squares of roughly
// 5mm that tile the page. Pages address content by (column, row) with row 0 at
// the top of the page, while the rendering backend uses points with the origin
// at the bottom-left. The System type is the single place where that Y-flip
// happens; nothing else in the codebase converts between the two spaces.
//
// A System is immutable: one instance is created at the start of a document
// generation and read for every page. Concurrent generations must each own
// their own System (and canvas).
package grid

import (
	"fmt"
	"math"

	"github.com/andynu/bujo-pdf/pkg/errors"
)

// System converts logical grid coordinates to backend render coordinates.
//
// Invariant: PageWidth and PageHeight each differ from Columns*BoxSize and
// Rows*BoxSize by less than one box. The grid never tiles the page exactly
// (Letter at a 5mm box leaves a sub-box strip on each edge); the slack stays
// at the right and bottom edges.
type System struct {
	columns    int
	rows       int
	boxSize    float64
	pageWidth  float64
	pageHeight float64
}

// New creates a grid whose page dimensions are derived exactly from the box
// count, so Columns*BoxSize == PageWidth with no slack.
func New(columns, rows int, boxSize float64) (*System, error) {
	if columns <= 0 || rows <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "grid must have positive dimensions, got %dx%d", columns, rows)
	}
	if boxSize <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "box size must be positive, got %v", boxSize)
	}
	return &System{
		columns:    columns,
		rows:       rows,
		boxSize:    boxSize,
		pageWidth:  float64(columns) * boxSize,
		pageHeight: float64(rows) * boxSize,
	}, nil
}

// NewForPage creates a grid for a fixed page size, deriving the box count by
// flooring. The page dimensions are kept as given, so Y(0) is exactly the page
// top even when the grid does not tile the page evenly.
func NewForPage(pageWidth, pageHeight, boxSize float64) (*System, error) {
	if pageWidth <= 0 || pageHeight <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "page must have positive dimensions, got %vx%v", pageWidth, pageHeight)
	}
	if boxSize <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "box size must be positive, got %v", boxSize)
	}
	columns := int(math.Floor(pageWidth / boxSize))
	rows := int(math.Floor(pageHeight / boxSize))
	if columns == 0 || rows == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "box size %v too large for %vx%v page", boxSize, pageWidth, pageHeight)
	}
	return &System{
		columns:    columns,
		rows:       rows,
		boxSize:    boxSize,
		pageWidth:  pageWidth,
		pageHeight: pageHeight,
	}, nil
}

// Columns returns the number of grid columns.
func (s *System) Columns() int { return s.columns }

// Rows returns the number of grid rows.
func (s *System) Rows() int { return s.rows }

// BoxSize returns the side length of one grid box in points.
func (s *System) BoxSize() float64 { return s.boxSize }

// PageWidth returns the page width in points.
func (s *System) PageWidth() float64 { return s.pageWidth }

// PageHeight returns the page height in points.
func (s *System) PageHeight() float64 { return s.pageHeight }

// X converts a column index to a render-space x coordinate.
// Fractional columns are allowed for sub-grid positioning.
func (s *System) X(col float64) float64 {
	return col * s.boxSize
}

// Y converts a top-down row index to a bottom-up render-space y coordinate.
// Y(0) is the page top; Y(Rows()) approaches the page bottom.
func (s *System) Y(row float64) float64 {
	return s.pageHeight - row*s.boxSize
}

// Width converts a box count to a render-space width.
// A non-positive count is a caller bug and panics.
func (s *System) Width(boxes float64) float64 {
	if boxes <= 0 {
		panic(fmt.Sprintf("grid: width must be positive, got %v", boxes))
	}
	return boxes * s.boxSize
}

// Height converts a box count to a render-space height.
// A non-positive count is a caller bug and panics.
func (s *System) Height(boxes float64) float64 {
	if boxes <= 0 {
		panic(fmt.Sprintf("grid: height must be positive, got %v", boxes))
	}
	return boxes * s.boxSize
}

// Rect converts a grid cell to a render-space rectangle. The returned Y is the
// TOP edge of the cell in bottom-up space; the bottom edge is Y-Height.
// Negative positions or non-positive spans are caller bugs and panic.
func (s *System) Rect(col, row, w, h float64) Rect {
	if col < 0 || row < 0 {
		panic(fmt.Sprintf("grid: cell position must be non-negative, got (%v, %v)", col, row))
	}
	return Rect{
		X:      s.X(col),
		Y:      s.Y(row),
		Width:  s.Width(w),
		Height: s.Height(h),
	}
}

// LinkRect converts a grid cell to the [left, bottom, right, top] quad used by
// clickable-region annotations.
func (s *System) LinkRect(col, row, w, h float64) [4]float64 {
	r := s.Rect(col, row, w, h)
	return [4]float64{r.X, r.Y - r.Height, r.X + r.Width, r.Y}
}

// Span is one partition produced by DivideColumns or DivideRows,
// in grid-box units.
type Span struct {
	Start int // first column (or row) of the partition
	Width int // size in boxes
}

// DivideColumns splits a horizontal span of width boxes starting at col into
// count partitions separated by gap boxes.
//
// When the usable width is not evenly divisible, every partition gets the
// floor share and the LAST partition absorbs the remainder. This keeps
// partition starts aligned at fixed strides, which matters for columns that
// must line up across pages.
func (s *System) DivideColumns(col, width, count, gap int) ([]Span, error) {
	return divide("columns", col, width, count, gap)
}

// DivideRows splits a vertical span of height boxes starting at row into
// count partitions separated by gap boxes. Same remainder policy as
// DivideColumns.
func (s *System) DivideRows(row, height, count, gap int) ([]Span, error) {
	return divide("rows", row, height, count, gap)
}

func divide(what string, start, span, count, gap int) ([]Span, error) {
	if count < 1 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "divide %s: count must be at least 1, got %d", what, count)
	}
	if gap < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "divide %s: gap must be non-negative, got %d", what, gap)
	}
	usable := span - gap*(count-1)
	if usable < count {
		return nil, errors.New(errors.ErrCodeInvalidGrid,
			"divide %s: span %d too small for %d partitions with gap %d", what, span, count, gap)
	}

	base := usable / count
	rem := usable % count

	spans := make([]Span, count)
	pos := start
	for i := range spans {
		w := base
		if i == count-1 {
			w += rem
		}
		spans[i] = Span{Start: pos, Width: w}
		pos += w + gap
	}
	return spans, nil
}
