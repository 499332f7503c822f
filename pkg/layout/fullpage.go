package layout

import (
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// FullPage gives the page the whole grid minus a uniform margin. It draws no
// chrome of its own.
type FullPage struct {
	Margin int // boxes on each edge
}

// NewFullPage creates a full-page layout with the given margin in boxes.
func NewFullPage(margin int) (*FullPage, error) {
	if margin < 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "full_page margin must be non-negative, got %d", margin)
	}
	return &FullPage{Margin: margin}, nil
}

// RenderBefore computes the content area inside the margin.
func (f *FullPage) RenderBefore(kit *render.Toolkit) (ContentArea, error) {
	g := kit.Grid()
	cols, rows := g.Columns(), g.Rows()
	if 2*f.Margin >= cols || 2*f.Margin >= rows {
		return ContentArea{}, errors.New(errors.ErrCodeInvalidLayout,
			"full_page margin %d leaves no content on a %dx%d grid", f.Margin, cols, rows)
	}
	return ContentArea{
		Col:    f.Margin,
		Row:    f.Margin,
		Width:  cols - 2*f.Margin,
		Height: rows - 2*f.Margin,
	}, nil
}

// RenderAfter is a no-op.
func (f *FullPage) RenderAfter(kit *render.Toolkit) error { return nil }
