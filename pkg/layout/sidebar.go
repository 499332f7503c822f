package layout

import (
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/render"
	"github.com/andynu/bujo-pdf/pkg/render/components"
)

// Standard sidebar widths in boxes.
const (
	DefaultLeftWidth  = 3
	DefaultRightWidth = 1
)

// Sidebar is the standard planner chrome: a week rail down the left edge, a
// tab rail down the right edge, and the content area in between. Either rail
// can be disabled by giving it zero width.
//
// The width invariant is exact: Left + Right + ContentArea.Width == columns.
type Sidebar struct {
	Left  int // week rail width in boxes; 0 disables the rail
	Right int // tab rail width in boxes; 0 disables the rail

	// CurrentWeek highlights that entry on the week rail. 0 highlights none.
	CurrentWeek int
	// Tabs fills the right rail. Empty with Right > 0 leaves the rail blank
	// but still reserves its columns, so facing pages keep aligned content.
	Tabs []components.Tab
	// Highlight forces the tab with this label into the current style.
	Highlight string
}

// NewSidebar creates the standard sidebar layout. Width validation against
// the grid happens in RenderBefore, where the grid is known.
func NewSidebar(left, right int) (*Sidebar, error) {
	if left < 0 || right < 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"sidebar widths must be non-negative, got left=%d right=%d", left, right)
	}
	return &Sidebar{Left: left, Right: right}, nil
}

// RenderBefore draws both rails and returns the remaining content area.
func (s *Sidebar) RenderBefore(kit *render.Toolkit) (ContentArea, error) {
	g := kit.Grid()
	cols, rows := g.Columns(), g.Rows()
	if s.Left+s.Right >= cols {
		return ContentArea{}, errors.New(errors.ErrCodeInvalidLayout,
			"sidebar widths %d+%d leave no content on a %d-column grid", s.Left, s.Right, cols)
	}

	if s.Left > 0 {
		err := components.DrawWeekRail(kit, render.Args{
			Col: 0, Row: 0, Width: float64(s.Left), Height: float64(rows),
		}, components.WeekRailOptions{CurrentWeek: s.CurrentWeek})
		if err != nil {
			return ContentArea{}, err
		}
	}

	if s.Right > 0 && len(s.Tabs) > 0 {
		err := components.DrawTabRail(kit, render.Args{
			Col: float64(cols - s.Right), Row: 0, Width: float64(s.Right), Height: float64(rows),
		}, components.TabRailOptions{Tabs: s.Tabs, Highlight: s.Highlight})
		if err != nil {
			return ContentArea{}, err
		}
	}

	return ContentArea{
		Col:    s.Left,
		Row:    0,
		Width:  cols - s.Left - s.Right,
		Height: rows,
	}, nil
}

// RenderAfter is a no-op.
func (s *Sidebar) RenderAfter(kit *render.Toolkit) error { return nil }
