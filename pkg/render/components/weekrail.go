package components

import (
	"strconv"

	"github.com/andynu/bujo-pdf/pkg/dates"
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// WeekRailOptions configures the week_rail verb.
type WeekRailOptions struct {
	// CurrentWeek highlights that week's entry with the "current" style.
	// 0 means no entry is current.
	CurrentWeek int
	Extra       map[string]any
}

// WeekRail is the left-sidebar chrome: every week of the year stacked
// vertically, with month markers beside the weeks that start a month. The
// current week renders bold inside a stroked highlight box and carries no
// link; every other week renders muted and links to its week page.
type WeekRail struct {
	kit    *render.Toolkit
	a      render.Args
	year   int
	total  int
	months map[int]string
	opt    WeekRailOptions
}

// NewWeekRail is the registry constructor for the week_rail verb.
func NewWeekRail(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[WeekRailOptions](VerbWeekRail, opts)
	if err != nil {
		return nil, err
	}
	if err := requireSpan(VerbWeekRail, a); err != nil {
		return nil, err
	}
	ctx := t.Context()
	if ctx == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "week_rail needs a page context")
	}
	year := ctx.Year()
	total, ok := ctx.TotalWeeks()
	if !ok {
		total = dates.TotalWeeks(year)
	}
	if opt.CurrentWeek < 0 || opt.CurrentWeek > total {
		return nil, errors.New(errors.ErrCodeOutOfRange, "current week %d outside [0, %d]", opt.CurrentWeek, total)
	}
	return &WeekRail{
		kit:    t,
		a:      a,
		year:   year,
		total:  total,
		months: dates.WeekToMonthMap(year),
		opt:    opt,
	}, nil
}

// Render draws the rail and its separator line.
func (w *WeekRail) Render() {
	theme := w.kit.Theme()

	// Separator between the rail and the content area.
	_ = DrawVLine(w.kit, render.Args{
		Col: w.a.Col + w.a.Width, Row: w.a.Row, Height: w.a.Height,
	}, LineOptions{Color: &theme.Faint})

	// A rail narrower than two boxes has no room for the month-marker
	// column; week numbers take the full width and markers are dropped.
	labelCol, labelWidth := w.a.Col+1, w.a.Width-1
	wide := labelWidth > 0
	if !wide {
		labelCol, labelWidth = w.a.Col, w.a.Width
	}

	rowH := w.a.Height / float64(w.total)
	muted := theme.Muted

	for n := 1; n <= w.total; n++ {
		top := w.a.Row + float64(n-1)*rowH
		dest := "week_" + strconv.Itoa(n)
		current := n == w.opt.CurrentWeek

		if marker, ok := w.months[n]; ok && wide {
			_ = DrawText(w.kit, render.Args{
				Col: w.a.Col, Row: top, Width: w.a.Width, Height: rowH,
			}, marker, TextOptions{
				Size:  defaultFontSize - 3,
				Color: &muted,
			})
		}

		label := strconv.Itoa(n)
		if current {
			// Stroked highlight box behind the bold entry.
			_ = DrawBox(w.kit, render.Args{
				Col: labelCol, Row: top, Width: labelWidth, Height: rowH,
			}, BoxOptions{Fill: &theme.Highlight})
			_ = DrawText(w.kit, render.Args{
				Col: labelCol, Row: top, Width: labelWidth, Height: rowH,
			}, label, TextOptions{
				Size:  defaultFontSize - 2,
				Bold:  true,
				Align: AlignRight,
			})
			continue
		}

		_ = DrawText(w.kit, render.Args{
			Col: labelCol, Row: top, Width: labelWidth, Height: rowH,
		}, label, TextOptions{
			Size:  defaultFontSize - 2,
			Color: &muted,
			Align: AlignRight,
			Dest:  dest, // self-links are suppressed by the link helper
		})
	}
}

// DrawWeekRail constructs and immediately renders the week rail.
func DrawWeekRail(t *render.Toolkit, a render.Args, opt WeekRailOptions) error {
	r, err := NewWeekRail(t, a, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
