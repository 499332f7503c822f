package components

import (
	"strconv"
	"time"

	"github.com/andynu/bujo-pdf/pkg/dates"
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// MiniMonthOptions configures the mini_month verb.
type MiniMonthOptions struct {
	Month time.Month
	// Year overrides the render context's year. 0 uses the context.
	Year int
	// LinkWeeks makes each week row a clickable link to its week page.
	LinkWeeks bool
	Extra     map[string]any
}

// MiniMonth renders a compact month calendar: a label row, a weekday header
// row, and up to six Monday-first week rows of day numbers. It is exactly
// eight boxes tall, the unit the seasonal overview's height formula counts in.
type MiniMonth struct {
	kit  *render.Toolkit
	a    render.Args
	year int
	opt  MiniMonthOptions
}

// MiniMonthHeightBoxes is the component's fixed height in boxes.
const MiniMonthHeightBoxes = 8

// NewMiniMonth is the registry constructor for the mini_month verb.
func NewMiniMonth(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[MiniMonthOptions](VerbMiniMonth, opts)
	if err != nil {
		return nil, err
	}
	if err := requireSpan(VerbMiniMonth, a); err != nil {
		return nil, err
	}
	if a.Width < 7 || a.Height < MiniMonthHeightBoxes {
		return nil, errors.New(errors.ErrCodeInvalidRect,
			"mini_month needs at least a 7x%d span, got %vx%v", MiniMonthHeightBoxes, a.Width, a.Height)
	}
	if opt.Month < time.January || opt.Month > time.December {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "mini_month needs a month, got %d", opt.Month)
	}
	year := opt.Year
	if year == 0 {
		if ctx := t.Context(); ctx != nil {
			year = ctx.Year()
		}
	}
	if year == 0 {
		return nil, errors.New(errors.ErrCodeInvalidYear, "mini_month needs a year")
	}
	return &MiniMonth{kit: t, a: a, year: year, opt: opt}, nil
}

var weekdayHeader = []string{"M", "T", "W", "T", "F", "S", "S"}

// Render draws the month grid.
func (m *MiniMonth) Render() {
	theme := m.kit.Theme()
	cellW := m.a.Width / 7

	// Label row.
	_ = DrawText(m.kit, render.Args{
		Col: m.a.Col, Row: m.a.Row, Width: m.a.Width, Height: 1,
	}, m.opt.Month.String(), TextOptions{Bold: true, Size: defaultFontSize - 1})

	// Weekday header row.
	header := theme.Muted
	for i, d := range weekdayHeader {
		_ = DrawText(m.kit, render.Args{
			Col: m.a.Col + float64(i)*cellW, Row: m.a.Row + 1, Width: cellW, Height: 1,
		}, d, TextOptions{Size: defaultFontSize - 3, Color: &header, Align: AlignCenter})
	}

	first := time.Date(m.year, m.opt.Month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7 // Monday-first column of day 1

	day := 1
	for week := 0; week < 6 && day <= daysIn; week++ {
		rowTop := m.a.Row + 2 + float64(week)

		if m.opt.LinkWeeks {
			date := time.Date(m.year, m.opt.Month, day, 0, 0, 0, 0, time.UTC)
			dest := "week_" + strconv.Itoa(dates.WeekNumber(date))
			addLink(m.kit, m.kit.Grid().LinkRect(m.a.Col, rowTop, m.a.Width, 1), dest)
		}

		start := 0
		if week == 0 {
			start = offset
		}
		for col := start; col < 7 && day <= daysIn; col++ {
			_ = DrawText(m.kit, render.Args{
				Col: m.a.Col + float64(col)*cellW, Row: rowTop, Width: cellW, Height: 1,
			}, strconv.Itoa(day), TextOptions{
				Size:  defaultFontSize - 3,
				Align: AlignRight,
			})
			day++
		}
	}
}

// DrawMiniMonth constructs and immediately renders a mini month.
func DrawMiniMonth(t *render.Toolkit, a render.Args, opt MiniMonthOptions) error {
	r, err := NewMiniMonth(t, a, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
