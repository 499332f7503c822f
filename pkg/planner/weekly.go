package planner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/andynu/bujo-pdf/pkg/dates"
	"github.com/andynu/bujo-pdf/pkg/layout"
	"github.com/andynu/bujo-pdf/pkg/render"
	"github.com/andynu/bujo-pdf/pkg/render/components"
)

// weekDest names a weekly spread's page.
func weekDest(n int) string { return "week_" + strconv.Itoa(n) }

// renderWeek draws one weekly spread: a header with the date range, then one
// fieldset per day with that day's calendar events.
func (g *generation) renderWeek(ctx context.Context, n int) error {
	wk, err := dates.Week(g.opts.Year, n)
	if err != nil {
		return err
	}

	kit, err := g.beginPage(weekDest(n), render.WithWeek(n))
	if err != nil {
		return err
	}

	sb, err := g.sidebar(n, "")
	if err != nil {
		return err
	}

	return layout.Apply(kit, sb, func(kit *render.Toolkit, area layout.ContentArea) error {
		a := area.Args()

		if err := components.DrawText(kit, render.Args{
			Col: a.Col + 0.5, Row: a.Row, Width: a.Width - 1, Height: 2,
		}, fmt.Sprintf("Week %d", n), components.TextOptions{Size: 16, Bold: true}); err != nil {
			return err
		}

		span := wk.StartDate.Format("Jan 2") + " - " + wk.EndDate.Format("Jan 2")
		muted := kit.Theme().Muted
		if err := components.DrawText(kit, render.Args{
			Col: a.Col + 0.5, Row: a.Row + 0.5, Width: a.Width - 1, Height: 1,
		}, span, components.TextOptions{Size: 10, Color: &muted, Align: components.AlignRight}); err != nil {
			return err
		}

		if err := components.DrawHLine(kit, render.Args{
			Col: a.Col, Row: a.Row + 2, Width: a.Width,
		}, components.LineOptions{}); err != nil {
			return err
		}

		// Usually seven rows; the terminal week of a Sunday-starting leap
		// year carries an eighth day.
		days := wk.Days()
		rows, err := g.grid.DivideRows(area.Row+2, area.Height-2, len(days), 0)
		if err != nil {
			return err
		}
		for i, day := range days {
			if err := g.renderDay(ctx, kit, day, render.Args{
				Col:    a.Col,
				Row:    float64(rows[i].Start),
				Width:  a.Width,
				Height: float64(rows[i].Width),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// renderDay draws one day cell: a labeled fieldset with the day's events
// listed inside.
func (g *generation) renderDay(ctx context.Context, kit *render.Toolkit, day time.Time, a render.Args) error {
	if err := components.DrawFieldset(kit, a, components.FieldsetOptions{
		Label: day.Format("Monday 2"),
	}); err != nil {
		return err
	}

	for i, ev := range g.eventsFor(ctx, day) {
		row := a.Row + 1.5 + float64(i)
		if row+1 > a.Row+a.Height {
			break
		}
		label := ev.Label
		if ev.Icon != "" {
			label = ev.Icon + " " + label
		}
		if err := components.DrawText(kit, render.Args{
			Col: a.Col + 1, Row: row, Width: a.Width - 2, Height: 1,
		}, label, components.TextOptions{
			Size:  8,
			Color: hexColor(ev.Color),
		}); err != nil {
			return err
		}
	}
	return nil
}

// hexColor parses a "#rrggbb" string. Anything else selects the theme ink.
func hexColor(s string) *render.Color {
	if len(s) != 7 || s[0] != '#' {
		return nil
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil
	}
	return &render.Color{R: r, G: g, B: b}
}
