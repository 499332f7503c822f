package planner

import (
	"context"

	"github.com/andynu/bujo-pdf/pkg/dates"
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/layout"
	"github.com/andynu/bujo-pdf/pkg/render"
	"github.com/andynu/bujo-pdf/pkg/render/components"
)

// seasonTitleBoxes is the label row above each season's month stack.
const seasonTitleBoxes = 1

// renderSeasonal draws the year overview: four season columns, each a stack
// of mini month calendars whose week rows link into the weekly spreads.
func (g *generation) renderSeasonal(ctx context.Context) error {
	kit, err := g.beginPage(DestSeasonal)
	if err != nil {
		return err
	}

	fp, err := g.factory.Create(layout.NameFullPage, layout.Options{Margin: 1})
	if err != nil {
		return err
	}

	return layout.Apply(kit, fp, func(kit *render.Toolkit, area layout.ContentArea) error {
		seasons := dates.Seasons()
		cols, err := g.grid.DivideColumns(area.Col, area.Width, len(seasons), 1)
		if err != nil {
			return err
		}

		for i, season := range seasons {
			span := cols[i]
			need := seasonTitleBoxes + season.HeightBoxes()
			if need > area.Height {
				return errors.New(errors.ErrCodeInvalidLayout,
					"season %s needs %d rows, content area has %d", season.Name, need, area.Height)
			}

			if err := components.DrawText(kit, render.Args{
				Col: float64(span.Start), Row: float64(area.Row), Width: float64(span.Width), Height: seasonTitleBoxes,
			}, season.Name, components.TextOptions{Bold: true, Size: 12}); err != nil {
				return err
			}

			// Months stack at a fixed stride: one calendar plus its gap.
			stride := components.MiniMonthHeightBoxes + 1
			for j, month := range season.Months {
				row := area.Row + seasonTitleBoxes + j*stride
				err := components.DrawMiniMonth(kit, render.Args{
					Col:    float64(span.Start),
					Row:    float64(row),
					Width:  float64(span.Width),
					Height: components.MiniMonthHeightBoxes,
				}, components.MiniMonthOptions{Month: month, LinkWeeks: true})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
