package planner

import (
	"context"
	"strconv"

	"github.com/andynu/bujo-pdf/pkg/layout"
	"github.com/andynu/bujo-pdf/pkg/render"
	"github.com/andynu/bujo-pdf/pkg/render/components"
)

// renderCover draws the title page: the year over a dot-grid field, with a
// link line down to the seasonal overview.
func (g *generation) renderCover(ctx context.Context) error {
	kit, err := g.beginPage(DestCover)
	if err != nil {
		return err
	}

	fp, err := g.factory.Create(layout.NameFullPage, layout.Options{Margin: 2})
	if err != nil {
		return err
	}

	return layout.Apply(kit, fp, func(kit *render.Toolkit, area layout.ContentArea) error {
		a := area.Args()
		if err := components.DrawDotGrid(kit, a, components.DotGridOptions{}); err != nil {
			return err
		}

		titleRow := a.Row + a.Height/3
		if err := components.DrawText(kit, render.Args{
			Col: a.Col, Row: titleRow, Width: a.Width, Height: 4,
		}, strconv.Itoa(g.opts.Year), components.TextOptions{
			Size:  56,
			Bold:  true,
			Align: components.AlignCenter,
		}); err != nil {
			return err
		}

		if err := components.DrawHLine(kit, render.Args{
			Col: a.Col + a.Width/4, Row: titleRow + 5, Width: a.Width / 2,
		}, components.LineOptions{}); err != nil {
			return err
		}

		muted := kit.Theme().Muted
		return components.DrawText(kit, render.Args{
			Col: a.Col, Row: titleRow + 6, Width: a.Width, Height: 2,
		}, "Open the year", components.TextOptions{
			Size:  11,
			Align: components.AlignCenter,
			Color: &muted,
			Dest:  DestSeasonal,
		})
	})
}
