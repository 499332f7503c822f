package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/andynu/bujo-pdf/pkg/config"
	"github.com/andynu/bujo-pdf/pkg/layout"
	"github.com/andynu/bujo-pdf/pkg/render"
	"github.com/andynu/bujo-pdf/pkg/render/components"
)

// collectionPlan is one configured collection with its generated identity.
// The id goes into the named destinations, so regenerating a planner gives
// collections fresh destinations while the fixed sections keep stable ones.
type collectionPlan struct {
	id    string
	title string
	pages int
	style string
}

// planCollections assigns ids and fills in per-collection defaults.
func planCollections(cfgs []config.Collection) []collectionPlan {
	plans := make([]collectionPlan, 0, len(cfgs))
	for _, c := range cfgs {
		pages := c.Pages
		if pages == 0 {
			pages = 1
		}
		style := c.Style
		if style == "" {
			style = components.VerbRuledLines
		}
		plans = append(plans, collectionPlan{
			id:    uuid.NewString(),
			title: c.Title,
			pages: pages,
			style: style,
		})
	}
	return plans
}

// dest names one page of the collection. The first page carries the bare
// collection destination that tabs link to.
func (c collectionPlan) dest(page int) string {
	if page <= 1 {
		return "collection_" + c.id
	}
	return fmt.Sprintf("collection_%s_p%d", c.id, page)
}

// renderCollections draws every configured collection after the weekly
// spreads. Multi-page collections render as a page set with "N of M" labels.
func (g *generation) renderCollections(ctx context.Context) error {
	for _, plan := range g.collections {
		for p := 1; p <= plan.pages; p++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.renderCollectionPage(plan, p); err != nil {
				return err
			}
		}
		g.runner.Logger.Debug("rendered collection",
			"title", plan.title,
			"pages", plan.pages)
	}
	return nil
}

func (g *generation) renderCollectionPage(plan collectionPlan, page int) error {
	kit, err := g.beginPage(plan.dest(page), render.WithPageSet(page, plan.pages, plan.title))
	if err != nil {
		return err
	}

	sb, err := g.sidebar(0, plan.title)
	if err != nil {
		return err
	}

	return layout.Apply(kit, sb, func(kit *render.Toolkit, area layout.ContentArea) error {
		a := area.Args()

		label := plan.title
		if plan.pages > 1 {
			label = fmt.Sprintf("%s (%d of %d)", plan.title, page, plan.pages)
		}
		if err := components.DrawFieldset(kit, a, components.FieldsetOptions{Label: label}); err != nil {
			return err
		}

		// Fill the interior through the verb registry; the style name comes
		// straight from configuration.
		return kit.Draw(plan.style, render.Args{
			Col:    a.Col + 1,
			Row:    a.Row + 2,
			Width:  a.Width - 2,
			Height: a.Height - 3,
		}, nil)
	})
}
