package planner

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/andynu/bujo-pdf/pkg/dates"
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/events"
	"github.com/andynu/bujo-pdf/pkg/grid"
	"github.com/andynu/bujo-pdf/pkg/layout"
	"github.com/andynu/bujo-pdf/pkg/pdf"
	"github.com/andynu/bujo-pdf/pkg/render"
	"github.com/andynu/bujo-pdf/pkg/render/components"
)

// Runner generates planner documents. It is stateless except for the event
// source and logger; one Runner can serve many generations, but each
// generation owns its canvas and grid exclusively.
type Runner struct {
	Source events.Source
	Logger *log.Logger
}

// NewRunner creates a runner. A nil source means no events; a nil logger
// logs to the default logger.
func NewRunner(source events.Source, logger *log.Logger) *Runner {
	if source == nil {
		source = events.NewNullSource()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Source: source, Logger: logger}
}

// generation carries the state shared by all pages of one document.
type generation struct {
	runner  *Runner
	opts    Options
	canvas  render.Canvas
	kit     *render.Toolkit
	grid    *grid.System
	factory *layout.Factory
	logger  *log.Logger

	totalWeeks  int
	tabs        []components.Tab
	collections []collectionPlan
}

// Generate renders the full document onto canvas. The canvas must be fresh;
// pages are appended in section order.
func (r *Runner) Generate(ctx context.Context, canvas render.Canvas, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	start := time.Now()

	g, err := grid.NewForPage(opts.PageWidth, opts.PageHeight, opts.BoxSize)
	if err != nil {
		return nil, err
	}
	reg, err := components.DefaultRegistry()
	if err != nil {
		return nil, err
	}

	gen := &generation{
		runner:      r,
		opts:        opts,
		canvas:      canvas,
		kit:         render.NewToolkit(canvas, g, reg),
		grid:        g,
		factory:     layout.NewFactory(),
		logger:      logger,
		totalWeeks:  dates.TotalWeeks(opts.Year),
		collections: planCollections(opts.Collections),
	}
	gen.tabs = gen.buildTabs()

	result := &Result{TotalWeeks: gen.totalWeeks}

	if opts.wantSection(SectionCover) {
		if err := gen.renderCover(ctx); err != nil {
			return nil, err
		}
	}
	if opts.wantSection(SectionSeasonal) {
		if err := gen.renderSeasonal(ctx); err != nil {
			return nil, err
		}
	}
	if opts.wantSection(SectionWeeks) {
		for n := 1; n <= gen.totalWeeks; n++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := gen.renderWeek(ctx, n); err != nil {
				return nil, err
			}
			result.Weeks++
		}
		logger.Info("rendered weekly spreads",
			"year", opts.Year,
			"weeks", result.Weeks)
	}
	if opts.wantSection(SectionCollections) {
		if err := gen.renderCollections(ctx); err != nil {
			return nil, err
		}
	}

	if err := canvas.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "canvas error after generation")
	}

	result.Pages = canvas.PageNumber()
	result.Stats.RenderTime = time.Since(start)
	logger.Info("generated planner",
		"year", opts.Year,
		"pages", result.Pages,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// GeneratePDF renders the document and writes the PDF bytes to w.
func (r *Runner) GeneratePDF(ctx context.Context, opts Options, w io.Writer) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	canvas := pdf.New(opts.PageWidth, opts.PageHeight)
	result, err := r.Generate(ctx, canvas, opts)
	if err != nil {
		return nil, err
	}
	if err := canvas.Output(w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write document")
	}
	return result, nil
}

// beginPage starts a new page anchored at dest and rebinds the toolkit to its
// context.
func (g *generation) beginPage(dest string, ctxOpts ...render.ContextOption) (*render.Toolkit, error) {
	g.canvas.BeginPage(dest)
	ctxOpts = append(ctxOpts, render.WithTotalWeeks(g.totalWeeks))
	pageCtx, err := render.NewContext(dest, g.canvas.PageNumber(), g.opts.Year, ctxOpts...)
	if err != nil {
		return nil, err
	}
	return g.kit.ForPage(pageCtx), nil
}

// buildTabs assembles the right-rail tabs: the fixed sections first, then one
// tab per collection, as many as fit the rail.
func (g *generation) buildTabs() []components.Tab {
	tabs := []components.Tab{
		{Label: "Year", Dest: DestSeasonal},
		{Label: "Weeks", Dest: "week_1"},
	}
	max := g.grid.Rows() / components.TabHeightBoxes
	for _, c := range g.collections {
		if len(tabs) >= max {
			break
		}
		tabs = append(tabs, components.Tab{Label: c.title, Dest: c.dest(1)})
	}
	return tabs
}

// sidebar builds the standard chrome layout for a content page.
func (g *generation) sidebar(currentWeek int, highlight string) (layout.Layout, error) {
	return g.factory.Create(layout.NameSidebars, layout.Options{
		LeftWidth:   g.opts.LeftWidth,
		RightWidth:  g.opts.RightWidth,
		CurrentWeek: currentWeek,
		Tabs:        g.tabs,
		Highlight:   highlight,
	})
}

// eventsFor queries the event source for one day. Source failures degrade to
// an empty day with a warning; a broken calendar never aborts the document.
func (g *generation) eventsFor(ctx context.Context, day time.Time) []events.Event {
	evs, err := g.runner.Source.EventsForDate(ctx, day, g.opts.EventsLimit)
	if err != nil {
		g.logger.Warn("event lookup failed, rendering empty day",
			"date", day.Format("2006-01-02"),
			"err", err)
		return nil
	}
	return evs
}
