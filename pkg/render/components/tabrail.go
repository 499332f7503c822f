package components

import (
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// Tab is one entry on the right-hand tab rail.
type Tab struct {
	Label string
	Dest  string // named destination the tab links to
}

// TabRailOptions configures the tab_rail verb.
type TabRailOptions struct {
	Tabs []Tab
	// Highlight forces the tab with this label into the "current" style even
	// when the page key doesn't match its destination (a section's interior
	// pages still highlight their section tab).
	Highlight string
	Extra     map[string]any
}

// TabRail is the right-sidebar chrome: one boxed tab per section, stacked
// from the top. The current section's tab is filled and unlinked; the rest
// render muted and link to their sections.
type TabRail struct {
	kit *render.Toolkit
	a   render.Args
	opt TabRailOptions
}

// TabHeightBoxes is the vertical extent of one tab. Callers sizing a rail
// divide its height by this to know how many tabs fit.
const TabHeightBoxes = 6

// NewTabRail is the registry constructor for the tab_rail verb.
func NewTabRail(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[TabRailOptions](VerbTabRail, opts)
	if err != nil {
		return nil, err
	}
	if err := requireSpan(VerbTabRail, a); err != nil {
		return nil, err
	}
	if len(opt.Tabs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "tab_rail needs at least one tab")
	}
	if need := float64(len(opt.Tabs) * TabHeightBoxes); need > a.Height {
		return nil, errors.New(errors.ErrCodeInvalidRect,
			"tab_rail: %d tabs need %v boxes, span has %v", len(opt.Tabs), need, a.Height)
	}
	return &TabRail{kit: t, a: a, opt: opt}, nil
}

// Render draws the tabs top-down.
func (tr *TabRail) Render() {
	theme := tr.kit.Theme()
	ctx := tr.kit.Context()

	// Separator between the content area and the rail.
	_ = DrawVLine(tr.kit, render.Args{
		Col: tr.a.Col, Row: tr.a.Row, Height: tr.a.Height,
	}, LineOptions{Color: &theme.Faint})

	muted := theme.Muted
	for i, tab := range tr.opt.Tabs {
		top := tr.a.Row + float64(i*TabHeightBoxes)
		args := render.Args{Col: tr.a.Col, Row: top, Width: tr.a.Width, Height: TabHeightBoxes}

		current := tab.Label == tr.opt.Highlight ||
			(ctx != nil && ctx.IsCurrentPage(tab.Dest))

		if current {
			_ = DrawBox(tr.kit, args, BoxOptions{Fill: &theme.Highlight})
			_ = DrawText(tr.kit, render.Args{
				Col: args.Col + 0.3, Row: top + 1, Width: args.Width, Height: 1,
			}, tab.Label, TextOptions{Size: defaultFontSize - 2, Bold: true})
			continue
		}

		_ = DrawBox(tr.kit, args, BoxOptions{Stroke: &theme.Faint, Dest: tab.Dest})
		_ = DrawText(tr.kit, render.Args{
			Col: args.Col + 0.3, Row: top + 1, Width: args.Width, Height: 1,
		}, tab.Label, TextOptions{Size: defaultFontSize - 2, Color: &muted})
	}
}

// DrawTabRail constructs and immediately renders the tab rail.
func DrawTabRail(t *render.Toolkit, a render.Args, opt TabRailOptions) error {
	r, err := NewTabRail(t, a, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
