package render

import "github.com/andynu/bujo-pdf/pkg/grid"

// Toolkit is the flat namespace of drawing verbs consumed by every page.
// It binds one canvas, one grid, one render context, and a validated verb
// registry; pages and layout chrome draw exclusively through it.
//
// A Toolkit is cheap to rebind: the pipeline creates one per document and
// derives a per-page view with ForPage as each page begins.
type Toolkit struct {
	canvas Canvas
	grid   *grid.System
	ctx    *Context
	reg    *Registry
}

// NewToolkit binds a canvas, grid, and registry. The context is attached
// per page with ForPage.
func NewToolkit(c Canvas, g *grid.System, reg *Registry) *Toolkit {
	return &Toolkit{canvas: c, grid: g, reg: reg}
}

// ForPage returns a toolkit view bound to the given page context.
// The canvas, grid, and registry are shared; only the context differs.
func (t *Toolkit) ForPage(ctx *Context) *Toolkit {
	return &Toolkit{canvas: t.canvas, grid: t.grid, ctx: ctx, reg: t.reg}
}

// Canvas returns the bound rendering backend.
func (t *Toolkit) Canvas() Canvas { return t.canvas }

// Grid returns the bound grid system.
func (t *Toolkit) Grid() *grid.System { return t.grid }

// Context returns the current page's render context, or nil outside a page.
func (t *Toolkit) Context() *Context { return t.ctx }

// Theme returns the active color table, falling back to the default theme
// outside a page context.
func (t *Toolkit) Theme() Theme {
	if t.ctx == nil {
		return DefaultTheme()
	}
	return t.ctx.Theme()
}

// Draw constructs and immediately renders the named verb: the flat verb-call
// convention. Configuration problems (unknown verb, invalid spans, wrong
// options type) return an error; backend failures accumulate in the canvas.
func (t *Toolkit) Draw(verb string, a Args, opts any) error {
	fn, err := t.reg.Lookup(verb)
	if err != nil {
		return err
	}
	r, err := fn(t, a, opts)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
