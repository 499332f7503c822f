package components

import (
	"github.com/andynu/bujo-pdf/pkg/render"
)

// DotGridOptions configures the dot_grid verb.
type DotGridOptions struct {
	Color  *render.Color // nil selects the theme faint color
	Radius float64       // 0 selects the default dot radius
	Extra  map[string]any
}

// DotGrid fills a cell span with dots at every box intersection, the
// bullet-journal background texture.
type DotGrid struct {
	kit *render.Toolkit
	a   render.Args
	opt DotGridOptions
}

// NewDotGrid is the registry constructor for the dot_grid verb.
func NewDotGrid(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[DotGridOptions](VerbDotGrid, opts)
	if err != nil {
		return nil, err
	}
	if err := requireSpan(VerbDotGrid, a); err != nil {
		return nil, err
	}
	return &DotGrid{kit: t, a: a, opt: opt}, nil
}

// Render paints the dots, inclusive of both edges of the span.
func (d *DotGrid) Render() {
	c := d.kit.Canvas()
	g := d.kit.Grid()

	radius := d.opt.Radius
	if radius == 0 {
		radius = dotRadius
	}
	c.SetFill(colorOr(d.opt.Color, d.kit.Theme().Faint))

	cols := int(d.a.Width)
	rows := int(d.a.Height)
	for i := 0; i <= cols; i++ {
		for j := 0; j <= rows; j++ {
			c.Circle(g.X(d.a.Col+float64(i)), g.Y(d.a.Row+float64(j)), radius, render.Fill)
		}
	}
}

// DrawDotGrid constructs and immediately renders a dot grid.
func DrawDotGrid(t *render.Toolkit, a render.Args, opt DotGridOptions) error {
	r, err := NewDotGrid(t, a, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
