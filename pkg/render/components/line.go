package components

import (
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// LineOptions configures the hline and vline verbs.
type LineOptions struct {
	StrokeWidth float64       // 0 selects the default hairline
	Color       *render.Color // nil selects the theme ink
	Dashed      bool          // 1pt-on 2pt-off dashes
	Extra       map[string]any
}

// line is the shared renderer behind hline and vline.
type line struct {
	kit            *render.Toolkit
	x1, y1, x2, y2 float64
	opt            LineOptions
}

// NewHLine is the registry constructor for the hline verb: a horizontal rule
// from (col, row) spanning Width boxes. Height is ignored.
func NewHLine(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[LineOptions](VerbHLine, opts)
	if err != nil {
		return nil, err
	}
	if a.Width <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidRect, "hline needs a positive width, got %v", a.Width)
	}
	g := t.Grid()
	y := g.Y(a.Row)
	return &line{
		kit: t,
		x1:  g.X(a.Col), y1: y,
		x2: g.X(a.Col) + g.Width(a.Width), y2: y,
		opt: opt,
	}, nil
}

// NewVLine is the registry constructor for the vline verb: a vertical rule
// from (col, row) spanning Height boxes downward. Width is ignored.
func NewVLine(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[LineOptions](VerbVLine, opts)
	if err != nil {
		return nil, err
	}
	if a.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidRect, "vline needs a positive height, got %v", a.Height)
	}
	g := t.Grid()
	x := g.X(a.Col)
	return &line{
		kit: t,
		x1:  x, y1: g.Y(a.Row),
		x2: x, y2: g.Y(a.Row) - g.Height(a.Height),
		opt: opt,
	}, nil
}

// Render draws the line segment.
func (l *line) Render() {
	c := l.kit.Canvas()
	width := l.opt.StrokeWidth
	if width == 0 {
		width = defaultStrokeWidth
	}
	c.SetStroke(colorOr(l.opt.Color, l.kit.Theme().Ink), width)
	if l.opt.Dashed {
		c.SetDash([]float64{1, 2}, 0)
		defer c.ClearDash()
	}
	c.Line(l.x1, l.y1, l.x2, l.y2)
}

// DrawHLine constructs and immediately renders a horizontal rule.
func DrawHLine(t *render.Toolkit, a render.Args, opt LineOptions) error {
	r, err := NewHLine(t, a, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}

// DrawVLine constructs and immediately renders a vertical rule.
func DrawVLine(t *render.Toolkit, a render.Args, opt LineOptions) error {
	r, err := NewVLine(t, a, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
