package components

import (
	"github.com/andynu/bujo-pdf/pkg/grid"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// BoxOptions configures the box verb.
type BoxOptions struct {
	StrokeWidth float64       // 0 selects the default hairline
	Stroke      *render.Color // nil selects the theme ink
	Fill        *render.Color // nil means stroke only
	Dest        string        // non-empty makes the box a clickable link
	Extra       map[string]any
}

// Box strokes (and optionally fills) a grid-aligned rectangle.
type Box struct {
	kit  *render.Toolkit
	rect grid.Rect
	quad [4]float64
	opt  BoxOptions
}

// NewBox is the registry constructor for the box verb.
func NewBox(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[BoxOptions](VerbBox, opts)
	if err != nil {
		return nil, err
	}
	if err := requireSpan(VerbBox, a); err != nil {
		return nil, err
	}
	return &Box{
		kit:  t,
		rect: t.Grid().Rect(a.Col, a.Row, a.Width, a.Height),
		quad: t.Grid().LinkRect(a.Col, a.Row, a.Width, a.Height),
		opt:  opt,
	}, nil
}

// Render paints the box on the canvas.
func (b *Box) Render() {
	c := b.kit.Canvas()
	theme := b.kit.Theme()

	width := b.opt.StrokeWidth
	if width == 0 {
		width = defaultStrokeWidth
	}
	c.SetStroke(colorOr(b.opt.Stroke, theme.Ink), width)

	mode := render.Stroke
	if b.opt.Fill != nil {
		c.SetFill(*b.opt.Fill)
		mode = render.FillStroke
	}
	c.Rect(b.rect, mode)

	addLink(b.kit, b.quad, b.opt.Dest)
}

// DrawBox constructs and immediately renders a box: the flat verb form.
func DrawBox(t *render.Toolkit, a render.Args, opt BoxOptions) error {
	r, err := NewBox(t, a, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
