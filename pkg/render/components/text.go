package components

import (
	"github.com/andynu/bujo-pdf/pkg/render"
)

// Align positions text horizontally within its cell span.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextOptions configures the text verb.
type TextOptions struct {
	Size  float64 // 0 selects the default size
	Bold  bool
	Color *render.Color // nil selects the theme ink
	Align Align

	// OffsetX and OffsetY are point-space overrides for callers needing
	// sub-grid precision; they nudge the final position after grid
	// conversion.
	OffsetX float64
	OffsetY float64

	Dest  string // non-empty makes the text span a clickable link
	Extra map[string]any
}

// Text draws a single line of text inside a cell span.
type Text struct {
	kit  *render.Toolkit
	a    render.Args
	s    string
	opt  TextOptions
	quad [4]float64
}

// NewText is the registry constructor for the text verb. The string to draw
// is passed via TextOptions.Extra["s"] when invoked through the registry;
// prefer the DrawText helper which takes it directly.
func NewText(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[TextOptions](VerbText, opts)
	if err != nil {
		return nil, err
	}
	s, _ := opt.Extra["s"].(string)
	return newText(t, a, s, opt)
}

func newText(t *render.Toolkit, a render.Args, s string, opt TextOptions) (render.Renderer, error) {
	if err := requireSpan(VerbText, a); err != nil {
		return nil, err
	}
	return &Text{
		kit:  t,
		a:    a,
		s:    s,
		opt:  opt,
		quad: t.Grid().LinkRect(a.Col, a.Row, a.Width, a.Height),
	}, nil
}

// Render draws the text with its baseline one font-size below the cell top.
func (x *Text) Render() {
	if x.s == "" {
		return
	}
	c := x.kit.Canvas()
	g := x.kit.Grid()

	f := font(x.opt.Size, x.opt.Bold)
	c.SetFill(colorOr(x.opt.Color, x.kit.Theme().Ink))

	px := g.X(x.a.Col)
	switch x.opt.Align {
	case AlignCenter:
		px += (g.Width(x.a.Width) - c.TextWidth(x.s, f)) / 2
	case AlignRight:
		px += g.Width(x.a.Width) - c.TextWidth(x.s, f)
	}
	py := g.Y(x.a.Row) - f.Size

	c.Text(px+x.opt.OffsetX, py+x.opt.OffsetY, x.s, f)
	addLink(x.kit, x.quad, x.opt.Dest)
}

// DrawText constructs and immediately renders a line of text.
func DrawText(t *render.Toolkit, a render.Args, s string, opt TextOptions) error {
	r, err := newText(t, a, s, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
