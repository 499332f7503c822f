package components

import (
	"github.com/andynu/bujo-pdf/pkg/render"
)

// RuledLinesOptions configures the ruled_lines verb.
type RuledLinesOptions struct {
	// Spacing is the distance between rules in boxes. 0 selects 2.
	Spacing int
	Color   *render.Color // nil selects the theme faint color
	// Dots layers the dot_grid verb over the rules. Defaults to true;
	// set NoDots to suppress.
	NoDots bool
	Extra  map[string]any
}

// RuledLines fills a cell span with horizontal writing rules and, by default,
// layers the dot grid back over them so both textures remain visible. The
// layering goes through the toolkit's verb namespace, not a type hierarchy.
type RuledLines struct {
	kit *render.Toolkit
	a   render.Args
	opt RuledLinesOptions
}

// NewRuledLines is the registry constructor for the ruled_lines verb.
func NewRuledLines(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[RuledLinesOptions](VerbRuledLines, opts)
	if err != nil {
		return nil, err
	}
	if err := requireSpan(VerbRuledLines, a); err != nil {
		return nil, err
	}
	return &RuledLines{kit: t, a: a, opt: opt}, nil
}

// Render draws the rules bottom edge included, then the dot layer.
func (r *RuledLines) Render() {
	spacing := r.opt.Spacing
	if spacing <= 0 {
		spacing = 2
	}
	color := colorOr(r.opt.Color, r.kit.Theme().Faint)

	rows := int(r.a.Height)
	for j := spacing; j <= rows; j += spacing {
		_ = DrawHLine(r.kit, render.Args{
			Col:   r.a.Col,
			Row:   r.a.Row + float64(j),
			Width: r.a.Width,
		}, LineOptions{Color: &color, StrokeWidth: 0.5})
	}

	if !r.opt.NoDots {
		// Layer the dot grid back on top of the rules.
		_ = r.kit.Draw(VerbDotGrid, r.a, DotGridOptions{})
	}
}

// DrawRuledLines constructs and immediately renders ruled lines.
func DrawRuledLines(t *render.Toolkit, a render.Args, opt RuledLinesOptions) error {
	r, err := NewRuledLines(t, a, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
