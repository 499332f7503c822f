package components

import (
	"github.com/andynu/bujo-pdf/pkg/render"
)

// FieldsetOptions configures the fieldset verb: a stroked box with a small
// label set into its top edge.
type FieldsetOptions struct {
	Label       string
	LabelSize   float64       // 0 selects a size slightly below the default
	Stroke      *render.Color // nil selects the theme ink
	LabelColor  *render.Color // nil selects the theme muted color
	StrokeWidth float64
	Extra       map[string]any
}

// Fieldset renders a labeled container. It composes the box and text verbs
// rather than drawing primitives itself.
type Fieldset struct {
	kit *render.Toolkit
	a   render.Args
	opt FieldsetOptions
}

// NewFieldset is the registry constructor for the fieldset verb.
func NewFieldset(t *render.Toolkit, a render.Args, opts any) (render.Renderer, error) {
	opt, err := optionsAs[FieldsetOptions](VerbFieldset, opts)
	if err != nil {
		return nil, err
	}
	if err := requireSpan(VerbFieldset, a); err != nil {
		return nil, err
	}
	return &Fieldset{kit: t, a: a, opt: opt}, nil
}

// Render draws the container box, then the label over its top-left corner.
func (f *Fieldset) Render() {
	theme := f.kit.Theme()

	// Validated spans make the delegated verbs infallible here.
	_ = DrawBox(f.kit, f.a, BoxOptions{
		Stroke:      f.opt.Stroke,
		StrokeWidth: f.opt.StrokeWidth,
	})

	if f.opt.Label == "" {
		return
	}
	size := f.opt.LabelSize
	if size == 0 {
		size = defaultFontSize - 2
	}
	labelColor := colorOr(f.opt.LabelColor, theme.Muted)
	_ = DrawText(f.kit, render.Args{
		Col:   f.a.Col + 0.5,
		Row:   f.a.Row,
		Width: f.a.Width - 0.5,
		// The label sits in the fieldset's first row.
		Height: 1,
	}, f.opt.Label, TextOptions{
		Size:  size,
		Color: &labelColor,
	})
}

// DrawFieldset constructs and immediately renders a fieldset.
func DrawFieldset(t *render.Toolkit, a render.Args, opt FieldsetOptions) error {
	r, err := NewFieldset(t, a, opt)
	if err != nil {
		return err
	}
	r.Render()
	return nil
}
