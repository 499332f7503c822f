// Package components implements the planner's drawing verbs: box, hline,
// vline, text, fieldset, dot_grid, ruled_lines, mini_month, and the two
// navigation rails used as page chrome.
//
// Each component exposes two things: a constructor with the registry
// signature (used by the verb registry) and a flat Draw* function that
// constructs and immediately renders. Components delegate to each other
// through the toolkit rather than subclassing; ruled_lines, for example,
// layers the dot_grid verb over its own rules.
//
// Options are typed structs per component. Every options struct carries an
// Extra map for forward-compatible overflow fields; components ignore keys
// they don't know.
package components

import (
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// Verb names registered by this package. Names are globally unique across all
// registered components; the registry enforces this at composition time.
const (
	VerbBox        = "box"
	VerbHLine      = "hline"
	VerbVLine      = "vline"
	VerbText       = "text"
	VerbFieldset   = "fieldset"
	VerbDotGrid    = "dot_grid"
	VerbRuledLines = "ruled_lines"
	VerbMiniMonth  = "mini_month"
	VerbWeekRail   = "week_rail"
	VerbTabRail    = "tab_rail"
)

// Drawing defaults shared across components.
const (
	defaultStrokeWidth = 0.75
	defaultFontFamily  = "Helvetica"
	defaultFontSize    = 9.0
	dotRadius          = 0.4
)

// Register adds every built-in verb to reg. A name collision with an already
// registered verb is a configuration error.
func Register(reg *render.Registry) error {
	entries := []struct {
		name string
		fn   render.Constructor
	}{
		{VerbBox, NewBox},
		{VerbHLine, NewHLine},
		{VerbVLine, NewVLine},
		{VerbText, NewText},
		{VerbFieldset, NewFieldset},
		{VerbDotGrid, NewDotGrid},
		{VerbRuledLines, NewRuledLines},
		{VerbMiniMonth, NewMiniMonth},
		{VerbWeekRail, NewWeekRail},
		{VerbTabRail, NewTabRail},
	}
	for _, e := range entries {
		if err := reg.Register(e.name, e.fn); err != nil {
			return err
		}
	}
	return nil
}

// DefaultRegistry returns a registry with all built-in verbs registered.
func DefaultRegistry() (*render.Registry, error) {
	reg := render.NewRegistry()
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// optionsAs coerces the registry's untyped options value into the component's
// typed options struct. nil selects the zero-value defaults.
func optionsAs[T any](verb string, opts any) (T, error) {
	var zero T
	if opts == nil {
		return zero, nil
	}
	v, ok := opts.(T)
	if !ok {
		return zero, errors.New(errors.ErrCodeInvalidConfig, "verb %q expects %T options, got %T", verb, zero, opts)
	}
	return v, nil
}

// requireSpan validates the box span of a cell-shaped verb.
func requireSpan(verb string, a render.Args) error {
	if a.Width <= 0 || a.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidRect, "verb %q needs a positive span, got %vx%v", verb, a.Width, a.Height)
	}
	if a.Col < 0 || a.Row < 0 {
		return errors.New(errors.ErrCodeInvalidRect, "verb %q needs a non-negative position, got (%v, %v)", verb, a.Col, a.Row)
	}
	return nil
}

// colorOr returns c if set, otherwise fallback.
func colorOr(c *render.Color, fallback render.Color) render.Color {
	if c != nil {
		return *c
	}
	return fallback
}

// addLink attaches a clickable region unless dest is empty or names the page
// being rendered; navigation chrome never links a page to itself.
func addLink(t *render.Toolkit, quad [4]float64, dest string) {
	if dest == "" {
		return
	}
	if ctx := t.Context(); ctx != nil && ctx.IsCurrentPage(dest) {
		return
	}
	t.Canvas().LinkRect(quad, dest)
}

// font builds the standard planner font.
func font(size float64, bold bool) render.Font {
	if size == 0 {
		size = defaultFontSize
	}
	return render.Font{Family: defaultFontFamily, Size: size, Bold: bold}
}
