package layout

import (
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/render/components"
)

// Layout names known to the default factory.
const (
	NameFullPage = "full_page"
	NameSidebars = "standard_with_sidebars"
)

// Options parameterizes layout creation. Each layout reads only the fields it
// understands.
type Options struct {
	// Margin is the full_page edge margin in boxes.
	Margin int

	// LeftWidth and RightWidth size the sidebar rails in boxes. Both zero
	// selects the standard widths.
	LeftWidth  int
	RightWidth int

	CurrentWeek int
	Tabs        []components.Tab
	Highlight   string
}

// Constructor builds a layout from options.
type Constructor func(Options) (Layout, error)

// Factory creates layouts by symbolic name. Pages name their layout in
// configuration; unknown names are an error, never a silent default.
type Factory struct {
	constructors map[string]Constructor
}

// NewFactory returns a factory with the built-in layouts registered.
func NewFactory() *Factory {
	f := &Factory{constructors: make(map[string]Constructor)}
	// Built-in registrations cannot collide in an empty factory.
	_ = f.Register(NameFullPage, newFullPageLayout)
	_ = f.Register(NameSidebars, newSidebarLayout)
	return f
}

// Register adds a named layout constructor. Registering over an existing name
// is a programmer error.
func (f *Factory) Register(name string, fn Constructor) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidLayout, "layout name must not be empty")
	}
	if fn == nil {
		return errors.New(errors.ErrCodeInvalidLayout, "layout %q needs a constructor", name)
	}
	if _, ok := f.constructors[name]; ok {
		return errors.New(errors.ErrCodeInvalidLayout, "layout %q is already registered", name)
	}
	f.constructors[name] = fn
	return nil
}

// Create builds the named layout.
func (f *Factory) Create(name string, opts Options) (Layout, error) {
	fn, ok := f.constructors[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownLayout, "unknown layout %q", name)
	}
	return fn(opts)
}

func newFullPageLayout(opts Options) (Layout, error) {
	return NewFullPage(opts.Margin)
}

func newSidebarLayout(opts Options) (Layout, error) {
	left, right := opts.LeftWidth, opts.RightWidth
	if left == 0 && right == 0 {
		left, right = DefaultLeftWidth, DefaultRightWidth
	}
	s, err := NewSidebar(left, right)
	if err != nil {
		return nil, err
	}
	s.CurrentWeek = opts.CurrentWeek
	s.Tabs = opts.Tabs
	s.Highlight = opts.Highlight
	return s, nil
}
