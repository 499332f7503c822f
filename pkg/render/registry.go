package render

import (
	"sort"

	"github.com/andynu/bujo-pdf/pkg/errors"
)

// Args carries the grid-unit geometry common to every verb call:
// position (Col, Row) and span (Width, Height) in boxes. Fractional values
// are allowed for sub-grid precision.
type Args struct {
	Col    float64
	Row    float64
	Width  float64
	Height float64
}

// Renderer is a drawing operation bound to a canvas. Render is a pure side
// effect; backend failures surface through Canvas.Err.
type Renderer interface {
	Render()
}

// Constructor builds a renderer for one verb invocation. opts carries the
// component's typed options value; nil selects defaults, and a value of the
// wrong type is a configuration error.
type Constructor func(t *Toolkit, a Args, opts any) (Renderer, error)

// Registry maps verb names to constructors. Registration happens once at
// composition-setup time; verb names must be globally unique, and a duplicate
// registration is a programmer error reported immediately rather than a
// silent overwrite.
type Registry struct {
	verbs map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{verbs: make(map[string]Constructor)}
}

// Register adds a verb under name. Registering a name twice is a
// configuration error.
func (r *Registry) Register(name string, fn Constructor) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "verb name cannot be empty")
	}
	if fn == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "verb %q has a nil constructor", name)
	}
	if _, exists := r.verbs[name]; exists {
		return errors.New(errors.ErrCodeDuplicateVerb, "verb %q already registered", name)
	}
	r.verbs[name] = fn
	return nil
}

// Lookup returns the constructor registered under name.
func (r *Registry) Lookup(name string) (Constructor, error) {
	fn, ok := r.verbs[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownVerb, "no verb named %q", name)
	}
	return fn, nil
}

// Names returns all registered verb names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.verbs))
	for name := range r.verbs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
