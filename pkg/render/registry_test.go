package render

import (
	"testing"

	"github.com/andynu/bujo-pdf/pkg/errors"
)

type nopRenderer struct{ rendered *int }

func (r nopRenderer) Render() { *r.rendered++ }

func nopConstructor(rendered *int) Constructor {
	return func(t *Toolkit, a Args, opts any) (Renderer, error) {
		return nopRenderer{rendered: rendered}, nil
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	var n int

	if err := reg.Register("box", nopConstructor(&n)); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := reg.Register("box", nopConstructor(&n))
	if !errors.Is(err, errors.ErrCodeDuplicateVerb) {
		t.Fatalf("duplicate Register err = %v, want DUPLICATE_VERB", err)
	}
}

func TestRegistryRejectsEmptyNameAndNilConstructor(t *testing.T) {
	reg := NewRegistry()
	var n int
	if err := reg.Register("", nopConstructor(&n)); err == nil {
		t.Error("empty name should error")
	}
	if err := reg.Register("box", nil); err == nil {
		t.Error("nil constructor should error")
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Lookup("nonexistent"); !errors.Is(err, errors.ErrCodeUnknownVerb) {
		t.Errorf("Lookup(nonexistent) err = %v, want UNKNOWN_VERB", err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	var n int
	for _, name := range []string{"vline", "box", "text"} {
		if err := reg.Register(name, nopConstructor(&n)); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	names := reg.Names()
	want := []string{"box", "text", "vline"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestToolkitDraw(t *testing.T) {
	reg := NewRegistry()
	var rendered int
	if err := reg.Register("nop", nopConstructor(&rendered)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	kit := NewToolkit(nil, nil, reg)
	if err := kit.Draw("nop", Args{Col: 1, Row: 1, Width: 2, Height: 2}, nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if rendered != 1 {
		t.Errorf("renderer invoked %d times, want 1", rendered)
	}

	if err := kit.Draw("missing", Args{}, nil); !errors.Is(err, errors.ErrCodeUnknownVerb) {
		t.Errorf("Draw(missing) err = %v, want UNKNOWN_VERB", err)
	}
}

func TestToolkitForPage(t *testing.T) {
	reg := NewRegistry()
	base := NewToolkit(nil, nil, reg)
	if base.Context() != nil {
		t.Error("base toolkit should have no page context")
	}
	if base.Theme() != DefaultTheme() {
		t.Error("base toolkit theme should default")
	}

	ctx, err := NewContext("week_1", 1, 2026)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	page := base.ForPage(ctx)
	if page.Context() != ctx {
		t.Error("ForPage should bind the context")
	}
	if base.Context() != nil {
		t.Error("ForPage must not mutate the base toolkit")
	}
}
