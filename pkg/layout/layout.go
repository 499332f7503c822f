// Package layout attaches navigation chrome around page content.
//
// A Layout is a declarative strategy: given the page's toolkit it draws its
// chrome (sidebars, tab rails), hands the page a content sub-grid, and gets a
// final callback after the page has drawn. Pages never position chrome
// themselves; they ask the factory for a layout by name and draw only inside
// the ContentArea it returns.
package layout

import (
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/render"
)

// ContentArea is the sub-grid a page may draw content into, in grid boxes.
// Row 0 is the page top.
type ContentArea struct {
	Col    int
	Row    int
	Width  int
	Height int
}

// Args converts the area to verb arguments.
func (a ContentArea) Args() render.Args {
	return render.Args{
		Col:    float64(a.Col),
		Row:    float64(a.Row),
		Width:  float64(a.Width),
		Height: float64(a.Height),
	}
}

// Layout renders chrome around page content in a fixed three-phase lifecycle:
// RenderBefore draws the chrome and computes the content area, the page draws
// into that area, then RenderAfter runs. RenderAfter is an extension point and
// is a no-op in the current layouts, but Apply always calls it.
type Layout interface {
	RenderBefore(kit *render.Toolkit) (ContentArea, error)
	RenderAfter(kit *render.Toolkit) error
}

// ContentFunc draws a page's own content into its assigned area.
type ContentFunc func(kit *render.Toolkit, area ContentArea) error

// Apply runs the layout lifecycle around content. The content callback may be
// nil for pages that are pure chrome.
func Apply(kit *render.Toolkit, l Layout, content ContentFunc) error {
	if l == nil {
		return errors.New(errors.ErrCodeInvalidLayout, "apply needs a layout")
	}
	area, err := l.RenderBefore(kit)
	if err != nil {
		return err
	}
	if content != nil {
		if err := content(kit, area); err != nil {
			return err
		}
	}
	return l.RenderAfter(kit)
}
