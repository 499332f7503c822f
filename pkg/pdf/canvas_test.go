package pdf

import (
	"bytes"
	"testing"

	"github.com/andynu/bujo-pdf/pkg/grid"
	"github.com/andynu/bujo-pdf/pkg/render"
)

func TestPageNumbering(t *testing.T) {
	c := New(612, 792)
	if got := c.PageNumber(); got != 0 {
		t.Errorf("page number before first page = %d", got)
	}
	c.BeginPage("cover")
	c.BeginPage("week_1")
	if got := c.PageNumber(); got != 2 {
		t.Errorf("page number = %d, want 2", got)
	}
}

func TestDrawAndOutput(t *testing.T) {
	c := New(612, 792)
	c.BeginPage("cover")

	c.SetStroke(render.Color{R: 40, G: 40, B: 40}, 0.75)
	c.Line(0, 792, 612, 0)
	c.Rect(grid.Rect{X: 14.17, Y: 777.83, Width: 28.34, Height: 28.34}, render.Stroke)
	c.SetFill(render.Color{R: 230, G: 230, B: 230})
	c.Circle(100, 700, 0.4, render.Fill)
	c.Text(100, 750, "2026", render.Font{Family: "Helvetica", Size: 24, Bold: true})

	// A link to a page that doesn't exist yet, then its destination page.
	c.LinkRect([4]float64{10, 10, 60, 24}, "week_1")
	c.BeginPage("week_1")

	if err := c.Err(); err != nil {
		t.Fatalf("canvas error: %v", err)
	}

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty document")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestTextWidthScalesWithContent(t *testing.T) {
	c := New(612, 792)
	c.BeginPage("")
	f := render.Font{Family: "Helvetica", Size: 9}
	short := c.TextWidth("Jan", f)
	long := c.TextWidth("January", f)
	if short <= 0 || long <= short {
		t.Errorf("widths short=%v long=%v", short, long)
	}
}

func TestLinkDestinationReuse(t *testing.T) {
	c := New(612, 792)
	c.BeginPage("")
	c.LinkRect([4]float64{0, 0, 10, 10}, "seasonal")
	c.LinkRect([4]float64{20, 0, 30, 10}, "seasonal")
	if len(c.links) != 1 {
		t.Errorf("destination registered %d times, want 1", len(c.links))
	}
}
