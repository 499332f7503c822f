package planner

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/andynu/bujo-pdf/pkg/config"
	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/events"
	"github.com/andynu/bujo-pdf/pkg/render/rendertest"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// fakeSource serves a fixed event list for one day, or fails every lookup.
type fakeSource struct {
	day  string
	evs  []events.Event
	fail bool
}

func (s *fakeSource) EventsForDate(ctx context.Context, date time.Time, limit int) ([]events.Event, error) {
	if s.fail {
		return nil, errors.New(errors.ErrCodeEventsSource, "calendar offline")
	}
	if date.Format("2006-01-02") == s.day {
		return s.evs, nil
	}
	return nil, nil
}

func (s *fakeSource) Close(ctx context.Context) error { return nil }

func TestGenerateFullDocument(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	canvas := &rendertest.Canvas{}

	result, err := r.Generate(context.Background(), canvas, Options{
		Year: 2026,
		Collections: []config.Collection{
			{Title: "Books to read", Pages: 2},
			{Title: "Habit tracker", Style: "dot_grid"},
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.TotalWeeks != 53 {
		t.Errorf("TotalWeeks = %d, want 53", result.TotalWeeks)
	}
	if result.Weeks != 53 {
		t.Errorf("Weeks = %d, want 53", result.Weeks)
	}
	// cover + seasonal + 53 weeks + 3 collection pages
	if want := 2 + 53 + 3; result.Pages != want {
		t.Errorf("Pages = %d, want %d", result.Pages, want)
	}

	pages := canvas.OfKind("page")
	if len(pages) != result.Pages {
		t.Fatalf("canvas recorded %d pages, result says %d", len(pages), result.Pages)
	}
	if pages[0].Dest != DestCover || pages[1].Dest != DestSeasonal {
		t.Errorf("first pages = %q, %q", pages[0].Dest, pages[1].Dest)
	}
	if pages[2].Dest != "week_1" || pages[54].Dest != "week_53" {
		t.Errorf("week pages = %q .. %q", pages[2].Dest, pages[54].Dest)
	}
	if !strings.HasPrefix(pages[55].Dest, "collection_") {
		t.Errorf("collection page dest = %q", pages[55].Dest)
	}
	// Second page of a two-page collection carries a page suffix.
	if !strings.Contains(pages[56].Dest, "_p2") {
		t.Errorf("collection page 2 dest = %q", pages[56].Dest)
	}
}

// TestGenerateSundayLeapYear renders a leap year beginning on a Sunday: the
// year still has 53 weekly spreads, with December 31 on the last one as an
// eighth day row.
func TestGenerateSundayLeapYear(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	canvas := &rendertest.Canvas{}

	result, err := r.Generate(context.Background(), canvas, Options{
		Year:     2012,
		Sections: []string{SectionWeeks},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.TotalWeeks != 53 || result.Weeks != 53 {
		t.Fatalf("weeks = %d of %d, want 53 of 53", result.Weeks, result.TotalWeeks)
	}

	// Dec 31, 2012 is a Monday absorbed into week 53.
	var found bool
	for _, s := range canvas.Texts() {
		if s == "Monday 31" {
			found = true
		}
	}
	if !found {
		t.Error("December 31 not drawn on the final weekly spread")
	}
}

// TestOptionsLoggerReceivesOutput checks that a logger supplied through
// Options takes precedence over the Runner's logger for generation output.
func TestOptionsLoggerReceivesOutput(t *testing.T) {
	var buf strings.Builder
	logger := log.NewWithOptions(&buf, log.Options{})

	r := NewRunner(nil, quietLogger())
	if _, err := r.Generate(context.Background(), &rendertest.Canvas{}, Options{
		Year:     2026,
		Sections: []string{SectionCover},
		Logger:   logger,
	}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(buf.String(), "generated planner") {
		t.Errorf("Options.Logger received no generation output: %q", buf.String())
	}
}

func TestGenerateSectionFilter(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	canvas := &rendertest.Canvas{}

	result, err := r.Generate(context.Background(), canvas, Options{
		Year:     2025,
		Sections: []string{SectionCover},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Pages != 1 {
		t.Errorf("Pages = %d, want 1", result.Pages)
	}
	if result.Weeks != 0 {
		t.Errorf("Weeks = %d, want 0", result.Weeks)
	}
}

func TestGenerateDrawsEvents(t *testing.T) {
	src := &fakeSource{
		day: "2026-01-05", // Monday of week 2
		evs: []events.Event{{Label: "Dentist", Icon: "*", Color: "#5b8dd9"}},
	}
	r := NewRunner(src, quietLogger())
	canvas := &rendertest.Canvas{}

	_, err := r.Generate(context.Background(), canvas, Options{
		Year:     2026,
		Sections: []string{SectionWeeks},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var found bool
	for _, s := range canvas.Texts() {
		if s == "* Dentist" {
			found = true
		}
	}
	if !found {
		t.Error("event label not drawn on its weekly spread")
	}
}

func TestGenerateDegradesOnEventFailure(t *testing.T) {
	r := NewRunner(&fakeSource{fail: true}, quietLogger())
	canvas := &rendertest.Canvas{}

	result, err := r.Generate(context.Background(), canvas, Options{
		Year:     2026,
		Sections: []string{SectionWeeks},
	})
	if err != nil {
		t.Fatalf("a failing calendar must not abort generation: %v", err)
	}
	if result.Weeks != 53 {
		t.Errorf("Weeks = %d, want 53", result.Weeks)
	}
}

func TestGenerateSurfacesCanvasError(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	canvas := &rendertest.Canvas{ForcedErr: errors.New(errors.ErrCodeInternal, "backend broke")}

	if _, err := r.Generate(context.Background(), canvas, Options{Year: 2026}); err == nil {
		t.Fatal("canvas error should surface after generation")
	}
}

func TestGenerateRespectsCancellation(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Generate(ctx, &rendertest.Canvas{}, Options{Year: 2026})
	if err == nil {
		t.Fatal("cancelled context should stop generation")
	}
}

func TestOptionsValidation(t *testing.T) {
	cases := map[string]Options{
		"missing year":    {},
		"year too small":  {Year: 1492},
		"unknown section": {Year: 2026, Sections: []string{"appendix"}},
		"negative limit":  {Year: 2026, EventsLimit: -1},
		"negative rail":   {Year: 2026, LeftWidth: -1},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			if err := opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}

	opts := Options{Year: 2026}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("valid options rejected: %v", err)
	}
	if opts.LeftWidth != 3 || opts.RightWidth != 1 {
		t.Errorf("default rails = %d, %d", opts.LeftWidth, opts.RightWidth)
	}
	if opts.EventsLimit != DefaultEventsLimit {
		t.Errorf("default limit = %d", opts.EventsLimit)
	}
}

func TestHexColor(t *testing.T) {
	if c := hexColor("#5b8dd9"); c == nil || c.R != 0x5b || c.G != 0x8d || c.B != 0xd9 {
		t.Errorf("hexColor = %+v", c)
	}
	for _, bad := range []string{"", "#fff", "5b8dd9", "#zzzzzz"} {
		if c := hexColor(bad); c != nil {
			t.Errorf("hexColor(%q) = %+v, want nil", bad, c)
		}
	}
}

func TestCollectionDests(t *testing.T) {
	plans := planCollections([]config.Collection{{Title: "Books", Pages: 3}})
	if len(plans) != 1 {
		t.Fatalf("plans = %+v", plans)
	}
	p := plans[0]
	if p.pages != 3 || p.style != "ruled_lines" {
		t.Errorf("plan = %+v", p)
	}
	if !strings.HasPrefix(p.dest(1), "collection_") || strings.Contains(p.dest(1), "_p") {
		t.Errorf("dest(1) = %q", p.dest(1))
	}
	if !strings.HasSuffix(p.dest(2), "_p2") {
		t.Errorf("dest(2) = %q", p.dest(2))
	}

	// Two collections never share an id.
	two := planCollections([]config.Collection{{Title: "A"}, {Title: "B"}})
	if two[0].id == two[1].id {
		t.Error("collection ids must be unique")
	}
}
