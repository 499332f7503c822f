package components

import (
	"testing"
	"time"

	"github.com/andynu/bujo-pdf/pkg/errors"
	"github.com/andynu/bujo-pdf/pkg/grid"
	"github.com/andynu/bujo-pdf/pkg/render"
	"github.com/andynu/bujo-pdf/pkg/render/rendertest"
)

// newKit builds a toolkit over the recording canvas, bound to a week_5 page
// of 2026 (53 weeks).
func newKit(t *testing.T) (*render.Toolkit, *rendertest.Canvas) {
	t.Helper()
	g, err := grid.NewForPage(612, 792, 14.17)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	reg, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	ctx, err := render.NewContext("week_5", 7, 2026, render.WithWeek(5), render.WithTotalWeeks(53))
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	canvas := &rendertest.Canvas{}
	return render.NewToolkit(canvas, g, reg).ForPage(ctx), canvas
}

func TestDefaultRegistryNamesUnique(t *testing.T) {
	reg, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	names := reg.Names()
	want := []string{
		VerbBox, VerbDotGrid, VerbFieldset, VerbHLine, VerbMiniMonth,
		VerbRuledLines, VerbTabRail, VerbText, VerbVLine, VerbWeekRail,
	}
	if len(names) != len(want) {
		t.Fatalf("registry has %d verbs: %v", len(names), names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate verb %q", n)
		}
		seen[n] = true
	}
	for _, w := range want {
		if !seen[w] {
			t.Errorf("missing verb %q", w)
		}
	}
}

func TestRegisterTwiceCollides(t *testing.T) {
	reg, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	if err := Register(reg); !errors.Is(err, errors.ErrCodeDuplicateVerb) {
		t.Errorf("re-registering builtins err = %v, want DUPLICATE_VERB", err)
	}
}

func TestBoxRender(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawBox(kit, render.Args{Col: 2, Row: 3, Width: 4, Height: 5}, BoxOptions{}); err != nil {
		t.Fatalf("DrawBox: %v", err)
	}
	rects := canvas.OfKind("rect")
	if len(rects) != 1 {
		t.Fatalf("recorded %d rects", len(rects))
	}
	r := rects[0].Rect
	g := kit.Grid()
	if r.X != g.X(2) || r.Y != g.Y(3) {
		t.Errorf("rect at (%v, %v), want (%v, %v)", r.X, r.Y, g.X(2), g.Y(3))
	}
	if rects[0].Mode != render.Stroke {
		t.Errorf("mode = %v, want Stroke", rects[0].Mode)
	}
	if links := canvas.Links(); len(links) != 0 {
		t.Errorf("plain box recorded links %v", links)
	}
}

func TestBoxFillAndLink(t *testing.T) {
	kit, canvas := newKit(t)
	fill := render.Color{R: 1, G: 2, B: 3}

	if err := DrawBox(kit, render.Args{Col: 0, Row: 0, Width: 2, Height: 2}, BoxOptions{
		Fill: &fill,
		Dest: "seasonal",
	}); err != nil {
		t.Fatalf("DrawBox: %v", err)
	}
	if rects := canvas.OfKind("rect"); rects[0].Mode != render.FillStroke {
		t.Errorf("mode = %v, want FillStroke", rects[0].Mode)
	}
	if links := canvas.Links(); len(links) != 1 || links[0] != "seasonal" {
		t.Errorf("links = %v", links)
	}
}

func TestBoxSelfLinkSuppressed(t *testing.T) {
	kit, canvas := newKit(t)
	// The kit is bound to week_5; a box linking there must not record a link.
	if err := DrawBox(kit, render.Args{Col: 0, Row: 0, Width: 2, Height: 2}, BoxOptions{Dest: "week_5"}); err != nil {
		t.Fatalf("DrawBox: %v", err)
	}
	if links := canvas.Links(); len(links) != 0 {
		t.Errorf("self-link recorded: %v", links)
	}
}

func TestBoxRejectsBadSpan(t *testing.T) {
	kit, _ := newKit(t)
	for _, a := range []render.Args{
		{Col: 0, Row: 0, Width: 0, Height: 2},
		{Col: 0, Row: 0, Width: 2, Height: -1},
		{Col: -1, Row: 0, Width: 2, Height: 2},
	} {
		if err := DrawBox(kit, a, BoxOptions{}); !errors.Is(err, errors.ErrCodeInvalidRect) {
			t.Errorf("args %+v: err = %v, want INVALID_RECT", a, err)
		}
	}
}

func TestBoxRejectsWrongOptionsType(t *testing.T) {
	kit, _ := newKit(t)
	if err := kit.Draw(VerbBox, render.Args{Col: 0, Row: 0, Width: 1, Height: 1}, LineOptions{}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("wrong options type err = %v, want INVALID_CONFIG", err)
	}
}

func TestHLine(t *testing.T) {
	kit, canvas := newKit(t)
	g := kit.Grid()

	if err := DrawHLine(kit, render.Args{Col: 1, Row: 4, Width: 10}, LineOptions{}); err != nil {
		t.Fatalf("DrawHLine: %v", err)
	}
	lines := canvas.OfKind("line")
	if len(lines) != 1 {
		t.Fatalf("recorded %d lines", len(lines))
	}
	l := lines[0]
	if l.Y1 != l.Y2 || l.Y1 != g.Y(4) {
		t.Errorf("hline not horizontal at Y(4): %+v", l)
	}
	if l.X2-l.X1 != g.Width(10) {
		t.Errorf("hline span = %v, want %v", l.X2-l.X1, g.Width(10))
	}

	if err := DrawHLine(kit, render.Args{Col: 1, Row: 4, Width: 0}, LineOptions{}); err == nil {
		t.Error("zero-width hline should error")
	}
}

func TestVLineDashed(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawVLine(kit, render.Args{Col: 3, Row: 0, Height: 6}, LineOptions{Dashed: true}); err != nil {
		t.Fatalf("DrawVLine: %v", err)
	}
	l := canvas.OfKind("line")[0]
	if l.X1 != l.X2 {
		t.Errorf("vline not vertical: %+v", l)
	}
	if len(canvas.OfKind("dash")) != 1 || len(canvas.OfKind("cleardash")) != 1 {
		t.Error("dashed vline should set and clear the dash pattern")
	}
}

func TestTextAlignment(t *testing.T) {
	kit, canvas := newKit(t)
	g := kit.Grid()

	// 5 points per rune in the fake; "hi" measures 10.
	if err := DrawText(kit, render.Args{Col: 2, Row: 2, Width: 4, Height: 1}, "hi", TextOptions{Align: AlignCenter}); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	op := canvas.OfKind("text")[0]
	wantX := g.X(2) + (g.Width(4)-10)/2
	if op.X1 != wantX {
		t.Errorf("centered text at %v, want %v", op.X1, wantX)
	}
	if op.Y1 != g.Y(2)-defaultFontSize {
		t.Errorf("baseline at %v, want %v", op.Y1, g.Y(2)-defaultFontSize)
	}
}

func TestTextPointOverride(t *testing.T) {
	kit, canvas := newKit(t)
	g := kit.Grid()

	if err := DrawText(kit, render.Args{Col: 1, Row: 1, Width: 2, Height: 1}, "x", TextOptions{
		OffsetX: 3.5, OffsetY: -1.25,
	}); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	op := canvas.OfKind("text")[0]
	if op.X1 != g.X(1)+3.5 {
		t.Errorf("x = %v, want grid x plus override", op.X1)
	}
	if op.Y1 != g.Y(1)-defaultFontSize-1.25 {
		t.Errorf("y = %v, want baseline plus override", op.Y1)
	}
}

func TestFieldsetComposesBoxAndLabel(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawFieldset(kit, render.Args{Col: 5, Row: 5, Width: 10, Height: 8}, FieldsetOptions{Label: "Notes"}); err != nil {
		t.Fatalf("DrawFieldset: %v", err)
	}
	if len(canvas.OfKind("rect")) != 1 {
		t.Error("fieldset should draw its container box")
	}
	if texts := canvas.Texts(); len(texts) != 1 || texts[0] != "Notes" {
		t.Errorf("fieldset texts = %v", texts)
	}
}

func TestDotGridCoverage(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawDotGrid(kit, render.Args{Col: 0, Row: 0, Width: 3, Height: 2}, DotGridOptions{}); err != nil {
		t.Fatalf("DrawDotGrid: %v", err)
	}
	// Dots sit on intersections, inclusive: (3+1)*(2+1).
	if dots := canvas.OfKind("circle"); len(dots) != 12 {
		t.Errorf("recorded %d dots, want 12", len(dots))
	}
}

func TestRuledLinesLayersDots(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawRuledLines(kit, render.Args{Col: 0, Row: 0, Width: 4, Height: 6}, RuledLinesOptions{}); err != nil {
		t.Fatalf("DrawRuledLines: %v", err)
	}
	// Rules at rows 2, 4, 6.
	if lines := canvas.OfKind("line"); len(lines) != 3 {
		t.Errorf("recorded %d rules, want 3", len(lines))
	}
	if dots := canvas.OfKind("circle"); len(dots) == 0 {
		t.Error("ruled_lines should layer the dot grid on top")
	}

	canvas.Ops = nil
	if err := DrawRuledLines(kit, render.Args{Col: 0, Row: 0, Width: 4, Height: 6}, RuledLinesOptions{NoDots: true}); err != nil {
		t.Fatalf("DrawRuledLines: %v", err)
	}
	if dots := canvas.OfKind("circle"); len(dots) != 0 {
		t.Error("NoDots should suppress the dot layer")
	}
}

func TestMiniMonth(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawMiniMonth(kit, render.Args{Col: 2, Row: 2, Width: 14, Height: 8}, MiniMonthOptions{
		Month: time.February,
	}); err != nil {
		t.Fatalf("DrawMiniMonth: %v", err)
	}
	texts := canvas.Texts()
	// Label + 7 weekday headers + 28 day numbers (Feb 2026).
	if len(texts) != 1+7+28 {
		t.Fatalf("recorded %d texts, want 36", len(texts))
	}
	if texts[0] != "February" {
		t.Errorf("label = %q", texts[0])
	}
	if texts[8] != "1" || texts[len(texts)-1] != "28" {
		t.Errorf("first/last day = %q/%q", texts[8], texts[len(texts)-1])
	}
}

func TestMiniMonthLeapFebruary(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawMiniMonth(kit, render.Args{Col: 2, Row: 2, Width: 14, Height: 8}, MiniMonthOptions{
		Month: time.February,
		Year:  2024,
	}); err != nil {
		t.Fatalf("DrawMiniMonth: %v", err)
	}
	texts := canvas.Texts()
	if texts[len(texts)-1] != "29" {
		t.Errorf("leap February should end on 29, got %q", texts[len(texts)-1])
	}
}

func TestMiniMonthWeekLinks(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawMiniMonth(kit, render.Args{Col: 2, Row: 2, Width: 14, Height: 8}, MiniMonthOptions{
		Month:     time.January,
		LinkWeeks: true,
	}); err != nil {
		t.Fatalf("DrawMiniMonth: %v", err)
	}
	links := canvas.Links()
	if len(links) == 0 {
		t.Fatal("LinkWeeks should record week links")
	}
	if links[0] != "week_1" {
		t.Errorf("first link = %q, want week_1", links[0])
	}
	// The kit renders week_5's page; January of 2026 covers weeks 1-5, and
	// the week_5 row must suppress its self-link.
	for _, l := range links {
		if l == "week_5" {
			t.Error("self-link week_5 should be suppressed")
		}
	}
}

func TestMiniMonthRejectsSmallSpan(t *testing.T) {
	kit, _ := newKit(t)
	err := DrawMiniMonth(kit, render.Args{Col: 0, Row: 0, Width: 6, Height: 8}, MiniMonthOptions{Month: time.March})
	if !errors.Is(err, errors.ErrCodeInvalidRect) {
		t.Errorf("narrow mini_month err = %v, want INVALID_RECT", err)
	}
}

func TestWeekRail(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawWeekRail(kit, render.Args{Col: 0, Row: 0, Width: 3, Height: 55}, WeekRailOptions{
		CurrentWeek: 5,
	}); err != nil {
		t.Fatalf("DrawWeekRail: %v", err)
	}

	links := canvas.Links()
	// 53 weeks, minus the current week (no self-link on week_5's own page).
	if len(links) != 52 {
		t.Errorf("recorded %d week links, want 52", len(links))
	}
	for _, l := range links {
		if l == "week_5" {
			t.Error("current week must not link to itself")
		}
	}

	// Month markers from the week-to-month map appear among the texts.
	var hasJan bool
	for _, s := range canvas.Texts() {
		if s == "Jan" {
			hasJan = true
		}
	}
	if !hasJan {
		t.Error("week rail should print the January marker")
	}

	// The current entry gets a highlight box: one rect beyond zero plain ones.
	if rects := canvas.OfKind("rect"); len(rects) != 1 {
		t.Errorf("recorded %d highlight rects, want 1", len(rects))
	}
}

// TestWeekRailNarrow draws a one-box-wide rail: week numbers must still
// render across the full width, with the month-marker column dropped.
func TestWeekRailNarrow(t *testing.T) {
	kit, canvas := newKit(t)

	if err := DrawWeekRail(kit, render.Args{Col: 0, Row: 0, Width: 1, Height: 55}, WeekRailOptions{}); err != nil {
		t.Fatalf("DrawWeekRail: %v", err)
	}

	texts := canvas.Texts()
	if len(texts) != 53 {
		t.Errorf("recorded %d texts, want 53 week numbers", len(texts))
	}
	for _, s := range texts {
		if s == "Jan" {
			t.Error("narrow rail should drop month markers")
		}
	}
	// All week links minus the suppressed self-link for the current page.
	if links := canvas.Links(); len(links) != 52 {
		t.Errorf("recorded %d links, want 52", len(links))
	}
}

func TestWeekRailRequiresContext(t *testing.T) {
	g, err := grid.NewForPage(612, 792, 14.17)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	reg, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	kit := render.NewToolkit(&rendertest.Canvas{}, g, reg) // no page context
	if err := DrawWeekRail(kit, render.Args{Col: 0, Row: 0, Width: 3, Height: 55}, WeekRailOptions{}); err == nil {
		t.Error("week rail without context should error")
	}
}

func TestTabRail(t *testing.T) {
	kit, canvas := newKit(t)
	tabs := []Tab{
		{Label: "Seasonal", Dest: "seasonal"},
		{Label: "Weeks", Dest: "week_1"},
		{Label: "Lists", Dest: "collections"},
	}

	if err := DrawTabRail(kit, render.Args{Col: 42, Row: 0, Width: 1, Height: 55}, TabRailOptions{
		Tabs:      tabs,
		Highlight: "Weeks",
	}); err != nil {
		t.Fatalf("DrawTabRail: %v", err)
	}

	links := canvas.Links()
	// Highlighted tab carries no link; the other two do.
	if len(links) != 2 {
		t.Errorf("recorded %d tab links, want 2: %v", len(links), links)
	}
	for _, l := range links {
		if l == "week_1" {
			t.Error("highlighted tab should not link")
		}
	}
}

func TestTabRailRejectsOverflow(t *testing.T) {
	kit, _ := newKit(t)
	tabs := make([]Tab, 10) // 10 tabs * 6 boxes = 60 > 55 rows
	for i := range tabs {
		tabs[i] = Tab{Label: "t", Dest: "d"}
	}
	err := DrawTabRail(kit, render.Args{Col: 42, Row: 0, Width: 1, Height: 55}, TabRailOptions{Tabs: tabs})
	if !errors.Is(err, errors.ErrCodeInvalidRect) {
		t.Errorf("overflowing tab rail err = %v, want INVALID_RECT", err)
	}
}
