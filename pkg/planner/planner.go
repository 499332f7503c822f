// Package planner assembles a year planner document page by page.
//
// This package implements the complete page pipeline shared by the CLI and
// the preview server: cover → seasonal overview → weekly spreads →
// collections. Centralizing it keeps both entry points generating identical
// documents.
//
// # Usage
//
// Create a Runner and generate a document:
//
//	runner := planner.NewRunner(source, logger)
//	opts := planner.Options{Year: 2026}
//	result, err := runner.GeneratePDF(ctx, opts, out)
//
// Generation onto a custom canvas (tests use a recording fake):
//
//	result, err := runner.Generate(ctx, canvas, opts)
package planner

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/andynu/bujo-pdf/pkg/config"
	"github.com/andynu/bujo-pdf/pkg/errors"
)

// Defaults shared by the CLI and the preview server.
const (
	// DefaultEventsLimit caps events shown per day cell.
	DefaultEventsLimit = 4

	// Named destinations of the fixed pages.
	DestCover    = "cover"
	DestSeasonal = "seasonal"
)

// Options configures one document generation.
type Options struct {
	// Year the planner covers. Required.
	Year int

	// Page geometry in points. Zero selects US Letter at the standard box.
	PageWidth  float64
	PageHeight float64
	BoxSize    float64

	// Sidebar widths in boxes. Both zero selects the standard widths.
	LeftWidth  int
	RightWidth int

	// EventsLimit caps events per day. 0 selects DefaultEventsLimit.
	EventsLimit int

	// Collections appended after the weekly spreads.
	Collections []config.Collection

	// Sections restricts generation to the named sections ("cover",
	// "seasonal", "weeks", "collections"). Empty generates everything.
	Sections []string

	// Logger for progress output. Nil falls back to the Runner's logger.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Year < 1900 || o.Year > 2100 {
		return errors.New(errors.ErrCodeInvalidYear, "year %d outside supported range [1900, 2100]", o.Year)
	}
	if o.PageWidth == 0 {
		o.PageWidth = config.DefaultPageWidth
	}
	if o.PageHeight == 0 {
		o.PageHeight = config.DefaultPageHeight
	}
	if o.BoxSize == 0 {
		o.BoxSize = config.DefaultBoxSize
	}
	if o.PageWidth <= 0 || o.PageHeight <= 0 || o.BoxSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"page geometry must be positive, got %vx%v box %v", o.PageWidth, o.PageHeight, o.BoxSize)
	}
	if o.LeftWidth < 0 || o.RightWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "sidebar widths must be non-negative")
	}
	if o.LeftWidth == 0 && o.RightWidth == 0 {
		o.LeftWidth, o.RightWidth = 3, 1
	}
	if o.EventsLimit == 0 {
		o.EventsLimit = DefaultEventsLimit
	}
	if o.EventsLimit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "events limit must be non-negative, got %d", o.EventsLimit)
	}
	for _, s := range o.Sections {
		switch s {
		case SectionCover, SectionSeasonal, SectionWeeks, SectionCollections:
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "unknown section %q", s)
		}
	}
	o.validated = true
	return nil
}

// Section names accepted by Options.Sections.
const (
	SectionCover       = "cover"
	SectionSeasonal    = "seasonal"
	SectionWeeks       = "weeks"
	SectionCollections = "collections"
)

// AllSections lists every section in generation order.
func AllSections() []string {
	return []string{SectionCover, SectionSeasonal, SectionWeeks, SectionCollections}
}

// wantSection reports whether a section is selected.
func (o *Options) wantSection(name string) bool {
	if len(o.Sections) == 0 {
		return true
	}
	for _, s := range o.Sections {
		if s == name {
			return true
		}
	}
	return false
}

// Result describes a finished generation.
type Result struct {
	Pages      int
	Weeks      int
	TotalWeeks int
	Stats      Stats
}

// Stats contains generation timing.
type Stats struct {
	RenderTime time.Duration
}
