package events

import (
	"context"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/andynu/bujo-pdf/pkg/errors"
)

// FileSource reads events from a TOML file once at construction and serves
// lookups from memory. The file holds a flat list of dated entries:
//
//	[[events]]
//	date  = "2026-03-09"
//	label = "Dentist"
//	icon  = "star"
//	color = "#5b8dd9"
type FileSource struct {
	byDay map[string][]Event
}

type fileEvent struct {
	Date  string `toml:"date"`
	Label string `toml:"label"`
	Icon  string `toml:"icon"`
	Color string `toml:"color"`
}

type fileDoc struct {
	Events []fileEvent `toml:"events"`
}

// NewFileSource loads path. Entries with an unparseable date are a
// configuration error, not a skip; silent drops would be invisible until a
// printed planner misses an appointment.
func NewFileSource(path string) (*FileSource, error) {
	var doc fileDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEventsSource, err, "load events file %s", path)
	}

	byDay := make(map[string][]Event)
	for i, e := range doc.Events {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeEventsSource, err, "events[%d]: bad date %q", i, e.Date)
		}
		if e.Label == "" {
			return nil, errors.New(errors.ErrCodeEventsSource, "events[%d]: missing label", i)
		}
		k := dayKey(d)
		byDay[k] = append(byDay[k], Event{Color: e.Color, Icon: e.Icon, Label: e.Label})
	}

	// File order within a day is kept; sort only makes cross-day iteration
	// in tests deterministic, so nothing to do here.
	return &FileSource{byDay: byDay}, nil
}

// EventsForDate returns the day's events in file order.
func (s *FileSource) EventsForDate(ctx context.Context, date time.Time, limit int) ([]Event, error) {
	return clampLimit(s.byDay[dayKey(date)], limit), nil
}

// Close does nothing; the file is read once up front.
func (s *FileSource) Close(ctx context.Context) error { return nil }

// Days returns every day that has at least one event, sorted. Used by the
// preview server's events listing.
func (s *FileSource) Days() []string {
	days := make([]string, 0, len(s.byDay))
	for d := range s.byDay {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}
