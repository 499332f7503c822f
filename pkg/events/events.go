// Package events supplies calendar events to the weekly pages.
//
// The planner core treats event lookup as a black box behind the Source
// interface. Sources may hit the filesystem, a database, or nothing at all;
// page rendering tolerates any of them failing by degrading to an empty day
// rather than aborting the document.
package events

import (
	"context"
	"time"
)

// Event is one calendar entry shown on a day cell.
type Event struct {
	Color string `json:"color" toml:"color" bson:"color"` // hex color like "#5b8dd9", may be empty
	Icon  string `json:"icon" toml:"icon" bson:"icon"`    // symbolic icon name, may be empty
	Label string `json:"label" toml:"label" bson:"label"`
}

// Source answers events-for-date queries in a stable order.
type Source interface {
	// EventsForDate returns at most limit events for the calendar day of
	// date. A day with no events returns an empty slice, not an error.
	EventsForDate(ctx context.Context, date time.Time, limit int) ([]Event, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NullSource has no events. It backs planners generated without a calendar.
type NullSource struct{}

// NewNullSource creates an empty source.
func NewNullSource() Source {
	return &NullSource{}
}

// EventsForDate always returns no events.
func (s *NullSource) EventsForDate(ctx context.Context, date time.Time, limit int) ([]Event, error) {
	return nil, nil
}

// Close does nothing.
func (s *NullSource) Close(ctx context.Context) error { return nil }

// dayKey collapses a time to its calendar day.
func dayKey(d time.Time) string { return d.Format("2006-01-02") }

// clampLimit applies the query limit; non-positive means unlimited.
func clampLimit(evs []Event, limit int) []Event {
	if limit > 0 && len(evs) > limit {
		return evs[:limit]
	}
	return evs
}
