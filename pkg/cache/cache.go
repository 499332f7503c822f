// Package cache provides byte-level caching for the calendar-event
// collaborator. Fetched feeds are cached with a TTL so regenerating a planner
// does not refetch every week's events.
//
// Backends: FileCache for CLI runs, RedisCache for the preview server, and
// NullCache to disable caching. All are safe behind the Cache interface; the
// event source never knows which one it got.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with per-entry TTLs.
type Cache interface {
	// Get returns the cached value and whether it was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys for the planner's cacheable lookups.
type Keyer interface {
	// EventsKey identifies one events-for-date query against one calendar.
	EventsKey(calendar string, date time.Time, limit int) string
}

// DefaultKeyer hashes query parameters into stable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// EventsKey generates a key for an events-for-date query. The date collapses
// to its calendar day; time-of-day never affects the key.
func (k *DefaultKeyer) EventsKey(calendar string, date time.Time, limit int) string {
	return hashKey("events", calendar, date.Format("2006-01-02"), limit)
}
