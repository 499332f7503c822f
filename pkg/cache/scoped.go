package cache

import "time"

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, so the
// preview server can cache several planners against one Redis instance
// without key collisions.
//
// Example usage:
//
//	// Per-planner keys on a shared backend
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "planner:2026:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// EventsKey generates a prefixed key for an events-for-date query.
func (k *ScopedKeyer) EventsKey(calendar string, date time.Time, limit int) string {
	return k.prefix + k.inner.EventsKey(calendar, date, limit)
}
