package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/andynu/bujo-pdf/pkg/cache"
	"github.com/andynu/bujo-pdf/pkg/errors"
)

// DefaultTTL is how long cached event lookups stay fresh.
const DefaultTTL = 15 * time.Minute

// CachedSource decorates a Source with a byte cache. A generation that
// renders 53 weekly spreads asks for the same days repeatedly across preview
// reloads; the cache keeps that off the backend.
//
// Cache failures are deliberately soft: a broken cache degrades to pass-through
// lookups, never to a failed page.
type CachedSource struct {
	inner    Source
	cache    cache.Cache
	keyer    cache.Keyer
	calendar string
	ttl      time.Duration
}

// NewCachedSource wraps inner. The calendar name namespaces keys so two
// planners with different backends can share one cache. A zero ttl selects
// DefaultTTL.
func NewCachedSource(inner Source, c cache.Cache, keyer cache.Keyer, calendar string, ttl time.Duration) *CachedSource {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &CachedSource{
		inner:    inner,
		cache:    c,
		keyer:    keyer,
		calendar: calendar,
		ttl:      ttl,
	}
}

// EventsForDate serves from cache when possible, otherwise queries the inner
// source and caches the result. Empty days are cached too; absent events are
// the common case and refetching them every reload defeats the cache.
func (s *CachedSource) EventsForDate(ctx context.Context, date time.Time, limit int) ([]Event, error) {
	key := s.keyer.EventsKey(s.calendar, date, limit)

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		var evs []Event
		if err := json.Unmarshal(data, &evs); err == nil {
			return evs, nil
		}
		// Corrupt entry: drop it and fall through to the source.
		_ = s.cache.Delete(ctx, key)
	}

	evs, err := s.inner.EventsForDate(ctx, date, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(evs); err == nil {
		_ = s.cache.Set(ctx, key, data, s.ttl)
	}
	return evs, nil
}

// Close closes the inner source and the cache.
func (s *CachedSource) Close(ctx context.Context) error {
	srcErr := s.inner.Close(ctx)
	cacheErr := s.cache.Close()
	if srcErr != nil {
		return srcErr
	}
	if cacheErr != nil {
		return errors.Wrap(errors.ErrCodeEventsSource, cacheErr, "close events cache")
	}
	return nil
}
