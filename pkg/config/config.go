// Package config loads and validates planner generation settings.
//
// Configuration lives in a single TOML file. Every field has a usable
// default; an empty file generates a complete planner for the current year on
// US Letter.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/andynu/bujo-pdf/pkg/errors"
)

// Config is the root configuration document.
type Config struct {
	// Year the planner covers.
	Year int `toml:"year"`

	Page        Page         `toml:"page"`
	Layout      Layout       `toml:"layout"`
	Events      Events       `toml:"events"`
	Cache       CacheConfig  `toml:"cache"`
	Collections []Collection `toml:"collections"`
}

// Page describes the physical page and its grid unit, in points.
type Page struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Box    float64 `toml:"box"`
}

// Layout sets the sidebar widths in grid boxes.
type Layout struct {
	LeftWidth  int `toml:"left_width"`
	RightWidth int `toml:"right_width"`
}

// Events selects and configures the calendar source.
type Events struct {
	// Source is "none", "file", or "mongo".
	Source string `toml:"source"`
	// File is the events TOML path when Source is "file".
	File string `toml:"file"`
	// Limit caps events shown per day. 0 means the page default.
	Limit int `toml:"limit"`
	// TTL is the cache lifetime for event lookups, e.g. "15m".
	TTL string `toml:"ttl"`

	Mongo Mongo `toml:"mongo"`
}

// Mongo locates the events collection when Source is "mongo".
type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// CacheConfig selects the event-cache backend.
type CacheConfig struct {
	// Backend is "none", "file", or "redis".
	Backend string `toml:"backend"`
	// Dir is the file-cache directory when Backend is "file".
	Dir string `toml:"dir"`

	Redis Redis `toml:"redis"`
}

// Redis locates the cache when Backend is "redis".
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Collection is one custom list section appended after the weekly spreads.
type Collection struct {
	Title string `toml:"title"`
	// Pages is how many pages the collection spans. 0 means 1.
	Pages int `toml:"pages"`
	// Style is the fill verb: "ruled_lines" (default) or "dot_grid".
	Style string `toml:"style"`
}

// US Letter at a 5mm grid box.
const (
	DefaultPageWidth  = 612.0
	DefaultPageHeight = 792.0
	DefaultBoxSize    = 14.17
)

// Default returns the configuration used when no file is given: the current
// year, US Letter, standard sidebars, no events.
func Default() Config {
	return Config{
		Year: time.Now().Year(),
		Page: Page{
			Width:  DefaultPageWidth,
			Height: DefaultPageHeight,
			Box:    DefaultBoxSize,
		},
		Layout: Layout{LeftWidth: 3, RightWidth: 1},
		Events: Events{Source: "none", TTL: "15m"},
		Cache:  CacheConfig{Backend: "none"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency. Dimension math against the grid
// happens later, when the grid is built; this catches what the file alone can
// get wrong.
func (c *Config) Validate() error {
	if c.Year < 1900 || c.Year > 2100 {
		return errors.New(errors.ErrCodeInvalidYear, "year %d outside supported range [1900, 2100]", c.Year)
	}
	if c.Page.Width <= 0 || c.Page.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "page dimensions must be positive, got %vx%v", c.Page.Width, c.Page.Height)
	}
	if c.Page.Box <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "box size must be positive, got %v", c.Page.Box)
	}
	if c.Layout.LeftWidth < 0 || c.Layout.RightWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "sidebar widths must be non-negative")
	}

	switch c.Events.Source {
	case "", "none":
	case "file":
		if c.Events.File == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "events.source = \"file\" needs events.file")
		}
	case "mongo":
		if c.Events.Mongo.URI == "" || c.Events.Mongo.Database == "" || c.Events.Mongo.Collection == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "events.source = \"mongo\" needs uri, database, and collection")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown events source %q", c.Events.Source)
	}
	if c.Events.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "events.limit must be non-negative, got %d", c.Events.Limit)
	}
	if c.Events.TTL != "" {
		if _, err := time.ParseDuration(c.Events.TTL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "events.ttl %q", c.Events.TTL)
		}
	}

	switch c.Cache.Backend {
	case "", "none", "file":
	case "redis":
		if c.Cache.Redis.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.backend = \"redis\" needs cache.redis.addr")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}

	for i, col := range c.Collections {
		if col.Title == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "collections[%d]: missing title", i)
		}
		if col.Pages < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "collections[%d]: pages must be non-negative", i)
		}
		switch col.Style {
		case "", "ruled_lines", "dot_grid":
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "collections[%d]: unknown style %q", i, col.Style)
		}
	}
	return nil
}

// EventsTTL returns the parsed events cache TTL. Validate has already checked
// the format; an empty value selects zero (the source's default).
func (c *Config) EventsTTL() time.Duration {
	if c.Events.TTL == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Events.TTL)
	return d
}
