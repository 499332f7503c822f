package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andynu/bujo-pdf/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bujo.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Page.Width != 612 || cfg.Page.Height != 792 {
		t.Errorf("default page = %vx%v", cfg.Page.Width, cfg.Page.Height)
	}
	if cfg.Layout.LeftWidth != 3 || cfg.Layout.RightWidth != 1 {
		t.Errorf("default sidebars = %d, %d", cfg.Layout.LeftWidth, cfg.Layout.RightWidth)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
year = 2027

[page]
box = 12.0

[events]
source = "file"
file   = "events.toml"
limit  = 3
ttl    = "1h"

[[collections]]
title = "Books to read"
pages = 2
style = "ruled_lines"

[[collections]]
title = "Habit tracker"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Year != 2027 {
		t.Errorf("year = %d", cfg.Year)
	}
	if cfg.Page.Box != 12.0 {
		t.Errorf("box = %v", cfg.Page.Box)
	}
	// Unset page fields keep their defaults.
	if cfg.Page.Width != DefaultPageWidth {
		t.Errorf("width = %v, want default", cfg.Page.Width)
	}
	if cfg.Events.Source != "file" || cfg.Events.Limit != 3 {
		t.Errorf("events = %+v", cfg.Events)
	}
	if got := cfg.EventsTTL(); got != time.Hour {
		t.Errorf("EventsTTL = %v", got)
	}
	if len(cfg.Collections) != 2 || cfg.Collections[0].Pages != 2 {
		t.Errorf("collections = %+v", cfg.Collections)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing file err = %v, want INVALID_CONFIG", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := map[string]struct {
		mutate func(*Config)
		code   errors.Code
	}{
		"year too small": {func(c *Config) { c.Year = 1800 }, errors.ErrCodeInvalidYear},
		"year too large": {func(c *Config) { c.Year = 3000 }, errors.ErrCodeInvalidYear},
		"zero box":       {func(c *Config) { c.Page.Box = 0 }, errors.ErrCodeInvalidConfig},
		"negative page":  {func(c *Config) { c.Page.Width = -1 }, errors.ErrCodeInvalidConfig},
		"negative rail":  {func(c *Config) { c.Layout.LeftWidth = -1 }, errors.ErrCodeInvalidConfig},
		"file source without path": {
			func(c *Config) { c.Events.Source = "file" }, errors.ErrCodeInvalidConfig},
		"mongo source without uri": {
			func(c *Config) { c.Events.Source = "mongo" }, errors.ErrCodeInvalidConfig},
		"unknown source": {
			func(c *Config) { c.Events.Source = "carrier-pigeon" }, errors.ErrCodeInvalidConfig},
		"bad ttl": {
			func(c *Config) { c.Events.TTL = "soon" }, errors.ErrCodeInvalidConfig},
		"redis without addr": {
			func(c *Config) { c.Cache.Backend = "redis" }, errors.ErrCodeInvalidConfig},
		"unknown cache backend": {
			func(c *Config) { c.Cache.Backend = "papyrus" }, errors.ErrCodeInvalidConfig},
		"untitled collection": {
			func(c *Config) { c.Collections = []Collection{{}} }, errors.ErrCodeInvalidConfig},
		"unknown collection style": {
			func(c *Config) { c.Collections = []Collection{{Title: "x", Style: "plaid"}} }, errors.ErrCodeInvalidConfig},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.code) {
				t.Errorf("err = %v, want %s", err, tc.code)
			}
		})
	}
}
