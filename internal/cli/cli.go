// Package cli implements the bujo command-line interface.
//
// This package provides commands for generating planner PDFs, previewing them
// over HTTP, inspecting event files, and managing the event-lookup cache. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render a year planner PDF
//   - serve: Run the HTTP preview server
//   - events: Inspect a configured event source
//   - cache: Manage the event-lookup cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/andynu/bujo-pdf/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/andynu/bujo-pdf/pkg/buildinfo"
	"github.com/andynu/bujo-pdf/pkg/cache"
	"github.com/andynu/bujo-pdf/pkg/config"
	"github.com/andynu/bujo-pdf/pkg/events"
)

// appName is the application name used for directories and display.
const appName = "bujo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Bujo generates printable bullet-journal planner PDFs",
		Long:         `Bujo is a CLI tool for generating year planners as linked PDFs: a seasonal overview, one spread per week, and custom collection pages, all cross-linked for on-device navigation.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.eventsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file, or the defaults when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return cfg, cfg.Validate()
	}
	return config.Load(path)
}

// newEventCache builds the cache backend the config selects. --no-cache wins
// over any configured backend.
func newEventCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		loggerFromContext(ctx).Debug("event cache bypassed")
		return cache.NewNullCache(), nil
	}
	loggerFromContext(ctx).Debug("event cache configured", "backend", cfg.Cache.Backend)
	switch cfg.Cache.Backend {
	case "", "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB)
	case "file":
		dir := cfg.Cache.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	}
	return cache.NewNullCache(), nil
}

// newEventSource builds the configured event source, wrapped in the cache
// backend. The caller owns Close.
func newEventSource(ctx context.Context, cfg config.Config, noCache bool) (events.Source, error) {
	loggerFromContext(ctx).Debug("event source configured", "source", cfg.Events.Source)

	var src events.Source
	switch cfg.Events.Source {
	case "", "none":
		return events.NewNullSource(), nil
	case "file":
		fs, err := events.NewFileSource(cfg.Events.File)
		if err != nil {
			return nil, err
		}
		src = fs
	case "mongo":
		ms, err := events.NewMongoSource(ctx, cfg.Events.Mongo.URI, cfg.Events.Mongo.Database, cfg.Events.Mongo.Collection)
		if err != nil {
			return nil, err
		}
		src = ms
	}

	ec, err := newEventCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return events.NewCachedSource(src, ec, nil, cfg.Events.Source, cfg.EventsTTL()), nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/bujo/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
