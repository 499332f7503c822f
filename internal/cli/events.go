package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/andynu/bujo-pdf/pkg/events"
)

// eventsCommand creates the events inspection command.
func (c *CLI) eventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect a configured event source",
	}

	cmd.AddCommand(c.eventsCheckCommand())

	return cmd
}

// eventsCheckCommand creates the "events check" subcommand: load the events
// file and report what the planner would see.
func (c *CLI) eventsCheckCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the events file and list its days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cfg.Events.Source != "file" {
				printInfo("Config uses events source %q; check only inspects files", cfg.Events.Source)
				return nil
			}

			src, err := events.NewFileSource(cfg.Events.File)
			if err != nil {
				printError("Events file is invalid")
				return err
			}

			days := src.Days()
			printSuccess("Events file is valid")
			printDetail("File: %s", cfg.Events.File)
			printDetail("Days with events: %d", len(days))

			for _, day := range days {
				d, err := time.Parse("2006-01-02", day)
				if err != nil {
					continue
				}
				evs, err := src.EventsForDate(ctx, d, 0)
				if err != nil {
					continue
				}
				printDetail("%s: %d", day, len(evs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (TOML)")
	return cmd
}
