package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andynu/bujo-pdf/pkg/planner"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		configPath  string
		output      string
		year        int
		sectionsArg string
		interactive bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a year planner PDF",
		Long: `Generate renders the full planner document: cover, seasonal overview,
one spread per week, and any configured collection pages, all cross-linked.

Sections can be restricted with --sections or picked interactively with
--interactive.`,
		Example: `  bujo generate --year 2026
  bujo generate --config bujo.toml -o planner.pdf
  bujo generate --sections weeks,collections
  bujo generate --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := c.Logger
			ctx := withLogger(cmd.Context(), logger)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if year != 0 {
				cfg.Year = year
			}

			sections := parseSections(sectionsArg)
			if interactive {
				picked, ok, err := pickSections(sections)
				if err != nil {
					return err
				}
				if !ok {
					printInfo("Cancelled")
					return nil
				}
				sections = picked
			}

			source, err := newEventSource(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer func() {
				if err := source.Close(ctx); err != nil {
					printWarning("Could not close event source: %v", err)
				}
			}()

			if output == "" {
				output = fmt.Sprintf("planner-%d.pdf", cfg.Year)
			}
			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer out.Close()

			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %d planner...", cfg.Year))
			spinner.Start()

			runner := planner.NewRunner(source, logger)
			result, err := runner.GeneratePDF(ctx, planner.Options{
				Year:        cfg.Year,
				PageWidth:   cfg.Page.Width,
				PageHeight:  cfg.Page.Height,
				BoxSize:     cfg.Page.Box,
				LeftWidth:   cfg.Layout.LeftWidth,
				RightWidth:  cfg.Layout.RightWidth,
				EventsLimit: cfg.Events.Limit,
				Collections: cfg.Collections,
				Sections:    sections,
				Logger:      logger,
			}, out)
			if err != nil {
				spinner.StopWithError("Generation failed")
				return err
			}
			spinner.StopWithSuccess(fmt.Sprintf("Generated %d planner", cfg.Year))

			printFile(output)
			printStats(result.Pages, result.Weeks, result.Stats.RenderTime)
			printNextStep("Preview it", "bujo serve")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (TOML)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default planner-<year>.pdf)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "planner year (overrides config)")
	cmd.Flags().StringVar(&sectionsArg, "sections", "", "comma-separated sections to generate (cover,seasonal,weeks,collections)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick sections interactively")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the event-lookup cache")

	return cmd
}

// parseSections parses a comma-separated section list. Empty means all.
func parseSections(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
