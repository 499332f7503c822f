package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/andynu/bujo-pdf/pkg/config"
	"github.com/andynu/bujo-pdf/pkg/events"
	"github.com/andynu/bujo-pdf/pkg/planner"
)

// serveCommand creates the preview server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview server",
		Long: `Serve runs an HTTP server that generates planner PDFs on demand,
for iterating on configuration without re-running generate.

Endpoints:
  GET /planner.pdf?year=2026&sections=weeks   the generated document
  GET /events/2026-03-09                      events for one day (JSON)
  GET /healthz                                liveness probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			source, err := newEventSource(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer func() {
				if err := source.Close(context.Background()); err != nil {
					c.Logger.Warn("close event source", "err", err)
				}
			}()

			srv := &http.Server{
				Addr:              addr,
				Handler:           c.previewRouter(cfg, source),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			printInfo("Preview server listening on %s", addr)
			printNextStep("Open", fmt.Sprintf("http://localhost%s/planner.pdf", addr))

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if err == http.ErrServerClosed {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (TOML)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the event-lookup cache")

	return cmd
}

// previewRouter builds the preview server's routes.
func (c *CLI) previewRouter(cfg config.Config, source events.Source) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/planner.pdf", c.handlePlanner(cfg, source))
	r.Get("/events/{date}", c.handleEvents(cfg, source))

	return r
}

// requestLogger logs one line per request through the CLI logger, and makes
// that logger available to handlers via the request context.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		req = req.WithContext(withLogger(req.Context(), c.Logger))
		next.ServeHTTP(ww, req)
		c.Logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// handlePlanner generates and serves the document. Every request regenerates;
// the event cache keeps repeated generations cheap.
func (c *CLI) handlePlanner(cfg config.Config, source events.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logger := loggerFromContext(req.Context())

		year := cfg.Year
		if q := req.URL.Query().Get("year"); q != "" {
			y, err := strconv.Atoi(q)
			if err != nil {
				http.Error(w, "bad year", http.StatusBadRequest)
				return
			}
			year = y
		}
		sections := parseSections(req.URL.Query().Get("sections"))

		prog := newProgress(logger)
		runner := planner.NewRunner(source, logger)
		var buf bytes.Buffer
		result, err := runner.GeneratePDF(req.Context(), planner.Options{
			Year:        year,
			PageWidth:   cfg.Page.Width,
			PageHeight:  cfg.Page.Height,
			BoxSize:     cfg.Page.Box,
			LeftWidth:   cfg.Layout.LeftWidth,
			RightWidth:  cfg.Layout.RightWidth,
			EventsLimit: cfg.Events.Limit,
			Collections: cfg.Collections,
			Sections:    sections,
			Logger:      logger,
		}, &buf)
		if err != nil {
			logger.Error("generate failed", "year", year, "err", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		prog.done(fmt.Sprintf("rendered %d-page preview for %d", result.Pages, year))

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("X-Planner-Pages", strconv.Itoa(result.Pages))
		_, _ = w.Write(buf.Bytes())
	}
}

// handleEvents serves one day's events as JSON.
func (c *CLI) handleEvents(cfg config.Config, source events.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		date, err := time.Parse("2006-01-02", chi.URLParam(req, "date"))
		if err != nil {
			http.Error(w, "bad date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		evs, err := source.EventsForDate(req.Context(), date, cfg.Events.Limit)
		if err != nil {
			loggerFromContext(req.Context()).Error("event lookup failed",
				"date", date.Format("2006-01-02"), "err", err)
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		if evs == nil {
			evs = []events.Event{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(evs)
	}
}
