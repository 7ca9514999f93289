// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package app wires configuration, file discovery, parsing, caching and
// rendering into a runnable weather analyzer.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/soothill/weather-analyzer/config"
	"github.com/soothill/weather-analyzer/discovery"
	"github.com/soothill/weather-analyzer/pkg/logger"
	"github.com/soothill/weather-analyzer/pkg/util"
	"github.com/soothill/weather-analyzer/render"
	"github.com/soothill/weather-analyzer/report"
	"github.com/soothill/weather-analyzer/storage"
)

// App represents the main application
type App struct {
	cfg     *config.Config
	dataDir string
	runID   string
	cache   *storage.ReadingCache
	orch    *report.Orchestrator
}

// New creates a new application instance reading from dataDir. out receives
// the rendered reports; nil means a color-capable standard output.
func New(cfg *config.Config, dataDir string, out io.Writer) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	dir, err := util.ValidateDir(dataDir)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = render.Stdout()
		fd := os.Stdout.Fd()
		logger.Debug().
			Bool("terminal", isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)).
			Msg("Writing reports to standard output")
	}

	a := &App{
		cfg:     cfg,
		dataDir: dir,
		runID:   uuid.NewString(),
		cache:   storage.NewReadingCache(),
	}

	locator := discovery.NewLocator(cfg.LocatorOptions())
	loader := report.NewFileLoader(cfg.ParseOptions())
	console := render.NewConsole(out, cfg.RenderOptions())
	a.orch = report.NewOrchestrator(dir, locator, loader, console, a.cache)

	logger.Info().
		Str("run_id", a.runID).
		Str("data_dir", dir).
		Str("unit", cfg.Units.Temperature).
		Str("month_style", cfg.Files.MonthStyle).
		Msg("Weather analyzer initialized")

	return a, nil
}

// RunID returns the identifier attached to this run's log lines.
func (a *App) RunID() string {
	return a.runID
}

// Cache returns the reading cache shared by every request of this run.
func (a *App) Cache() *storage.ReadingCache {
	return a.cache
}

// Run executes requests in order, each finishing before the next starts. A
// failed request does not stop later ones; all failures are returned joined.
// Cancelling ctx stops before the next request.
func (a *App) Run(ctx context.Context, requests []report.Request) error {
	var errs []error
	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		outcome, err := a.orch.Run(ctx, req)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", req, err))
			continue
		}
		logger.Info().
			Str("request", req.String()).
			Str("outcome", outcome.String()).
			Msg("Report finished")
	}
	return errors.Join(errs...)
}

// DumpState dumps current application state to logs
func (a *App) DumpState() {
	logger.Info().Msg("=== APPLICATION STATE DUMP (SIGUSR1) ===")

	for _, slot := range []storage.Slot{storage.Yearly, storage.Monthly, storage.Chart} {
		readings := a.cache.Get(slot)
		ev := logger.Info().
			Str("slot", slot.String()).
			Int("readings", len(readings))
		if len(readings) > 0 {
			ev = ev.Str("first", readings[0].Date).Str("last", readings[len(readings)-1].Date)
		}
		ev.Msg("Cache slot")
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	logger.Info().
		Uint64("alloc_mb", m.Alloc/1024/1024).
		Uint32("num_gc", m.NumGC).
		Int("num_goroutines", runtime.NumGoroutine()).
		Msg("Runtime statistics")

	logger.Info().Msg("=== END STATE DUMP ===")
}

// DumpGoroutineStackTraces dumps all goroutine stack traces to logs
func DumpGoroutineStackTraces() {
	buf := make([]byte, 1024*1024)
	n := runtime.Stack(buf, true)
	logger.Info().
		Int("num_goroutines", runtime.NumGoroutine()).
		Str("stack_traces", string(buf[:n])).
		Msg("Goroutine stack traces (SIGUSR2)")
}
