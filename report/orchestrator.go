// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package report

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	werrors "github.com/soothill/weather-analyzer/pkg/errors"
	"github.com/soothill/weather-analyzer/pkg/interfaces"
	"github.com/soothill/weather-analyzer/pkg/logger"
	"github.com/soothill/weather-analyzer/pkg/metrics"
	"github.com/soothill/weather-analyzer/storage"
	"github.com/soothill/weather-analyzer/weather"
)

// Outcome classifies how a request finished.
type Outcome int

const (
	// OutcomeFailed means the request returned an error and nothing was rendered.
	OutcomeFailed Outcome = iota
	// OutcomeRendered means a report was rendered.
	OutcomeRendered
	// OutcomeNoData means the scope had no readings and the renderer said so.
	OutcomeNoData
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRendered:
		return "rendered"
	case OutcomeNoData:
		return "no_data"
	}
	return "failed"
}

// Request asks for one report over one scope.
type Request struct {
	Scope weather.Scope
	Type  weather.ReportType
}

func (r Request) String() string {
	return fmt.Sprintf("%s %s", r.Type, r.Scope)
}

// Validate checks that the scope fits the report type.
func (r Request) Validate() error {
	if r.Type.MonthScoped() && !r.Scope.IsMonth() {
		return werrors.NewScopeError("", r.Scope.String(), "report needs a year and month")
	}
	if !r.Type.MonthScoped() && r.Scope.IsMonth() {
		return werrors.NewScopeError("", r.Scope.String(), "report needs a year only")
	}
	return nil
}

// Orchestrator serves report requests against a data directory, reusing
// readings across requests through its cache. It is not safe for concurrent
// Run calls; requests are expected to run one after another.
type Orchestrator struct {
	rootDir  string
	locator  interfaces.FileLocator
	loader   interfaces.ReadingLoader
	renderer interfaces.Renderer
	cache    *storage.ReadingCache
}

// NewOrchestrator creates a new orchestrator. A nil cache gets a fresh one.
func NewOrchestrator(rootDir string, locator interfaces.FileLocator, loader interfaces.ReadingLoader,
	renderer interfaces.Renderer, cache *storage.ReadingCache) *Orchestrator {
	if cache == nil {
		cache = storage.NewReadingCache()
	}
	return &Orchestrator{
		rootDir:  rootDir,
		locator:  locator,
		loader:   loader,
		renderer: renderer,
		cache:    cache,
	}
}

// Cache returns the orchestrator's reading cache.
func (o *Orchestrator) Cache() *storage.ReadingCache {
	return o.cache
}

// Run resolves, aggregates and renders req. A scope with no readings renders
// the no-data message and returns OutcomeNoData with a nil error. A malformed
// source file fails the request without rendering anything.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Outcome, error) {
	outcome, err := o.run(ctx, req)
	metrics.ReportsTotal.WithLabelValues(req.Type.String(), outcome.String()).Inc()

	if err != nil {
		logger.Error().Err(err).Str("request", req.String()).Msg("Report request failed")
		return outcome, err
	}
	logger.Debug().Str("request", req.String()).Str("outcome", outcome.String()).Msg("Report request finished")
	return outcome, nil
}

func (o *Orchestrator) run(ctx context.Context, req Request) (Outcome, error) {
	if err := req.Validate(); err != nil {
		return OutcomeFailed, err
	}

	res := o.cache.Resolve(req.Scope, req.Type)
	readings := res.Readings
	if !res.Hit {
		loaded, err := o.load(ctx, req.Scope)
		if err != nil {
			return OutcomeFailed, err
		}
		readings = loaded
	}

	if len(readings) == 0 {
		logger.Info().
			Err(werrors.ErrNoData).
			Str("request", req.String()).
			Bool("derived", res.Derived).
			Msg("No readings for scope")
		if err := o.renderer.NoData(req.Scope, req.Type); err != nil {
			return OutcomeFailed, fmt.Errorf("failed to render no-data message: %w", err)
		}
		return OutcomeNoData, nil
	}

	result, err := Compute(readings, req.Type)
	if err != nil {
		return OutcomeFailed, err
	}

	if slot := storage.SlotFor(req.Type); res.Source != slot {
		o.cache.Store(slot, readings)
	}

	if err := o.render(req.Scope, result); err != nil {
		return OutcomeFailed, fmt.Errorf("failed to render %s: %w", req.Type, err)
	}
	return OutcomeRendered, nil
}

// load locates and parses every file for scope. Readings outside scope are
// dropped and the rest are sorted by date.
func (o *Orchestrator) load(ctx context.Context, scope weather.Scope) ([]weather.Reading, error) {
	start := time.Now()
	defer func() { metrics.LoadDuration.Observe(time.Since(start).Seconds()) }()

	files, err := o.locator.FindFiles(o.rootDir, scope.Year, scope.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to locate files for %s: %w", scope, err)
	}

	var readings []weather.Reading
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		loaded, err := o.loader.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		before := len(readings)
		for _, r := range loaded {
			if inScope(r, scope) {
				readings = append(readings, r)
			}
		}
		if len(loaded) > 0 && len(readings) == before {
			logger.Warn().
				Str("file", file).
				Str("scope", scope.String()).
				Int("readings", len(loaded)).
				Msg("File has no readings in scope")
		}
	}

	slices.SortStableFunc(readings, func(a, b weather.Reading) int {
		return strings.Compare(a.Date, b.Date)
	})

	logger.Info().
		Str("scope", scope.String()).
		Int("files", len(files)).
		Int("readings", len(readings)).
		Msg("Loaded readings from disk")

	return readings, nil
}

func (o *Orchestrator) render(scope weather.Scope, result Result) error {
	switch result.Type {
	case weather.YearSummary:
		return o.renderer.YearReport(scope, result.Summary)
	case weather.MonthlyAverage:
		return o.renderer.MonthlyReport(scope, result.Average)
	case weather.SingleLineChart:
		return o.renderer.OneLineChart(scope, result.Series)
	case weather.TwoLineChart:
		return o.renderer.TwoLineChart(scope, result.Series)
	}
	return fmt.Errorf("unknown report type %v", result.Type)
}

func inScope(r weather.Reading, scope weather.Scope) bool {
	if scope.IsMonth() {
		return r.InMonth(scope)
	}
	return r.InYear(scope)
}
