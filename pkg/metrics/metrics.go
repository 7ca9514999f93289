// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package metrics provides Prometheus metrics for the weather analyzer.
//
// The analyzer is a one-shot CLI, so metrics are not scraped; they are
// written once on exit in the text exposition format (see WriteTextfile),
// suitable for the node_exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache lookup results used as the "result" label of CacheLookupsTotal.
const (
	CacheHit     = "hit"
	CacheDerived = "derived"
	CacheMiss    = "miss"
)

var (
	// FilesLocatedTotal tracks source files returned by the file locator
	FilesLocatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_files_located_total",
		Help: "Total number of source files matched by the file locator",
	})

	// FilesParsedTotal tracks source files fully parsed
	FilesParsedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_files_parsed_total",
		Help: "Total number of source files parsed successfully",
	})

	// RecordsParsedTotal tracks rows converted into readings
	RecordsParsedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_records_parsed_total",
		Help: "Total number of rows parsed into readings",
	})

	// MalformedRecordsTotal tracks rows rejected by the record parser
	MalformedRecordsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_malformed_records_total",
		Help: "Total number of rows rejected as malformed",
	})

	// CacheLookupsTotal tracks reading cache lookups by slot and result
	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_cache_lookups_total",
		Help: "Reading cache lookups partitioned by slot and result (hit, derived, miss)",
	}, []string{"slot", "result"})

	// ReportsTotal tracks finished report requests by type and outcome
	ReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_reports_total",
		Help: "Report requests partitioned by report type and outcome",
	}, []string{"type", "outcome"})

	// LoadDuration tracks how long loading a scope from disk takes
	LoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "weather_load_duration_seconds",
		Help:    "Duration of locating and parsing source files for a scope",
		Buckets: prometheus.DefBuckets,
	})
)

// WriteTextfile writes every registered metric to path in the Prometheus
// text format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
