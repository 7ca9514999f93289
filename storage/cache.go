// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package storage holds parsed readings between report requests.
//
// A ReadingCache has three slots, each holding at most one reading set:
//   - Yearly: the last full year loaded for a year summary.
//   - Monthly: the last month loaded for a monthly average.
//   - Chart: the last month loaded for a bar chart.
//
// Resolve decides whether a request can be served from a slot, derived from
// the yearly set, or must fall through to the file system. Readings live only
// for the lifetime of the process; losing a slot only costs a re-parse.
package storage

import (
	"sync"

	"github.com/soothill/weather-analyzer/pkg/logger"
	"github.com/soothill/weather-analyzer/pkg/metrics"
	"github.com/soothill/weather-analyzer/weather"
)

// Slot names one of the cache's reading sets.
type Slot int

const (
	// NoSlot marks a resolution that did not come from the cache.
	NoSlot Slot = iota
	// Yearly holds a full year.
	Yearly
	// Monthly holds one month loaded for an aggregate.
	Monthly
	// Chart holds one month loaded for a chart.
	Chart
)

func (s Slot) String() string {
	switch s {
	case Yearly:
		return "yearly"
	case Monthly:
		return "monthly"
	case Chart:
		return "chart"
	}
	return "none"
}

// SlotFor returns the slot a freshly loaded set for reportType is stored in.
func SlotFor(reportType weather.ReportType) Slot {
	switch reportType {
	case weather.YearSummary:
		return Yearly
	case weather.MonthlyAverage:
		return Monthly
	default:
		return Chart
	}
}

// Resolution is the result of looking a request up in the cache.
type Resolution struct {
	Readings []weather.Reading
	Source   Slot
	Hit      bool // served without file I/O
	Derived  bool // filtered out of the Yearly slot
}

// ReadingCache is the three-slot reading cache.
type ReadingCache struct {
	mu    sync.Mutex
	slots map[Slot][]weather.Reading
}

// NewReadingCache creates an empty cache.
func NewReadingCache() *ReadingCache {
	return &ReadingCache{slots: make(map[Slot][]weather.Reading, 3)}
}

// Get returns the readings held in slot, or nil.
func (c *ReadingCache) Get(slot Slot) []weather.Reading {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slots[slot]
}

// Store replaces the contents of slot.
func (c *ReadingCache) Store(slot Slot, readings []weather.Reading) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.slots[slot] = readings
	logger.Debug().
		Str("slot", slot.String()).
		Int("readings", len(readings)).
		Msg("Stored readings in cache")
}

// Clear empties every slot.
func (c *ReadingCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.slots)
}

// Resolve looks up the readings for scope and reportType.
//
// A year scope reuses Yearly when it holds that year. A month scope tries, in
// order: Chart holding the month, Monthly holding the month, then the subset
// of Yearly for that month when Yearly holds the year. A derived subset may
// be empty, which is still a hit: the year is loaded and the month has no
// readings. Anything else is a miss.
//
// Every month check, Chart included, matches year and month together, so a
// cached June 2011 never serves June 2012.
func (c *ReadingCache) Resolve(scope weather.Scope, reportType weather.ReportType) Resolution {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := c.resolve(scope)

	result := metrics.CacheMiss
	switch {
	case res.Derived:
		result = metrics.CacheDerived
	case res.Hit:
		result = metrics.CacheHit
	}
	metrics.CacheLookupsTotal.WithLabelValues(res.Source.String(), result).Inc()

	logger.Debug().
		Str("scope", scope.String()).
		Str("report", reportType.String()).
		Str("slot", res.Source.String()).
		Str("result", result).
		Int("readings", len(res.Readings)).
		Msg("Resolved scope against cache")

	return res
}

func (c *ReadingCache) resolve(scope weather.Scope) Resolution {
	if !scope.IsMonth() {
		if anyInYear(c.slots[Yearly], scope) {
			return Resolution{Readings: c.slots[Yearly], Source: Yearly, Hit: true}
		}
		return Resolution{}
	}

	for _, slot := range []Slot{Chart, Monthly} {
		if anyInMonth(c.slots[slot], scope) {
			return Resolution{Readings: c.slots[slot], Source: slot, Hit: true}
		}
	}

	if yearly := c.slots[Yearly]; anyInYear(yearly, scope) {
		var subset []weather.Reading
		for _, r := range yearly {
			if r.InMonth(scope) {
				subset = append(subset, r)
			}
		}
		return Resolution{Readings: subset, Source: Yearly, Hit: true, Derived: true}
	}

	return Resolution{}
}

func anyInYear(readings []weather.Reading, scope weather.Scope) bool {
	for _, r := range readings {
		if r.InYear(scope) {
			return true
		}
	}
	return false
}

func anyInMonth(readings []weather.Reading, scope weather.Scope) bool {
	for _, r := range readings {
		if r.InMonth(scope) {
			return true
		}
	}
	return false
}
