// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package interfaces

import "github.com/soothill/weather-analyzer/weather"

// Renderer defines the interface for presenting report results.
type Renderer interface {
	// YearReport prints the yearly extremes
	YearReport(scope weather.Scope, summary weather.YearExtremes) error

	// MonthlyReport prints the month's average high and low
	MonthlyReport(scope weather.Scope, avg weather.MonthAverages) error

	// OneLineChart prints one combined low/high bar per day
	OneLineChart(scope weather.Scope, series []weather.Reading) error

	// TwoLineChart prints separate high and low bars per day
	TwoLineChart(scope weather.Scope, series []weather.Reading) error

	// NoData reports that scope has nothing to show
	NoData(scope weather.Scope, reportType weather.ReportType) error
}
