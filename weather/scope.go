// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package weather

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	werrors "github.com/soothill/weather-analyzer/pkg/errors"
)

// Scope selects the readings a report covers: a whole year, or one month of
// a year. Month is empty for a year scope and two digits otherwise.
type Scope struct {
	Year  string
	Month string
}

// YearScope returns the scope for a whole year.
func YearScope(year int) Scope {
	return Scope{Year: fmt.Sprintf("%04d", year)}
}

// MonthScope returns the scope for one month of a year.
func MonthScope(year int, month time.Month) Scope {
	return Scope{Year: fmt.Sprintf("%04d", year), Month: fmt.Sprintf("%02d", int(month))}
}

// ParseYearScope parses "YYYY".
func ParseYearScope(value string) (Scope, error) {
	year, err := parseYear(value, strings.TrimSpace(value))
	if err != nil {
		return Scope{}, err
	}
	return Scope{Year: year}, nil
}

// ParseMonthScope parses "YYYY/MM" or "YYYY/M".
func ParseMonthScope(value string) (Scope, error) {
	yearPart, monthPart, ok := strings.Cut(strings.TrimSpace(value), "/")
	if !ok {
		return Scope{}, werrors.NewScopeError("", value, "want YYYY/MM")
	}
	year, err := parseYear(value, yearPart)
	if err != nil {
		return Scope{}, err
	}
	m, err := strconv.Atoi(monthPart)
	if err != nil || len(monthPart) > 2 || !allDigits(monthPart) {
		return Scope{}, werrors.NewScopeError("", value, "month is not a number")
	}
	if m < 1 || m > 12 {
		return Scope{}, werrors.NewScopeError("", value, "month must be between 1 and 12")
	}
	return Scope{Year: year, Month: fmt.Sprintf("%02d", m)}, nil
}

func parseYear(value, year string) (string, error) {
	if len(year) != 4 {
		return "", werrors.NewScopeError("", value, "year must have four digits")
	}
	if !allDigits(year) {
		return "", werrors.NewScopeError("", value, "year is not a number")
	}
	return year, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// IsMonth reports whether the scope names a single month.
func (s Scope) IsMonth() bool {
	return s.Month != ""
}

// YearMarker is the canonical-date substring shared by every day of the year.
func (s Scope) YearMarker() string {
	return s.Year + "-"
}

// MonthMarker is the canonical-date substring shared by every day of the
// month. It always includes the year so June 2011 never matches June 2012.
func (s Scope) MonthMarker() string {
	return s.Year + "-" + s.Month + "-"
}

// TimeMonth returns the scope's month, or 0 for a year scope.
func (s Scope) TimeMonth() time.Month {
	if !s.IsMonth() {
		return 0
	}
	m, _ := strconv.Atoi(s.Month)
	return time.Month(m)
}

func (s Scope) String() string {
	if s.IsMonth() {
		return s.Year + "/" + s.Month
	}
	return s.Year
}

// ReportType determines which aggregate runs and which renderer output is
// produced for a request.
type ReportType int

const (
	// YearSummary reports yearly extremes.
	YearSummary ReportType = iota
	// MonthlyAverage reports the month's average high and low.
	MonthlyAverage
	// SingleLineChart draws one combined bar per day.
	SingleLineChart
	// TwoLineChart draws separate high and low bars per day.
	TwoLineChart
)

// ReportTypes lists every report type in CLI output order.
var ReportTypes = []ReportType{YearSummary, MonthlyAverage, SingleLineChart, TwoLineChart}

func (t ReportType) String() string {
	switch t {
	case YearSummary:
		return "year_summary"
	case MonthlyAverage:
		return "monthly_average"
	case SingleLineChart:
		return "single_line_chart"
	case TwoLineChart:
		return "two_line_chart"
	}
	return fmt.Sprintf("report_type(%d)", int(t))
}

// MonthScoped reports whether the type takes a year/month scope.
func (t ReportType) MonthScoped() bool {
	return t != YearSummary
}

// IsChart reports whether the type renders a per-day series.
func (t ReportType) IsChart() bool {
	return t == SingleLineChart || t == TwoLineChart
}
