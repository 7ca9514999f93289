// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package render prints reports and ANSI bar charts to a console.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-colorable"

	"github.com/soothill/weather-analyzer/pkg/interfaces"
	"github.com/soothill/weather-analyzer/weather"
)

// Color is an ANSI color used by the bar charts.
type Color int

const (
	// Reset restores the terminal's default color.
	Reset Color = iota
	// Blue draws low temperature bars.
	Blue
	// Pink draws day numbers and labels.
	Pink
	// Red draws high temperature bars.
	Red
)

// String returns the ANSI escape sequence for the color.
func (c Color) String() string {
	switch c {
	case Blue:
		return "\033[1;34m"
	case Pink:
		return "\033[1;35m"
	case Red:
		return "\033[1;31m"
	}
	return "\033[0m"
}

const (
	// DefaultBarStyle is the character repeated to draw a bar.
	DefaultBarStyle = "*"
	// DefaultOutputDateFormat renders report dates as "Jun 23".
	DefaultOutputDateFormat = "Jan 02"

	yearNoDataMsg  = "Yearly weather readings not exist"
	monthNoDataMsg = "Weather readings not exist"
)

// Options configures a Console.
type Options struct {
	Unit             weather.TempUnit
	BarStyle         string
	OutputDateFormat string // Go time layout
}

// Console writes human-readable reports. Successive reports are separated by
// a blank line.
type Console struct {
	out     io.Writer
	opts    Options
	written bool
}

var _ interfaces.Renderer = (*Console)(nil)

// Stdout returns a writer for standard output that understands ANSI colors
// on every platform.
func Stdout() io.Writer {
	return colorable.NewColorableStdout()
}

// NewConsole creates a renderer writing to out.
func NewConsole(out io.Writer, opts Options) *Console {
	if opts.BarStyle == "" {
		opts.BarStyle = DefaultBarStyle
	}
	if opts.OutputDateFormat == "" {
		opts.OutputDateFormat = DefaultOutputDateFormat
	}
	return &Console{out: out, opts: opts}
}

// YearReport prints the yearly extremes.
func (c *Console) YearReport(scope weather.Scope, s weather.YearExtremes) error {
	p := c.begin()
	unit := c.opts.Unit.Symbol()
	p.printf("Yearly report of %s:-\n\n", scope.Year)
	p.printf("Highest temperature: %s%s on %s\n", decimal(s.Highest.MaxTemp), unit, c.date(s.Highest))
	p.printf("Lowest temperature: %s%s on %s\n", decimal(s.Lowest.MinTemp), unit, c.date(s.Lowest))
	p.printf("Fastest wind speed: %s mph on %s\n", decimal(s.FastestWind.MaxWindSpeed), c.date(s.FastestWind))
	p.printf("Slowest mean wind speed: %s mph on %s\n", decimal(s.SlowestMeanWind.MeanWindSpeed), c.date(s.SlowestMeanWind))
	return p.err
}

// MonthlyReport prints the month's average high and low.
func (c *Console) MonthlyReport(scope weather.Scope, a weather.MonthAverages) error {
	p := c.begin()
	unit := c.opts.Unit.Symbol()
	p.printf("Monthly report of %s:-\n\n", monthTitle(scope))
	p.printf("Highest Average: %d%s\n", a.HighestAverage, unit)
	p.printf("Lowest Average: %d%s\n", a.LowestAverage, unit)
	return p.err
}

// OneLineChart prints one line per day: the low bar in blue followed by the
// high bar in red, then the low-high range.
func (c *Console) OneLineChart(scope weather.Scope, series []weather.Reading) error {
	p := c.begin()
	unit := c.opts.Unit.Symbol()
	p.printf("One line Bar Chart for %s:-\n\n", monthTitle(scope))
	for _, r := range series {
		p.printf("%s%s %s%s%s%s %s%d%s-%d%s%s\n",
			Pink, r.Day(),
			Blue, c.bar(r.MinTemp),
			Red, c.bar(r.MaxTemp),
			Pink, rounded(r.MinTemp), unit, rounded(r.MaxTemp), unit,
			Reset)
	}
	return p.err
}

// TwoLineChart prints two lines per day: the high bar in red, then the low
// bar in blue.
func (c *Console) TwoLineChart(scope weather.Scope, series []weather.Reading) error {
	p := c.begin()
	unit := c.opts.Unit.Symbol()
	p.printf("%sTwo line Bar Chart for %s:-\n\n", Reset, monthTitle(scope))
	for _, r := range series {
		p.printf("%s%s %s%s%s%d%s%s\n", Pink, r.Day(), Red, c.bar(r.MaxTemp), Pink, rounded(r.MaxTemp), unit, Reset)
		p.printf("%s%s %s%s%s%d%s%s\n", Pink, r.Day(), Blue, c.bar(r.MinTemp), Pink, rounded(r.MinTemp), unit, Reset)
	}
	return p.err
}

// NoData reports that scope has no readings.
func (c *Console) NoData(scope weather.Scope, _ weather.ReportType) error {
	p := c.begin()
	if scope.IsMonth() {
		p.printf("%s\n", monthNoDataMsg)
	} else {
		p.printf("%s\n", yearNoDataMsg)
	}
	return p.err
}

func (c *Console) begin() *printer {
	p := &printer{w: c.out}
	if c.written {
		p.printf("\n")
	}
	c.written = true
	return p
}

func (c *Console) date(r weather.Reading) string {
	return r.Time().Format(c.opts.OutputDateFormat)
}

// bar draws |v| rounded half to even. Non-finite values draw nothing.
func (c *Console) bar(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strings.Repeat(c.opts.BarStyle, int(math.RoundToEven(math.Abs(v))))
}

// decimal prints v with as many digits as it needs and at least one decimal
// place: 45 is "45.0" and 45.25 is "45.25".
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func rounded(v float64) int {
	return int(math.RoundToEven(v))
}

// monthTitle renders a month scope as "Jun 2011".
func monthTitle(scope weather.Scope) string {
	m := scope.TimeMonth()
	if m == 0 {
		return scope.Year
	}
	return fmt.Sprintf("%s %s", m.String()[:3], scope.Year)
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
