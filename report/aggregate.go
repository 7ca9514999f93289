// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package report turns a reading set into the aggregate a report type needs
// and drives a request from scope resolution to rendered output.
package report

import (
	"fmt"
	"math"

	werrors "github.com/soothill/weather-analyzer/pkg/errors"
	"github.com/soothill/weather-analyzer/weather"
)

// Result is the output of Compute. Exactly one of Summary, Average or Series
// is set, matching Type.
type Result struct {
	Type    weather.ReportType
	Summary weather.YearExtremes
	Average weather.MonthAverages
	Series  []weather.Reading
}

// Compute runs the aggregate for reportType over readings.
func Compute(readings []weather.Reading, reportType weather.ReportType) (Result, error) {
	if len(readings) == 0 {
		return Result{}, werrors.ErrEmptyReadingSet
	}

	res := Result{Type: reportType}
	switch reportType {
	case weather.YearSummary:
		s, err := ComputeYearSummary(readings)
		if err != nil {
			return Result{}, err
		}
		res.Summary = s
	case weather.MonthlyAverage:
		a, err := ComputeMonthlyAverage(readings)
		if err != nil {
			return Result{}, err
		}
		res.Average = a
	case weather.SingleLineChart, weather.TwoLineChart:
		res.Series = readings
	default:
		return Result{}, fmt.Errorf("unknown report type %v", reportType)
	}
	return res, nil
}

// ComputeYearSummary finds the yearly extremes. On ties the earliest reading
// in slice order wins.
func ComputeYearSummary(readings []weather.Reading) (weather.YearExtremes, error) {
	if len(readings) == 0 {
		return weather.YearExtremes{}, werrors.ErrEmptyReadingSet
	}

	s := weather.YearExtremes{
		Highest:         readings[0],
		Lowest:          readings[0],
		FastestWind:     readings[0],
		SlowestMeanWind: readings[0],
	}
	for _, r := range readings[1:] {
		if r.MaxTemp > s.Highest.MaxTemp {
			s.Highest = r
		}
		if r.MinTemp < s.Lowest.MinTemp {
			s.Lowest = r
		}
		if r.MaxWindSpeed > s.FastestWind.MaxWindSpeed {
			s.FastestWind = r
		}
		if r.MeanWindSpeed < s.SlowestMeanWind.MeanWindSpeed {
			s.SlowestMeanWind = r
		}
	}
	return s, nil
}

// ComputeMonthlyAverage averages the daily highs and lows, rounding half to
// even.
func ComputeMonthlyAverage(readings []weather.Reading) (weather.MonthAverages, error) {
	if len(readings) == 0 {
		return weather.MonthAverages{}, werrors.ErrEmptyReadingSet
	}

	var high, low float64
	for _, r := range readings {
		high += r.MaxTemp
		low += r.MinTemp
	}
	n := float64(len(readings))
	return weather.MonthAverages{
		HighestAverage: int(math.RoundToEven(high / n)),
		LowestAverage:  int(math.RoundToEven(low / n)),
	}, nil
}
