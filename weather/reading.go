// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package weather defines the daily observation model and the record parser
// that turns raw CSV rows into readings.
//
// # Canonical Dates
//
// Every Reading carries its date as a fixed-width YYYY-MM-DD string no matter
// which layout the source file used. Scope matching elsewhere in the module
// relies on that: "is this reading in June 2011" is a substring test for
// "2011-06-" rather than a date parse. NewReading and ParseRecord both refuse
// to build a Reading whose date is not in canonical form.
package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	werrors "github.com/soothill/weather-analyzer/pkg/errors"
)

const (
	// CanonicalDateLayout is the internal date format used for all comparisons.
	CanonicalDateLayout = "2006-01-02"
	// DefaultSourceDateLayout matches MM/DD/YYYY with optional zero padding.
	DefaultSourceDateLayout = "1/2/2006"

	canonicalDateLen = len(CanonicalDateLayout)
	tempPairSep      = "/"
)

// Source column names.
const (
	ColumnDate         = "Date"
	ColumnMaxTemp      = "T. Max oF/oC"
	ColumnMinTemp      = "T. Min oF/oC"
	ColumnMeanWind     = "Wind Speed (mph)"
	ColumnMaxWindSpeed = "Max Wind Speed (mph)"
)

// TempUnit selects which half of a compound "F/C" temperature field is used.
type TempUnit int

const (
	// Celsius selects the second half of the pair.
	Celsius TempUnit = iota
	// Fahrenheit selects the first half of the pair.
	Fahrenheit
)

// ParseTempUnit converts "F" or "C" (any case) to a TempUnit.
func ParseTempUnit(s string) (TempUnit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C":
		return Celsius, nil
	case "F":
		return Fahrenheit, nil
	default:
		return Celsius, fmt.Errorf("unknown temperature unit %q (want F or C)", s)
	}
}

// Symbol returns the unit suffix printed after temperatures.
func (u TempUnit) Symbol() string {
	switch u {
	case Fahrenheit:
		return "F"
	case Celsius:
		return "C"
	}
	return "?"
}

func (u TempUnit) String() string {
	return u.Symbol()
}

// Reading is one calendar day's observation. Readings are values; nothing
// mutates one after construction.
type Reading struct {
	Date          string // canonical YYYY-MM-DD
	MaxTemp       float64
	MinTemp       float64
	MeanWindSpeed float64 // mph
	MaxWindSpeed  float64 // mph
}

// NewReading builds a Reading, rejecting dates that are not canonical.
func NewReading(date string, maxTemp, minTemp, meanWind, maxWind float64) (Reading, error) {
	if err := checkCanonicalDate(date); err != nil {
		return Reading{}, err
	}
	return Reading{
		Date:          date,
		MaxTemp:       maxTemp,
		MinTemp:       minTemp,
		MeanWindSpeed: meanWind,
		MaxWindSpeed:  maxWind,
	}, nil
}

// Time parses the canonical date. It cannot fail for readings built by this
// package.
func (r Reading) Time() time.Time {
	t, _ := time.Parse(CanonicalDateLayout, r.Date)
	return t
}

// Day returns the two-digit day of month.
func (r Reading) Day() string {
	return r.Date[8:10]
}

// InYear reports whether the reading falls in the scope's year.
func (r Reading) InYear(s Scope) bool {
	return strings.Contains(r.Date, s.YearMarker())
}

// InMonth reports whether the reading falls in the scope's year and month.
func (r Reading) InMonth(s Scope) bool {
	return strings.Contains(r.Date, s.MonthMarker())
}

// ParseOptions holds the process-wide parse configuration.
type ParseOptions struct {
	Unit             TempUnit
	SourceDateFormat string // Go time layout
}

// DefaultParseOptions returns Celsius with MM/DD/YYYY source dates.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Unit: Celsius, SourceDateFormat: DefaultSourceDateLayout}
}

// ParseRecord converts one row, keyed by column name, into a Reading.
// Any failure is a *errors.MalformedRecordError without file position.
func ParseRecord(row map[string]string, opts ParseOptions) (Reading, error) {
	layout := opts.SourceDateFormat
	if layout == "" {
		layout = DefaultSourceDateLayout
	}

	rawDate, err := field(row, ColumnDate)
	if err != nil {
		return Reading{}, err
	}
	t, err := time.Parse(layout, rawDate)
	if err != nil {
		return Reading{}, werrors.NewMalformedRecordError("", 0, ColumnDate, rawDate, err)
	}
	date := t.Format(CanonicalDateLayout)
	if err := checkCanonicalDate(date); err != nil {
		return Reading{}, werrors.NewMalformedRecordError("", 0, ColumnDate, rawDate, err)
	}

	maxTemp, err := tempField(row, ColumnMaxTemp, opts.Unit)
	if err != nil {
		return Reading{}, err
	}
	minTemp, err := tempField(row, ColumnMinTemp, opts.Unit)
	if err != nil {
		return Reading{}, err
	}
	meanWind, err := floatField(row, ColumnMeanWind)
	if err != nil {
		return Reading{}, err
	}
	maxWind, err := floatField(row, ColumnMaxWindSpeed)
	if err != nil {
		return Reading{}, err
	}

	return Reading{
		Date:          date,
		MaxTemp:       maxTemp,
		MinTemp:       minTemp,
		MeanWindSpeed: meanWind,
		MaxWindSpeed:  maxWind,
	}, nil
}

func field(row map[string]string, name string) (string, error) {
	v, ok := row[name]
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", werrors.NewMalformedRecordError("", 0, name, v, fmt.Errorf("required field is missing"))
	}
	return v, nil
}

func floatField(row map[string]string, name string) (float64, error) {
	raw, err := field(row, name)
	if err != nil {
		return 0, err
	}
	return parseFinite(name, raw, raw)
}

// tempField splits "<F>/<C>" and parses the half selected by unit.
func tempField(row map[string]string, name string, unit TempUnit) (float64, error) {
	raw, err := field(row, name)
	if err != nil {
		return 0, err
	}
	parts := strings.Split(raw, tempPairSep)
	if len(parts) != 2 {
		return 0, werrors.NewMalformedRecordError("", 0, name, raw,
			fmt.Errorf("want a Fahrenheit/Celsius pair separated by %q", tempPairSep))
	}
	half := parts[1]
	if unit == Fahrenheit {
		half = parts[0]
	}
	return parseFinite(name, raw, strings.TrimSpace(half))
}

// parseFinite parses s as a float. NaN and infinities are rejected because
// ParseFloat accepts their spellings.
func parseFinite(name, raw, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, werrors.NewMalformedRecordError("", 0, name, raw, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, werrors.NewMalformedRecordError("", 0, name, raw, fmt.Errorf("value is not a finite number"))
	}
	return f, nil
}

func checkCanonicalDate(date string) error {
	if len(date) != canonicalDateLen {
		return fmt.Errorf("date %q is not %d characters wide", date, canonicalDateLen)
	}
	if _, err := time.Parse(CanonicalDateLayout, date); err != nil {
		return fmt.Errorf("date %q is not in %s form: %w", date, CanonicalDateLayout, err)
	}
	return nil
}
