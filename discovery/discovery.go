// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package discovery locates weather observation files on local disk.
//
// Source files are named "<station>_<year>_<month>.<ext>", for example
// "lahore_2011_Jun.csv". A Locator turns a year and optional month into a
// glob pattern under a root directory and returns the matching paths.
//
// # Month Segment
//
// Two filename conventions are supported:
//   - MonthAbbrev: English three-letter abbreviation ("Jun"). This is the
//     default and matches the files shipped by the observation stations.
//     The abbreviation is compared case-insensitively, so "lahore_2011_JUN.csv"
//     and "lahore_2011_jun.csv" are found too.
//   - MonthNumeric: two-digit month ("06").
//
// An empty month (or "*") matches every month of the year. The year must be
// four digits; it is never passed to the glob as a pattern.
//
// # Example Usage
//
//	loc := discovery.NewLocator(discovery.Options{MonthStyle: discovery.MonthAbbrev})
//	files, err := loc.FindFiles("/data/weather", "2011", "06")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range files {
//	    fmt.Println(f)
//	}
package discovery

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/soothill/weather-analyzer/pkg/interfaces"
	"github.com/soothill/weather-analyzer/pkg/logger"
	"github.com/soothill/weather-analyzer/pkg/metrics"
)

// DefaultExtension is the source file extension used when none is configured.
const DefaultExtension = ".csv"

// anyMonth is the glob segment matching every month.
const anyMonth = "*"

// MonthStyle selects how the month appears in source filenames.
type MonthStyle int

const (
	// MonthAbbrev names months "Jan".."Dec".
	MonthAbbrev MonthStyle = iota
	// MonthNumeric names months "01".."12".
	MonthNumeric
)

// ParseMonthStyle converts a config value ("abbrev" or "numeric").
func ParseMonthStyle(s string) (MonthStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abbrev":
		return MonthAbbrev, nil
	case "numeric":
		return MonthNumeric, nil
	default:
		return MonthAbbrev, fmt.Errorf("unknown month style %q (want abbrev or numeric)", s)
	}
}

func (m MonthStyle) String() string {
	if m == MonthNumeric {
		return "numeric"
	}
	return "abbrev"
}

// Options configures a Locator.
type Options struct {
	MonthStyle MonthStyle
	Extension  string // including the leading dot; DefaultExtension if empty
}

// globMeta are the characters filepath.Glob treats as pattern syntax.
const globMeta = `*?[\`

// Locator finds source files for a year or a month of a year.
type Locator struct {
	style MonthStyle
	ext   string
}

var _ interfaces.FileLocator = (*Locator)(nil)

// NewLocator creates a new file locator
func NewLocator(opts Options) *Locator {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Locator{
		style: opts.MonthStyle,
		ext:   ext,
	}
}

// FindFiles returns the files under rootDir for year and month, in directory
// listing order. month may be "", "*", "6" or "06". No match is not an error;
// only a malformed year, month or extension is.
func (l *Locator) FindFiles(rootDir, year, month string) ([]string, error) {
	pattern, err := l.Pattern(rootDir, year, month)
	if err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob %q: %w", pattern, err)
	}

	if seg, _ := l.MonthSegment(month); l.style == MonthAbbrev && seg != anyMonth {
		matches = l.keepMonth(matches, seg)
	}

	metrics.FilesLocatedTotal.Add(float64(len(matches)))
	logger.Debug().
		Str("pattern", pattern).
		Int("files", len(matches)).
		Msg("Located weather files")

	return matches, nil
}

// Pattern builds the glob used by FindFiles. An abbreviated month becomes
// "???" in the glob and is checked by FindFiles after listing.
func (l *Locator) Pattern(rootDir, year, month string) (string, error) {
	if len(year) != 4 || strings.Trim(year, "0123456789") != "" {
		return "", fmt.Errorf("invalid year %q: want four digits", year)
	}
	if strings.ContainsAny(l.ext, globMeta) {
		return "", fmt.Errorf("invalid extension %q: contains glob syntax", l.ext)
	}

	seg, err := l.MonthSegment(month)
	if err != nil {
		return "", err
	}
	if l.style == MonthAbbrev && seg != anyMonth {
		seg = "???"
	}
	name := fmt.Sprintf("*%s_%s%s", year, seg, l.ext)
	return filepath.Join(rootDir, name), nil
}

// keepMonth drops matches whose month segment is not abbr under Unicode case
// folding.
func (l *Locator) keepMonth(matches []string, abbr string) []string {
	fold := cases.Fold()
	want := fold.String(abbr)

	kept := matches[:0]
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), l.ext)
		if len(name) < len(abbr) {
			continue
		}
		if fold.String(name[len(name)-len(abbr):]) == want {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// MonthSegment renders month in the configured filename style.
func (l *Locator) MonthSegment(month string) (string, error) {
	month = strings.TrimSpace(month)
	if month == "" || month == anyMonth {
		return anyMonth, nil
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", fmt.Errorf("invalid month %q", month)
	}

	if l.style == MonthNumeric {
		return fmt.Sprintf("%02d", m), nil
	}
	return time.Month(m).String()[:3], nil
}
