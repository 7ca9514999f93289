// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestNewLocator(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantExt string
	}{
		{"default extension", Options{}, ".csv"},
		{"custom extension", Options{Extension: ".txt"}, ".txt"},
		{"extension without dot", Options{Extension: "tsv"}, ".tsv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := NewLocator(tt.opts)
			if loc == nil {
				t.Fatal("NewLocator() returned nil")
			}
			if loc.ext != tt.wantExt {
				t.Errorf("ext = %q, want %q", loc.ext, tt.wantExt)
			}
		})
	}
}

func TestParseMonthStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    MonthStyle
		wantErr bool
	}{
		{"", MonthAbbrev, false},
		{"abbrev", MonthAbbrev, false},
		{"Numeric", MonthNumeric, false},
		{"roman", MonthAbbrev, true},
	}

	for _, tt := range tests {
		got, err := ParseMonthStyle(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMonthStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMonthStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLocator_MonthSegment(t *testing.T) {
	tests := []struct {
		name    string
		style   MonthStyle
		month   string
		want    string
		wantErr bool
	}{
		{"abbrev padded", MonthAbbrev, "06", "Jun", false},
		{"abbrev unpadded", MonthAbbrev, "6", "Jun", false},
		{"abbrev december", MonthAbbrev, "12", "Dec", false},
		{"numeric", MonthNumeric, "6", "06", false},
		{"any month empty", MonthAbbrev, "", "*", false},
		{"any month star", MonthNumeric, "*", "*", false},
		{"month zero", MonthAbbrev, "0", "", true},
		{"month thirteen", MonthNumeric, "13", "", true},
		{"not a number", MonthAbbrev, "June", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := NewLocator(Options{MonthStyle: tt.style})
			got, err := loc.MonthSegment(tt.month)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MonthSegment(%q) error = %v, wantErr %v", tt.month, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("MonthSegment(%q) = %q, want %q", tt.month, got, tt.want)
			}
		})
	}
}

func TestLocator_Pattern(t *testing.T) {
	tests := []struct {
		name  string
		style MonthStyle
		month string
		want  string
	}{
		{"abbrev month", MonthAbbrev, "06", "*2011_???.csv"},
		{"numeric month", MonthNumeric, "6", "*2011_06.csv"},
		{"whole year", MonthAbbrev, "", "*2011_*.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLocator(Options{MonthStyle: tt.style}).Pattern("/data", "2011", tt.month)
			if err != nil {
				t.Fatalf("Pattern() error = %v", err)
			}
			if want := filepath.Join("/data", tt.want); got != want {
				t.Errorf("Pattern() = %q, want %q", got, want)
			}
		})
	}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("Date\n"), 0o600); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}
}

func TestLocator_FindFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"lahore_2011_Jun.csv",
		"lahore_2011_Jul.csv",
		"murree_2011_Jun.csv",
		"lahore_2012_Jun.csv",
		"lahore_2011_Jun.txt",
		"lahore_12011_Jun.csv",
	)

	loc := NewLocator(Options{})

	tests := []struct {
		name  string
		year  string
		month string
		want  []string
	}{
		{
			name:  "one month across stations",
			year:  "2011",
			month: "6",
			want:  []string{"lahore_12011_Jun.csv", "lahore_2011_Jun.csv", "murree_2011_Jun.csv"},
		},
		{
			name:  "whole year",
			year:  "2012",
			month: "",
			want:  []string{"lahore_2012_Jun.csv"},
		},
		{
			name:  "no files",
			year:  "1999",
			month: "01",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := loc.FindFiles(dir, tt.year, tt.month)
			if err != nil {
				t.Fatalf("FindFiles() error = %v", err)
			}
			var got []string
			for _, f := range files {
				got = append(got, filepath.Base(f))
			}
			sort.Strings(got)
			if len(got) != len(tt.want) {
				t.Fatalf("FindFiles() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FindFiles()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLocator_FindFilesMonthCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"lahore_2011_JUN.csv",
		"murree_2011_jun.csv",
		"dubai_2011_Jun.csv",
		"dubai_2011_Jul.csv",
		"dubai_2011_JUL.csv",
	)

	files, err := NewLocator(Options{}).FindFiles(dir, "2011", "6")
	if err != nil {
		t.Fatalf("FindFiles() error = %v", err)
	}
	var got []string
	for _, f := range files {
		got = append(got, filepath.Base(f))
	}
	sort.Strings(got)

	want := []string{"dubai_2011_Jun.csv", "lahore_2011_JUN.csv", "murree_2011_jun.csv"}
	if len(got) != len(want) {
		t.Fatalf("FindFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLocator_FindFilesNumeric(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "station_2020_06.csv", "station_2020_Jun.csv")

	files, err := NewLocator(Options{MonthStyle: MonthNumeric}).FindFiles(dir, "2020", "06")
	if err != nil {
		t.Fatalf("FindFiles() error = %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "station_2020_06.csv" {
		t.Errorf("FindFiles() = %v, want only the numeric file", files)
	}
}

func TestLocator_FindFilesErrors(t *testing.T) {
	loc := NewLocator(Options{})

	if _, err := loc.FindFiles(t.TempDir(), "2011", "13"); err == nil {
		t.Error("FindFiles() with month 13 should fail")
	}
	for _, year := range []string{"[2011", "20?1", "201*", "11", "20111", ""} {
		if _, err := loc.FindFiles(t.TempDir(), year, "06"); err == nil {
			t.Errorf("FindFiles() with year %q should fail", year)
		}
	}
	if _, err := NewLocator(Options{Extension: ".c[sv"}).FindFiles(t.TempDir(), "2011", "06"); err == nil {
		t.Error("FindFiles() with glob syntax in the extension should fail")
	}

	files, err := loc.FindFiles(filepath.Join(t.TempDir(), "missing"), "2011", "06")
	if err != nil {
		t.Errorf("FindFiles() on missing dir error = %v, want nil", err)
	}
	if len(files) != 0 {
		t.Errorf("FindFiles() on missing dir = %v, want none", files)
	}
}
