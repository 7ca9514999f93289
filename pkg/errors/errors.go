// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package errors provides structured error types for the weather analyzer.
//
// The taxonomy mirrors how failures propagate through a report request:
//
//   - MalformedRecordError: a source row could not be parsed. It aborts the
//     file being read and the request that asked for it.
//   - ErrEmptyReadingSet: an aggregate was requested over zero readings.
//   - ErrNoData: a scope has nothing to report. This is an outcome, not a
//     failure; it is only used to classify log lines.
//   - InvalidPathError: the data directory does not exist.
//   - ScopeError: a -e/-a/-s/-c value is not a valid year or year/month.
//   - ConfigError: a configuration value is invalid.
//
// # Example Usage
//
//	err := errors.NewMalformedRecordError("lahore_2011_Jun.csv", 4, "T. Max oF/oC", "98", fmt.Errorf("missing '/'"))
//	if errors.IsMalformedRecordError(err) {
//	    log.Printf("bad row: %v", err)
//	}
//
//	var mre *errors.MalformedRecordError
//	if errors.As(err, &mre) {
//	    log.Printf("failed file: %s line %d", mre.File, mre.Line)
//	}
package errors

import (
	"errors"
	"fmt"
)

// MalformedRecordError represents a source row that could not be parsed.
type MalformedRecordError struct {
	File  string // Source file (empty when parsing a row outside a file)
	Line  int    // 1-based line number in File (0 if unknown)
	Field string // Column that failed
	Value string // Raw value of the column
	Err   error  // Underlying error
}

func (e *MalformedRecordError) Error() string {
	loc := ""
	if e.File != "" {
		loc = fmt.Sprintf(" (%s:%d)", e.File, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("malformed record%s: field %q value %q: %v", loc, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("malformed record%s: field %q value %q", loc, e.Field, e.Value)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// NewMalformedRecordError creates a new malformed record error.
func NewMalformedRecordError(file string, line int, field, value string, err error) *MalformedRecordError {
	return &MalformedRecordError{File: file, Line: line, Field: field, Value: value, Err: err}
}

// IsMalformedRecordError checks if an error is a MalformedRecordError.
func IsMalformedRecordError(err error) bool {
	var mre *MalformedRecordError
	return errors.As(err, &mre)
}

// InvalidPathError represents a data directory that cannot be used.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid path %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid path %q: not a directory", e.Path)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// NewInvalidPathError creates a new invalid path error.
func NewInvalidPathError(path string, err error) *InvalidPathError {
	return &InvalidPathError{Path: path, Err: err}
}

// IsInvalidPathError checks if an error is an InvalidPathError.
func IsInvalidPathError(err error) bool {
	var ipe *InvalidPathError
	return errors.As(err, &ipe)
}

// ScopeError represents a report scope argument that could not be parsed.
type ScopeError struct {
	Flag   string // CLI flag the value came from (e.g. "-s")
	Value  string // Raw value
	Reason string // Why parsing failed
}

func (e *ScopeError) Error() string {
	if e.Flag != "" {
		return fmt.Sprintf("invalid scope %q for %s: %s", e.Value, e.Flag, e.Reason)
	}
	return fmt.Sprintf("invalid scope %q: %s", e.Value, e.Reason)
}

// NewScopeError creates a new scope error.
func NewScopeError(flag, value, reason string) *ScopeError {
	return &ScopeError{Flag: flag, Value: value, Reason: reason}
}

// IsScopeError checks if an error is a ScopeError.
func IsScopeError(err error) bool {
	var se *ScopeError
	return errors.As(err, &se)
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field string // Configuration field that caused the error
	Value string // Invalid value (optional)
	Err   error  // Underlying error or description
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("config error in field %q (value=%q): %v", e.Field, e.Value, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("config error in field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config error in field %q", e.Field)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(field string, value string, err error) *ConfigError {
	return &ConfigError{Field: field, Value: value, Err: err}
}

// IsConfigError checks if an error is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Sentinel errors for common conditions
var (
	// ErrEmptyReadingSet indicates an aggregate was requested over no readings
	ErrEmptyReadingSet = errors.New("empty reading set")

	// ErrNoData indicates a scope has no cached readings and no source files
	ErrNoData = errors.New("readings not exist")

	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")
)
