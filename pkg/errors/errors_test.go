// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMalformedRecordError(t *testing.T) {
	baseErr := fmt.Errorf("missing '/' separator")
	err := NewMalformedRecordError("lahore_2011_Jun.csv", 4, "T. Max oF/oC", "98", baseErr)

	// Test Error() method
	errMsg := err.Error()
	if !strings.Contains(errMsg, "malformed record") || !strings.Contains(errMsg, "lahore_2011_Jun.csv:4") {
		t.Errorf("Error() = %q, want message containing 'malformed record' and file location", errMsg)
	}

	// Test Unwrap()
	if !errors.Is(err, baseErr) {
		t.Error("errors.Is() should find wrapped error")
	}

	// Test IsMalformedRecordError()
	if !IsMalformedRecordError(err) {
		t.Error("IsMalformedRecordError() should return true for MalformedRecordError")
	}

	// Test errors.As()
	var mre *MalformedRecordError
	if !errors.As(err, &mre) {
		t.Fatal("errors.As() should extract MalformedRecordError")
	}
	if mre.Field != "T. Max oF/oC" {
		t.Errorf("MalformedRecordError.Field = %q, want %q", mre.Field, "T. Max oF/oC")
	}
	if mre.Line != 4 {
		t.Errorf("MalformedRecordError.Line = %d, want 4", mre.Line)
	}
}

func TestMalformedRecordError_NoFile(t *testing.T) {
	err := NewMalformedRecordError("", 0, "Date", "", nil)
	if strings.Contains(err.Error(), "(") {
		t.Errorf("Error() = %q, should not include a file location", err.Error())
	}
}

func TestInvalidPathError(t *testing.T) {
	err := NewInvalidPathError("/no/such/dir", nil)

	errMsg := err.Error()
	if !strings.Contains(errMsg, "/no/such/dir") || !strings.Contains(errMsg, "not a directory") {
		t.Errorf("Error() = %q, want message containing path and reason", errMsg)
	}

	if !IsInvalidPathError(err) {
		t.Error("IsInvalidPathError() should return true for InvalidPathError")
	}

	wrapped := NewInvalidPathError("/tmp/x", fmt.Errorf("permission denied"))
	if !strings.Contains(wrapped.Error(), "permission denied") {
		t.Errorf("Error() = %q, want underlying error", wrapped.Error())
	}
}

func TestScopeError(t *testing.T) {
	err := NewScopeError("-s", "2011/13", "month must be between 1 and 12")

	errMsg := err.Error()
	if !strings.Contains(errMsg, "-s") || !strings.Contains(errMsg, "2011/13") {
		t.Errorf("Error() = %q, want message containing flag and value", errMsg)
	}

	if !IsScopeError(err) {
		t.Error("IsScopeError() should return true for ScopeError")
	}

	var se *ScopeError
	if !errors.As(fmt.Errorf("parse: %w", err), &se) {
		t.Fatal("errors.As() should extract ScopeError through wrapping")
	}
	if se.Reason != "month must be between 1 and 12" {
		t.Errorf("ScopeError.Reason = %q", se.Reason)
	}
}

func TestConfigError(t *testing.T) {
	baseErr := fmt.Errorf("must be F or C")
	err := NewConfigError("units.temperature", "K", baseErr)

	// Test Error() method
	errMsg := err.Error()
	if !strings.Contains(errMsg, "config") || !strings.Contains(errMsg, "units.temperature") {
		t.Errorf("Error() = %q, want message containing 'config' and 'units.temperature'", errMsg)
	}

	// Test IsConfigError()
	if !IsConfigError(err) {
		t.Error("IsConfigError() should return true for ConfigError")
	}

	// Test errors.As()
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Error("errors.As() should extract ConfigError")
	}
	if ce.Field != "units.temperature" {
		t.Errorf("ConfigError.Field = %q, want %q", ce.Field, "units.temperature")
	}
}

func TestSentinelErrors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"ErrEmptyReadingSet", ErrEmptyReadingSet},
		{"ErrNoData", ErrNoData},
		{"ErrInvalidConfig", ErrInvalidConfig},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Error() == "" {
				t.Errorf("%s has empty error message", tc.name)
			}

			wrapped := fmt.Errorf("operation failed: %w", tc.err)
			if !errors.Is(wrapped, tc.err) {
				t.Errorf("errors.Is() should find wrapped %s", tc.name)
			}
		})
	}
}

func TestErrorsWithoutUnderlyingError(t *testing.T) {
	configErr := NewConfigError("field", "", nil)
	if configErr.Error() == "" {
		t.Error("ConfigError without underlying error should have message")
	}

	scopeErr := NewScopeError("", "x", "not a year")
	if scopeErr.Error() == "" {
		t.Error("ScopeError without flag should have message")
	}
}

func TestIsHelperWithWrongType(t *testing.T) {
	genericErr := fmt.Errorf("generic error")

	if IsMalformedRecordError(genericErr) {
		t.Error("IsMalformedRecordError() should return false for generic error")
	}

	if IsInvalidPathError(genericErr) {
		t.Error("IsInvalidPathError() should return false for generic error")
	}

	if IsScopeError(genericErr) {
		t.Error("IsScopeError() should return false for generic error")
	}

	if IsConfigError(genericErr) {
		t.Error("IsConfigError() should return false for generic error")
	}
}
