// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
		wantErr  bool
	}{
		{"debug", "debug", zerolog.DebugLevel, false},
		{"info", "info", zerolog.InfoLevel, false},
		{"empty defaults to info", "", zerolog.InfoLevel, false},
		{"warn", "warn", zerolog.WarnLevel, false},
		{"warning", "warning", zerolog.WarnLevel, false},
		{"error", "error", zerolog.ErrorLevel, false},
		{"fatal", "fatal", zerolog.FatalLevel, false},
		{"panic", "panic", zerolog.PanicLevel, false},
		{"invalid defaults to info", "invalid", zerolog.InfoLevel, true},
		{"uppercase", "DEBUG", zerolog.DebugLevel, false},
		{"mixed case", "InFo", zerolog.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := parseLogLevel(tt.level)
			if level != tt.expected {
				t.Errorf("parseLogLevel(%s) = %v, want %v", tt.level, level, tt.expected)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("parseLogLevel(%s) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
		})
	}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		Initialize(tt.level)
		if got := log.GetLevel(); got != tt.want {
			t.Errorf("Initialize(%q) level = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLogFunctions(t *testing.T) {
	var buf bytes.Buffer
	Initialize("debug")
	SetOutput(&buf)

	tests := []struct {
		name    string
		logFunc func() *zerolog.Event
		message string
	}{
		{"debug", Debug, "debug message"},
		{"info", Info, "info message"},
		{"warn", Warn, "warn message"},
		{"error", Error, "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			event := tt.logFunc()
			if event == nil {
				t.Fatalf("%s() returned nil event", tt.name)
			}
			event.Msg(tt.message)

			if !strings.Contains(buf.String(), tt.message) {
				t.Errorf("%s() output should contain message %q, got %q", tt.name, tt.message, buf.String())
			}
		})
	}
}

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"info logs at info level", "info", "info", true},
		{"debug filtered at info level", "info", "debug", false},
		{"warn logs at info level", "info", "warn", true},
		{"debug logs at debug level", "debug", "debug", true},
		{"info filtered at error level", "error", "info", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Initialize(tt.configLevel)
			SetOutput(&buf)

			message := "test message for filtering"
			switch tt.logLevel {
			case "debug":
				Debug().Msg(message)
			case "info":
				Info().Msg(message)
			case "warn":
				Warn().Msg(message)
			}

			hasMessage := strings.Contains(buf.String(), message)
			if hasMessage != tt.shouldLog {
				t.Errorf("level %s with config %s: logged = %v, want %v", tt.logLevel, tt.configLevel, hasMessage, tt.shouldLog)
			}
		})
	}
}

func TestAttach(t *testing.T) {
	var buf bytes.Buffer
	Initialize("info")
	Attach("run_id", "abc-123")
	SetOutput(&buf)

	Info().Msg("with run id")

	output := buf.String()
	if !strings.Contains(output, "run_id") || !strings.Contains(output, "abc-123") {
		t.Errorf("Attach() field missing from output: %s", output)
	}
}
