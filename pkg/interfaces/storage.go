// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package interfaces defines abstract interfaces for core system components.
// This package promotes loose coupling and testability by allowing
// dependency injection and easy mocking in tests.
package interfaces

import "github.com/soothill/weather-analyzer/weather"

// ReadingLoader defines the interface for parsing one source file.
// Implementations return no readings when any row is malformed.
type ReadingLoader interface {
	// LoadFile parses every reading in path
	LoadFile(path string) ([]weather.Reading, error)
}
