// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package report

import (
	"github.com/soothill/weather-analyzer/pkg/interfaces"
	"github.com/soothill/weather-analyzer/weather"
)

// FileLoader parses CSV observation files with fixed parse options.
type FileLoader struct {
	opts weather.ParseOptions
}

var _ interfaces.ReadingLoader = (*FileLoader)(nil)

// NewFileLoader creates a loader for the given parse options.
func NewFileLoader(opts weather.ParseOptions) *FileLoader {
	return &FileLoader{opts: opts}
}

// LoadFile parses path. A malformed row yields no readings and an error.
func (l *FileLoader) LoadFile(path string) ([]weather.Reading, error) {
	return weather.ReadFile(path, l.opts)
}
