// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package util

import (
	"fmt"
	"os"
	"path/filepath"

	werrors "github.com/soothill/weather-analyzer/pkg/errors"
)

// OpenFileSafely opens a file for reading after cleaning and resolving the path.
func OpenFileSafely(path string) (*os.File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute path for %s: %w", path, err)
	}
	return os.Open(absPath) // #nosec G304
}

// ValidateDir returns the cleaned path if it names an existing directory.
func ValidateDir(path string) (string, error) {
	if path == "" {
		return "", werrors.NewInvalidPathError(path, fmt.Errorf("no directory given"))
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", werrors.NewInvalidPathError(path, err)
	}
	if !info.IsDir() {
		return "", werrors.NewInvalidPathError(path, nil)
	}
	return filepath.Clean(path), nil
}
