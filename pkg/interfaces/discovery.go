// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package interfaces

// FileLocator defines the interface for finding source files on disk.
type FileLocator interface {
	// FindFiles returns the files under rootDir for year and month.
	// An empty month matches every month; no match is not an error.
	FindFiles(rootDir, year, month string) ([]string, error)
}
