// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package weather

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	werrors "github.com/soothill/weather-analyzer/pkg/errors"
	"github.com/soothill/weather-analyzer/pkg/logger"
	"github.com/soothill/weather-analyzer/pkg/metrics"
	"github.com/soothill/weather-analyzer/pkg/util"
)

// ReadFile parses every data row of a CSV observation file. The first row is
// the header. A malformed row aborts the whole file: the returned slice is nil
// and the error is a *errors.MalformedRecordError carrying file and line.
func ReadFile(path string, opts ParseOptions) ([]Reading, error) {
	f, err := util.OpenFileSafely(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weather file: %w", err)
	}
	defer func() { _ = f.Close() }()

	readings, err := Read(f, filepath.Base(path), opts)
	if err != nil {
		return nil, err
	}

	metrics.FilesParsedTotal.Inc()
	metrics.RecordsParsedTotal.Add(float64(len(readings)))
	logger.Debug().
		Str("file", filepath.Base(path)).
		Int("readings", len(readings)).
		Msg("Parsed weather file")

	return readings, nil
}

// Read parses CSV observation rows from r. name labels errors.
func Read(r io.Reader, name string, opts ParseOptions) ([]Reading, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		metrics.MalformedRecordsTotal.Inc()
		return nil, werrors.NewMalformedRecordError(name, 1, "", "", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var readings []Reading
	row := make(map[string]string, len(header))
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			metrics.MalformedRecordsTotal.Inc()
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, werrors.NewMalformedRecordError(name, line, "", "", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}

		clear(row)
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}

		reading, err := ParseRecord(row, opts)
		if err != nil {
			metrics.MalformedRecordsTotal.Inc()
			var mre *werrors.MalformedRecordError
			if errors.As(err, &mre) {
				mre.File = name
				mre.Line = line
			}
			return nil, err
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
