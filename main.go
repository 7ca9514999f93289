// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/soothill/weather-analyzer/app"
	"github.com/soothill/weather-analyzer/config"
	werrors "github.com/soothill/weather-analyzer/pkg/errors"
	"github.com/soothill/weather-analyzer/pkg/logger"
	"github.com/soothill/weather-analyzer/pkg/metrics"
	"github.com/soothill/weather-analyzer/report"
	"github.com/soothill/weather-analyzer/weather"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usageHeader = `Usage: weather-analyzer [flags] <path> [flags]

Reports on the daily weather files found in <path>. Reports are printed in
the order -e, -a, -s, -c regardless of the order of the flags.

Flags:
`

// cliOptions holds the parsed command line.
type cliOptions struct {
	dataDir         string
	year            string // -e
	average         string // -a
	oneLine         string // -s
	twoLine         string // -c
	configPath      string
	validateConfig  bool
	metricsTextfile string
	logLevel        string
}

func main() {
	os.Exit(run(os.Args[1:], nil, os.Stderr))
}

// run executes the CLI and returns the process exit code. A nil stdout sends
// reports to a color-capable standard output.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if opts.validateConfig {
		out := stdout
		if out == nil {
			out = os.Stdout
		}
		return performConfigValidation(opts.configPath, out, stderr)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Initialize("error")
		logger.Error().Err(err).Msg("Failed to load configuration")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	level := cfg.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger.Initialize(level)

	requests, err := opts.requests()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if len(requests) == 0 {
		fmt.Fprintln(stderr, "Error: no report requested (use -e, -a, -s or -c)")
		return exitUsage
	}

	application, err := app.New(cfg, opts.dataDir, stdout)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create application")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if werrors.IsInvalidPathError(err) {
			return exitUsage
		}
		return exitError
	}
	logger.Attach("run_id", application.RunID())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	setupDebugSignalHandlers(application)

	runErr := application.Run(ctx, requests)

	if opts.metricsTextfile != "" {
		if err := metrics.WriteTextfile(opts.metricsTextfile); err != nil {
			logger.Error().Err(err).Str("path", opts.metricsTextfile).Msg("Failed to write metrics")
			if runErr == nil {
				runErr = err
			}
		}
	}

	if runErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", runErr)
		return exitError
	}
	return exitOK
}

// parseArgs parses flags on either side of the single positional path.
func parseArgs(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}

	fs := flag.NewFlagSet("weather-analyzer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.year, "e", "", "Yearly report for `YYYY`")
	fs.StringVar(&opts.average, "a", "", "Monthly average report for `YYYY/MM`")
	fs.StringVar(&opts.oneLine, "s", "", "One line bar chart for `YYYY/MM`")
	fs.StringVar(&opts.twoLine, "c", "", "Two line bar chart for `YYYY/MM`")
	fs.StringVar(&opts.configPath, "config", "", "Path to optional YAML configuration file")
	fs.BoolVar(&opts.validateConfig, "validate-config", false, "Validate configuration file and exit")
	fs.StringVar(&opts.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
	fs.StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageHeader)
		fs.PrintDefaults()
	}

	rest := args
	var positional []string
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	if opts.validateConfig {
		if opts.configPath == "" {
			return nil, fmt.Errorf("-validate-config needs -config")
		}
		return opts, nil
	}

	switch len(positional) {
	case 0:
		return nil, werrors.NewInvalidPathError("", fmt.Errorf("missing data directory argument"))
	case 1:
		opts.dataDir = positional[0]
	default:
		return nil, fmt.Errorf("expected one data directory, got %d arguments", len(positional))
	}

	return opts, nil
}

// requests converts the report flags into requests in output order.
func (o *cliOptions) requests() ([]report.Request, error) {
	flags := []struct {
		flag  string
		value string
		typ   weather.ReportType
	}{
		{"-e", o.year, weather.YearSummary},
		{"-a", o.average, weather.MonthlyAverage},
		{"-s", o.oneLine, weather.SingleLineChart},
		{"-c", o.twoLine, weather.TwoLineChart},
	}

	var requests []report.Request
	for _, f := range flags {
		if f.value == "" {
			continue
		}

		var scope weather.Scope
		var err error
		if f.typ.MonthScoped() {
			scope, err = weather.ParseMonthScope(f.value)
		} else {
			scope, err = weather.ParseYearScope(f.value)
		}
		if err != nil {
			var se *werrors.ScopeError
			if errors.As(err, &se) {
				se.Flag = f.flag
			}
			return nil, err
		}
		requests = append(requests, report.Request{Scope: scope, Type: f.typ})
	}
	return requests, nil
}

// performConfigValidation validates the configuration file and returns exit code
func performConfigValidation(configPath string, stdout, stderr io.Writer) int {
	logger.Initialize("info")
	logger.Info().Str("path", configPath).Msg("Validating configuration file")

	if err := config.ValidateWithSchema(configPath); err != nil {
		logger.Error().Err(err).Msg("Configuration schema validation failed")
		fmt.Fprintf(stderr, "\nConfiguration validation FAILED\n%v\n", err)
		return exitError
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Configuration validation failed")
		fmt.Fprintf(stderr, "\nConfiguration validation FAILED\nError: %v\n\n", err)
		return exitError
	}

	fmt.Fprintln(stdout, "\nConfiguration validation PASSED")
	fmt.Fprintln(stdout, "\nConfiguration summary:")
	fmt.Fprintf(stdout, "  Temperature Unit: %s\n", cfg.TempUnit())
	fmt.Fprintf(stdout, "  Bar Style: %s\n", cfg.Chart.BarStyle)
	fmt.Fprintf(stdout, "  Source Date Format: %s\n", cfg.Dates.SourceFormat)
	fmt.Fprintf(stdout, "  Output Date Format: %s\n", cfg.Dates.OutputFormat)
	fmt.Fprintf(stdout, "  Month Style: %s\n", cfg.Files.MonthStyle)
	fmt.Fprintf(stdout, "  File Extension: %s\n", cfg.Files.Extension)
	fmt.Fprintf(stdout, "  Log Level: %s\n", cfg.Logging.Level)
	return exitOK
}
