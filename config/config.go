// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package config provides configuration management for the weather analyzer.
//
// Configuration comes from three layers, later ones winning:
//  1. built-in defaults
//  2. an optional YAML file
//  3. environment variables, including any loaded from a .env file
//
// Configuration is read once at startup and never reloaded.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/soothill/weather-analyzer/discovery"
	werrors "github.com/soothill/weather-analyzer/pkg/errors"
	"github.com/soothill/weather-analyzer/render"
	"github.com/soothill/weather-analyzer/weather"
)

// DotEnvFile is the optional environment file read by Load.
const DotEnvFile = ".env"

var validate = newValidator()

// Config represents the application configuration
type Config struct {
	Units   UnitsConfig   `yaml:"units"`
	Chart   ChartConfig   `yaml:"chart"`
	Dates   DatesConfig   `yaml:"dates"`
	Files   FilesConfig   `yaml:"files"`
	Logging LoggingConfig `yaml:"logging"`
}

// UnitsConfig selects the temperature unit
type UnitsConfig struct {
	Temperature string `yaml:"temperature" validate:"oneof=F C f c"`
}

// ChartConfig holds bar chart settings
type ChartConfig struct {
	BarStyle string `yaml:"bar_style" validate:"required"`
}

// DatesConfig holds date layouts as Go reference-time layouts
type DatesConfig struct {
	SourceFormat string `yaml:"source_format" validate:"required"`
	OutputFormat string `yaml:"output_format" validate:"required"`
}

// FilesConfig holds source file naming settings
type FilesConfig struct {
	MonthStyle string `yaml:"month_style" validate:"oneof=abbrev numeric"`
	Extension  string `yaml:"extension" validate:"required,startswith=.,excludesall=*?["`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error fatal panic"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load builds the configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Apply environment variable overrides and defaults
	cfg.applyEnvironmentOverrides()
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// applyEnvironmentOverrides applies environment variable overrides to the configuration
func (c *Config) applyEnvironmentOverrides() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"WEATHER_TEMP_UNIT", &c.Units.Temperature},
		{"WEATHER_BAR_STYLE", &c.Chart.BarStyle},
		{"WEATHER_SOURCE_DATE_FORMAT", &c.Dates.SourceFormat},
		{"WEATHER_OUTPUT_DATE_FORMAT", &c.Dates.OutputFormat},
		{"WEATHER_MONTH_STYLE", &c.Files.MonthStyle},
		{"WEATHER_FILE_EXTENSION", &c.Files.Extension},
		{"LOG_LEVEL", &c.Logging.Level},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}

// setDefaults sets default values for configuration fields if not provided
func (c *Config) setDefaults() {
	if c.Units.Temperature == "" {
		c.Units.Temperature = "C"
	}
	if c.Chart.BarStyle == "" {
		c.Chart.BarStyle = render.DefaultBarStyle
	}
	if c.Dates.SourceFormat == "" {
		c.Dates.SourceFormat = weather.DefaultSourceDateLayout
	}
	if c.Dates.OutputFormat == "" {
		c.Dates.OutputFormat = render.DefaultOutputDateFormat
	}
	if c.Files.MonthStyle == "" {
		c.Files.MonthStyle = discovery.MonthAbbrev.String()
	}
	if c.Files.Extension == "" {
		c.Files.Extension = discovery.DefaultExtension
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return translateValidationError(err)
	}

	if n := utf8.RuneCountInString(c.Chart.BarStyle); n != 1 {
		return werrors.NewConfigError("chart.bar_style", c.Chart.BarStyle,
			fmt.Errorf("must be a single character, got %d", n))
	}

	if err := validateSourceLayout(c.Dates.SourceFormat); err != nil {
		return werrors.NewConfigError("dates.source_format", c.Dates.SourceFormat, err)
	}

	return nil
}

// validateSourceLayout checks that layout carries a full date: a reference
// day formatted and parsed back must be the same day.
func validateSourceLayout(layout string) error {
	ref := time.Date(2011, time.June, 23, 0, 0, 0, 0, time.UTC)
	got, err := time.Parse(layout, ref.Format(layout))
	if err != nil {
		return err
	}
	if !got.Equal(ref) {
		return fmt.Errorf("layout must contain year, month and day")
	}
	return nil
}

// TempUnit returns the configured temperature unit.
func (c *Config) TempUnit() weather.TempUnit {
	u, _ := weather.ParseTempUnit(c.Units.Temperature)
	return u
}

// MonthStyle returns the configured filename month style.
func (c *Config) MonthStyle() discovery.MonthStyle {
	s, _ := discovery.ParseMonthStyle(c.Files.MonthStyle)
	return s
}

// ParseOptions returns the record parser settings.
func (c *Config) ParseOptions() weather.ParseOptions {
	return weather.ParseOptions{Unit: c.TempUnit(), SourceDateFormat: c.Dates.SourceFormat}
}

// LocatorOptions returns the file locator settings.
func (c *Config) LocatorOptions() discovery.Options {
	return discovery.Options{MonthStyle: c.MonthStyle(), Extension: c.Files.Extension}
}

// RenderOptions returns the console renderer settings.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Unit:             c.TempUnit(),
		BarStyle:         c.Chart.BarStyle,
		OutputDateFormat: c.Dates.OutputFormat,
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// translateValidationError converts the first validator failure into a
// ConfigError named by its YAML path.
func translateValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return werrors.NewConfigError("", "", err)
	}
	fe := verrs[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	reason := fe.Tag()
	if fe.Param() != "" {
		reason += "=" + fe.Param()
	}
	return werrors.NewConfigError(field, fmt.Sprint(fe.Value()), fmt.Errorf("failed %q check", reason))
}
