// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	werrors "github.com/soothill/weather-analyzer/pkg/errors"
)

//go:embed schema.json
var schemaJSON []byte

// ValidateWithSchema validates a configuration file against the JSON schema.
// It checks structure and value sets only; Load still applies the semantic
// checks such as date layout completeness.
//
// Example usage:
//
//	err := config.ValidateWithSchema("weather.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func ValidateWithSchema(configPath string) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Convert YAML to JSON for validation
	var configObj interface{}
	if err := yaml.Unmarshal(configData, &configObj); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if configObj == nil {
		configObj = map[string]interface{}{}
	}

	configJSON, err := json.Marshal(configObj)
	if err != nil {
		return fmt.Errorf("failed to convert config to JSON: %w", err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(configJSON))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		return formatValidationErrors(result.Errors())
	}

	return nil
}

// formatValidationErrors formats JSON schema validation errors into a readable message
func formatValidationErrors(errs []gojsonschema.ResultError) error {
	if len(errs) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("configuration validation errors:\n")
	for i, e := range errs {
		fmt.Fprintf(&b, "  %d. %s: %s\n", i+1, e.Field(), e.Description())
	}

	return fmt.Errorf("%w: %s", werrors.ErrInvalidConfig, b.String())
}

// GetSchemaJSON returns the embedded JSON schema as a string.
func GetSchemaJSON() string {
	return string(schemaJSON)
}
