// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/console-trace-logger/src/internal/trace"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds the logger settings loadable from a JSON or YAML file.
// Pointer fields distinguish "unset" from an explicit false.
type Config struct {
	// Level: Minimum severity to emit ("trace" ... "error", "off")
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Color: Level tag coloring ("auto", "always", "never")
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	// Timestamps: Whether lines carry a timestamp prefix
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
	// CallSite: Whether lines carry a call-site suffix
	CallSite *bool `json:"callSite,omitempty" yaml:"callSite,omitempty"`
	// FiltersEnabled: Global gate for trace filtering
	FiltersEnabled *bool `json:"filtersEnabled,omitempty" yaml:"filtersEnabled,omitempty"`
	// Filters: Trace filters to register in order
	Filters []trace.FilterConfig `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// configSchema validates configuration documents before unmarshaling so
// shape mistakes surface as one readable error instead of a zero-valued
// config.
const configSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"level": {"type": "string"},
		"color": {"type": "string", "enum": ["auto", "always", "never"]},
		"timestamps": {"type": "boolean"},
		"callSite": {"type": "boolean"},
		"filtersEnabled": {"type": "boolean"},
		"filters": {
			"type": "array",
			"items": {
				"type": "object",
				"additionalProperties": false,
				"required": ["type", "name", "filterString"],
				"properties": {
					"type": {"type": "string", "enum": ["exclusive", "inclusive"]},
					"name": {"type": "string", "minLength": 1},
					"filterString": {"type": "string", "minLength": 1},
					"enabled": {"type": "boolean"}
				}
			}
		}
	}
}`

// detectConfigFormat determines the configuration file format based on the
// file extension, case-insensitively. Anything but .yaml/.yml is treated
// as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// LoadConfig reads and validates a logger configuration file.
//
// Supported extensions: .json, .yaml, .yml. YAML documents are converted to
// JSON so both formats are checked against the same schema.
//
// Parameters:
//   - configPath: Path to the configuration file
//
// Returns:
//   - *Config: The parsed configuration
//   - error: Read, schema-validation, or parse error
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	jsonData := data
	if detectConfigFormat(configPath) == configFormatYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		if jsonData, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("failed to convert YAML config to JSON: %w", err)
		}
	}

	if err := validateConfig(jsonData); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := json.Unmarshal(jsonData, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// validateConfig checks a JSON configuration document against configSchema.
func validateConfig(jsonData []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(jsonData),
	)
	if err != nil {
		return fmt.Errorf("failed to validate config file: %w", err)
	}
	if !result.Valid() {
		var b strings.Builder
		b.WriteString("invalid config file:")
		for _, desc := range result.Errors() {
			b.WriteString("\n  - ")
			b.WriteString(desc.String())
		}
		return fmt.Errorf("%s", b.String())
	}
	return nil
}

// ApplyConfig applies cfg to the logger. Settings are applied first, then
// filters are registered; duplicate filter names are reported through the
// logger itself rather than failing the whole application.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	if cfg.Level != "" {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return err
		}
		l.SetLevel(level)
	}
	if cfg.Color != "" {
		mode, err := ParseColorMode(cfg.Color)
		if err != nil {
			return err
		}
		l.SetColorMode(mode)
	}
	if cfg.Timestamps != nil {
		l.SetTimestamps(*cfg.Timestamps)
	}
	if cfg.CallSite != nil {
		l.SetCallSite(*cfg.CallSite)
	}
	if cfg.FiltersEnabled != nil {
		l.SetTraceFiltersEnabled(*cfg.FiltersEnabled)
	}
	if len(cfg.Filters) > 0 {
		if _, err := l.AddFilters(cfg.Filters); err != nil {
			return err
		}
	}
	return nil
}
