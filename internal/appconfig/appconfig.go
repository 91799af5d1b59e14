// internal/appconfig/appconfig.go
// Package appconfig manages loading and validating tool configuration.
package appconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultConfigPath is the default path to the tool's configuration file.
const DefaultConfigPath = "config/config.json"

// Config represents the top-level tool configuration. It carries diagnostics
// settings only: result processing is driven entirely by command-line
// arguments.
type Config struct {
	Debug      bool   `json:"debug"`
	LogFile    string `json:"logFile,omitempty"`
	NoColor    bool   `json:"noColor"`
	ConfigPath string `json:"-"`
}

// LogFilePath returns the path of the log file, or "" when file logging is
// disabled. Commands write their results to stdout, so nothing is logged to a
// file unless asked for.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// configSchema describes the accepted shape of the configuration file.
var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"debug":   map[string]any{"type": "boolean"},
		"logFile": map[string]any{"type": "string"},
		"noColor": map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}

// Validate checks raw configuration JSON against the config schema and
// returns every violation in one error.
func Validate(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(errs, ", "))
}

// ValidateFile validates the configuration file at path. A missing file is
// fine; the tools run on their defaults without one.
func ValidateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := Validate(raw); err != nil {
		return fmt.Errorf("config file %q: %w", path, err)
	}
	return nil
}

