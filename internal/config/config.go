// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for swaggen.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the swaggen configuration.
type Config struct {
	// Source is the directory holding one subdirectory per service
	Source string `mapstructure:"source" yaml:"source" json:"source"`

	// Output is the directory the generated documents are written to
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Version replaces the version of the root info block
	Version string `mapstructure:"version" yaml:"version" json:"version"`

	// Profiles restricts generation to services declaring one of these profiles
	Profiles []string `mapstructure:"profiles" yaml:"profiles" json:"profiles"`

	// Services restricts generation to the named services
	Services []string `mapstructure:"services" yaml:"services" json:"services"`

	// Formats is the list of output formats written for every document (yaml, json)
	Formats []string `mapstructure:"formats" yaml:"formats" json:"formats"`

	// JSON contains JSON output configuration
	JSON JSONConfig `mapstructure:"json" yaml:"json" json:"json"`

	// Documents contains document discovery configuration
	Documents DocumentsConfig `mapstructure:"documents" yaml:"documents" json:"documents"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// JSONConfig contains JSON output configuration.
type JSONConfig struct {
	// Indent is the number of spaces used to indent JSON output
	Indent int `mapstructure:"indent" yaml:"indent" json:"indent"`
}

// DocumentsConfig contains document discovery configuration.
type DocumentsConfig struct {
	// Include is a list of glob patterns for action and model documents
	Include []string `mapstructure:"include" yaml:"include" json:"include"`

	// Exclude is a list of glob patterns for files to skip
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"swaggen.yaml",
	"swaggen.json",
	".swaggen.yaml",
	".swaggen.json",
}

// supportedFormats is the list of supported output formats.
var supportedFormats = []string{
	"yaml",
	"json",
}

// EnvPrefix prefixes environment variables overriding config keys,
// e.g. SWAGGEN_VERSION or SWAGGEN_WATCH_DEBOUNCE.
const EnvPrefix = "SWAGGEN"

// ErrConfigNotFound is returned when no config file is found.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values. The version has no default.
func Default() *Config {
	return &Config{
		Source:   "src/main/spec",
		Output:   "target/classes",
		Profiles: []string{},
		Services: []string{},
		Formats:  []string{"yaml", "json"},
		JSON: JSONConfig{
			Indent: 2,
		},
		Documents: DocumentsConfig{
			Include: []string{"*.yml", "*.yaml", "*.json"},
			Exclude: []string{".*"},
		},
		Watch: WatchConfig{
			Debounce: 500,
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. swaggen.yaml
// 2. swaggen.json
// 3. .swaggen.yaml
// 4. .swaggen.json
//
// If configPath is provided, it will use that path instead. Environment
// variables prefixed with SWAGGEN_ override both defaults and file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = ConfigFilePath()
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("source", d.Source)
	v.SetDefault("output", d.Output)
	v.SetDefault("version", d.Version)
	v.SetDefault("profiles", d.Profiles)
	v.SetDefault("services", d.Services)
	v.SetDefault("formats", d.Formats)
	v.SetDefault("json.indent", d.JSON.Indent)
	v.SetDefault("documents.include", d.Documents.Include)
	v.SetDefault("documents.exclude", d.Documents.Exclude)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Source == "" {
		errs = append(errs, ValidationError{
			Field:   "source",
			Message: "source directory is required",
		})
	}

	if c.Output == "" {
		errs = append(errs, ValidationError{
			Field:   "output",
			Message: "output directory is required",
		})
	}

	if c.Version == "" {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: "version is required",
		})
	}

	// Validate formats
	if len(c.Formats) == 0 {
		errs = append(errs, ValidationError{
			Field:   "formats",
			Message: "at least one output format is required",
		})
	}
	for _, f := range c.Formats {
		if !contains(supportedFormats, f) {
			errs = append(errs, ValidationError{
				Field:   "formats",
				Message: fmt.Sprintf("unsupported format %q, must be one of: %s", f, strings.Join(supportedFormats, ", ")),
			})
		}
	}

	if c.JSON.Indent < 0 {
		errs = append(errs, ValidationError{
			Field:   "json.indent",
			Message: "indent must be non-negative",
		})
	}

	// Validate watch debounce
	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfigFilePath returns the path of the config file in the working
// directory, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
