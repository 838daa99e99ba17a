package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"binding-generator/internal/gen"
)

// defaultConfigFile is read when --config is not given. It may be missing.
const defaultConfigFile = "binding-generator.yaml"

// Config is the generator configuration file. Flags override every field.
type Config struct {
	// Schema is the path of the schema document.
	Schema string `yaml:"schema"`
	// Output is the directory the bindings are written to.
	Output string `yaml:"output"`
	// Package overrides the schema's package name.
	Package string `yaml:"package,omitempty"`
	// WireImport is the import path of the wire runtime.
	WireImport string `yaml:"wire_import,omitempty"`
	// Comments copies schema descriptions into doc comments. Defaults to true.
	Comments *bool `yaml:"comments,omitempty"`
	// Clean removes generated files the schema no longer produces.
	Clean bool `yaml:"clean,omitempty"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level,omitempty"`
}

// LoadConfig reads path. A missing file is an error unless optional is set,
// in which case the zero Config is returned.
func LoadConfig(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// Generator returns the generator configuration the file describes.
func (c *Config) Generator() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()

	if c.Output != "" {
		cfg.OutputDir = c.Output
	}

	if c.WireImport != "" {
		cfg.WireImport = c.WireImport
	}

	if c.Comments != nil {
		cfg.GenerateComments = *c.Comments
	}

	cfg.PackageName = c.Package

	return cfg
}

// Validate reports missing required settings.
func (c *Config) Validate() error {
	if c.Schema == "" {
		return errors.New("no schema given: use --schema or set schema in the config file")
	}

	return nil
}
