// Package config loads settings for the jparse command from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/jparse"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the jparse command.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// ParserConfig controls the parser limits and decoding options.
type ParserConfig struct {
	MaxDepth          int  `yaml:"max_depth"`
	MaxElements       int  `yaml:"max_elements"`
	MaxStringBytes    int  `yaml:"max_string_bytes"`
	CombineSurrogates bool `yaml:"combine_surrogates"`
}

// InputConfig controls how inputs are read.
type InputConfig struct {
	JWCC    bool `yaml:"jwcc"`    // accept comments and trailing commas
	Workers int  `yaml:"workers"` // concurrent file checks
}

// OutputConfig controls reporting.
type OutputConfig struct {
	JSON    bool `yaml:"json"`
	Verbose bool `yaml:"verbose"`
}

// ConfigNames are the file names FindConfigFile looks for, in order.
var ConfigNames = []string{".jparse.yaml", ".jparse.yml", "jparse.yaml", "jparse.yml"}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxDepth: jparse.DefaultMaxDepth,
		},
		Input: InputConfig{
			Workers: 4,
		},
	}
}

// LoadConfig loads configuration from a YAML file. Settings not present in
// the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in dir and its parents. It
// returns "" if none is found.
func FindConfigFile(dir string) string {
	for {
		for _, name := range ConfigNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "" // reached the root
		}
		dir = parent
	}
}

// Validate reports an error if any setting of c is out of range.
func (c *Config) Validate() error {
	var errs []error
	if c.Parser.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must be non-negative, got %d", c.Parser.MaxDepth))
	}
	if c.Parser.MaxElements < 0 {
		errs = append(errs, fmt.Errorf("max_elements must be non-negative, got %d", c.Parser.MaxElements))
	}
	if c.Parser.MaxStringBytes < 0 {
		errs = append(errs, fmt.Errorf("max_string_bytes must be non-negative, got %d", c.Parser.MaxStringBytes))
	}
	if c.Input.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Input.Workers))
	}
	return errors.Join(errs...)
}

// Options returns the parser options described by c.
func (c *Config) Options() jparse.Options {
	return jparse.Options{
		MaxDepth:          c.Parser.MaxDepth,
		MaxElements:       c.Parser.MaxElements,
		MaxStringBytes:    c.Parser.MaxStringBytes,
		CombineSurrogates: c.Parser.CombineSurrogates,
	}
}
