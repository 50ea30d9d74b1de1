// Package config holds the patscan configuration file format.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the top level patscan configuration.
type Config struct {
	// Dictionary is a path to a key[\tvalue] per line file, optionally
	// gzip-compressed.
	Dictionary string     `yaml:"dictionary"`
	LogLevel   string     `yaml:"log_level"`
	Scan       ScanConfig `yaml:"scan"`
}

// ScanConfig controls how text is tokenized.
type ScanConfig struct {
	// LongestOnly reports only the longest match at each position instead
	// of every match.
	LongestOnly bool `yaml:"longest_only"`
	// Overlap continues scanning at the next byte after a match instead of
	// after the matched key.
	Overlap bool `yaml:"overlap"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Scan: ScanConfig{
			LongestOnly: true,
		},
	}
}

// Load reads the configuration at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values that YAML decoding can not.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log setting: %w", err)
		}
	}
	return nil
}
