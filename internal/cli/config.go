package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds converter defaults loadable from a YAML file. Flags the
// user sets explicitly always win over the file; the file wins over
// built-in defaults.
type Config struct {
	// Delimiter is the output field delimiter. Must be one character.
	Delimiter string `yaml:"delimiter,omitempty"`

	// NoCompression treats input files as uncompressed raw streams.
	NoCompression bool `yaml:"no_compression,omitempty"`
}

// LoadConfig reads and strictly decodes a YAML config file. Unknown
// keys are an error so typos don't silently become defaults.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	cfg := &Config{}
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if cfg.Delimiter != "" {
		if _, err := parseDelimiter(cfg.Delimiter); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return cfg, nil
}

// parseDelimiter validates a delimiter string and returns its rune.
func parseDelimiter(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be exactly one character, got %q", s)
	}
	return runes[0], nil
}
