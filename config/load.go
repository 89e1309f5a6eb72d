// SPDX-License-Identifier: MIT
// Package: bfsviz/config
//
// load.go - format detection, decoding and encoding.

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format int

const (
	// YAML is gopkg.in/yaml.v3.
	YAML Format = iota
	// TOML is BurntSushi/toml.
	TOML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

// FormatOf picks the format from path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("FormatOf: %q: %w", path, ErrUnknownFormat)
	}
}

// Load reads, decodes and validates the file at path.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("Parse: format %d: %w", format, ErrUnknownFormat)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes c in the given format.
func Marshal(c *Config, format Format) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(c)
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("Marshal: format %d: %w", format, ErrUnknownFormat)
	}
}

// Save writes c to path in the format its extension names.
func Save(c *Config, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Marshal(c, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
