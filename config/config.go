// Package config loads the YAML file shared by the priority tools
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"goprio/priority"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when a tool is started without -config
const DefaultPath = "/etc/goprio/config.yaml"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	DefaultKind  string `yaml:"default_kind"`
	EnforceRange bool   `yaml:"enforce_range"`
	MinPriority  int    `yaml:"min_priority"`
	MaxPriority  int    `yaml:"max_priority"`
	Color        string `yaml:"color"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		DefaultKind: priority.Process.String(),
		MinPriority: priority.MinNice,
		MaxPriority: priority.MaxNice,
		Color:       ColorAuto,
	}
}

// Load reads and validates the file at path. A missing file at DefaultPath
// yields Default(); a missing file anywhere else is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("error reading config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("error in config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default() and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("error decoding YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once
func (c Config) Validate() error {
	var result *multierror.Error

	if _, err := priority.ParseWhich(c.DefaultKind); err != nil {
		result = multierror.Append(result, fmt.Errorf("default_kind: %w", err))
	}
	if c.MinPriority > c.MaxPriority {
		result = multierror.Append(result, fmt.Errorf("min_priority %d is above max_priority %d", c.MinPriority, c.MaxPriority))
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		result = multierror.Append(result, fmt.Errorf("color: unknown mode %q", c.Color))
	}

	return result.ErrorOrNil()
}

// Kind returns the configured default target kind
func (c Config) Kind() priority.Which {
	w, err := priority.ParseWhich(c.DefaultKind)
	if err != nil {
		return priority.Process
	}
	return w
}

// Range returns the configured priority band
func (c Config) Range() priority.Range {
	return priority.Range{Min: c.MinPriority, Max: c.MaxPriority}
}

// Accessor builds a priority accessor that enforces Range when
// enforce_range is set.
func (c Config) Accessor() *priority.Accessor {
	if !c.EnforceRange {
		return priority.Default
	}
	return priority.NewAccessor(priority.WithRange(c.Range()))
}

// UseColor resolves the color mode for output written to f
func (c Config) UseColor(f *os.File) bool {
	switch strings.ToLower(c.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
