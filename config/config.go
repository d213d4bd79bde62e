// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the pretty tool.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"cogentcore.org/pretty/base/errors"
	"cogentcore.org/pretty/pretty"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the default location of the configuration file.
const DefaultPath = "~/.config/pretty/config.toml"

// Formats are the supported output formats.
var Formats = []string{"text", "json", "yaml"}

// containments maps the configuration names of the
// containment modes of the extended engine.
var containments = map[string]pretty.Containment{
	"free":   pretty.Free,
	"data":   pretty.ContainData,
	"within": pretty.WithinData,
}

// Config is the main config struct that contains all of the
// configuration options for the pretty tool. Zero values of the
// engine parameters select the engine defaults.
type Config struct {

	// the approximate number of intervals
	N int `toml:"n"`

	// the basic rounding coefficients in [1, base)
	Coefficients []float64 `toml:"coefficients"`

	// the radix of the number system
	Base float64 `toml:"base"`

	// the tolerance below which a break is snapped to zero
	Tol float64 `toml:"tol"`

	// derive the number of intervals from the number of samples
	Auto bool `toml:"auto"`

	// the containment of the extended engine: free, data or within
	Containment string `toml:"containment"`

	// the output format: text, json or yaml
	Format string `toml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		N:            pretty.DefaultIntervals,
		Coefficients: pretty.DefaultCoefficients(),
		Base:         pretty.DefaultBase,
		Tol:          pretty.DefaultTol,
		Containment:  "data",
		Format:       "text",
	}
}

// Open returns the configuration in the TOML file at the given path,
// which may start with ~ for the home directory. Settings missing from
// the file keep their defaults, and a missing file yields [Default].
// Unknown settings are an error.
func Open(path string) (*Config, error) {
	cfg := Default()
	fp, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	cfg.Coefficients = nil
	err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", fp, err)
	}
	if cfg.Coefficients == nil {
		cfg.Coefficients = pretty.DefaultCoefficients()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", fp, err)
	}
	return cfg, nil
}

// Save writes the configuration as TOML to the given path.
func (c *Config) Save(path string) error {
	fp, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(fp, b, 0666)
}

// Validate returns an error if the output format or containment is
// unknown. Engine parameters are validated by the engines themselves.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown format %q; must be one of %v", c.Format, Formats)
	}
	if _, ok := containments[c.Containment]; !ok {
		return fmt.Errorf("unknown containment %q; must be free, data or within", c.Containment)
	}
	return nil
}

// Options returns the options of the general engine.
func (c *Config) Options() *pretty.Options {
	return &pretty.Options{
		N:            c.N,
		Coefficients: slices.Clone(c.Coefficients),
		Base:         c.Base,
		Tol:          c.Tol,
		Auto:         c.Auto,
	}
}

// ExtendedOptions returns the options of the extended engine.
func (c *Config) ExtendedOptions() (*pretty.ExtendedOptions, error) {
	ct, ok := containments[c.Containment]
	if !ok {
		return nil, fmt.Errorf("unknown containment %q; must be free, data or within", c.Containment)
	}
	return &pretty.ExtendedOptions{Containment: ct}, nil
}
