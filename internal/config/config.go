// Copyright (c) 2016 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config loads the exprcalc configuration file.
package config

import (
	"os"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the whole configuration file.
type Config struct {
	Notation NotationConfig `yaml:"notation"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
}

// NotationConfig controls how expressions are read and results printed.
type NotationConfig struct {
	InputSeparator  string `yaml:"input_separator"`  // replaced with "." before evaluation
	OutputSeparator string `yaml:"output_separator"` // decimal separator of printed results
	Precision       int    `yaml:"precision"`        // -1 up to 15 significant digits
}

// OutputConfig controls the console output.
type OutputConfig struct {
	Color     string `yaml:"color"` // auto, always, never
	ErrorText string `yaml:"error_text"`
}

// LogConfig controls where and how much the tool logs.
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // console, json
	Output     string `yaml:"output"` // stderr, file, both
	FilePath   string `yaml:"file_path"`
	MaxSize    int    `yaml:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Notation: NotationConfig{
			InputSeparator:  ",",
			OutputSeparator: ".",
			Precision:       -1,
		},
		Output: OutputConfig{
			Color:     ColorAuto,
			ErrorText: "ERROR!",
		},
		Log: LogConfig{
			Level:      "warn",
			Format:     "console",
			Output:     "stderr",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

var (
	globalConfig *Config
	mu           sync.RWMutex
)

// Load reads the file at path on top of the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

// Validate checks every field that has a restricted set of values.
func (c *Config) Validate() error {
	if err := validateSeparator("notation.input_separator", c.Notation.InputSeparator); err != nil {
		return err
	}
	if err := validateSeparator("notation.output_separator", c.Notation.OutputSeparator); err != nil {
		return err
	}
	if c.Notation.Precision < -1 || c.Notation.Precision > 17 {
		return errors.Errorf("notation.precision must be between -1 and 17, got %d", c.Notation.Precision)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return errors.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	switch c.Log.Output {
	case "stderr", "file", "both":
	default:
		return errors.Errorf("log.output must be stderr, file or both, got %q", c.Log.Output)
	}
	if c.Log.Output != "stderr" && c.Log.FilePath == "" {
		return errors.Errorf("log.file_path is required when log.output is %q", c.Log.Output)
	}
	return nil
}

func validateSeparator(key, sep string) error {
	if utf8.RuneCountInString(sep) != 1 {
		return errors.Errorf("%s must be a single character, got %q", key, sep)
	}
	r, _ := utf8.DecodeRuneInString(sep)
	switch {
	case unicode.IsDigit(r), unicode.IsSpace(r):
		return errors.Errorf("%s must not be a digit or space, got %q", key, sep)
	}
	switch r {
	case '+', '-', '*', '/', '(', ')':
		return errors.Errorf("%s must not be an operator or parenthesis, got %q", key, sep)
	}
	return nil
}

// InputRune returns the input separator as a rune.
func (c *NotationConfig) InputRune() rune {
	r, _ := utf8.DecodeRuneInString(c.InputSeparator)
	return r
}

// OutputRune returns the output separator as a rune.
func (c *NotationConfig) OutputRune() rune {
	r, _ := utf8.DecodeRuneInString(c.OutputSeparator)
	return r
}

// Get returns the process-wide configuration, the defaults until Set is
// called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if globalConfig == nil {
		return Default()
	}
	return globalConfig
}

// Set replaces the process-wide configuration.
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = cfg
}
