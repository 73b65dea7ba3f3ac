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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exprcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ',', cfg.Notation.InputRune())
	assert.Equal(t, '.', cfg.Notation.OutputRune())
	assert.Equal(t, -1, cfg.Notation.Precision)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Equal(t, "ERROR!", cfg.Output.ErrorText)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
notation:
  output_separator: ","
  precision: 2
output:
  color: never
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ",", cfg.Notation.InputSeparator)
	assert.Equal(t, ',', cfg.Notation.OutputRune())
	assert.Equal(t, 2, cfg.Notation.Precision)
	assert.Equal(t, ColorNever, cfg.Output.Color)
	assert.Equal(t, "ERROR!", cfg.Output.ErrorText)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Log.MaxSize)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"unknown key", "notation:\n  decimal: ','\n", "field decimal not found"},
		{"long separator", "notation:\n  input_separator: ',,'\n", "notation.input_separator must be a single character"},
		{"empty separator", "notation:\n  output_separator: ''\n", "notation.output_separator must be a single character"},
		{"digit separator", "notation:\n  input_separator: '1'\n", "must not be a digit or space"},
		{"space separator", "notation:\n  input_separator: ' '\n", "must not be a digit or space"},
		{"operator separator", "notation:\n  output_separator: '-'\n", "must not be an operator or parenthesis"},
		{"precision", "notation:\n  precision: 18\n", "notation.precision must be between -1 and 17, got 18"},
		{"color", "output:\n  color: sometimes\n", `output.color must be auto, always or never, got "sometimes"`},
		{"level", "log:\n  level: trace\n", `log.level must be debug, info, warn or error, got "trace"`},
		{"format", "log:\n  format: xml\n", `log.format must be console or json, got "xml"`},
		{"output", "log:\n  output: stdout\n", `log.output must be stderr, file or both, got "stdout"`},
		{"file path", "log:\n  output: file\n", `log.file_path is required when log.output is "file"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestGetSet(t *testing.T) {
	assert.Equal(t, Default(), Get())

	cfg := Default()
	cfg.Notation.Precision = 3
	Set(cfg)
	defer Set(nil)

	assert.Equal(t, 3, Get().Notation.Precision)
}
