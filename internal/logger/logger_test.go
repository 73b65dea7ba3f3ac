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

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuild_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := build(&Config{Level: "warn", Format: "json", Output: "stderr"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", zap.String("expression", "1+1"))
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"expression":"1+1"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestBuild_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := build(&Config{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Debug("reduce", zap.Float64("result", 14))
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "reduce")
	assert.Contains(t, buf.String(), `{"result": 14}`)
}

func TestBuild_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprcalc.log")

	var buf bytes.Buffer
	l, err := build(&Config{
		Level:    "info",
		Format:   "json",
		Output:   "both",
		FilePath: path,
		MaxSize:  1,
	}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Info("to both")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		msg  string
	}{
		{"level", &Config{Level: "loud"}, "log level"},
		{"format", &Config{Level: "info", Format: "xml"}, `unknown log format "xml"`},
		{"output", &Config{Level: "info", Output: "syslog"}, `unknown log output "syslog"`},
		{"file path", &Config{Level: "info", Output: "file"}, `log output "file" needs a file path`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build(tt.cfg, zapcore.AddSync(&bytes.Buffer{}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestL_DefaultsToNop(t *testing.T) {
	require.NotNil(t, L())
	assert.NotPanics(t, func() {
		L().Info("dropped")
		Sync()
	})
}
