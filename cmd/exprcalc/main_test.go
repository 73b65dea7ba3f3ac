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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--color", "never", "--quiet"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		out  string
		err  error
	}{
		{
			name: "canonical",
			args: []string{"(2.2*3+2)*5-(3*4)/4"},
			out:  "Input:  (2.2*3+2)*5-(3*4)/4\nOutput: 40\n",
		},
		{
			name: "joined arguments",
			args: []string{"2", "+", "3", "*", "4"},
			out:  "Input:  2+3*4\nOutput: 14\n",
		},
		{
			name: "input separator",
			args: []string{"2,5*2"},
			out:  "Input:  2.5*2\nOutput: 5\n",
		},
		{
			name: "division by zero",
			args: []string{"1/0"},
			out:  "Input:  1/0\nOutput: Infinity\n",
		},
		{
			name: "plain",
			args: []string{"--plain", "7-2-1"},
			out:  "4\n",
		},
		{
			name: "malformed",
			args: []string{"(2+3"},
			out:  "Input:  (2+3\nOutput: ERROR!\n",
			err:  errFailed,
		},
		{
			name: "invalid number",
			args: []string{"--plain", "1.2.3+1"},
			out:  "ERROR!\n",
			err:  errFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", append([]string{"eval"}, tt.args...)...)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestEval_NoArguments(t *testing.T) {
	_, err := execute(t, "", "eval")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestEval_Trace(t *testing.T) {
	out, err := execute(t, "", "eval", "--trace", "--plain", "1-2+3")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEval_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
notation:
  input_separator: "."
  output_separator: ","
  precision: 2
output:
  error_text: "n/a"
`), 0644))

	out, err := execute(t, "", "--config", path, "eval", "--plain", "10/4")
	require.NoError(t, err)
	assert.Equal(t, "2,50\n", out)

	out, err = execute(t, "", "--config", path, "eval", "--plain", "10/")
	assert.Equal(t, errFailed, err)
	assert.Equal(t, "n/a\n", out)
}

func TestConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notation:\n  precision: 99\n"), 0644))

	_, err := execute(t, "", "--config", path, "eval", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notation.precision")

	_, err = execute(t, "", "--color", "sometimes", "eval", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.color")
}

func TestBatch(t *testing.T) {
	out, err := execute(t, "", "batch", "testdata/batch.txt")
	assert.Equal(t, errFailed, err)
	assert.Equal(t, `2: 1+1 = 2
5: (2.2*3+2)*5-(3*4)/4 = 40
6: 2 + 3 * 4 = 14
8: 1.2.3 = ERROR! invalid number at position 0: "1.2.3" is not a decimal numeral
9: (2+3 = ERROR! malformed expression at position 0: unclosed parenthesis
11: 8/2/2 = 2
`, out)
}

func TestBatch_Section(t *testing.T) {
	out, err := execute(t, "", "batch", "--from", "canonical", "--to", "broken", "testdata/batch.txt")
	require.NoError(t, err)
	assert.Equal(t, "5: (2.2*3+2)*5-(3*4)/4 = 40\n6: 2 + 3 * 4 = 14\n", out)

	_, err = execute(t, "", "batch", "--from", "missing", "testdata/batch.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "section start missing not found")
}

func TestBatch_Stdin(t *testing.T) {
	out, err := execute(t, "1,5*2\n\n6/3\n", "batch", "-")
	require.NoError(t, err)
	assert.Equal(t, "1: 1,5*2 = 3\n3: 6/3 = 2\n", out)
}

func TestBatch_MissingFile(t *testing.T) {
	_, err := execute(t, "", "batch", "testdata/nope.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open batch file")
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "", "check", "testdata/checks.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "| chains [<N>=100]")
	assert.Contains(t, out, "|    PASS | 100-1-1 is 98")
	assert.NotContains(t, out, "FAIL")
	assert.True(t, strings.HasSuffix(out, "\n15 passed\n"), out)
}

func TestCheck_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: wrong\n    checks:\n      - 2+2 is 5\n      - 2+2 is 4\n"), 0644))

	out, err := execute(t, "", "check", path)
	assert.Equal(t, errFailed, err)
	assert.Contains(t, out, "|    FAIL | 2+2 is 5")
	assert.True(t, strings.HasSuffix(out, "\n1 passed, 1 failed\n"), out)
}

func TestCheck_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: bad\n    checks:\n      - 2+2\n"), 0644))

	_, err := execute(t, "", "check", path)
	require.Error(t, err)
	assert.NotEqual(t, errFailed, err)
	assert.Contains(t, err.Error(), "missing assertion")
}

func TestRepl(t *testing.T) {
	out, err := execute(t, "2+3*4\n\n(1\n1/4\nquit\n5+5\n", "repl")
	require.NoError(t, err)
	assert.Equal(t, "14\nERROR! malformed expression at position 0: unclosed parenthesis\n0.25\n", out)
}

func TestRepl_EOF(t *testing.T) {
	out, err := execute(t, "7*6", "repl")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "exprcalc version "+version+"\n", out)
}
