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

// Package batch evaluates expressions read line by line, e.g. from a file or
// standard input. Blank lines, '#' comments and label lines are skipped;
// every other line is one expression.
package batch

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// EvalFunc evaluates one raw input line.
type EvalFunc func(line string) (float64, error)

// Result is the outcome of one evaluated line. Err is set when the line
// failed to evaluate, in which case Value is meaningless.
type Result struct {
	Line  int
	Input string
	Value float64
	Err   error
}

// Counter counts the lines taken from the wrapped Scanner.
type Counter struct {
	Scanner
	n int
}

// NewCounter wraps s.
func NewCounter(s Scanner) *Counter {
	return &Counter{Scanner: s}
}

func (c *Counter) Scan() bool {
	if !c.Scanner.Scan() {
		return false
	}
	c.n++
	return true
}

// Line returns the number of the last scanned line, starting at 1.
func (c *Counter) Line() int {
	return c.n
}

// Line reports the line number of the wrapped scanner when it keeps one,
// or 0.
func (s *SectionScanner) Line() int {
	if l, ok := s.Scanner.(liner); ok {
		return l.Line()
	}
	return 0
}

type liner interface {
	Line() int
}

// Open returns a scanner over the lines of r between the start and end
// labels. Pass Edge (or "") for either to read from the beginning or up to
// the end.
func Open(r io.Reader, start, end string) (*SectionScanner, error) {
	return NewSectionScanner(NewCounter(bufio.NewScanner(r)), start, end)
}

// Run evaluates every expression line of s with eval. Evaluation failures
// are recorded in the results; only a failing Scanner aborts the run.
func Run(s Scanner, eval EvalFunc) ([]*Result, error) {
	l, counted := s.(liner)

	var results []*Result
	n := 0
	for s.Scan() {
		n++
		line := n
		if counted && l.Line() > 0 {
			line = l.Line()
		}

		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if _, ok := IsLabel(text); ok {
			continue
		}

		r := &Result{Line: line, Input: text}
		r.Value, r.Err = eval(text)
		results = append(results, r)
	}
	if err := s.Err(); err != nil {
		return results, errors.Wrap(err, "read batch input")
	}

	return results, nil
}

// Failed counts the results that carry an error.
func Failed(results []*Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
