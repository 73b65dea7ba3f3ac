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

// A SectionScanner wraps a scanner and filters out all lines before the start
// label and after the end label, keeping only the lines between the labels.
// A label line looks like "label:basics" and names the block of expressions
// that follows it in a batch file.

package batch

import (
	"strings"

	"github.com/pkg/errors"
)

// Scanner is inspired on bufio.Scanner. It provides an interface that is
// commonly used in the following pattern.
//
// ```
// for s.Scan() {
//     // do something with s.Text()
// }
// if s.Err()!=nil {
//     return s.Err()
// }
// ```
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// A SectionScanner wraps a Scanner and is a Scanner that only scans between
// the given Start and End labels.
type SectionScanner struct {
	Scanner
	Start string
	End   string
}

const (
	// Edge selects the beginning of the input as a start label or its end
	// as an end label.
	Edge = ".."

	labelPrefix = "label:"
)

// IsLabel reports whether line is a section label and returns its name.
func IsLabel(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, labelPrefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(labelPrefix):]), true
}

// NewSectionScanner returns a Section scanner given Scanner and a start and
// end label. The scanner is progressed to the Start label and returns an
// error if that label isn't present.
func NewSectionScanner(scanner Scanner, start, end string) (*SectionScanner, error) {
	s := &SectionScanner{
		Scanner: scanner,
		Start:   start,
		End:     end,
	}

	if start == Edge || start == "" {
		return s, nil
	}

	// find section start
	for s.Scanner.Scan() {
		if name, ok := IsLabel(s.Text()); ok && name == s.Start {
			return s, nil
		}
	}
	if err := s.Scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "section scanner")
	}

	return nil, errors.Errorf("section start %s not found", s.Start)
}

// Scan progresses performs one scan on the wrapped Scanner. Returns whether
// the End label is reached or the wrapped Scanner is finished.
func (s *SectionScanner) Scan() bool {
	if !s.Scanner.Scan() {
		return false
	}

	if s.End == Edge || s.End == "" {
		return true
	}

	if name, ok := IsLabel(s.Scanner.Text()); ok && name == s.End {
		return false
	}

	return true
}
