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

// Package scenario runs check files: named groups of expressions, each with
// an assertion on the value or error it must evaluate to.
package scenario

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/silvioduka/Expression-Evaluation/internal/notation"
)

// Evaluator evaluates one normalized expression.
type Evaluator interface {
	Evaluate(expression string) (float64, error)
}

type Scenario struct {
	Name string
	Desc string
	// Run lists the variable substitutions of this run, e.g. "<N>=10".
	Run       string
	Tolerance float64
	Checks    []*Check
}

// Check is a single expression together with the assertion on its outcome.
type Check struct {
	Expression string
	Assertion  *Assertion
}

func (c *Check) String() string {
	return c.Expression + " " + c.Assertion.String()
}

// Outcome is the result of running one Check.
type Outcome struct {
	Check *Check
	Value float64
	// Err is the evaluation error, Failure the assertion error.
	Err     error
	Failure error
}

// Passed reports whether the assertion held.
func (o *Outcome) Passed() bool {
	return o.Failure == nil
}

// Title names the scenario and, for a run, its substitutions.
func (s *Scenario) Title() string {
	if s.Run == "" {
		return s.Name
	}
	return fmt.Sprintf("%s [%s]", s.Name, s.Run)
}

// Execute evaluates every check of the scenario with ev.
func (s *Scenario) Execute(ev Evaluator) []*Outcome {
	outcomes := make([]*Outcome, len(s.Checks))
	for i, c := range s.Checks {
		o := &Outcome{Check: c}
		o.Value, o.Err = ev.Evaluate(c.Expression)
		o.Failure = c.Assertion.Assert(o.Value, o.Err, s.Tolerance)
		outcomes[i] = o
	}
	return outcomes
}

const (
	rule    = "+---------+--------------------------------------+"
	divider = "|---------+--------------------------------------|"
)

// Reporter prints scenario outcomes as a table.
type Reporter struct {
	w    io.Writer
	pass *color.Color
	fail *color.Color
}

// NewReporter returns a Reporter writing to w. Colours are forced on or off
// according to colored.
func NewReporter(w io.Writer, colored bool) *Reporter {
	r := &Reporter{
		w:    w,
		pass: color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
	}
	if colored {
		r.pass.EnableColor()
		r.fail.EnableColor()
	} else {
		r.pass.DisableColor()
		r.fail.DisableColor()
	}
	return r
}

// Report prints the outcomes of s and returns whether all of them passed.
func (r *Reporter) Report(s *Scenario, outcomes []*Outcome) bool {
	success := true

	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "| %-47s|\n", s.Title())
	if s.Desc != "" {
		fmt.Fprintf(r.w, "| %-47s|\n", s.Desc)
	}
	fmt.Fprintln(r.w, divider)

	for _, o := range outcomes {
		got := notation.Format(o.Value, notation.DefaultFormat)
		if o.Err != nil {
			got = o.Err.Error()
		}

		status := r.pass.Sprintf("%8s", "PASS")
		if !o.Passed() {
			status = r.fail.Sprintf("%8s", "FAIL")
			success = false
		}

		line := fmt.Sprintf("|%s | %-37s| %s", status, o.Check, got)
		if !o.Passed() {
			line += fmt.Sprintf(" %v", o.Failure)
		}
		fmt.Fprintln(r.w, line)
	}
	fmt.Fprintln(r.w, rule)

	return success
}

// Summary prints the totals over all reported scenarios.
func (r *Reporter) Summary(passed, failed int) {
	total := r.pass.Sprintf("%d passed", passed)
	if failed > 0 {
		total += ", " + r.fail.Sprintf("%d failed", failed)
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, total)
}

// Count returns the number of passed and failed outcomes.
func Count(outcomes []*Outcome) (passed, failed int) {
	for _, o := range outcomes {
		if o.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
