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

package scenario

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/silvioduka/Expression-Evaluation/internal/evaluator"
)

type AssertionType string

const (
	AssertionTypeIs    AssertionType = "is"
	AssertionTypeIn    AssertionType = "in"
	AssertionTypeFails AssertionType = "fails"
)

// Assertion is checked against the outcome of evaluating an expression.
// V1 is the expected value of an "is" assertion and the lower bound of an
// "in" assertion, V2 is the upper bound. Kind narrows a "fails" assertion to
// one kind of evaluation error; zero accepts any.
type Assertion struct {
	Type AssertionType
	V1   float64
	V2   float64
	Kind evaluator.Kind
}

var kindNames = map[evaluator.Kind]string{
	evaluator.InvalidNumber:       "invalid-number",
	evaluator.MalformedExpression: "malformed",
}

func (a *Assertion) String() string {
	if a == nil {
		return ""
	}
	switch a.Type {
	case AssertionTypeIs:
		return fmt.Sprintf("is %v", a.V1)
	case AssertionTypeIn:
		return fmt.Sprintf("in (%v,%v)", a.V1, a.V2)
	case AssertionTypeFails:
		if a.Kind != 0 {
			return "fails " + kindNames[a.Kind]
		}
		return "fails"
	}

	panic("unknown assertion type")
}

// Assert returns nil when the result of an evaluation, v or err, satisfies
// the assertion. Values compare equal within tolerance; NaN equals NaN.
func (a *Assertion) Assert(v float64, err error, tolerance float64) error {
	if a == nil {
		return nil
	}

	switch a.Type {
	case AssertionTypeIs:
		if err != nil {
			return errors.Errorf("FAILED assertion: expected %v got %v", a.V1, err)
		}
		if equalWithin(v, a.V1, tolerance) {
			return nil
		}
		return errors.Errorf("FAILED assertion: expected %v got %v", a.V1, v)

	case AssertionTypeIn:
		if err != nil {
			return errors.Errorf("FAILED assertion: expected value in (%v,%v) got %v", a.V1, a.V2, err)
		}
		if v >= a.V1-tolerance && v <= a.V2+tolerance {
			return nil
		}
		return errors.Errorf("FAILED assertion: %v not in (%v,%v)", v, a.V1, a.V2)

	case AssertionTypeFails:
		if err == nil {
			return errors.Errorf("FAILED assertion: expected failure got %v", v)
		}
		if a.Kind != 0 && evaluator.KindOf(err) != a.Kind {
			return errors.Errorf("FAILED assertion: expected %s got %v", kindNames[a.Kind], err)
		}
		return nil
	}

	return errors.Errorf("assertion type must be 'is', 'in' or 'fails' but is %v", a.Type)
}

func equalWithin(got, want, tolerance float64) bool {
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0):
		return got == want
	}
	return math.Abs(got-want) <= tolerance
}
