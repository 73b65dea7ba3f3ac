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

package evaluator

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the class of an evaluation failure.
type Kind int

const (
	// InvalidNumber means a numeral run could not be parsed.
	InvalidNumber Kind = iota + 1
	// MalformedExpression means the expression is structurally broken:
	// unbalanced parentheses, a missing operand or a leftover value.
	MalformedExpression
)

var (
	// ErrInvalidNumber matches every error of kind InvalidNumber.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrMalformedExpression matches every error of kind MalformedExpression.
	ErrMalformedExpression = errors.New("malformed expression")
)

func (k Kind) String() string {
	switch k {
	case InvalidNumber:
		return "invalid number"
	case MalformedExpression:
		return "malformed expression"
	}
	return "unknown error"
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidNumber:
		return ErrInvalidNumber
	case MalformedExpression:
		return ErrMalformedExpression
	}
	return nil
}

// Error is returned by Evaluate. Position is the byte offset in the
// expression the failure is attributed to.
type Error struct {
	Kind     Kind
	Position int
	Detail   string
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d: %s", e.Kind, e.Position, e.Detail)
}

// Is makes errors.Is(err, ErrInvalidNumber) and
// errors.Is(err, ErrMalformedExpression) work on an *Error.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Unwrap returns the underlying parse error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

func malformed(pos int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:     MalformedExpression,
		Position: pos,
		Detail:   fmt.Sprintf(format, args...),
	}
}

func invalidNumber(pos int, text string, cause error) *Error {
	return &Error{
		Kind:     InvalidNumber,
		Position: pos,
		Detail:   fmt.Sprintf("%q is not a decimal numeral", text),
		Cause:    cause,
	}
}

// KindOf returns the Kind of err, or 0 when err did not come from Evaluate.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
