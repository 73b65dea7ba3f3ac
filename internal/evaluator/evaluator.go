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

// Package evaluator computes the value of flat infix arithmetic expressions
// made of decimal numerals, the binary operators + - * / and parentheses.
//
// The expression is scanned once, left to right. Scanning, precedence
// resolution and arithmetic are fused: an operator stack and an operand stack
// are reduced online and no parse tree is ever built. The input must already
// be normalized (no whitespace, '.' as decimal separator), see the notation
// package for that.
package evaluator

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Reduction describes a single evaluate-and-collapse step: Op was applied to
// A and B and Result was pushed back on the operand stack. Negated is set
// when B had its sign flipped because a subtraction was waiting below Op.
type Reduction struct {
	Op      byte
	A       float64
	B       float64
	Negated bool
	Result  float64
}

func (r Reduction) String() string {
	return fmt.Sprintf("%v %c %v = %v", r.A, r.Op, r.B, r.Result)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithObserver registers fn to be called after every reduction.
func WithObserver(fn func(Reduction)) Option {
	return func(e *Evaluator) {
		e.observe = fn
	}
}

// An Evaluator holds configuration only. All scanning state lives in a single
// call to Evaluate, so one Evaluator can be shared between goroutines as long
// as its observer is.
type Evaluator struct {
	observe func(Reduction)
}

// New returns an Evaluator configured with opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = New()

// Evaluate evaluates a normalized expression to a float64. It can be used as
// a simple calculator. e.g: `"2+3*4" -> 14.0`.
//
// Division follows IEEE-754: "1/0" is +Inf and "0/0" is NaN, neither is an
// error. Failures are returned as *Error and match ErrInvalidNumber or
// ErrMalformedExpression with errors.Is.
func Evaluate(expression string) (float64, error) {
	return defaultEvaluator.Evaluate(expression)
}

// Evaluate is the method form of the package level Evaluate.
func (e *Evaluator) Evaluate(expression string) (float64, error) {
	s := &scan{
		expr:     expression,
		numStart: -1,
		observe:  e.observe,
	}

	for i := 0; i < len(expression); i++ {
		c := expression[i]

		kind := classify(c)
		if kind == numeral {
			if s.numStart < 0 {
				s.numStart = i
			}
			continue
		}

		if err := s.flush(i); err != nil {
			return 0, err
		}

		switch kind {
		case closeParen:
			if err := s.closeGroup(i); err != nil {
				return 0, err
			}

		case operator:
			for {
				top, ok := s.operators.peek()
				if !ok || !collapsesBefore(top.symbol, c) {
					break
				}
				if err := s.collapse(); err != nil {
					return 0, err
				}
			}
			s.operators.push(pending{symbol: c, pos: i})

		case openParen:
			s.operators.push(pending{symbol: c, pos: i})
		}
	}

	if err := s.flush(len(expression)); err != nil {
		return 0, err
	}

	for s.operators.size() > 0 {
		if err := s.collapse(); err != nil {
			return 0, err
		}
	}

	if len(expression) == 0 {
		return 0, malformed(0, "empty expression")
	}
	if n := s.operands.size(); n != 1 {
		return 0, malformed(len(expression), "expected a single result, got %d values", n)
	}

	v, _ := s.operands.pop()
	return v, nil
}

// scan is the state of one evaluation. numStart is the offset of the pending
// numeral run, or -1 when there is none.
type scan struct {
	expr      string
	operators operatorStack
	operands  operandStack
	numStart  int
	observe   func(Reduction)
}

// flush parses the pending numeral run ending at end and pushes its value.
func (s *scan) flush(end int) error {
	if s.numStart < 0 {
		return nil
	}
	start := s.numStart
	s.numStart = -1

	text := s.expr[start:end]
	v, err := parseNumeral(text)
	if err != nil {
		return invalidNumber(start, text, err)
	}
	s.operands.push(v)
	return nil
}

// closeGroup reduces everything down to the matching '(' and discards it.
func (s *scan) closeGroup(pos int) error {
	for {
		top, ok := s.operators.peek()
		if !ok {
			return malformed(pos, "unmatched closing parenthesis")
		}
		if top.symbol == '(' {
			s.operators.pop()
			return nil
		}
		if err := s.collapse(); err != nil {
			return err
		}
	}
}

// collapse pops one operator and its two operands and pushes the result.
//
// When the operator left on top afterwards is a '-', an additive b takes the
// opposite sign: that subtraction applies to the whole value being reduced
// here, so "a-b+c" is folded as a-(b+(-c)).
func (s *scan) collapse() error {
	op, _ := s.operators.pop()
	if op.symbol == '(' {
		return malformed(op.pos, "unclosed parenthesis")
	}

	b, ok := s.operands.pop()
	if !ok {
		return malformed(op.pos, "missing operand for %q", op.symbol)
	}
	a, ok := s.operands.pop()
	if !ok {
		return malformed(op.pos, "missing operand for %q", op.symbol)
	}

	negated := false
	if top, ok := s.operators.peek(); ok && top.symbol == '-' && precedence(op.symbol) == 1 {
		b = -b
		negated = true
	}

	r := apply(op.symbol, a, b)
	s.operands.push(r)

	if s.observe != nil {
		s.observe(Reduction{Op: op.symbol, A: a, B: b, Negated: negated, Result: r})
	}
	return nil
}

func apply(op byte, a, b float64) float64 {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	}

	panic(fmt.Sprintf("unsupported operator %q", op))
}

// parseNumeral accepts ASCII digits with at most one decimal point and at
// least one digit, so "1.", ".5" and "007" are numerals and "1e5" is not.
// Values too large for a float64 become infinite.
func parseNumeral(text string) (float64, error) {
	digits, points := 0, 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			points++
			if points > 1 {
				return 0, errors.Errorf("second decimal point at offset %d", i)
			}
		default:
			return 0, errors.Errorf("unexpected character %q at offset %d", c, i)
		}
	}
	if digits == 0 {
		return 0, errors.New("no digits")
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errors.Wrap(err, "parse float")
	}
	return v, nil
}
