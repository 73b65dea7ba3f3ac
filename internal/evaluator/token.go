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

// tokenKind classifies a single byte of a normalized expression. Tokens are
// never collected into a list, the scanner switches on the kind of each byte
// as it goes.
type tokenKind int

const (
	// numeral bytes extend the pending numeral run. Anything that is not an
	// operator or a parenthesis is treated as part of a numeral and rejected
	// later by parseNumeral.
	numeral tokenKind = iota
	operator
	openParen
	closeParen
)

func classify(c byte) tokenKind {
	switch c {
	case '+', '-', '*', '/':
		return operator
	case '(':
		return openParen
	case ')':
		return closeParen
	}
	return numeral
}

// precedence ranks multiplication and division above addition and
// subtraction. Parentheses have no rank.
func precedence(op byte) int {
	switch op {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	}
	return 0
}

// collapsesBefore reports whether the pending operator top must be reduced
// before incoming is pushed. Only a multiplicative top is collapsed eagerly;
// additive operators accumulate until a ')' or the end of input.
func collapsesBefore(top, incoming byte) bool {
	if top == '(' || precedence(top) < 2 {
		return false
	}
	return precedence(top) >= precedence(incoming)
}
