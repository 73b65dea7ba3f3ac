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

// pending is an operator or an open parenthesis waiting on the operator
// stack, together with its offset in the expression.
type pending struct {
	symbol byte
	pos    int
}

type operatorStack struct {
	items []pending
}

func (s *operatorStack) push(p pending) {
	s.items = append(s.items, p)
}

func (s *operatorStack) pop() (pending, bool) {
	if s.size() == 0 {
		return pending{}, false
	}
	p := s.items[s.size()-1]
	s.items = s.items[:s.size()-1]
	return p, true
}

func (s *operatorStack) peek() (pending, bool) {
	if s.size() == 0 {
		return pending{}, false
	}
	return s.items[s.size()-1], true
}

func (s *operatorStack) size() int {
	return len(s.items)
}

type operandStack struct {
	values []float64
}

func (s *operandStack) push(v float64) {
	s.values = append(s.values, v)
}

func (s *operandStack) pop() (float64, bool) {
	if s.size() == 0 {
		return 0, false
	}
	v := s.values[s.size()-1]
	s.values = s.values[:s.size()-1]
	return v, true
}

func (s *operandStack) size() int {
	return len(s.values)
}
