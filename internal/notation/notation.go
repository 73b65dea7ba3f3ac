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

// Package notation converts between the way people type numbers and the
// canonical form the evaluator reads: no whitespace and '.' as the decimal
// separator. It also renders results back for display.
package notation

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Normalize removes all whitespace from expression and replaces separator
// with '.'.
func Normalize(expression string, separator rune) string {
	var b strings.Builder
	b.Grow(len(expression))
	for _, r := range expression {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == separator:
			b.WriteByte('.')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatOptions controls Format.
type FormatOptions struct {
	// Separator replaces '.' in the output. Zero means '.'.
	Separator rune
	// Precision is the number of digits after the decimal point. A negative
	// value prints up to 15 significant digits with no trailing zeros.
	Precision int
}

// DefaultFormat prints up to 15 significant digits with a '.'.
var DefaultFormat = FormatOptions{Separator: '.', Precision: -1}

// Format renders v for display. Infinities and NaN are spelled out as
// "Infinity", "-Infinity" and "NaN".
func Format(v float64, opts FormatOptions) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}

	var s string
	if opts.Precision < 0 {
		// 15 significant digits, so 40.00000000000001 prints as 40
		if r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 15, 64), 64); err == nil {
			v = r
		}
		s = strconv.FormatFloat(v, 'g', -1, 64)
		// plain notation for everyday magnitudes, 'g' switches to exponents at 1e21
		if a := math.Abs(v); a != 0 && a >= 1e-6 && a < 1e21 {
			s = strconv.FormatFloat(v, 'f', -1, 64)
		}
	} else {
		s = strconv.FormatFloat(v, 'f', opts.Precision, 64)
	}

	if opts.Separator != 0 && opts.Separator != '.' {
		s = strings.Replace(s, ".", string(opts.Separator), 1)
	}
	return s
}
