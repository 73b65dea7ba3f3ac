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
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// govaluate is an independent implementation; both must agree on the
// canonical cases.
func TestEvaluate_AgreesWithGovaluate(t *testing.T) {
	exprs := []string{
		"2+3*4",
		"(5+3)*6",
		"2.2*3+2",
		"(2.2*3+2)*5-(3*4)/4",
		"18/3+2",
		"(10+5)/(3+2)",
		"(8-2)*(5-3)",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			ge, err := govaluate.NewEvaluableExpression(expr)
			require.NoError(t, err)
			want, err := ge.Evaluate(nil)
			require.NoError(t, err)

			got, err := Evaluate(expr)
			require.NoError(t, err)
			assert.InDelta(t, want.(float64), got, 1e-9)
		})
	}
}
