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

package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/silvioduka/Expression-Evaluation/internal/evaluator"
)

func newEvalCmd(a *app) *cobra.Command {
	var plain, trace bool

	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate one expression",
		Long: `Evaluate one expression and print it together with its value.

The arguments are joined with spaces; whitespace is ignored and the configured
input separator is read as a decimal point, so '2,5 * 2' evaluates to 5.`,
		Example: `  exprcalc eval "(2.2*3+2)*5-(3*4)/4"
  exprcalc eval --plain 1/3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.normalize(strings.Join(args, " "))

			var opts []evaluator.Option
			if trace {
				opts = append(opts, evaluator.WithObserver(a.traceReduction))
			}
			v, err := evaluator.New(opts...).Evaluate(input)

			out := cmd.OutOrStdout()
			result := a.failure()
			if err == nil {
				result = a.format(v)
			}
			if plain {
				fmt.Fprintln(out, result)
			} else {
				fmt.Fprintf(out, "Input:  %s\n", input)
				fmt.Fprintf(out, "Output: %s\n", result)
			}

			if err != nil {
				a.logFailure(input, err)
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print only the value")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every reduction at debug level")
	return cmd
}

func (a *app) traceReduction(r evaluator.Reduction) {
	a.log.Debug("reduce",
		zap.String("op", string(r.Op)),
		zap.Float64("a", r.A),
		zap.Float64("b", r.B),
		zap.Bool("negated", r.Negated),
		zap.Float64("result", r.Result),
	)
}

func (a *app) logFailure(input string, err error) {
	fields := []zap.Field{zap.String("input", input), zap.Error(err)}
	var e *evaluator.Error
	if errors.As(err, &e) {
		fields = append(fields, zap.Stringer("kind", e.Kind), zap.Int("position", e.Position))
	}
	a.log.Warn("evaluation failed", fields...)
}
