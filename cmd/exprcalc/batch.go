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
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/silvioduka/Expression-Evaluation/internal/batch"
	"github.com/silvioduka/Expression-Evaluation/internal/evaluator"
)

func newBatchCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Evaluate one expression per line",
		Long: `Evaluate every line of a file, or of standard input when the file is
omitted or '-'. Blank lines, '#' comments and 'label:<name>' lines are skipped.
With --from and --to only the lines between two labels are evaluated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			name := "-"
			if len(args) == 1 && args[0] != "-" {
				name = args[0]
				f, err := os.Open(name)
				if err != nil {
					return errors.Wrap(err, "open batch file")
				}
				defer f.Close()
				r = f
			}

			s, err := batch.Open(r, from, to)
			if err != nil {
				return errors.Wrapf(err, "batch %s", name)
			}

			ev := evaluator.New()
			results, err := batch.Run(s, func(line string) (float64, error) {
				return ev.Evaluate(a.normalize(line))
			})
			out := cmd.OutOrStdout()
			for _, res := range results {
				if res.Err != nil {
					fmt.Fprintf(out, "%d: %s = %s %v\n", res.Line, res.Input, a.failure(), res.Err)
					a.logFailure(res.Input, res.Err)
					continue
				}
				fmt.Fprintf(out, "%d: %s = %s\n", res.Line, res.Input, a.format(res.Value))
			}
			if err != nil {
				return errors.Wrapf(err, "batch %s", name)
			}

			failed := batch.Failed(results)
			a.log.Info("batch done",
				zap.String("file", name),
				zap.Int("evaluated", len(results)),
				zap.Int("failed", failed),
			)
			if failed > 0 {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", batch.Edge, "start label, '..' for the beginning of input")
	cmd.Flags().StringVar(&to, "to", batch.Edge, "end label, '..' for the end of input")
	return cmd
}
