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
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/silvioduka/Expression-Evaluation/internal/evaluator"
	"github.com/silvioduka/Expression-Evaluation/internal/scenario"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.yaml>...",
		Short: "Run check files",
		Long: `Run the scenarios of one or more check files and print a table per
scenario. Every check is an expression with an assertion:

  <expression> is <value>
  <expression> in (<low>,<high>)
  <expression> fails [invalid-number|malformed]`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var scns []*scenario.Scenario
			for _, path := range args {
				s, err := scenario.ParseFile(path)
				if err != nil {
					return err
				}
				a.log.Debug("check file parsed", zap.String("file", path), zap.Int("scenarios", len(s)))
				scns = append(scns, s...)
			}

			ev := evaluator.New()
			r := scenario.NewReporter(cmd.OutOrStdout(), a.colored())
			var passed, failed int
			for _, s := range scns {
				outcomes := s.Execute(ev)
				r.Report(s, outcomes)
				p, f := scenario.Count(outcomes)
				passed += p
				failed += f
			}
			r.Summary(passed, failed)

			if failed > 0 {
				return errFailed
			}
			return nil
		},
	}
}
