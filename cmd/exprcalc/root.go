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

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/silvioduka/Expression-Evaluation/internal/config"
	"github.com/silvioduka/Expression-Evaluation/internal/logger"
	"github.com/silvioduka/Expression-Evaluation/internal/notation"
)

const version = "0.1.0"

// errFailed ends a command whose failure was already reported on stdout.
var errFailed = errors.New("failed")

type app struct {
	cfgFile string
	debug   bool
	quiet   bool
	color   string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "exprcalc",
		Short: "Evaluate infix arithmetic expressions",
		Long: `exprcalc evaluates infix arithmetic expressions over decimal numbers
with + - * / and parentheses, in a single left-to-right pass.

Use 'exprcalc help <command>' for more information on a specific command.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "configuration file (YAML)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "log errors only")
	cmd.PersistentFlags().StringVar(&a.color, "color", "", "colorize output: auto, always or never")

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		newEvalCmd(a),
		newBatchCmd(a),
		newCheckCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.color != "" {
		cfg.Output.Color = a.color
	}
	switch {
	case a.debug:
		cfg.Log.Level = "debug"
	case a.quiet:
		cfg.Log.Level = "error"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	}); err != nil {
		return errors.Wrap(err, "init logger")
	}

	config.Set(cfg)
	a.cfg = cfg
	a.log = logger.L().With(zap.String("command", cmd.Name()))
	a.log.Debug("configuration loaded", zap.String("file", a.cfgFile))
	return nil
}

func (a *app) colored() bool {
	switch a.cfg.Output.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return !color.NoColor
}

func (a *app) normalize(expression string) string {
	return notation.Normalize(expression, a.cfg.Notation.InputRune())
}

func (a *app) format(v float64) string {
	return notation.Format(v, notation.FormatOptions{
		Separator: a.cfg.Notation.OutputRune(),
		Precision: a.cfg.Notation.Precision,
	})
}

// failure returns the configured error text, red when colors are on.
func (a *app) failure() string {
	c := color.New(color.FgRed, color.Bold)
	if a.colored() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(a.cfg.Output.ErrorText)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "exprcalc version %s\n", version)
		},
	}
}
