// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/minmath/internal/config"
	"github.com/katalvlaran/minmath/worksheet"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

//go:embed demo.yaml
var demoWorksheet []byte

// options holds the merged env + flag settings for one invocation.
type options struct {
	cfg     config.Config
	epsilon float64
	verbose bool
	out     io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	o := &options{out: out}

	root := &cobra.Command{
		Use:   "minmath",
		Short: "Small generic linear algebra, set and probability toolkit",
		Long: `minmath evaluates YAML worksheets of matrix, vector, set and
probability operations and prints each result.

Environment:
  MINMATH_EPSILON   tolerance for allclose (default 1e-9)
  MINMATH_VERBOSE   log every step (default false)`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
	}

	root.PersistentFlags().Float64Var(&o.epsilon, "epsilon", 0, "absolute tolerance for allclose (overrides MINMATH_EPSILON)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log every step (overrides MINMATH_VERBOSE)")

	root.AddCommand(newEvalCmd(o), newDemoCmd(o), newOpsCmd(o), newVersionCmd(o))

	return root
}

// load reads env config, then applies flags the user set explicitly.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("epsilon") {
		cfg.Epsilon = o.epsilon
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	return nil
}

func (o *options) evalOptions() []worksheet.EvalOption {
	opts := []worksheet.EvalOption{worksheet.WithEpsilon(o.cfg.Epsilon)}
	if o.cfg.Verbose {
		opts = append(opts, worksheet.WithLogger(log.Default()))
	}

	return opts
}

func newEvalCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate a worksheet file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := worksheet.LoadFile(args[0])
			if err != nil {
				return err
			}
			if o.cfg.Verbose {
				log.Printf("loaded %s: %d operands, %d steps", args[0], len(ws.Names()), len(ws.Steps))
			}

			return worksheet.Evaluate(cmd.Context(), ws, o.out, o.evalOptions()...)
		},
	}
}

func newDemoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration worksheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := worksheet.Load(bytes.NewReader(demoWorksheet))
			if err != nil {
				return fmt.Errorf("demo worksheet: %w", err)
			}

			return worksheet.Evaluate(cmd.Context(), ws, o.out, o.evalOptions()...)
		},
	}
}

func newOpsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List worksheet operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(o.out, strings.Join(worksheet.Ops(), "\n"))

			return err
		},
	}
}

func newVersionCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(o.out, "minmath %s\n", version)

			return err
		},
	}
}
