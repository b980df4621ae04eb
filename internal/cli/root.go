// Package cli implements the scalarops command tree.
package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/scalarops/internal/operators"
)

// Version is reported by the version command.
const Version = "v0.1.0-dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Precision int // Digits after formatting with 'g'; -1 prints the shortest exact form.

	registry *operators.Registry
}

// NewRootCommand creates the root command for the scalarops CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{registry: operators.NewRegistry()}

	cmd := &cobra.Command{
		Use:           "scalarops",
		Short:         "Born scalar operators",
		Long:          "Evaluate the scalar primitives, their backward rules and the sequence helpers of the Born scalar layer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Precision < -1 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid precision %d: must be >= -1", opts.Precision))
			}
			if opts.Verbose {
				return enableVerboseLogging()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().IntVarP(&opts.Precision, "precision", "p", -1, "significant digits to print (-1 for shortest)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewBackCommand(opts))
	cmd.AddCommand(NewGradCommand(opts))
	cmd.AddCommand(NewReduceCommand(opts))
	cmd.AddCommand(NewNegateCommand(opts))
	cmd.AddCommand(NewZipCommand(opts))
	cmd.AddCommand(NewOpsCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// enableVerboseLogging raises klog verbosity so operator tracing is printed.
func enableVerboseLogging() error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if err := fs.Set("v", "2"); err != nil {
		return errors.Wrap(err, "failed to set log verbosity")
	}
	return nil
}

// format renders v using the configured precision.
func (o *RootOptions) format(v float64) string {
	return strconv.FormatFloat(v, 'g', o.Precision, 64)
}

// formatList renders values as a bracketed, space separated list.
func (o *RootOptions) formatList(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = o.format(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// parseFloats parses every argument as a float64.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("argument %d", i+1), errors.Wrapf(err, "parsing %q", a))
		}
		out[i] = v
	}
	return out, nil
}

// parseList parses a comma separated list of floats. An empty string is an empty list.
func parseList(arg string) ([]float64, error) {
	if strings.TrimSpace(arg) == "" {
		return []float64{}, nil
	}
	return parseFloats(strings.Split(arg, ","))
}
