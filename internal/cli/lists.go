package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/born-ml/scalarops/internal/operators"
	"github.com/born-ml/scalarops/internal/seq"
)

// NewReduceCommand creates the reduce command: sum or product of the arguments.
func NewReduceCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce <sum|product> [xs...]",
		Short: "Sum or multiply a list of numbers",
		Example: `  scalarops reduce sum 1 2 3
  scalarops reduce product 1 2 3`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"sum", "product"},
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			var result float64
			switch args[0] {
			case "sum":
				result = operators.Sum(slices.Values(xs))
			case "product":
				result, err = operators.Product(slices.Values(xs))
				if err != nil {
					return WrapExitError(ExitFailure, "product", err)
				}
			default:
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown reduction %q: must be sum or product", args[0]))
			}

			fmt.Fprintln(cmd.OutOrStdout(), opts.format(result))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// NewNegateCommand creates the negate command.
func NewNegateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "negate [xs...]",
		Short:   "Negate every number",
		Example: `  scalarops negate -- 1 -2 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}
			out := slices.Collect(operators.NegateAll(slices.Values(xs)))
			fmt.Fprintln(cmd.OutOrStdout(), opts.formatList(out))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// NewZipCommand creates the zip command: element-wise addition of two lists.
func NewZipCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zip <xs> <ys>",
		Short:   "Add two comma separated lists element-wise",
		Example: `  scalarops zip 1,2 10,20`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseList(args[0])
			if err != nil {
				return err
			}
			ys, err := parseList(args[1])
			if err != nil {
				return err
			}

			out, err := seq.Collect(operators.AddElementwise(slices.Values(xs), slices.Values(ys)))
			if err != nil {
				return WrapExitError(ExitFailure, "zip", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.formatList(out))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
