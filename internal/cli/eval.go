package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/scalarops/internal/autodiff"
)

// NewEvalCommand creates the eval command: apply a forward operator.
func NewEvalCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <op> <x> [y]",
		Short: "Apply a forward operator",
		Example: `  scalarops eval sigmoid 0.5
  scalarops eval max 3 3
  scalarops eval log -- -1`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			arity, err := opts.registry.Arity(name)
			if err != nil {
				return WrapExitError(ExitCommandError, "eval", err)
			}
			if len(args)-1 != arity {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s takes %d argument(s), got %d", name, arity, len(args)-1))
			}

			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			klog.V(1).Infof("eval %s%v", name, xs)

			var result float64
			if arity == 1 {
				f, _ := opts.registry.Unary(name)
				result, err = f(xs[0])
				if err != nil {
					return WrapExitError(ExitFailure, name, err)
				}
			} else {
				f, _ := opts.registry.Binary(name)
				result = f(xs[0], xs[1])
			}

			fmt.Fprintln(cmd.OutOrStdout(), opts.format(result))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// NewBackCommand creates the back command: apply a backward rule.
func NewBackCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "back <op> <x> <d>",
		Short: "Apply a backward rule to forward input x and upstream gradient d",
		Example: `  scalarops back log 2 1
  scalarops back relu 0 5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			f, ok := opts.registry.Backward(name)
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("no backward rule for %q (have %v)", name, opts.registry.SupportedBackward()))
			}

			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			klog.V(1).Infof("back %s x=%v d=%v", name, xs[0], xs[1])

			fmt.Fprintln(cmd.OutOrStdout(), opts.format(f(xs[0], xs[1])))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// gradFuncs builds a single-operator graph on a backend.
var gradFuncs = map[string]func(b *autodiff.Backend, x *autodiff.Variable) (*autodiff.Variable, error){
	"neg":     func(b *autodiff.Backend, x *autodiff.Variable) (*autodiff.Variable, error) { return b.Neg(x), nil },
	"sigmoid": func(b *autodiff.Backend, x *autodiff.Variable) (*autodiff.Variable, error) { return b.Sigmoid(x), nil },
	"relu":    func(b *autodiff.Backend, x *autodiff.Variable) (*autodiff.Variable, error) { return b.ReLU(x), nil },
	"exp":     func(b *autodiff.Backend, x *autodiff.Variable) (*autodiff.Variable, error) { return b.Exp(x), nil },
	"inv":     func(b *autodiff.Backend, x *autodiff.Variable) (*autodiff.Variable, error) { return b.Inv(x), nil },
	"log":     (*autodiff.Backend).Log,
}

// NewGradCommand creates the grad command: value and derivative of a unary operator at x.
func NewGradCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grad <op> <x>",
		Short:   "Print f(x) and df/dx computed on a gradient tape",
		Example: `  scalarops grad sigmoid 0`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := gradFuncs[args[0]]
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("no differentiable operator %q", args[0]))
			}
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			backend := autodiff.New()
			backend.Tape().StartRecording()

			x := autodiff.NewVariable(xs[0])
			x.Name = "x"
			y, err := build(backend, x)
			if err != nil {
				return WrapExitError(ExitFailure, args[0], err)
			}
			if _, err := backend.Backward(y); err != nil {
				return WrapExitError(ExitFailure, "backward", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "value=%s grad=%s\n", opts.format(y.Value), opts.format(x.Grad))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
