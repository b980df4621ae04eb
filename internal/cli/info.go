package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewOpsCommand creates the ops command listing registered operators.
func NewOpsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported operators and backward rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "forward:  %s\n", strings.Join(opts.registry.SupportedOps(), " "))
			fmt.Fprintf(w, "backward: %s\n", strings.Join(opts.registry.SupportedBackward(), " "))
			return nil
		},
	}
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Born scalarops %s\n", Version)
		},
	}
}
