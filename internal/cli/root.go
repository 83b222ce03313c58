// Package cli implements sanedctl, the operator command line for the
// matching service.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saned/saned-backend/internal/app"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	output string
	// open connects to the store; tests replace it.
	open func(ctx context.Context) (*store, error)
}

// NewRootCmd builds the sanedctl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(openStore)
}

func newRootCmd(open func(ctx context.Context) (*store, error)) *cobra.Command {
	opts := &rootOptions{open: open}

	root := &cobra.Command{
		Use:   "sanedctl",
		Short: "Operator tooling for the Saned matching service",
		Long: `sanedctl manages the Saned matching database from the terminal.

It provides:
  - Schema migrations (goose)
  - User directory imports for seeding
  - Potential matches, history and preferences for any subject
  - Development access tokens`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case formatTable, formatJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (use table or json)", opts.output)
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", formatTable, "output format (table, json)")

	root.AddCommand(
		newVersionCmd(opts),
		newMigrateCmd(opts),
		newUsersCmd(opts),
		newMatchesCmd(opts),
		newTokenCmd(opts),
	)
	return root
}

// Execute runs sanedctl with ctx as the root context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.OutOrStdout(), opts.output, app.Info())
		},
	}
}
