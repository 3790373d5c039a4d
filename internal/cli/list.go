package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/junioryono/beans/internal/presentation"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered component definitions",
		Long: `List every definition in registration order with its type and primary flag.

Examples:
  # Table output
  beans list

  # Machine readable
  beans list -o json
  beans list -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, cmd *cobra.Command) error {
				dtos := presentation.FromDefinitions(a.registry.Definitions())
				return a.formatter.FormatDefinitions(dtos)
			})
		},
	}
}
