package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/junioryono/beans/internal/presentation"
)

func newGetCommand(a *app) *cobra.Command {
	var name, typeName string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Resolve a single component",
		Long: `Resolve a component by name, by type, or by both.

With only --type, the single matching definition is returned, or the primary
one when several match.

Examples:
  beans get --name vehicle1
  beans get --type Vehicle
  beans get --name FerrariVehicle --type Vehicle -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && typeName == "" {
				return errNoSelector
			}
			return a.run(cmd, func(ctx context.Context, cmd *cobra.Command) error {
				def, instance, err := a.lookup(ctx, name, typeName)
				if err != nil {
					return err
				}
				return a.formatter.FormatInstance(presentation.FromInstance(def, instance))
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "component name (e.g., vehicle1)")
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "component type (Vehicle or Engine)")

	return cmd
}
