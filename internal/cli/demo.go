package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// demoNames are resolved by name and type, in order, before the primary.
var demoNames = []string{"vehicle1", "FerrariVehicle", "BMWVehicle"}

func (a *app) runDemo(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	for _, name := range demoNames {
		v, err := a.lookupVehicle(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Vehicle name from the registry is : %s\n", v.Name)
	}

	// several definitions are Vehicles, so the primary one is selected
	v, err := a.lookupVehicle(ctx, "")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Vehicle name from the registry is : %s\n", v.Name)
	fmt.Fprintln(out, v.Hello())

	return nil
}
