package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every generated path",
		RunE: func(cmd *cobra.Command, args []string) error {
			rts, err := wire.Routes.Enumerate()
			if err != nil {
				return err
			}
			for _, r := range rts {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", r.Class, r.Path)
			}
			return nil
		},
	}
}
