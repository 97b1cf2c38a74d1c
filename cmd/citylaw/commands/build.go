package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	var watchMode bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Validate the data packs and write the static site",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			run := func(ctx context.Context) error {
				m, err := wire.Builder.Build(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Built %d files into %s (build %s)\n",
					len(m.Pages), wire.Output.Root(), m.BuildID)
				return nil
			}

			err := run(ctx)
			if !watchMode {
				return err
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "build failed: %v\n", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes (Ctrl-C to stop)\n", wire.DataDir())
			return wire.NewWatcher(run).Run(ctx)
		},
	}
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "rebuild whenever a data pack changes")
	return cmd
}
