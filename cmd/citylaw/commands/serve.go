package commands

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		watchMode bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server, rendering pages from disk per request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = wire.Config.Server.Addr
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return wire.Server.Run(ctx, addr)
			})
			if watchMode {
				// Pages already reflect edits; the watcher reports broken packs
				// as soon as they are saved.
				check := func(ctx context.Context) error {
					report, err := wire.Checker.Run(ctx)
					if err != nil {
						return err
					}
					return report.Err()
				}
				g.Go(func() error {
					return wire.NewWatcher(check).Run(ctx)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "validate the inventory whenever a data pack changes")
	return cmd
}
