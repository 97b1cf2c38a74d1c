package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"citylaw/internal/services/sitemap"
)

func sitemapCmd() *cobra.Command {
	var robots bool
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Print sitemap.xml for the current data packs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if robots {
				fmt.Fprint(cmd.OutOrStdout(), sitemap.Robots(wire.Config.Site.BaseURL))
				return nil
			}
			entries, err := wire.Sitemap.Generate(time.Now())
			if err != nil {
				return err
			}
			b, err := sitemap.Marshal(entries)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().BoolVar(&robots, "robots", false, "print robots.txt instead")
	return cmd
}
