package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every city pack, cluster file and cross-reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.Checker.Run(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range report.Problems {
				fmt.Fprintf(out, "  - %v\n", p)
			}
			if !report.OK() {
				return fmt.Errorf("%d problem(s) in %d city pack(s) and %d cluster(s)",
					len(report.Problems), report.Cities, report.Clusters)
			}
			fmt.Fprintf(out, "OK: %d city pack(s), %d cluster(s)\n", report.Cities, report.Clusters)
			return nil
		},
	}
}
