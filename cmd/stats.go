package cmd

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate sales analytics",
	Long: `Fetch the full record set and derive totals, averages, the
per-product breakdown with percentage shares, and the latest sales.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, _ := newDashboard()
		defer closer()

		report, err := svc.Analytics(cmd.Context())
		if err != nil {
			return err
		}

		printSummary(report.Summary)
		printLatestSales(report.Latest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
