package cmd

import (
	"github.com/spf13/cobra"

	"salesdash/internal/sales"
)

var (
	updateProduct string
	updateAmount  float64
	updateDate    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace the fields of an existing sale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, _ := newDashboard()
		defer closer()

		updated, err := svc.Update(cmd.Context(), args[0], sales.Candidate{
			Product: updateProduct,
			Amount:  updateAmount,
			Date:    updateDate,
		})
		if err != nil {
			return err
		}

		printSuccess("updated sale " + updated.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateProduct, "product", "", "product name")
	updateCmd.Flags().Float64Var(&updateAmount, "amount", 0, "sale amount")
	updateCmd.Flags().StringVar(&updateDate, "date", "", "sale date (YYYY-MM-DD)")
	updateCmd.MarkFlagRequired("product")
	updateCmd.MarkFlagRequired("amount")
	updateCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(updateCmd)
}
