package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"salesdash/internal/sales"
)

var (
	addProduct string
	addAmount  float64
	addDate    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new sale",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, _ := newDashboard()
		defer closer()

		created, err := svc.Create(cmd.Context(), sales.Candidate{
			Product: addProduct,
			Amount:  addAmount,
			Date:    addDate,
		})
		if err != nil {
			return err
		}

		printSuccess("created sale " + created.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addProduct, "product", "", "product name")
	addCmd.Flags().Float64Var(&addAmount, "amount", 0, "sale amount")
	addCmd.Flags().StringVar(&addDate, "date", time.Now().Format(sales.DateLayout), "sale date (YYYY-MM-DD)")
	addCmd.MarkFlagRequired("product")
	addCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(addCmd)
}
