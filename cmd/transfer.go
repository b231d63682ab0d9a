package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk-import sales from a CSV file",
	Long: `Parse a CSV file with a Product,Amount,Date header and upload the
records in one all-or-nothing batch. A malformed row rejects the whole file
before anything is sent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		svc, closer, _ := newDashboard()
		defer closer()

		created, err := svc.ImportCSV(cmd.Context(), f)
		if err != nil {
			return err
		}

		printSuccess(fmt.Sprintf("successfully uploaded %d records", len(created)))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all sales as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, _ := newDashboard()
		defer closer()

		if exportOut == "-" {
			return svc.ExportCSV(cmd.Context(), os.Stdout)
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		if err := svc.ExportCSV(cmd.Context(), f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		printSuccess("exported to " + exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "sales_data.csv", `output file ("-" for stdout)`)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
