package cmd

import (
	"github.com/spf13/cobra"

	"salesdash/internal/sales"
)

var (
	listPage  int
	listLimit int
	listSort  string
	listDir   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of sales records",
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := sales.ParseSortField(listSort)
		if err != nil {
			return err
		}
		dir, err := sales.ParseSortDirection(listDir)
		if err != nil {
			return err
		}

		svc, closer, _ := newDashboard()
		defer closer()

		store := svc.Store()
		store.SetItemsPerPage(listLimit)
		store.SetSort(field, dir)
		store.SetCurrentPage(listPage)
		if err := svc.FetchPage(cmd.Context()); err != nil {
			return err
		}

		printSalesTable(store.Snapshot())
		return nil
	},
}

func init() {
	req := sales.DefaultPageRequest()
	listCmd.Flags().IntVar(&listPage, "page", req.Page, "page number (1-based)")
	listCmd.Flags().IntVar(&listLimit, "limit", req.Limit, "records per page")
	listCmd.Flags().StringVar(&listSort, "sort", string(req.SortField), "sort field: product, amount or date")
	listCmd.Flags().StringVar(&listDir, "dir", string(req.SortDirection), "sort direction: asc or desc")
	rootCmd.AddCommand(listCmd)
}
