package cmd

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sale by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, _ := newDashboard()
		defer closer()

		if err := svc.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}

		printSuccess("deleted sale " + args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
