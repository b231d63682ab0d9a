package cmd

import (
	"github.com/spf13/cobra"

	"salesdash/internal/client"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the sales service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(resolveAPIURL())
		defer c.Close()

		if err := c.Ping(cmd.Context()); err != nil {
			return err
		}

		printSuccess("sales service is up at " + resolveAPIURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
