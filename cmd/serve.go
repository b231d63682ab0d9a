package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salesdash/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference sales service",
	Long: `Run the in-memory reference implementation of the sales service the
dashboard talks to. Useful for local development and as a test backend.
Records live only as long as the process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()

		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.Default()
		api.InitRoutes(r, logger)

		logger.Info("sales service listening", zap.String("addr", serveAddr))
		if err := r.Run(serveAddr); err != nil {
			return fmt.Errorf("error trying to start server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8081", "listen address")
	rootCmd.AddCommand(serveCmd)
}
