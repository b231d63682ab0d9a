package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salesdash/internal/client"
	"salesdash/internal/dashboard"
)

const defaultAPIURL = "http://localhost:8081"

var (
	apiURL  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "salesdash",
	Short: "Sales dashboard CLI",
	Long: `salesdash - pagination-aware sales record management against a remote
sales service: browse, edit, import/export CSV, and derive analytics.

The service base URL is taken from --api-url or SALESDASH_API_URL.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the sales service (default $SALESDASH_API_URL or "+defaultAPIURL+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func resolveAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if env := os.Getenv("SALESDASH_API_URL"); env != "" {
		return env
	}
	return defaultAPIURL
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newDashboard wires the API client, record store and sync service. The
// returned closer releases the client transport.
func newDashboard() (*dashboard.Service, func(), *zap.Logger) {
	logger := newLogger()
	api := client.New(resolveAPIURL())
	svc := dashboard.NewService(api, dashboard.NewStore(), logger)
	closer := func() {
		api.Close()
		logger.Sync()
	}
	return svc, closer, logger
}
