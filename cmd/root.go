package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saherflow/flowportal/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "flowportal",
	Short: "Landing page server for the flow measurement monitoring portal",
	Long: `flowportal serves the marketing landing page for the multiphase flow
measurement portal: a rotating hero carousel with manual slide selection
and a light/dark theme switch, kept live over a WebSocket per page view.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
