package main

import (
	"github.com/spf13/cobra"

	"github.com/aellingwood/anvil/internal/config"
	"github.com/aellingwood/anvil/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "anvil",
	Short: "A theme scaffolding tool",
	Long:  "Anvil scaffolds new custom themes from starter templates.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logging.Setup(verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "anvil.yaml", "path to config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the configuration named by the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(configPath)
}
