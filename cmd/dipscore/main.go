package main

import (
	"os"

	"github.com/spf13/cobra"

	"dipscore/config"
)

var rootCmd = &cobra.Command{
	Use:   "dipscore",
	Short: "Diplomacy tournament scoring",
	Long:  `dipscore tracks Diplomacy tournaments and scores games, rounds and standings`,
}

var configPath string

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(systemsCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the --config file, or falls back to the built-in defaults
// when no file was given
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}
