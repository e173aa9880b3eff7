package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration as YAML",
	Long: `Print the configuration a game would start with, after the
config file search and the difficulty preset are applied. The output
is a valid config file and can be edited and passed back with --config.

Examples:
  rabbit config > my-rabbit.yaml
  rabbit config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadGameConfig()
		if err != nil {
			return err
		}
		return cfg.WriteYAML(os.Stdout)
	},
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}
