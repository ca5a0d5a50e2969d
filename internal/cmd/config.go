package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	GroupID: GroupDiag,
	Short:   "Print the effective configuration",
	Long: `Print the configuration msbee runs with, after merging defaults, the
config file, MSBEE_* environment variables and flags. The output is valid
TOML and can be saved as the config file.

Examples:
  msbee config
  msbee config > ~/.config/msbee/config.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cfg.Write(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
