package cmd

import (
	"fmt"
	"os"

	"github.com/josephlewis42/sgrep/core/config"
	"github.com/spf13/cobra"
)

var cfgPath string

// configCmd shows the configuration searches would use
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate and print the effective configuration.",
	Long: `Print the configuration a search would use: the file named by --config,
otherwise the one named by $SGREP_CONFIG, otherwise the built-in defaults.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, source, err := config.Find(hostFs, cfgPath, os.Getenv)
		if err != nil {
			return err
		}

		out, err := cfg.Marshal()
		if err != nil {
			return err
		}

		if source == "" {
			source = "built-in defaults"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&cfgPath, "config", "", "config path")
}
