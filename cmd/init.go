package cmd

import (
	"log"

	"github.com/josephlewis42/sgrep/core/config"
	"github.com/spf13/cobra"
)

var initDir string

// initCmd writes the default configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to sgrep.yaml.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		if _, err := config.Initialize(hostFs, initDir, logger); err != nil {
			return err
		}
		logger.Printf("Use it with --config or by setting $%s.\n", config.EnvConfig)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initDir, "dir", ".", "directory to write the configuration to")
}
