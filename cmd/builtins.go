package cmd

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/sgrep/commands"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the commands available in the playground
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands available in the playground.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, builtin := range commands.ListBuiltinCommands() {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(builtin.Names, ", "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
