package cmd

import (
	"io"
	"os"

	"github.com/josephlewis42/sgrep/commands"
	"github.com/josephlewis42/sgrep/core/vos"
	"github.com/spf13/cobra"
)

var (
	// hostFs is the filesystem every command runs against.
	hostFs = vos.NewHostFs()

	// exitStatus holds the status of the last search.
	exitStatus int
)

// rootCmd runs a search. Flags are handed to the search untouched, a
// subcommand is only chosen when the first argument names one; use "--" to
// search for a pattern that collides with a subcommand name.
var rootCmd = &cobra.Command{
	Use:   "sgrep [OPTIONS] PATTERN [FILE...]",
	Short: "Search files and piped standard input for lines matching a pattern.",
	Long: `Print the lines of each FILE, and of standard input when something is piped
in, that match the regular expression PATTERN. Run "sgrep --help" for the
search options.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		exitStatus = runProcess(cmd, commands.Grep, append([]string{cmd.Root().Name()}, args...))
		return nil
	},
}

// isSubcommand reports whether name selects a subcommand of the root.
func isSubcommand(name string) bool {
	if name == "help" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

// dispatch runs a subcommand when args starts with its name and a search
// otherwise. Cobra's own lookup is skipped for searches because it would
// pick a subcommand out of any operand, e.g. a FILE named "config".
func dispatch(args []string) error {
	exitStatus = 0
	if len(args) > 0 && isSubcommand(args[0]) {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	exitStatus = runProcess(rootCmd, commands.Grep, append([]string{rootCmd.Name()}, args...))
	return nil
}

// runProcess runs a builtin command over the host filesystem and
// environment with the cobra command's streams.
func runProcess(cmd *cobra.Command, proc vos.ProcessFunc, argv []string) int {
	in := cmd.InOrStdin()

	attr := vos.HostProcAttr(nil)
	attr.Files = vos.NewVIOAdapter(in, cmd.OutOrStdout(), cmd.ErrOrStderr())
	attr.StdinProbe = func() bool {
		return readerHasData(in)
	}

	return vos.Run(proc, hostFs, argv, attr)
}

func readerHasData(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return vos.FileHasData(f)
	}
	return r != nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(dispatch(os.Args[1:]))
	os.Exit(exitStatus)
}
