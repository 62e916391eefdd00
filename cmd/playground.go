package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"github.com/josephlewis42/sgrep/commands"
	"github.com/josephlewis42/sgrep/core/vos"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const playgroundHelp = `Type a search the way you would on the command line, without the program
name, e.g. -i -w error /var/log/syslog. Other commands: %s.
Type exit or press Ctrl-D to leave.
`

type playground struct {
	fs     vos.VFS
	env    []string
	out    io.Writer
	errOut io.Writer

	isTerminal bool
	lastRet    int
}

func (p *playground) prompt() string {
	prompt := color.New(color.FgGreen, color.Bold)
	if p.isTerminal {
		prompt.EnableColor()
	} else {
		prompt.DisableColor()
	}

	if p.lastRet != 0 {
		return prompt.Sprint("sgrep") + fmt.Sprintf(" [%d]> ", p.lastRet)
	}
	return prompt.Sprint("sgrep") + "> "
}

func (p *playground) printHelp() {
	var names []string
	for _, builtin := range commands.ListBuiltinCommands() {
		names = append(names, builtin.Names...)
	}
	fmt.Fprintf(p.out, playgroundHelp, strings.Join(names, ", "))
}

// runLine runs one line of input and reports whether the session should
// end. Lines that don't start with a builtin name are searches.
func (p *playground) runLine(line string) bool {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		fmt.Fprintf(p.errOut, "playground: %s\n", err)
		return false
	}
	if len(tokens) == 0 {
		return false
	}

	switch tokens[0] {
	case "exit", "quit":
		return true
	case "help", "?":
		p.printHelp()
		return false
	}

	argv := tokens
	proc := commands.BuiltinProcessResolver(tokens[0])
	if proc == nil {
		proc = commands.Grep
		argv = append([]string{"sgrep"}, tokens...)
	}

	p.lastRet = vos.Run(proc, p.fs, argv, &vos.ProcAttr{
		Env:   p.env,
		Files: vos.NewVIOAdapter(nil, p.out, p.errOut),
	})
	return false
}

func (p *playground) run(in io.Reader) error {
	cfg := &readline.Config{
		Prompt: p.prompt(),
		Stdin:  readline.NewCancelableStdin(in),
		Stdout: p.out,
		Stderr: p.errOut,
		FuncIsTerminal: func() bool {
			return p.isTerminal
		},
	}
	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			if len(line) == 0 {
				return nil
			}
			continue
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if p.runLine(line) {
			return nil
		}
		rl.SetPrompt(p.prompt())
	}
}

// playgroundCmd runs searches interactively over the local filesystem
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Try searches interactively against local files.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		in := cmd.InOrStdin()
		p := &playground{
			fs:     hostFs,
			env:    os.Environ(),
			out:    cmd.OutOrStdout(),
			errOut: cmd.ErrOrStderr(),
		}
		if f, ok := in.(*os.File); ok {
			p.isTerminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}

		if p.isTerminal {
			p.printHelp()
		}
		return p.run(in)
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}
