package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/josephlewis42/sgrep/core/match"
	"github.com/josephlewis42/sgrep/core/vos"
	getopt "github.com/pborman/getopt/v2"
)

// AllCommands holds a list of all registered commands by name.
var AllCommands = make(map[string]vos.ProcessFunc)

// BuiltinCommand is a registered process and every name it answers to.
type BuiltinCommand struct {
	Names []string
	Proc  vos.ProcessFunc
}

// mustAddCmd registers a command under each of the names.
func mustAddCmd(proc vos.ProcessFunc, names ...string) {
	for _, name := range names {
		if _, ok := AllCommands[name]; ok {
			panic(fmt.Sprintf("command %q registered twice", name))
		}
		AllCommands[name] = proc
	}
	builtins = append(builtins, BuiltinCommand{Names: names, Proc: proc})
}

var builtins []BuiltinCommand

// ListBuiltinCommands returns the registered commands sorted by first name.
func ListBuiltinCommands() []BuiltinCommand {
	out := append([]BuiltinCommand(nil), builtins...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Names[0] < out[j].Names[0]
	})
	return out
}

// BuiltinProcessResolver looks up a registered command by name.
func BuiltinProcessResolver(name string) vos.ProcessFunc {
	return AllCommands[name]
}

var _ vos.ProcessResolver = BuiltinProcessResolver

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was succcessful call the callback.
func (s *SimpleCommand) Run(virtOS vos.VOS, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(virtOS.Args(), nil)
	if err != nil {
		virtOS.LogInvalidInvocation(err)
	}

	if err != nil && !s.NeverBail {
		fmt.Fprintf(virtOS.Stderr(), "error: %s\n\n", err)

		s.PrintHelp(virtOS.Stdout())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(virtOS.Stdout())
		return 0
	}

	return callback()
}

// RunE runs the command like Run, a non-nil error from the callback is
// printed and turned into exit status 1.
func (s *SimpleCommand) RunE(virtOS vos.VOS, callback func() error) int {
	return s.Run(virtOS, func() int {
		if err := callback(); err != nil {
			s.LogProgramError(virtOS, err)
			return 1
		}
		return 0
	})
}

// LogProgramError writes the error to stderr prefixed by the program name.
// A MissingFileError is written as is.
func (s *SimpleCommand) LogProgramError(virtOS vos.VOS, err error) {
	var missing *MissingFileError
	if errors.As(err, &missing) {
		fmt.Fprintln(virtOS.Stderr(), err)
		return
	}
	fmt.Fprintf(virtOS.Stderr(), "%s: %s\n", programName(virtOS), err)
}

func programName(virtOS vos.VOS) string {
	if args := virtOS.Args(); len(args) > 0 {
		return args[0]
	}
	return "sgrep"
}

// MissingFileError is returned when an input file can't be opened.
type MissingFileError struct {
	Name string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("No file %s found!", e.Name)
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// OpenEachFileOrStdin opens piped stdin, if it carries data, followed by
// every file in order. Nothing is returned unless every file opened. The
// returned function closes the files.
func OpenEachFileOrStdin(virtOS vos.VOS, files []string) ([]match.Source, func(), error) {
	var (
		sources []match.Source
		closers []io.Closer
	)
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	if virtOS.StdinHasData() {
		sources = append(sources, match.Source{Name: match.StdinName, Reader: virtOS.Stdin()})
	}

	for _, name := range files {
		fd, err := virtOS.Open(name)
		if err == nil {
			// Directories open fine on most filesystems but can't be read.
			if info, statErr := fd.Stat(); statErr == nil && info.IsDir() {
				fd.Close()
				err = fmt.Errorf("%s is a directory", name)
			}
		}
		if err != nil {
			closeAll()
			return nil, func() {}, &MissingFileError{Name: name, Err: err}
		}

		closers = append(closers, fd)
		sources = append(sources, match.Source{Name: name, Reader: fd})
	}

	return sources, closeAll, nil
}
