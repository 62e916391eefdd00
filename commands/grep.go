package commands

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/sgrep/core/config"
	"github.com/josephlewis42/sgrep/core/logger"
	"github.com/josephlewis42/sgrep/core/match"
	"github.com/josephlewis42/sgrep/core/vos"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	errNoPattern = errors.New("No pattern given! Please define a pattern to search for.")
	errNoInput   = errors.New("No input file(s) or standard input given!")
)

// Grep searches files and piped standard input for lines matching a
// regular expression.
//
// Settings come from the configuration file first, flags can only switch
// more features on.
func Grep(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "sgrep [OPTIONS] PATTERN [FILE...]",
		Short: "Search files and piped standard input for lines matching PATTERN.",
	}

	opts := cmd.Flags()
	ignoreCase := opts.BoolLong("ignore-case", 'i', "ignore case distinctions in both the pattern and the input")
	invert := opts.BoolLong("invert-match", 'v', "select non-matching lines")
	wordRegexp := opts.BoolLong("word-regexp", 'w', "select only lines containing matches that form whole words")
	onlyMatching := opts.BoolLong("only-matching", 'o', "print only the matched (non-empty) parts of a matching line, each on a separate line")
	var maxCount int
	maxCountOpt := opts.FlagLong(&maxCount, "context", 'C', "stop after printing NUM lines, ignored with -o", "NUM")
	configPath := opts.StringLong("config", 0, "", "read defaults from PATH instead of $"+config.EnvConfig, "PATH")
	engine := opts.EnumLong("engine", 0, []string{string(match.EngineStd), string(match.EngineCoregex)}, "", "regular expression engine (std|coregex)")
	noHeaders := opts.BoolLong("no-headers", 0, "don't print a File: line before each input")
	debug := opts.BoolLong("debug", 0, "write diagnostics to standard error")

	return cmd.Run(virtOS, func() int {
		cfg, cfgSource, err := config.Find(virtOS, *configPath, virtOS.Getenv)
		if err != nil {
			cmd.LogProgramError(virtOS, fmt.Errorf("couldn't load config: %w", err))
			return 1
		}

		level := cfg.LogLevel
		if *debug {
			level = "debug"
		}
		log, err := processLogger(virtOS, level)
		if err != nil {
			cmd.LogProgramError(virtOS, err)
			return 1
		}
		defer log.Sync()
		log.Debug("loaded config", zap.String("source", cfgSource))

		searchOpts := cfg.Options()
		searchOpts.IgnoreCase = searchOpts.IgnoreCase || *ignoreCase
		searchOpts.InvertMatch = searchOpts.InvertMatch || *invert
		searchOpts.WordRegexp = searchOpts.WordRegexp || *wordRegexp
		searchOpts.OnlyMatching = searchOpts.OnlyMatching || *onlyMatching
		searchOpts.NoHeaders = searchOpts.NoHeaders || *noHeaders
		if maxCountOpt.Seen() {
			searchOpts.Limit = match.Limit{Enabled: true, Max: maxCount}
		}
		if *engine != "" {
			searchOpts.Engine = match.Engine(*engine)
		}

		if err := searchOpts.Validate(); err != nil {
			virtOS.LogInvalidInvocation(err)
			cmd.LogProgramError(virtOS, err)
			return 1
		}

		searchOpts, warnings := match.Resolve(searchOpts)
		for _, w := range warnings {
			log.Info("option ignored", zap.String("option", w.Option))
			fmt.Fprintf(virtOS.Stderr(), "%s: warning: %s\n", programName(virtOS), w)
		}

		args := opts.Args()
		if len(args) == 0 {
			virtOS.LogInvalidInvocation(errNoPattern)
			cmd.LogProgramError(virtOS, errNoPattern)
			return 1
		}
		pattern, files := args[0], args[1:]

		if len(files) == 0 && !virtOS.StdinHasData() {
			virtOS.LogInvalidInvocation(errNoInput)
			cmd.LogProgramError(virtOS, errNoInput)
			fmt.Fprintf(virtOS.Stderr(), "Use %s -h or --help for instructions.\n", programName(virtOS))
			return 1
		}

		sources, closeSources, err := OpenEachFileOrStdin(virtOS, files)
		if err != nil {
			cmd.LogProgramError(virtOS, err)
			return 1
		}
		defer closeSources()

		compiled, err := match.Compile(pattern, searchOpts)
		if err != nil {
			cmd.LogProgramError(virtOS, err)
			return 1
		}
		log.Debug("searching",
			zap.String("pattern", compiled.String()),
			logger.Options(searchOpts),
			zap.Int("sources", len(sources)))

		stats, err := match.NewSearcher(compiled, searchOpts).Search(virtOS.Stdout(), sources...)
		log.Debug("search finished", logger.Stats(stats))
		if err != nil {
			cmd.LogProgramError(virtOS, err)
			return 1
		}

		return 0
	})
}

// processLogger sends diagnostics at level to stderr as well as to the
// logger the process was started with.
func processLogger(virtOS vos.VOS, level string) (*zap.Logger, error) {
	stderrLog, err := logger.New(virtOS.Stderr(), level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewTee(virtOS.Logger().Core(), stderrLog.Core())
	return zap.New(core).Named(programName(virtOS)), nil
}

var _ vos.ProcessFunc = Grep

func init() {
	mustAddCmd(Grep, "grep", "sgrep")
}
