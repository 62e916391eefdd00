package match

import (
	"errors"
	"fmt"
)

// Engine names a regular expression implementation.
type Engine string

const (
	// EngineStd uses the Go standard library regexp package.
	EngineStd Engine = "std"
	// EngineCoregex uses github.com/coregx/coregex.
	EngineCoregex Engine = "coregex"
)

// Engines lists the supported engines in display order.
var Engines = []Engine{EngineStd, EngineCoregex}

// ErrBadOptions is returned when Options can't be used for a search.
var ErrBadOptions = errors.New("invalid options")

// Limit caps the number of whole lines a search writes.
type Limit struct {
	Enabled bool
	Max     int
}

// Options control how lines are selected and printed.
type Options struct {
	// IgnoreCase matches without regard to case.
	IgnoreCase bool
	// InvertMatch selects lines that don't match.
	InvertMatch bool
	// WordRegexp only matches whole words.
	WordRegexp bool
	// OnlyMatching prints each matched part of a line instead of the line.
	OnlyMatching bool
	// Limit stops the search after a number of printed lines.
	Limit Limit
	// SkipBlank ignores lines holding nothing but whitespace.
	SkipBlank bool
	// NoHeaders suppresses the "File: NAME" line before each source.
	NoHeaders bool
	// Engine picks the regular expression implementation, empty means EngineStd.
	Engine Engine
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SkipBlank: true,
		Engine:    EngineStd,
	}
}

// Warning describes an option that was dropped during resolution.
type Warning struct {
	// Option is the short flag that was ignored.
	Option  string
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// Validate checks the options for values that can't be searched with.
func (o Options) Validate() error {
	if o.Limit.Enabled && o.Limit.Max < 0 {
		return fmt.Errorf("%w: max count %d is negative", ErrBadOptions, o.Limit.Max)
	}

	switch o.Engine {
	case "", EngineStd, EngineCoregex:
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrBadOptions, o.Engine)
	}

	return nil
}

// Resolve settles mutually exclusive options. Conflicts are handled in a
// fixed order and each one drops an option and adds a warning; nothing is
// ever switched on.
func Resolve(o Options) (Options, []Warning) {
	var warnings []Warning

	if o.OnlyMatching && o.Limit.Enabled {
		o.Limit = Limit{}
		warnings = append(warnings, Warning{
			Option:  "-C",
			Message: "-o and -C are both enabled. -C isn't allowed with -o option! Ignoring -C",
		})
	}

	// Inverted lines are the ones without a match, there's no part to print.
	if o.OnlyMatching && o.InvertMatch {
		o.OnlyMatching = false
		warnings = append(warnings, Warning{
			Option:  "-o",
			Message: "-o has no effect with -v, printing whole lines. Ignoring -o",
		})
	}

	return o, warnings
}
