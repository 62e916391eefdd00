package match

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/coregx/coregex"
)

// ErrBadPattern is returned when an expression doesn't compile.
var ErrBadPattern = errors.New("invalid pattern")

// Pattern is a compiled expression. Both *regexp.Regexp and *coregex.Regex
// satisfy it.
type Pattern interface {
	MatchString(s string) bool
	FindAllStringIndex(s string, n int) [][]int
	String() string
}

var (
	_ Pattern = (*regexp.Regexp)(nil)
	_ Pattern = (*coregex.Regex)(nil)
)

// Expr builds the expression that is actually compiled for expr.
func Expr(expr string, opts Options) string {
	if opts.WordRegexp {
		expr = `\b(?:` + expr + `)\b`
	}
	if opts.IgnoreCase {
		expr = "(?i)" + expr
	}
	return expr
}

// Compile compiles expr with the engine and modifiers from opts.
func Compile(expr string, opts Options) (Pattern, error) {
	src := Expr(expr, opts)

	var (
		pattern Pattern
		err     error
	)
	switch opts.Engine {
	case "", EngineStd:
		pattern, err = regexp.Compile(src)
	case EngineCoregex:
		pattern, err = coregex.Compile(src)
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", ErrBadOptions, opts.Engine)
	}

	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, expr, err)
	}
	return pattern, nil
}
