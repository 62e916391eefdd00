package match

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// StdinName is the source name used for standard input.
const StdinName = "<stdin>"

// Source is a named stream of lines.
type Source struct {
	Name   string
	Reader io.Reader
}

// Decision is the outcome of looking at a single line.
type Decision struct {
	// Selected is set if the line passed the match/invert test.
	Selected bool
	// Output holds the lines to print, it may be empty for a selected line
	// when only empty matches were found.
	Output []string
}

// Stats summarize a search.
type Stats struct {
	Sources       int
	LinesRead     int
	LinesSelected int
	LinesWritten  int
	// Truncated is set when the limit stopped reading a source early.
	Truncated bool
}

// Searcher applies a pattern and options to lines.
type Searcher struct {
	pattern Pattern
	opts    Options
}

// NewSearcher creates a searcher, opts should already be resolved.
func NewSearcher(pattern Pattern, opts Options) *Searcher {
	return &Searcher{
		pattern: pattern,
		opts:    opts,
	}
}

// Options returns the options the searcher was built with.
func (s *Searcher) Options() Options {
	return s.opts
}

// Decide decides whether line is selected and what gets printed for it.
func (s *Searcher) Decide(line string) Decision {
	if s.opts.SkipBlank && strings.TrimSpace(line) == "" {
		return Decision{}
	}

	if s.opts.InvertMatch {
		if s.pattern.MatchString(line) {
			return Decision{}
		}
		return Decision{Selected: true, Output: []string{line}}
	}

	if !s.opts.OnlyMatching {
		if !s.pattern.MatchString(line) {
			return Decision{}
		}
		return Decision{Selected: true, Output: []string{line}}
	}

	locs := s.pattern.FindAllStringIndex(line, -1)
	if locs == nil {
		return Decision{}
	}

	out := Decision{Selected: true}
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		out.Output = append(out.Output, line[loc[0]:loc[1]])
	}
	return out
}

// Search writes the output for each source to w in order. The line limit
// spans all sources; once it's reached the remaining sources only get their
// header.
func (s *Searcher) Search(w io.Writer, sources ...Source) (Stats, error) {
	var stats Stats
	bw := bufio.NewWriter(w)

	// Only-matching output never counts toward the limit.
	counted := 0
	limitReached := func() bool {
		return s.opts.Limit.Enabled && !s.opts.OnlyMatching && counted >= s.opts.Limit.Max
	}

	err := func() error {
		for _, src := range sources {
			stats.Sources++

			if !s.opts.NoHeaders {
				if _, err := fmt.Fprintf(bw, "File: %s\n", src.Name); err != nil {
					return err
				}
			}

			if limitReached() {
				stats.Truncated = true
				continue
			}

			r := bufio.NewReader(src.Reader)
			for {
				line, readErr := r.ReadString('\n')
				if readErr != nil && !errors.Is(readErr, io.EOF) {
					return fmt.Errorf("%s: %w", src.Name, readErr)
				}
				if line == "" && readErr != nil {
					break
				}

				stats.LinesRead++
				decision := s.Decide(strings.TrimSuffix(line, "\n"))
				if decision.Selected {
					stats.LinesSelected++

					if limitReached() {
						stats.Truncated = true
						break
					}

					for _, out := range decision.Output {
						if _, err := fmt.Fprintln(bw, out); err != nil {
							return err
						}
						stats.LinesWritten++
					}

					if !s.opts.OnlyMatching {
						counted++
					}
				}

				if readErr != nil {
					break
				}
			}
		}
		return nil
	}()

	if flushErr := bw.Flush(); err == nil {
		err = flushErr
	}
	return stats, err
}
