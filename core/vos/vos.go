package vos

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// VFS is the filesystem a process sees.
type VFS = afero.Fs

// ProcessFunc is a "process" that can be run, it returns the exit status.
type ProcessFunc func(VOS) int

// ProcessResolver looks up a process by name, it returns nil if no process
// was found.
type ProcessResolver func(name string) ProcessFunc

// VOS provides a virtual OS interface.
type VOS interface {
	VIO
	VEnv
	VFS

	// Args returns the command line, starting with the program name.
	Args() []string

	// StdinHasData reports whether Stdin is carrying input rather than
	// being attached to a terminal or nothing at all.
	StdinHasData() bool

	// Logger returns the diagnostic logger for the process.
	Logger() *zap.Logger

	// LogInvalidInvocation records that the process was called incorrectly.
	LogInvalidInvocation(err error)
}
