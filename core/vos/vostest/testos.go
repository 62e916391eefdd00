// Package vostest runs processes against an in-memory OS for tests.
package vostest

import (
	"bytes"
	"io"

	"github.com/josephlewis42/sgrep/core/vos"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// If Env is non-empty, it gives the environment variables for the
	// new process in the form returned by Environ.
	Env []string
	// FS is the filesystem the process runs against, it's shared between
	// runs so files can be staged before calling Run.
	FS afero.Fs
	// Logger receives the process diagnostics, nil discards them.
	Logger *zap.Logger

	// Stdin is the process input, a nil Stdin is treated like a terminal
	// with nothing piped in.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int
}

// Command creates a command with an empty in-memory filesystem.
func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		FS:      afero.NewMemMapFs(),
	}
}

// CombinedOutput runs the command and returns stdout and stderr
// interleaved.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Output runs the command and returns stdout and stderr separately.
func (c *Cmd) Output() (stdout, stderr []byte, err error) {
	outBuf, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	c.Stdout = outBuf
	c.Stderr = errBuf

	if err := c.Run(); err != nil {
		return nil, nil, err
	}
	return outBuf.Bytes(), errBuf.Bytes(), nil
}

// Run starts the command and waits for it to complete.
func (c *Cmd) Run() error {
	if c.FS == nil {
		c.FS = afero.NewMemMapFs()
	}

	hasStdin := c.Stdin != nil
	c.ExitStatus = vos.Run(c.Process, c.FS, c.Argv, &vos.ProcAttr{
		Env:        c.Env,
		Files:      vos.NewVIOAdapter(c.Stdin, c.Stdout, c.Stderr),
		StdinProbe: func() bool { return hasStdin },
		Logger:     c.Logger,
	})
	return nil
}
