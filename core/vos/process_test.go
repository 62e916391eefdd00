package vos

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewProcess_defaults(t *testing.T) {
	proc := NewProcess(afero.NewMemMapFs(), []string{"grep", "x"}, nil)

	assert.Equal(t, []string{"grep", "x"}, proc.Args())
	assert.False(t, proc.StdinHasData())
	assert.NotNil(t, proc.Logger())

	n, err := proc.Stdout().Write([]byte("discarded"))
	assert.Nil(t, err)
	assert.Equal(t, 9, n)

	_, err = proc.Stdin().Read(make([]byte, 1))
	assert.Equal(t, io.EOF, err)
}

func TestNewProcess_attrs(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Nil(t, afero.WriteFile(fs, "/in.txt", []byte("hi"), 0600))

	proc := NewProcess(fs, []string{"grep"}, &ProcAttr{
		Env:        []string{"SGREP_CONFIG=/etc/sgrep.yaml"},
		StdinProbe: func() bool { return true },
	})

	assert.True(t, proc.StdinHasData())
	assert.Equal(t, "/etc/sgrep.yaml", proc.Getenv("SGREP_CONFIG"))

	data, err := afero.ReadFile(proc, "/in.txt")
	assert.Nil(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestLogInvalidInvocation(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	proc := NewProcess(afero.NewMemMapFs(), []string{"grep", "-Q"}, &ProcAttr{Logger: zap.New(core)})

	proc.LogInvalidInvocation(errors.New("unknown option -Q"))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "invalid invocation", entries[0].Message)
		assert.Equal(t, "grep", entries[0].LoggerName)
		fields := entries[0].ContextMap()
		assert.Equal(t, "unknown option -Q", fields["error"])
	}
}

func TestFileHasData(t *testing.T) {
	assert.False(t, FileHasData(nil))

	path := filepath.Join(t.TempDir(), "input.txt")
	assert.Nil(t, os.WriteFile(path, []byte("data\n"), 0600))
	fd, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	assert.True(t, FileHasData(fd), "regular files carry data")

	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer devNull.Close()
	assert.False(t, FileHasData(devNull), "character devices don't")
}
