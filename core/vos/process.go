package vos

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ProcAttr holds the attributes that will be applied to a new process.
type ProcAttr struct {
	// Env holds the environment as "key=value" pairs.
	Env []string
	// Files holds the standard streams, nil means NewNullIO.
	Files VIO
	// StdinProbe reports whether stdin carries data, nil means it never does.
	StdinProbe func() bool
	// Logger is the diagnostic logger, nil means zap.NewNop.
	Logger *zap.Logger
}

type processOS struct {
	VFS
	VIO
	MapEnv

	args   []string
	probe  func() bool
	logger *zap.Logger
}

var _ VOS = (*processOS)(nil)

// NewProcess creates the OS view for a single process running over fs.
func NewProcess(fs VFS, argv []string, attr *ProcAttr) VOS {
	if attr == nil {
		attr = &ProcAttr{}
	}

	out := &processOS{
		VFS:    fs,
		VIO:    attr.Files,
		MapEnv: NewMapEnvFromEnvList(attr.Env),
		args:   append([]string(nil), argv...),
		probe:  attr.StdinProbe,
		logger: attr.Logger,
	}

	if out.VIO == nil {
		out.VIO = NewNullIO()
	}
	if out.logger == nil {
		out.logger = zap.NewNop()
	}
	if len(argv) > 0 {
		out.logger = out.logger.Named(argv[0])
	}

	return out
}

func (p *processOS) Args() []string {
	return p.args
}

func (p *processOS) StdinHasData() bool {
	return p.probe != nil && p.probe()
}

func (p *processOS) Logger() *zap.Logger {
	return p.logger
}

func (p *processOS) LogInvalidInvocation(err error) {
	p.logger.Warn("invalid invocation", zap.Strings("command", p.args), zap.Error(err))
}

// Run starts the process and returns its exit status.
func Run(process ProcessFunc, fs VFS, argv []string, attr *ProcAttr) int {
	return process(NewProcess(fs, argv, attr))
}

// HostProcAttr returns attributes wired to the real stdio and environment.
func HostProcAttr(logger *zap.Logger) *ProcAttr {
	return &ProcAttr{
		Env:   os.Environ(),
		Files: NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr),
		StdinProbe: func() bool {
			return FileHasData(os.Stdin)
		},
		Logger: logger,
	}
}

// NewHostFs returns the host filesystem.
func NewHostFs() VFS {
	return afero.NewOsFs()
}

// FileHasData reports whether f is a pipe or regular file rather than a
// terminal or character device like /dev/null.
func FileHasData(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
