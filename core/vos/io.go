package vos

import (
	"io"
)

// VIO holds the standard streams of a process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

type stdio struct {
	in       io.ReadCloser
	out, err io.WriteCloser
}

var _ VIO = (*stdio)(nil)

// NewVIOAdapter wraps plain streams. A nil stdin reads as empty and nil
// writers discard everything. Closing a stream that wasn't a Closer is a
// no-op.
func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) VIO {
	if stdin == nil {
		stdin = eofReader{}
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	return &stdio{
		in:  readCloser(stdin),
		out: writeCloser(stdout),
		err: writeCloser(stderr),
	}
}

// NewNullIO creates /dev/null style I/O.
func NewNullIO() VIO {
	return NewVIOAdapter(nil, nil, nil)
}

func (s *stdio) Stdin() io.ReadCloser   { return s.in }
func (s *stdio) Stdout() io.WriteCloser { return s.out }
func (s *stdio) Stderr() io.WriteCloser { return s.err }

func readCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func writeCloser(w io.Writer) io.WriteCloser {
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return nopWriteCloser{w}
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
