package interpreter

import (
	"io"
	"os"

	"github.com/leonardinius/golox/internal/loxerrors"
)

type interpreterOpts struct {
	env      *Environment
	stdout   io.Writer
	stderr   io.Writer
	reporter loxerrors.ErrReporter
}

var defaultInterpreterOpts = interpreterOpts{
	stdout: os.Stdout,
	stderr: os.Stderr,
}

type InterpreterOption func(*interpreterOpts)

// WithEnvironment runs the interpreter on an existing environment,
// e.g. to share globals between interpreters.
func WithEnvironment(env *Environment) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.env = env
	}
}

func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

// WithStderr sets where runtime errors go when no reporter is given.
func WithStderr(stderr io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r loxerrors.ErrReporter) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.reporter = r
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.env == nil {
		opts.env = NewEnvironment()
	}

	if opts.reporter == nil {
		opts.reporter = loxerrors.NewDiagnostics(opts.stderr)
	}

	return &opts
}
