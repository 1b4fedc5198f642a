package exec

import (
	"io"
	"os"
	"strconv"
	"strings"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor is the interface for running commands.
// *Runner is the production implementation; the mocks package provides a
// test double.
type Executor interface {
	// Run executes cmd and blocks until the child exits.
	// It returns a *Result for every process that ran. A non-nil error is
	// always an *ExecError; for a checked failure the Result is returned
	// alongside it.
	Run(cmd *Command) (*Result, error)
}

// ExitStatus describes how a child process terminated.
type ExitStatus struct {
	// Code is the exit code, or -1 if the process was killed by a signal.
	Code int

	// Signal is the signal that terminated the process, if any.
	Signal os.Signal
}

// Success reports whether the process exited with code zero.
func (s ExitStatus) Success() bool {
	return s.Code == 0 && s.Signal == nil
}

// String returns "exit status: N" or "signal: NAME".
func (s ExitStatus) String() string {
	if s.Signal != nil {
		return "signal: " + s.Signal.String()
	}
	return "exit status: " + strconv.Itoa(s.Code)
}

// Result represents the outcome of a completed command.
type Result struct {
	// Status is the exit status of the process.
	Status ExitStatus

	// Stdout holds the captured standard output. With CombineOutput it holds
	// stdout and stderr interleaved in the order the child wrote them.
	// Empty if output was not captured.
	Stdout []byte

	// Stderr holds the captured standard error. Empty if output was not
	// captured or was combined into Stdout.
	Stderr []byte
}

// Success reports whether the process exited with code zero.
func (r *Result) Success() bool {
	return r.Status.Success()
}

// ExitCode returns the exit code, or -1 if the process was killed by a signal.
func (r *Result) ExitCode() int {
	return r.Status.Code
}

// StdoutString returns stdout with invalid UTF-8 replaced by U+FFFD.
func (r *Result) StdoutString() string {
	return strings.ToValidUTF8(string(r.Stdout), "\uFFFD")
}

// StderrString returns stderr with invalid UTF-8 replaced by U+FFFD.
func (r *Result) StderrString() string {
	return strings.ToValidUTF8(string(r.Stderr), "\uFFFD")
}

// Option is a function that configures a Runner with global settings.
// Settings on a Command override them.
type Option func(*Runner)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(r *Runner) {
		for k, v := range env {
			r.config.env[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(r *Runner) {
		r.config.dir = dir
	}
}

// WithDisableColors returns an Option that globally disables color output.
func WithDisableColors() Option {
	return func(r *Runner) {
		r.config.disableColors = true
	}
}

// WithLogger returns an Option that sets the logger used for LogCommand and
// LogOutputOnError.
func WithLogger(logger Logger) Option {
	return func(r *Runner) {
		if logger == nil {
			logger = NopLogger()
		}
		r.logger = logger
	}
}

// WithStdout returns an Option that sets the stream commands are printed to
// and that uncaptured children write their stdout to.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr returns an Option that sets the stream uncaptured children
// write their stderr to.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		r.stderr = w
	}
}

// WithStdin returns an Option that sets the stream uncaptured children read from.
func WithStdin(rd io.Reader) Option {
	return func(r *Runner) {
		r.stdin = rd
	}
}
