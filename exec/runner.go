package exec

import (
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"path/filepath"
	"sync"

	"github.com/jmgilman/go/cmdrun/errors"
)

// Runner executes Commands. It is the concrete implementation of the
// Executor interface.
//
// A Runner holds global settings applied to every command it runs; a
// Command's own settings override them. Runners are not modified by Run and
// are safe for concurrent use.
type Runner struct {
	config *config
	logger Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner with the given options. By default it logs
// nowhere and connects uncaptured children to the caller's stdin, stdout
// and stderr.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		config: newConfig(),
		logger: NopLogger(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var defaultRunner = sync.OnceValue(func() *Runner {
	return NewRunner()
})

// DefaultRunner returns the Runner used by Command.Run.
func DefaultRunner() *Runner {
	return defaultRunner()
}

// Run executes cmd and waits for it to exit.
//
// If the process could not be started or waited on, Run returns a nil Result
// and an *ExecError of KindSpawn or KindWait. Otherwise it returns the
// Result; if cmd.Check is set and the process did not succeed, it also
// returns an *ExecError of KindExit carrying the same Result.
func (r *Runner) Run(cmd *Command) (*Result, error) {
	if cmd == nil {
		cmd = &Command{}
	}
	cmd = cmd.Clone()

	line := cmd.CommandLine()
	if cmd.LogCommand {
		r.logger.Info(line)
	}
	if cmd.PrintCommand && r.stdout != nil {
		_, _ = fmt.Fprintln(r.stdout, line)
	}

	env := r.config.environ(cmd)
	c := osexec.Command(cmd.Program, cmd.Args...)
	c.Dir = r.config.effectiveDir(cmd)
	c.Env = env

	// osexec.Command searched the parent's PATH. A bare name must be found
	// on the PATH the child will see.
	if path, ok := envValue(env, "PATH"); ok && path != os.Getenv("PATH") && isBareName(cmd.Program) {
		resolved, err := lookPath(cmd.Program, path)
		if err != nil {
			return nil, &ExecError{Kind: KindSpawn, Command: cmd, Err: err}
		}
		c.Path = resolved
		c.Err = nil
	}

	var stdout, stderr *captureBuffer
	switch {
	case !cmd.Capture:
		c.Stdin = r.stdin
		c.Stdout = r.stdout
		c.Stderr = r.stderr
	case cmd.CombineOutput:
		stdout = newCaptureBuffer()
		c.Stdout = stdout
		c.Stderr = stdout
	default:
		stdout = newCaptureBuffer()
		stderr = newCaptureBuffer()
		c.Stdout = stdout
		c.Stderr = stderr
	}

	if err := c.Start(); err != nil {
		return nil, &ExecError{Kind: KindSpawn, Command: cmd, Err: err}
	}

	if err := c.Wait(); err != nil {
		var exitErr *osexec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &ExecError{Kind: KindWait, Command: cmd, Err: err}
		}
	}

	result := &Result{
		Status: ExitStatus{
			Code:   c.ProcessState.ExitCode(),
			Signal: exitSignal(c.ProcessState),
		},
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if !cmd.Check || result.Success() {
		return result, nil
	}

	execErr := &ExecError{Kind: KindExit, Command: cmd, Result: result}
	if cmd.LogOutputOnError {
		r.logger.Error(failureReport(execErr))
	}
	return result, execErr
}

// isBareName reports whether program is a name to search for in PATH
// rather than a path.
func isBareName(program string) bool {
	return program != "" && filepath.Base(program) == program
}

// lookPath resolves file against the directories in path.
// Relative entries are skipped, as exec.LookPath refuses them too.
func lookPath(file, path string) (string, error) {
	for _, dir := range filepath.SplitList(path) {
		if !filepath.IsAbs(dir) {
			continue
		}
		if resolved, err := osexec.LookPath(filepath.Join(dir, file)); err == nil {
			return resolved, nil
		}
	}
	return "", &osexec.Error{Name: file, Err: osexec.ErrNotFound}
}

// failureReport renders a checked failure together with whatever output
// was captured.
func failureReport(e *ExecError) string {
	switch {
	case !e.Command.Capture:
		return e.Error()
	case e.Command.CombineOutput:
		return fmt.Sprintf("%s\noutput:\n%s", e.Error(), e.Result.StdoutString())
	default:
		return fmt.Sprintf("%s\nstdout:\n%s\nstderr:\n%s",
			e.Error(), e.Result.StdoutString(), e.Result.StderrString())
	}
}
