package exec

import (
	"fmt"

	"github.com/jmgilman/go/cmdrun/errors"
)

// ErrorKind identifies the phase of execution that failed.
type ErrorKind int

const (
	// KindSpawn means the process could not be started, e.g. because the
	// program does not exist. No Result is available.
	KindSpawn ErrorKind = iota + 1

	// KindWait means waiting for the started process failed at the OS level.
	// No Result is available.
	KindWait

	// KindExit means Check was set and the process exited non-zero or was
	// killed by a signal. The Result is available.
	KindExit
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindSpawn:
		return "spawn"
	case KindWait:
		return "wait"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// ExecError represents a failed command execution.
// It implements errors.PlatformError.
type ExecError struct {
	// Kind is the phase that failed.
	Kind ErrorKind

	// Command is a snapshot of the command that was run.
	Command *Command

	// Err is the underlying OS error for KindSpawn and KindWait.
	Err error

	// Result is the outcome of the process for KindExit.
	Result *Result
}

var _ errors.PlatformError = (*ExecError)(nil)

// Error implements the error interface.
func (e *ExecError) Error() string {
	line := e.commandLine()
	switch e.Kind {
	case KindSpawn:
		return fmt.Sprintf("failed to launch '%s': %v", line, e.Err)
	case KindWait:
		return fmt.Sprintf("failed to wait for '%s': %v", line, e.Err)
	default:
		if e.Result == nil {
			return fmt.Sprintf("command '%s' failed", line)
		}
		return fmt.Sprintf("command '%s' failed: %s", line, e.Result.Status)
	}
}

func (e *ExecError) commandLine() string {
	if e.Command == nil {
		return ""
	}
	return e.Command.CommandLine()
}

// Unwrap returns the underlying OS error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// IsSpawnError reports whether the process failed to start.
func (e *ExecError) IsSpawnError() bool {
	return e.Kind == KindSpawn
}

// IsWaitError reports whether waiting for the process failed.
func (e *ExecError) IsWaitError() bool {
	return e.Kind == KindWait
}

// IsExitError reports whether the process ran and exited unsuccessfully.
func (e *ExecError) IsExitError() bool {
	return e.Kind == KindExit
}

// Code returns the error code for the failed phase.
func (e *ExecError) Code() errors.ErrorCode {
	switch e.Kind {
	case KindSpawn:
		return errors.CodeSpawnFailed
	case KindWait:
		return errors.CodeWaitFailed
	case KindExit:
		return errors.CodeExitFailed
	default:
		return errors.CodeUnknown
	}
}

// Classification returns the default classification for the error code.
func (e *ExecError) Classification() errors.ErrorClassification {
	return errors.DefaultClassification(e.Code())
}

// Message returns the human-readable error message.
func (e *ExecError) Message() string {
	return e.Error()
}

// Context returns the command line, the failed phase and, for exit errors,
// the exit code and signal.
func (e *ExecError) Context() map[string]interface{} {
	ctx := map[string]interface{}{
		"command": e.commandLine(),
		"kind":    e.Kind.String(),
	}
	if e.Result != nil {
		ctx["exit_code"] = e.Result.Status.Code
		if sig := e.Result.Status.Signal; sig != nil {
			ctx["signal"] = sig.String()
		}
	}
	return ctx
}
