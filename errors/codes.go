package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural serialization.
type ErrorCode string

const (
	// Execution errors.

	// CodeSpawnFailed indicates a process could not be started (e.g. the
	// program does not exist or is not executable).
	CodeSpawnFailed ErrorCode = "SPAWN_FAILED"

	// CodeWaitFailed indicates waiting for a started process failed at the OS level.
	CodeWaitFailed ErrorCode = "WAIT_FAILED"

	// CodeExitFailed indicates a checked process exited non-zero or was
	// terminated by a signal.
	CodeExitFailed ErrorCode = "EXIT_FAILED"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a command manifest could not be decoded.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
