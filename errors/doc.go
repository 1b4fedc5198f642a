// Package errors provides structured error handling for command execution.
//
// This package extends Go's standard error handling with error codes, retry
// classification and context metadata. It stays compatible with the standard
// library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidInput, "program must not be empty")
//	err := errors.Newf(errors.CodeInvalidConfig, "unknown command %q", name)
//
// Wrapping errors:
//
//	if err := yaml.Unmarshal(data, &doc); err != nil {
//	    return errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode command manifest")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "command", "build")
//
// # Error Codes
//
//   - Execution errors: CodeSpawnFailed, CodeWaitFailed, CodeExitFailed
//   - Validation errors: CodeInvalidInput, CodeInvalidConfig
//   - System errors: CodeInternal
//   - Generic: CodeUnknown
//
// The exec package's ExecError implements PlatformError, so
// errors.GetCode(err) tells a caller whether a command never started
// (CodeSpawnFailed) or ran and failed (CodeExitFailed).
//
// # Error Classification
//
// Every code defaults to ClassificationPermanent: subprocess failures are
// the caller's to act on and the library never retries. Use
// WithClassification to mark a specific failure retryable and IsRetryable
// to make retry decisions.
package errors
