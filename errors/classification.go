package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// A failed subprocess is the caller's to act on, so every execution code
// starts out permanent. Callers that know better (a flaky network tool, say)
// override it with WithClassification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeSpawnFailed: ClassificationPermanent,
	CodeWaitFailed:  ClassificationPermanent,
	CodeExitFailed:  ClassificationPermanent,

	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,

	CodeInternal: ClassificationPermanent,
	CodeUnknown:  ClassificationPermanent,
}

// DefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func DefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
