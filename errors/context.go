package errors

import "errors"

// asPlatformError returns err as a PlatformError, converting plain errors to
// one with CodeUnknown, along with the cause the rebuilt error should wrap.
// PlatformErrors implemented outside this package stay in the chain so
// errors.As can still find them.
func asPlatformError(err error) (PlatformError, error) {
	var platformErr PlatformError
	if !errors.As(err, &platformErr) {
		return &platformError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}, err
	}
	if _, ok := platformErr.(*platformError); ok {
		return platformErr, platformErr.Unwrap()
	}
	return platformErr, err
}

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "command", name)
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	platformErr, cause := asPlatformError(err)
	newContext := platformErr.Context()
	if newContext == nil {
		newContext = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        newContext,
		cause:          cause,
	}
}

// WithClassification overrides the classification of an error.
//
// Subprocess failures are permanent by default. A caller that knows a
// particular tool fails transiently can mark its errors retryable:
//
//	if err != nil && isFlakyNetworkTool {
//	    err = errors.WithClassification(err, errors.ClassificationRetryable)
//	}
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) PlatformError {
	if err == nil {
		return nil
	}

	platformErr, cause := asPlatformError(err)
	return &platformError{
		code:           platformErr.Code(),
		classification: classification,
		message:        platformErr.Message(),
		context:        platformErr.Context(),
		cause:          cause,
	}
}
