package generation

import "errors"

// Common errors returned by model gateway implementations
var (
	// ErrModelFailure is returned when a remote model call fails or returns
	// an unusable payload (e.g. no image part in an image response)
	ErrModelFailure = errors.New("model call failed")

	// ErrInvalidResponse is returned when the model response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during model call")

	// ErrInvalidConfig is returned when the gateway configuration is invalid
	ErrInvalidConfig = errors.New("invalid gateway configuration")

	// ErrEmptyPrompt is returned when a prompt is empty
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
