package apperrors

import "errors"

// Standard application errors
var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input, including an upstream payload, cannot be interpreted.
	ErrInvalidInput = errors.New("invalid input provided")

	// ErrUnauthorized is returned when an upstream rejects our credentials.
	ErrUnauthorized = errors.New("unauthorized access")

	// ErrExternalServiceFailure is returned when an interaction with an external service fails.
	ErrExternalServiceFailure = errors.New("external service interaction failed")

	// ErrTimeout is returned when an operation times out.
	ErrTimeout = errors.New("operation timed out")
)
