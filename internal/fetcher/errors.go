package fetcher

import (
	"fmt"
)

// ErrorType represents the category of error that occurred during a fetch operation
type ErrorType string

const (
	// ErrorTypeNotConfigured indicates the backing source has no credentials or
	// is disabled; callers treat this as an absent result, not a failure
	ErrorTypeNotConfigured ErrorType = "not_configured"
	// ErrorTypeProvider indicates the backing source failed during execution
	// (network error, bad status, malformed payload)
	ErrorTypeProvider ErrorType = "provider"
	// ErrorTypeTimeout indicates the guarded call exceeded its deadline
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeValidation indicates malformed caller input; the only kind that
	// surfaces past the boundary layer
	ErrorTypeValidation ErrorType = "validation"
)

// FetchError represents a structured error from a fetch operation
type FetchError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a provider error wrapping the underlying cause
func NewProviderError(message string, cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeProvider,
		Message: message,
		Cause:   cause,
	}
}

// NewStatusError creates a provider error for an unexpected HTTP status
func NewStatusError(statusCode int, source string) *FetchError {
	return &FetchError{
		Type:       ErrorTypeProvider,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("%s API returned status %d", source, statusCode),
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *FetchError {
	return &FetchError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	fe, ok := err.(*FetchError)
	return ok && fe.Type == ErrorTypeValidation
}
