package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service. The API layer maps them to HTTP
// status codes.
var (
	// ErrInvalidInput indicates the birth input failed validation. It is
	// returned before any provider call. API layer maps this to 400.
	ErrInvalidInput = errors.New("invalid birth input")

	// ErrPositionUnavailable indicates the ascendant could not be obtained,
	// so no chart can be cast. API layer maps this to 503.
	ErrPositionUnavailable = errors.New("celestial positions unavailable")
)

// KundliServiceError wraps unexpected failures with the operation that
// produced them.
type KundliServiceError struct {
	// Operation is the operation that failed (e.g. "generate", "cast")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *KundliServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("kundli service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("kundli service %s failed: %s", e.Operation, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *KundliServiceError) Unwrap() error {
	return e.Err
}

// NewKundliServiceError wraps err. Service sentinels pass through wrapped so
// callers can still match them with errors.Is.
func NewKundliServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &KundliServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
