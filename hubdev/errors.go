// ABOUTME: Error types and handling for the hubdev library
// ABOUTME: Re-exports lookup errors and provides structured configuration errors

package hubdev

import (
	"fmt"

	coreerrors "hubdev-client/core/errors"
)

// UpstreamError carries the error text reported by the API
type UpstreamError = coreerrors.UpstreamError

// UnknownUpstreamError is returned when the API failed without error text
type UnknownUpstreamError = coreerrors.UnknownUpstreamError

// TransportError is returned when the API could not be reached
type TransportError = coreerrors.TransportError

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeConfiguration
	}
	return false
}

// IsUpstreamError checks if the API rejected the lookup with a message
func IsUpstreamError(err error) bool {
	return coreerrors.IsUpstream(err)
}

// IsUnknownUpstreamError checks if the API rejected the lookup without a message
func IsUnknownUpstreamError(err error) bool {
	return coreerrors.IsUnknownUpstream(err)
}

// IsTransportError checks if the API could not be reached
func IsTransportError(err error) bool {
	return coreerrors.IsTransport(err)
}
