// ABOUTME: Custom error types for lookups against the upstream API
// ABOUTME: Separates upstream-reported failures from transport failures

package errors

import (
	"context"
	"errors"
	"fmt"
	"net"

	"hubdev-client/core/domain"
)

// UpstreamError is returned when the API answered without success and
// supplied an "erro" or "message" field. Error returns that text verbatim.
type UpstreamError struct {
	Operation   string
	Message     string
	StatusCode  int
	Diagnostics *domain.Diagnostics
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return e.Message
}

// UnknownUpstreamError is returned when the API answered without success and
// without any error text, including when the body was not valid JSON.
type UnknownUpstreamError struct {
	Operation   string
	StatusCode  int
	Diagnostics *domain.Diagnostics
}

// Error implements the error interface
func (e *UnknownUpstreamError) Error() string {
	return fmt.Sprintf("internal error performing %s lookup", e.Operation)
}

// TransportError is returned when no response envelope could be obtained:
// DNS, dial, TLS, timeout or cancellation failures.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was caused by a timeout
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsUnknownUpstream checks if an error is an UnknownUpstreamError
func IsUnknownUpstream(err error) bool {
	var unknownErr *UnknownUpstreamError
	return errors.As(err, &unknownErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
