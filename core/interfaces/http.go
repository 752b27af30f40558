package interfaces

import (
	"context"

	"hubdev-client/core/domain"
)

// Request describes a single call against the upstream API.
// It is built by the request builder and consumed by an HTTPClient.
type Request struct {
	// Method is the HTTP method, GET for every lookup
	Method string

	// URL is the absolute URL including the encoded query string
	URL string

	// Headers are sent in order; duplicates are not collapsed
	Headers []domain.Header

	// Body is sent as-is when non-empty
	Body []byte

	// Debug asks the transport to attach diagnostics to the envelope
	Debug bool
}

// HTTPClient defines the transport used to reach the upstream API.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations (standard library, resty, etc.)
type HTTPClient interface {
	// Do performs the request and returns the decoded envelope.
	// A body that is not a JSON object yields an envelope with a nil Body,
	// never an error. Failures before a response exists are returned as
	// *errors.TransportError.
	Do(ctx context.Context, req Request) (*domain.Envelope, error)
}
