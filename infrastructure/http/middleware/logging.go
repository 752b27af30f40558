// ABOUTME: Logging round tripper for outgoing requests to the upstream API
// ABOUTME: Logs request details, response status and timing with the token redacted

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hubdev-client/core/interfaces"
	"hubdev-client/core/request"

	"github.com/google/uuid"
)

// requestIDKey is the context key for request ID
type requestIDKey struct{}

// WithRequestID stores a request ID in the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFrom returns the request ID stored in ctx, or ""
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// EnsureRequestID returns ctx carrying a request ID, generating one if needed
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIDFrom(ctx); id != "" {
		return ctx, id
	}
	id := uuid.New().String()
	return WithRequestID(ctx, id), id
}

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// NewLoggingRoundTripper wraps transport; a nil transport means http.DefaultTransport
func NewLoggingRoundTripper(transport http.RoundTripper, logger interfaces.Logger) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &LoggingRoundTripper{
		Transport: transport,
		Logger:    logger,
	}
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Logger == nil {
		return t.Transport.RoundTrip(req)
	}

	start := time.Now()
	requestID := RequestIDFrom(req.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}
	url := request.RedactedString(req.URL)

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        url,
		"host":       req.Host,
	})

	resp, err := t.Transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.Logger.Debug("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        url,
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	fields := ResponseLogFields(resp.StatusCode, duration)
	fields["request_id"] = requestID
	fields["method"] = req.Method
	fields["url"] = url
	t.Logger.Debug("Outgoing HTTP response", fields)

	return resp, nil
}

// ResponseLogFields creates log fields for a response
func ResponseLogFields(statusCode int, duration time.Duration) map[string]interface{} {
	return map[string]interface{}{
		"status":      statusCode,
		"duration":    duration.String(),
		"duration_ms": duration.Milliseconds(),
		"status_text": fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
	}
}
