// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the transports and loggers

package hubdev

import (
	"time"

	"github.com/sirupsen/logrus"

	"hubdev-client/core/interfaces"
	restyInfra "hubdev-client/infrastructure/http/resty"
	httpInfra "hubdev-client/infrastructure/http/standard"
	loggerInfra "hubdev-client/infrastructure/logger/logrus"
)

// DefaultTimeout is used for both connection setup and the whole request
const DefaultTimeout = 180 * time.Second

// TransportType selects the HTTP client implementation
type TransportType string

const (
	// TransportResty uses go-resty
	TransportResty TransportType = "resty"

	// TransportStandard uses net/http directly
	TransportStandard TransportType = "standard"
)

// DefaultHTTPClient creates the default resty-based HTTP client
func DefaultHTTPClient(logger interfaces.Logger) interfaces.HTTPClient {
	return newTransport(TransportResty, DefaultTimeout, logger)
}

// DefaultStandardHTTPClient creates an HTTP client on net/http
func DefaultStandardHTTPClient(logger interfaces.Logger) interfaces.HTTPClient {
	return newTransport(TransportStandard, DefaultTimeout, logger)
}

func newTransport(transport TransportType, timeout time.Duration, logger interfaces.Logger) interfaces.HTTPClient {
	if transport == TransportStandard {
		return httpInfra.NewStandardHTTPClient(timeout, logger)
	}
	return restyInfra.NewClient(timeout, logger)
}

// DefaultLogger returns a logger backed by the logrus standard logger
func DefaultLogger() interfaces.Logger {
	return loggerInfra.New(logrus.StandardLogger())
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// WithTransport selects the default HTTP client implementation
func WithTransport(transport TransportType) Option {
	return func(c *Config) error {
		switch transport {
		case TransportResty, TransportStandard:
			c.Transport = transport
		default:
			return NewError(ErrorTypeConfiguration, "invalid transport type").
				WithContext("transport", string(transport))
		}
		return nil
	}
}

// WithDefaultDependencies fills an unset logger with DefaultLogger. An unset
// HTTP client is built by NewClient once every option has been applied, so
// WithTimeout and WithTransport are honored in any order.
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
