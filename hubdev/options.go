// ABOUTME: Configuration options for the hubdev library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package hubdev

import (
	"net/url"
	"time"

	"hubdev-client/core/interfaces"
	"hubdev-client/core/request"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithToken sets the API token
func WithToken(token string) Option {
	return func(c *Config) error {
		c.Token = token
		return nil
	}
}

// WithDebug enables or disables transport diagnostics
func WithDebug(enabled bool) Option {
	return func(c *Config) error {
		c.Debug = enabled
		return nil
	}
}

// WithBaseURL points the client at another API root
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return NewError(ErrorTypeConfiguration, "base URL cannot be empty")
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "invalid base URL").
				WithCause(err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return NewError(ErrorTypeConfiguration, "base URL must be an absolute http(s) URL").
				WithContext("base_url", baseURL)
		}
		c.BaseURL = baseURL
		return nil
	}
}

// WithTimeout sets the connect and overall request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.Timeout = timeout
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Token:     "",
		Debug:     true,
		BaseURL:   request.DefaultBaseURL,
		Timeout:   DefaultTimeout,
		Transport: TransportResty,
	}
}
