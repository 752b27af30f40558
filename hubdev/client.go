// ABOUTME: Main client for the hubdev library providing CNPJ and CEP lookups
// ABOUTME: Offers a small API over the core lookup service without HTTP details

package hubdev

import (
	"context"
	"time"

	"hubdev-client/core/domain"
	"hubdev-client/core/interfaces"
	"hubdev-client/core/lookup"
	"hubdev-client/core/request"
)

// Client is the main entry point for the hubdev library. It is safe for
// concurrent use; SetToken and SetDebug affect requests built afterwards.
type Client struct {
	builder *request.Builder
	service *lookup.Service
	config  Config
}

// Config holds the configuration for the client
type Config struct {
	// Token is sent as the "token" query parameter
	Token string

	// Debug attaches transport diagnostics to results and errors
	Debug bool

	// BaseURL is the API root
	BaseURL string

	// Timeout bounds connection setup and the whole request
	Timeout time.Duration

	// Transport selects the default HTTP client when HTTPClient is unset
	Transport TransportType

	// HTTPClient overrides the transport entirely
	HTTPClient interfaces.HTTPClient

	// Logger receives debug-level request logs
	Logger interfaces.Logger
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if config.Logger == nil {
		config.Logger = DefaultLogger()
	}
	if config.HTTPClient == nil {
		config.HTTPClient = newTransport(config.Transport, config.Timeout, config.Logger)
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	builder := request.NewBuilder(request.Config{
		Token:   config.Token,
		Debug:   config.Debug,
		BaseURL: config.BaseURL,
	})

	return &Client{
		builder: builder,
		service: lookup.NewService(builder, deps),
		config:  config,
	}, nil
}

// SetToken replaces the API token. An empty token stops the parameter
// from being sent.
func (c *Client) SetToken(token string) {
	c.builder.SetToken(token)
}

// Token returns the current API token
func (c *Client) Token() string {
	return c.builder.Config().Token
}

// SetDebug toggles transport diagnostics
func (c *Client) SetDebug(enabled bool) {
	c.builder.SetDebug(enabled)
}

// Debug reports whether transport diagnostics are collected
func (c *Client) Debug() bool {
	return c.builder.Config().Debug
}

// ConsultaCNPJ looks up a legal entity and returns the "result" object.
// The identifier is sent as-is; a "cnpj" entry in extra is ignored.
// A successful envelope whose "result" is missing or not an object yields
// a nil Object and a nil error.
func (c *Client) ConsultaCNPJ(ctx context.Context, cnpj string, extra ...QueryParam) (Object, error) {
	result, err := c.LookupCNPJ(ctx, cnpj, extra...)
	if err != nil {
		return nil, err
	}
	return result.Result, nil
}

// ConsultaCEP looks up an address and returns the "result" object.
// The identifier is sent as-is; a "cep" entry in extra is ignored.
// As with ConsultaCNPJ, a success without a "result" object yields (nil, nil).
func (c *Client) ConsultaCEP(ctx context.Context, cep string, extra ...QueryParam) (Object, error) {
	result, err := c.LookupCEP(ctx, cep, extra...)
	if err != nil {
		return nil, err
	}
	return result.Result, nil
}

// LookupCNPJ is like ConsultaCNPJ but also returns the raw envelope and
// diagnostics.
func (c *Client) LookupCNPJ(ctx context.Context, cnpj string, extra ...QueryParam) (*Lookup, error) {
	return c.service.CNPJ(ctx, cnpj, domain.Params(extra))
}

// LookupCEP is like ConsultaCEP but also returns the raw envelope and
// diagnostics.
func (c *Client) LookupCEP(ctx context.Context, cep string, extra ...QueryParam) (*Lookup, error) {
	return c.service.CEP(ctx, cep, domain.Params(extra))
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.BaseURL == "" {
		return NewError(ErrorTypeConfiguration, "base URL is required")
	}

	if config.HTTPClient == nil {
		if config.Timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive").
				WithContext("timeout", config.Timeout.String())
		}
		if config.Transport != TransportResty && config.Transport != TransportStandard {
			return NewError(ErrorTypeConfiguration, "invalid transport type").
				WithContext("transport", string(config.Transport))
		}
	}

	return nil
}
