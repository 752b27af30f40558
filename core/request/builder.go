// ABOUTME: Request builder holding the client configuration (token, debug, base URL)
// ABOUTME: Assembles path, query parameters and headers for upstream calls

package request

import (
	"net/http"
	"strings"
	"sync"

	"hubdev-client/core/domain"
	"hubdev-client/core/interfaces"
)

const (
	// DefaultBaseURL is the upstream API root
	DefaultBaseURL = "https://ws.hubdodesenvolvedor.com.br/v2"

	// TokenParam is the query parameter carrying the auth token
	TokenParam = "token"
)

// Config is the configuration consumed by the builder
type Config struct {
	// Token is sent as the "token" query parameter on every request
	Token string

	// Debug attaches transport diagnostics to every envelope
	Debug bool

	// BaseURL is the API root, without a trailing slash
	BaseURL string
}

// DefaultConfig returns the configuration a new client starts with:
// no token, debug enabled and the production base URL.
func DefaultConfig() Config {
	return Config{
		Token:   "",
		Debug:   true,
		BaseURL: DefaultBaseURL,
	}
}

// Builder assembles requests from the current configuration.
// The configuration may be changed while requests are being built.
type Builder struct {
	mu     sync.RWMutex
	config Config
}

// NewBuilder creates a builder with the given configuration
func NewBuilder(cfg Config) *Builder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Builder{config: cfg}
}

// SetToken stores the token verbatim
func (b *Builder) SetToken(token string) {
	b.mu.Lock()
	b.config.Token = token
	b.mu.Unlock()
}

// SetDebug toggles diagnostics on subsequent requests
func (b *Builder) SetDebug(enabled bool) {
	b.mu.Lock()
	b.config.Debug = enabled
	b.mu.Unlock()
}

// SetBaseURL points subsequent requests at another API root
func (b *Builder) SetBaseURL(baseURL string) {
	b.mu.Lock()
	b.config.BaseURL = baseURL
	b.mu.Unlock()
}

// Config returns a snapshot of the current configuration
func (b *Builder) Config() Config {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config
}

// DefaultHeaders returns the headers sent on every request
func (b *Builder) DefaultHeaders() []domain.Header {
	return []domain.Header{
		{Name: "Content-Type", Value: "application/json"},
	}
}

// DefaultQueryParams returns the parameters sent on every request
func (b *Builder) DefaultQueryParams() domain.Params {
	return defaultQueryParams(b.Config())
}

func defaultQueryParams(cfg Config) domain.Params {
	return domain.Params{
		{Name: TokenParam, Value: cfg.Token},
	}
}

// BuildGet builds a GET request. Caller params come before the token,
// caller headers after the defaults.
func (b *Builder) BuildGet(path string, params domain.Params, headers []domain.Header) interfaces.Request {
	return b.Build(http.MethodGet, path, params, headers, nil)
}

// Build builds a request with an optional body
func (b *Builder) Build(method, path string, params domain.Params, headers []domain.Header, body []byte) interfaces.Request {
	cfg := b.Config()

	allHeaders := b.DefaultHeaders()
	allHeaders = append(allHeaders, headers...)

	allParams := params.With(defaultQueryParams(cfg)...)

	url := strings.TrimRight(cfg.BaseURL, "/") + normalizePath(path)
	if query := allParams.Encode(); query != "" {
		url += "?" + query
	}

	return interfaces.Request{
		Method:  method,
		URL:     url,
		Headers: allHeaders,
		Body:    body,
		Debug:   cfg.Debug,
	}
}

// normalizePath makes sure the path starts with a slash
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
