// ABOUTME: Resty-based HTTP transport for the upstream API
// ABOUTME: Uses resty trace info to report timing diagnostics in debug mode

package resty

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hubdev-client/core/domain"
	coreerrors "hubdev-client/core/errors"
	"hubdev-client/core/interfaces"
	"hubdev-client/core/request"
	"hubdev-client/infrastructure/http/middleware"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultTimeout bounds both connection setup and the whole exchange
	DefaultTimeout = 180 * time.Second

	maxRedirects = 10
	userAgent    = "hubdev-client/1.0"
)

// Client implements the HTTPClient interface on top of resty
type Client struct {
	client *resty.Client
}

// NewClient creates a resty transport. timeout is used both as the connect
// timeout and as the overall request timeout. Resty's own retry support is
// left disabled.
func NewClient(timeout time.Duration, logger interfaces.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = timeout

	client := resty.New().
		SetTimeout(timeout).
		SetTransport(middleware.NewLoggingRoundTripper(transport, logger)).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects)).
		SetHeader("User-Agent", userAgent)

	if logger != nil {
		client.SetLogger(&restyLogger{logger: logger})
	}

	return &Client{client: client}
}

// Do performs the request and decodes the envelope
func (c *Client) Do(ctx context.Context, req interfaces.Request) (*domain.Envelope, error) {
	ctx, requestID := middleware.EnsureRequestID(ctx)

	r := c.client.R().SetContext(ctx)
	for _, h := range req.Headers {
		r.Header.Add(h.Name, h.Value)
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}
	if req.Debug {
		r.EnableTrace()
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, transportError(req, err)
	}

	data := resp.Body()
	envelope := &domain.Envelope{
		Body:       domain.DecodeObject(data),
		HTTPStatus: resp.StatusCode(),
	}

	if req.Debug {
		envelope.Debug = diagnostics(resp, requestID, req.Method, len(data))
	}

	return envelope, nil
}

func diagnostics(resp *resty.Response, requestID, method string, size int) *domain.Diagnostics {
	trace := resp.Request.TraceInfo()

	d := &domain.Diagnostics{
		RequestID:    requestID,
		Method:       method,
		StatusCode:   resp.StatusCode(),
		ContentType:  resp.Header().Get("Content-Type"),
		BodySize:     size,
		ConnReused:   trace.IsConnReused,
		DNSLookup:    trace.DNSLookup,
		ConnTime:     trace.ConnTime,
		TLSHandshake: trace.TLSHandshake,
		ServerTime:   trace.ServerTime,
		TotalTime:    trace.TotalTime,
	}
	if trace.RemoteAddr != nil {
		d.RemoteAddr = trace.RemoteAddr.String()
	}
	if resp.RawResponse != nil && resp.RawResponse.Request != nil {
		d.EffectiveURL = request.RedactedString(resp.RawResponse.Request.URL)
	} else {
		d.EffectiveURL = request.RedactURL(resp.Request.URL)
	}
	return d
}

// transportError converts a resty failure, keeping the token out of the message
func transportError(req interfaces.Request, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return &coreerrors.TransportError{
		Method: req.Method,
		URL:    request.RedactURL(req.URL),
		Err:    err,
	}
}

// restyLogger routes resty's internal messages to the application logger
type restyLogger struct {
	logger interfaces.Logger
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error("resty", map[string]interface{}{"detail": sprintf(format, v...)})
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn("resty", map[string]interface{}{"detail": sprintf(format, v...)})
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug("resty", map[string]interface{}{"detail": sprintf(format, v...)})
}

func sprintf(format string, v ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
