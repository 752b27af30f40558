// ABOUTME: Standard HTTP transport for the upstream API built on net/http
// ABOUTME: Decodes JSON envelopes and collects httptrace diagnostics in debug mode

package standard

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptrace"
	"net/url"
	"time"

	"hubdev-client/core/domain"
	coreerrors "hubdev-client/core/errors"
	"hubdev-client/core/interfaces"
	"hubdev-client/core/request"
	"hubdev-client/infrastructure/http/middleware"
)

const (
	// DefaultTimeout bounds both connection setup and the whole exchange
	DefaultTimeout = 180 * time.Second

	maxRedirects = 10
	userAgent    = "hubdev-client/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client. timeout is used both as the
// connect timeout and as the overall request timeout.
func NewStandardHTTPClient(timeout time.Duration, logger interfaces.Logger) *StandardHTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = timeout

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:       timeout,
			Transport:     middleware.NewLoggingRoundTripper(transport, logger),
			CheckRedirect: limitRedirects,
		},
	}
}

// limitRedirects follows up to maxRedirects redirects
func limitRedirects(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	return nil
}

// Do performs the request and decodes the envelope
func (c *StandardHTTPClient) Do(ctx context.Context, req interfaces.Request) (*domain.Envelope, error) {
	ctx, requestID := middleware.EnsureRequestID(ctx)

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	var trace *tracer
	if req.Debug {
		trace = &tracer{}
		ctx = httptrace.WithClientTrace(ctx, trace.clientTrace())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, transportError(req, err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	for _, h := range req.Headers {
		httpReq.Header.Add(h.Name, h.Value)
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, transportError(req, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(req, err)
	}
	total := time.Since(start)

	envelope := &domain.Envelope{
		Body:       domain.DecodeObject(data),
		HTTPStatus: resp.StatusCode,
	}

	if req.Debug {
		diagnostics := trace.diagnostics(total)
		diagnostics.RequestID = requestID
		diagnostics.Method = req.Method
		diagnostics.EffectiveURL = request.RedactedString(resp.Request.URL)
		diagnostics.StatusCode = resp.StatusCode
		diagnostics.ContentType = resp.Header.Get("Content-Type")
		diagnostics.BodySize = len(data)
		envelope.Debug = diagnostics
	}

	return envelope, nil
}

// transportError converts a net/http failure, keeping the token out of the message
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

// tracer records connection milestones of a single request
type tracer struct {
	dnsStart, dnsDone   time.Time
	connStart, connDone time.Time
	tlsStart, tlsDone   time.Time
	gotConn             time.Time
	firstByte           time.Time
	remoteAddr          string
	reused              bool
}

func (t *tracer) clientTrace() *httptrace.ClientTrace {
	return &httptrace.ClientTrace{
		DNSStart:          func(httptrace.DNSStartInfo) { t.dnsStart = time.Now() },
		DNSDone:           func(httptrace.DNSDoneInfo) { t.dnsDone = time.Now() },
		ConnectStart:      func(string, string) { t.connStart = time.Now() },
		ConnectDone:       func(string, string, error) { t.connDone = time.Now() },
		TLSHandshakeStart: func() { t.tlsStart = time.Now() },
		TLSHandshakeDone:  func(tls.ConnectionState, error) { t.tlsDone = time.Now() },
		GotConn: func(info httptrace.GotConnInfo) {
			t.gotConn = time.Now()
			t.reused = info.Reused
			if info.Conn != nil {
				t.remoteAddr = info.Conn.RemoteAddr().String()
			}
		},
		GotFirstResponseByte: func() { t.firstByte = time.Now() },
	}
}

func (t *tracer) diagnostics(total time.Duration) *domain.Diagnostics {
	return &domain.Diagnostics{
		RemoteAddr:   t.remoteAddr,
		ConnReused:   t.reused,
		DNSLookup:    since(t.dnsStart, t.dnsDone),
		ConnTime:     since(t.connStart, t.connDone),
		TLSHandshake: since(t.tlsStart, t.tlsDone),
		ServerTime:   since(t.gotConn, t.firstByte),
		TotalTime:    total,
	}
}

// since returns end-start, or zero when either milestone was not reached
func since(start, end time.Time) time.Duration {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	return end.Sub(start)
}
