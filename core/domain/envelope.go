package domain

import "time"

// Envelope is the outer response of every upstream endpoint, as seen by the
// client after one round trip. It is created per call and never retained.
type Envelope struct {
	// Body is the decoded JSON object, nil when the payload was not a JSON object
	Body Object

	// HTTPStatus is the HTTP status code of the response
	HTTPStatus int

	// Debug carries transport diagnostics and is only set in debug mode
	Debug *Diagnostics
}

// Diagnostics describes how a single request travelled over the wire
type Diagnostics struct {
	RequestID    string        `json:"request_id"`
	Method       string        `json:"method"`
	EffectiveURL string        `json:"effective_url"`
	StatusCode   int           `json:"status_code"`
	ContentType  string        `json:"content_type,omitempty"`
	BodySize     int           `json:"body_size"`
	RemoteAddr   string        `json:"remote_addr,omitempty"`
	ConnReused   bool          `json:"conn_reused"`
	DNSLookup    time.Duration `json:"dns_lookup"`
	ConnTime     time.Duration `json:"conn_time"`
	TLSHandshake time.Duration `json:"tls_handshake"`
	ServerTime   time.Duration `json:"server_time"`
	TotalTime    time.Duration `json:"total_time"`
}

// Lookup is the outcome of a successful lookup
type Lookup struct {
	// Result is the "result" member of the envelope, post-processed per endpoint
	Result Object

	// Envelope is the full response the result was taken from
	Envelope *Envelope
}
