// ABOUTME: Query parameter and header models used to build upstream requests
// ABOUTME: Parameters keep caller order and drop empty entries when encoded

package domain

import (
	"net/url"
	"strings"
)

// QueryParam is a single name/value pair sent in the query string
type QueryParam struct {
	Name  string
	Value string
}

// Params is an ordered list of query parameters
type Params []QueryParam

// Header is a single request header
type Header struct {
	Name  string
	Value string
}

// String renders the header in wire form, e.g. "Content-Type: application/json"
func (h Header) String() string {
	return h.Name + ": " + h.Value
}

// Without returns a copy of the params with every entry named name removed
func (p Params) Without(name string) Params {
	out := make(Params, 0, len(p))
	for _, param := range p {
		if param.Name == name {
			continue
		}
		out = append(out, param)
	}
	return out
}

// With returns a copy of the params with the given entries appended
func (p Params) With(params ...QueryParam) Params {
	out := make(Params, 0, len(p)+len(params))
	out = append(out, p...)
	return append(out, params...)
}

// Replace removes any entry named param.Name and appends param last
func (p Params) Replace(param QueryParam) Params {
	return p.Without(param.Name).With(param)
}

// Sendable returns the params that will actually be sent: entries whose
// name and value are both non-empty, in their original order
func (p Params) Sendable() Params {
	out := make(Params, 0, len(p))
	for _, param := range p {
		if param.Name == "" || param.Value == "" {
			continue
		}
		out = append(out, param)
	}
	return out
}

// Encode builds the query string (without the leading '?')
func (p Params) Encode() string {
	parts := make([]string, 0, len(p))
	for _, param := range p.Sendable() {
		parts = append(parts, url.QueryEscape(param.Name)+"="+url.QueryEscape(param.Value))
	}
	return strings.Join(parts, "&")
}

// Get returns the value of the last entry named name
func (p Params) Get(name string) (string, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Name == name {
			return p[i].Value, true
		}
	}
	return "", false
}
