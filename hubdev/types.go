// ABOUTME: Public types for the hubdev library API
// ABOUTME: Aliases the core domain models so callers need a single import

package hubdev

import (
	"hubdev-client/core/domain"
)

// Object is a decoded JSON object as returned by the API
type Object = domain.Object

// QueryParam is an extra query string parameter
type QueryParam = domain.QueryParam

// Lookup is a lookup result together with the raw envelope
type Lookup = domain.Lookup

// Envelope is the decoded upstream response
type Envelope = domain.Envelope

// Diagnostics are the transport details collected in debug mode
type Diagnostics = domain.Diagnostics

// Param builds a QueryParam
func Param(name, value string) QueryParam {
	return QueryParam{Name: name, Value: value}
}
