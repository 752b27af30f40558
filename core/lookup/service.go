// ABOUTME: Lookup service performs CNPJ and CEP queries against the upstream API
// ABOUTME: Provides business logic for lookups independent of the transport layer

package lookup

import (
	"context"
	"errors"

	"hubdev-client/core/domain"
	"hubdev-client/core/interfaces"
	"hubdev-client/core/request"
)

// Operation describes one lookup endpoint
type Operation struct {
	// Name identifies the lookup in error messages ("CNPJ", "CEP")
	Name string

	// Path is the endpoint path under the base URL
	Path string

	// Param is the query parameter carrying the identifier
	Param string

	// succeeded decides whether the envelope body reports success
	succeeded func(body domain.Object) bool

	// transform post-processes the result on success
	transform func(result domain.Object) domain.Object
}

var (
	// CNPJ looks up a legal entity by its tax identifier
	CNPJ = Operation{
		Name:      "CNPJ",
		Path:      "cnpj",
		Param:     "cnpj",
		succeeded: statusTruthy,
		transform: dropPartnerHeader,
	}

	// CEP looks up an address by its postal code
	CEP = Operation{
		Name:      "CEP",
		Path:      "cep3",
		Param:     "cep",
		succeeded: statusPresentAndTruthy,
	}
)

// Service handles lookup operations
type Service struct {
	builder *request.Builder
	deps    interfaces.Dependencies
}

// NewService creates a new lookup service instance
func NewService(builder *request.Builder, deps interfaces.Dependencies) *Service {
	return &Service{
		builder: builder,
		deps:    deps,
	}
}

// CNPJ looks up a legal entity. A caller-supplied "cnpj" param is replaced
// by cnpj.
func (s *Service) CNPJ(ctx context.Context, cnpj string, extra domain.Params) (*domain.Lookup, error) {
	return s.Run(ctx, CNPJ, cnpj, extra)
}

// CEP looks up an address. A caller-supplied "cep" param is replaced by cep.
func (s *Service) CEP(ctx context.Context, cep string, extra domain.Params) (*domain.Lookup, error) {
	return s.Run(ctx, CEP, cep, extra)
}

// Run performs op for the identifier value. Transport and upstream errors
// are returned unchanged; they are only logged at debug level.
func (s *Service) Run(ctx context.Context, op Operation, value string, extra domain.Params) (*domain.Lookup, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	params := extra.Replace(domain.QueryParam{Name: op.Param, Value: value})
	req := s.builder.BuildGet(op.Path, params, nil)

	envelope, err := s.deps.HTTPClient.Do(ctx, req)
	if err != nil {
		s.debug("Lookup transport failure", map[string]interface{}{
			"lookup": op.Name,
			"error":  err.Error(),
		})
		return nil, err
	}

	result, err := Interpret(op, envelope)
	if err != nil {
		s.debug("Lookup rejected by upstream", map[string]interface{}{
			"lookup": op.Name,
			"error":  err.Error(),
		})
		return nil, err
	}

	return &domain.Lookup{
		Result:   result,
		Envelope: envelope,
	}, nil
}

func (s *Service) debug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
