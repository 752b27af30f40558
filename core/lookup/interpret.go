package lookup

import (
	"hubdev-client/core/domain"
	coreerrors "hubdev-client/core/errors"
)

const (
	statusField   = "status"
	resultField   = "result"
	erroField     = "erro"
	messageField  = "message"
	partnersField = "quadro_de_socios"
	headerField   = "informacoes"
)

// Interpret turns an envelope into the lookup result or an error.
// Checks run in order: success flag, "erro", "message", then a fixed
// per-operation message.
// On success the result is the "result" member, or nil when that member is
// missing or not an object.
func Interpret(op Operation, envelope *domain.Envelope) (domain.Object, error) {
	var body domain.Object
	var status int
	var diagnostics *domain.Diagnostics
	if envelope != nil {
		body = envelope.Body
		status = envelope.HTTPStatus
		diagnostics = envelope.Debug
	}

	if body != nil && op.succeeded(body) {
		result := body.Object(resultField)
		if op.transform != nil {
			result = op.transform(result)
		}
		return result, nil
	}

	for _, field := range []string{erroField, messageField} {
		if body.Present(field) {
			return nil, &coreerrors.UpstreamError{
				Operation:   op.Name,
				Message:     body.String(field),
				StatusCode:  status,
				Diagnostics: diagnostics,
			}
		}
	}

	return nil, &coreerrors.UnknownUpstreamError{
		Operation:   op.Name,
		StatusCode:  status,
		Diagnostics: diagnostics,
	}
}

func statusTruthy(body domain.Object) bool {
	return body.Truthy(statusField)
}

// statusPresentAndTruthy treats a missing status key as failure before
// looking at its value.
func statusPresentAndTruthy(body domain.Object) bool {
	if !body.Has(statusField) {
		return false
	}
	return body.Truthy(statusField)
}

// dropPartnerHeader removes the metadata row some CNPJ results carry as
// the first partner entry. The envelope body is left untouched.
func dropPartnerHeader(result domain.Object) domain.Object {
	partners := result.List(partnersField)
	if len(partners) == 0 {
		return result
	}
	first, ok := partners[0].(map[string]interface{})
	if !ok {
		return result
	}
	if _, isHeader := first[headerField]; !isHeader {
		return result
	}

	out := result.Clone()
	out[partnersField] = append([]interface{}{}, partners[1:]...)
	return out
}
