package lookup

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"

	"hubdev-client/core/domain"
	coreerrors "hubdev-client/core/errors"
	"hubdev-client/core/interfaces"
	"hubdev-client/core/request"
)

func newTestService(client interfaces.HTTPClient, token string) *Service {
	builder := request.NewBuilder(request.DefaultConfig())
	builder.SetToken(token)
	return NewService(builder, interfaces.Dependencies{
		HTTPClient: client,
		Logger:     &mockLogger{},
	})
}

func queryOf(t *testing.T, req interfaces.Request) url.Values {
	t.Helper()
	u, err := url.Parse(req.URL)
	if err != nil {
		t.Fatalf("invalid request URL %q: %v", req.URL, err)
	}
	return u.Query()
}

func TestService_CNPJ_Success(t *testing.T) {
	client := respondWith(200, `{"status": true, "result": {"nome": "EMPRESA X", "quadro_de_socios": [{"nome": "A"}]}}`)
	service := newTestService(client, "T")

	lookup, err := service.CNPJ(context.Background(), "00000000000191", nil)
	if err != nil {
		t.Fatalf("CNPJ() error = %v", err)
	}

	if lookup.Result.String("nome") != "EMPRESA X" {
		t.Errorf("Result = %v", lookup.Result)
	}
	partners := lookup.Result.List("quadro_de_socios")
	if len(partners) != 1 {
		t.Errorf("quadro_de_socios = %v, want the list unmodified", partners)
	}
	if lookup.Envelope == nil || lookup.Envelope.HTTPStatus != 200 {
		t.Errorf("Envelope = %+v", lookup.Envelope)
	}

	if len(client.requests) != 1 {
		t.Fatalf("made %d requests, want 1", len(client.requests))
	}
	req := client.requests[0]
	if req.Method != "GET" {
		t.Errorf("Method = %s, want GET", req.Method)
	}
	u, _ := url.Parse(req.URL)
	if u.Path != "/v2/cnpj" {
		t.Errorf("Path = %s, want /v2/cnpj", u.Path)
	}
	if q := queryOf(t, req); q.Get("cnpj") != "00000000000191" || q.Get("token") != "T" {
		t.Errorf("query = %v", q)
	}
}

func TestService_CNPJ_DropsPartnerHeaderRow(t *testing.T) {
	client := respondWith(200, `{"status": true, "result": {"quadro_de_socios": [{"informacoes": "x"}, {"nome": "A"}]}}`)
	service := newTestService(client, "T")

	lookup, err := service.CNPJ(context.Background(), "00000000000191", nil)
	if err != nil {
		t.Fatalf("CNPJ() error = %v", err)
	}

	want := domain.Object{
		"quadro_de_socios": []interface{}{
			map[string]interface{}{"nome": "A"},
		},
	}
	if !reflect.DeepEqual(lookup.Result, want) {
		t.Errorf("Result = %v, want %v", lookup.Result, want)
	}

	// The raw envelope keeps the header row
	raw := lookup.Envelope.Body.Object("result").List("quadro_de_socios")
	if len(raw) != 2 {
		t.Errorf("envelope partners = %v, want both rows", raw)
	}
}

func TestService_CNPJ_PartnerEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCount int
	}{
		{"empty list", `{"status": true, "result": {"quadro_de_socios": []}}`, 0},
		{"only header row", `{"status": true, "result": {"quadro_de_socios": [{"informacoes": null}]}}`, 0},
		{"header not first", `{"status": true, "result": {"quadro_de_socios": [{"nome": "A"}, {"informacoes": "x"}]}}`, 2},
		{"first not an object", `{"status": true, "result": {"quadro_de_socios": ["A", {"informacoes": "x"}]}}`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(respondWith(200, tt.body), "T")

			lookup, err := service.CNPJ(context.Background(), "1", nil)
			if err != nil {
				t.Fatalf("CNPJ() error = %v", err)
			}
			if got := len(lookup.Result.List("quadro_de_socios")); got != tt.wantCount {
				t.Errorf("partners = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestService_CNPJ_CanonicalIdentifierWins(t *testing.T) {
	client := respondWith(200, `{"status": true, "result": {}}`)
	service := newTestService(client, "T")

	extra := domain.Params{
		{Name: "cnpj", Value: "11111111111111"},
		{Name: "ignore_db", Value: "true"},
		{Name: "cnpj", Value: "22222222222222"},
	}
	if _, err := service.CNPJ(context.Background(), "00.000.000/0001-91", extra); err != nil {
		t.Fatalf("CNPJ() error = %v", err)
	}

	q := queryOf(t, client.requests[0])
	if got := q["cnpj"]; len(got) != 1 || got[0] != "00.000.000/0001-91" {
		t.Errorf("cnpj params = %v, want exactly the canonical value", got)
	}
	if q.Get("ignore_db") != "true" {
		t.Errorf("caller params should be forwarded, got %v", q)
	}
	// The caller's slice must not be modified
	if len(extra) != 3 {
		t.Errorf("extra params were mutated: %v", extra)
	}
}

func TestService_CEP_CanonicalIdentifierWins(t *testing.T) {
	client := respondWith(200, `{"status": true, "result": {"cep": "01001000"}}`)
	service := newTestService(client, "T")

	extra := domain.Params{{Name: "cep", Value: "99999999"}}
	lookup, err := service.CEP(context.Background(), "01001000", extra)
	if err != nil {
		t.Fatalf("CEP() error = %v", err)
	}
	if lookup.Result.String("cep") != "01001000" {
		t.Errorf("Result = %v", lookup.Result)
	}

	req := client.requests[0]
	u, _ := url.Parse(req.URL)
	if u.Path != "/v2/cep3" {
		t.Errorf("Path = %s, want /v2/cep3", u.Path)
	}
	if got := queryOf(t, req)["cep"]; len(got) != 1 || got[0] != "01001000" {
		t.Errorf("cep params = %v", got)
	}
}

func TestService_Errors(t *testing.T) {
	tests := []struct {
		name        string
		op          Operation
		body        string
		wantMessage string
		wantKind    string
	}{
		{
			name:        "erro field",
			op:          CNPJ,
			body:        `{"status": false, "erro": "CNPJ inválido"}`,
			wantMessage: "CNPJ inválido",
			wantKind:    "upstream",
		},
		{
			name:        "message field",
			op:          CEP,
			body:        `{"status": false, "message": "Token inválido"}`,
			wantMessage: "Token inválido",
			wantKind:    "upstream",
		},
		{
			name:        "erro wins over message",
			op:          CNPJ,
			body:        `{"erro": "first", "message": "second"}`,
			wantMessage: "first",
			wantKind:    "upstream",
		},
		{
			name:        "null erro falls through to message",
			op:          CNPJ,
			body:        `{"status": false, "erro": null, "message": "second"}`,
			wantMessage: "second",
			wantKind:    "upstream",
		},
		{
			name:        "empty envelope on CEP",
			op:          CEP,
			body:        `{}`,
			wantMessage: "internal error performing CEP lookup",
			wantKind:    "unknown",
		},
		{
			name:        "empty envelope on CNPJ",
			op:          CNPJ,
			body:        `{"status": false}`,
			wantMessage: "internal error performing CNPJ lookup",
			wantKind:    "unknown",
		},
		{
			name:        "undecodable body",
			op:          CNPJ,
			body:        `<html>502 Bad Gateway</html>`,
			wantMessage: "internal error performing CNPJ lookup",
			wantKind:    "unknown",
		},
		{
			name:        "status zero string",
			op:          CEP,
			body:        `{"status": "0"}`,
			wantMessage: "internal error performing CEP lookup",
			wantKind:    "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(respondWith(200, tt.body), "T")

			lookup, err := service.Run(context.Background(), tt.op, "1", nil)
			if err == nil {
				t.Fatalf("Run() = %v, want error", lookup)
			}
			if err.Error() != tt.wantMessage {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMessage)
			}

			switch tt.wantKind {
			case "upstream":
				if !coreerrors.IsUpstream(err) {
					t.Errorf("error %T should be an UpstreamError", err)
				}
			case "unknown":
				if !coreerrors.IsUnknownUpstream(err) {
					t.Errorf("error %T should be an UnknownUpstreamError", err)
				}
			}
		})
	}
}

func TestService_ErrorCarriesStatusAndDiagnostics(t *testing.T) {
	service := newTestService(respondWith(401, `{"status": false, "message": "Token inválido"}`), "bad")

	_, err := service.CEP(context.Background(), "01001000", nil)

	var upstreamErr *coreerrors.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("error = %v, want UpstreamError", err)
	}
	if upstreamErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", upstreamErr.StatusCode)
	}
	if upstreamErr.Operation != "CEP" {
		t.Errorf("Operation = %s, want CEP", upstreamErr.Operation)
	}
	if upstreamErr.Diagnostics == nil {
		t.Error("Diagnostics should be attached in debug mode")
	}
}

func TestService_DebugDiagnostics(t *testing.T) {
	client := respondWith(200, `{"status": true, "result": {}}`)
	service := newTestService(client, "T")

	lookup, err := service.CEP(context.Background(), "01001000", nil)
	if err != nil {
		t.Fatalf("CEP() error = %v", err)
	}
	if lookup.Envelope.Debug == nil {
		t.Error("debug is on by default, diagnostics should be present")
	}

	service.builder.SetDebug(false)
	lookup, err = service.CEP(context.Background(), "01001000", nil)
	if err != nil {
		t.Fatalf("CEP() error = %v", err)
	}
	if lookup.Envelope.Debug != nil {
		t.Errorf("Diagnostics = %+v, want none with debug disabled", lookup.Envelope.Debug)
	}
}

func TestService_TransportErrorPropagates(t *testing.T) {
	transportErr := &coreerrors.TransportError{Method: "GET", URL: "x", Err: context.DeadlineExceeded}
	client := &mockHTTPClient{
		doFunc: func(ctx context.Context, req interfaces.Request) (*domain.Envelope, error) {
			return nil, transportErr
		},
	}
	service := newTestService(client, "T")

	_, err := service.CNPJ(context.Background(), "1", nil)
	if !errors.Is(err, transportErr) {
		t.Errorf("error = %v, want the transport error unchanged", err)
	}
}

func TestService_NoHTTPClient(t *testing.T) {
	service := newTestService(nil, "T")

	if _, err := service.CEP(context.Background(), "01001000", nil); err == nil {
		t.Error("CEP() should fail without an HTTP client")
	}
}

func TestInterpret_NilEnvelope(t *testing.T) {
	_, err := Interpret(CEP, nil)
	if !coreerrors.IsUnknownUpstream(err) {
		t.Errorf("Interpret(nil) error = %v, want UnknownUpstreamError", err)
	}
}

func TestStatusChecks(t *testing.T) {
	tests := []struct {
		name string
		body domain.Object
		cnpj bool
		cep  bool
	}{
		{"missing", domain.Object{}, false, false},
		{"null", domain.Object{"status": nil}, false, false},
		{"true", domain.Object{"status": true}, true, true},
		{"false", domain.Object{"status": false}, false, false},
		{"one", domain.Object{"status": 1.0}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusTruthy(tt.body); got != tt.cnpj {
				t.Errorf("statusTruthy() = %v, want %v", got, tt.cnpj)
			}
			if got := statusPresentAndTruthy(tt.body); got != tt.cep {
				t.Errorf("statusPresentAndTruthy() = %v, want %v", got, tt.cep)
			}
		})
	}
}

func TestService_SuccessWithoutResultObject(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		body string
	}{
		{"CNPJ missing result", CNPJ, `{"status": true}`},
		{"CNPJ null result", CNPJ, `{"status": true, "result": null}`},
		{"CEP result not an object", CEP, `{"status": true, "result": "01001000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(respondWith(200, tt.body), "T")

			lookup, err := service.Run(context.Background(), tt.op, "1", nil)
			if err != nil {
				t.Fatalf("Run() error = %v, want success", err)
			}
			if lookup.Result != nil {
				t.Errorf("Result = %v, want nil", lookup.Result)
			}
			if lookup.Envelope == nil || lookup.Envelope.Body == nil {
				t.Error("Envelope should still carry the decoded body")
			}
		})
	}
}
