package lookup

import (
	"context"

	"hubdev-client/core/domain"
	"hubdev-client/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	doFunc   func(ctx context.Context, req interfaces.Request) (*domain.Envelope, error)
	requests []interfaces.Request
}

func (m *mockHTTPClient) Do(ctx context.Context, req interfaces.Request) (*domain.Envelope, error) {
	m.requests = append(m.requests, req)
	if m.doFunc != nil {
		return m.doFunc(ctx, req)
	}
	return &domain.Envelope{HTTPStatus: 200}, nil
}

// respondWith returns a mock transport answering every request with body
func respondWith(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		doFunc: func(ctx context.Context, req interfaces.Request) (*domain.Envelope, error) {
			envelope := &domain.Envelope{
				Body:       domain.DecodeObject([]byte(body)),
				HTTPStatus: status,
			}
			if req.Debug {
				envelope.Debug = &domain.Diagnostics{
					Method:       req.Method,
					EffectiveURL: req.URL,
					StatusCode:   status,
				}
			}
			return envelope, nil
		},
	}
}

// mockLogger is a no-op implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
