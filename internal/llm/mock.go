package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for tests and offline runs.
// Queued responses are served in FIFO order. Once the queue is drained,
// a fallback registered for the request's schema name (or "" for
// schemaless requests) is served repeatedly.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	fallbacks map[string]MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{
		responses: responses,
		fallbacks: make(map[string]MockResponse),
	}
}

// Generate returns the next canned response, the schema fallback, or
// ErrProviderUnavailable when neither exists.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	default:
		fb, ok := m.fallbacks[schemaName(req.Schema)]
		if !ok {
			return nil, &ErrProviderUnavailable{}
		}
		resp = fb
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// SetFallback registers the response served for requests carrying the
// named schema once the queue is empty. An empty name matches requests
// without a schema.
func (m *MockProvider) SetFallback(schema string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks[schema] = resp
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, if any.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

func schemaName(s *Schema) string {
	if s == nil {
		return ""
	}
	return s.Name
}
