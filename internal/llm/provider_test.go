package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestMockProvider_ServesQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(tutorialJSON), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage("The tome is closed.")},
	)

	resp1, err := mock.Generate(context.Background(), Request{Schema: tutorialSchema()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text() != tutorialJSON {
		t.Fatalf("unexpected first reply %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 || resp1.StopReason != "end" {
		t.Fatalf("unexpected metadata %+v", resp1)
	}

	resp2, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text() != "The tome is closed." {
		t.Fatalf("unexpected second reply %q", resp2.Text())
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_FallbackBySchema(t *testing.T) {
	mock := NewMockProvider()
	mock.SetFallback("grimoire-tutorial", MockResponse{Content: json.RawMessage(tutorialJSON)})
	mock.SetFallback("", MockResponse{Content: json.RawMessage("Patience, seeker.")})

	for range 2 {
		resp, err := mock.Generate(context.Background(), Request{Schema: tutorialSchema()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != tutorialJSON {
			t.Fatalf("unexpected tutorial fallback %s", resp.Content)
		}
	}

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Patience, seeker." {
		t.Fatalf("unexpected chat fallback %q", resp.Text())
	}
}

func TestMockProvider_QueueBeforeFallback(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage("queued")})
	mock.SetFallback("", MockResponse{Content: json.RawMessage("fallback")})

	first, _ := mock.Generate(context.Background(), Request{})
	second, _ := mock.Generate(context.Background(), Request{})
	if first.Text() != "queued" || second.Text() != "fallback" {
		t.Fatalf("got %q then %q", first.Text(), second.Text())
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	if _, ok := mock.LastCall(); ok {
		t.Fatal("expected no last call before Generate")
	}

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastCall()
	if !ok || last.System != "sys" {
		t.Fatalf("unexpected last call %+v", last)
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mock.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("cancelled request should not be recorded")
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestPurposeAndSessionContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if s := SessionFrom(ctx); s != "" {
		t.Fatalf("expected empty session, got %q", s)
	}

	ctx = WithSession(WithPurpose(ctx, "curator"), "run-1")
	if p := PurposeFrom(ctx); p != "curator" {
		t.Fatalf("expected 'curator', got %q", p)
	}
	if s := SessionFrom(ctx); s != "run-1" {
		t.Fatalf("expected 'run-1', got %q", s)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock model, got %q", p.ModelID())
	}
}

func TestNewProvider_WrapsVendorProviders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "sk-test"

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected retry wrapper, got %T", p)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("unexpected model %q", p.ModelID())
	}
}

func TestNewProvider_Errors(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: "ouija"}, nil, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if _, err := NewProvider(context.Background(), Config{Provider: "anthropic"}, nil, nil); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-2.8) > 1e-9 {
		t.Fatalf("expected 2.8, got %f", got)
	}

	if LookupCost("google/gemini-2.5-flash") == nil {
		t.Fatal("expected OpenRouter ID to resolve by suffix")
	}
	if LookupCost("ouija-1") != nil {
		t.Fatal("expected nil for unknown model")
	}

	mock := LookupCost("mock")
	if mock == nil {
		t.Fatal("expected pricing for mock")
	}
	if got := mock.Cost(5000, 5000); got != 0 {
		t.Fatalf("expected mock to be free, got %f", got)
	}
}
