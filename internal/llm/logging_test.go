package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/grimoire/internal/store"
)

type recordingRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"title":"x"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, "mock", repo, zap.NewNop())

	ctx := WithSession(WithPurpose(context.Background(), "tutorial"), "run-1")
	if _, err := p.Generate(ctx, Request{
		System:   "persona",
		Messages: []Message{{Role: RoleUser, Content: "skill: PYTHON"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "tutorial" || ev.SessionID != "run-1" {
		t.Fatalf("unexpected purpose/session: %q %q", ev.Purpose, ev.SessionID)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[system]\npersona") {
		t.Fatalf("request body not captured: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"title":"x"}` {
		t.Fatalf("response body not captured: %q", ev.ResponseBody)
	}
}

func TestLoggingProvider_RecordsFailureAndWarns(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	repo := &recordingRepo{}
	p := WithLogging(mock, "mock", repo, zap.New(core))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 || repo.events[0].Success {
		t.Fatalf("expected one failed event, got %+v", repo.events)
	}
	if repo.events[0].ErrorMessage != "boom" {
		t.Fatalf("expected error message, got %q", repo.events[0].ErrorMessage)
	}
	if logs.FilterMessage("llm request failed").Len() != 1 {
		t.Fatalf("expected a warning log, got %v", logs.All())
	}
}

func TestLoggingProvider_RepoErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(mock, "mock", repo, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("repo failure leaked into request: %v", err)
	}
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
