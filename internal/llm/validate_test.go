package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(tutorialJSON)
	err := validateResponse(tutorialSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"Only a title"}`)
	err := validateResponse(tutorialSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":"T","content":"C","difficulty":"Novice","tasks":"one"}`)
	err := validateResponse(tutorialSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"title":"T","content":"C","difficulty":"Archmage","tasks":[]}`)
	err := validateResponse(tutorialSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(tutorialSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(tutorialSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestFinalize(t *testing.T) {
	t.Run("plain replies pass through blank", func(t *testing.T) {
		resp, err := finalize(Request{}, &Response{Content: json.RawMessage("  ")})
		if err != nil || resp.Text() != "  " {
			t.Fatalf("got %v, %q", err, resp.Text())
		}
	})

	t.Run("truncated structured reply", func(t *testing.T) {
		_, err := finalize(Request{Schema: tutorialSchema()}, &Response{Content: json.RawMessage(`{"ti`), StopReason: "max_tokens"})
		var maxTok *ErrMaxTokensExceeded
		if !errors.As(err, &maxTok) {
			t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
		}
	})

	t.Run("fenced structured reply", func(t *testing.T) {
		resp, err := finalize(Request{Schema: tutorialSchema()}, &Response{Content: json.RawMessage("```json\n" + tutorialJSON + "\n```")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != tutorialJSON {
			t.Fatalf("fence not stripped: %q", resp.Text())
		}
	})
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := string(stripCodeFence(json.RawMessage(tt.in))); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
