package llm

import (
	"testing"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GRIMOIRE_LLM_PROVIDER",
		"GRIMOIRE_ANTHROPIC_API_KEY", "GRIMOIRE_ANTHROPIC_MODEL",
		"GRIMOIRE_OPENAI_API_KEY", "GRIMOIRE_OPENAI_MODEL", "GRIMOIRE_OPENAI_BASE_URL",
		"GRIMOIRE_GEMINI_API_KEY", "GRIMOIRE_GEMINI_MODEL",
		"GRIMOIRE_OPENROUTER_API_KEY", "GRIMOIRE_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfigUsesGemini(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini provider, got %q", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-3-flash-preview" {
		t.Fatalf("unexpected default gemini model %q", cfg.Gemini.Model)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("GRIMOIRE_LLM_PROVIDER", "openai")
	t.Setenv("GRIMOIRE_OPENAI_API_KEY", "sk-test")
	t.Setenv("GRIMOIRE_OPENAI_BASE_URL", "https://example.test/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.BaseURL != "https://example.test/v1" {
		t.Fatalf("env not applied: %+v", cfg.OpenAI)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateMissingKey(t *testing.T) {
	for _, p := range []string{"anthropic", "openai", "gemini", "openrouter"} {
		cfg := DefaultConfig()
		cfg.Provider = p
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error for missing key", p)
		}
	}
}

func TestValidateMockAndUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock should validate: %v", err)
	}
	cfg.Provider = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearLLMEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("GEMINI_API_KEY", "g")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovered config")
	}
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g" {
		t.Fatalf("expected gemini to win, got %q", cfg.Provider)
	}
}

func TestSetModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.SetModel("claude-sonnet")
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Fatalf("expected model override, got %q", cfg.Anthropic.Model)
	}
	cfg.SetModel("")
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Fatal("empty model should not override")
	}
}
