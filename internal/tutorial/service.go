package tutorial

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/llm"
)

// Purpose labels tutorial requests in the LLM event log.
const Purpose = "tutorial"

// Default topics for the first and follow-up rituals.
const (
	InitialTopic  = "Pythonic Arcana: The First Incantation"
	FollowUpTopic = "Advanced Python Sorcery"
)

// Generator produces a tutorial for a skill and topic.
type Generator interface {
	Generate(ctx context.Context, kind catalog.Kind, topic string) (*Tutorial, error)
}

// Config holds tutorial generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns defaults sized for a short narrative and three tasks.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// Service generates tutorials through an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutorial service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate requests one tutorial. The reply is schema-validated by the
// provider and checked again with Tutorial.Validate.
func (s *Service) Generate(ctx context.Context, kind catalog.Kind, topic string) (*Tutorial, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(kind, topic)},
		},
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("tutorial generation: %w", err)
	}

	var t Tutorial
	if err := json.Unmarshal(resp.Content, &t); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrInvalidTutorial, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
