// Package curator talks to the Curator persona behind the sanctum chat.
package curator

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/grimoire/internal/llm"
)

// Purpose labels curator requests in the LLM event log.
const Purpose = "curator"

// Fallback lines shown in place of a real reply.
const (
	SilentReply = "The abyss is silent..."
	Faltered    = "The spectral connection faltered."
)

// Replier answers a single chat message.
type Replier interface {
	Reply(ctx context.Context, message string) (string, error)
}

// Config holds curator request settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns defaults for short conversational replies.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.9,
	}
}

// Client implements Replier on top of an llm.Provider.
type Client struct {
	provider llm.Provider
	cfg      Config
}

// NewClient creates a curator client.
func NewClient(provider llm.Provider, cfg Config) *Client {
	return &Client{provider: provider, cfg: cfg}
}

// Reply returns the reply text as the provider sent it. A blank reply is
// not an error; callers decide how to show it.
func (c *Client) Reply(ctx context.Context, message string) (string, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: Prompt(message)},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("curator reply: %w", err)
	}
	return resp.Text(), nil
}

// Prompt embeds message in the persona template.
func Prompt(message string) string {
	return fmt.Sprintf("You are the Curator, a dark fantasy mentor. The user asks: %s. Reply in a gothic, helpful tone.", message)
}

// Display maps a reply outcome to the line shown in the transcript.
func Display(reply string, err error) string {
	switch {
	case err != nil:
		return Faltered
	case strings.TrimSpace(reply) == "":
		return SilentReply
	default:
		return reply
	}
}

// SampleReply is served by the offline mock provider.
const SampleReply = "Patience, seeker. Every tome yields its secrets to those who return to it nightly."
