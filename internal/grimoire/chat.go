package grimoire

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/grimoire/internal/curator"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser    Role = "user"
	RoleCurator Role = "curator"
)

// ChatMessage is one line of the sanctum transcript.
type ChatMessage struct {
	Role Role
	Text string
}

// ChatRequest asks the host to fetch one curator reply.
type ChatRequest struct {
	Token uint64
	Text  string
}

// SetPendingInput replaces the chat input buffer.
func (m *Machine) SetPendingInput(s string) { m.pendingInput = s }

// PendingInput returns the chat input buffer.
func (m *Machine) PendingInput() string { return m.pendingInput }

// SendMessage appends the user's message to the transcript and clears the
// input buffer. Blank text is ignored.
func (m *Machine) SendMessage(text string) (ChatRequest, bool) {
	if strings.TrimSpace(text) == "" {
		return ChatRequest{}, false
	}

	m.transcript = append(m.transcript, ChatMessage{Role: RoleUser, Text: text})
	m.pendingInput = ""

	token := m.issueToken()
	m.inflight[token] = struct{}{}
	return ChatRequest{Token: token, Text: text}, true
}

// ApplyReply appends the curator's answer for the request with token.
// Each request is answered at most once.
func (m *Machine) ApplyReply(token uint64, reply string, err error) bool {
	if _, ok := m.inflight[token]; !ok {
		m.log.Debug("dropping unknown chat reply", zap.Uint64("token", token))
		return false
	}
	delete(m.inflight, token)

	if err != nil {
		m.log.Warn("curator reply failed", zap.Error(err))
	}
	m.transcript = append(m.transcript, ChatMessage{Role: RoleCurator, Text: curator.Display(reply, err)})
	return true
}

// AwaitingReply reports whether any curator reply is outstanding.
func (m *Machine) AwaitingReply() bool { return len(m.inflight) > 0 }

// Transcript returns a copy of the sanctum transcript.
func (m *Machine) Transcript() []ChatMessage { return slices.Clone(m.transcript) }
