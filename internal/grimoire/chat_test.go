package grimoire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/grimoire/internal/curator"
)

func chatMachine(t *testing.T) *Machine {
	t.Helper()
	m := New(Config{}, nil)
	m.Summon()
	require.True(t, m.BeginRitual())
	m.CompleteRitual()
	return m
}

func TestSendMessage_BlankIsNoop(t *testing.T) {
	m := chatMachine(t)
	m.SetPendingInput("   ")

	for _, text := range []string{"", "   ", "\t\n"} {
		_, ok := m.SendMessage(text)
		assert.False(t, ok, "%q should be ignored", text)
	}
	assert.Empty(t, m.Transcript())
	assert.Equal(t, "   ", m.PendingInput(), "pending input untouched")
	assert.False(t, m.AwaitingReply())
}

func TestSendMessage_OneThenTwo(t *testing.T) {
	m := chatMachine(t)
	m.SetPendingInput("hello")

	req, ok := m.SendMessage(m.PendingInput())
	require.True(t, ok)
	assert.Equal(t, "hello", req.Text)
	assert.Empty(t, m.PendingInput())

	transcript := m.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, ChatMessage{Role: RoleUser, Text: "hello"}, transcript[0])
	assert.True(t, m.AwaitingReply())

	require.True(t, m.ApplyReply(req.Token, "Greetings, seeker.", nil))
	transcript = m.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, ChatMessage{Role: RoleCurator, Text: "Greetings, seeker."}, transcript[1])
	assert.False(t, m.AwaitingReply())
}

func TestApplyReply_Fallbacks(t *testing.T) {
	m := chatMachine(t)

	silent, _ := m.SendMessage("are you there?")
	failed, _ := m.SendMessage("hello?")

	m.ApplyReply(failed.Token, "", errors.New("connection reset"))
	m.ApplyReply(silent.Token, "  ", nil)

	transcript := m.Transcript()
	require.Len(t, transcript, 4)
	assert.Equal(t, curator.Faltered, transcript[2].Text)
	assert.Equal(t, curator.SilentReply, transcript[3].Text)
}

func TestApplyReply_ExactlyOncePerRequest(t *testing.T) {
	m := chatMachine(t)
	req, _ := m.SendMessage("hello")

	assert.True(t, m.ApplyReply(req.Token, "first", nil))
	assert.False(t, m.ApplyReply(req.Token, "second", nil))
	assert.False(t, m.ApplyReply(999, "unknown", nil))
	assert.Len(t, m.Transcript(), 2)
}

func TestTranscript_SurvivesLeavingSanctum(t *testing.T) {
	m := chatMachine(t)
	req, _ := m.SendMessage("hello")
	m.ReturnHome()

	assert.True(t, m.ApplyReply(req.Token, "I will wait.", nil), "replies land even after leaving")
	m.Summon()
	assert.Equal(t, Chat, m.View())
	assert.Len(t, m.Transcript(), 2)
}

func TestTranscript_IsACopy(t *testing.T) {
	m := chatMachine(t)
	m.SendMessage("hello")

	tr := m.Transcript()
	tr[0].Text = "tampered"
	assert.Equal(t, "hello", m.Transcript()[0].Text)
}
