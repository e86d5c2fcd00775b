package sanctum

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/screen"
)

func newSanctum() (*grimoire.Machine, *SanctumScreen) {
	m := grimoire.New(grimoire.Config{}, nil)
	m.Summon()
	m.BeginRitual()
	m.CompleteRitual()
	s := New(m)
	s.Init()
	return m, s
}

// typeText feeds keys without running the returned commands, which may
// include cursor blink timers.
func typeText(s *SanctumScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// collect runs cmd and flattens batches, skipping nil results.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestTypingSyncsPendingInput(t *testing.T) {
	_, s := newSanctum()
	typeText(s, "h")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'i', Text: "i"})
	msgs := collect(cmd)
	var last screen.PendingInputMsg
	found := false
	for _, m := range msgs {
		if p, ok := m.(screen.PendingInputMsg); ok {
			last, found = p, true
		}
	}
	if !found || last.Text != "hi" {
		t.Fatalf("expected PendingInputMsg{hi}, got %#v", msgs)
	}
}

func TestEnterSendsTrimmedMessage(t *testing.T) {
	_, s := newSanctum()
	typeText(s, "  hello ")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if got := cmd(); got != (screen.SendMessageMsg{Text: "hello"}) {
		t.Fatalf("expected SendMessageMsg{hello}, got %#v", got)
	}
	if s.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", s.input.Value())
	}
}

func TestEnterOnBlankIsNoop(t *testing.T) {
	_, s := newSanctum()
	typeText(s, "   ")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank input should not send")
	}
}

func TestEscLeaves(t *testing.T) {
	_, s := newSanctum()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(screen.ReturnHomeMsg); !ok {
		t.Fatalf("expected ReturnHomeMsg, got %T", cmd())
	}
}

func TestInitRestoresPendingInput(t *testing.T) {
	m, _ := newSanctum()
	m.SetPendingInput("half a thought")

	s := New(m)
	s.Init()
	if s.input.Value() != "half a thought" {
		t.Errorf("expected restored input, got %q", s.input.Value())
	}
}

func TestViewShowsTranscript(t *testing.T) {
	m, s := newSanctum()

	req, ok := m.SendMessage("what lies below?")
	if !ok {
		t.Fatal("expected a chat request")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "what lies below?") {
		t.Error("expected user message in view")
	}
	if !strings.Contains(view, "ponders") {
		t.Error("expected awaiting indicator")
	}

	m.ApplyReply(req.Token, "Only more stairs.", nil)
	view = s.View(100, 30)
	if !strings.Contains(view, "Only more stairs.") {
		t.Error("expected curator reply in view")
	}
	if strings.Contains(view, "ponders") {
		t.Error("awaiting indicator should clear")
	}
}

func TestTranscriptKeepsNewest(t *testing.T) {
	msgs := []grimoire.ChatMessage{
		{Role: grimoire.RoleUser, Text: "first"},
		{Role: grimoire.RoleCurator, Text: "second"},
		{Role: grimoire.RoleUser, Text: "third"},
	}
	out := renderTranscript(msgs, 60, 3)
	if strings.Contains(out, "first") {
		t.Error("oldest message should scroll away")
	}
	if !strings.Contains(out, "third") {
		t.Error("newest message should be visible")
	}
}
