package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/curator"
	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/llm"
	"github.com/abhisek/grimoire/internal/screen"
	"github.com/abhisek/grimoire/internal/tutorial"
)

type stubGenerator struct {
	mu       sync.Mutex
	result   *tutorial.Tutorial
	err      error
	topics   []string
	sessions []string
}

func (g *stubGenerator) Generate(ctx context.Context, _ catalog.Kind, topic string) (*tutorial.Tutorial, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.topics = append(g.topics, topic)
	g.sessions = append(g.sessions, llm.SessionFrom(ctx))
	return g.result, g.err
}

type stubReplier struct {
	reply string
	err   error
}

func (r *stubReplier) Reply(context.Context, string) (string, error) {
	return r.reply, r.err
}

func sample() *tutorial.Tutorial {
	t := tutorial.Sample
	return &t
}

func newTestModel(gen tutorial.Generator, rep curator.Replier) AppModel {
	m := newAppModel(context.Background(), Deps{
		Tutorials:   gen,
		Curator:     rep,
		SessionID:   "run-1",
		RitualDelay: time.Millisecond,
	})
	m.Init()
	return m
}

// send applies msg through the handler and returns the command it produced.
func send(t *testing.T, m AppModel, msg tea.Msg) tea.Cmd {
	t.Helper()
	cmd, handled := m.handle(msg)
	require.True(t, handled, "message %T not handled", msg)
	return cmd
}

func TestSelectSkillFetchesTutorial(t *testing.T) {
	gen := &stubGenerator{result: sample()}
	m := newTestModel(gen, nil)

	cmd := send(t, m, screen.SelectSkillMsg{Kind: catalog.KindPython})
	require.NotNil(t, cmd)
	assert.Equal(t, grimoire.SkillDetail, m.machine.View())
	assert.True(t, m.machine.Loading())

	result := cmd()
	res, ok := result.(tutorialResultMsg)
	require.True(t, ok, "expected tutorialResultMsg, got %T", result)

	m.Update(res)
	assert.False(t, m.machine.Loading())
	require.NotNil(t, m.machine.Tutorial())
	assert.Equal(t, tutorial.Sample.Title, m.machine.Tutorial().Title)

	assert.Equal(t, []string{tutorial.InitialTopic}, gen.topics)
	assert.Equal(t, []string{"run-1"}, gen.sessions)
}

func TestFailedTutorialLeavesSlotEmpty(t *testing.T) {
	m := newTestModel(&stubGenerator{err: errors.New("abyss")}, nil)

	cmd := send(t, m, screen.SelectSkillMsg{Kind: catalog.KindManagement})
	m.Update(cmd())

	assert.Nil(t, m.machine.Tutorial())
	assert.False(t, m.machine.Loading())
}

func TestStaleTutorialDropped(t *testing.T) {
	gen := &stubGenerator{result: sample()}
	m := newTestModel(gen, nil)

	first := send(t, m, screen.SelectSkillMsg{Kind: catalog.KindPython})
	stale := first().(tutorialResultMsg)

	nextReq, ok := m.machine.NextRitual()
	require.True(t, ok)

	m.Update(stale)
	assert.Nil(t, m.machine.Tutorial(), "stale result must not apply")
	assert.True(t, m.machine.Loading())

	m.Update(tutorialResultMsg{token: nextReq.Token, tutorial: sample()})
	assert.NotNil(t, m.machine.Tutorial())
}

func TestMissingGeneratorDegrades(t *testing.T) {
	m := newTestModel(nil, nil)

	cmd := send(t, m, screen.SelectSkillMsg{Kind: catalog.KindPython})
	m.Update(cmd())
	assert.Nil(t, m.machine.Tutorial())
	assert.False(t, m.machine.Loading())
}

func TestCompleteTaskRewards(t *testing.T) {
	m := newTestModel(&stubGenerator{result: sample()}, nil)
	cmd := send(t, m, screen.SelectSkillMsg{Kind: catalog.KindPython})
	m.Update(cmd())

	before := m.machine.Progress().Level(catalog.KindPython)
	send(t, m, screen.CompleteTaskMsg{Index: 0})

	assert.Equal(t, before+grimoire.TaskReward, m.machine.Progress().Level(catalog.KindPython))
	markers := m.tracker.Active(m.now())
	require.Len(t, markers, 1)
	assert.True(t, m.anim.running)

	content := strings.Repeat(strings.Repeat(".", 80)+"\n", 10)
	assert.Contains(t, m.decorate(content, 80), "+5 XP")

	send(t, m, markerExpiredMsg{id: markers[0].ID})
	assert.Empty(t, m.tracker.Active(m.now()))
	assert.Nil(t, m.onFrame(), "animation stops once markers are gone")
	assert.False(t, m.anim.running)
}

func TestCompleteTaskWithoutTutorialIgnored(t *testing.T) {
	m := newTestModel(&stubGenerator{err: errors.New("x")}, nil)
	send(t, m, screen.SelectSkillMsg{Kind: catalog.KindPython})

	cmd := send(t, m, screen.CompleteTaskMsg{Index: 0})
	assert.Nil(t, cmd)
	assert.Empty(t, m.tracker.Active(m.now()))
}

func TestRitualFlow(t *testing.T) {
	m := newTestModel(nil, nil)

	send(t, m, screen.SummonMsg{})
	assert.True(t, m.machine.Gate().ModalVisible)
	assert.Equal(t, grimoire.Home, m.machine.View())

	tick := send(t, m, screen.BeginRitualMsg{})
	require.NotNil(t, tick)
	assert.True(t, m.machine.Gate().IsPaying)

	// A second begin while paying is refused.
	assert.Nil(t, send(t, m, screen.BeginRitualMsg{}))

	m.Update(tick())
	gate := m.machine.Gate()
	assert.True(t, gate.HasPaid)
	assert.False(t, gate.ModalVisible)
	assert.Equal(t, grimoire.Chat, m.machine.View())
}

func TestDismissKeepsView(t *testing.T) {
	m := newTestModel(nil, nil)

	send(t, m, screen.SummonMsg{})
	send(t, m, screen.DismissModalMsg{})

	assert.False(t, m.machine.Gate().ModalVisible)
	assert.False(t, m.machine.Gate().HasPaid)
	assert.Equal(t, grimoire.Home, m.machine.View())
}

func enterChat(t *testing.T, m AppModel) {
	t.Helper()
	send(t, m, screen.SummonMsg{})
	send(t, m, screen.BeginRitualMsg{})
	send(t, m, ritualDoneMsg{})
	require.Equal(t, grimoire.Chat, m.machine.View())
}

func TestChatRoundTrip(t *testing.T) {
	m := newTestModel(nil, &stubReplier{reply: "  Descend.  "})
	enterChat(t, m)

	send(t, m, screen.PendingInputMsg{Text: "hello"})
	assert.Equal(t, "hello", m.machine.PendingInput())

	cmd := send(t, m, screen.SendMessageMsg{Text: "hello"})
	require.NotNil(t, cmd)
	assert.Len(t, m.machine.Transcript(), 1)
	assert.Empty(t, m.machine.PendingInput())

	m.Update(cmd())
	transcript := m.machine.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, grimoire.RoleCurator, transcript[1].Role)
}

func TestChatErrorFalters(t *testing.T) {
	m := newTestModel(nil, &stubReplier{err: errors.New("severed")})
	enterChat(t, m)

	cmd := send(t, m, screen.SendMessageMsg{Text: "anyone?"})
	m.Update(cmd())

	transcript := m.machine.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, curator.Faltered, transcript[1].Text)
}

func TestBlankMessageIgnored(t *testing.T) {
	m := newTestModel(nil, &stubReplier{reply: "x"})
	enterChat(t, m)

	assert.Nil(t, send(t, m, screen.SendMessageMsg{Text: "   "}))
	assert.Empty(t, m.machine.Transcript())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(nil, nil)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewRendersFrame(t *testing.T) {
	m := newTestModel(nil, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	frame := updated.(AppModel).render()
	assert.Contains(t, frame, "GRIMOIRE")
	assert.Contains(t, frame, "Library of Shadows")

	small, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, small.(AppModel).render(), "tome cannot open")
}
