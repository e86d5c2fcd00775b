package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/llm"
	"github.com/abhisek/grimoire/internal/screen"
	"github.com/abhisek/grimoire/internal/tutorial"
)

// tutorialResultMsg carries a finished tutorial request back to the loop.
type tutorialResultMsg struct {
	token    uint64
	tutorial *tutorial.Tutorial
	err      error
}

// replyResultMsg carries a finished curator request back to the loop.
type replyResultMsg struct {
	token uint64
	reply string
	err   error
}

// ritualDoneMsg fires once the verification delay has passed.
type ritualDoneMsg struct{}

// markerExpiredMsg removes a reward marker.
type markerExpiredMsg struct {
	id ulid.ULID
}

// handle applies intents and results to the machine. It reports false for
// messages that belong to the screens.
func (m AppModel) handle(msg tea.Msg) (tea.Cmd, bool) {
	log := m.deps.Logger

	switch msg := msg.(type) {
	case screen.SelectSkillMsg:
		req, err := m.machine.SelectSkill(msg.Kind)
		if err != nil {
			log.Warn("cannot select skill", zap.String("kind", string(msg.Kind)), zap.Error(err))
			return nil, true
		}
		return m.fetchTutorial(req), true

	case screen.NextRitualMsg:
		req, ok := m.machine.NextRitual()
		if !ok {
			return nil, true
		}
		return tea.Batch(m.fetchTutorial(req), m.router.Update(screen.RefreshMsg{})), true

	case tutorialResultMsg:
		if m.machine.ApplyTutorial(msg.token, msg.tutorial, msg.err) {
			return m.router.Update(screen.RefreshMsg{}), true
		}
		return nil, true

	case screen.CompleteTaskMsg:
		entry, ok := m.machine.CompleteTask(msg.Index)
		if !ok {
			return nil, true
		}
		marker := m.tracker.Spawn(m.now())
		log.Debug("task completed",
			zap.String("kind", string(entry.Kind)),
			zap.Int("task", msg.Index),
			zap.Int("level", entry.Level))
		return tea.Batch(
			m.router.Update(screen.RewardMsg{Index: msg.Index, Entry: entry, Marker: marker}),
			m.expireMarker(marker.ID),
			m.animate(),
		), true

	case animFrameMsg:
		return m.onFrame(), true

	case markerExpiredMsg:
		m.tracker.Expire(msg.id)
		m.tracker.Sweep(m.now())
		return nil, true

	case screen.ReturnHomeMsg:
		m.machine.ReturnHome()
		return nil, true

	case screen.SummonMsg:
		m.machine.Summon()
		return nil, true

	case screen.BeginRitualMsg:
		if !m.machine.BeginRitual() {
			return nil, true
		}
		log.Info("ritual begun", zap.Duration("delay", m.deps.RitualDelay))
		return tea.Tick(m.deps.RitualDelay, func(time.Time) tea.Msg { return ritualDoneMsg{} }), true

	case ritualDoneMsg:
		m.machine.CompleteRitual()
		log.Info("ritual complete, sanctum unsealed")
		return nil, true

	case screen.DismissModalMsg:
		m.machine.DismissModal()
		return nil, true

	case screen.PendingInputMsg:
		m.machine.SetPendingInput(msg.Text)
		return nil, true

	case screen.SendMessageMsg:
		req, ok := m.machine.SendMessage(msg.Text)
		if !ok {
			return nil, true
		}
		return m.fetchReply(req), true

	case replyResultMsg:
		m.machine.ApplyReply(msg.token, msg.reply, msg.err)
		return nil, true
	}

	return nil, false
}

// requestContext scopes an outbound call to this run and the request timeout.
func (m AppModel) requestContext() (context.Context, context.CancelFunc) {
	ctx := llm.WithSession(m.ctx, m.deps.SessionID)
	return context.WithTimeout(ctx, m.deps.RequestTimeout)
}

func (m AppModel) fetchTutorial(req grimoire.TutorialRequest) tea.Cmd {
	gen := m.deps.Tutorials
	if gen == nil {
		return func() tea.Msg {
			return tutorialResultMsg{token: req.Token, err: errNoGenerator}
		}
	}
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		t, err := gen.Generate(ctx, req.Kind, req.Topic)
		return tutorialResultMsg{token: req.Token, tutorial: t, err: err}
	}
}

func (m AppModel) fetchReply(req grimoire.ChatRequest) tea.Cmd {
	replier := m.deps.Curator
	if replier == nil {
		return func() tea.Msg {
			return replyResultMsg{token: req.Token, err: errNoCurator}
		}
	}
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		reply, err := replier.Reply(ctx, req.Text)
		return replyResultMsg{token: req.Token, reply: reply, err: err}
	}
}

func (m AppModel) expireMarker(id ulid.ULID) tea.Cmd {
	return tea.Tick(m.tracker.Lifetime(), func(time.Time) tea.Msg {
		return markerExpiredMsg{id: id}
	})
}
