// Package grimoire holds the application state machine: which view is
// active, the selected skill and its tutorial, the sanctum transcript, the
// contribution gate and the learner's progress.
//
// The machine never performs I/O. Operations that need the generative
// service return a request descriptor; the host runs it and hands the
// result back through ApplyTutorial or ApplyReply. All methods must be
// called from a single goroutine.
package grimoire

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/progress"
	"github.com/abhisek/grimoire/internal/tutorial"
)

// TaskReward is the level gain for completing one quest task.
const TaskReward = 5

// ErrWrongView is returned when an operation is not valid in the current view.
var ErrWrongView = errors.New("operation not valid in current view")

// View identifies the active screen.
type View int

const (
	Home View = iota
	SkillDetail
	Chat
)

func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case SkillDetail:
		return "skill"
	case Chat:
		return "chat"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Topics are the tutorial topics requested on entry and on "next ritual".
type Topics struct {
	Initial  string
	FollowUp string
}

// DefaultTopics returns the built-in topics.
func DefaultTopics() Topics {
	return Topics{Initial: tutorial.InitialTopic, FollowUp: tutorial.FollowUpTopic}
}

// TutorialRequest asks the host to generate one tutorial.
type TutorialRequest struct {
	Token uint64
	Kind  catalog.Kind
	Topic string
}

// Config configures a Machine.
type Config struct {
	Topics   Topics
	Progress *progress.Store
}

// Machine is the explicit application state container.
type Machine struct {
	log    *zap.Logger
	topics Topics

	view     View
	selected *catalog.Skill
	tutorial *tutorial.Tutorial
	loading  bool

	// tutorialToken is the token of the only tutorial result that may
	// still be applied. Zero means none is in flight.
	tutorialToken uint64
	nextToken     uint64

	transcript   []ChatMessage
	pendingInput string
	inflight     map[uint64]struct{}

	gate     GateState
	progress *progress.Store
}

// New creates a Machine on the Home view. A nil logger discards logs.
func New(cfg Config, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Topics.Initial == "" {
		cfg.Topics.Initial = tutorial.InitialTopic
	}
	if cfg.Topics.FollowUp == "" {
		cfg.Topics.FollowUp = tutorial.FollowUpTopic
	}
	if cfg.Progress == nil {
		cfg.Progress = progress.Default()
	}
	return &Machine{
		log:      logger,
		topics:   cfg.Topics,
		view:     Home,
		inflight: make(map[uint64]struct{}),
		progress: cfg.Progress,
	}
}

func (m *Machine) issueToken() uint64 {
	m.nextToken++
	return m.nextToken
}

// SelectSkill opens the skill path from Home and requests its first tutorial.
func (m *Machine) SelectSkill(kind catalog.Kind) (TutorialRequest, error) {
	if m.view != Home {
		return TutorialRequest{}, fmt.Errorf("select skill from %s: %w", m.view, ErrWrongView)
	}
	skill, ok := catalog.Lookup(kind)
	if !ok {
		return TutorialRequest{}, fmt.Errorf("%w: %q", catalog.ErrUnknownKind, kind)
	}

	m.view = SkillDetail
	m.selected = &skill
	m.tutorial = nil
	return m.requestTutorial(m.topics.Initial), nil
}

// NextRitual requests a follow-up tutorial for the selected skill. The
// current tutorial stays visible until the new one arrives.
func (m *Machine) NextRitual() (TutorialRequest, bool) {
	if m.view != SkillDetail || m.selected == nil {
		return TutorialRequest{}, false
	}
	return m.requestTutorial(m.topics.FollowUp), true
}

func (m *Machine) requestTutorial(topic string) TutorialRequest {
	m.loading = true
	m.tutorialToken = m.issueToken()
	m.log.Debug("tutorial requested",
		zap.Uint64("token", m.tutorialToken),
		zap.String("skill", string(m.selected.Kind)),
		zap.String("topic", topic),
	)
	return TutorialRequest{Token: m.tutorialToken, Kind: m.selected.Kind, Topic: topic}
}

// ApplyTutorial stores a generation result. It reports false and changes
// nothing when token is not the latest request or the skill view has been
// left. On failure the tutorial slot is cleared.
func (m *Machine) ApplyTutorial(token uint64, t *tutorial.Tutorial, err error) bool {
	if token == 0 || token != m.tutorialToken || m.view != SkillDetail {
		m.log.Debug("dropping stale tutorial result",
			zap.Uint64("token", token),
			zap.Uint64("latest", m.tutorialToken),
			zap.Stringer("view", m.view),
		)
		return false
	}

	m.tutorialToken = 0
	m.loading = false

	if err == nil {
		err = t.Validate()
	}
	if err != nil {
		m.tutorial = nil
		m.log.Warn("failed to load tutorial",
			zap.String("skill", string(m.selected.Kind)),
			zap.Error(err),
		)
		return true
	}

	m.tutorial = t
	return true
}

// ReturnHome leaves SkillDetail or Chat. The selected skill and tutorial
// are cleared and any in-flight tutorial result will be dropped.
func (m *Machine) ReturnHome() {
	if m.view == Home {
		return
	}
	m.view = Home
	m.selected = nil
	m.tutorial = nil
	m.loading = false
	m.tutorialToken = 0
}

// CompleteTask credits the selected skill for task index of the current
// tutorial. Repeated completion of the same task is allowed.
func (m *Machine) CompleteTask(index int) (progress.Entry, bool) {
	if m.view != SkillDetail || m.selected == nil || m.tutorial == nil {
		return progress.Entry{}, false
	}
	if index < 0 || index >= len(m.tutorial.Tasks) {
		return progress.Entry{}, false
	}
	return m.progress.Increment(m.selected.Kind, TaskReward)
}

// View returns the active view.
func (m *Machine) View() View { return m.view }

// Selected returns the selected skill, if any.
func (m *Machine) Selected() (catalog.Skill, bool) {
	if m.selected == nil {
		return catalog.Skill{}, false
	}
	return *m.selected, true
}

// Tutorial returns the loaded tutorial or nil.
func (m *Machine) Tutorial() *tutorial.Tutorial { return m.tutorial }

// Loading reports whether a tutorial request is outstanding.
func (m *Machine) Loading() bool { return m.loading }

// Progress returns the progress store.
func (m *Machine) Progress() *progress.Store { return m.progress }
