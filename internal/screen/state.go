package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/effects"
	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/progress"
	"github.com/abhisek/grimoire/internal/tutorial"
)

// State is the read side of the grimoire machine. Screens render from it
// and never mutate it; changes go through intent messages.
type State interface {
	View() grimoire.View
	Selected() (catalog.Skill, bool)
	Tutorial() *tutorial.Tutorial
	Loading() bool
	Transcript() []grimoire.ChatMessage
	AwaitingReply() bool
	PendingInput() string
	Gate() grimoire.GateState
	Progress() *progress.Store
}

var _ State = (*grimoire.Machine)(nil)

// Intent messages. The root model applies them to the machine.
type (
	SelectSkillMsg  struct{ Kind catalog.Kind }
	NextRitualMsg   struct{}
	CompleteTaskMsg struct{ Index int }
	ReturnHomeMsg   struct{}
	SummonMsg       struct{}
	BeginRitualMsg  struct{}
	DismissModalMsg struct{}
	SendMessageMsg  struct{ Text string }
	PendingInputMsg struct{ Text string }
)

// RewardMsg is delivered to the active screen after a task completion
// raised a skill level.
type RewardMsg struct {
	Index  int
	Entry  progress.Entry
	Marker effects.Marker
}

// Emit wraps msg in a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// RefreshMsg tells the active screen that machine state changed
// outside of its own intents, e.g. a tutorial or reply arrived.
type RefreshMsg struct{}
