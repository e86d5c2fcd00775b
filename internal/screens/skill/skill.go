// Package skill renders the skill detail view: the lore card, the
// generated tutorial and its quest tasks.
package skill

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"github.com/abhisek/grimoire/internal/screen"
	"github.com/abhisek/grimoire/internal/tutorial"
	"github.com/abhisek/grimoire/internal/ui/components"
	"github.com/abhisek/grimoire/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

// SkillScreen shows the selected skill and its tutorial.
type SkillScreen struct {
	state screen.State

	shown  *tutorial.Tutorial
	tasks  components.TaskList
	offset int

	spinGen   int
	spinFrame int

	md      *glamour.TermRenderer
	mdWidth int
	mdCache map[*tutorial.Tutorial]string
}

var _ screen.Screen = (*SkillScreen)(nil)
var _ screen.KeyHintProvider = (*SkillScreen)(nil)

// New creates a SkillScreen reading from state.
func New(state screen.State) *SkillScreen {
	return &SkillScreen{
		state:   state,
		mdCache: make(map[*tutorial.Tutorial]string),
	}
}

func (s *SkillScreen) Init() tea.Cmd {
	s.shown = nil
	s.sync()
	return s.startSpinner()
}

func (s *SkillScreen) Title() string {
	if sk, ok := s.state.Selected(); ok {
		return sk.Name
	}
	return "Skill"
}

func (s *SkillScreen) KeyHints() []layout.KeyHint {
	if s.shown == nil {
		return []layout.KeyHint{
			{Key: "n", Description: "Next ritual"},
			{Key: "c", Description: "Summon"},
			{Key: "b", Description: "Repose"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Task"},
		{Key: "Enter", Description: "Complete"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "n", Description: "Next ritual"},
		{Key: "c", Description: "Summon"},
		{Key: "b", Description: "Repose"},
	}
}

func (s *SkillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.sync()

	switch msg := msg.(type) {
	case spinnerTickMsg:
		if msg.gen != s.spinGen || !s.state.Loading() {
			return s, nil
		}
		s.spinFrame++
		return s, s.tick()

	case screen.RefreshMsg:
		return s, s.startSpinner()

	case screen.RewardMsg:
		s.tasks.MarkDone(msg.Index)
		return s, nil

	case components.TaskChosenMsg:
		return s, screen.Emit(screen.CompleteTaskMsg{Index: msg.Index})

	case tea.KeyPressMsg:
		switch msg.String() {
		case "n":
			return s, screen.Emit(screen.NextRitualMsg{})
		case "c":
			return s, screen.Emit(screen.SummonMsg{})
		case "b", "esc":
			return s, screen.Emit(screen.ReturnHomeMsg{})
		case "pgdown":
			s.offset += 5
			return s, nil
		case "pgup":
			s.offset = max(0, s.offset-5)
			return s, nil
		}
		if s.shown != nil {
			var cmd tea.Cmd
			s.tasks, cmd = s.tasks.Update(msg)
			return s, cmd
		}
	}

	return s, nil
}

// sync resets per-tutorial state when the machine holds a different tutorial.
func (s *SkillScreen) sync() {
	t := s.state.Tutorial()
	if t == s.shown {
		return
	}
	s.shown = t
	s.offset = 0
	if t != nil {
		s.tasks = components.NewTaskList(t.Tasks)
	} else {
		s.tasks = components.TaskList{}
	}
	clear(s.mdCache)
}

func (s *SkillScreen) startSpinner() tea.Cmd {
	if !s.state.Loading() {
		return nil
	}
	s.spinGen++
	s.spinFrame = 0
	return s.tick()
}

func (s *SkillScreen) tick() tea.Cmd {
	gen := s.spinGen
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg{gen: gen, at: t}
	})
}

// markdown renders the tutorial narrative, caching per tutorial and width.
// Rendering errors fall back to the raw text.
func (s *SkillScreen) markdown(t *tutorial.Tutorial, width int) string {
	if s.md == nil || s.mdWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return t.Content
		}
		s.md = r
		s.mdWidth = width
		clear(s.mdCache)
	}

	if out, ok := s.mdCache[t]; ok {
		return out
	}
	out, err := s.md.Render(t.Content)
	if err != nil {
		return t.Content
	}
	s.mdCache[t] = out
	return out
}
