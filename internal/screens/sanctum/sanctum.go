// Package sanctum is the chat view where the Curator answers.
package sanctum

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/screen"
	"github.com/abhisek/grimoire/internal/ui/components"
	"github.com/abhisek/grimoire/internal/ui/layout"
	"github.com/abhisek/grimoire/internal/ui/theme"
)

const maxMessageLen = 500

// SanctumScreen shows the transcript and the message input.
type SanctumScreen struct {
	state screen.State
	input components.TextInput
}

var _ screen.Screen = (*SanctumScreen)(nil)
var _ screen.KeyHintProvider = (*SanctumScreen)(nil)

// New creates a SanctumScreen reading from state.
func New(state screen.State) *SanctumScreen {
	return &SanctumScreen{
		state: state,
		input: components.NewTextInput("Ask the Curator...", maxMessageLen),
	}
}

func (s *SanctumScreen) Init() tea.Cmd {
	s.input.SetValue(s.state.PendingInput())
	return s.input.Init()
}

func (s *SanctumScreen) Title() string {
	return "Inner Sanctum"
}

func (s *SanctumScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Speak"},
		{Key: "Esc", Description: "Leave"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SanctumScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, screen.Emit(screen.ReturnHomeMsg{})
		case "enter":
			text, ok := s.input.Take()
			if !ok {
				return s, nil
			}
			return s, screen.Emit(screen.SendMessageMsg{Text: text})
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if after := s.input.Value(); after != before {
		return s, tea.Batch(cmd, screen.Emit(screen.PendingInputMsg{Text: after}))
	}
	return s, cmd
}

func (s *SanctumScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := theme.Title.Width(cw).Render("☩ THE INNER SANCTUM ☩")
	prompt := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Render(s.input.View())

	status := " "
	if s.state.AwaitingReply() {
		status = theme.Hint.Render("The Curator ponders in the dark...")
	}

	avail := height - lipgloss.Height(heading) - lipgloss.Height(prompt) - 3
	transcript := renderTranscript(s.state.Transcript(), cw, avail)

	body := strings.Join([]string{heading, transcript, status, prompt}, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Render(body)
}

// renderTranscript renders the newest messages that fit in height lines.
func renderTranscript(msgs []grimoire.ChatMessage, cw, height int) string {
	if len(msgs) == 0 {
		return theme.Hint.Width(cw).Render("The candles gutter. Speak, and the Curator will answer.")
	}

	userName := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	curatorName := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	text := theme.Body.Width(cw - 2)

	var lines []string
	for _, m := range msgs {
		name := userName.Render("You")
		if m.Role == grimoire.RoleCurator {
			name = curatorName.Render("The Curator")
		}
		lines = append(lines, name)
		lines = append(lines, strings.Split(text.Render(m.Text), "\n")...)
		lines = append(lines, "")
	}

	if height > 0 && len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
}
