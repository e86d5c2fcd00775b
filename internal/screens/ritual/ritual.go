// Package ritual is the modal that gates the sanctum behind a simulated
// tribute.
package ritual

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grimoire/internal/screen"
	"github.com/abhisek/grimoire/internal/ui/components"
	"github.com/abhisek/grimoire/internal/ui/layout"
	"github.com/abhisek/grimoire/internal/ui/theme"
)

const (
	heading      = "RITUAL OF CONTRIBUTION"
	tribute      = "15 Gold"
	initiate     = "INITIATE RITUAL"
	verifying    = "VERIFYING TRIBUTE..."
	returnToHall = "Return to Library"
	modalWidth   = 56
)

// RitualScreen is the payment modal.
type RitualScreen struct {
	state screen.State
	focus int // 0 initiate, 1 return
}

var _ screen.Screen = (*RitualScreen)(nil)
var _ screen.KeyHintProvider = (*RitualScreen)(nil)

// New creates a RitualScreen reading from state.
func New(state screen.State) *RitualScreen {
	return &RitualScreen{state: state}
}

func (r *RitualScreen) Init() tea.Cmd {
	r.focus = 0
	return nil
}

func (r *RitualScreen) Title() string {
	return "The Sealed Door"
}

func (r *RitualScreen) KeyHints() []layout.KeyHint {
	if r.state.Gate().IsPaying {
		return []layout.KeyHint{{Key: "", Description: "The archive weighs your tribute"}}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Return"},
	}
}

func (r *RitualScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || r.state.Gate().IsPaying {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		r.focus = 1 - r.focus
	case "esc":
		return r, screen.Emit(screen.DismissModalMsg{})
	case "enter":
		if r.focus == 0 {
			return r, screen.Emit(screen.BeginRitualMsg{})
		}
		return r, screen.Emit(screen.DismissModalMsg{})
	}
	return r, nil
}

func (r *RitualScreen) View(width, height int) string {
	inner := min(modalWidth, width-10)
	paying := r.state.Gate().IsPaying

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("⛧ " + heading + " ⛧"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(inner).Align(lipgloss.Center).Render(
		"The Curator dwells beyond a sealed door. Offer a tribute to the archive and the seal will break for as long as this candle burns."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("Tribute: " + tribute))
	b.WriteString("\n\n")

	if paying {
		b.WriteString(components.ButtonRow(inner, components.Button{Label: verifying, Disabled: true}))
	} else {
		b.WriteString(components.ButtonRow(inner,
			components.NewButton(initiate, r.focus == 0),
			components.NewButton(returnToHall, r.focus == 1),
		))
	}

	return theme.Modal.Width(inner + 10).Render(b.String())
}
