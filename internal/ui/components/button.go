package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grimoire/internal/ui/theme"
)

// Button is a styled button. Focused marks the button enter will press.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label string, focused bool) Button {
	return Button{
		Label:   label,
		Focused: focused,
	}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonInactive.Foreground(theme.TextDim).Render(b.Label)
	case b.Focused:
		return theme.ButtonActive.Render("▸ " + b.Label)
	default:
		return theme.ButtonInactive.Foreground(theme.Text).Render(b.Label)
	}
}

// ButtonRow renders buttons side by side, centered at width.
func ButtonRow(width int, buttons ...Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View())
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, views...)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(row)
}
