package skill

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/tutorial"
	"github.com/abhisek/grimoire/internal/ui/components"
	"github.com/abhisek/grimoire/internal/ui/theme"
)

const arcaneShell = `>>> import necronomicon as nc
>>> daemon = nc.summon("asyncio")
>>> await daemon.bind(shadows=True)
<Bound daemon at 0x666>`

func (s *SkillScreen) View(width, height int) string {
	sk, ok := s.state.Selected()
	if !ok {
		return ""
	}

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderLoreCard(sk, cw))
	if sk.Kind == catalog.KindPython {
		sections = append(sections, renderArcaneShell(cw))
	}

	switch {
	case s.state.Loading():
		sections = append(sections, s.renderLoading(cw))
	case s.shown == nil:
		sections = append(sections, renderAbsent(cw))
	default:
		sections = append(sections, s.renderTutorial(s.shown, cw))
	}

	body := strings.Join(sections, "\n\n")
	body = scroll(body, s.offset, height)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Render(body)
}

func renderLoreCard(sk catalog.Skill, cw int) string {
	accent := lipgloss.Color(sk.Color)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).
		Render(fmt.Sprintf("%s  %s", sk.Icon, sk.FantasyName)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(sk.Name))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(sk.Lore))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(cw - 2).
		Padding(0, 2).
		Render(b.String())
}

func renderArcaneShell(cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.TextDim).Render("arcane shell")
	code := lipgloss.NewStyle().Foreground(theme.Terminal).Render(arcaneShell)
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		Background(theme.BgDark).
		Width(cw - 2).
		Padding(0, 1).
		Render(title + "\n" + code)
}

func (s *SkillScreen) renderLoading(cw int) string {
	frame := spinnerFrames[s.spinFrame%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Gold).
		Render(frame + "  The chronicler inscribes the pages...")
}

func renderAbsent(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Failure.Render("The pages remain blank. The ritual went unanswered.") +
			"\n" + theme.Hint.Render("press n to attempt another ritual"))
}

func (s *SkillScreen) renderTutorial(t *tutorial.Tutorial, cw int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render(t.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(difficultyBadge(t.Difficulty)))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(s.markdown(t, cw), "\n"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("QUESTS"))
	b.WriteString("\n")
	b.WriteString(s.tasks.View(cw))

	return b.String()
}

func difficultyBadge(d tutorial.Difficulty) string {
	var c color.Color
	switch d {
	case tutorial.Novice:
		c = theme.Success
	case tutorial.Adept:
		c = theme.Secondary
	default:
		c = theme.Primary
	}
	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(c).
		Bold(true).
		Padding(0, 1).
		Render(strings.ToUpper(string(d)))
}

// scroll returns the height-line window of body starting at offset.
func scroll(body string, offset, height int) string {
	lines := strings.Split(body, "\n")
	if height <= 0 || len(lines) <= height {
		return body
	}
	offset = min(offset, len(lines)-height)
	return strings.Join(lines[offset:offset+height], "\n")
}
