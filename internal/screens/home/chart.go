package home

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/progress"
	"github.com/abhisek/grimoire/internal/ui/components"
	"github.com/abhisek/grimoire/internal/ui/theme"
)

// renderTitle returns the library heading.
func renderTitle(cw int, compact bool) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true).
		Render("✠  T H E   L I B R A R Y  ✠")

	if compact {
		return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(title)
	}
	sub := theme.Subtitle.Width(cw).Render("Choose a path. The pages will write themselves.")
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(title) + "\n" + sub
}

// renderSoulStatus renders the overall progress bar in a double border.
func renderSoulStatus(p *progress.Store, cw int) string {
	bar := components.ProgressBar{
		Label:       "SOUL STATUS",
		Percent:     p.Ratio(),
		ShowPercent: true,
		Width:       cw - 6,
		Fill:        theme.Primary,
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Padding(0, 1).
		Render(bar.View())
}

// renderSkillMenu renders the skill paths and the summon entry.
func renderSkillMenu(menu components.Menu, cw int) string {
	// The summon entry is drawn as a button below the chart.
	skills := components.Menu{Items: menu.Items[:len(menu.Items)-1], Selected: menu.Selected}
	return lipgloss.NewStyle().
		Width(cw).
		Render(strings.TrimRight(skills.View(), "\n"))
}

// renderAffinityChart draws one horizontal bar per skill, colored with the
// skill's accent.
func renderAffinityChart(p *progress.Store, cw int) string {
	heading := lipgloss.NewStyle().Foreground(theme.TextDim).Render("ARCANE AFFINITY")

	entries := p.Entries()
	labelWidth := 0
	for _, e := range entries {
		labelWidth = max(labelWidth, lipgloss.Width(e.Skill))
	}

	lines := []string{heading}
	for _, e := range entries {
		label := fmt.Sprintf("%-*s %3d", labelWidth, e.Skill, e.Level)
		bar := components.ProgressBar{
			Label:   label,
			Percent: float64(e.Level) / float64(e.FullMark),
			Width:   cw - 8,
			Fill:    skillColor(e.Kind),
		}
		lines = append(lines, bar.View())
	}

	return components.Card(strings.Join(lines, "\n"), cw)
}

func skillColor(kind catalog.Kind) color.Color {
	if sk, ok := catalog.Lookup(kind); ok {
		return lipgloss.Color(sk.Color)
	}
	return theme.Secondary
}
