package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/screen"
	"github.com/abhisek/grimoire/internal/ui/components"
	"github.com/abhisek/grimoire/internal/ui/layout"
)

const summonLabel = "SUMMON THE CURATOR"

// HomeScreen is the library: skill paths, the affinity chart and the
// summon button.
type HomeScreen struct {
	state screen.State
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen reading from state.
func New(state screen.State) *HomeScreen {
	var items []components.MenuItem
	for _, sk := range catalog.All() {
		kind := sk.Kind
		items = append(items, components.MenuItem{
			Label:  sk.Icon + "  " + sk.FantasyName,
			Detail: sk.Name + " · " + sk.Description,
			Action: func() tea.Cmd {
				return screen.Emit(screen.SelectSkillMsg{Kind: kind})
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: summonLabel,
		Action: func() tea.Cmd {
			return screen.Emit(screen.SummonMsg{})
		},
	})

	return &HomeScreen{
		state: state,
		menu:  components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Library of Shadows"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "c", Description: "Summon"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "c" {
		return h, screen.Emit(screen.SummonMsg{})
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderSoulStatus(h.state.Progress(), cw))
	sections = append(sections, renderSkillMenu(h.menu, cw))
	if !compact {
		sections = append(sections, renderAffinityChart(h.state.Progress(), cw))
	}
	sections = append(sections, components.SigilButton(summonLabel, h.summonSelected(), 28))

	return components.TomeFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) summonSelected() bool {
	return h.menu.Selected == len(h.menu.Items)-1
}
