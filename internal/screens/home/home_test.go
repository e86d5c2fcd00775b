package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/screen"
)

func newHome() *HomeScreen {
	return New(grimoire.New(grimoire.Config{}, nil))
}

func TestEnterSelectsFirstSkill(t *testing.T) {
	h := newHome()

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(screen.SelectSkillMsg)
	if !ok {
		t.Fatalf("expected SelectSkillMsg, got %T", cmd())
	}
	if msg.Kind != catalog.KindPython {
		t.Errorf("expected %s, got %s", catalog.KindPython, msg.Kind)
	}
}

func TestNavigateToThirdSkill(t *testing.T) {
	h := newHome()

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	msg, ok := cmd().(screen.SelectSkillMsg)
	if !ok || msg.Kind != catalog.KindSpeaker {
		t.Fatalf("expected speaker selection, got %#v", cmd())
	}
}

func TestSummonEntry(t *testing.T) {
	h := newHome()
	for range catalog.All() {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if !h.summonSelected() {
		t.Fatal("expected summon entry selected")
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := cmd().(screen.SummonMsg); !ok {
		t.Fatalf("expected SummonMsg, got %T", cmd())
	}
}

func TestSummonShortcut(t *testing.T) {
	h := newHome()

	_, cmd := h.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(screen.SummonMsg); !ok {
		t.Fatalf("expected SummonMsg, got %T", cmd())
	}
}

func TestViewShowsSkillsAndChart(t *testing.T) {
	h := newHome()
	view := h.View(120, 40)

	for _, want := range []string{"SOUL STATUS", "ARCANE AFFINITY", "Arcane Necromancy of Code", summonLabel} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
