package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a skill identifier is not in the catalog.
var ErrUnknownKind = errors.New("unknown skill kind")

// Kind identifies a skill path.
type Kind string

const (
	KindPython     Kind = "PYTHON"
	KindManagement Kind = "MANAGEMENT"
	KindSpeaker    Kind = "SPEAKER"
)

// Skill holds the display metadata for a skill path.
type Skill struct {
	Kind        Kind
	Name        string
	FantasyName string
	Description string
	Color       string
	Icon        string
	Lore        string
}

var skills = []Skill{
	{
		Kind:        KindPython,
		Name:        "Python",
		FantasyName: "Arcane Necromancy of Code",
		Description: "Master the logic that weaves the fabric of the digital realm.",
		Color:       "#3776ab",
		Icon:        "🐍",
		Lore:        "Ancient scripts whispered by the Great Serpent. Learn to automate the shadows and command the logic of the abyss.",
	},
	{
		Kind:        KindManagement,
		Name:        "Management",
		FantasyName: "Lordship of the Iron Citadel",
		Description: "Direct the legions and govern the vast territories of project chaos.",
		Color:       "#e44d26",
		Icon:        "🏰",
		Lore:        "Heavy is the crown that coordinates the knights. Command the flow of resources and steel your resolve against the siege of deadlines.",
	},
	{
		Kind:        KindSpeaker,
		Name:        "Public Speaking",
		FantasyName: "Bardic Eloquence of the High Altar",
		Description: "Beguile the masses and sway the councils with the power of your voice.",
		Color:       "#ffd700",
		Icon:        "🎙️",
		Lore:        "Your words are enchantments. Master the cadence of the soul to inspire hope or strike terror into the hearts of the listeners.",
	},
}

// All returns every skill in display order.
func All() []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	return out
}

// Lookup returns the skill for kind.
func Lookup(kind Kind) (Skill, bool) {
	for _, s := range skills {
		if s.Kind == kind {
			return s, true
		}
	}
	return Skill{}, false
}

// ParseKind resolves a case-insensitive skill identifier.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := Lookup(k); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}
