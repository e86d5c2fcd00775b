package tutorial

import (
	"fmt"
	"strings"

	"github.com/abhisek/grimoire/internal/catalog"
)

const systemPrompt = `You are a dark fantasy chronicler and mentor.

The tone must be gothic, mysterious, and helpful. Use medieval terminology:
scripts are "incantations", variables are "reagents", teams are "legions",
presentations are "enchantments".

Structure every tutorial as:
1. A thematic title.
2. A lore-rich explanation of the concept.
3. Three specific "Quest Tasks" the reader can complete.

Reply with JSON only.`

func buildUserMessage(kind catalog.Kind, topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a tutorial for the skill: %s.\n", kind)
	fmt.Fprintf(&b, "The specific topic is: %s.\n", topic)
	if skill, ok := catalog.Lookup(kind); ok {
		fmt.Fprintf(&b, "In this realm the skill is known as %q.\n", skill.FantasyName)
	}
	return b.String()
}
