package tutorial

import "encoding/json"

// Sample is served by the offline mock provider.
var Sample = Tutorial{
	Title: "The Binding of Reagents",
	Content: "In the cellar of the Pythonic tower every reagent is bound to a name.\n\n" +
		"```python\nessence = 42\nprint(essence)\n```\n\n" +
		"Speak the name and the reagent answers.",
	Difficulty: Novice,
	Tasks: []string{
		"Bind the reagent `essence` to the number 42",
		"Summon its value with the print incantation",
		"Rebind `essence` to a string and summon it again",
	},
}

// SampleJSON returns Sample encoded as a provider reply.
func SampleJSON() json.RawMessage {
	b, _ := json.Marshal(Sample)
	return b
}
