package llm

const tutorialJSON = `{"title":"Pythonic Arcana: The First Incantation","content":"Variables bind names to values.","difficulty":"Novice","tasks":["Bind a name","Print it"]}`

func tutorialSchema() *Schema {
	return &Schema{
		Name:        "grimoire-tutorial",
		Description: "A short tutorial",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":      map[string]any{"type": "string"},
				"content":    map[string]any{"type": "string"},
				"difficulty": map[string]any{"type": "string", "enum": []any{"Novice", "Adept", "Master"}},
				"tasks": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"title", "content", "difficulty", "tasks"},
		},
	}
}
