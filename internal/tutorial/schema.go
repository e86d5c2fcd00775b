package tutorial

import "github.com/abhisek/grimoire/internal/llm"

// SchemaName identifies tutorial replies.
const SchemaName = "grimoire-tutorial"

// Schema is the structured output contract for tutorial generation.
var Schema = &llm.Schema{
	Name:        SchemaName,
	Description: "A themed tutorial with a title, narrative, difficulty tier and quest tasks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Thematic title for the tutorial",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Lore-rich explanation of the concept, markdown allowed",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{string(Novice), string(Adept), string(Master)},
			},
			"tasks": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Exactly three quest tasks",
			},
		},
		"required":             []any{"title", "content", "difficulty", "tasks"},
		"additionalProperties": false,
	},
}
