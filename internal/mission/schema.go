package mission

import "github.com/abhisek/shadowmaster/internal/llm"

// Schema is the JSON schema a generated mission must satisfy.
var Schema = &llm.Schema{
	Name:        "mission-briefing",
	Description: "A short heist mission briefing",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"codename": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"difficulty": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"objective": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"threat": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"tactics": map[string]any{
				"type": "string",
			},
		},
		"required": []any{"codename", "difficulty", "objective", "threat"},
	},
}
