package explain

import "github.com/abhisek/dungeonquiz/internal/llm"

// ExplainSchema defines the JSON schema for explanation responses.
var ExplainSchema = &llm.Schema{
	Name:        "question-explain",
	Description: "A one-sentence explanation of a quiz answer for a young child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explain": map[string]any{
				"type":        "string",
				"description": "One short, friendly sentence explaining why the answer is right",
			},
		},
		"required":             []any{"explain"},
		"additionalProperties": false,
	},
}
