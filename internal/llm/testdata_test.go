package llm

// hintSchema is a small schema shared by the provider tests.
func hintSchema() *Schema {
	return &Schema{
		Name: "hint",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint": map[string]any{"type": "string"},
			},
			"required":             []any{"hint"},
			"additionalProperties": false,
		},
	}
}

func hintPrompt() Prompt {
	return Prompt{
		Purpose:      "test",
		Instructions: "You write hints for kids.",
		Input:        "What is 3 + 4?",
		Schema:       hintSchema(),
		MaxTokens:    128,
	}
}
