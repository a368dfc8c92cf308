package pack

// packSchema is the structural JSON Schema every pack document must meet.
// Answer correctness is not structural and is left to Lint.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"meta": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":      map[string]any{"type": "string"},
				"title":   map[string]any{"type": "string"},
				"grade":   map[string]any{"type": "integer"},
				"term":    map[string]any{"type": "string"},
				"phase":   map[string]any{"type": "string"},
				"dungeon": map[string]any{"type": "string"},
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string"},
					"type": map[string]any{"type": "string", "enum": []any{"mcq", "fill"}},
					// Out-of-range difficulties are tolerated and default to 1.
					"difficulty": map[string]any{"type": "integer"},
					"prompt":     map[string]any{"type": "string"},
					"choices": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answer":  map[string]any{"type": "string"},
					"explain": map[string]any{"type": "string"},
				},
				"required": []any{"id", "type", "prompt", "answer"},
			},
		},
	},
	"required": []any{"questions"},
}
