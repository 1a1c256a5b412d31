package content

// kindSchemas holds the JSON Schema each kind's repaired output must
// satisfy. Enforced at the repair boundary so every provider's raw text is
// checked against the same contract the prompt promised.
var kindSchemas = map[Kind]map[string]any{
	KindQuestion: {
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
			"correct_option_id": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 3,
			},
			"explanation": map[string]any{"type": "string", "minLength": 1},
			"topic":       map[string]any{"type": "string"},
			"difficulty":  map[string]any{"type": "string"},
			"source":      map[string]any{"type": "string"},
			"visual_hint": map[string]any{"type": "string"},
		},
		"required": []any{"question", "options", "correct_option_id", "explanation"},
	},
	KindFact: {
		"type": "object",
		"properties": map[string]any{
			"fact":        map[string]any{"type": "string", "minLength": 1},
			"topic":       map[string]any{"type": "string"},
			"source":      map[string]any{"type": "string"},
			"visual_hint": map[string]any{"type": "string"},
		},
		"required": []any{"fact"},
	},
	KindFormula: {
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "minLength": 1},
			"formula":     map[string]any{"type": "string", "minLength": 1},
			"explanation": map[string]any{"type": "string", "minLength": 1},
			"topic":       map[string]any{"type": "string"},
			"source":      map[string]any{"type": "string"},
			"visual_hint": map[string]any{"type": "string"},
		},
		"required": []any{"title", "formula", "explanation"},
	},
	KindLanguage: {
		"type": "object",
		"properties": map[string]any{
			"language": map[string]any{"type": "string", "minLength": 1},
			"word":     map[string]any{"type": "string", "minLength": 1},
			"phonetic": map[string]any{"type": "string"},
			"meaning":  map[string]any{"type": "string", "minLength": 1},
			"usage":    map[string]any{"type": "string"},
			"tip":      map[string]any{"type": "string"},
		},
		"required": []any{"language", "word", "meaning"},
	},
}
