package sheetgen

import "sheetwise/internal/llm"

// WorksheetSchema defines the JSON schema for LLM worksheet generation
// responses. Question ids are assigned locally after decoding, so the
// schema deliberately has no id field.
var WorksheetSchema = &llm.Schema{
	Name:        "worksheet",
	Description: "A complete printable worksheet with a title and an ordered list of questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short worksheet title, e.g. \"Fractions Practice\"",
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "The worksheet questions in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind": map[string]any{
							"type": "string",
							"enum": []any{
								"mcq", "true_false", "short_answer", "vocabulary",
								"character_drill", "symbol_drill", "sentence_drill",
							},
							"description": "The question kind",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The prompt text. For symbol_drill: an optional short label. Empty for character_drill and sentence_drill.",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for mcq. Empty array for every other kind.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "For mcq: the text of the correct option. For true_false: \"True\" or \"False\". For short_answer and vocabulary: the expected answer. For drills: the character, symbol, or sentence to trace.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A brief explanation or definition shown in the answer key. Empty for drills.",
						},
						"is_challenge": map[string]any{
							"type":        "boolean",
							"description": "True for the single optional stretch question",
						},
					},
					"required": []any{
						"kind", "question", "options", "correct_answer",
						"explanation", "is_challenge",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}
