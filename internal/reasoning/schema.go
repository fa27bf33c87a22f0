package reasoning

import "github.com/quizbee/adjudicator/internal/llm"

// VerdictSchema defines the JSON schema for judge responses. The verdict
// is constrained to two values so a response that can't be mapped to a
// clean CORRECT/INCORRECT never parses as one.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "Judgment of whether a contestant's answer matches the canonical answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type":        "string",
				"enum":        []any{"CORRECT", "INCORRECT"},
				"description": "Whether the contestant's answer should be accepted",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence score (0.0–1.0) in the verdict",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One-sentence explanation of the verdict",
			},
		},
		"required":             []any{"verdict", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}
