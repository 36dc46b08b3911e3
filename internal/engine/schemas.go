package engine

import "github.com/abhisek/intervu/internal/llm"

// TurnDecisionSchema defines the JSON schema for turn decisions: the
// controller's proposal for what the interviewer does next.
var TurnDecisionSchema = &llm.Schema{
	Name:        "turn-decision",
	Description: "Interviewer's next dialogue action after a candidate response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type":        "string",
				"enum":        []any{"FOLLOWUP", "MOVE_TO_NEXT_QUESTION", "WRAP_UP"},
				"description": "The proposed next dialogue action",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "The interviewer's next message (follow-up question or transition)",
			},
			"done_with_question": map[string]any{
				"type":        "boolean",
				"description": "Whether the current question has been sufficiently covered",
			},
			"allow_second_followup": map[string]any{
				"type":        "boolean",
				"description": "Whether a second follow-up on this question would be worthwhile",
			},
			"quick_rubric": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "number", "minimum": 0, "maximum": 10},
				"minItems":    5,
				"maxItems":    5,
				"description": "Scores 0-10 for communication, problem solving, correctness reasoning, complexity, edge cases, in that order",
			},
			"intent": map[string]any{
				"type":        "string",
				"description": "What the candidate is trying to do (answer, clarify, stall, give up)",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in this decision",
			},
			"next_focus": map[string]any{
				"type":        "string",
				"description": "The single element a follow-up should probe (approach, correctness, complexity, edge_cases, tradeoffs, star, impact)",
			},
			"coverage": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "boolean"},
				"description":          "Per-element coverage of the expected answer",
			},
			"missing_focus": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Expected elements the response did not address",
			},
		},
		"required":             []any{"action", "message", "confidence"},
		"additionalProperties": false,
	},
}

// WarmupClassificationSchema defines the JSON schema for classifying the
// candidate's reply to the greeting.
var WarmupClassificationSchema = &llm.Schema{
	Name:        "warmup-classification",
	Description: "Tone and smalltalk read of the candidate's greeting reply",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tone": map[string]any{
				"type":        "string",
				"description": "Overall tone: positive, neutral, nervous, or flat",
			},
			"energy": map[string]any{
				"type":        "string",
				"description": "Energy level: high, medium, or low",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in this classification",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "Smalltalk topic the reply invites (school, project, work, commute, weekend, weather), or empty",
			},
			"smalltalk_question": map[string]any{
				"type":        "string",
				"description": "One natural smalltalk question to ask next, or empty",
			},
		},
		"required":             []any{"tone", "energy", "confidence"},
		"additionalProperties": false,
	},
}

// IntentClassificationSchema defines the JSON schema for disambiguating
// short candidate replies the heuristics cannot place.
var IntentClassificationSchema = &llm.Schema{
	Name:        "intent-classification",
	Description: "What a short or ambiguous candidate reply is trying to do",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{
				"type":        "string",
				"enum":        []any{"answer", "clarification", "move_on", "dont_know", "smalltalk"},
				"description": "The candidate's intent",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in the intent call",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One-sentence justification",
			},
		},
		"required":             []any{"intent", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}
