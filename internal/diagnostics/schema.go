package diagnostics

import "github.com/dspiliot/agora/internal/llm"

// QuestionSchema defines the JSON schema for question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "diagnostic-question",
	Description: "A single philosophy diagnostic question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"mcq", "short"},
				"description": "How the student answers: pick a lettered option or write free text",
			},
			"stem": map[string]any{
				"type":        "string",
				"description": "The question text shown to the student, self-contained",
			},
			"options": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "string",
				},
				"description": "Option letter to option text, exactly four entries A-D for mcq, empty object for short",
			},
			"answer_key": map[string]any{
				"type":        "string",
				"description": "Letter of the correct option for mcq, empty for short",
			},
			"model_answer": map[string]any{
				"type":        "string",
				"description": "Reference answer for short, empty for mcq",
			},
			"concept_tags": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Concepts the question exercises",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"beginner", "intermediate", "advanced"},
				"description": "Difficulty band the question was written for",
			},
			"points": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     3,
				"description": "Course weight: 1 beginner, 2 intermediate, 3 advanced",
			},
		},
		"required":             []any{"type", "stem", "options", "answer_key", "model_answer", "concept_tags", "difficulty", "points"},
		"additionalProperties": false,
	},
}

// GradeSchema defines the JSON schema for grading responses.
var GradeSchema = &llm.Schema{
	Name:        "answer-grade",
	Description: "The grade for one short free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{"correct", "partial", "incorrect"},
			},
			"score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "Two or three sentences addressed to the student",
			},
		},
		"required":             []any{"verdict", "score", "rationale"},
		"additionalProperties": false,
	},
}

// ContestSchema defines the JSON schema for contest re-evaluation responses.
var ContestSchema = &llm.Schema{
	Name:        "contest-decision",
	Description: "The outcome of re-evaluating a contested grade",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{"contest_accepted", "contest_denied"},
			},
			"score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "Two or three sentences explaining the decision",
			},
		},
		"required":             []any{"verdict", "score", "rationale"},
		"additionalProperties": false,
	},
}
