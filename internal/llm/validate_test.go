package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var gradeTestSchema = &Schema{
	Name:        "test-grade",
	Description: "grading result",
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
		},
		"required":             []any{"verdict", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"verdict":"partial","score":0.6}`)
	if err := validateResponse(gradeTestSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingField(t *testing.T) {
	raw := json.RawMessage(`{"verdict":"correct"}`)
	err := validateResponse(gradeTestSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want *ErrInvalidResponse", err)
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	raw := json.RawMessage(`{"verdict":"maybe","score":0.5}`)
	err := validateResponse(gradeTestSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want *ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json at all`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestFinishContent_TruncatedSchemaResponse(t *testing.T) {
	// A structured response cut off at the token limit is rejected before
	// extraction even sees it, keeping the raw text for the event log.
	_, err := finishContent(`{"verdict":"cor`, stopMaxTokens, gradeTestSchema)
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("got %v, want *ErrMaxTokensExceeded", err)
	}
	if string(truncated.Content) != `{"verdict":"cor` {
		t.Errorf("truncated content not preserved: %q", truncated.Content)
	}
}

func TestFinishContent_TruncationWithoutSchemaPassesThrough(t *testing.T) {
	got, err := finishContent("plain prose, cut mid-sen", stopMaxTokens, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "plain prose, cut mid-sen" {
		t.Errorf("got %q", got)
	}
}

func TestFinishContent_ValidSchemaResponse(t *testing.T) {
	got, err := finishContent("```json\n{\"verdict\":\"correct\",\"score\":1}\n```", stopEnd, gradeTestSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"verdict":"correct","score":1}` {
		t.Errorf("got %q", got)
	}
}
