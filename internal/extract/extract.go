// Package extract pulls a JSON document out of LLM free text.
//
// Providers are asked for structured output, but models still wrap JSON in
// markdown fences or surround it with prose often enough that every response
// goes through this package before schema validation. Nothing outside this
// package touches raw LLM text.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrMalformed indicates no parseable JSON object or array was found in the
// raw text.
type ErrMalformed struct {
	Raw string
	Err error
}

func (e *ErrMalformed) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no parseable JSON in LLM response: %v", e.Err)
	}
	return "no parseable JSON in LLM response"
}

func (e *ErrMalformed) Unwrap() error { return e.Err }

// JSON extracts the first JSON object or array from raw text.
// It strips markdown code fences (```json ... ``` or ``` ... ```), then
// slices from the first '{' to the last '}' (or '[' to ']'), and verifies
// the result parses. Returns *ErrMalformed when nothing parseable remains.
func JSON(raw string) (json.RawMessage, error) {
	text := stripFences(strings.TrimSpace(raw))

	candidate, ok := sliceDocument(text)
	if !ok {
		return nil, &ErrMalformed{Raw: raw}
	}

	if !json.Valid([]byte(candidate)) {
		// Report the underlying parse error for diagnostics.
		var v any
		err := json.Unmarshal([]byte(candidate), &v)
		return nil, &ErrMalformed{Raw: raw, Err: err}
	}

	return json.RawMessage(candidate), nil
}

// Object is JSON constrained to a top-level object. Arrays are rejected.
func Object(raw string) (json.RawMessage, error) {
	doc, err := JSON(raw)
	if err != nil {
		return nil, err
	}
	if doc[0] != '{' {
		return nil, &ErrMalformed{Raw: raw, Err: fmt.Errorf("expected JSON object, got array")}
	}
	return doc, nil
}

// stripFences removes a leading/trailing markdown code fence pair.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	rest := text[3:]
	// Drop an optional language tag on the opening fence line.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		first := strings.TrimSpace(rest[:nl])
		if first == "" || isLanguageTag(first) {
			rest = rest[nl+1:]
		}
	}
	if idx := strings.LastIndex(rest, "```"); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}

func isLanguageTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// sliceDocument returns the substring from the first opening brace/bracket
// to the last matching closing one. Objects win over arrays when the object
// opens first.
func sliceDocument(text string) (string, bool) {
	objStart := strings.IndexByte(text, '{')
	arrStart := strings.IndexByte(text, '[')

	var start int
	var closer byte
	switch {
	case objStart >= 0 && (arrStart < 0 || objStart < arrStart):
		start, closer = objStart, '}'
	case arrStart >= 0:
		start, closer = arrStart, ']'
	default:
		return "", false
	}

	end := strings.LastIndexByte(text, closer)
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}
