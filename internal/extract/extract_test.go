package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestJSON_PlainObject(t *testing.T) {
	got, err := JSON(`{"verdict":"correct","score":1}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"verdict":"correct","score":1}` {
		t.Errorf("got %s", got)
	}
}

func TestJSON_FencedWithLanguageTag(t *testing.T) {
	raw := "```json\n{\"stem\": \"What does Gettier's paper challenge?\"}\n```"
	got, err := JSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var parsed map[string]string
	if err := json.Unmarshal(got, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed["stem"] != "What does Gettier's paper challenge?" {
		t.Errorf("got stem %q", parsed["stem"])
	}
}

func TestJSON_FencedWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"a\": 1}\n```"
	got, err := JSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"a": 1}` {
		t.Errorf("got %s", got)
	}
}

func TestJSON_SurroundingProse(t *testing.T) {
	raw := "Sure! Here is the question you asked for:\n{\"stem\": \"x\", \"points\": 2}\nLet me know if you need another."
	got, err := JSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"stem": "x", "points": 2}` {
		t.Errorf("got %s", got)
	}
}

func TestJSON_Array(t *testing.T) {
	got, err := JSON("Here you go: [1, 2, 3]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `[1, 2, 3]` {
		t.Errorf("got %s", got)
	}
}

func TestJSON_NestedBraces(t *testing.T) {
	raw := `{"options": {"A": "Plato", "B": "Aristotle"}}`
	got, err := JSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != raw {
		t.Errorf("got %s", got)
	}
}

func TestJSON_NoJSON(t *testing.T) {
	_, err := JSON("I'm sorry, I can't produce that question.")
	var malformed *ErrMalformed
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want *ErrMalformed", err)
	}
}

func TestJSON_UnbalancedBraces(t *testing.T) {
	_, err := JSON(`{"stem": "truncated...`)
	var malformed *ErrMalformed
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want *ErrMalformed", err)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	type grade struct {
		Verdict   string  `json:"verdict"`
		Score     float64 `json:"score"`
		Rationale string  `json:"rationale"`
	}
	in := grade{Verdict: "partial", Score: 0.6, Rationale: "names the counterexample but not the justification condition"}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	for _, wrap := range []string{"%s", "```json\n%s\n```", "```\n%s\n```"} {
		raw := fmt.Sprintf(wrap, string(data))
		doc, err := JSON(raw)
		if err != nil {
			t.Fatalf("wrap %q: %v", wrap, err)
		}
		var out grade
		if err := json.Unmarshal(doc, &out); err != nil {
			t.Fatalf("wrap %q: unmarshal: %v", wrap, err)
		}
		if out != in {
			t.Errorf("wrap %q: got %+v, want %+v", wrap, out, in)
		}
	}
}

func TestObject_RejectsArray(t *testing.T) {
	_, err := Object(`[{"a":1}]`)
	var malformed *ErrMalformed
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want *ErrMalformed", err)
	}
}

