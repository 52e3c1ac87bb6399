package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleAnswer(userID string) *Answer {
	return &Answer{
		UserID:       userID,
		QuestionType: "mcq",
		Topic:        "Gettier Problems",
		Difficulty:   "intermediate",
		QuestionData: map[string]any{
			"stem":      "What does Gettier's 1963 paper target?",
			"options":   map[string]any{"A": "JTB analysis of knowledge", "B": "Utilitarianism"},
			"answerKey": "A",
		},
		StudentAns: "A",
		Verdict:    "correct",
		Score:      1.0,
		Rationale:  "Correct. The answer is A: JTB analysis of knowledge.",
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAnswerAppendAndByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnswerRepo()
	ctx := context.Background()

	id, err := repo.Append(ctx, sampleAnswer("u1"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated answer id")
	}

	got, err := repo.ByID(ctx, "u1", id)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got.Verdict != "correct" || got.Score != 1.0 {
		t.Errorf("got verdict=%q score=%v", got.Verdict, got.Score)
	}
	if got.QuestionData["answerKey"] != "A" {
		t.Errorf("question snapshot lost: %+v", got.QuestionData)
	}
	if got.IsContested {
		t.Error("fresh answer should not be contested")
	}
}

func TestAnswerOwnership(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnswerRepo()
	ctx := context.Background()

	id, err := repo.Append(ctx, sampleAnswer("u1"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	_, err = repo.ByID(ctx, "someone-else", id)
	var notFound *ErrAnswerNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want *ErrAnswerNotFound for foreign user", err)
	}
}

func TestHistoryOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnswerRepo()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		a := sampleAnswer("u1")
		id, err := repo.Append(ctx, a)
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		ids = append(ids, id)
	}
	if _, err := repo.Append(ctx, sampleAnswer("u2")); err != nil {
		t.Fatalf("append other user: %v", err)
	}

	hist, err := repo.History(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("got %d answers, want 3", len(hist))
	}
	// Most recent first.
	if hist[0].AnswerID != ids[2] {
		t.Errorf("got first=%s, want most recent %s", hist[0].AnswerID, ids[2])
	}

	limited, err := repo.History(ctx, "u1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("history limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d answers with limit 2", len(limited))
	}
}

func TestMarkContestedOnce(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnswerRepo()
	ctx := context.Background()

	id, err := repo.Append(ctx, sampleAnswer("u1"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	res := ContestResult{
		Reason:    "my answer named the justification condition",
		Verdict:   "contest_accepted",
		Score:     0.9,
		Rationale: "On re-read, the substance is there.",
	}
	if err := repo.MarkContested(ctx, "u1", id, res); err != nil {
		t.Fatalf("first contest: %v", err)
	}

	got, err := repo.ByID(ctx, "u1", id)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if !got.IsContested {
		t.Error("expected is_contested true")
	}
	if got.ContestedScore != 0.9 || got.ContestedVerdict != "contest_accepted" {
		t.Errorf("contest fields not written: %+v", got)
	}
	// Original grade untouched.
	if got.Score != 1.0 || got.Verdict != "correct" || got.Rationale == "" {
		t.Errorf("original grade fields changed: %+v", got)
	}

	err = repo.MarkContested(ctx, "u1", id, res)
	var already *ErrAlreadyContested
	if !errors.As(err, &already) {
		t.Fatalf("second contest: got %v, want *ErrAlreadyContested", err)
	}
}

func TestMarkContestedMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnswerRepo()

	err := repo.MarkContested(context.Background(), "u1", "no-such-id", ContestResult{})
	var notFound *ErrAnswerNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want *ErrAnswerNotFound", err)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "grading",
		InputTokens:  420,
		OutputTokens: 80,
		LatencyMs:    950,
		Success:      true,
		RequestBody:  "[system]\ngrade this",
		ResponseBody: `{"verdict":"partial","score":0.6}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "grading" || !e.Success || e.InputTokens != 420 {
		t.Errorf("event fields wrong: %+v", e)
	}

	byID, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if byID == nil || byID.ResponseBody != e.ResponseBody {
		t.Errorf("get by id mismatch: %+v", byID)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.AnswerRepo().Append(ctx, sampleAnswer("u1")); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	// The answer consumed sequence 1, so the event must have sequence 2.
	if events[0].Sequence != 2 {
		t.Errorf("event sequence = %d, want 2", events[0].Sequence)
	}
}
