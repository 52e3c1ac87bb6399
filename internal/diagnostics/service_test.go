package diagnostics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/dspiliot/agora/internal/llm"
	"github.com/dspiliot/agora/internal/logger"
	"github.com/dspiliot/agora/internal/store"
)

// fixedSource serves one provider for every model name.
type fixedSource struct {
	p   llm.Provider
	err error
}

func (f fixedSource) Provider(context.Context, string) (llm.Provider, error) {
	return f.p, f.err
}

func newTestService(t *testing.T, p llm.Provider) *Service {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(fixedSource{p: p}, s.AnswerRepo(), logger.Nop())
}

func TestService_NewQuestion_PinnedTopic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validMCQJSON)})
	svc := newTestService(t, mock)

	q, err := svc.NewQuestion(context.Background(), NewQuestionParams{
		Topic: "The Euthyphro Dilemma",
		Level: LevelAdaptive,
	})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	if q.Topic != "The Euthyphro Dilemma" {
		t.Errorf("got topic %q, want the pinned topic", q.Topic)
	}
}

func TestService_NewQuestion_RotatesWhenUnpinned(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validMCQJSON)})
	svc := newTestService(t, mock)

	history := []TrendEntry{{Topic: "Plato's Cave", Correct: true}}
	q, err := svc.NewQuestion(context.Background(), NewQuestionParams{
		SessionHistory: history,
	})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	if q.Topic == "Plato's Cave" {
		t.Error("rotation repeated the immediately preceding topic")
	}
}

func TestService_NewQuestion_MissingKeySurfaces(t *testing.T) {
	wantErr := &llm.ErrMissingAPIKey{Provider: "openai", EnvVar: llm.EnvOpenAIKey}
	svc := NewService(fixedSource{err: wantErr}, nil, logger.Nop())

	_, err := svc.NewQuestion(context.Background(), NewQuestionParams{Model: "gpt-4o"})
	var missing *llm.ErrMissingAPIKey
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want *ErrMissingAPIKey", err)
	}
}

func TestService_Grade_MCQRecordsAnswer(t *testing.T) {
	svc := newTestService(t, nil)

	out, err := svc.Grade(context.Background(), GradeParams{
		UserID:        "student-1",
		Question:      mcqQuestion(),
		StudentAnswer: "B",
		TimeMs:        4200,
	})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if out.AnswerID == "" {
		t.Fatal("got empty answer id")
	}
	if out.Verdict != VerdictCorrect || out.Score != 1.0 {
		t.Errorf("got %s/%v, want correct/1.0", out.Verdict, out.Score)
	}

	history, err := svc.History(context.Background(), "student-1", 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d history rows, want 1", len(history))
	}
	rec := history[0]
	if rec.AnswerID != out.AnswerID {
		t.Errorf("got recorded id %q, want %q", rec.AnswerID, out.AnswerID)
	}
	if rec.TimeMs != 4200 {
		t.Errorf("got time %d, want 4200", rec.TimeMs)
	}
	if stem, _ := rec.QuestionData["stem"].(string); stem == "" {
		t.Error("question snapshot missing stem")
	}
}

func TestService_Grade_MCQNeedsNoProvider(t *testing.T) {
	// Multiple-choice grading is local; a missing API key must not block it.
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	svc := NewService(fixedSource{err: &llm.ErrMissingAPIKey{Provider: "openai"}}, s.AnswerRepo(), logger.Nop())

	if _, err := svc.Grade(context.Background(), GradeParams{
		Question:      mcqQuestion(),
		StudentAnswer: "A",
	}); err != nil {
		t.Fatalf("Grade: %v", err)
	}
}

func TestService_Grade_Short(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"correct","score":0.9,"rationale":"Well put."}`),
	})
	svc := newTestService(t, mock)

	out, err := svc.Grade(context.Background(), GradeParams{
		UserID:        "student-1",
		Question:      shortQuestion(),
		StudentAnswer: "They mistake shadows for the things themselves.",
	})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if out.Verdict != VerdictCorrect {
		t.Errorf("got verdict %s, want correct", out.Verdict)
	}
}

func TestService_Contest_OnceOnly(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"verdict":"partial","score":0.4,"rationale":"Missing the fire."}`)},
		llm.MockResponse{Content: json.RawMessage(`{"verdict":"contest_accepted","score":0.7,"rationale":"On reflection the answer does capture the core."}`)},
	)
	svc := newTestService(t, mock)
	ctx := context.Background()

	graded, err := svc.Grade(ctx, GradeParams{
		UserID:        "student-1",
		Question:      shortQuestion(),
		StudentAnswer: "Shadows are all they know.",
	})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	outcome, err := svc.Contest(ctx, ContestParams{
		UserID:        "student-1",
		AnswerID:      graded.AnswerID,
		ContestReason: "My answer does name the essential point.",
	})
	if err != nil {
		t.Fatalf("Contest: %v", err)
	}
	if outcome.Verdict != VerdictContestAccepted {
		t.Errorf("got verdict %s, want contest_accepted", outcome.Verdict)
	}
	if outcome.NewScore != 0.7 {
		t.Errorf("got new score %v, want 0.7", outcome.NewScore)
	}

	// Original grade fields survive untouched alongside the contest.
	history, err := svc.History(ctx, "student-1", 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	rec := history[0]
	if rec.Score != 0.4 || rec.Verdict != string(VerdictPartial) {
		t.Errorf("original grade rewritten: %s/%v", rec.Verdict, rec.Score)
	}
	if !rec.IsContested || rec.ContestedScore != 0.7 {
		t.Errorf("contest fields not recorded: %+v", rec)
	}

	callsBefore := mock.CallCount()
	_, err = svc.Contest(ctx, ContestParams{
		UserID:        "student-1",
		AnswerID:      graded.AnswerID,
		ContestReason: "Trying again.",
	})
	var already *store.ErrAlreadyContested
	if !errors.As(err, &already) {
		t.Fatalf("got %v, want *ErrAlreadyContested", err)
	}
	if mock.CallCount() != callsBefore {
		t.Error("second contest reached the provider")
	}
}

func TestService_Contest_UnknownAnswer(t *testing.T) {
	svc := newTestService(t, llm.NewMockProvider())

	_, err := svc.Contest(context.Background(), ContestParams{
		UserID:   "student-1",
		AnswerID: "no-such-id",
	})
	var notFound *store.ErrAnswerNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want *ErrAnswerNotFound", err)
	}
}

func TestService_Contest_ProviderFailureLeavesRecordOpen(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"verdict":"incorrect","score":0.2,"rationale":"Off target."}`)},
		llm.MockResponse{Err: &llm.ErrUpstream{Provider: "anthropic", StatusCode: 503}},
		llm.MockResponse{Content: json.RawMessage(`{"verdict":"contest_denied","score":0.2,"rationale":"The grade stands."}`)},
	)
	svc := newTestService(t, mock)
	ctx := context.Background()

	graded, err := svc.Grade(ctx, GradeParams{
		UserID:        "student-1",
		Question:      shortQuestion(),
		StudentAnswer: "Something vague.",
	})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	_, err = svc.Contest(ctx, ContestParams{UserID: "student-1", AnswerID: graded.AnswerID, ContestReason: "Re-read it."})
	var upstream *llm.ErrUpstream
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want *ErrUpstream", err)
	}

	// A failed re-evaluation must not consume the one-shot contest.
	outcome, err := svc.Contest(ctx, ContestParams{UserID: "student-1", AnswerID: graded.AnswerID, ContestReason: "Re-read it."})
	if err != nil {
		t.Fatalf("Contest after failure: %v", err)
	}
	if outcome.Verdict != VerdictContestDenied {
		t.Errorf("got verdict %s, want contest_denied", outcome.Verdict)
	}
}

func TestService_Stats(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	q := mcqQuestion()
	for _, ans := range []string{"B", "B", "A"} {
		if _, err := svc.Grade(ctx, GradeParams{UserID: "student-1", Question: q, StudentAnswer: ans}); err != nil {
			t.Fatalf("Grade: %v", err)
		}
	}

	stats, err := svc.Stats(ctx, "student-1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalQuestions != 3 {
		t.Errorf("got %d total, want 3", stats.TotalQuestions)
	}
	if stats.CorrectAnswers != 2 {
		t.Errorf("got %d correct, want 2", stats.CorrectAnswers)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("got current streak %d, want 0", stats.CurrentStreak)
	}
	if stats.BestStreak != 2 {
		t.Errorf("got best streak %d, want 2", stats.BestStreak)
	}
	if tp := stats.TopicsProgress["Gettier Problems"]; tp == nil || tp.Attempted != 3 || tp.Correct != 2 {
		t.Errorf("got topic progress %+v, want 2/3", tp)
	}
}

func TestService_History_DefaultUser(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.Grade(ctx, GradeParams{Question: mcqQuestion(), StudentAnswer: "B"}); err != nil {
		t.Fatalf("Grade: %v", err)
	}

	// An empty user id falls back to the single-user default on both
	// write and read.
	history, err := svc.History(ctx, "", 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d rows, want 1", len(history))
	}
	if history[0].UserID != DefaultUserID {
		t.Errorf("got user %q, want %q", history[0].UserID, DefaultUserID)
	}
}
