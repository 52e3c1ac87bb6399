package diagnostics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dspiliot/agora/internal/llm"
)

func mcqQuestion() *Question {
	return &Question{
		ID:        "q-1",
		Type:      TypeMCQ,
		Stem:      "Which condition did Gettier cases show to be insufficient for knowledge?",
		Options:   map[string]string{"A": "Truth", "B": "Justified true belief", "C": "Belief", "D": "Certainty"},
		AnswerKey: "B",
		Topic:     "Gettier Problems",
	}
}

func shortQuestion() *Question {
	return &Question{
		ID:          "q-2",
		Type:        TypeShort,
		Stem:        "Explain the prisoner's predicament in Plato's allegory of the cave.",
		ModelAnswer: "The prisoners mistake shadows cast on the wall for reality itself, having never seen the objects or the fire producing them.",
		Topic:       "Plato's Cave",
	}
}

func TestGradeMCQ_Correct(t *testing.T) {
	got, err := gradeAnswer(context.Background(), nil, DefaultConfig(), mcqQuestion(), "B")
	if err != nil {
		t.Fatalf("gradeAnswer: %v", err)
	}
	if got.Verdict != VerdictCorrect {
		t.Errorf("got verdict %s, want %s", got.Verdict, VerdictCorrect)
	}
	if got.Score != 1.0 {
		t.Errorf("got score %v, want 1.0", got.Score)
	}
	if got.Rationale == "" {
		t.Error("rationale is empty")
	}
}

func TestGradeMCQ_Incorrect(t *testing.T) {
	got, err := gradeAnswer(context.Background(), nil, DefaultConfig(), mcqQuestion(), "A")
	if err != nil {
		t.Fatalf("gradeAnswer: %v", err)
	}
	if got.Verdict != VerdictIncorrect {
		t.Errorf("got verdict %s, want %s", got.Verdict, VerdictIncorrect)
	}
	if got.Score != 0.0 {
		t.Errorf("got score %v, want 0.0", got.Score)
	}
}

func TestGradeMCQ_NormalizesInput(t *testing.T) {
	got, err := gradeAnswer(context.Background(), nil, DefaultConfig(), mcqQuestion(), "  b ")
	if err != nil {
		t.Fatalf("gradeAnswer: %v", err)
	}
	if got.Verdict != VerdictCorrect {
		t.Errorf("got verdict %s, want %s", got.Verdict, VerdictCorrect)
	}
}

func TestGradeShort_UsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"partial","score":0.6,"rationale":"You name the shadows but not what casts them."}`),
	})

	got, err := gradeAnswer(context.Background(), mock, DefaultConfig(), shortQuestion(), "They only see shadows.")
	if err != nil {
		t.Fatalf("gradeAnswer: %v", err)
	}
	if got.Verdict != VerdictPartial {
		t.Errorf("got verdict %s, want %s", got.Verdict, VerdictPartial)
	}
	if got.Score != 0.6 {
		t.Errorf("got score %v, want 0.6", got.Score)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("got %d provider calls, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != GradeSchema {
		t.Error("grading request did not carry the grade schema")
	}
	if req.Temperature != 0 {
		t.Errorf("got temperature %v, want 0", req.Temperature)
	}
}

func TestGradeShort_ProviderErrorPropagates(t *testing.T) {
	wantErr := &llm.ErrUpstream{Provider: "openai", StatusCode: 500}
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})

	_, err := gradeAnswer(context.Background(), mock, DefaultConfig(), shortQuestion(), "anything")
	var upstream *llm.ErrUpstream
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want *ErrUpstream", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("got %d provider calls, want 1 (no retry)", mock.CallCount())
	}
}

func TestGradeShort_ReconcilesConflictingVerdict(t *testing.T) {
	// Score 0.7 with verdict "incorrect" is a contradiction the threshold
	// rule resolves.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"incorrect","score":0.7,"rationale":"Mostly there."}`),
	})

	got, err := gradeAnswer(context.Background(), mock, DefaultConfig(), shortQuestion(), "answer")
	if err != nil {
		t.Fatalf("gradeAnswer: %v", err)
	}
	if got.Verdict != VerdictPartial {
		t.Errorf("got verdict %s, want %s", got.Verdict, VerdictPartial)
	}
}

func TestGradeAnswer_UnknownType(t *testing.T) {
	q := &Question{Type: QuestionType("essay")}
	if _, err := gradeAnswer(context.Background(), nil, DefaultConfig(), q, "x"); err == nil {
		t.Fatal("got nil error for unknown question type")
	}
}

func TestReconcileVerdict(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		score   float64
		want    Verdict
	}{
		{"agrees correct", VerdictCorrect, 0.9, VerdictCorrect},
		{"agrees partial", VerdictPartial, 0.6, VerdictPartial},
		{"agrees incorrect", VerdictIncorrect, 0.1, VerdictIncorrect},
		{"incorrect with passing score", VerdictIncorrect, 0.7, VerdictPartial},
		{"incorrect with high score", VerdictIncorrect, 0.9, VerdictCorrect},
		{"correct with failing score", VerdictCorrect, 0.2, VerdictIncorrect},
		{"partial below correct threshold stands", VerdictPartial, 0.84, VerdictPartial},
		{"partial above correct threshold stands", VerdictPartial, 0.9, VerdictPartial},
		{"garbage verdict derived", Verdict("meh"), 0.9, VerdictCorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reconcileVerdict(tt.verdict, tt.score); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Verdict
	}{
		{1.0, VerdictCorrect},
		{0.85, VerdictCorrect},
		{0.84, VerdictPartial},
		{0.5, VerdictPartial},
		{0.49, VerdictIncorrect},
		{0.0, VerdictIncorrect},
	}
	for _, tt := range tests {
		if got := VerdictFor(tt.score); got != tt.want {
			t.Errorf("VerdictFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
