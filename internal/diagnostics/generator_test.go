package diagnostics

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dspiliot/agora/internal/llm"
)

const validMCQJSON = `{
	"type": "mcq",
	"stem": "In the Euthyphro, what dilemma does Socrates pose about piety?",
	"options": {
		"A": "Whether the gods exist",
		"B": "Whether piety is loved by the gods because it is pious, or pious because it is loved",
		"C": "Whether Euthyphro should prosecute his father",
		"D": "Whether piety and justice are the same virtue"
	},
	"answer_key": "B",
	"model_answer": "",
	"concept_tags": ["divine command theory", "metaethics"],
	"difficulty": "intermediate",
	"points": 2
}`

func TestGenerateQuestion_MCQ(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validMCQJSON)})

	q, err := generateQuestion(context.Background(), mock, DefaultConfig(), "The Euthyphro Dilemma", DifficultyIntermediate, nil)
	if err != nil {
		t.Fatalf("generateQuestion: %v", err)
	}

	if q.ID == "" {
		t.Error("question has no id")
	}
	if q.Type != TypeMCQ {
		t.Errorf("got type %s, want mcq", q.Type)
	}
	if q.Topic != "The Euthyphro Dilemma" {
		t.Errorf("got topic %q, want the requested topic", q.Topic)
	}
	if q.AnswerKey != "B" {
		t.Errorf("got answer key %q, want B", q.AnswerKey)
	}
	if len(q.Options) != 4 {
		t.Errorf("got %d options, want 4", len(q.Options))
	}
	if q.Points != 2 {
		t.Errorf("got %d points, want 2", q.Points)
	}
}

func TestGenerateQuestion_Short(t *testing.T) {
	content := `{
		"type": "short",
		"stem": "What does the Ship of Theseus ask about identity over time?",
		"options": {},
		"answer_key": "",
		"model_answer": "Whether an object whose parts are gradually all replaced remains the same object.",
		"concept_tags": ["personal identity"],
		"difficulty": "beginner",
		"points": 1
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})

	q, err := generateQuestion(context.Background(), mock, DefaultConfig(), "Ship of Theseus", DifficultyBeginner, nil)
	if err != nil {
		t.Fatalf("generateQuestion: %v", err)
	}
	if q.Type != TypeShort {
		t.Errorf("got type %s, want short", q.Type)
	}
	if q.ModelAnswer == "" {
		t.Error("short question has no model answer")
	}
}

func TestGenerateQuestion_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validMCQJSON)})
	cfg := DefaultConfig()

	stems := []string{"Earlier question about Euthyphro?"}
	if _, err := generateQuestion(context.Background(), mock, cfg, "The Euthyphro Dilemma", DifficultyIntermediate, stems); err != nil {
		t.Fatalf("generateQuestion: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("request did not carry the question schema")
	}
	if req.Temperature != cfg.Temperature {
		t.Errorf("got temperature %v, want %v", req.Temperature, cfg.Temperature)
	}
	if req.MaxTokens != cfg.MaxTokens {
		t.Errorf("got max tokens %d, want %d", req.MaxTokens, cfg.MaxTokens)
	}
	if !strings.Contains(req.Messages[0].Content, stems[0]) {
		t.Error("recent stem missing from the prompt")
	}
}

func TestGenerateQuestion_TruncatesRecentStems(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validMCQJSON)})
	cfg := DefaultConfig()
	cfg.MaxRecentStems = 2

	stems := []string{"stem one", "stem two", "stem three"}
	if _, err := generateQuestion(context.Background(), mock, cfg, "Utilitarianism", DifficultyBeginner, stems); err != nil {
		t.Fatalf("generateQuestion: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "stem two") {
		t.Error("second stem missing from the prompt")
	}
	if strings.Contains(prompt, "stem three") {
		t.Error("stem beyond the cap leaked into the prompt")
	}
}

func TestGenerateQuestion_ProviderErrorPropagates(t *testing.T) {
	wantErr := &llm.ErrRateLimit{}
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})

	_, err := generateQuestion(context.Background(), mock, DefaultConfig(), "Frankfurt Cases", DifficultyAdvanced, nil)
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("got %v, want *ErrRateLimit", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("got %d provider calls, want 1 (no retry)", mock.CallCount())
	}
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid mcq", func(q *Question) {}, false},
		{"mcq missing answer key", func(q *Question) { q.AnswerKey = "" }, true},
		{"mcq answer key not an option", func(q *Question) { q.AnswerKey = "E" }, true},
		{"mcq single option", func(q *Question) { q.Options = map[string]string{"A": "only"} }, true},
		{"empty stem", func(q *Question) { q.Stem = "" }, true},
		{"unknown type", func(q *Question) { q.Type = "essay" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mcqQuestion()
			tt.mutate(q)
			err := validateQuestion(q)
			if tt.wantErr {
				var invalid *llm.ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Errorf("got %v, want *ErrInvalidResponse", err)
				}
			} else if err != nil {
				t.Errorf("got %v, want nil", err)
			}
		})
	}
}

func TestValidateQuestion_ShortNeedsModelAnswer(t *testing.T) {
	q := shortQuestion()
	q.ModelAnswer = ""

	var invalid *llm.ErrInvalidResponse
	if err := validateQuestion(q); !errors.As(err, &invalid) {
		t.Errorf("got %v, want *ErrInvalidResponse", err)
	}
}
