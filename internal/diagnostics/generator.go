package diagnostics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dspiliot/agora/internal/llm"
)

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Type        string            `json:"type"`
	Stem        string            `json:"stem"`
	Options     map[string]string `json:"options"`
	AnswerKey   string            `json:"answer_key"`
	ModelAnswer string            `json:"model_answer"`
	ConceptTags []string          `json:"concept_tags"`
	Difficulty  string            `json:"difficulty"`
	Points      int               `json:"points"`
}

// generateQuestion asks the provider for one question and validates its
// structure. Any provider, extraction, or validation failure propagates
// unchanged: there is no canned question to fall back to.
func generateQuestion(ctx context.Context, provider llm.Provider, cfg Config, topic string, difficulty Difficulty, recentStems []string) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	if len(recentStems) > cfg.MaxRecentStems {
		recentStems = recentStems[:cfg.MaxRecentStems]
	}

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionPrompt(topic, difficulty, recentStems)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}

	q := &Question{
		ID:          uuid.NewString(),
		Type:        QuestionType(raw.Type),
		Stem:        raw.Stem,
		Options:     raw.Options,
		AnswerKey:   raw.AnswerKey,
		ModelAnswer: raw.ModelAnswer,
		ConceptTags: raw.ConceptTags,
		Topic:       topic,
		Difficulty:  Difficulty(raw.Difficulty),
		Points:      raw.Points,
	}

	if err := validateQuestion(q); err != nil {
		return nil, err
	}

	return q, nil
}

// validateQuestion enforces structure the JSON schema cannot express.
func validateQuestion(q *Question) error {
	switch q.Type {
	case TypeMCQ:
		if len(q.Options) < 2 {
			return &llm.ErrInvalidResponse{Err: fmt.Errorf("mcq question has %d options", len(q.Options))}
		}
		if q.AnswerKey == "" {
			return &llm.ErrInvalidResponse{Err: fmt.Errorf("mcq question has no answer key")}
		}
		if _, ok := q.Options[q.AnswerKey]; !ok {
			return &llm.ErrInvalidResponse{Err: fmt.Errorf("answer key %q is not among the options", q.AnswerKey)}
		}
	case TypeShort:
		if q.ModelAnswer == "" {
			return &llm.ErrInvalidResponse{Err: fmt.Errorf("short question has no model answer")}
		}
	default:
		return &llm.ErrInvalidResponse{Err: fmt.Errorf("unknown question type %q", q.Type)}
	}

	if q.Stem == "" {
		return &llm.ErrInvalidResponse{Err: fmt.Errorf("question has an empty stem")}
	}

	return nil
}
