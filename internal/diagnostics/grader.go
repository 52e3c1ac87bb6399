package diagnostics

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dspiliot/agora/internal/llm"
)

// gradeAnswer dispatches grading by question type: multiple choice is a
// local equality check, free text goes to the LLM. There is deliberately
// no local grading of free text: a failed LLM call or unparseable grade is
// a hard error, never an estimate.
func gradeAnswer(ctx context.Context, provider llm.Provider, cfg Config, q *Question, studentAnswer string) (*GradeResult, error) {
	switch q.Type {
	case TypeMCQ:
		return gradeMCQ(q, studentAnswer), nil
	case TypeShort:
		return gradeShort(ctx, provider, cfg, q, studentAnswer)
	default:
		return nil, fmt.Errorf("cannot grade question type %q", q.Type)
	}
}

// gradeMCQ compares the chosen letter against the answer key. Deterministic
// and network-free.
func gradeMCQ(q *Question, studentAnswer string) *GradeResult {
	chosen := strings.ToUpper(strings.TrimSpace(studentAnswer))
	key := strings.ToUpper(strings.TrimSpace(q.AnswerKey))

	if chosen == key {
		return &GradeResult{
			Verdict:   VerdictCorrect,
			Score:     1.0,
			Rationale: fmt.Sprintf("Correct. The answer is %s: %s.", q.AnswerKey, q.Options[q.AnswerKey]),
		}
	}

	return &GradeResult{
		Verdict:   VerdictIncorrect,
		Score:     0.0,
		Rationale: fmt.Sprintf("Not quite. The correct answer is %s: %s.", q.AnswerKey, q.Options[q.AnswerKey]),
	}
}

// gradeShort delegates to the LLM with the grading prompt and schema.
func gradeShort(ctx context.Context, provider llm.Provider, cfg Config, q *Question, studentAnswer string) (*GradeResult, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	req := llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingPrompt(q, studentAnswer)},
		},
		Schema:    GradeSchema,
		MaxTokens: cfg.MaxTokens,
	}

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out GradeResult
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decode grade: %w", err)
	}

	// The schema pins verdict and score ranges; this pins their agreement.
	out.Verdict = reconcileVerdict(out.Verdict, out.Score)

	return &out, nil
}

// reconcileVerdict clamps an LLM-supplied verdict to the one its score
// demands when the two disagree.
func reconcileVerdict(v Verdict, score float64) Verdict {
	derived := VerdictFor(score)
	if v == VerdictCorrect || v == VerdictPartial || v == VerdictIncorrect {
		// Only override on a real conflict with the threshold rule: a
		// score at or above the partial threshold is never "incorrect",
		// and a failing score is never "correct".
		if v == VerdictIncorrect && score >= partialThreshold {
			return derived
		}
		if v == VerdictCorrect && score < partialThreshold {
			return derived
		}
		return v
	}
	return derived
}
