package diagnostics

import (
	"strings"
	"testing"
)

func TestBuildQuestionPrompt(t *testing.T) {
	got := buildQuestionPrompt("Gettier Problems", DifficultyIntermediate, []string{
		"What is justified true belief?",
		"Describe Smith's job interview case.",
	})

	for _, want := range []string{
		"Topic: Gettier Problems",
		"Difficulty: intermediate",
		"1. What is justified true belief?",
		"2. Describe Smith's job interview case.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildQuestionPrompt_NoRecentStems(t *testing.T) {
	got := buildQuestionPrompt("Utilitarianism", DifficultyBeginner, nil)

	if !strings.Contains(got, "None") {
		t.Errorf("prompt should mark the recent list empty:\n%s", got)
	}
}

func TestBuildGradingPrompt(t *testing.T) {
	q := shortQuestion()
	got := buildGradingPrompt(q, "They can only see shadows on the wall.")

	for _, want := range []string{
		"Question: " + q.Stem,
		"Model answer: " + q.ModelAnswer,
		"Student's answer: They can only see shadows on the wall.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildContestPrompt(t *testing.T) {
	got := buildContestPrompt(
		"What does the trolley problem test?",
		"It tests the conflict between consequentialist and deontological intuitions.",
		"It shows numbers matter.",
		0.4,
		"The answer misses the deontological side.",
		"I did mention duties implicitly.",
	)

	for _, want := range []string{
		"Original score: 0.40",
		"Original rationale: The answer misses the deontological side.",
		"Student's objection: I did mention duties implicitly.",
		"Model answer:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildContestPrompt_OmitsEmptyModelAnswer(t *testing.T) {
	got := buildContestPrompt("Stem?", "", "answer", 0.0, "wrong", "why")

	if strings.Contains(got, "Model answer:") {
		t.Errorf("prompt should omit the model answer section when empty:\n%s", got)
	}
}
