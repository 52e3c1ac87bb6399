package diagnostics

import (
	"fmt"
	"strings"
)

// Prompt builders are pure functions over their inputs so they can be unit
// tested without network calls.

const questionSystemPrompt = `You are a philosophy instructor writing diagnostic questions for an introductory undergraduate course.

Rules:
- Generate a single question on the given topic at the given difficulty.
- Choose "mcq" for recognition and comparison tasks (four lettered options A-D, exactly one correct). Distractors should reflect common misreadings of the material, not random noise.
- Choose "short" for questions that probe understanding in the student's own words, and provide a concise model answer capturing the essential philosophical substance.
- The stem must be self-contained: name the thinker, text, or thought experiment it relies on.
- Tag the question with the concepts it exercises (e.g. "epistemology", "justified true belief").
- Assign points: 1 for beginner, 2 for intermediate, 3 for advanced.
- Do not repeat any question from the "recently asked" list.`

// buildQuestionPrompt constructs the user message for question generation.
func buildQuestionPrompt(topic string, difficulty Difficulty, recentStems []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)

	b.WriteString("\nRecently asked:\n")
	if len(recentStems) == 0 {
		b.WriteString("None")
	} else {
		for i, s := range recentStems {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

const gradingSystemPrompt = `You are grading a short free-text answer in an introductory philosophy course.

Rules:
- Judge philosophical substance only. Ignore grammar, spelling, and style entirely.
- Grade generously: full credit for answers that capture the essential point in the student's own words, partial credit for answers that show real understanding but miss a component.
- score is a number from 0 to 1. verdict must agree with the score: "correct" for clearly right answers, "partial" for partially right ones, "incorrect" only when the answer misses the substance.
- The rationale addresses the student directly in two or three sentences, naming what they got right and what is missing.`

// buildGradingPrompt constructs the user message for short-answer grading.
func buildGradingPrompt(q *Question, studentAnswer string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", q.Stem)
	fmt.Fprintf(&b, "\nModel answer: %s\n", q.ModelAnswer)
	fmt.Fprintf(&b, "\nStudent's answer: %s", studentAnswer)

	return b.String()
}

const contestSystemPrompt = `A student is contesting an automated grade in an introductory philosophy course. Re-evaluate their answer from scratch.

Rules:
- Consider the student's objection seriously, but judge on philosophical substance alone, as generously as a sympathetic instructor would.
- verdict is "contest_accepted" if the answer deserves a higher score than it received, "contest_denied" otherwise.
- score is the grade the answer should have, from 0 to 1. A denied contest repeats the original score.
- The rationale explains the decision to the student in two or three sentences without condescension.`

// buildContestPrompt constructs the user message for a contest re-evaluation.
func buildContestPrompt(stem, modelAnswer, studentAnswer string, originalScore float64, originalRationale, contestReason string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", stem)
	if modelAnswer != "" {
		fmt.Fprintf(&b, "\nModel answer: %s\n", modelAnswer)
	}
	fmt.Fprintf(&b, "\nStudent's answer: %s\n", studentAnswer)
	fmt.Fprintf(&b, "\nOriginal score: %.2f\n", originalScore)
	fmt.Fprintf(&b, "Original rationale: %s\n", originalRationale)
	fmt.Fprintf(&b, "\nStudent's objection: %s", contestReason)

	return b.String()
}
