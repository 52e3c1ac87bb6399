// Package diagnostics implements the adaptive diagnostic session loop:
// topic rotation, difficulty estimation, LLM-backed question generation and
// grading, and the contestable answer ledger.
//
// Correctness judgments are externalized to the LLM by design. Nothing in
// this package grades free text locally, and no failure path substitutes
// canned content for a model response.
package diagnostics

// QuestionType discriminates how a question is answered.
type QuestionType string

const (
	// TypeMCQ is a multiple-choice question with lettered options.
	TypeMCQ QuestionType = "mcq"

	// TypeShort is a free-text short-answer question graded by the LLM.
	TypeShort QuestionType = "short"
)

// Difficulty is the coarse difficulty band of a question.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"

	// LevelAdaptive is not a difficulty: clients send it to ask the
	// estimator to pick a band from their history.
	LevelAdaptive = "adaptive"
)

// Verdict is the categorical grading outcome derived from a numeric score.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictPartial   Verdict = "partial"
	VerdictIncorrect Verdict = "incorrect"

	// Contest verdicts are distinct from grading verdicts: they say whether
	// the dispute changed anything, not whether the answer was right.
	VerdictContestAccepted Verdict = "contest_accepted"
	VerdictContestDenied   Verdict = "contest_denied"
)

// Score thresholds tying verdicts to numeric scores. A score at or above
// partialThreshold is never "incorrect".
const (
	correctThreshold = 0.85
	partialThreshold = 0.5
)

// VerdictFor derives the verdict a score demands.
func VerdictFor(score float64) Verdict {
	switch {
	case score >= correctThreshold:
		return VerdictCorrect
	case score >= partialThreshold:
		return VerdictPartial
	default:
		return VerdictIncorrect
	}
}

// Question is one diagnostic question as issued to a client. Questions are
// created fresh per request from LLM output and are immutable once issued;
// they persist only as snapshots embedded in answer records.
type Question struct {
	ID string `json:"id"`

	Type QuestionType `json:"type"`

	// Stem is the question text shown to the student.
	Stem string `json:"stem"`

	// Options maps option letters ("A".."D") to option text. MCQ only.
	Options map[string]string `json:"options,omitempty"`

	// AnswerKey is the letter of the correct option. MCQ only.
	AnswerKey string `json:"answerKey,omitempty"`

	// ModelAnswer is the reference answer the grader measures against.
	// Short-answer only.
	ModelAnswer string `json:"modelAnswer,omitempty"`

	// ConceptTags names the concepts the question exercises.
	ConceptTags []string `json:"conceptTags"`

	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`

	// Points is the weight the course assigns this question.
	Points int `json:"points"`
}

// GradeResult is the outcome of grading one answer.
type GradeResult struct {
	Verdict   Verdict `json:"verdict"`
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// TrendEntry is one answer in the client-held session history, most recent
// first. Score is preferred; when absent, Correct maps to 1.0/0.0.
type TrendEntry struct {
	Correct    bool     `json:"correct"`
	Score      *float64 `json:"score,omitempty"`
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
	TimeSpent  float64  `json:"timeSpent"`
}

// SessionStats is the aggregate view of a user's answer history, rebuilt
// from the ledger on demand.
type SessionStats struct {
	TotalQuestions int     `json:"totalQuestions"`
	CorrectAnswers int     `json:"correctAnswers"`
	CurrentStreak  int     `json:"currentStreak"`
	BestStreak     int     `json:"bestStreak"`
	AverageTimeMs  float64 `json:"averageTimeMs"`

	TopicsProgress map[string]*TopicProgress `json:"topicsProgress"`
}

// TopicProgress counts attempts per topic.
type TopicProgress struct {
	Correct   int `json:"correct"`
	Attempted int `json:"attempted"`
}

// scoreOf reads the effective score of a trend entry.
func (e TrendEntry) scoreOf() float64 {
	if e.Score != nil {
		return *e.Score
	}
	if e.Correct {
		return 1.0
	}
	return 0.0
}
