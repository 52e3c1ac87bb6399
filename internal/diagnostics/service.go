package diagnostics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dspiliot/agora/internal/llm"
	"github.com/dspiliot/agora/internal/logger"
	"github.com/dspiliot/agora/internal/store"
)

// ProviderSource resolves a request-time model name to a provider.
// *llm.Registry satisfies it; tests substitute a fixed mock.
type ProviderSource interface {
	Provider(ctx context.Context, model string) (llm.Provider, error)
}

// DefaultUserID is used when a request does not identify its user. The
// course front end runs single-user sessions without accounts.
const DefaultUserID = "local"

// Service coordinates the diagnostic session loop: pick topic and
// difficulty, generate, grade, record, contest.
type Service struct {
	providers ProviderSource
	answers   store.AnswerRepo
	rotator   *Rotator
	cfg       Config
	log       *logger.Logger
}

// NewService creates a diagnostics service.
func NewService(providers ProviderSource, answers store.AnswerRepo, log *logger.Logger) *Service {
	return &Service{
		providers: providers,
		answers:   answers,
		rotator:   NewRotator(nil),
		cfg:       DefaultConfig(),
		log:       log.With("component", "diagnostics"),
	}
}

// NewQuestionParams is the input for one question generation.
type NewQuestionParams struct {
	UserID string

	// Topic pins the question's topic; empty lets rotation pick.
	Topic string

	// Level is a difficulty band or "adaptive".
	Level string

	// SessionHistory is the client's graded history, most recent first.
	SessionHistory []TrendEntry

	// Model names the LLM that should generate.
	Model string
}

// NewQuestion generates one diagnostic question.
func (s *Service) NewQuestion(ctx context.Context, p NewQuestionParams) (*Question, error) {
	provider, err := s.providers.Provider(ctx, p.Model)
	if err != nil {
		return nil, err
	}

	topic := p.Topic
	if topic == "" {
		topic = s.rotator.Next(recentTopics(p.SessionHistory))
	}

	difficulty := EstimateDifficulty(p.SessionHistory, p.Level)

	stems, err := s.recentStems(ctx, userOrDefault(p.UserID))
	if err != nil {
		// Dedup context is best-effort; generation proceeds without it.
		s.log.Warn("recent stems unavailable", "error", err)
	}

	q, err := generateQuestion(ctx, provider, s.cfg, topic, difficulty, stems)
	if err != nil {
		s.log.Error("question generation failed", "topic", topic, "model", provider.ModelID(), "error", err)
		return nil, err
	}

	s.log.Info("question generated", "topic", topic, "difficulty", q.Difficulty, "type", q.Type)
	return q, nil
}

// GradeParams is the input for grading one submitted answer. The question
// arrives embedded because questions are never persisted standalone.
type GradeParams struct {
	UserID        string
	Question      *Question
	StudentAnswer string
	TimeMs        int
	Model         string
}

// GradeOutcome is a grade plus the ledger id it was recorded under.
type GradeOutcome struct {
	AnswerID string `json:"answerId"`
	GradeResult
}

// Grade scores a submitted answer and records it in the ledger.
func (s *Service) Grade(ctx context.Context, p GradeParams) (*GradeOutcome, error) {
	var provider llm.Provider
	if p.Question.Type == TypeShort {
		// MCQ grading is local; resolving a provider (and failing on a
		// missing key) would be spurious there.
		var err error
		provider, err = s.providers.Provider(ctx, p.Model)
		if err != nil {
			return nil, err
		}
	}

	result, err := gradeAnswer(ctx, provider, s.cfg, p.Question, p.StudentAnswer)
	if err != nil {
		s.log.Error("grading failed", "type", p.Question.Type, "error", err)
		return nil, err
	}

	record := &store.Answer{
		UserID:       userOrDefault(p.UserID),
		QuestionType: string(p.Question.Type),
		Topic:        p.Question.Topic,
		Difficulty:   string(p.Question.Difficulty),
		QuestionData: questionSnapshot(p.Question),
		StudentAns:   p.StudentAnswer,
		Verdict:      string(result.Verdict),
		Score:        result.Score,
		Rationale:    result.Rationale,
		TimeMs:       p.TimeMs,
	}

	answerID, err := s.answers.Append(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	s.log.Info("answer graded", "answerId", answerID, "verdict", result.Verdict, "score", result.Score)
	return &GradeOutcome{AnswerID: answerID, GradeResult: *result}, nil
}

// History returns the user's answers, most recent first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]*store.Answer, error) {
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	return s.answers.History(ctx, userOrDefault(userID), store.QueryOpts{Limit: limit})
}

// ContestParams is the input for disputing a recorded grade.
type ContestParams struct {
	UserID        string
	AnswerID      string
	ContestReason string
	Model         string
}

// ContestOutcome is the result of a contest re-evaluation.
type ContestOutcome struct {
	Verdict   Verdict `json:"verdict"`
	NewScore  float64 `json:"newScore"`
	Rationale string  `json:"rationale"`
}

// Contest re-submits a recorded answer to the LLM for re-evaluation. Each
// answer may be contested at most once; the original grade fields are
// preserved untouched either way.
func (s *Service) Contest(ctx context.Context, p ContestParams) (*ContestOutcome, error) {
	userID := userOrDefault(p.UserID)

	answer, err := s.answers.ByID(ctx, userID, p.AnswerID)
	if err != nil {
		return nil, err
	}
	if answer.IsContested {
		return nil, &store.ErrAlreadyContested{AnswerID: p.AnswerID}
	}

	provider, err := s.providers.Provider(ctx, p.Model)
	if err != nil {
		return nil, err
	}

	outcome, err := s.reevaluate(ctx, provider, answer, p.ContestReason)
	if err != nil {
		s.log.Error("contest re-evaluation failed", "answerId", p.AnswerID, "error", err)
		return nil, err
	}

	err = s.answers.MarkContested(ctx, userID, p.AnswerID, store.ContestResult{
		Reason:    p.ContestReason,
		Verdict:   string(outcome.Verdict),
		Score:     outcome.NewScore,
		Rationale: outcome.Rationale,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("contest decided", "answerId", p.AnswerID, "verdict", outcome.Verdict, "newScore", outcome.NewScore)
	return outcome, nil
}

func (s *Service) reevaluate(ctx context.Context, provider llm.Provider, answer *store.Answer, reason string) (*ContestOutcome, error) {
	ctx = llm.WithPurpose(ctx, "contest")

	stem, _ := answer.QuestionData["stem"].(string)
	modelAnswer, _ := answer.QuestionData["modelAnswer"].(string)

	req := llm.Request{
		System: contestSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildContestPrompt(
				stem, modelAnswer, answer.StudentAns,
				answer.Score, answer.Rationale, reason,
			)},
		},
		Schema:    ContestSchema,
		MaxTokens: s.cfg.MaxTokens,
	}

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out struct {
		Verdict   Verdict `json:"verdict"`
		Score     float64 `json:"score"`
		Rationale string  `json:"rationale"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decode contest decision: %w", err)
	}

	return &ContestOutcome{
		Verdict:   out.Verdict,
		NewScore:  out.Score,
		Rationale: out.Rationale,
	}, nil
}

// recentStems pulls the user's latest question stems from the ledger for
// dedup in the generation prompt.
func (s *Service) recentStems(ctx context.Context, userID string) ([]string, error) {
	if s.answers == nil {
		return nil, nil
	}
	history, err := s.answers.History(ctx, userID, store.QueryOpts{Limit: s.cfg.MaxRecentStems})
	if err != nil {
		return nil, err
	}
	var stems []string
	for _, a := range history {
		if stem, ok := a.QuestionData["stem"].(string); ok && stem != "" {
			stems = append(stems, stem)
		}
	}
	return stems, nil
}

// questionSnapshot flattens a question into the JSON map stored with the
// answer. The snapshot is the only persisted form of a question.
func questionSnapshot(q *Question) map[string]any {
	data, _ := json.Marshal(q)
	var snap map[string]any
	_ = json.Unmarshal(data, &snap)
	return snap
}

// recentTopics extracts topic names from session history, most recent first.
func recentTopics(history []TrendEntry) []string {
	var topics []string
	for _, e := range history {
		if e.Topic != "" {
			topics = append(topics, e.Topic)
		}
	}
	return topics
}

func userOrDefault(userID string) string {
	if userID == "" {
		return DefaultUserID
	}
	return userID
}
