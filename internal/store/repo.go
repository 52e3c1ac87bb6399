package store

import (
	"context"
	"fmt"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ErrAnswerNotFound indicates no ledger row matches the given answer id
// and user id.
type ErrAnswerNotFound struct {
	AnswerID string
}

func (e *ErrAnswerNotFound) Error() string {
	return fmt.Sprintf("answer %s not found", e.AnswerID)
}

// ErrAlreadyContested indicates the answer's one-shot contest was already
// used. The conditional update in MarkContested raises this even when two
// contest requests race.
type ErrAlreadyContested struct {
	AnswerID string
}

func (e *ErrAlreadyContested) Error() string {
	return fmt.Sprintf("answer %s has already been contested", e.AnswerID)
}

// Answer is one graded answer as stored in the ledger.
type Answer struct {
	AnswerID     string         `json:"answerId"`
	UserID       string         `json:"userId"`
	QuestionType string         `json:"questionType"`
	Topic        string         `json:"topic,omitempty"`
	Difficulty   string         `json:"difficulty,omitempty"`
	QuestionData map[string]any `json:"questionData"`
	StudentAns   string         `json:"studentAnswer"`
	Verdict      string         `json:"verdict"`
	Score        float64        `json:"score"`
	Rationale    string         `json:"rationale"`
	TimeMs       int            `json:"timeMs,omitempty"`

	IsContested        bool    `json:"isContested"`
	ContestReason      string  `json:"contestReason,omitempty"`
	ContestedVerdict   string  `json:"contestedVerdict,omitempty"`
	ContestedScore     float64 `json:"contestedScore,omitempty"`
	ContestedRationale string  `json:"contestedRationale,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ContestResult holds the fields written by a successful contest.
type ContestResult struct {
	Reason    string
	Verdict   string
	Score     float64
	Rationale string
}

// AnswerRepo is the append-mostly answer ledger. Rows are created once by
// grading and mutated at most once by contestation; original grade fields
// are never rewritten.
type AnswerRepo interface {
	// Append stores a freshly graded answer and returns its id.
	Append(ctx context.Context, a *Answer) (string, error)

	// ByID fetches one answer owned by userID.
	ByID(ctx context.Context, userID, answerID string) (*Answer, error)

	// History returns the user's answers, most recent first.
	History(ctx context.Context, userID string, opts QueryOpts) ([]*Answer, error)

	// MarkContested atomically flips is_contested from false to true and
	// records the contest outcome. Returns *ErrAlreadyContested when the
	// flag was already set, *ErrAnswerNotFound when no row matches.
	MarkContested(ctx context.Context, userID, answerID string, res ContestResult) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates token usage for one request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent fetches one event by row id, nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates calls and tokens per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
