package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dspiliot/agora/ent"
	"github.com/dspiliot/agora/ent/answerrecord"
)

// answerRepo implements AnswerRepo backed by ent and the global sequence
// counter.
type answerRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *answerRepo) Append(ctx context.Context, a *Answer) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	answerID := a.AnswerID
	if answerID == "" {
		answerID = uuid.NewString()
	}

	_, err = r.client.AnswerRecord.Create().
		SetSequence(seqNum).
		SetAnswerID(answerID).
		SetUserID(a.UserID).
		SetQuestionType(a.QuestionType).
		SetTopic(a.Topic).
		SetDifficulty(a.Difficulty).
		SetQuestionData(a.QuestionData).
		SetStudentAnswer(a.StudentAns).
		SetVerdict(a.Verdict).
		SetScore(a.Score).
		SetRationale(a.Rationale).
		SetTimeMs(a.TimeMs).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("save answer record: %w", err)
	}

	return answerID, nil
}

func (r *answerRepo) ByID(ctx context.Context, userID, answerID string) (*Answer, error) {
	row, err := r.client.AnswerRecord.Query().
		Where(
			answerrecord.AnswerID(answerID),
			answerrecord.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &ErrAnswerNotFound{AnswerID: answerID}
		}
		return nil, fmt.Errorf("query answer: %w", err)
	}
	return fromRow(row), nil
}

func (r *answerRepo) History(ctx context.Context, userID string, opts QueryOpts) ([]*Answer, error) {
	q := r.client.AnswerRecord.Query().
		Where(answerrecord.UserID(userID)).
		Order(ent.Desc(answerrecord.FieldSequence))

	if opts.After > 0 {
		q = q.Where(answerrecord.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(answerrecord.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(answerrecord.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	out := make([]*Answer, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out, nil
}

func (r *answerRepo) MarkContested(ctx context.Context, userID, answerID string, res ContestResult) error {
	// Conditional update keyed on is_contested = false makes the one-shot
	// contest safe against double submission: the second writer matches
	// zero rows.
	n, err := r.client.AnswerRecord.Update().
		Where(
			answerrecord.AnswerID(answerID),
			answerrecord.UserID(userID),
			answerrecord.IsContested(false),
		).
		SetIsContested(true).
		SetContestReason(res.Reason).
		SetContestedVerdict(res.Verdict).
		SetContestedScore(res.Score).
		SetContestedRationale(res.Rationale).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark contested: %w", err)
	}
	if n == 0 {
		exists, err := r.client.AnswerRecord.Query().
			Where(
				answerrecord.AnswerID(answerID),
				answerrecord.UserID(userID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check answer exists: %w", err)
		}
		if !exists {
			return &ErrAnswerNotFound{AnswerID: answerID}
		}
		return &ErrAlreadyContested{AnswerID: answerID}
	}
	return nil
}

func fromRow(row *ent.AnswerRecord) *Answer {
	return &Answer{
		AnswerID:           row.AnswerID,
		UserID:             row.UserID,
		QuestionType:       row.QuestionType,
		Topic:              row.Topic,
		Difficulty:         row.Difficulty,
		QuestionData:       row.QuestionData,
		StudentAns:         row.StudentAnswer,
		Verdict:            row.Verdict,
		Score:              row.Score,
		Rationale:          row.Rationale,
		TimeMs:             row.TimeMs,
		IsContested:        row.IsContested,
		ContestReason:      row.ContestReason,
		ContestedVerdict:   row.ContestedVerdict,
		ContestedScore:     row.ContestedScore,
		ContestedRationale: row.ContestedRationale,
		CreatedAt:          row.Timestamp,
	}
}
