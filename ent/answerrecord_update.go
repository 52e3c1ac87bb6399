// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dspiliot/agora/ent/answerrecord"
	"github.com/dspiliot/agora/ent/predicate"
)

// AnswerRecordUpdate is the builder for updating AnswerRecord entities.
type AnswerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (_u *AnswerRecordUpdate) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnswerRecordUpdate) SetUserID(v string) *AnswerRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableUserID(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerRecordUpdate) SetQuestionType(v string) *AnswerRecordUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableQuestionType(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerRecordUpdate) SetTopic(v string) *AnswerRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableTopic(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *AnswerRecordUpdate) ClearTopic() *AnswerRecordUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerRecordUpdate) SetDifficulty(v string) *AnswerRecordUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableDifficulty(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *AnswerRecordUpdate) ClearDifficulty() *AnswerRecordUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetQuestionData sets the "question_data" field.
func (_u *AnswerRecordUpdate) SetQuestionData(v map[string]interface{}) *AnswerRecordUpdate {
	_u.mutation.SetQuestionData(v)
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *AnswerRecordUpdate) SetStudentAnswer(v string) *AnswerRecordUpdate {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableStudentAnswer(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AnswerRecordUpdate) SetVerdict(v string) *AnswerRecordUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableVerdict(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerRecordUpdate) SetScore(v float64) *AnswerRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableScore(v *float64) *AnswerRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerRecordUpdate) AddScore(v float64) *AnswerRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AnswerRecordUpdate) SetRationale(v string) *AnswerRecordUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableRationale(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerRecordUpdate) SetTimeMs(v int) *AnswerRecordUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableTimeMs(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerRecordUpdate) AddTimeMs(v int) *AnswerRecordUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetIsContested sets the "is_contested" field.
func (_u *AnswerRecordUpdate) SetIsContested(v bool) *AnswerRecordUpdate {
	_u.mutation.SetIsContested(v)
	return _u
}

// SetNillableIsContested sets the "is_contested" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableIsContested(v *bool) *AnswerRecordUpdate {
	if v != nil {
		_u.SetIsContested(*v)
	}
	return _u
}

// SetContestReason sets the "contest_reason" field.
func (_u *AnswerRecordUpdate) SetContestReason(v string) *AnswerRecordUpdate {
	_u.mutation.SetContestReason(v)
	return _u
}

// SetNillableContestReason sets the "contest_reason" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableContestReason(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetContestReason(*v)
	}
	return _u
}

// ClearContestReason clears the value of the "contest_reason" field.
func (_u *AnswerRecordUpdate) ClearContestReason() *AnswerRecordUpdate {
	_u.mutation.ClearContestReason()
	return _u
}

// SetContestedVerdict sets the "contested_verdict" field.
func (_u *AnswerRecordUpdate) SetContestedVerdict(v string) *AnswerRecordUpdate {
	_u.mutation.SetContestedVerdict(v)
	return _u
}

// SetNillableContestedVerdict sets the "contested_verdict" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableContestedVerdict(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetContestedVerdict(*v)
	}
	return _u
}

// ClearContestedVerdict clears the value of the "contested_verdict" field.
func (_u *AnswerRecordUpdate) ClearContestedVerdict() *AnswerRecordUpdate {
	_u.mutation.ClearContestedVerdict()
	return _u
}

// SetContestedScore sets the "contested_score" field.
func (_u *AnswerRecordUpdate) SetContestedScore(v float64) *AnswerRecordUpdate {
	_u.mutation.ResetContestedScore()
	_u.mutation.SetContestedScore(v)
	return _u
}

// SetNillableContestedScore sets the "contested_score" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableContestedScore(v *float64) *AnswerRecordUpdate {
	if v != nil {
		_u.SetContestedScore(*v)
	}
	return _u
}

// AddContestedScore adds value to the "contested_score" field.
func (_u *AnswerRecordUpdate) AddContestedScore(v float64) *AnswerRecordUpdate {
	_u.mutation.AddContestedScore(v)
	return _u
}

// ClearContestedScore clears the value of the "contested_score" field.
func (_u *AnswerRecordUpdate) ClearContestedScore() *AnswerRecordUpdate {
	_u.mutation.ClearContestedScore()
	return _u
}

// SetContestedRationale sets the "contested_rationale" field.
func (_u *AnswerRecordUpdate) SetContestedRationale(v string) *AnswerRecordUpdate {
	_u.mutation.SetContestedRationale(v)
	return _u
}

// SetNillableContestedRationale sets the "contested_rationale" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableContestedRationale(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetContestedRationale(*v)
	}
	return _u
}

// ClearContestedRationale clears the value of the "contested_rationale" field.
func (_u *AnswerRecordUpdate) ClearContestedRationale() *AnswerRecordUpdate {
	_u.mutation.ClearContestedRationale()
	return _u
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_u *AnswerRecordUpdate) Mutation() *AnswerRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerrecord.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := answerrecord.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := answerrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContestedScore(); ok {
		if err := answerrecord.ContestedScoreValidator(v); err != nil {
			return &ValidationError{Name: "contested_score", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.contested_score": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerrecord.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerrecord.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(answerrecord.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerrecord.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(answerrecord.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionData(); ok {
		_spec.SetField(answerrecord.FieldQuestionData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(answerrecord.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(answerrecord.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answerrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answerrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(answerrecord.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerrecord.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerrecord.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsContested(); ok {
		_spec.SetField(answerrecord.FieldIsContested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContestReason(); ok {
		_spec.SetField(answerrecord.FieldContestReason, field.TypeString, value)
	}
	if _u.mutation.ContestReasonCleared() {
		_spec.ClearField(answerrecord.FieldContestReason, field.TypeString)
	}
	if value, ok := _u.mutation.ContestedVerdict(); ok {
		_spec.SetField(answerrecord.FieldContestedVerdict, field.TypeString, value)
	}
	if _u.mutation.ContestedVerdictCleared() {
		_spec.ClearField(answerrecord.FieldContestedVerdict, field.TypeString)
	}
	if value, ok := _u.mutation.ContestedScore(); ok {
		_spec.SetField(answerrecord.FieldContestedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContestedScore(); ok {
		_spec.AddField(answerrecord.FieldContestedScore, field.TypeFloat64, value)
	}
	if _u.mutation.ContestedScoreCleared() {
		_spec.ClearField(answerrecord.FieldContestedScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContestedRationale(); ok {
		_spec.SetField(answerrecord.FieldContestedRationale, field.TypeString, value)
	}
	if _u.mutation.ContestedRationaleCleared() {
		_spec.ClearField(answerrecord.FieldContestedRationale, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerRecordUpdateOne is the builder for updating a single AnswerRecord entity.
type AnswerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *AnswerRecordUpdateOne) SetUserID(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableUserID(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerRecordUpdateOne) SetQuestionType(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableQuestionType(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerRecordUpdateOne) SetTopic(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableTopic(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *AnswerRecordUpdateOne) ClearTopic() *AnswerRecordUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerRecordUpdateOne) SetDifficulty(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableDifficulty(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *AnswerRecordUpdateOne) ClearDifficulty() *AnswerRecordUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetQuestionData sets the "question_data" field.
func (_u *AnswerRecordUpdateOne) SetQuestionData(v map[string]interface{}) *AnswerRecordUpdateOne {
	_u.mutation.SetQuestionData(v)
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *AnswerRecordUpdateOne) SetStudentAnswer(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableStudentAnswer(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AnswerRecordUpdateOne) SetVerdict(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableVerdict(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerRecordUpdateOne) SetScore(v float64) *AnswerRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableScore(v *float64) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerRecordUpdateOne) AddScore(v float64) *AnswerRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AnswerRecordUpdateOne) SetRationale(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableRationale(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerRecordUpdateOne) SetTimeMs(v int) *AnswerRecordUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableTimeMs(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerRecordUpdateOne) AddTimeMs(v int) *AnswerRecordUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetIsContested sets the "is_contested" field.
func (_u *AnswerRecordUpdateOne) SetIsContested(v bool) *AnswerRecordUpdateOne {
	_u.mutation.SetIsContested(v)
	return _u
}

// SetNillableIsContested sets the "is_contested" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableIsContested(v *bool) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetIsContested(*v)
	}
	return _u
}

// SetContestReason sets the "contest_reason" field.
func (_u *AnswerRecordUpdateOne) SetContestReason(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetContestReason(v)
	return _u
}

// SetNillableContestReason sets the "contest_reason" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableContestReason(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetContestReason(*v)
	}
	return _u
}

// ClearContestReason clears the value of the "contest_reason" field.
func (_u *AnswerRecordUpdateOne) ClearContestReason() *AnswerRecordUpdateOne {
	_u.mutation.ClearContestReason()
	return _u
}

// SetContestedVerdict sets the "contested_verdict" field.
func (_u *AnswerRecordUpdateOne) SetContestedVerdict(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetContestedVerdict(v)
	return _u
}

// SetNillableContestedVerdict sets the "contested_verdict" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableContestedVerdict(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetContestedVerdict(*v)
	}
	return _u
}

// ClearContestedVerdict clears the value of the "contested_verdict" field.
func (_u *AnswerRecordUpdateOne) ClearContestedVerdict() *AnswerRecordUpdateOne {
	_u.mutation.ClearContestedVerdict()
	return _u
}

// SetContestedScore sets the "contested_score" field.
func (_u *AnswerRecordUpdateOne) SetContestedScore(v float64) *AnswerRecordUpdateOne {
	_u.mutation.ResetContestedScore()
	_u.mutation.SetContestedScore(v)
	return _u
}

// SetNillableContestedScore sets the "contested_score" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableContestedScore(v *float64) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetContestedScore(*v)
	}
	return _u
}

// AddContestedScore adds value to the "contested_score" field.
func (_u *AnswerRecordUpdateOne) AddContestedScore(v float64) *AnswerRecordUpdateOne {
	_u.mutation.AddContestedScore(v)
	return _u
}

// ClearContestedScore clears the value of the "contested_score" field.
func (_u *AnswerRecordUpdateOne) ClearContestedScore() *AnswerRecordUpdateOne {
	_u.mutation.ClearContestedScore()
	return _u
}

// SetContestedRationale sets the "contested_rationale" field.
func (_u *AnswerRecordUpdateOne) SetContestedRationale(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetContestedRationale(v)
	return _u
}

// SetNillableContestedRationale sets the "contested_rationale" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableContestedRationale(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetContestedRationale(*v)
	}
	return _u
}

// ClearContestedRationale clears the value of the "contested_rationale" field.
func (_u *AnswerRecordUpdateOne) ClearContestedRationale() *AnswerRecordUpdateOne {
	_u.mutation.ClearContestedRationale()
	return _u
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_u *AnswerRecordUpdateOne) Mutation() *AnswerRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (_u *AnswerRecordUpdateOne) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerRecordUpdateOne) Select(field string, fields ...string) *AnswerRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerRecord entity.
func (_u *AnswerRecordUpdateOne) Save(ctx context.Context) (*AnswerRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerRecordUpdateOne) SaveX(ctx context.Context) *AnswerRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerrecord.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := answerrecord.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := answerrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContestedScore(); ok {
		if err := answerrecord.ContestedScoreValidator(v); err != nil {
			return &ValidationError{Name: "contested_score", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.contested_score": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerRecordUpdateOne) sqlSave(ctx context.Context) (_node *AnswerRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerrecord.FieldID)
		for _, f := range fields {
			if !answerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerrecord.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerrecord.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(answerrecord.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerrecord.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(answerrecord.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionData(); ok {
		_spec.SetField(answerrecord.FieldQuestionData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(answerrecord.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(answerrecord.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answerrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answerrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(answerrecord.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerrecord.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerrecord.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsContested(); ok {
		_spec.SetField(answerrecord.FieldIsContested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContestReason(); ok {
		_spec.SetField(answerrecord.FieldContestReason, field.TypeString, value)
	}
	if _u.mutation.ContestReasonCleared() {
		_spec.ClearField(answerrecord.FieldContestReason, field.TypeString)
	}
	if value, ok := _u.mutation.ContestedVerdict(); ok {
		_spec.SetField(answerrecord.FieldContestedVerdict, field.TypeString, value)
	}
	if _u.mutation.ContestedVerdictCleared() {
		_spec.ClearField(answerrecord.FieldContestedVerdict, field.TypeString)
	}
	if value, ok := _u.mutation.ContestedScore(); ok {
		_spec.SetField(answerrecord.FieldContestedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContestedScore(); ok {
		_spec.AddField(answerrecord.FieldContestedScore, field.TypeFloat64, value)
	}
	if _u.mutation.ContestedScoreCleared() {
		_spec.ClearField(answerrecord.FieldContestedScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContestedRationale(); ok {
		_spec.SetField(answerrecord.FieldContestedRationale, field.TypeString, value)
	}
	if _u.mutation.ContestedRationaleCleared() {
		_spec.ClearField(answerrecord.FieldContestedRationale, field.TypeString)
	}
	_node = &AnswerRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
