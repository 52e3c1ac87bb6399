// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dspiliot/agora/ent/answerrecord"
)

// AnswerRecordCreate is the builder for creating a AnswerRecord entity.
type AnswerRecordCreate struct {
	config
	mutation *AnswerRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerRecordCreate) SetSequence(v int64) *AnswerRecordCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerRecordCreate) SetTimestamp(v time.Time) *AnswerRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableTimestamp(v *time.Time) *AnswerRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAnswerID sets the "answer_id" field.
func (_c *AnswerRecordCreate) SetAnswerID(v string) *AnswerRecordCreate {
	_c.mutation.SetAnswerID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AnswerRecordCreate) SetUserID(v string) *AnswerRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *AnswerRecordCreate) SetQuestionType(v string) *AnswerRecordCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AnswerRecordCreate) SetTopic(v string) *AnswerRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableTopic(v *string) *AnswerRecordCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AnswerRecordCreate) SetDifficulty(v string) *AnswerRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableDifficulty(v *string) *AnswerRecordCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetQuestionData sets the "question_data" field.
func (_c *AnswerRecordCreate) SetQuestionData(v map[string]interface{}) *AnswerRecordCreate {
	_c.mutation.SetQuestionData(v)
	return _c
}

// SetStudentAnswer sets the "student_answer" field.
func (_c *AnswerRecordCreate) SetStudentAnswer(v string) *AnswerRecordCreate {
	_c.mutation.SetStudentAnswer(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *AnswerRecordCreate) SetVerdict(v string) *AnswerRecordCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AnswerRecordCreate) SetScore(v float64) *AnswerRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *AnswerRecordCreate) SetRationale(v string) *AnswerRecordCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *AnswerRecordCreate) SetTimeMs(v int) *AnswerRecordCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableTimeMs(v *int) *AnswerRecordCreate {
	if v != nil {
		_c.SetTimeMs(*v)
	}
	return _c
}

// SetIsContested sets the "is_contested" field.
func (_c *AnswerRecordCreate) SetIsContested(v bool) *AnswerRecordCreate {
	_c.mutation.SetIsContested(v)
	return _c
}

// SetNillableIsContested sets the "is_contested" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableIsContested(v *bool) *AnswerRecordCreate {
	if v != nil {
		_c.SetIsContested(*v)
	}
	return _c
}

// SetContestReason sets the "contest_reason" field.
func (_c *AnswerRecordCreate) SetContestReason(v string) *AnswerRecordCreate {
	_c.mutation.SetContestReason(v)
	return _c
}

// SetNillableContestReason sets the "contest_reason" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableContestReason(v *string) *AnswerRecordCreate {
	if v != nil {
		_c.SetContestReason(*v)
	}
	return _c
}

// SetContestedVerdict sets the "contested_verdict" field.
func (_c *AnswerRecordCreate) SetContestedVerdict(v string) *AnswerRecordCreate {
	_c.mutation.SetContestedVerdict(v)
	return _c
}

// SetNillableContestedVerdict sets the "contested_verdict" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableContestedVerdict(v *string) *AnswerRecordCreate {
	if v != nil {
		_c.SetContestedVerdict(*v)
	}
	return _c
}

// SetContestedScore sets the "contested_score" field.
func (_c *AnswerRecordCreate) SetContestedScore(v float64) *AnswerRecordCreate {
	_c.mutation.SetContestedScore(v)
	return _c
}

// SetNillableContestedScore sets the "contested_score" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableContestedScore(v *float64) *AnswerRecordCreate {
	if v != nil {
		_c.SetContestedScore(*v)
	}
	return _c
}

// SetContestedRationale sets the "contested_rationale" field.
func (_c *AnswerRecordCreate) SetContestedRationale(v string) *AnswerRecordCreate {
	_c.mutation.SetContestedRationale(v)
	return _c
}

// SetNillableContestedRationale sets the "contested_rationale" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableContestedRationale(v *string) *AnswerRecordCreate {
	if v != nil {
		_c.SetContestedRationale(*v)
	}
	return _c
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_c *AnswerRecordCreate) Mutation() *AnswerRecordMutation {
	return _c.mutation
}

// Save creates the AnswerRecord in the database.
func (_c *AnswerRecordCreate) Save(ctx context.Context) (*AnswerRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerRecordCreate) SaveX(ctx context.Context) *AnswerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		v := answerrecord.DefaultTimeMs
		_c.mutation.SetTimeMs(v)
	}
	if _, ok := _c.mutation.IsContested(); !ok {
		v := answerrecord.DefaultIsContested
		_c.mutation.SetIsContested(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerRecordCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerRecord.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.AnswerID(); !ok {
		return &ValidationError{Name: "answer_id", err: errors.New(`ent: missing required field "AnswerRecord.answer_id"`)}
	}
	if v, ok := _c.mutation.AnswerID(); ok {
		if err := answerrecord.AnswerIDValidator(v); err != nil {
			return &ValidationError{Name: "answer_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.answer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnswerRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := answerrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "AnswerRecord.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := answerrecord.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionData(); !ok {
		return &ValidationError{Name: "question_data", err: errors.New(`ent: missing required field "AnswerRecord.question_data"`)}
	}
	if _, ok := _c.mutation.StudentAnswer(); !ok {
		return &ValidationError{Name: "student_answer", err: errors.New(`ent: missing required field "AnswerRecord.student_answer"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "AnswerRecord.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := answerrecord.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AnswerRecord.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := answerrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "AnswerRecord.rationale"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AnswerRecord.time_ms"`)}
	}
	if _, ok := _c.mutation.IsContested(); !ok {
		return &ValidationError{Name: "is_contested", err: errors.New(`ent: missing required field "AnswerRecord.is_contested"`)}
	}
	if v, ok := _c.mutation.ContestedScore(); ok {
		if err := answerrecord.ContestedScoreValidator(v); err != nil {
			return &ValidationError{Name: "contested_score", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.contested_score": %w`, err)}
		}
	}
	return nil
}

func (_c *AnswerRecordCreate) sqlSave(ctx context.Context) (*AnswerRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerRecordCreate) createSpec() (*AnswerRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerrecord.Table, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AnswerID(); ok {
		_spec.SetField(answerrecord.FieldAnswerID, field.TypeString, value)
		_node.AnswerID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(answerrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(answerrecord.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(answerrecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(answerrecord.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.QuestionData(); ok {
		_spec.SetField(answerrecord.FieldQuestionData, field.TypeJSON, value)
		_node.QuestionData = value
	}
	if value, ok := _c.mutation.StudentAnswer(); ok {
		_spec.SetField(answerrecord.FieldStudentAnswer, field.TypeString, value)
		_node.StudentAnswer = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(answerrecord.FieldVerdict, field.TypeString, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(answerrecord.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(answerrecord.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(answerrecord.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	if value, ok := _c.mutation.IsContested(); ok {
		_spec.SetField(answerrecord.FieldIsContested, field.TypeBool, value)
		_node.IsContested = value
	}
	if value, ok := _c.mutation.ContestReason(); ok {
		_spec.SetField(answerrecord.FieldContestReason, field.TypeString, value)
		_node.ContestReason = value
	}
	if value, ok := _c.mutation.ContestedVerdict(); ok {
		_spec.SetField(answerrecord.FieldContestedVerdict, field.TypeString, value)
		_node.ContestedVerdict = value
	}
	if value, ok := _c.mutation.ContestedScore(); ok {
		_spec.SetField(answerrecord.FieldContestedScore, field.TypeFloat64, value)
		_node.ContestedScore = value
	}
	if value, ok := _c.mutation.ContestedRationale(); ok {
		_spec.SetField(answerrecord.FieldContestedRationale, field.TypeString, value)
		_node.ContestedRationale = value
	}
	return _node, _spec
}

// AnswerRecordCreateBulk is the builder for creating many AnswerRecord entities in bulk.
type AnswerRecordCreateBulk struct {
	config
	err      error
	builders []*AnswerRecordCreate
}

// Save creates the AnswerRecord entities in the database.
func (_c *AnswerRecordCreateBulk) Save(ctx context.Context) ([]*AnswerRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerRecordCreateBulk) SaveX(ctx context.Context) []*AnswerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
