// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dspiliot/agora/ent/answerrecord"
)

// AnswerRecord is the model entity for the AnswerRecord schema.
type AnswerRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID exposed to clients
	AnswerID string `json:"answer_id,omitempty"`
	// Owner of this answer
	UserID string `json:"user_id,omitempty"`
	// mcq or short
	QuestionType string `json:"question_type,omitempty"`
	// Curriculum topic tag of the question
	Topic string `json:"topic,omitempty"`
	// beginner, intermediate, or advanced
	Difficulty string `json:"difficulty,omitempty"`
	// Snapshot of the question as issued
	QuestionData map[string]interface{} `json:"question_data,omitempty"`
	// What the student submitted
	StudentAnswer string `json:"student_answer,omitempty"`
	// correct, partial, or incorrect
	Verdict string `json:"verdict,omitempty"`
	// Grade in [0,1]
	Score float64 `json:"score,omitempty"`
	// Grader's explanation
	Rationale string `json:"rationale,omitempty"`
	// Milliseconds the student spent, 0 when unreported
	TimeMs int `json:"time_ms,omitempty"`
	// Whether the one-shot contest was used
	IsContested bool `json:"is_contested,omitempty"`
	// Student's dispute, set on contest
	ContestReason string `json:"contest_reason,omitempty"`
	// contest_accepted or contest_denied
	ContestedVerdict string `json:"contested_verdict,omitempty"`
	// Regraded score, set on contest
	ContestedScore float64 `json:"contested_score,omitempty"`
	// Regrader's explanation, set on contest
	ContestedRationale string `json:"contested_rationale,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerrecord.FieldQuestionData:
			values[i] = new([]byte)
		case answerrecord.FieldIsContested:
			values[i] = new(sql.NullBool)
		case answerrecord.FieldScore, answerrecord.FieldContestedScore:
			values[i] = new(sql.NullFloat64)
		case answerrecord.FieldID, answerrecord.FieldSequence, answerrecord.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case answerrecord.FieldAnswerID, answerrecord.FieldUserID, answerrecord.FieldQuestionType, answerrecord.FieldTopic, answerrecord.FieldDifficulty, answerrecord.FieldStudentAnswer, answerrecord.FieldVerdict, answerrecord.FieldRationale, answerrecord.FieldContestReason, answerrecord.FieldContestedVerdict, answerrecord.FieldContestedRationale:
			values[i] = new(sql.NullString)
		case answerrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerRecord fields.
func (_m *AnswerRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answerrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case answerrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case answerrecord.FieldAnswerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_id", values[i])
			} else if value.Valid {
				_m.AnswerID = value.String
			}
		case answerrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case answerrecord.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case answerrecord.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case answerrecord.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case answerrecord.FieldQuestionData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionData); err != nil {
					return fmt.Errorf("unmarshal field question_data: %w", err)
				}
			}
		case answerrecord.FieldStudentAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_answer", values[i])
			} else if value.Valid {
				_m.StudentAnswer = value.String
			}
		case answerrecord.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = value.String
			}
		case answerrecord.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case answerrecord.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case answerrecord.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		case answerrecord.FieldIsContested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_contested", values[i])
			} else if value.Valid {
				_m.IsContested = value.Bool
			}
		case answerrecord.FieldContestReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contest_reason", values[i])
			} else if value.Valid {
				_m.ContestReason = value.String
			}
		case answerrecord.FieldContestedVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contested_verdict", values[i])
			} else if value.Valid {
				_m.ContestedVerdict = value.String
			}
		case answerrecord.FieldContestedScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field contested_score", values[i])
			} else if value.Valid {
				_m.ContestedScore = value.Float64
			}
		case answerrecord.FieldContestedRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contested_rationale", values[i])
			} else if value.Valid {
				_m.ContestedRationale = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AnswerRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnswerRecord.
// Note that you need to call AnswerRecord.Unwrap() before calling this method if this AnswerRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnswerRecord) Update() *AnswerRecordUpdateOne {
	return NewAnswerRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnswerRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnswerRecord) Unwrap() *AnswerRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnswerRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("answer_id=")
	builder.WriteString(_m.AnswerID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("question_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionData))
	builder.WriteString(", ")
	builder.WriteString("student_answer=")
	builder.WriteString(_m.StudentAnswer)
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(_m.Verdict)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteString(", ")
	builder.WriteString("is_contested=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsContested))
	builder.WriteString(", ")
	builder.WriteString("contest_reason=")
	builder.WriteString(_m.ContestReason)
	builder.WriteString(", ")
	builder.WriteString("contested_verdict=")
	builder.WriteString(_m.ContestedVerdict)
	builder.WriteString(", ")
	builder.WriteString("contested_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContestedScore))
	builder.WriteString(", ")
	builder.WriteString("contested_rationale=")
	builder.WriteString(_m.ContestedRationale)
	builder.WriteByte(')')
	return builder.String()
}

// AnswerRecords is a parsable slice of AnswerRecord.
type AnswerRecords []*AnswerRecord
