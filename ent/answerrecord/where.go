// Code generated by ent, DO NOT EDIT.

package answerrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dspiliot/agora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldTimestamp, v))
}

// AnswerID applies equality check predicate on the "answer_id" field. It's identical to AnswerIDEQ.
func AnswerID(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldAnswerID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldUserID, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldQuestionType, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldTopic, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldDifficulty, v))
}

// StudentAnswer applies equality check predicate on the "student_answer" field. It's identical to StudentAnswerEQ.
func StudentAnswer(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldStudentAnswer, v))
}

// Verdict applies equality check predicate on the "verdict" field. It's identical to VerdictEQ.
func Verdict(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldVerdict, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldScore, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldRationale, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldTimeMs, v))
}

// IsContested applies equality check predicate on the "is_contested" field. It's identical to IsContestedEQ.
func IsContested(v bool) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldIsContested, v))
}

// ContestReason applies equality check predicate on the "contest_reason" field. It's identical to ContestReasonEQ.
func ContestReason(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldContestReason, v))
}

// ContestedVerdict applies equality check predicate on the "contested_verdict" field. It's identical to ContestedVerdictEQ.
func ContestedVerdict(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldContestedVerdict, v))
}

// ContestedScore applies equality check predicate on the "contested_score" field. It's identical to ContestedScoreEQ.
func ContestedScore(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldContestedScore, v))
}

// ContestedRationale applies equality check predicate on the "contested_rationale" field. It's identical to ContestedRationaleEQ.
func ContestedRationale(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldContestedRationale, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldTimestamp, v))
}

// AnswerIDEQ applies the EQ predicate on the "answer_id" field.
func AnswerIDEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldAnswerID, v))
}

// AnswerIDNEQ applies the NEQ predicate on the "answer_id" field.
func AnswerIDNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldAnswerID, v))
}

// AnswerIDIn applies the In predicate on the "answer_id" field.
func AnswerIDIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldAnswerID, vs...))
}

// AnswerIDNotIn applies the NotIn predicate on the "answer_id" field.
func AnswerIDNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldAnswerID, vs...))
}

// AnswerIDGT applies the GT predicate on the "answer_id" field.
func AnswerIDGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldAnswerID, v))
}

// AnswerIDGTE applies the GTE predicate on the "answer_id" field.
func AnswerIDGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldAnswerID, v))
}

// AnswerIDLT applies the LT predicate on the "answer_id" field.
func AnswerIDLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldAnswerID, v))
}

// AnswerIDLTE applies the LTE predicate on the "answer_id" field.
func AnswerIDLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldAnswerID, v))
}

// AnswerIDContains applies the Contains predicate on the "answer_id" field.
func AnswerIDContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldAnswerID, v))
}

// AnswerIDHasPrefix applies the HasPrefix predicate on the "answer_id" field.
func AnswerIDHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldAnswerID, v))
}

// AnswerIDHasSuffix applies the HasSuffix predicate on the "answer_id" field.
func AnswerIDHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldAnswerID, v))
}

// AnswerIDEqualFold applies the EqualFold predicate on the "answer_id" field.
func AnswerIDEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldAnswerID, v))
}

// AnswerIDContainsFold applies the ContainsFold predicate on the "answer_id" field.
func AnswerIDContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldAnswerID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldQuestionType, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldTopic, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyIsNil applies the IsNil predicate on the "difficulty" field.
func DifficultyIsNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIsNull(FieldDifficulty))
}

// DifficultyNotNil applies the NotNil predicate on the "difficulty" field.
func DifficultyNotNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotNull(FieldDifficulty))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldDifficulty, v))
}

// StudentAnswerEQ applies the EQ predicate on the "student_answer" field.
func StudentAnswerEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldStudentAnswer, v))
}

// StudentAnswerNEQ applies the NEQ predicate on the "student_answer" field.
func StudentAnswerNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldStudentAnswer, v))
}

// StudentAnswerIn applies the In predicate on the "student_answer" field.
func StudentAnswerIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldStudentAnswer, vs...))
}

// StudentAnswerNotIn applies the NotIn predicate on the "student_answer" field.
func StudentAnswerNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldStudentAnswer, vs...))
}

// StudentAnswerGT applies the GT predicate on the "student_answer" field.
func StudentAnswerGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldStudentAnswer, v))
}

// StudentAnswerGTE applies the GTE predicate on the "student_answer" field.
func StudentAnswerGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldStudentAnswer, v))
}

// StudentAnswerLT applies the LT predicate on the "student_answer" field.
func StudentAnswerLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldStudentAnswer, v))
}

// StudentAnswerLTE applies the LTE predicate on the "student_answer" field.
func StudentAnswerLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldStudentAnswer, v))
}

// StudentAnswerContains applies the Contains predicate on the "student_answer" field.
func StudentAnswerContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldStudentAnswer, v))
}

// StudentAnswerHasPrefix applies the HasPrefix predicate on the "student_answer" field.
func StudentAnswerHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldStudentAnswer, v))
}

// StudentAnswerHasSuffix applies the HasSuffix predicate on the "student_answer" field.
func StudentAnswerHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldStudentAnswer, v))
}

// StudentAnswerEqualFold applies the EqualFold predicate on the "student_answer" field.
func StudentAnswerEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldStudentAnswer, v))
}

// StudentAnswerContainsFold applies the ContainsFold predicate on the "student_answer" field.
func StudentAnswerContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldStudentAnswer, v))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldVerdict, vs...))
}

// VerdictGT applies the GT predicate on the "verdict" field.
func VerdictGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldVerdict, v))
}

// VerdictGTE applies the GTE predicate on the "verdict" field.
func VerdictGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldVerdict, v))
}

// VerdictLT applies the LT predicate on the "verdict" field.
func VerdictLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldVerdict, v))
}

// VerdictLTE applies the LTE predicate on the "verdict" field.
func VerdictLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldVerdict, v))
}

// VerdictContains applies the Contains predicate on the "verdict" field.
func VerdictContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldVerdict, v))
}

// VerdictHasPrefix applies the HasPrefix predicate on the "verdict" field.
func VerdictHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldVerdict, v))
}

// VerdictHasSuffix applies the HasSuffix predicate on the "verdict" field.
func VerdictHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldVerdict, v))
}

// VerdictEqualFold applies the EqualFold predicate on the "verdict" field.
func VerdictEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldVerdict, v))
}

// VerdictContainsFold applies the ContainsFold predicate on the "verdict" field.
func VerdictContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldVerdict, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldScore, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldRationale, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldTimeMs, v))
}

// IsContestedEQ applies the EQ predicate on the "is_contested" field.
func IsContestedEQ(v bool) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldIsContested, v))
}

// IsContestedNEQ applies the NEQ predicate on the "is_contested" field.
func IsContestedNEQ(v bool) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldIsContested, v))
}

// ContestReasonEQ applies the EQ predicate on the "contest_reason" field.
func ContestReasonEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldContestReason, v))
}

// ContestReasonNEQ applies the NEQ predicate on the "contest_reason" field.
func ContestReasonNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldContestReason, v))
}

// ContestReasonIn applies the In predicate on the "contest_reason" field.
func ContestReasonIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldContestReason, vs...))
}

// ContestReasonNotIn applies the NotIn predicate on the "contest_reason" field.
func ContestReasonNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldContestReason, vs...))
}

// ContestReasonGT applies the GT predicate on the "contest_reason" field.
func ContestReasonGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldContestReason, v))
}

// ContestReasonGTE applies the GTE predicate on the "contest_reason" field.
func ContestReasonGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldContestReason, v))
}

// ContestReasonLT applies the LT predicate on the "contest_reason" field.
func ContestReasonLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldContestReason, v))
}

// ContestReasonLTE applies the LTE predicate on the "contest_reason" field.
func ContestReasonLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldContestReason, v))
}

// ContestReasonContains applies the Contains predicate on the "contest_reason" field.
func ContestReasonContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldContestReason, v))
}

// ContestReasonHasPrefix applies the HasPrefix predicate on the "contest_reason" field.
func ContestReasonHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldContestReason, v))
}

// ContestReasonHasSuffix applies the HasSuffix predicate on the "contest_reason" field.
func ContestReasonHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldContestReason, v))
}

// ContestReasonIsNil applies the IsNil predicate on the "contest_reason" field.
func ContestReasonIsNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIsNull(FieldContestReason))
}

// ContestReasonNotNil applies the NotNil predicate on the "contest_reason" field.
func ContestReasonNotNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotNull(FieldContestReason))
}

// ContestReasonEqualFold applies the EqualFold predicate on the "contest_reason" field.
func ContestReasonEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldContestReason, v))
}

// ContestReasonContainsFold applies the ContainsFold predicate on the "contest_reason" field.
func ContestReasonContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldContestReason, v))
}

// ContestedVerdictEQ applies the EQ predicate on the "contested_verdict" field.
func ContestedVerdictEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldContestedVerdict, v))
}

// ContestedVerdictNEQ applies the NEQ predicate on the "contested_verdict" field.
func ContestedVerdictNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldContestedVerdict, v))
}

// ContestedVerdictIn applies the In predicate on the "contested_verdict" field.
func ContestedVerdictIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldContestedVerdict, vs...))
}

// ContestedVerdictNotIn applies the NotIn predicate on the "contested_verdict" field.
func ContestedVerdictNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldContestedVerdict, vs...))
}

// ContestedVerdictGT applies the GT predicate on the "contested_verdict" field.
func ContestedVerdictGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldContestedVerdict, v))
}

// ContestedVerdictGTE applies the GTE predicate on the "contested_verdict" field.
func ContestedVerdictGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldContestedVerdict, v))
}

// ContestedVerdictLT applies the LT predicate on the "contested_verdict" field.
func ContestedVerdictLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldContestedVerdict, v))
}

// ContestedVerdictLTE applies the LTE predicate on the "contested_verdict" field.
func ContestedVerdictLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldContestedVerdict, v))
}

// ContestedVerdictContains applies the Contains predicate on the "contested_verdict" field.
func ContestedVerdictContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldContestedVerdict, v))
}

// ContestedVerdictHasPrefix applies the HasPrefix predicate on the "contested_verdict" field.
func ContestedVerdictHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldContestedVerdict, v))
}

// ContestedVerdictHasSuffix applies the HasSuffix predicate on the "contested_verdict" field.
func ContestedVerdictHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldContestedVerdict, v))
}

// ContestedVerdictIsNil applies the IsNil predicate on the "contested_verdict" field.
func ContestedVerdictIsNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIsNull(FieldContestedVerdict))
}

// ContestedVerdictNotNil applies the NotNil predicate on the "contested_verdict" field.
func ContestedVerdictNotNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotNull(FieldContestedVerdict))
}

// ContestedVerdictEqualFold applies the EqualFold predicate on the "contested_verdict" field.
func ContestedVerdictEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldContestedVerdict, v))
}

// ContestedVerdictContainsFold applies the ContainsFold predicate on the "contested_verdict" field.
func ContestedVerdictContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldContestedVerdict, v))
}

// ContestedScoreEQ applies the EQ predicate on the "contested_score" field.
func ContestedScoreEQ(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldContestedScore, v))
}

// ContestedScoreNEQ applies the NEQ predicate on the "contested_score" field.
func ContestedScoreNEQ(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldContestedScore, v))
}

// ContestedScoreIn applies the In predicate on the "contested_score" field.
func ContestedScoreIn(vs ...float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldContestedScore, vs...))
}

// ContestedScoreNotIn applies the NotIn predicate on the "contested_score" field.
func ContestedScoreNotIn(vs ...float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldContestedScore, vs...))
}

// ContestedScoreGT applies the GT predicate on the "contested_score" field.
func ContestedScoreGT(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldContestedScore, v))
}

// ContestedScoreGTE applies the GTE predicate on the "contested_score" field.
func ContestedScoreGTE(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldContestedScore, v))
}

// ContestedScoreLT applies the LT predicate on the "contested_score" field.
func ContestedScoreLT(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldContestedScore, v))
}

// ContestedScoreLTE applies the LTE predicate on the "contested_score" field.
func ContestedScoreLTE(v float64) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldContestedScore, v))
}

// ContestedScoreIsNil applies the IsNil predicate on the "contested_score" field.
func ContestedScoreIsNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIsNull(FieldContestedScore))
}

// ContestedScoreNotNil applies the NotNil predicate on the "contested_score" field.
func ContestedScoreNotNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotNull(FieldContestedScore))
}

// ContestedRationaleEQ applies the EQ predicate on the "contested_rationale" field.
func ContestedRationaleEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldContestedRationale, v))
}

// ContestedRationaleNEQ applies the NEQ predicate on the "contested_rationale" field.
func ContestedRationaleNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldContestedRationale, v))
}

// ContestedRationaleIn applies the In predicate on the "contested_rationale" field.
func ContestedRationaleIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldContestedRationale, vs...))
}

// ContestedRationaleNotIn applies the NotIn predicate on the "contested_rationale" field.
func ContestedRationaleNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldContestedRationale, vs...))
}

// ContestedRationaleGT applies the GT predicate on the "contested_rationale" field.
func ContestedRationaleGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldContestedRationale, v))
}

// ContestedRationaleGTE applies the GTE predicate on the "contested_rationale" field.
func ContestedRationaleGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldContestedRationale, v))
}

// ContestedRationaleLT applies the LT predicate on the "contested_rationale" field.
func ContestedRationaleLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldContestedRationale, v))
}

// ContestedRationaleLTE applies the LTE predicate on the "contested_rationale" field.
func ContestedRationaleLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldContestedRationale, v))
}

// ContestedRationaleContains applies the Contains predicate on the "contested_rationale" field.
func ContestedRationaleContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldContestedRationale, v))
}

// ContestedRationaleHasPrefix applies the HasPrefix predicate on the "contested_rationale" field.
func ContestedRationaleHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldContestedRationale, v))
}

// ContestedRationaleHasSuffix applies the HasSuffix predicate on the "contested_rationale" field.
func ContestedRationaleHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldContestedRationale, v))
}

// ContestedRationaleIsNil applies the IsNil predicate on the "contested_rationale" field.
func ContestedRationaleIsNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIsNull(FieldContestedRationale))
}

// ContestedRationaleNotNil applies the NotNil predicate on the "contested_rationale" field.
func ContestedRationaleNotNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotNull(FieldContestedRationale))
}

// ContestedRationaleEqualFold applies the EqualFold predicate on the "contested_rationale" field.
func ContestedRationaleEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldContestedRationale, v))
}

// ContestedRationaleContainsFold applies the ContainsFold predicate on the "contested_rationale" field.
func ContestedRationaleContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldContestedRationale, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerRecord) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerRecord) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerRecord) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.NotPredicates(p))
}
