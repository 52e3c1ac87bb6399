// Code generated by ent, DO NOT EDIT.

package answerrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerrecord type in the database.
	Label = "answer_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAnswerID holds the string denoting the answer_id field in the database.
	FieldAnswerID = "answer_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldQuestionData holds the string denoting the question_data field in the database.
	FieldQuestionData = "question_data"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// FieldIsContested holds the string denoting the is_contested field in the database.
	FieldIsContested = "is_contested"
	// FieldContestReason holds the string denoting the contest_reason field in the database.
	FieldContestReason = "contest_reason"
	// FieldContestedVerdict holds the string denoting the contested_verdict field in the database.
	FieldContestedVerdict = "contested_verdict"
	// FieldContestedScore holds the string denoting the contested_score field in the database.
	FieldContestedScore = "contested_score"
	// FieldContestedRationale holds the string denoting the contested_rationale field in the database.
	FieldContestedRationale = "contested_rationale"
	// Table holds the table name of the answerrecord in the database.
	Table = "answer_records"
)

// Columns holds all SQL columns for answerrecord fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAnswerID,
	FieldUserID,
	FieldQuestionType,
	FieldTopic,
	FieldDifficulty,
	FieldQuestionData,
	FieldStudentAnswer,
	FieldVerdict,
	FieldScore,
	FieldRationale,
	FieldTimeMs,
	FieldIsContested,
	FieldContestReason,
	FieldContestedVerdict,
	FieldContestedScore,
	FieldContestedRationale,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AnswerIDValidator is a validator for the "answer_id" field. It is called by the builders before save.
	AnswerIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	VerdictValidator func(string) error
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(float64) error
	// DefaultTimeMs holds the default value on creation for the "time_ms" field.
	DefaultTimeMs int
	// DefaultIsContested holds the default value on creation for the "is_contested" field.
	DefaultIsContested bool
	// ContestedScoreValidator is a validator for the "contested_score" field. It is called by the builders before save.
	ContestedScoreValidator func(float64) error
)

// OrderOption defines the ordering options for the AnswerRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAnswerID orders the results by the answer_id field.
func ByAnswerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}

// ByIsContested orders the results by the is_contested field.
func ByIsContested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsContested, opts...).ToFunc()
}

// ByContestReason orders the results by the contest_reason field.
func ByContestReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContestReason, opts...).ToFunc()
}

// ByContestedVerdict orders the results by the contested_verdict field.
func ByContestedVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContestedVerdict, opts...).ToFunc()
}

// ByContestedScore orders the results by the contested_score field.
func ByContestedScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContestedScore, opts...).ToFunc()
}

// ByContestedRationale orders the results by the contested_rationale field.
func ByContestedRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContestedRationale, opts...).ToFunc()
}
