// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerRecordsColumns holds the columns for the "answer_records" table.
	AnswerRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "answer_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "question_data", Type: field.TypeJSON},
		{Name: "student_answer", Type: field.TypeString},
		{Name: "verdict", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "rationale", Type: field.TypeString, Size: 2147483647},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
		{Name: "is_contested", Type: field.TypeBool, Default: false},
		{Name: "contest_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "contested_verdict", Type: field.TypeString, Nullable: true},
		{Name: "contested_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "contested_rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AnswerRecordsTable holds the schema information for the "answer_records" table.
	AnswerRecordsTable = &schema.Table{
		Name:       "answer_records",
		Columns:    AnswerRecordsColumns,
		PrimaryKey: []*schema.Column{AnswerRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[1]},
			},
			{
				Name:    "answerrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[2]},
			},
			{
				Name:    "answerrecord_answer_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[3]},
			},
			{
				Name:    "answerrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[4]},
			},
			{
				Name:    "answerrecord_user_id_topic",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[4], AnswerRecordsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerRecordsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
