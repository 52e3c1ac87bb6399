package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerRecord is the ledger row for one graded diagnostic answer. The
// question is embedded as a JSON snapshot so the record stays meaningful
// even though questions themselves are never persisted. Grade fields are
// written once; contestation only ever adds the contested_* fields.
type AnswerRecord struct {
	ent.Schema
}

func (AnswerRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("answer_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID exposed to clients"),
		field.String("user_id").
			NotEmpty().
			Comment("Owner of this answer"),
		field.String("question_type").
			NotEmpty().
			Comment("mcq or short"),
		field.String("topic").
			Optional().
			Comment("Curriculum topic tag of the question"),
		field.String("difficulty").
			Optional().
			Comment("beginner, intermediate, or advanced"),
		field.JSON("question_data", map[string]any{}).
			Comment("Snapshot of the question as issued"),
		field.String("student_answer").
			Comment("What the student submitted"),
		field.String("verdict").
			NotEmpty().
			Comment("correct, partial, or incorrect"),
		field.Float("score").
			Min(0).
			Max(1).
			Comment("Grade in [0,1]"),
		field.Text("rationale").
			Comment("Grader's explanation"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds the student spent, 0 when unreported"),
		field.Bool("is_contested").
			Default(false).
			Comment("Whether the one-shot contest was used"),
		field.Text("contest_reason").
			Optional().
			Comment("Student's dispute, set on contest"),
		field.String("contested_verdict").
			Optional().
			Comment("contest_accepted or contest_denied"),
		field.Float("contested_score").
			Optional().
			Min(0).
			Max(1).
			Comment("Regraded score, set on contest"),
		field.Text("contested_rationale").
			Optional().
			Comment("Regrader's explanation, set on contest"),
	}
}

func (AnswerRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("answer_id"),
		index.Fields("user_id"),
		index.Fields("user_id", "topic"),
	}
}
