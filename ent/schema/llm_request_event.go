package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records one outbound LLM API call: who was asked, what
// for, how long it took, and whether it succeeded.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("Provider family serving the call"),
		field.String("model").
			NotEmpty().
			Comment("Model that served the request"),
		field.String("purpose").
			NotEmpty().
			Comment("question-gen, grading, or contest"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.Text("error_message").
			Optional(),
		field.Text("request_body").
			Optional().
			Comment("Serialized prompt, kept for auditability"),
		field.Text("response_body").
			Optional().
			Comment("Raw content returned by the model"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
