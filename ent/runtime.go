// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dspiliot/agora/ent/answerrecord"
	"github.com/dspiliot/agora/ent/llmrequestevent"
	"github.com/dspiliot/agora/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerrecordMixin := schema.AnswerRecord{}.Mixin()
	answerrecordMixinFields0 := answerrecordMixin[0].Fields()
	_ = answerrecordMixinFields0
	answerrecordFields := schema.AnswerRecord{}.Fields()
	_ = answerrecordFields
	// answerrecordDescTimestamp is the schema descriptor for timestamp field.
	answerrecordDescTimestamp := answerrecordMixinFields0[1].Descriptor()
	// answerrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerrecord.DefaultTimestamp = answerrecordDescTimestamp.Default.(func() time.Time)
	// answerrecordDescAnswerID is the schema descriptor for answer_id field.
	answerrecordDescAnswerID := answerrecordFields[0].Descriptor()
	// answerrecord.AnswerIDValidator is a validator for the "answer_id" field. It is called by the builders before save.
	answerrecord.AnswerIDValidator = answerrecordDescAnswerID.Validators[0].(func(string) error)
	// answerrecordDescUserID is the schema descriptor for user_id field.
	answerrecordDescUserID := answerrecordFields[1].Descriptor()
	// answerrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerrecord.UserIDValidator = answerrecordDescUserID.Validators[0].(func(string) error)
	// answerrecordDescQuestionType is the schema descriptor for question_type field.
	answerrecordDescQuestionType := answerrecordFields[2].Descriptor()
	// answerrecord.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerrecord.QuestionTypeValidator = answerrecordDescQuestionType.Validators[0].(func(string) error)
	// answerrecordDescVerdict is the schema descriptor for verdict field.
	answerrecordDescVerdict := answerrecordFields[7].Descriptor()
	// answerrecord.VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	answerrecord.VerdictValidator = answerrecordDescVerdict.Validators[0].(func(string) error)
	// answerrecordDescScore is the schema descriptor for score field.
	answerrecordDescScore := answerrecordFields[8].Descriptor()
	// answerrecord.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	answerrecord.ScoreValidator = func() func(float64) error {
		validators := answerrecordDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// answerrecordDescTimeMs is the schema descriptor for time_ms field.
	answerrecordDescTimeMs := answerrecordFields[10].Descriptor()
	// answerrecord.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerrecord.DefaultTimeMs = answerrecordDescTimeMs.Default.(int)
	// answerrecordDescIsContested is the schema descriptor for is_contested field.
	answerrecordDescIsContested := answerrecordFields[11].Descriptor()
	// answerrecord.DefaultIsContested holds the default value on creation for the is_contested field.
	answerrecord.DefaultIsContested = answerrecordDescIsContested.Default.(bool)
	// answerrecordDescContestedScore is the schema descriptor for contested_score field.
	answerrecordDescContestedScore := answerrecordFields[14].Descriptor()
	// answerrecord.ContestedScoreValidator is a validator for the "contested_score" field. It is called by the builders before save.
	answerrecord.ContestedScoreValidator = func() func(float64) error {
		validators := answerrecordDescContestedScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(contested_score float64) error {
			for _, fn := range fns {
				if err := fn(contested_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
}
