package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one interview question. Immutable once created; the
// engine queries questions but never mutates them.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("track").
			NotEmpty().
			Comment("engineer, data, behavioral, ..."),
		field.String("company_style").
			NotEmpty().
			Comment("general or a named company style"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("title").
			NotEmpty(),
		field.Text("prompt").
			NotEmpty(),
		field.Strings("tags").
			Optional(),
		field.Strings("followups").
			Optional().
			Comment("Dataset-provided follow-up prompts"),
		field.String("question_type").
			NotEmpty().
			Comment("coding, system_design, behavioral, or conceptual"),
		field.Strings("expected_topics").
			Optional(),
		field.Strings("evaluation_focus").
			Optional().
			Comment("Focus keys this question is good at probing"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("track", "company_style", "difficulty"),
		index.Fields("question_type"),
	}
}
