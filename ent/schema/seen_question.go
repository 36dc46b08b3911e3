package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SeenQuestion records a question a user has seen in any session.
// A soft cross-session no-repeat set: bypassed only when the filtered
// candidate pool would otherwise be empty.
type SeenQuestion struct {
	ent.Schema
}

func (SeenQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
	}
}

func (SeenQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").
			Unique(),
	}
}
