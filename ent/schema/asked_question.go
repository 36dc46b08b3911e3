package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AskedQuestion records a question asked within a session. A question
// id never repeats within one session.
type AskedQuestion struct {
	ent.Schema
}

func (AskedQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
	}
}

func (AskedQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id").
			Unique(),
	}
}
