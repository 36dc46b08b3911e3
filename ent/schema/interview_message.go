package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewMessage is one transcript entry. Append-only, ordered by
// insertion.
type InterviewMessage struct {
	ent.Schema
}

func (InterviewMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("role").
			NotEmpty().
			Comment("interviewer, student, or system"),
		field.Text("content").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (InterviewMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
