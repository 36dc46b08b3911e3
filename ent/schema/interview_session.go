package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/abhisek/intervu/internal/session"
)

// InterviewSession is one interview attempt. Mutated by every engine
// turn via read-modify-write; terminal when stage is done.
type InterviewSession struct {
	ent.Schema
}

func (InterviewSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("user_id").
			NotEmpty(),
		field.String("role").
			Default(""),
		field.String("track").
			NotEmpty(),
		field.String("company_style").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty().
			Comment("User-selected cap, immutable"),
		field.String("difficulty_current").
			NotEmpty().
			Comment("Adaptive difficulty, never ranked above the cap"),
		field.Bool("adaptive").
			Default(true),
		field.String("stage").
			NotEmpty(),
		field.Int("questions_asked_count").
			Default(0),
		field.Int("followups_used").
			Default(0),
		field.Int("max_questions"),
		field.Int("max_followups_per_question"),
		field.Int("behavioral_questions_target"),
		field.String("current_question_id").
			Optional().
			Default(""),
		field.JSON("skill_state", &session.State{}).
			Comment("Versioned blob: rubric stats, warmup, focus, plan, retry counters"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (InterviewSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("stage"),
	}
}
