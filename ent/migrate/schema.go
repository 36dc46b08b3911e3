// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AskedQuestionsColumns holds the columns for the "asked_questions" table.
	AskedQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
	}
	// AskedQuestionsTable holds the schema information for the "asked_questions" table.
	AskedQuestionsTable = &schema.Table{
		Name:       "asked_questions",
		Columns:    AskedQuestionsColumns,
		PrimaryKey: []*schema.Column{AskedQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "askedquestion_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AskedQuestionsColumns[1], AskedQuestionsColumns[2]},
			},
		},
	}
	// InterviewMessagesColumns holds the columns for the "interview_messages" table.
	InterviewMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InterviewMessagesTable holds the schema information for the "interview_messages" table.
	InterviewMessagesTable = &schema.Table{
		Name:       "interview_messages",
		Columns:    InterviewMessagesColumns,
		PrimaryKey: []*schema.Column{InterviewMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interviewmessage_session_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewMessagesColumns[1]},
			},
		},
	}
	// InterviewSessionsColumns holds the columns for the "interview_sessions" table.
	InterviewSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: ""},
		{Name: "track", Type: field.TypeString},
		{Name: "company_style", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "difficulty_current", Type: field.TypeString},
		{Name: "adaptive", Type: field.TypeBool, Default: true},
		{Name: "stage", Type: field.TypeString},
		{Name: "questions_asked_count", Type: field.TypeInt, Default: 0},
		{Name: "followups_used", Type: field.TypeInt, Default: 0},
		{Name: "max_questions", Type: field.TypeInt},
		{Name: "max_followups_per_question", Type: field.TypeInt},
		{Name: "behavioral_questions_target", Type: field.TypeInt},
		{Name: "current_question_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "skill_state", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InterviewSessionsTable holds the schema information for the "interview_sessions" table.
	InterviewSessionsTable = &schema.Table{
		Name:       "interview_sessions",
		Columns:    InterviewSessionsColumns,
		PrimaryKey: []*schema.Column{InterviewSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interviewsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewSessionsColumns[1]},
			},
			{
				Name:    "interviewsession_stage",
				Unique:  false,
				Columns: []*schema.Column{InterviewSessionsColumns[8]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "track", Type: field.TypeString},
		{Name: "company_style", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "followups", Type: field.TypeJSON, Nullable: true},
		{Name: "question_type", Type: field.TypeString},
		{Name: "expected_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "evaluation_focus", Type: field.TypeJSON, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_track_company_style_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2], QuestionsColumns[3]},
			},
			{
				Name:    "question_question_type",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[8]},
			},
		},
	}
	// SeenQuestionsColumns holds the columns for the "seen_questions" table.
	SeenQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
	}
	// SeenQuestionsTable holds the schema information for the "seen_questions" table.
	SeenQuestionsTable = &schema.Table{
		Name:       "seen_questions",
		Columns:    SeenQuestionsColumns,
		PrimaryKey: []*schema.Column{SeenQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "seenquestion_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{SeenQuestionsColumns[1], SeenQuestionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AskedQuestionsTable,
		InterviewMessagesTable,
		InterviewSessionsTable,
		LlmRequestEventsTable,
		QuestionsTable,
		SeenQuestionsTable,
	}
)

func init() {
}
