// Code generated by ent, DO NOT EDIT.

package interviewsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interviewsession type in the database.
	Label = "interview_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldTrack holds the string denoting the track field in the database.
	FieldTrack = "track"
	// FieldCompanyStyle holds the string denoting the company_style field in the database.
	FieldCompanyStyle = "company_style"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldDifficultyCurrent holds the string denoting the difficulty_current field in the database.
	FieldDifficultyCurrent = "difficulty_current"
	// FieldAdaptive holds the string denoting the adaptive field in the database.
	FieldAdaptive = "adaptive"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldQuestionsAskedCount holds the string denoting the questions_asked_count field in the database.
	FieldQuestionsAskedCount = "questions_asked_count"
	// FieldFollowupsUsed holds the string denoting the followups_used field in the database.
	FieldFollowupsUsed = "followups_used"
	// FieldMaxQuestions holds the string denoting the max_questions field in the database.
	FieldMaxQuestions = "max_questions"
	// FieldMaxFollowupsPerQuestion holds the string denoting the max_followups_per_question field in the database.
	FieldMaxFollowupsPerQuestion = "max_followups_per_question"
	// FieldBehavioralQuestionsTarget holds the string denoting the behavioral_questions_target field in the database.
	FieldBehavioralQuestionsTarget = "behavioral_questions_target"
	// FieldCurrentQuestionID holds the string denoting the current_question_id field in the database.
	FieldCurrentQuestionID = "current_question_id"
	// FieldSkillState holds the string denoting the skill_state field in the database.
	FieldSkillState = "skill_state"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the interviewsession in the database.
	Table = "interview_sessions"
)

// Columns holds all SQL columns for interviewsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldRole,
	FieldTrack,
	FieldCompanyStyle,
	FieldDifficulty,
	FieldDifficultyCurrent,
	FieldAdaptive,
	FieldStage,
	FieldQuestionsAskedCount,
	FieldFollowupsUsed,
	FieldMaxQuestions,
	FieldMaxFollowupsPerQuestion,
	FieldBehavioralQuestionsTarget,
	FieldCurrentQuestionID,
	FieldSkillState,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultRole holds the default value on creation for the "role" field.
	DefaultRole string
	// TrackValidator is a validator for the "track" field. It is called by the builders before save.
	TrackValidator func(string) error
	// CompanyStyleValidator is a validator for the "company_style" field. It is called by the builders before save.
	CompanyStyleValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// DifficultyCurrentValidator is a validator for the "difficulty_current" field. It is called by the builders before save.
	DifficultyCurrentValidator func(string) error
	// DefaultAdaptive holds the default value on creation for the "adaptive" field.
	DefaultAdaptive bool
	// StageValidator is a validator for the "stage" field. It is called by the builders before save.
	StageValidator func(string) error
	// DefaultQuestionsAskedCount holds the default value on creation for the "questions_asked_count" field.
	DefaultQuestionsAskedCount int
	// DefaultFollowupsUsed holds the default value on creation for the "followups_used" field.
	DefaultFollowupsUsed int
	// DefaultCurrentQuestionID holds the default value on creation for the "current_question_id" field.
	DefaultCurrentQuestionID string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the InterviewSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByTrack orders the results by the track field.
func ByTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrack, opts...).ToFunc()
}

// ByCompanyStyle orders the results by the company_style field.
func ByCompanyStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyStyle, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByDifficultyCurrent orders the results by the difficulty_current field.
func ByDifficultyCurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyCurrent, opts...).ToFunc()
}

// ByAdaptive orders the results by the adaptive field.
func ByAdaptive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdaptive, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByQuestionsAskedCount orders the results by the questions_asked_count field.
func ByQuestionsAskedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAskedCount, opts...).ToFunc()
}

// ByFollowupsUsed orders the results by the followups_used field.
func ByFollowupsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowupsUsed, opts...).ToFunc()
}

// ByMaxQuestions orders the results by the max_questions field.
func ByMaxQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxQuestions, opts...).ToFunc()
}

// ByMaxFollowupsPerQuestion orders the results by the max_followups_per_question field.
func ByMaxFollowupsPerQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxFollowupsPerQuestion, opts...).ToFunc()
}

// ByBehavioralQuestionsTarget orders the results by the behavioral_questions_target field.
func ByBehavioralQuestionsTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehavioralQuestionsTarget, opts...).ToFunc()
}

// ByCurrentQuestionID orders the results by the current_question_id field.
func ByCurrentQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentQuestionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
