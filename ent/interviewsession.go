// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervu/ent/interviewsession"
	"github.com/abhisek/intervu/internal/session"
)

// InterviewSession is the model entity for the InterviewSession schema.
type InterviewSession struct {
	config `json:"-"`
	// ID of the ent.
	// UUID
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Track holds the value of the "track" field.
	Track string `json:"track,omitempty"`
	// CompanyStyle holds the value of the "company_style" field.
	CompanyStyle string `json:"company_style,omitempty"`
	// User-selected cap, immutable
	Difficulty string `json:"difficulty,omitempty"`
	// Adaptive difficulty, never ranked above the cap
	DifficultyCurrent string `json:"difficulty_current,omitempty"`
	// Adaptive holds the value of the "adaptive" field.
	Adaptive bool `json:"adaptive,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage string `json:"stage,omitempty"`
	// QuestionsAskedCount holds the value of the "questions_asked_count" field.
	QuestionsAskedCount int `json:"questions_asked_count,omitempty"`
	// FollowupsUsed holds the value of the "followups_used" field.
	FollowupsUsed int `json:"followups_used,omitempty"`
	// MaxQuestions holds the value of the "max_questions" field.
	MaxQuestions int `json:"max_questions,omitempty"`
	// MaxFollowupsPerQuestion holds the value of the "max_followups_per_question" field.
	MaxFollowupsPerQuestion int `json:"max_followups_per_question,omitempty"`
	// BehavioralQuestionsTarget holds the value of the "behavioral_questions_target" field.
	BehavioralQuestionsTarget int `json:"behavioral_questions_target,omitempty"`
	// CurrentQuestionID holds the value of the "current_question_id" field.
	CurrentQuestionID string `json:"current_question_id,omitempty"`
	// Versioned blob: rubric stats, warmup, focus, plan, retry counters
	SkillState *session.State `json:"skill_state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterviewSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interviewsession.FieldSkillState:
			values[i] = new([]byte)
		case interviewsession.FieldAdaptive:
			values[i] = new(sql.NullBool)
		case interviewsession.FieldQuestionsAskedCount, interviewsession.FieldFollowupsUsed, interviewsession.FieldMaxQuestions, interviewsession.FieldMaxFollowupsPerQuestion, interviewsession.FieldBehavioralQuestionsTarget:
			values[i] = new(sql.NullInt64)
		case interviewsession.FieldID, interviewsession.FieldUserID, interviewsession.FieldRole, interviewsession.FieldTrack, interviewsession.FieldCompanyStyle, interviewsession.FieldDifficulty, interviewsession.FieldDifficultyCurrent, interviewsession.FieldStage, interviewsession.FieldCurrentQuestionID:
			values[i] = new(sql.NullString)
		case interviewsession.FieldCreatedAt, interviewsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterviewSession fields.
func (_m *InterviewSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interviewsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case interviewsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case interviewsession.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case interviewsession.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = value.String
			}
		case interviewsession.FieldCompanyStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_style", values[i])
			} else if value.Valid {
				_m.CompanyStyle = value.String
			}
		case interviewsession.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case interviewsession.FieldDifficultyCurrent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_current", values[i])
			} else if value.Valid {
				_m.DifficultyCurrent = value.String
			}
		case interviewsession.FieldAdaptive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field adaptive", values[i])
			} else if value.Valid {
				_m.Adaptive = value.Bool
			}
		case interviewsession.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case interviewsession.FieldQuestionsAskedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_asked_count", values[i])
			} else if value.Valid {
				_m.QuestionsAskedCount = int(value.Int64)
			}
		case interviewsession.FieldFollowupsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field followups_used", values[i])
			} else if value.Valid {
				_m.FollowupsUsed = int(value.Int64)
			}
		case interviewsession.FieldMaxQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_questions", values[i])
			} else if value.Valid {
				_m.MaxQuestions = int(value.Int64)
			}
		case interviewsession.FieldMaxFollowupsPerQuestion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_followups_per_question", values[i])
			} else if value.Valid {
				_m.MaxFollowupsPerQuestion = int(value.Int64)
			}
		case interviewsession.FieldBehavioralQuestionsTarget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field behavioral_questions_target", values[i])
			} else if value.Valid {
				_m.BehavioralQuestionsTarget = int(value.Int64)
			}
		case interviewsession.FieldCurrentQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_question_id", values[i])
			} else if value.Valid {
				_m.CurrentQuestionID = value.String
			}
		case interviewsession.FieldSkillState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skill_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkillState); err != nil {
					return fmt.Errorf("unmarshal field skill_state: %w", err)
				}
			}
		case interviewsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case interviewsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterviewSession.
// This includes values selected through modifiers, order, etc.
func (_m *InterviewSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterviewSession.
// Note that you need to call InterviewSession.Unwrap() before calling this method if this InterviewSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterviewSession) Update() *InterviewSessionUpdateOne {
	return NewInterviewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterviewSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterviewSession) Unwrap() *InterviewSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterviewSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterviewSession) String() string {
	var builder strings.Builder
	builder.WriteString("InterviewSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("track=")
	builder.WriteString(_m.Track)
	builder.WriteString(", ")
	builder.WriteString("company_style=")
	builder.WriteString(_m.CompanyStyle)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("difficulty_current=")
	builder.WriteString(_m.DifficultyCurrent)
	builder.WriteString(", ")
	builder.WriteString("adaptive=")
	builder.WriteString(fmt.Sprintf("%v", _m.Adaptive))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("questions_asked_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAskedCount))
	builder.WriteString(", ")
	builder.WriteString("followups_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowupsUsed))
	builder.WriteString(", ")
	builder.WriteString("max_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxQuestions))
	builder.WriteString(", ")
	builder.WriteString("max_followups_per_question=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxFollowupsPerQuestion))
	builder.WriteString(", ")
	builder.WriteString("behavioral_questions_target=")
	builder.WriteString(fmt.Sprintf("%v", _m.BehavioralQuestionsTarget))
	builder.WriteString(", ")
	builder.WriteString("current_question_id=")
	builder.WriteString(_m.CurrentQuestionID)
	builder.WriteString(", ")
	builder.WriteString("skill_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillState))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InterviewSessions is a parsable slice of InterviewSession.
type InterviewSessions []*InterviewSession
