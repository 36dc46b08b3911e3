// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervu/ent/interviewsession"
	"github.com/abhisek/intervu/ent/predicate"
	"github.com/abhisek/intervu/internal/session"
)

// InterviewSessionUpdate is the builder for updating InterviewSession entities.
type InterviewSessionUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewSessionMutation
}

// Where appends a list predicates to the InterviewSessionUpdate builder.
func (_u *InterviewSessionUpdate) Where(ps ...predicate.InterviewSession) *InterviewSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InterviewSessionUpdate) SetUserID(v string) *InterviewSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableUserID(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *InterviewSessionUpdate) SetRole(v string) *InterviewSessionUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableRole(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *InterviewSessionUpdate) SetTrack(v string) *InterviewSessionUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableTrack(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetCompanyStyle sets the "company_style" field.
func (_u *InterviewSessionUpdate) SetCompanyStyle(v string) *InterviewSessionUpdate {
	_u.mutation.SetCompanyStyle(v)
	return _u
}

// SetNillableCompanyStyle sets the "company_style" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableCompanyStyle(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetCompanyStyle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *InterviewSessionUpdate) SetDifficulty(v string) *InterviewSessionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableDifficulty(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetDifficultyCurrent sets the "difficulty_current" field.
func (_u *InterviewSessionUpdate) SetDifficultyCurrent(v string) *InterviewSessionUpdate {
	_u.mutation.SetDifficultyCurrent(v)
	return _u
}

// SetNillableDifficultyCurrent sets the "difficulty_current" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableDifficultyCurrent(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetDifficultyCurrent(*v)
	}
	return _u
}

// SetAdaptive sets the "adaptive" field.
func (_u *InterviewSessionUpdate) SetAdaptive(v bool) *InterviewSessionUpdate {
	_u.mutation.SetAdaptive(v)
	return _u
}

// SetNillableAdaptive sets the "adaptive" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableAdaptive(v *bool) *InterviewSessionUpdate {
	if v != nil {
		_u.SetAdaptive(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *InterviewSessionUpdate) SetStage(v string) *InterviewSessionUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableStage(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetQuestionsAskedCount sets the "questions_asked_count" field.
func (_u *InterviewSessionUpdate) SetQuestionsAskedCount(v int) *InterviewSessionUpdate {
	_u.mutation.ResetQuestionsAskedCount()
	_u.mutation.SetQuestionsAskedCount(v)
	return _u
}

// SetNillableQuestionsAskedCount sets the "questions_asked_count" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableQuestionsAskedCount(v *int) *InterviewSessionUpdate {
	if v != nil {
		_u.SetQuestionsAskedCount(*v)
	}
	return _u
}

// AddQuestionsAskedCount adds value to the "questions_asked_count" field.
func (_u *InterviewSessionUpdate) AddQuestionsAskedCount(v int) *InterviewSessionUpdate {
	_u.mutation.AddQuestionsAskedCount(v)
	return _u
}

// SetFollowupsUsed sets the "followups_used" field.
func (_u *InterviewSessionUpdate) SetFollowupsUsed(v int) *InterviewSessionUpdate {
	_u.mutation.ResetFollowupsUsed()
	_u.mutation.SetFollowupsUsed(v)
	return _u
}

// SetNillableFollowupsUsed sets the "followups_used" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableFollowupsUsed(v *int) *InterviewSessionUpdate {
	if v != nil {
		_u.SetFollowupsUsed(*v)
	}
	return _u
}

// AddFollowupsUsed adds value to the "followups_used" field.
func (_u *InterviewSessionUpdate) AddFollowupsUsed(v int) *InterviewSessionUpdate {
	_u.mutation.AddFollowupsUsed(v)
	return _u
}

// SetMaxQuestions sets the "max_questions" field.
func (_u *InterviewSessionUpdate) SetMaxQuestions(v int) *InterviewSessionUpdate {
	_u.mutation.ResetMaxQuestions()
	_u.mutation.SetMaxQuestions(v)
	return _u
}

// SetNillableMaxQuestions sets the "max_questions" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableMaxQuestions(v *int) *InterviewSessionUpdate {
	if v != nil {
		_u.SetMaxQuestions(*v)
	}
	return _u
}

// AddMaxQuestions adds value to the "max_questions" field.
func (_u *InterviewSessionUpdate) AddMaxQuestions(v int) *InterviewSessionUpdate {
	_u.mutation.AddMaxQuestions(v)
	return _u
}

// SetMaxFollowupsPerQuestion sets the "max_followups_per_question" field.
func (_u *InterviewSessionUpdate) SetMaxFollowupsPerQuestion(v int) *InterviewSessionUpdate {
	_u.mutation.ResetMaxFollowupsPerQuestion()
	_u.mutation.SetMaxFollowupsPerQuestion(v)
	return _u
}

// SetNillableMaxFollowupsPerQuestion sets the "max_followups_per_question" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableMaxFollowupsPerQuestion(v *int) *InterviewSessionUpdate {
	if v != nil {
		_u.SetMaxFollowupsPerQuestion(*v)
	}
	return _u
}

// AddMaxFollowupsPerQuestion adds value to the "max_followups_per_question" field.
func (_u *InterviewSessionUpdate) AddMaxFollowupsPerQuestion(v int) *InterviewSessionUpdate {
	_u.mutation.AddMaxFollowupsPerQuestion(v)
	return _u
}

// SetBehavioralQuestionsTarget sets the "behavioral_questions_target" field.
func (_u *InterviewSessionUpdate) SetBehavioralQuestionsTarget(v int) *InterviewSessionUpdate {
	_u.mutation.ResetBehavioralQuestionsTarget()
	_u.mutation.SetBehavioralQuestionsTarget(v)
	return _u
}

// SetNillableBehavioralQuestionsTarget sets the "behavioral_questions_target" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableBehavioralQuestionsTarget(v *int) *InterviewSessionUpdate {
	if v != nil {
		_u.SetBehavioralQuestionsTarget(*v)
	}
	return _u
}

// AddBehavioralQuestionsTarget adds value to the "behavioral_questions_target" field.
func (_u *InterviewSessionUpdate) AddBehavioralQuestionsTarget(v int) *InterviewSessionUpdate {
	_u.mutation.AddBehavioralQuestionsTarget(v)
	return _u
}

// SetCurrentQuestionID sets the "current_question_id" field.
func (_u *InterviewSessionUpdate) SetCurrentQuestionID(v string) *InterviewSessionUpdate {
	_u.mutation.SetCurrentQuestionID(v)
	return _u
}

// SetNillableCurrentQuestionID sets the "current_question_id" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableCurrentQuestionID(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetCurrentQuestionID(*v)
	}
	return _u
}

// ClearCurrentQuestionID clears the value of the "current_question_id" field.
func (_u *InterviewSessionUpdate) ClearCurrentQuestionID() *InterviewSessionUpdate {
	_u.mutation.ClearCurrentQuestionID()
	return _u
}

// SetSkillState sets the "skill_state" field.
func (_u *InterviewSessionUpdate) SetSkillState(v *session.State) *InterviewSessionUpdate {
	_u.mutation.SetSkillState(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterviewSessionUpdate) SetUpdatedAt(v time.Time) *InterviewSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InterviewSessionMutation object of the builder.
func (_u *InterviewSessionUpdate) Mutation() *InterviewSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterviewSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interviewsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewSessionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interviewsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := interviewsession.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.track": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyStyle(); ok {
		if err := interviewsession.CompanyStyleValidator(v); err != nil {
			return &ValidationError{Name: "company_style", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.company_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := interviewsession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyCurrent(); ok {
		if err := interviewsession.DifficultyCurrentValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_current", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.difficulty_current": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := interviewsession.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewsession.Table, interviewsession.Columns, sqlgraph.NewFieldSpec(interviewsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interviewsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(interviewsession.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(interviewsession.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyStyle(); ok {
		_spec.SetField(interviewsession.FieldCompanyStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(interviewsession.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyCurrent(); ok {
		_spec.SetField(interviewsession.FieldDifficultyCurrent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adaptive(); ok {
		_spec.SetField(interviewsession.FieldAdaptive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(interviewsession.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAskedCount(); ok {
		_spec.SetField(interviewsession.FieldQuestionsAskedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAskedCount(); ok {
		_spec.AddField(interviewsession.FieldQuestionsAskedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FollowupsUsed(); ok {
		_spec.SetField(interviewsession.FieldFollowupsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowupsUsed(); ok {
		_spec.AddField(interviewsession.FieldFollowupsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxQuestions(); ok {
		_spec.SetField(interviewsession.FieldMaxQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxQuestions(); ok {
		_spec.AddField(interviewsession.FieldMaxQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxFollowupsPerQuestion(); ok {
		_spec.SetField(interviewsession.FieldMaxFollowupsPerQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxFollowupsPerQuestion(); ok {
		_spec.AddField(interviewsession.FieldMaxFollowupsPerQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BehavioralQuestionsTarget(); ok {
		_spec.SetField(interviewsession.FieldBehavioralQuestionsTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBehavioralQuestionsTarget(); ok {
		_spec.AddField(interviewsession.FieldBehavioralQuestionsTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentQuestionID(); ok {
		_spec.SetField(interviewsession.FieldCurrentQuestionID, field.TypeString, value)
	}
	if _u.mutation.CurrentQuestionIDCleared() {
		_spec.ClearField(interviewsession.FieldCurrentQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.SkillState(); ok {
		_spec.SetField(interviewsession.FieldSkillState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interviewsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewSessionUpdateOne is the builder for updating a single InterviewSession entity.
type InterviewSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *InterviewSessionUpdateOne) SetUserID(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableUserID(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *InterviewSessionUpdateOne) SetRole(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableRole(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *InterviewSessionUpdateOne) SetTrack(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableTrack(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetCompanyStyle sets the "company_style" field.
func (_u *InterviewSessionUpdateOne) SetCompanyStyle(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetCompanyStyle(v)
	return _u
}

// SetNillableCompanyStyle sets the "company_style" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableCompanyStyle(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetCompanyStyle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *InterviewSessionUpdateOne) SetDifficulty(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableDifficulty(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetDifficultyCurrent sets the "difficulty_current" field.
func (_u *InterviewSessionUpdateOne) SetDifficultyCurrent(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetDifficultyCurrent(v)
	return _u
}

// SetNillableDifficultyCurrent sets the "difficulty_current" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableDifficultyCurrent(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetDifficultyCurrent(*v)
	}
	return _u
}

// SetAdaptive sets the "adaptive" field.
func (_u *InterviewSessionUpdateOne) SetAdaptive(v bool) *InterviewSessionUpdateOne {
	_u.mutation.SetAdaptive(v)
	return _u
}

// SetNillableAdaptive sets the "adaptive" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableAdaptive(v *bool) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetAdaptive(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *InterviewSessionUpdateOne) SetStage(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableStage(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetQuestionsAskedCount sets the "questions_asked_count" field.
func (_u *InterviewSessionUpdateOne) SetQuestionsAskedCount(v int) *InterviewSessionUpdateOne {
	_u.mutation.ResetQuestionsAskedCount()
	_u.mutation.SetQuestionsAskedCount(v)
	return _u
}

// SetNillableQuestionsAskedCount sets the "questions_asked_count" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableQuestionsAskedCount(v *int) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsAskedCount(*v)
	}
	return _u
}

// AddQuestionsAskedCount adds value to the "questions_asked_count" field.
func (_u *InterviewSessionUpdateOne) AddQuestionsAskedCount(v int) *InterviewSessionUpdateOne {
	_u.mutation.AddQuestionsAskedCount(v)
	return _u
}

// SetFollowupsUsed sets the "followups_used" field.
func (_u *InterviewSessionUpdateOne) SetFollowupsUsed(v int) *InterviewSessionUpdateOne {
	_u.mutation.ResetFollowupsUsed()
	_u.mutation.SetFollowupsUsed(v)
	return _u
}

// SetNillableFollowupsUsed sets the "followups_used" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableFollowupsUsed(v *int) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetFollowupsUsed(*v)
	}
	return _u
}

// AddFollowupsUsed adds value to the "followups_used" field.
func (_u *InterviewSessionUpdateOne) AddFollowupsUsed(v int) *InterviewSessionUpdateOne {
	_u.mutation.AddFollowupsUsed(v)
	return _u
}

// SetMaxQuestions sets the "max_questions" field.
func (_u *InterviewSessionUpdateOne) SetMaxQuestions(v int) *InterviewSessionUpdateOne {
	_u.mutation.ResetMaxQuestions()
	_u.mutation.SetMaxQuestions(v)
	return _u
}

// SetNillableMaxQuestions sets the "max_questions" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableMaxQuestions(v *int) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetMaxQuestions(*v)
	}
	return _u
}

// AddMaxQuestions adds value to the "max_questions" field.
func (_u *InterviewSessionUpdateOne) AddMaxQuestions(v int) *InterviewSessionUpdateOne {
	_u.mutation.AddMaxQuestions(v)
	return _u
}

// SetMaxFollowupsPerQuestion sets the "max_followups_per_question" field.
func (_u *InterviewSessionUpdateOne) SetMaxFollowupsPerQuestion(v int) *InterviewSessionUpdateOne {
	_u.mutation.ResetMaxFollowupsPerQuestion()
	_u.mutation.SetMaxFollowupsPerQuestion(v)
	return _u
}

// SetNillableMaxFollowupsPerQuestion sets the "max_followups_per_question" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableMaxFollowupsPerQuestion(v *int) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetMaxFollowupsPerQuestion(*v)
	}
	return _u
}

// AddMaxFollowupsPerQuestion adds value to the "max_followups_per_question" field.
func (_u *InterviewSessionUpdateOne) AddMaxFollowupsPerQuestion(v int) *InterviewSessionUpdateOne {
	_u.mutation.AddMaxFollowupsPerQuestion(v)
	return _u
}

// SetBehavioralQuestionsTarget sets the "behavioral_questions_target" field.
func (_u *InterviewSessionUpdateOne) SetBehavioralQuestionsTarget(v int) *InterviewSessionUpdateOne {
	_u.mutation.ResetBehavioralQuestionsTarget()
	_u.mutation.SetBehavioralQuestionsTarget(v)
	return _u
}

// SetNillableBehavioralQuestionsTarget sets the "behavioral_questions_target" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableBehavioralQuestionsTarget(v *int) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetBehavioralQuestionsTarget(*v)
	}
	return _u
}

// AddBehavioralQuestionsTarget adds value to the "behavioral_questions_target" field.
func (_u *InterviewSessionUpdateOne) AddBehavioralQuestionsTarget(v int) *InterviewSessionUpdateOne {
	_u.mutation.AddBehavioralQuestionsTarget(v)
	return _u
}

// SetCurrentQuestionID sets the "current_question_id" field.
func (_u *InterviewSessionUpdateOne) SetCurrentQuestionID(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetCurrentQuestionID(v)
	return _u
}

// SetNillableCurrentQuestionID sets the "current_question_id" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableCurrentQuestionID(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetCurrentQuestionID(*v)
	}
	return _u
}

// ClearCurrentQuestionID clears the value of the "current_question_id" field.
func (_u *InterviewSessionUpdateOne) ClearCurrentQuestionID() *InterviewSessionUpdateOne {
	_u.mutation.ClearCurrentQuestionID()
	return _u
}

// SetSkillState sets the "skill_state" field.
func (_u *InterviewSessionUpdateOne) SetSkillState(v *session.State) *InterviewSessionUpdateOne {
	_u.mutation.SetSkillState(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterviewSessionUpdateOne) SetUpdatedAt(v time.Time) *InterviewSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InterviewSessionMutation object of the builder.
func (_u *InterviewSessionUpdateOne) Mutation() *InterviewSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewSessionUpdate builder.
func (_u *InterviewSessionUpdateOne) Where(ps ...predicate.InterviewSession) *InterviewSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewSessionUpdateOne) Select(field string, fields ...string) *InterviewSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewSession entity.
func (_u *InterviewSessionUpdateOne) Save(ctx context.Context) (*InterviewSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewSessionUpdateOne) SaveX(ctx context.Context) *InterviewSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterviewSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interviewsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewSessionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interviewsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := interviewsession.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.track": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyStyle(); ok {
		if err := interviewsession.CompanyStyleValidator(v); err != nil {
			return &ValidationError{Name: "company_style", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.company_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := interviewsession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyCurrent(); ok {
		if err := interviewsession.DifficultyCurrentValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_current", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.difficulty_current": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := interviewsession.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewSessionUpdateOne) sqlSave(ctx context.Context) (_node *InterviewSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewsession.Table, interviewsession.Columns, sqlgraph.NewFieldSpec(interviewsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewsession.FieldID)
		for _, f := range fields {
			if !interviewsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interviewsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(interviewsession.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(interviewsession.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyStyle(); ok {
		_spec.SetField(interviewsession.FieldCompanyStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(interviewsession.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyCurrent(); ok {
		_spec.SetField(interviewsession.FieldDifficultyCurrent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adaptive(); ok {
		_spec.SetField(interviewsession.FieldAdaptive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(interviewsession.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAskedCount(); ok {
		_spec.SetField(interviewsession.FieldQuestionsAskedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAskedCount(); ok {
		_spec.AddField(interviewsession.FieldQuestionsAskedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FollowupsUsed(); ok {
		_spec.SetField(interviewsession.FieldFollowupsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowupsUsed(); ok {
		_spec.AddField(interviewsession.FieldFollowupsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxQuestions(); ok {
		_spec.SetField(interviewsession.FieldMaxQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxQuestions(); ok {
		_spec.AddField(interviewsession.FieldMaxQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxFollowupsPerQuestion(); ok {
		_spec.SetField(interviewsession.FieldMaxFollowupsPerQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxFollowupsPerQuestion(); ok {
		_spec.AddField(interviewsession.FieldMaxFollowupsPerQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BehavioralQuestionsTarget(); ok {
		_spec.SetField(interviewsession.FieldBehavioralQuestionsTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBehavioralQuestionsTarget(); ok {
		_spec.AddField(interviewsession.FieldBehavioralQuestionsTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentQuestionID(); ok {
		_spec.SetField(interviewsession.FieldCurrentQuestionID, field.TypeString, value)
	}
	if _u.mutation.CurrentQuestionIDCleared() {
		_spec.ClearField(interviewsession.FieldCurrentQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.SkillState(); ok {
		_spec.SetField(interviewsession.FieldSkillState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interviewsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &InterviewSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
