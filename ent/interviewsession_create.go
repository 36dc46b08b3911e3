// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervu/ent/interviewsession"
	"github.com/abhisek/intervu/internal/session"
)

// InterviewSessionCreate is the builder for creating a InterviewSession entity.
type InterviewSessionCreate struct {
	config
	mutation *InterviewSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InterviewSessionCreate) SetUserID(v string) *InterviewSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *InterviewSessionCreate) SetRole(v string) *InterviewSessionCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableRole(v *string) *InterviewSessionCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetTrack sets the "track" field.
func (_c *InterviewSessionCreate) SetTrack(v string) *InterviewSessionCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetCompanyStyle sets the "company_style" field.
func (_c *InterviewSessionCreate) SetCompanyStyle(v string) *InterviewSessionCreate {
	_c.mutation.SetCompanyStyle(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *InterviewSessionCreate) SetDifficulty(v string) *InterviewSessionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetDifficultyCurrent sets the "difficulty_current" field.
func (_c *InterviewSessionCreate) SetDifficultyCurrent(v string) *InterviewSessionCreate {
	_c.mutation.SetDifficultyCurrent(v)
	return _c
}

// SetAdaptive sets the "adaptive" field.
func (_c *InterviewSessionCreate) SetAdaptive(v bool) *InterviewSessionCreate {
	_c.mutation.SetAdaptive(v)
	return _c
}

// SetNillableAdaptive sets the "adaptive" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableAdaptive(v *bool) *InterviewSessionCreate {
	if v != nil {
		_c.SetAdaptive(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *InterviewSessionCreate) SetStage(v string) *InterviewSessionCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetQuestionsAskedCount sets the "questions_asked_count" field.
func (_c *InterviewSessionCreate) SetQuestionsAskedCount(v int) *InterviewSessionCreate {
	_c.mutation.SetQuestionsAskedCount(v)
	return _c
}

// SetNillableQuestionsAskedCount sets the "questions_asked_count" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableQuestionsAskedCount(v *int) *InterviewSessionCreate {
	if v != nil {
		_c.SetQuestionsAskedCount(*v)
	}
	return _c
}

// SetFollowupsUsed sets the "followups_used" field.
func (_c *InterviewSessionCreate) SetFollowupsUsed(v int) *InterviewSessionCreate {
	_c.mutation.SetFollowupsUsed(v)
	return _c
}

// SetNillableFollowupsUsed sets the "followups_used" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableFollowupsUsed(v *int) *InterviewSessionCreate {
	if v != nil {
		_c.SetFollowupsUsed(*v)
	}
	return _c
}

// SetMaxQuestions sets the "max_questions" field.
func (_c *InterviewSessionCreate) SetMaxQuestions(v int) *InterviewSessionCreate {
	_c.mutation.SetMaxQuestions(v)
	return _c
}

// SetMaxFollowupsPerQuestion sets the "max_followups_per_question" field.
func (_c *InterviewSessionCreate) SetMaxFollowupsPerQuestion(v int) *InterviewSessionCreate {
	_c.mutation.SetMaxFollowupsPerQuestion(v)
	return _c
}

// SetBehavioralQuestionsTarget sets the "behavioral_questions_target" field.
func (_c *InterviewSessionCreate) SetBehavioralQuestionsTarget(v int) *InterviewSessionCreate {
	_c.mutation.SetBehavioralQuestionsTarget(v)
	return _c
}

// SetCurrentQuestionID sets the "current_question_id" field.
func (_c *InterviewSessionCreate) SetCurrentQuestionID(v string) *InterviewSessionCreate {
	_c.mutation.SetCurrentQuestionID(v)
	return _c
}

// SetNillableCurrentQuestionID sets the "current_question_id" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableCurrentQuestionID(v *string) *InterviewSessionCreate {
	if v != nil {
		_c.SetCurrentQuestionID(*v)
	}
	return _c
}

// SetSkillState sets the "skill_state" field.
func (_c *InterviewSessionCreate) SetSkillState(v *session.State) *InterviewSessionCreate {
	_c.mutation.SetSkillState(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterviewSessionCreate) SetCreatedAt(v time.Time) *InterviewSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableCreatedAt(v *time.Time) *InterviewSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InterviewSessionCreate) SetUpdatedAt(v time.Time) *InterviewSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableUpdatedAt(v *time.Time) *InterviewSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterviewSessionCreate) SetID(v string) *InterviewSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InterviewSessionMutation object of the builder.
func (_c *InterviewSessionCreate) Mutation() *InterviewSessionMutation {
	return _c.mutation
}

// Save creates the InterviewSession in the database.
func (_c *InterviewSessionCreate) Save(ctx context.Context) (*InterviewSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewSessionCreate) SaveX(ctx context.Context) *InterviewSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewSessionCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := interviewsession.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.Adaptive(); !ok {
		v := interviewsession.DefaultAdaptive
		_c.mutation.SetAdaptive(v)
	}
	if _, ok := _c.mutation.QuestionsAskedCount(); !ok {
		v := interviewsession.DefaultQuestionsAskedCount
		_c.mutation.SetQuestionsAskedCount(v)
	}
	if _, ok := _c.mutation.FollowupsUsed(); !ok {
		v := interviewsession.DefaultFollowupsUsed
		_c.mutation.SetFollowupsUsed(v)
	}
	if _, ok := _c.mutation.CurrentQuestionID(); !ok {
		v := interviewsession.DefaultCurrentQuestionID
		_c.mutation.SetCurrentQuestionID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interviewsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interviewsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InterviewSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := interviewsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "InterviewSession.role"`)}
	}
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "InterviewSession.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := interviewsession.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompanyStyle(); !ok {
		return &ValidationError{Name: "company_style", err: errors.New(`ent: missing required field "InterviewSession.company_style"`)}
	}
	if v, ok := _c.mutation.CompanyStyle(); ok {
		if err := interviewsession.CompanyStyleValidator(v); err != nil {
			return &ValidationError{Name: "company_style", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.company_style": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "InterviewSession.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := interviewsession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyCurrent(); !ok {
		return &ValidationError{Name: "difficulty_current", err: errors.New(`ent: missing required field "InterviewSession.difficulty_current"`)}
	}
	if v, ok := _c.mutation.DifficultyCurrent(); ok {
		if err := interviewsession.DifficultyCurrentValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_current", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.difficulty_current": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Adaptive(); !ok {
		return &ValidationError{Name: "adaptive", err: errors.New(`ent: missing required field "InterviewSession.adaptive"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "InterviewSession.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := interviewsession.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsAskedCount(); !ok {
		return &ValidationError{Name: "questions_asked_count", err: errors.New(`ent: missing required field "InterviewSession.questions_asked_count"`)}
	}
	if _, ok := _c.mutation.FollowupsUsed(); !ok {
		return &ValidationError{Name: "followups_used", err: errors.New(`ent: missing required field "InterviewSession.followups_used"`)}
	}
	if _, ok := _c.mutation.MaxQuestions(); !ok {
		return &ValidationError{Name: "max_questions", err: errors.New(`ent: missing required field "InterviewSession.max_questions"`)}
	}
	if _, ok := _c.mutation.MaxFollowupsPerQuestion(); !ok {
		return &ValidationError{Name: "max_followups_per_question", err: errors.New(`ent: missing required field "InterviewSession.max_followups_per_question"`)}
	}
	if _, ok := _c.mutation.BehavioralQuestionsTarget(); !ok {
		return &ValidationError{Name: "behavioral_questions_target", err: errors.New(`ent: missing required field "InterviewSession.behavioral_questions_target"`)}
	}
	if _, ok := _c.mutation.SkillState(); !ok {
		return &ValidationError{Name: "skill_state", err: errors.New(`ent: missing required field "InterviewSession.skill_state"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InterviewSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InterviewSession.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := interviewsession.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.id": %w`, err)}
		}
	}
	return nil
}

func (_c *InterviewSessionCreate) sqlSave(ctx context.Context) (*InterviewSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected InterviewSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewSessionCreate) createSpec() (*InterviewSession, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewsession.Table, sqlgraph.NewFieldSpec(interviewsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interviewsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(interviewsession.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(interviewsession.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.CompanyStyle(); ok {
		_spec.SetField(interviewsession.FieldCompanyStyle, field.TypeString, value)
		_node.CompanyStyle = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(interviewsession.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.DifficultyCurrent(); ok {
		_spec.SetField(interviewsession.FieldDifficultyCurrent, field.TypeString, value)
		_node.DifficultyCurrent = value
	}
	if value, ok := _c.mutation.Adaptive(); ok {
		_spec.SetField(interviewsession.FieldAdaptive, field.TypeBool, value)
		_node.Adaptive = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(interviewsession.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.QuestionsAskedCount(); ok {
		_spec.SetField(interviewsession.FieldQuestionsAskedCount, field.TypeInt, value)
		_node.QuestionsAskedCount = value
	}
	if value, ok := _c.mutation.FollowupsUsed(); ok {
		_spec.SetField(interviewsession.FieldFollowupsUsed, field.TypeInt, value)
		_node.FollowupsUsed = value
	}
	if value, ok := _c.mutation.MaxQuestions(); ok {
		_spec.SetField(interviewsession.FieldMaxQuestions, field.TypeInt, value)
		_node.MaxQuestions = value
	}
	if value, ok := _c.mutation.MaxFollowupsPerQuestion(); ok {
		_spec.SetField(interviewsession.FieldMaxFollowupsPerQuestion, field.TypeInt, value)
		_node.MaxFollowupsPerQuestion = value
	}
	if value, ok := _c.mutation.BehavioralQuestionsTarget(); ok {
		_spec.SetField(interviewsession.FieldBehavioralQuestionsTarget, field.TypeInt, value)
		_node.BehavioralQuestionsTarget = value
	}
	if value, ok := _c.mutation.CurrentQuestionID(); ok {
		_spec.SetField(interviewsession.FieldCurrentQuestionID, field.TypeString, value)
		_node.CurrentQuestionID = value
	}
	if value, ok := _c.mutation.SkillState(); ok {
		_spec.SetField(interviewsession.FieldSkillState, field.TypeJSON, value)
		_node.SkillState = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interviewsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interviewsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// InterviewSessionCreateBulk is the builder for creating many InterviewSession entities in bulk.
type InterviewSessionCreateBulk struct {
	config
	err      error
	builders []*InterviewSessionCreate
}

// Save creates the InterviewSession entities in the database.
func (_c *InterviewSessionCreateBulk) Save(ctx context.Context) ([]*InterviewSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterviewSessionCreateBulk) SaveX(ctx context.Context) []*InterviewSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
