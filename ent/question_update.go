// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervu/ent/predicate"
	"github.com/abhisek/intervu/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTrack sets the "track" field.
func (_u *QuestionUpdate) SetTrack(v string) *QuestionUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTrack(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetCompanyStyle sets the "company_style" field.
func (_u *QuestionUpdate) SetCompanyStyle(v string) *QuestionUpdate {
	_u.mutation.SetCompanyStyle(v)
	return _u
}

// SetNillableCompanyStyle sets the "company_style" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCompanyStyle(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCompanyStyle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v string) *QuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestionUpdate) SetTitle(v string) *QuestionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTitle(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdate) SetPrompt(v string) *QuestionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePrompt(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *QuestionUpdate) SetTags(v []string) *QuestionUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *QuestionUpdate) AppendTags(v []string) *QuestionUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *QuestionUpdate) ClearTags() *QuestionUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetFollowups sets the "followups" field.
func (_u *QuestionUpdate) SetFollowups(v []string) *QuestionUpdate {
	_u.mutation.SetFollowups(v)
	return _u
}

// AppendFollowups appends value to the "followups" field.
func (_u *QuestionUpdate) AppendFollowups(v []string) *QuestionUpdate {
	_u.mutation.AppendFollowups(v)
	return _u
}

// ClearFollowups clears the value of the "followups" field.
func (_u *QuestionUpdate) ClearFollowups() *QuestionUpdate {
	_u.mutation.ClearFollowups()
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionUpdate) SetQuestionType(v string) *QuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionType(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetExpectedTopics sets the "expected_topics" field.
func (_u *QuestionUpdate) SetExpectedTopics(v []string) *QuestionUpdate {
	_u.mutation.SetExpectedTopics(v)
	return _u
}

// AppendExpectedTopics appends value to the "expected_topics" field.
func (_u *QuestionUpdate) AppendExpectedTopics(v []string) *QuestionUpdate {
	_u.mutation.AppendExpectedTopics(v)
	return _u
}

// ClearExpectedTopics clears the value of the "expected_topics" field.
func (_u *QuestionUpdate) ClearExpectedTopics() *QuestionUpdate {
	_u.mutation.ClearExpectedTopics()
	return _u
}

// SetEvaluationFocus sets the "evaluation_focus" field.
func (_u *QuestionUpdate) SetEvaluationFocus(v []string) *QuestionUpdate {
	_u.mutation.SetEvaluationFocus(v)
	return _u
}

// AppendEvaluationFocus appends value to the "evaluation_focus" field.
func (_u *QuestionUpdate) AppendEvaluationFocus(v []string) *QuestionUpdate {
	_u.mutation.AppendEvaluationFocus(v)
	return _u
}

// ClearEvaluationFocus clears the value of the "evaluation_focus" field.
func (_u *QuestionUpdate) ClearEvaluationFocus() *QuestionUpdate {
	_u.mutation.ClearEvaluationFocus()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Track(); ok {
		if err := question.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "Question.track": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyStyle(); ok {
		if err := question.CompanyStyleValidator(v); err != nil {
			return &ValidationError{Name: "company_style", err: fmt.Errorf(`ent: validator failed for field "Question.company_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := question.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Question.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(question.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyStyle(); ok {
		_spec.SetField(question.FieldCompanyStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(question.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(question.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(question.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Followups(); ok {
		_spec.SetField(question.FieldFollowups, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFollowups(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldFollowups, value)
		})
	}
	if _u.mutation.FollowupsCleared() {
		_spec.ClearField(question.FieldFollowups, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedTopics(); ok {
		_spec.SetField(question.FieldExpectedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldExpectedTopics, value)
		})
	}
	if _u.mutation.ExpectedTopicsCleared() {
		_spec.ClearField(question.FieldExpectedTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.EvaluationFocus(); ok {
		_spec.SetField(question.FieldEvaluationFocus, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvaluationFocus(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldEvaluationFocus, value)
		})
	}
	if _u.mutation.EvaluationFocusCleared() {
		_spec.ClearField(question.FieldEvaluationFocus, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetTrack sets the "track" field.
func (_u *QuestionUpdateOne) SetTrack(v string) *QuestionUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTrack(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetCompanyStyle sets the "company_style" field.
func (_u *QuestionUpdateOne) SetCompanyStyle(v string) *QuestionUpdateOne {
	_u.mutation.SetCompanyStyle(v)
	return _u
}

// SetNillableCompanyStyle sets the "company_style" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCompanyStyle(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCompanyStyle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v string) *QuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestionUpdateOne) SetTitle(v string) *QuestionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTitle(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdateOne) SetPrompt(v string) *QuestionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePrompt(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *QuestionUpdateOne) SetTags(v []string) *QuestionUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *QuestionUpdateOne) AppendTags(v []string) *QuestionUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *QuestionUpdateOne) ClearTags() *QuestionUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetFollowups sets the "followups" field.
func (_u *QuestionUpdateOne) SetFollowups(v []string) *QuestionUpdateOne {
	_u.mutation.SetFollowups(v)
	return _u
}

// AppendFollowups appends value to the "followups" field.
func (_u *QuestionUpdateOne) AppendFollowups(v []string) *QuestionUpdateOne {
	_u.mutation.AppendFollowups(v)
	return _u
}

// ClearFollowups clears the value of the "followups" field.
func (_u *QuestionUpdateOne) ClearFollowups() *QuestionUpdateOne {
	_u.mutation.ClearFollowups()
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionUpdateOne) SetQuestionType(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionType(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetExpectedTopics sets the "expected_topics" field.
func (_u *QuestionUpdateOne) SetExpectedTopics(v []string) *QuestionUpdateOne {
	_u.mutation.SetExpectedTopics(v)
	return _u
}

// AppendExpectedTopics appends value to the "expected_topics" field.
func (_u *QuestionUpdateOne) AppendExpectedTopics(v []string) *QuestionUpdateOne {
	_u.mutation.AppendExpectedTopics(v)
	return _u
}

// ClearExpectedTopics clears the value of the "expected_topics" field.
func (_u *QuestionUpdateOne) ClearExpectedTopics() *QuestionUpdateOne {
	_u.mutation.ClearExpectedTopics()
	return _u
}

// SetEvaluationFocus sets the "evaluation_focus" field.
func (_u *QuestionUpdateOne) SetEvaluationFocus(v []string) *QuestionUpdateOne {
	_u.mutation.SetEvaluationFocus(v)
	return _u
}

// AppendEvaluationFocus appends value to the "evaluation_focus" field.
func (_u *QuestionUpdateOne) AppendEvaluationFocus(v []string) *QuestionUpdateOne {
	_u.mutation.AppendEvaluationFocus(v)
	return _u
}

// ClearEvaluationFocus clears the value of the "evaluation_focus" field.
func (_u *QuestionUpdateOne) ClearEvaluationFocus() *QuestionUpdateOne {
	_u.mutation.ClearEvaluationFocus()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Track(); ok {
		if err := question.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "Question.track": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyStyle(); ok {
		if err := question.CompanyStyleValidator(v); err != nil {
			return &ValidationError{Name: "company_style", err: fmt.Errorf(`ent: validator failed for field "Question.company_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := question.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Question.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(question.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyStyle(); ok {
		_spec.SetField(question.FieldCompanyStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(question.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(question.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(question.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Followups(); ok {
		_spec.SetField(question.FieldFollowups, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFollowups(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldFollowups, value)
		})
	}
	if _u.mutation.FollowupsCleared() {
		_spec.ClearField(question.FieldFollowups, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedTopics(); ok {
		_spec.SetField(question.FieldExpectedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldExpectedTopics, value)
		})
	}
	if _u.mutation.ExpectedTopicsCleared() {
		_spec.ClearField(question.FieldExpectedTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.EvaluationFocus(); ok {
		_spec.SetField(question.FieldEvaluationFocus, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvaluationFocus(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldEvaluationFocus, value)
		})
	}
	if _u.mutation.EvaluationFocusCleared() {
		_spec.ClearField(question.FieldEvaluationFocus, field.TypeJSON)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
