// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervu/ent/askedquestion"
	"github.com/abhisek/intervu/ent/predicate"
)

// AskedQuestionUpdate is the builder for updating AskedQuestion entities.
type AskedQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *AskedQuestionMutation
}

// Where appends a list predicates to the AskedQuestionUpdate builder.
func (_u *AskedQuestionUpdate) Where(ps ...predicate.AskedQuestion) *AskedQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AskedQuestionUpdate) SetSessionID(v string) *AskedQuestionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AskedQuestionUpdate) SetNillableSessionID(v *string) *AskedQuestionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AskedQuestionUpdate) SetQuestionID(v string) *AskedQuestionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AskedQuestionUpdate) SetNillableQuestionID(v *string) *AskedQuestionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// Mutation returns the AskedQuestionMutation object of the builder.
func (_u *AskedQuestionUpdate) Mutation() *AskedQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AskedQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AskedQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AskedQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AskedQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AskedQuestionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := askedquestion.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AskedQuestion.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := askedquestion.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AskedQuestion.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AskedQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(askedquestion.Table, askedquestion.Columns, sqlgraph.NewFieldSpec(askedquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(askedquestion.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(askedquestion.FieldQuestionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{askedquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AskedQuestionUpdateOne is the builder for updating a single AskedQuestion entity.
type AskedQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AskedQuestionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AskedQuestionUpdateOne) SetSessionID(v string) *AskedQuestionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AskedQuestionUpdateOne) SetNillableSessionID(v *string) *AskedQuestionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AskedQuestionUpdateOne) SetQuestionID(v string) *AskedQuestionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AskedQuestionUpdateOne) SetNillableQuestionID(v *string) *AskedQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// Mutation returns the AskedQuestionMutation object of the builder.
func (_u *AskedQuestionUpdateOne) Mutation() *AskedQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AskedQuestionUpdate builder.
func (_u *AskedQuestionUpdateOne) Where(ps ...predicate.AskedQuestion) *AskedQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AskedQuestionUpdateOne) Select(field string, fields ...string) *AskedQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AskedQuestion entity.
func (_u *AskedQuestionUpdateOne) Save(ctx context.Context) (*AskedQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AskedQuestionUpdateOne) SaveX(ctx context.Context) *AskedQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AskedQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AskedQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AskedQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := askedquestion.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AskedQuestion.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := askedquestion.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AskedQuestion.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AskedQuestionUpdateOne) sqlSave(ctx context.Context) (_node *AskedQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(askedquestion.Table, askedquestion.Columns, sqlgraph.NewFieldSpec(askedquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AskedQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, askedquestion.FieldID)
		for _, f := range fields {
			if !askedquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != askedquestion.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(askedquestion.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(askedquestion.FieldQuestionID, field.TypeString, value)
	}
	_node = &AskedQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{askedquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
