// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervu/ent/askedquestion"
	"github.com/abhisek/intervu/ent/interviewmessage"
	"github.com/abhisek/intervu/ent/interviewsession"
	"github.com/abhisek/intervu/ent/llmrequestevent"
	"github.com/abhisek/intervu/ent/predicate"
	"github.com/abhisek/intervu/ent/question"
	"github.com/abhisek/intervu/ent/seenquestion"
	"github.com/abhisek/intervu/internal/session"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAskedQuestion    = "AskedQuestion"
	TypeInterviewMessage = "InterviewMessage"
	TypeInterviewSession = "InterviewSession"
	TypeLLMRequestEvent  = "LLMRequestEvent"
	TypeQuestion         = "Question"
	TypeSeenQuestion     = "SeenQuestion"
)

// AskedQuestionMutation represents an operation that mutates the AskedQuestion nodes in the graph.
type AskedQuestionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	question_id   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AskedQuestion, error)
	predicates    []predicate.AskedQuestion
}

var _ ent.Mutation = (*AskedQuestionMutation)(nil)

// askedquestionOption allows management of the mutation configuration using functional options.
type askedquestionOption func(*AskedQuestionMutation)

// newAskedQuestionMutation creates new mutation for the AskedQuestion entity.
func newAskedQuestionMutation(c config, op Op, opts ...askedquestionOption) *AskedQuestionMutation {
	m := &AskedQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeAskedQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAskedQuestionID sets the ID field of the mutation.
func withAskedQuestionID(id int) askedquestionOption {
	return func(m *AskedQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *AskedQuestion
		)
		m.oldValue = func(ctx context.Context) (*AskedQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AskedQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAskedQuestion sets the old AskedQuestion of the mutation.
func withAskedQuestion(node *AskedQuestion) askedquestionOption {
	return func(m *AskedQuestionMutation) {
		m.oldValue = func(context.Context) (*AskedQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AskedQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AskedQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AskedQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AskedQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AskedQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AskedQuestionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AskedQuestionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AskedQuestion entity.
// If the AskedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AskedQuestionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AskedQuestionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AskedQuestionMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AskedQuestionMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AskedQuestion entity.
// If the AskedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AskedQuestionMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AskedQuestionMutation) ResetQuestionID() {
	m.question_id = nil
}

// Where appends a list predicates to the AskedQuestionMutation builder.
func (m *AskedQuestionMutation) Where(ps ...predicate.AskedQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AskedQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AskedQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AskedQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AskedQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AskedQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AskedQuestion).
func (m *AskedQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AskedQuestionMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.session_id != nil {
		fields = append(fields, askedquestion.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, askedquestion.FieldQuestionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AskedQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case askedquestion.FieldSessionID:
		return m.SessionID()
	case askedquestion.FieldQuestionID:
		return m.QuestionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AskedQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case askedquestion.FieldSessionID:
		return m.OldSessionID(ctx)
	case askedquestion.FieldQuestionID:
		return m.OldQuestionID(ctx)
	}
	return nil, fmt.Errorf("unknown AskedQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AskedQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case askedquestion.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case askedquestion.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	}
	return fmt.Errorf("unknown AskedQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AskedQuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AskedQuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AskedQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AskedQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AskedQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AskedQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AskedQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AskedQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AskedQuestionMutation) ResetField(name string) error {
	switch name {
	case askedquestion.FieldSessionID:
		m.ResetSessionID()
		return nil
	case askedquestion.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	}
	return fmt.Errorf("unknown AskedQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AskedQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AskedQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AskedQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AskedQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AskedQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AskedQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AskedQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AskedQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AskedQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AskedQuestion edge %s", name)
}

// InterviewMessageMutation represents an operation that mutates the InterviewMessage nodes in the graph.
type InterviewMessageMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	role          *string
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InterviewMessage, error)
	predicates    []predicate.InterviewMessage
}

var _ ent.Mutation = (*InterviewMessageMutation)(nil)

// interviewmessageOption allows management of the mutation configuration using functional options.
type interviewmessageOption func(*InterviewMessageMutation)

// newInterviewMessageMutation creates new mutation for the InterviewMessage entity.
func newInterviewMessageMutation(c config, op Op, opts ...interviewmessageOption) *InterviewMessageMutation {
	m := &InterviewMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeInterviewMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterviewMessageID sets the ID field of the mutation.
func withInterviewMessageID(id int) interviewmessageOption {
	return func(m *InterviewMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *InterviewMessage
		)
		m.oldValue = func(ctx context.Context) (*InterviewMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterviewMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterviewMessage sets the old InterviewMessage of the mutation.
func withInterviewMessage(node *InterviewMessage) interviewmessageOption {
	return func(m *InterviewMessageMutation) {
		m.oldValue = func(context.Context) (*InterviewMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterviewMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterviewMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterviewMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterviewMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterviewMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *InterviewMessageMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InterviewMessageMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the InterviewMessage entity.
// If the InterviewMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InterviewMessageMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRole sets the "role" field.
func (m *InterviewMessageMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *InterviewMessageMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the InterviewMessage entity.
// If the InterviewMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMessageMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *InterviewMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *InterviewMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *InterviewMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the InterviewMessage entity.
// If the InterviewMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *InterviewMessageMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InterviewMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InterviewMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InterviewMessage entity.
// If the InterviewMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InterviewMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InterviewMessageMutation builder.
func (m *InterviewMessageMutation) Where(ps ...predicate.InterviewMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterviewMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterviewMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterviewMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterviewMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterviewMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterviewMessage).
func (m *InterviewMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterviewMessageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, interviewmessage.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, interviewmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, interviewmessage.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, interviewmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterviewMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interviewmessage.FieldSessionID:
		return m.SessionID()
	case interviewmessage.FieldRole:
		return m.Role()
	case interviewmessage.FieldContent:
		return m.Content()
	case interviewmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterviewMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interviewmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case interviewmessage.FieldRole:
		return m.OldRole(ctx)
	case interviewmessage.FieldContent:
		return m.OldContent(ctx)
	case interviewmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InterviewMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interviewmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case interviewmessage.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case interviewmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case interviewmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterviewMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterviewMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InterviewMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterviewMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterviewMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterviewMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InterviewMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterviewMessageMutation) ResetField(name string) error {
	switch name {
	case interviewmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case interviewmessage.FieldRole:
		m.ResetRole()
		return nil
	case interviewmessage.FieldContent:
		m.ResetContent()
		return nil
	case interviewmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InterviewMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterviewMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterviewMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterviewMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterviewMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterviewMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterviewMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterviewMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InterviewMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterviewMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InterviewMessage edge %s", name)
}

// InterviewSessionMutation represents an operation that mutates the InterviewSession nodes in the graph.
type InterviewSessionMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	user_id                        *string
	role                           *string
	track                          *string
	company_style                  *string
	difficulty                     *string
	difficulty_current             *string
	adaptive                       *bool
	stage                          *string
	questions_asked_count          *int
	addquestions_asked_count       *int
	followups_used                 *int
	addfollowups_used              *int
	max_questions                  *int
	addmax_questions               *int
	max_followups_per_question     *int
	addmax_followups_per_question  *int
	behavioral_questions_target    *int
	addbehavioral_questions_target *int
	current_question_id            *string
	skill_state                    **session.State
	created_at                     *time.Time
	updated_at                     *time.Time
	clearedFields                  map[string]struct{}
	done                           bool
	oldValue                       func(context.Context) (*InterviewSession, error)
	predicates                     []predicate.InterviewSession
}

var _ ent.Mutation = (*InterviewSessionMutation)(nil)

// interviewsessionOption allows management of the mutation configuration using functional options.
type interviewsessionOption func(*InterviewSessionMutation)

// newInterviewSessionMutation creates new mutation for the InterviewSession entity.
func newInterviewSessionMutation(c config, op Op, opts ...interviewsessionOption) *InterviewSessionMutation {
	m := &InterviewSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeInterviewSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterviewSessionID sets the ID field of the mutation.
func withInterviewSessionID(id string) interviewsessionOption {
	return func(m *InterviewSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *InterviewSession
		)
		m.oldValue = func(ctx context.Context) (*InterviewSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterviewSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterviewSession sets the old InterviewSession of the mutation.
func withInterviewSession(node *InterviewSession) interviewsessionOption {
	return func(m *InterviewSessionMutation) {
		m.oldValue = func(context.Context) (*InterviewSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterviewSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterviewSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InterviewSession entities.
func (m *InterviewSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterviewSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterviewSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterviewSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InterviewSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InterviewSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InterviewSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetRole sets the "role" field.
func (m *InterviewSessionMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *InterviewSessionMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *InterviewSessionMutation) ResetRole() {
	m.role = nil
}

// SetTrack sets the "track" field.
func (m *InterviewSessionMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *InterviewSessionMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *InterviewSessionMutation) ResetTrack() {
	m.track = nil
}

// SetCompanyStyle sets the "company_style" field.
func (m *InterviewSessionMutation) SetCompanyStyle(s string) {
	m.company_style = &s
}

// CompanyStyle returns the value of the "company_style" field in the mutation.
func (m *InterviewSessionMutation) CompanyStyle() (r string, exists bool) {
	v := m.company_style
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyStyle returns the old "company_style" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldCompanyStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyStyle: %w", err)
	}
	return oldValue.CompanyStyle, nil
}

// ResetCompanyStyle resets all changes to the "company_style" field.
func (m *InterviewSessionMutation) ResetCompanyStyle() {
	m.company_style = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *InterviewSessionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *InterviewSessionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *InterviewSessionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetDifficultyCurrent sets the "difficulty_current" field.
func (m *InterviewSessionMutation) SetDifficultyCurrent(s string) {
	m.difficulty_current = &s
}

// DifficultyCurrent returns the value of the "difficulty_current" field in the mutation.
func (m *InterviewSessionMutation) DifficultyCurrent() (r string, exists bool) {
	v := m.difficulty_current
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyCurrent returns the old "difficulty_current" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldDifficultyCurrent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyCurrent: %w", err)
	}
	return oldValue.DifficultyCurrent, nil
}

// ResetDifficultyCurrent resets all changes to the "difficulty_current" field.
func (m *InterviewSessionMutation) ResetDifficultyCurrent() {
	m.difficulty_current = nil
}

// SetAdaptive sets the "adaptive" field.
func (m *InterviewSessionMutation) SetAdaptive(b bool) {
	m.adaptive = &b
}

// Adaptive returns the value of the "adaptive" field in the mutation.
func (m *InterviewSessionMutation) Adaptive() (r bool, exists bool) {
	v := m.adaptive
	if v == nil {
		return
	}
	return *v, true
}

// OldAdaptive returns the old "adaptive" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldAdaptive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdaptive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdaptive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdaptive: %w", err)
	}
	return oldValue.Adaptive, nil
}

// ResetAdaptive resets all changes to the "adaptive" field.
func (m *InterviewSessionMutation) ResetAdaptive() {
	m.adaptive = nil
}

// SetStage sets the "stage" field.
func (m *InterviewSessionMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *InterviewSessionMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *InterviewSessionMutation) ResetStage() {
	m.stage = nil
}

// SetQuestionsAskedCount sets the "questions_asked_count" field.
func (m *InterviewSessionMutation) SetQuestionsAskedCount(i int) {
	m.questions_asked_count = &i
	m.addquestions_asked_count = nil
}

// QuestionsAskedCount returns the value of the "questions_asked_count" field in the mutation.
func (m *InterviewSessionMutation) QuestionsAskedCount() (r int, exists bool) {
	v := m.questions_asked_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAskedCount returns the old "questions_asked_count" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldQuestionsAskedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAskedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAskedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAskedCount: %w", err)
	}
	return oldValue.QuestionsAskedCount, nil
}

// AddQuestionsAskedCount adds i to the "questions_asked_count" field.
func (m *InterviewSessionMutation) AddQuestionsAskedCount(i int) {
	if m.addquestions_asked_count != nil {
		*m.addquestions_asked_count += i
	} else {
		m.addquestions_asked_count = &i
	}
}

// AddedQuestionsAskedCount returns the value that was added to the "questions_asked_count" field in this mutation.
func (m *InterviewSessionMutation) AddedQuestionsAskedCount() (r int, exists bool) {
	v := m.addquestions_asked_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAskedCount resets all changes to the "questions_asked_count" field.
func (m *InterviewSessionMutation) ResetQuestionsAskedCount() {
	m.questions_asked_count = nil
	m.addquestions_asked_count = nil
}

// SetFollowupsUsed sets the "followups_used" field.
func (m *InterviewSessionMutation) SetFollowupsUsed(i int) {
	m.followups_used = &i
	m.addfollowups_used = nil
}

// FollowupsUsed returns the value of the "followups_used" field in the mutation.
func (m *InterviewSessionMutation) FollowupsUsed() (r int, exists bool) {
	v := m.followups_used
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowupsUsed returns the old "followups_used" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldFollowupsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowupsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowupsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowupsUsed: %w", err)
	}
	return oldValue.FollowupsUsed, nil
}

// AddFollowupsUsed adds i to the "followups_used" field.
func (m *InterviewSessionMutation) AddFollowupsUsed(i int) {
	if m.addfollowups_used != nil {
		*m.addfollowups_used += i
	} else {
		m.addfollowups_used = &i
	}
}

// AddedFollowupsUsed returns the value that was added to the "followups_used" field in this mutation.
func (m *InterviewSessionMutation) AddedFollowupsUsed() (r int, exists bool) {
	v := m.addfollowups_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetFollowupsUsed resets all changes to the "followups_used" field.
func (m *InterviewSessionMutation) ResetFollowupsUsed() {
	m.followups_used = nil
	m.addfollowups_used = nil
}

// SetMaxQuestions sets the "max_questions" field.
func (m *InterviewSessionMutation) SetMaxQuestions(i int) {
	m.max_questions = &i
	m.addmax_questions = nil
}

// MaxQuestions returns the value of the "max_questions" field in the mutation.
func (m *InterviewSessionMutation) MaxQuestions() (r int, exists bool) {
	v := m.max_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxQuestions returns the old "max_questions" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldMaxQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxQuestions: %w", err)
	}
	return oldValue.MaxQuestions, nil
}

// AddMaxQuestions adds i to the "max_questions" field.
func (m *InterviewSessionMutation) AddMaxQuestions(i int) {
	if m.addmax_questions != nil {
		*m.addmax_questions += i
	} else {
		m.addmax_questions = &i
	}
}

// AddedMaxQuestions returns the value that was added to the "max_questions" field in this mutation.
func (m *InterviewSessionMutation) AddedMaxQuestions() (r int, exists bool) {
	v := m.addmax_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxQuestions resets all changes to the "max_questions" field.
func (m *InterviewSessionMutation) ResetMaxQuestions() {
	m.max_questions = nil
	m.addmax_questions = nil
}

// SetMaxFollowupsPerQuestion sets the "max_followups_per_question" field.
func (m *InterviewSessionMutation) SetMaxFollowupsPerQuestion(i int) {
	m.max_followups_per_question = &i
	m.addmax_followups_per_question = nil
}

// MaxFollowupsPerQuestion returns the value of the "max_followups_per_question" field in the mutation.
func (m *InterviewSessionMutation) MaxFollowupsPerQuestion() (r int, exists bool) {
	v := m.max_followups_per_question
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxFollowupsPerQuestion returns the old "max_followups_per_question" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldMaxFollowupsPerQuestion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxFollowupsPerQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxFollowupsPerQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxFollowupsPerQuestion: %w", err)
	}
	return oldValue.MaxFollowupsPerQuestion, nil
}

// AddMaxFollowupsPerQuestion adds i to the "max_followups_per_question" field.
func (m *InterviewSessionMutation) AddMaxFollowupsPerQuestion(i int) {
	if m.addmax_followups_per_question != nil {
		*m.addmax_followups_per_question += i
	} else {
		m.addmax_followups_per_question = &i
	}
}

// AddedMaxFollowupsPerQuestion returns the value that was added to the "max_followups_per_question" field in this mutation.
func (m *InterviewSessionMutation) AddedMaxFollowupsPerQuestion() (r int, exists bool) {
	v := m.addmax_followups_per_question
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxFollowupsPerQuestion resets all changes to the "max_followups_per_question" field.
func (m *InterviewSessionMutation) ResetMaxFollowupsPerQuestion() {
	m.max_followups_per_question = nil
	m.addmax_followups_per_question = nil
}

// SetBehavioralQuestionsTarget sets the "behavioral_questions_target" field.
func (m *InterviewSessionMutation) SetBehavioralQuestionsTarget(i int) {
	m.behavioral_questions_target = &i
	m.addbehavioral_questions_target = nil
}

// BehavioralQuestionsTarget returns the value of the "behavioral_questions_target" field in the mutation.
func (m *InterviewSessionMutation) BehavioralQuestionsTarget() (r int, exists bool) {
	v := m.behavioral_questions_target
	if v == nil {
		return
	}
	return *v, true
}

// OldBehavioralQuestionsTarget returns the old "behavioral_questions_target" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldBehavioralQuestionsTarget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehavioralQuestionsTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehavioralQuestionsTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehavioralQuestionsTarget: %w", err)
	}
	return oldValue.BehavioralQuestionsTarget, nil
}

// AddBehavioralQuestionsTarget adds i to the "behavioral_questions_target" field.
func (m *InterviewSessionMutation) AddBehavioralQuestionsTarget(i int) {
	if m.addbehavioral_questions_target != nil {
		*m.addbehavioral_questions_target += i
	} else {
		m.addbehavioral_questions_target = &i
	}
}

// AddedBehavioralQuestionsTarget returns the value that was added to the "behavioral_questions_target" field in this mutation.
func (m *InterviewSessionMutation) AddedBehavioralQuestionsTarget() (r int, exists bool) {
	v := m.addbehavioral_questions_target
	if v == nil {
		return
	}
	return *v, true
}

// ResetBehavioralQuestionsTarget resets all changes to the "behavioral_questions_target" field.
func (m *InterviewSessionMutation) ResetBehavioralQuestionsTarget() {
	m.behavioral_questions_target = nil
	m.addbehavioral_questions_target = nil
}

// SetCurrentQuestionID sets the "current_question_id" field.
func (m *InterviewSessionMutation) SetCurrentQuestionID(s string) {
	m.current_question_id = &s
}

// CurrentQuestionID returns the value of the "current_question_id" field in the mutation.
func (m *InterviewSessionMutation) CurrentQuestionID() (r string, exists bool) {
	v := m.current_question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentQuestionID returns the old "current_question_id" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldCurrentQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentQuestionID: %w", err)
	}
	return oldValue.CurrentQuestionID, nil
}

// ClearCurrentQuestionID clears the value of the "current_question_id" field.
func (m *InterviewSessionMutation) ClearCurrentQuestionID() {
	m.current_question_id = nil
	m.clearedFields[interviewsession.FieldCurrentQuestionID] = struct{}{}
}

// CurrentQuestionIDCleared returns if the "current_question_id" field was cleared in this mutation.
func (m *InterviewSessionMutation) CurrentQuestionIDCleared() bool {
	_, ok := m.clearedFields[interviewsession.FieldCurrentQuestionID]
	return ok
}

// ResetCurrentQuestionID resets all changes to the "current_question_id" field.
func (m *InterviewSessionMutation) ResetCurrentQuestionID() {
	m.current_question_id = nil
	delete(m.clearedFields, interviewsession.FieldCurrentQuestionID)
}

// SetSkillState sets the "skill_state" field.
func (m *InterviewSessionMutation) SetSkillState(s *session.State) {
	m.skill_state = &s
}

// SkillState returns the value of the "skill_state" field in the mutation.
func (m *InterviewSessionMutation) SkillState() (r *session.State, exists bool) {
	v := m.skill_state
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillState returns the old "skill_state" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldSkillState(ctx context.Context) (v *session.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillState: %w", err)
	}
	return oldValue.SkillState, nil
}

// ResetSkillState resets all changes to the "skill_state" field.
func (m *InterviewSessionMutation) ResetSkillState() {
	m.skill_state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InterviewSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InterviewSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InterviewSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InterviewSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InterviewSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InterviewSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the InterviewSessionMutation builder.
func (m *InterviewSessionMutation) Where(ps ...predicate.InterviewSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterviewSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterviewSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterviewSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterviewSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterviewSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterviewSession).
func (m *InterviewSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterviewSessionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.user_id != nil {
		fields = append(fields, interviewsession.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, interviewsession.FieldRole)
	}
	if m.track != nil {
		fields = append(fields, interviewsession.FieldTrack)
	}
	if m.company_style != nil {
		fields = append(fields, interviewsession.FieldCompanyStyle)
	}
	if m.difficulty != nil {
		fields = append(fields, interviewsession.FieldDifficulty)
	}
	if m.difficulty_current != nil {
		fields = append(fields, interviewsession.FieldDifficultyCurrent)
	}
	if m.adaptive != nil {
		fields = append(fields, interviewsession.FieldAdaptive)
	}
	if m.stage != nil {
		fields = append(fields, interviewsession.FieldStage)
	}
	if m.questions_asked_count != nil {
		fields = append(fields, interviewsession.FieldQuestionsAskedCount)
	}
	if m.followups_used != nil {
		fields = append(fields, interviewsession.FieldFollowupsUsed)
	}
	if m.max_questions != nil {
		fields = append(fields, interviewsession.FieldMaxQuestions)
	}
	if m.max_followups_per_question != nil {
		fields = append(fields, interviewsession.FieldMaxFollowupsPerQuestion)
	}
	if m.behavioral_questions_target != nil {
		fields = append(fields, interviewsession.FieldBehavioralQuestionsTarget)
	}
	if m.current_question_id != nil {
		fields = append(fields, interviewsession.FieldCurrentQuestionID)
	}
	if m.skill_state != nil {
		fields = append(fields, interviewsession.FieldSkillState)
	}
	if m.created_at != nil {
		fields = append(fields, interviewsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, interviewsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterviewSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interviewsession.FieldUserID:
		return m.UserID()
	case interviewsession.FieldRole:
		return m.Role()
	case interviewsession.FieldTrack:
		return m.Track()
	case interviewsession.FieldCompanyStyle:
		return m.CompanyStyle()
	case interviewsession.FieldDifficulty:
		return m.Difficulty()
	case interviewsession.FieldDifficultyCurrent:
		return m.DifficultyCurrent()
	case interviewsession.FieldAdaptive:
		return m.Adaptive()
	case interviewsession.FieldStage:
		return m.Stage()
	case interviewsession.FieldQuestionsAskedCount:
		return m.QuestionsAskedCount()
	case interviewsession.FieldFollowupsUsed:
		return m.FollowupsUsed()
	case interviewsession.FieldMaxQuestions:
		return m.MaxQuestions()
	case interviewsession.FieldMaxFollowupsPerQuestion:
		return m.MaxFollowupsPerQuestion()
	case interviewsession.FieldBehavioralQuestionsTarget:
		return m.BehavioralQuestionsTarget()
	case interviewsession.FieldCurrentQuestionID:
		return m.CurrentQuestionID()
	case interviewsession.FieldSkillState:
		return m.SkillState()
	case interviewsession.FieldCreatedAt:
		return m.CreatedAt()
	case interviewsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterviewSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interviewsession.FieldUserID:
		return m.OldUserID(ctx)
	case interviewsession.FieldRole:
		return m.OldRole(ctx)
	case interviewsession.FieldTrack:
		return m.OldTrack(ctx)
	case interviewsession.FieldCompanyStyle:
		return m.OldCompanyStyle(ctx)
	case interviewsession.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case interviewsession.FieldDifficultyCurrent:
		return m.OldDifficultyCurrent(ctx)
	case interviewsession.FieldAdaptive:
		return m.OldAdaptive(ctx)
	case interviewsession.FieldStage:
		return m.OldStage(ctx)
	case interviewsession.FieldQuestionsAskedCount:
		return m.OldQuestionsAskedCount(ctx)
	case interviewsession.FieldFollowupsUsed:
		return m.OldFollowupsUsed(ctx)
	case interviewsession.FieldMaxQuestions:
		return m.OldMaxQuestions(ctx)
	case interviewsession.FieldMaxFollowupsPerQuestion:
		return m.OldMaxFollowupsPerQuestion(ctx)
	case interviewsession.FieldBehavioralQuestionsTarget:
		return m.OldBehavioralQuestionsTarget(ctx)
	case interviewsession.FieldCurrentQuestionID:
		return m.OldCurrentQuestionID(ctx)
	case interviewsession.FieldSkillState:
		return m.OldSkillState(ctx)
	case interviewsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case interviewsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InterviewSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interviewsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interviewsession.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case interviewsession.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case interviewsession.FieldCompanyStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyStyle(v)
		return nil
	case interviewsession.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case interviewsession.FieldDifficultyCurrent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyCurrent(v)
		return nil
	case interviewsession.FieldAdaptive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdaptive(v)
		return nil
	case interviewsession.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case interviewsession.FieldQuestionsAskedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAskedCount(v)
		return nil
	case interviewsession.FieldFollowupsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowupsUsed(v)
		return nil
	case interviewsession.FieldMaxQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxQuestions(v)
		return nil
	case interviewsession.FieldMaxFollowupsPerQuestion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxFollowupsPerQuestion(v)
		return nil
	case interviewsession.FieldBehavioralQuestionsTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehavioralQuestionsTarget(v)
		return nil
	case interviewsession.FieldCurrentQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentQuestionID(v)
		return nil
	case interviewsession.FieldSkillState:
		v, ok := value.(*session.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillState(v)
		return nil
	case interviewsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case interviewsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterviewSessionMutation) AddedFields() []string {
	var fields []string
	if m.addquestions_asked_count != nil {
		fields = append(fields, interviewsession.FieldQuestionsAskedCount)
	}
	if m.addfollowups_used != nil {
		fields = append(fields, interviewsession.FieldFollowupsUsed)
	}
	if m.addmax_questions != nil {
		fields = append(fields, interviewsession.FieldMaxQuestions)
	}
	if m.addmax_followups_per_question != nil {
		fields = append(fields, interviewsession.FieldMaxFollowupsPerQuestion)
	}
	if m.addbehavioral_questions_target != nil {
		fields = append(fields, interviewsession.FieldBehavioralQuestionsTarget)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterviewSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interviewsession.FieldQuestionsAskedCount:
		return m.AddedQuestionsAskedCount()
	case interviewsession.FieldFollowupsUsed:
		return m.AddedFollowupsUsed()
	case interviewsession.FieldMaxQuestions:
		return m.AddedMaxQuestions()
	case interviewsession.FieldMaxFollowupsPerQuestion:
		return m.AddedMaxFollowupsPerQuestion()
	case interviewsession.FieldBehavioralQuestionsTarget:
		return m.AddedBehavioralQuestionsTarget()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interviewsession.FieldQuestionsAskedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAskedCount(v)
		return nil
	case interviewsession.FieldFollowupsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFollowupsUsed(v)
		return nil
	case interviewsession.FieldMaxQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxQuestions(v)
		return nil
	case interviewsession.FieldMaxFollowupsPerQuestion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxFollowupsPerQuestion(v)
		return nil
	case interviewsession.FieldBehavioralQuestionsTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBehavioralQuestionsTarget(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterviewSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interviewsession.FieldCurrentQuestionID) {
		fields = append(fields, interviewsession.FieldCurrentQuestionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterviewSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterviewSessionMutation) ClearField(name string) error {
	switch name {
	case interviewsession.FieldCurrentQuestionID:
		m.ClearCurrentQuestionID()
		return nil
	}
	return fmt.Errorf("unknown InterviewSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterviewSessionMutation) ResetField(name string) error {
	switch name {
	case interviewsession.FieldUserID:
		m.ResetUserID()
		return nil
	case interviewsession.FieldRole:
		m.ResetRole()
		return nil
	case interviewsession.FieldTrack:
		m.ResetTrack()
		return nil
	case interviewsession.FieldCompanyStyle:
		m.ResetCompanyStyle()
		return nil
	case interviewsession.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case interviewsession.FieldDifficultyCurrent:
		m.ResetDifficultyCurrent()
		return nil
	case interviewsession.FieldAdaptive:
		m.ResetAdaptive()
		return nil
	case interviewsession.FieldStage:
		m.ResetStage()
		return nil
	case interviewsession.FieldQuestionsAskedCount:
		m.ResetQuestionsAskedCount()
		return nil
	case interviewsession.FieldFollowupsUsed:
		m.ResetFollowupsUsed()
		return nil
	case interviewsession.FieldMaxQuestions:
		m.ResetMaxQuestions()
		return nil
	case interviewsession.FieldMaxFollowupsPerQuestion:
		m.ResetMaxFollowupsPerQuestion()
		return nil
	case interviewsession.FieldBehavioralQuestionsTarget:
		m.ResetBehavioralQuestionsTarget()
		return nil
	case interviewsession.FieldCurrentQuestionID:
		m.ResetCurrentQuestionID()
		return nil
	case interviewsession.FieldSkillState:
		m.ResetSkillState()
		return nil
	case interviewsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case interviewsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InterviewSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterviewSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterviewSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterviewSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterviewSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterviewSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterviewSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterviewSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InterviewSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterviewSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InterviewSession edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMRequestEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmrequestevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMRequestEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmrequestevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmrequestevent.FieldErrorMessage)
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmrequestevent.FieldErrorMessage) {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	switch name {
	case llmrequestevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	track                  *string
	company_style          *string
	difficulty             *string
	title                  *string
	prompt                 *string
	tags                   *[]string
	appendtags             []string
	followups              *[]string
	appendfollowups        []string
	question_type          *string
	expected_topics        *[]string
	appendexpected_topics  []string
	evaluation_focus       *[]string
	appendevaluation_focus []string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Question, error)
	predicates             []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrack sets the "track" field.
func (m *QuestionMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *QuestionMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *QuestionMutation) ResetTrack() {
	m.track = nil
}

// SetCompanyStyle sets the "company_style" field.
func (m *QuestionMutation) SetCompanyStyle(s string) {
	m.company_style = &s
}

// CompanyStyle returns the value of the "company_style" field in the mutation.
func (m *QuestionMutation) CompanyStyle() (r string, exists bool) {
	v := m.company_style
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyStyle returns the old "company_style" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCompanyStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyStyle: %w", err)
	}
	return oldValue.CompanyStyle, nil
}

// ResetCompanyStyle resets all changes to the "company_style" field.
func (m *QuestionMutation) ResetCompanyStyle() {
	m.company_style = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetTitle sets the "title" field.
func (m *QuestionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *QuestionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *QuestionMutation) ResetTitle() {
	m.title = nil
}

// SetPrompt sets the "prompt" field.
func (m *QuestionMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *QuestionMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *QuestionMutation) ResetPrompt() {
	m.prompt = nil
}

// SetTags sets the "tags" field.
func (m *QuestionMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *QuestionMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *QuestionMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *QuestionMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *QuestionMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[question.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *QuestionMutation) TagsCleared() bool {
	_, ok := m.clearedFields[question.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *QuestionMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, question.FieldTags)
}

// SetFollowups sets the "followups" field.
func (m *QuestionMutation) SetFollowups(s []string) {
	m.followups = &s
	m.appendfollowups = nil
}

// Followups returns the value of the "followups" field in the mutation.
func (m *QuestionMutation) Followups() (r []string, exists bool) {
	v := m.followups
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowups returns the old "followups" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldFollowups(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowups is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowups requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowups: %w", err)
	}
	return oldValue.Followups, nil
}

// AppendFollowups adds s to the "followups" field.
func (m *QuestionMutation) AppendFollowups(s []string) {
	m.appendfollowups = append(m.appendfollowups, s...)
}

// AppendedFollowups returns the list of values that were appended to the "followups" field in this mutation.
func (m *QuestionMutation) AppendedFollowups() ([]string, bool) {
	if len(m.appendfollowups) == 0 {
		return nil, false
	}
	return m.appendfollowups, true
}

// ClearFollowups clears the value of the "followups" field.
func (m *QuestionMutation) ClearFollowups() {
	m.followups = nil
	m.appendfollowups = nil
	m.clearedFields[question.FieldFollowups] = struct{}{}
}

// FollowupsCleared returns if the "followups" field was cleared in this mutation.
func (m *QuestionMutation) FollowupsCleared() bool {
	_, ok := m.clearedFields[question.FieldFollowups]
	return ok
}

// ResetFollowups resets all changes to the "followups" field.
func (m *QuestionMutation) ResetFollowups() {
	m.followups = nil
	m.appendfollowups = nil
	delete(m.clearedFields, question.FieldFollowups)
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetExpectedTopics sets the "expected_topics" field.
func (m *QuestionMutation) SetExpectedTopics(s []string) {
	m.expected_topics = &s
	m.appendexpected_topics = nil
}

// ExpectedTopics returns the value of the "expected_topics" field in the mutation.
func (m *QuestionMutation) ExpectedTopics() (r []string, exists bool) {
	v := m.expected_topics
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedTopics returns the old "expected_topics" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExpectedTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedTopics: %w", err)
	}
	return oldValue.ExpectedTopics, nil
}

// AppendExpectedTopics adds s to the "expected_topics" field.
func (m *QuestionMutation) AppendExpectedTopics(s []string) {
	m.appendexpected_topics = append(m.appendexpected_topics, s...)
}

// AppendedExpectedTopics returns the list of values that were appended to the "expected_topics" field in this mutation.
func (m *QuestionMutation) AppendedExpectedTopics() ([]string, bool) {
	if len(m.appendexpected_topics) == 0 {
		return nil, false
	}
	return m.appendexpected_topics, true
}

// ClearExpectedTopics clears the value of the "expected_topics" field.
func (m *QuestionMutation) ClearExpectedTopics() {
	m.expected_topics = nil
	m.appendexpected_topics = nil
	m.clearedFields[question.FieldExpectedTopics] = struct{}{}
}

// ExpectedTopicsCleared returns if the "expected_topics" field was cleared in this mutation.
func (m *QuestionMutation) ExpectedTopicsCleared() bool {
	_, ok := m.clearedFields[question.FieldExpectedTopics]
	return ok
}

// ResetExpectedTopics resets all changes to the "expected_topics" field.
func (m *QuestionMutation) ResetExpectedTopics() {
	m.expected_topics = nil
	m.appendexpected_topics = nil
	delete(m.clearedFields, question.FieldExpectedTopics)
}

// SetEvaluationFocus sets the "evaluation_focus" field.
func (m *QuestionMutation) SetEvaluationFocus(s []string) {
	m.evaluation_focus = &s
	m.appendevaluation_focus = nil
}

// EvaluationFocus returns the value of the "evaluation_focus" field in the mutation.
func (m *QuestionMutation) EvaluationFocus() (r []string, exists bool) {
	v := m.evaluation_focus
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationFocus returns the old "evaluation_focus" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldEvaluationFocus(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationFocus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationFocus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationFocus: %w", err)
	}
	return oldValue.EvaluationFocus, nil
}

// AppendEvaluationFocus adds s to the "evaluation_focus" field.
func (m *QuestionMutation) AppendEvaluationFocus(s []string) {
	m.appendevaluation_focus = append(m.appendevaluation_focus, s...)
}

// AppendedEvaluationFocus returns the list of values that were appended to the "evaluation_focus" field in this mutation.
func (m *QuestionMutation) AppendedEvaluationFocus() ([]string, bool) {
	if len(m.appendevaluation_focus) == 0 {
		return nil, false
	}
	return m.appendevaluation_focus, true
}

// ClearEvaluationFocus clears the value of the "evaluation_focus" field.
func (m *QuestionMutation) ClearEvaluationFocus() {
	m.evaluation_focus = nil
	m.appendevaluation_focus = nil
	m.clearedFields[question.FieldEvaluationFocus] = struct{}{}
}

// EvaluationFocusCleared returns if the "evaluation_focus" field was cleared in this mutation.
func (m *QuestionMutation) EvaluationFocusCleared() bool {
	_, ok := m.clearedFields[question.FieldEvaluationFocus]
	return ok
}

// ResetEvaluationFocus resets all changes to the "evaluation_focus" field.
func (m *QuestionMutation) ResetEvaluationFocus() {
	m.evaluation_focus = nil
	m.appendevaluation_focus = nil
	delete(m.clearedFields, question.FieldEvaluationFocus)
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.track != nil {
		fields = append(fields, question.FieldTrack)
	}
	if m.company_style != nil {
		fields = append(fields, question.FieldCompanyStyle)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.title != nil {
		fields = append(fields, question.FieldTitle)
	}
	if m.prompt != nil {
		fields = append(fields, question.FieldPrompt)
	}
	if m.tags != nil {
		fields = append(fields, question.FieldTags)
	}
	if m.followups != nil {
		fields = append(fields, question.FieldFollowups)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.expected_topics != nil {
		fields = append(fields, question.FieldExpectedTopics)
	}
	if m.evaluation_focus != nil {
		fields = append(fields, question.FieldEvaluationFocus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldTrack:
		return m.Track()
	case question.FieldCompanyStyle:
		return m.CompanyStyle()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldTitle:
		return m.Title()
	case question.FieldPrompt:
		return m.Prompt()
	case question.FieldTags:
		return m.Tags()
	case question.FieldFollowups:
		return m.Followups()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldExpectedTopics:
		return m.ExpectedTopics()
	case question.FieldEvaluationFocus:
		return m.EvaluationFocus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldTrack:
		return m.OldTrack(ctx)
	case question.FieldCompanyStyle:
		return m.OldCompanyStyle(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldTitle:
		return m.OldTitle(ctx)
	case question.FieldPrompt:
		return m.OldPrompt(ctx)
	case question.FieldTags:
		return m.OldTags(ctx)
	case question.FieldFollowups:
		return m.OldFollowups(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldExpectedTopics:
		return m.OldExpectedTopics(ctx)
	case question.FieldEvaluationFocus:
		return m.OldEvaluationFocus(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case question.FieldCompanyStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyStyle(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case question.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case question.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case question.FieldFollowups:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowups(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldExpectedTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedTopics(v)
		return nil
	case question.FieldEvaluationFocus:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationFocus(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldTags) {
		fields = append(fields, question.FieldTags)
	}
	if m.FieldCleared(question.FieldFollowups) {
		fields = append(fields, question.FieldFollowups)
	}
	if m.FieldCleared(question.FieldExpectedTopics) {
		fields = append(fields, question.FieldExpectedTopics)
	}
	if m.FieldCleared(question.FieldEvaluationFocus) {
		fields = append(fields, question.FieldEvaluationFocus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldTags:
		m.ClearTags()
		return nil
	case question.FieldFollowups:
		m.ClearFollowups()
		return nil
	case question.FieldExpectedTopics:
		m.ClearExpectedTopics()
		return nil
	case question.FieldEvaluationFocus:
		m.ClearEvaluationFocus()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldTrack:
		m.ResetTrack()
		return nil
	case question.FieldCompanyStyle:
		m.ResetCompanyStyle()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldTitle:
		m.ResetTitle()
		return nil
	case question.FieldPrompt:
		m.ResetPrompt()
		return nil
	case question.FieldTags:
		m.ResetTags()
		return nil
	case question.FieldFollowups:
		m.ResetFollowups()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldExpectedTopics:
		m.ResetExpectedTopics()
		return nil
	case question.FieldEvaluationFocus:
		m.ResetEvaluationFocus()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// SeenQuestionMutation represents an operation that mutates the SeenQuestion nodes in the graph.
type SeenQuestionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	question_id   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SeenQuestion, error)
	predicates    []predicate.SeenQuestion
}

var _ ent.Mutation = (*SeenQuestionMutation)(nil)

// seenquestionOption allows management of the mutation configuration using functional options.
type seenquestionOption func(*SeenQuestionMutation)

// newSeenQuestionMutation creates new mutation for the SeenQuestion entity.
func newSeenQuestionMutation(c config, op Op, opts ...seenquestionOption) *SeenQuestionMutation {
	m := &SeenQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeSeenQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSeenQuestionID sets the ID field of the mutation.
func withSeenQuestionID(id int) seenquestionOption {
	return func(m *SeenQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *SeenQuestion
		)
		m.oldValue = func(ctx context.Context) (*SeenQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SeenQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSeenQuestion sets the old SeenQuestion of the mutation.
func withSeenQuestion(node *SeenQuestion) seenquestionOption {
	return func(m *SeenQuestionMutation) {
		m.oldValue = func(context.Context) (*SeenQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SeenQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SeenQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SeenQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SeenQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SeenQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SeenQuestionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SeenQuestionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SeenQuestion entity.
// If the SeenQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeenQuestionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SeenQuestionMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *SeenQuestionMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *SeenQuestionMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the SeenQuestion entity.
// If the SeenQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeenQuestionMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *SeenQuestionMutation) ResetQuestionID() {
	m.question_id = nil
}

// Where appends a list predicates to the SeenQuestionMutation builder.
func (m *SeenQuestionMutation) Where(ps ...predicate.SeenQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SeenQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SeenQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SeenQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SeenQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SeenQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SeenQuestion).
func (m *SeenQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SeenQuestionMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.user_id != nil {
		fields = append(fields, seenquestion.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, seenquestion.FieldQuestionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SeenQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case seenquestion.FieldUserID:
		return m.UserID()
	case seenquestion.FieldQuestionID:
		return m.QuestionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SeenQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case seenquestion.FieldUserID:
		return m.OldUserID(ctx)
	case seenquestion.FieldQuestionID:
		return m.OldQuestionID(ctx)
	}
	return nil, fmt.Errorf("unknown SeenQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeenQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case seenquestion.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case seenquestion.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	}
	return fmt.Errorf("unknown SeenQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SeenQuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SeenQuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeenQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SeenQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SeenQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SeenQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SeenQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SeenQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SeenQuestionMutation) ResetField(name string) error {
	switch name {
	case seenquestion.FieldUserID:
		m.ResetUserID()
		return nil
	case seenquestion.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	}
	return fmt.Errorf("unknown SeenQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SeenQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SeenQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SeenQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SeenQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SeenQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SeenQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SeenQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SeenQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SeenQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SeenQuestion edge %s", name)
}
