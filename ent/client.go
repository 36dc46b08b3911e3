// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/intervu/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervu/ent/askedquestion"
	"github.com/abhisek/intervu/ent/interviewmessage"
	"github.com/abhisek/intervu/ent/interviewsession"
	"github.com/abhisek/intervu/ent/llmrequestevent"
	"github.com/abhisek/intervu/ent/question"
	"github.com/abhisek/intervu/ent/seenquestion"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AskedQuestion is the client for interacting with the AskedQuestion builders.
	AskedQuestion *AskedQuestionClient
	// InterviewMessage is the client for interacting with the InterviewMessage builders.
	InterviewMessage *InterviewMessageClient
	// InterviewSession is the client for interacting with the InterviewSession builders.
	InterviewSession *InterviewSessionClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// SeenQuestion is the client for interacting with the SeenQuestion builders.
	SeenQuestion *SeenQuestionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AskedQuestion = NewAskedQuestionClient(c.config)
	c.InterviewMessage = NewInterviewMessageClient(c.config)
	c.InterviewSession = NewInterviewSessionClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.SeenQuestion = NewSeenQuestionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AskedQuestion:    NewAskedQuestionClient(cfg),
		InterviewMessage: NewInterviewMessageClient(cfg),
		InterviewSession: NewInterviewSessionClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		Question:         NewQuestionClient(cfg),
		SeenQuestion:     NewSeenQuestionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AskedQuestion:    NewAskedQuestionClient(cfg),
		InterviewMessage: NewInterviewMessageClient(cfg),
		InterviewSession: NewInterviewSessionClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		Question:         NewQuestionClient(cfg),
		SeenQuestion:     NewSeenQuestionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AskedQuestion.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AskedQuestion, c.InterviewMessage, c.InterviewSession, c.LLMRequestEvent,
		c.Question, c.SeenQuestion,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AskedQuestion, c.InterviewMessage, c.InterviewSession, c.LLMRequestEvent,
		c.Question, c.SeenQuestion,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AskedQuestionMutation:
		return c.AskedQuestion.mutate(ctx, m)
	case *InterviewMessageMutation:
		return c.InterviewMessage.mutate(ctx, m)
	case *InterviewSessionMutation:
		return c.InterviewSession.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *SeenQuestionMutation:
		return c.SeenQuestion.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AskedQuestionClient is a client for the AskedQuestion schema.
type AskedQuestionClient struct {
	config
}

// NewAskedQuestionClient returns a client for the AskedQuestion from the given config.
func NewAskedQuestionClient(c config) *AskedQuestionClient {
	return &AskedQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `askedquestion.Hooks(f(g(h())))`.
func (c *AskedQuestionClient) Use(hooks ...Hook) {
	c.hooks.AskedQuestion = append(c.hooks.AskedQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `askedquestion.Intercept(f(g(h())))`.
func (c *AskedQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AskedQuestion = append(c.inters.AskedQuestion, interceptors...)
}

// Create returns a builder for creating a AskedQuestion entity.
func (c *AskedQuestionClient) Create() *AskedQuestionCreate {
	mutation := newAskedQuestionMutation(c.config, OpCreate)
	return &AskedQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AskedQuestion entities.
func (c *AskedQuestionClient) CreateBulk(builders ...*AskedQuestionCreate) *AskedQuestionCreateBulk {
	return &AskedQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AskedQuestionClient) MapCreateBulk(slice any, setFunc func(*AskedQuestionCreate, int)) *AskedQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AskedQuestionCreateBulk{err: fmt.Errorf("calling to AskedQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AskedQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AskedQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AskedQuestion.
func (c *AskedQuestionClient) Update() *AskedQuestionUpdate {
	mutation := newAskedQuestionMutation(c.config, OpUpdate)
	return &AskedQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AskedQuestionClient) UpdateOne(_m *AskedQuestion) *AskedQuestionUpdateOne {
	mutation := newAskedQuestionMutation(c.config, OpUpdateOne, withAskedQuestion(_m))
	return &AskedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AskedQuestionClient) UpdateOneID(id int) *AskedQuestionUpdateOne {
	mutation := newAskedQuestionMutation(c.config, OpUpdateOne, withAskedQuestionID(id))
	return &AskedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AskedQuestion.
func (c *AskedQuestionClient) Delete() *AskedQuestionDelete {
	mutation := newAskedQuestionMutation(c.config, OpDelete)
	return &AskedQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AskedQuestionClient) DeleteOne(_m *AskedQuestion) *AskedQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AskedQuestionClient) DeleteOneID(id int) *AskedQuestionDeleteOne {
	builder := c.Delete().Where(askedquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AskedQuestionDeleteOne{builder}
}

// Query returns a query builder for AskedQuestion.
func (c *AskedQuestionClient) Query() *AskedQuestionQuery {
	return &AskedQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAskedQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a AskedQuestion entity by its id.
func (c *AskedQuestionClient) Get(ctx context.Context, id int) (*AskedQuestion, error) {
	return c.Query().Where(askedquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AskedQuestionClient) GetX(ctx context.Context, id int) *AskedQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AskedQuestionClient) Hooks() []Hook {
	return c.hooks.AskedQuestion
}

// Interceptors returns the client interceptors.
func (c *AskedQuestionClient) Interceptors() []Interceptor {
	return c.inters.AskedQuestion
}

func (c *AskedQuestionClient) mutate(ctx context.Context, m *AskedQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AskedQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AskedQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AskedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AskedQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AskedQuestion mutation op: %q", m.Op())
	}
}

// InterviewMessageClient is a client for the InterviewMessage schema.
type InterviewMessageClient struct {
	config
}

// NewInterviewMessageClient returns a client for the InterviewMessage from the given config.
func NewInterviewMessageClient(c config) *InterviewMessageClient {
	return &InterviewMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interviewmessage.Hooks(f(g(h())))`.
func (c *InterviewMessageClient) Use(hooks ...Hook) {
	c.hooks.InterviewMessage = append(c.hooks.InterviewMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interviewmessage.Intercept(f(g(h())))`.
func (c *InterviewMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterviewMessage = append(c.inters.InterviewMessage, interceptors...)
}

// Create returns a builder for creating a InterviewMessage entity.
func (c *InterviewMessageClient) Create() *InterviewMessageCreate {
	mutation := newInterviewMessageMutation(c.config, OpCreate)
	return &InterviewMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterviewMessage entities.
func (c *InterviewMessageClient) CreateBulk(builders ...*InterviewMessageCreate) *InterviewMessageCreateBulk {
	return &InterviewMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterviewMessageClient) MapCreateBulk(slice any, setFunc func(*InterviewMessageCreate, int)) *InterviewMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterviewMessageCreateBulk{err: fmt.Errorf("calling to InterviewMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterviewMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterviewMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterviewMessage.
func (c *InterviewMessageClient) Update() *InterviewMessageUpdate {
	mutation := newInterviewMessageMutation(c.config, OpUpdate)
	return &InterviewMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterviewMessageClient) UpdateOne(_m *InterviewMessage) *InterviewMessageUpdateOne {
	mutation := newInterviewMessageMutation(c.config, OpUpdateOne, withInterviewMessage(_m))
	return &InterviewMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterviewMessageClient) UpdateOneID(id int) *InterviewMessageUpdateOne {
	mutation := newInterviewMessageMutation(c.config, OpUpdateOne, withInterviewMessageID(id))
	return &InterviewMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterviewMessage.
func (c *InterviewMessageClient) Delete() *InterviewMessageDelete {
	mutation := newInterviewMessageMutation(c.config, OpDelete)
	return &InterviewMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterviewMessageClient) DeleteOne(_m *InterviewMessage) *InterviewMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterviewMessageClient) DeleteOneID(id int) *InterviewMessageDeleteOne {
	builder := c.Delete().Where(interviewmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterviewMessageDeleteOne{builder}
}

// Query returns a query builder for InterviewMessage.
func (c *InterviewMessageClient) Query() *InterviewMessageQuery {
	return &InterviewMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterviewMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a InterviewMessage entity by its id.
func (c *InterviewMessageClient) Get(ctx context.Context, id int) (*InterviewMessage, error) {
	return c.Query().Where(interviewmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterviewMessageClient) GetX(ctx context.Context, id int) *InterviewMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterviewMessageClient) Hooks() []Hook {
	return c.hooks.InterviewMessage
}

// Interceptors returns the client interceptors.
func (c *InterviewMessageClient) Interceptors() []Interceptor {
	return c.inters.InterviewMessage
}

func (c *InterviewMessageClient) mutate(ctx context.Context, m *InterviewMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterviewMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterviewMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterviewMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterviewMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterviewMessage mutation op: %q", m.Op())
	}
}

// InterviewSessionClient is a client for the InterviewSession schema.
type InterviewSessionClient struct {
	config
}

// NewInterviewSessionClient returns a client for the InterviewSession from the given config.
func NewInterviewSessionClient(c config) *InterviewSessionClient {
	return &InterviewSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interviewsession.Hooks(f(g(h())))`.
func (c *InterviewSessionClient) Use(hooks ...Hook) {
	c.hooks.InterviewSession = append(c.hooks.InterviewSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interviewsession.Intercept(f(g(h())))`.
func (c *InterviewSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterviewSession = append(c.inters.InterviewSession, interceptors...)
}

// Create returns a builder for creating a InterviewSession entity.
func (c *InterviewSessionClient) Create() *InterviewSessionCreate {
	mutation := newInterviewSessionMutation(c.config, OpCreate)
	return &InterviewSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterviewSession entities.
func (c *InterviewSessionClient) CreateBulk(builders ...*InterviewSessionCreate) *InterviewSessionCreateBulk {
	return &InterviewSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterviewSessionClient) MapCreateBulk(slice any, setFunc func(*InterviewSessionCreate, int)) *InterviewSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterviewSessionCreateBulk{err: fmt.Errorf("calling to InterviewSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterviewSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterviewSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterviewSession.
func (c *InterviewSessionClient) Update() *InterviewSessionUpdate {
	mutation := newInterviewSessionMutation(c.config, OpUpdate)
	return &InterviewSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterviewSessionClient) UpdateOne(_m *InterviewSession) *InterviewSessionUpdateOne {
	mutation := newInterviewSessionMutation(c.config, OpUpdateOne, withInterviewSession(_m))
	return &InterviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterviewSessionClient) UpdateOneID(id string) *InterviewSessionUpdateOne {
	mutation := newInterviewSessionMutation(c.config, OpUpdateOne, withInterviewSessionID(id))
	return &InterviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterviewSession.
func (c *InterviewSessionClient) Delete() *InterviewSessionDelete {
	mutation := newInterviewSessionMutation(c.config, OpDelete)
	return &InterviewSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterviewSessionClient) DeleteOne(_m *InterviewSession) *InterviewSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterviewSessionClient) DeleteOneID(id string) *InterviewSessionDeleteOne {
	builder := c.Delete().Where(interviewsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterviewSessionDeleteOne{builder}
}

// Query returns a query builder for InterviewSession.
func (c *InterviewSessionClient) Query() *InterviewSessionQuery {
	return &InterviewSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterviewSession},
		inters: c.Interceptors(),
	}
}

// Get returns a InterviewSession entity by its id.
func (c *InterviewSessionClient) Get(ctx context.Context, id string) (*InterviewSession, error) {
	return c.Query().Where(interviewsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterviewSessionClient) GetX(ctx context.Context, id string) *InterviewSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterviewSessionClient) Hooks() []Hook {
	return c.hooks.InterviewSession
}

// Interceptors returns the client interceptors.
func (c *InterviewSessionClient) Interceptors() []Interceptor {
	return c.inters.InterviewSession
}

func (c *InterviewSessionClient) mutate(ctx context.Context, m *InterviewSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterviewSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterviewSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterviewSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterviewSession mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id string) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id string) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id string) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id string) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// SeenQuestionClient is a client for the SeenQuestion schema.
type SeenQuestionClient struct {
	config
}

// NewSeenQuestionClient returns a client for the SeenQuestion from the given config.
func NewSeenQuestionClient(c config) *SeenQuestionClient {
	return &SeenQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `seenquestion.Hooks(f(g(h())))`.
func (c *SeenQuestionClient) Use(hooks ...Hook) {
	c.hooks.SeenQuestion = append(c.hooks.SeenQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `seenquestion.Intercept(f(g(h())))`.
func (c *SeenQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SeenQuestion = append(c.inters.SeenQuestion, interceptors...)
}

// Create returns a builder for creating a SeenQuestion entity.
func (c *SeenQuestionClient) Create() *SeenQuestionCreate {
	mutation := newSeenQuestionMutation(c.config, OpCreate)
	return &SeenQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SeenQuestion entities.
func (c *SeenQuestionClient) CreateBulk(builders ...*SeenQuestionCreate) *SeenQuestionCreateBulk {
	return &SeenQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SeenQuestionClient) MapCreateBulk(slice any, setFunc func(*SeenQuestionCreate, int)) *SeenQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SeenQuestionCreateBulk{err: fmt.Errorf("calling to SeenQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SeenQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SeenQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SeenQuestion.
func (c *SeenQuestionClient) Update() *SeenQuestionUpdate {
	mutation := newSeenQuestionMutation(c.config, OpUpdate)
	return &SeenQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SeenQuestionClient) UpdateOne(_m *SeenQuestion) *SeenQuestionUpdateOne {
	mutation := newSeenQuestionMutation(c.config, OpUpdateOne, withSeenQuestion(_m))
	return &SeenQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SeenQuestionClient) UpdateOneID(id int) *SeenQuestionUpdateOne {
	mutation := newSeenQuestionMutation(c.config, OpUpdateOne, withSeenQuestionID(id))
	return &SeenQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SeenQuestion.
func (c *SeenQuestionClient) Delete() *SeenQuestionDelete {
	mutation := newSeenQuestionMutation(c.config, OpDelete)
	return &SeenQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SeenQuestionClient) DeleteOne(_m *SeenQuestion) *SeenQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SeenQuestionClient) DeleteOneID(id int) *SeenQuestionDeleteOne {
	builder := c.Delete().Where(seenquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SeenQuestionDeleteOne{builder}
}

// Query returns a query builder for SeenQuestion.
func (c *SeenQuestionClient) Query() *SeenQuestionQuery {
	return &SeenQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSeenQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a SeenQuestion entity by its id.
func (c *SeenQuestionClient) Get(ctx context.Context, id int) (*SeenQuestion, error) {
	return c.Query().Where(seenquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SeenQuestionClient) GetX(ctx context.Context, id int) *SeenQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SeenQuestionClient) Hooks() []Hook {
	return c.hooks.SeenQuestion
}

// Interceptors returns the client interceptors.
func (c *SeenQuestionClient) Interceptors() []Interceptor {
	return c.inters.SeenQuestion
}

func (c *SeenQuestionClient) mutate(ctx context.Context, m *SeenQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SeenQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SeenQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SeenQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SeenQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SeenQuestion mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AskedQuestion, InterviewMessage, InterviewSession, LLMRequestEvent, Question,
		SeenQuestion []ent.Hook
	}
	inters struct {
		AskedQuestion, InterviewMessage, InterviewSession, LLMRequestEvent, Question,
		SeenQuestion []ent.Interceptor
	}
)
