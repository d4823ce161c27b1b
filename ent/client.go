// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/edusmart/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/edusmart/ent/achievementevent"
	"github.com/abhisek/edusmart/ent/activityevent"
	"github.com/abhisek/edusmart/ent/lessonevent"
	"github.com/abhisek/edusmart/ent/quizevent"
	"github.com/abhisek/edusmart/ent/snapshot"
	"github.com/abhisek/edusmart/ent/xpevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AchievementEvent is the client for interacting with the AchievementEvent builders.
	AchievementEvent *AchievementEventClient
	// ActivityEvent is the client for interacting with the ActivityEvent builders.
	ActivityEvent *ActivityEventClient
	// LessonEvent is the client for interacting with the LessonEvent builders.
	LessonEvent *LessonEventClient
	// QuizEvent is the client for interacting with the QuizEvent builders.
	QuizEvent *QuizEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// XPEvent is the client for interacting with the XPEvent builders.
	XPEvent *XPEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AchievementEvent = NewAchievementEventClient(c.config)
	c.ActivityEvent = NewActivityEventClient(c.config)
	c.LessonEvent = NewLessonEventClient(c.config)
	c.QuizEvent = NewQuizEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.XPEvent = NewXPEventClient(c.config)
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
		AchievementEvent: NewAchievementEventClient(cfg),
		ActivityEvent:    NewActivityEventClient(cfg),
		LessonEvent:      NewLessonEventClient(cfg),
		QuizEvent:        NewQuizEventClient(cfg),
		Snapshot:         NewSnapshotClient(cfg),
		XPEvent:          NewXPEventClient(cfg),
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
		AchievementEvent: NewAchievementEventClient(cfg),
		ActivityEvent:    NewActivityEventClient(cfg),
		LessonEvent:      NewLessonEventClient(cfg),
		QuizEvent:        NewQuizEventClient(cfg),
		Snapshot:         NewSnapshotClient(cfg),
		XPEvent:          NewXPEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AchievementEvent.
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
		c.AchievementEvent, c.ActivityEvent, c.LessonEvent, c.QuizEvent, c.Snapshot,
		c.XPEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AchievementEvent, c.ActivityEvent, c.LessonEvent, c.QuizEvent, c.Snapshot,
		c.XPEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementEventMutation:
		return c.AchievementEvent.mutate(ctx, m)
	case *ActivityEventMutation:
		return c.ActivityEvent.mutate(ctx, m)
	case *LessonEventMutation:
		return c.LessonEvent.mutate(ctx, m)
	case *QuizEventMutation:
		return c.QuizEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *XPEventMutation:
		return c.XPEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementEventClient is a client for the AchievementEvent schema.
type AchievementEventClient struct {
	config
}

// NewAchievementEventClient returns a client for the AchievementEvent from the given config.
func NewAchievementEventClient(c config) *AchievementEventClient {
	return &AchievementEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievementevent.Hooks(f(g(h())))`.
func (c *AchievementEventClient) Use(hooks ...Hook) {
	c.hooks.AchievementEvent = append(c.hooks.AchievementEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievementevent.Intercept(f(g(h())))`.
func (c *AchievementEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AchievementEvent = append(c.inters.AchievementEvent, interceptors...)
}

// Create returns a builder for creating a AchievementEvent entity.
func (c *AchievementEventClient) Create() *AchievementEventCreate {
	mutation := newAchievementEventMutation(c.config, OpCreate)
	return &AchievementEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AchievementEvent entities.
func (c *AchievementEventClient) CreateBulk(builders ...*AchievementEventCreate) *AchievementEventCreateBulk {
	return &AchievementEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementEventClient) MapCreateBulk(slice any, setFunc func(*AchievementEventCreate, int)) *AchievementEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementEventCreateBulk{err: fmt.Errorf("calling to AchievementEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AchievementEvent.
func (c *AchievementEventClient) Update() *AchievementEventUpdate {
	mutation := newAchievementEventMutation(c.config, OpUpdate)
	return &AchievementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementEventClient) UpdateOne(_m *AchievementEvent) *AchievementEventUpdateOne {
	mutation := newAchievementEventMutation(c.config, OpUpdateOne, withAchievementEvent(_m))
	return &AchievementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementEventClient) UpdateOneID(id int) *AchievementEventUpdateOne {
	mutation := newAchievementEventMutation(c.config, OpUpdateOne, withAchievementEventID(id))
	return &AchievementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AchievementEvent.
func (c *AchievementEventClient) Delete() *AchievementEventDelete {
	mutation := newAchievementEventMutation(c.config, OpDelete)
	return &AchievementEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementEventClient) DeleteOne(_m *AchievementEvent) *AchievementEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementEventClient) DeleteOneID(id int) *AchievementEventDeleteOne {
	builder := c.Delete().Where(achievementevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementEventDeleteOne{builder}
}

// Query returns a query builder for AchievementEvent.
func (c *AchievementEventClient) Query() *AchievementEventQuery {
	return &AchievementEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievementEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AchievementEvent entity by its id.
func (c *AchievementEventClient) Get(ctx context.Context, id int) (*AchievementEvent, error) {
	return c.Query().Where(achievementevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementEventClient) GetX(ctx context.Context, id int) *AchievementEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementEventClient) Hooks() []Hook {
	return c.hooks.AchievementEvent
}

// Interceptors returns the client interceptors.
func (c *AchievementEventClient) Interceptors() []Interceptor {
	return c.inters.AchievementEvent
}

func (c *AchievementEventClient) mutate(ctx context.Context, m *AchievementEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AchievementEvent mutation op: %q", m.Op())
	}
}

// ActivityEventClient is a client for the ActivityEvent schema.
type ActivityEventClient struct {
	config
}

// NewActivityEventClient returns a client for the ActivityEvent from the given config.
func NewActivityEventClient(c config) *ActivityEventClient {
	return &ActivityEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityevent.Hooks(f(g(h())))`.
func (c *ActivityEventClient) Use(hooks ...Hook) {
	c.hooks.ActivityEvent = append(c.hooks.ActivityEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityevent.Intercept(f(g(h())))`.
func (c *ActivityEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityEvent = append(c.inters.ActivityEvent, interceptors...)
}

// Create returns a builder for creating a ActivityEvent entity.
func (c *ActivityEventClient) Create() *ActivityEventCreate {
	mutation := newActivityEventMutation(c.config, OpCreate)
	return &ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityEvent entities.
func (c *ActivityEventClient) CreateBulk(builders ...*ActivityEventCreate) *ActivityEventCreateBulk {
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityEventClient) MapCreateBulk(slice any, setFunc func(*ActivityEventCreate, int)) *ActivityEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityEventCreateBulk{err: fmt.Errorf("calling to ActivityEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityEvent.
func (c *ActivityEventClient) Update() *ActivityEventUpdate {
	mutation := newActivityEventMutation(c.config, OpUpdate)
	return &ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityEventClient) UpdateOne(_m *ActivityEvent) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEvent(_m))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityEventClient) UpdateOneID(id int) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEventID(id))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityEvent.
func (c *ActivityEventClient) Delete() *ActivityEventDelete {
	mutation := newActivityEventMutation(c.config, OpDelete)
	return &ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityEventClient) DeleteOne(_m *ActivityEvent) *ActivityEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityEventClient) DeleteOneID(id int) *ActivityEventDeleteOne {
	builder := c.Delete().Where(activityevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityEventDeleteOne{builder}
}

// Query returns a query builder for ActivityEvent.
func (c *ActivityEventClient) Query() *ActivityEventQuery {
	return &ActivityEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityEvent entity by its id.
func (c *ActivityEventClient) Get(ctx context.Context, id int) (*ActivityEvent, error) {
	return c.Query().Where(activityevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityEventClient) GetX(ctx context.Context, id int) *ActivityEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityEventClient) Hooks() []Hook {
	return c.hooks.ActivityEvent
}

// Interceptors returns the client interceptors.
func (c *ActivityEventClient) Interceptors() []Interceptor {
	return c.inters.ActivityEvent
}

func (c *ActivityEventClient) mutate(ctx context.Context, m *ActivityEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityEvent mutation op: %q", m.Op())
	}
}

// LessonEventClient is a client for the LessonEvent schema.
type LessonEventClient struct {
	config
}

// NewLessonEventClient returns a client for the LessonEvent from the given config.
func NewLessonEventClient(c config) *LessonEventClient {
	return &LessonEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonevent.Hooks(f(g(h())))`.
func (c *LessonEventClient) Use(hooks ...Hook) {
	c.hooks.LessonEvent = append(c.hooks.LessonEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonevent.Intercept(f(g(h())))`.
func (c *LessonEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonEvent = append(c.inters.LessonEvent, interceptors...)
}

// Create returns a builder for creating a LessonEvent entity.
func (c *LessonEventClient) Create() *LessonEventCreate {
	mutation := newLessonEventMutation(c.config, OpCreate)
	return &LessonEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonEvent entities.
func (c *LessonEventClient) CreateBulk(builders ...*LessonEventCreate) *LessonEventCreateBulk {
	return &LessonEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonEventClient) MapCreateBulk(slice any, setFunc func(*LessonEventCreate, int)) *LessonEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonEventCreateBulk{err: fmt.Errorf("calling to LessonEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonEvent.
func (c *LessonEventClient) Update() *LessonEventUpdate {
	mutation := newLessonEventMutation(c.config, OpUpdate)
	return &LessonEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonEventClient) UpdateOne(_m *LessonEvent) *LessonEventUpdateOne {
	mutation := newLessonEventMutation(c.config, OpUpdateOne, withLessonEvent(_m))
	return &LessonEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonEventClient) UpdateOneID(id int) *LessonEventUpdateOne {
	mutation := newLessonEventMutation(c.config, OpUpdateOne, withLessonEventID(id))
	return &LessonEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonEvent.
func (c *LessonEventClient) Delete() *LessonEventDelete {
	mutation := newLessonEventMutation(c.config, OpDelete)
	return &LessonEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonEventClient) DeleteOne(_m *LessonEvent) *LessonEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonEventClient) DeleteOneID(id int) *LessonEventDeleteOne {
	builder := c.Delete().Where(lessonevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonEventDeleteOne{builder}
}

// Query returns a query builder for LessonEvent.
func (c *LessonEventClient) Query() *LessonEventQuery {
	return &LessonEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonEvent entity by its id.
func (c *LessonEventClient) Get(ctx context.Context, id int) (*LessonEvent, error) {
	return c.Query().Where(lessonevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonEventClient) GetX(ctx context.Context, id int) *LessonEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonEventClient) Hooks() []Hook {
	return c.hooks.LessonEvent
}

// Interceptors returns the client interceptors.
func (c *LessonEventClient) Interceptors() []Interceptor {
	return c.inters.LessonEvent
}

func (c *LessonEventClient) mutate(ctx context.Context, m *LessonEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonEvent mutation op: %q", m.Op())
	}
}

// QuizEventClient is a client for the QuizEvent schema.
type QuizEventClient struct {
	config
}

// NewQuizEventClient returns a client for the QuizEvent from the given config.
func NewQuizEventClient(c config) *QuizEventClient {
	return &QuizEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizevent.Hooks(f(g(h())))`.
func (c *QuizEventClient) Use(hooks ...Hook) {
	c.hooks.QuizEvent = append(c.hooks.QuizEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizevent.Intercept(f(g(h())))`.
func (c *QuizEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizEvent = append(c.inters.QuizEvent, interceptors...)
}

// Create returns a builder for creating a QuizEvent entity.
func (c *QuizEventClient) Create() *QuizEventCreate {
	mutation := newQuizEventMutation(c.config, OpCreate)
	return &QuizEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizEvent entities.
func (c *QuizEventClient) CreateBulk(builders ...*QuizEventCreate) *QuizEventCreateBulk {
	return &QuizEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizEventClient) MapCreateBulk(slice any, setFunc func(*QuizEventCreate, int)) *QuizEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizEventCreateBulk{err: fmt.Errorf("calling to QuizEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizEvent.
func (c *QuizEventClient) Update() *QuizEventUpdate {
	mutation := newQuizEventMutation(c.config, OpUpdate)
	return &QuizEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizEventClient) UpdateOne(_m *QuizEvent) *QuizEventUpdateOne {
	mutation := newQuizEventMutation(c.config, OpUpdateOne, withQuizEvent(_m))
	return &QuizEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizEventClient) UpdateOneID(id int) *QuizEventUpdateOne {
	mutation := newQuizEventMutation(c.config, OpUpdateOne, withQuizEventID(id))
	return &QuizEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizEvent.
func (c *QuizEventClient) Delete() *QuizEventDelete {
	mutation := newQuizEventMutation(c.config, OpDelete)
	return &QuizEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizEventClient) DeleteOne(_m *QuizEvent) *QuizEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizEventClient) DeleteOneID(id int) *QuizEventDeleteOne {
	builder := c.Delete().Where(quizevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizEventDeleteOne{builder}
}

// Query returns a query builder for QuizEvent.
func (c *QuizEventClient) Query() *QuizEventQuery {
	return &QuizEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizEvent entity by its id.
func (c *QuizEventClient) Get(ctx context.Context, id int) (*QuizEvent, error) {
	return c.Query().Where(quizevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizEventClient) GetX(ctx context.Context, id int) *QuizEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizEventClient) Hooks() []Hook {
	return c.hooks.QuizEvent
}

// Interceptors returns the client interceptors.
func (c *QuizEventClient) Interceptors() []Interceptor {
	return c.inters.QuizEvent
}

func (c *QuizEventClient) mutate(ctx context.Context, m *QuizEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// XPEventClient is a client for the XPEvent schema.
type XPEventClient struct {
	config
}

// NewXPEventClient returns a client for the XPEvent from the given config.
func NewXPEventClient(c config) *XPEventClient {
	return &XPEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `xpevent.Hooks(f(g(h())))`.
func (c *XPEventClient) Use(hooks ...Hook) {
	c.hooks.XPEvent = append(c.hooks.XPEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `xpevent.Intercept(f(g(h())))`.
func (c *XPEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.XPEvent = append(c.inters.XPEvent, interceptors...)
}

// Create returns a builder for creating a XPEvent entity.
func (c *XPEventClient) Create() *XPEventCreate {
	mutation := newXPEventMutation(c.config, OpCreate)
	return &XPEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of XPEvent entities.
func (c *XPEventClient) CreateBulk(builders ...*XPEventCreate) *XPEventCreateBulk {
	return &XPEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *XPEventClient) MapCreateBulk(slice any, setFunc func(*XPEventCreate, int)) *XPEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &XPEventCreateBulk{err: fmt.Errorf("calling to XPEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*XPEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &XPEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for XPEvent.
func (c *XPEventClient) Update() *XPEventUpdate {
	mutation := newXPEventMutation(c.config, OpUpdate)
	return &XPEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *XPEventClient) UpdateOne(_m *XPEvent) *XPEventUpdateOne {
	mutation := newXPEventMutation(c.config, OpUpdateOne, withXPEvent(_m))
	return &XPEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *XPEventClient) UpdateOneID(id int) *XPEventUpdateOne {
	mutation := newXPEventMutation(c.config, OpUpdateOne, withXPEventID(id))
	return &XPEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for XPEvent.
func (c *XPEventClient) Delete() *XPEventDelete {
	mutation := newXPEventMutation(c.config, OpDelete)
	return &XPEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *XPEventClient) DeleteOne(_m *XPEvent) *XPEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *XPEventClient) DeleteOneID(id int) *XPEventDeleteOne {
	builder := c.Delete().Where(xpevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &XPEventDeleteOne{builder}
}

// Query returns a query builder for XPEvent.
func (c *XPEventClient) Query() *XPEventQuery {
	return &XPEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeXPEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a XPEvent entity by its id.
func (c *XPEventClient) Get(ctx context.Context, id int) (*XPEvent, error) {
	return c.Query().Where(xpevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *XPEventClient) GetX(ctx context.Context, id int) *XPEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *XPEventClient) Hooks() []Hook {
	return c.hooks.XPEvent
}

// Interceptors returns the client interceptors.
func (c *XPEventClient) Interceptors() []Interceptor {
	return c.inters.XPEvent
}

func (c *XPEventClient) mutate(ctx context.Context, m *XPEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&XPEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&XPEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&XPEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&XPEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown XPEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AchievementEvent, ActivityEvent, LessonEvent, QuizEvent, Snapshot,
		XPEvent []ent.Hook
	}
	inters struct {
		AchievementEvent, ActivityEvent, LessonEvent, QuizEvent, Snapshot,
		XPEvent []ent.Interceptor
	}
)
