// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/solargrid-io/lease-tracker/gen/ent/extractjob"
	"github.com/solargrid-io/lease-tracker/gen/ent/lease"
	"github.com/solargrid-io/lease-tracker/gen/ent/leasefile"
	"github.com/solargrid-io/lease-tracker/gen/ent/portfolio"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
	// Lease is the client for interacting with the Lease builders.
	Lease *LeaseClient
	// LeaseFile is the client for interacting with the LeaseFile builders.
	LeaseFile *LeaseFileClient
	// Portfolio is the client for interacting with the Portfolio builders.
	Portfolio *PortfolioClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractJob = NewExtractJobClient(c.config)
	c.Lease = NewLeaseClient(c.config)
	c.LeaseFile = NewLeaseFileClient(c.config)
	c.Portfolio = NewPortfolioClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		ExtractJob: NewExtractJobClient(cfg),
		Lease:      NewLeaseClient(cfg),
		LeaseFile:  NewLeaseFileClient(cfg),
		Portfolio:  NewPortfolioClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		ExtractJob: NewExtractJobClient(cfg),
		Lease:      NewLeaseClient(cfg),
		LeaseFile:  NewLeaseFileClient(cfg),
		Portfolio:  NewPortfolioClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractJob.
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
	c.ExtractJob.Use(hooks...)
	c.Lease.Use(hooks...)
	c.LeaseFile.Use(hooks...)
	c.Portfolio.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExtractJob.Intercept(interceptors...)
	c.Lease.Intercept(interceptors...)
	c.LeaseFile.Intercept(interceptors...)
	c.Portfolio.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	case *LeaseMutation:
		return c.Lease.mutate(ctx, m)
	case *LeaseFileMutation:
		return c.LeaseFile.mutate(ctx, m)
	case *PortfolioMutation:
		return c.Portfolio.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractJobClient is a client for the ExtractJob schema.
type ExtractJobClient struct {
	config
}

// NewExtractJobClient returns a client for the ExtractJob from the given config.
func NewExtractJobClient(c config) *ExtractJobClient {
	return &ExtractJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractjob.Hooks(f(g(h())))`.
func (c *ExtractJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractJob = append(c.hooks.ExtractJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractjob.Intercept(f(g(h())))`.
func (c *ExtractJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractJob = append(c.inters.ExtractJob, interceptors...)
}

// Create returns a builder for creating a ExtractJob entity.
func (c *ExtractJobClient) Create() *ExtractJobCreate {
	mutation := newExtractJobMutation(c.config, OpCreate)
	return &ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractJob entities.
func (c *ExtractJobClient) CreateBulk(builders ...*ExtractJobCreate) *ExtractJobCreateBulk {
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractJobClient) MapCreateBulk(slice any, setFunc func(*ExtractJobCreate, int)) *ExtractJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractJobCreateBulk{err: fmt.Errorf("calling to ExtractJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractJob.
func (c *ExtractJobClient) Update() *ExtractJobUpdate {
	mutation := newExtractJobMutation(c.config, OpUpdate)
	return &ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractJobClient) UpdateOne(_m *ExtractJob) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJob(_m))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractJobClient) UpdateOneID(id uuid.UUID) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJobID(id))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractJob.
func (c *ExtractJobClient) Delete() *ExtractJobDelete {
	mutation := newExtractJobMutation(c.config, OpDelete)
	return &ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractJobClient) DeleteOne(_m *ExtractJob) *ExtractJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractJobClient) DeleteOneID(id uuid.UUID) *ExtractJobDeleteOne {
	builder := c.Delete().Where(extractjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractJobDeleteOne{builder}
}

// Query returns a query builder for ExtractJob.
func (c *ExtractJobClient) Query() *ExtractJobQuery {
	return &ExtractJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractJob entity by its id.
func (c *ExtractJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractJob, error) {
	return c.Query().Where(extractjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ExtractJob.
func (c *ExtractJobClient) QueryFile(_m *ExtractJob) *LeaseFileQuery {
	query := (&LeaseFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(leasefile.Table, leasefile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FileTable, extractjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPortfolio queries the portfolio edge of a ExtractJob.
func (c *ExtractJobClient) QueryPortfolio(_m *ExtractJob) *PortfolioQuery {
	query := (&PortfolioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(portfolio.Table, portfolio.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.PortfolioTable, extractjob.PortfolioColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLease queries the lease edge of a ExtractJob.
func (c *ExtractJobClient) QueryLease(_m *ExtractJob) *LeaseQuery {
	query := (&LeaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(lease.Table, lease.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.LeaseTable, extractjob.LeaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractJobClient) Hooks() []Hook {
	return c.hooks.ExtractJob
}

// Interceptors returns the client interceptors.
func (c *ExtractJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractJob
}

func (c *ExtractJobClient) mutate(ctx context.Context, m *ExtractJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractJob mutation op: %q", m.Op())
	}
}

// LeaseClient is a client for the Lease schema.
type LeaseClient struct {
	config
}

// NewLeaseClient returns a client for the Lease from the given config.
func NewLeaseClient(c config) *LeaseClient {
	return &LeaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lease.Hooks(f(g(h())))`.
func (c *LeaseClient) Use(hooks ...Hook) {
	c.hooks.Lease = append(c.hooks.Lease, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lease.Intercept(f(g(h())))`.
func (c *LeaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lease = append(c.inters.Lease, interceptors...)
}

// Create returns a builder for creating a Lease entity.
func (c *LeaseClient) Create() *LeaseCreate {
	mutation := newLeaseMutation(c.config, OpCreate)
	return &LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lease entities.
func (c *LeaseClient) CreateBulk(builders ...*LeaseCreate) *LeaseCreateBulk {
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeaseClient) MapCreateBulk(slice any, setFunc func(*LeaseCreate, int)) *LeaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeaseCreateBulk{err: fmt.Errorf("calling to LeaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lease.
func (c *LeaseClient) Update() *LeaseUpdate {
	mutation := newLeaseMutation(c.config, OpUpdate)
	return &LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeaseClient) UpdateOne(_m *Lease) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLease(_m))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeaseClient) UpdateOneID(id uuid.UUID) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLeaseID(id))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lease.
func (c *LeaseClient) Delete() *LeaseDelete {
	mutation := newLeaseMutation(c.config, OpDelete)
	return &LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeaseClient) DeleteOne(_m *Lease) *LeaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeaseClient) DeleteOneID(id uuid.UUID) *LeaseDeleteOne {
	builder := c.Delete().Where(lease.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeaseDeleteOne{builder}
}

// Query returns a query builder for Lease.
func (c *LeaseClient) Query() *LeaseQuery {
	return &LeaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLease},
		inters: c.Interceptors(),
	}
}

// Get returns a Lease entity by its id.
func (c *LeaseClient) Get(ctx context.Context, id uuid.UUID) (*Lease, error) {
	return c.Query().Where(lease.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeaseClient) GetX(ctx context.Context, id uuid.UUID) *Lease {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPortfolio queries the portfolio edge of a Lease.
func (c *LeaseClient) QueryPortfolio(_m *Lease) *PortfolioQuery {
	query := (&PortfolioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lease.Table, lease.FieldID, id),
			sqlgraph.To(portfolio.Table, portfolio.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lease.PortfolioTable, lease.PortfolioColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Lease.
func (c *LeaseClient) QueryFiles(_m *Lease) *LeaseFileQuery {
	query := (&LeaseFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lease.Table, lease.FieldID, id),
			sqlgraph.To(leasefile.Table, leasefile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lease.FilesTable, lease.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Lease.
func (c *LeaseClient) QueryJobs(_m *Lease) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lease.Table, lease.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lease.JobsTable, lease.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeaseClient) Hooks() []Hook {
	return c.hooks.Lease
}

// Interceptors returns the client interceptors.
func (c *LeaseClient) Interceptors() []Interceptor {
	return c.inters.Lease
}

func (c *LeaseClient) mutate(ctx context.Context, m *LeaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lease mutation op: %q", m.Op())
	}
}

// LeaseFileClient is a client for the LeaseFile schema.
type LeaseFileClient struct {
	config
}

// NewLeaseFileClient returns a client for the LeaseFile from the given config.
func NewLeaseFileClient(c config) *LeaseFileClient {
	return &LeaseFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `leasefile.Hooks(f(g(h())))`.
func (c *LeaseFileClient) Use(hooks ...Hook) {
	c.hooks.LeaseFile = append(c.hooks.LeaseFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `leasefile.Intercept(f(g(h())))`.
func (c *LeaseFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.LeaseFile = append(c.inters.LeaseFile, interceptors...)
}

// Create returns a builder for creating a LeaseFile entity.
func (c *LeaseFileClient) Create() *LeaseFileCreate {
	mutation := newLeaseFileMutation(c.config, OpCreate)
	return &LeaseFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LeaseFile entities.
func (c *LeaseFileClient) CreateBulk(builders ...*LeaseFileCreate) *LeaseFileCreateBulk {
	return &LeaseFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeaseFileClient) MapCreateBulk(slice any, setFunc func(*LeaseFileCreate, int)) *LeaseFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeaseFileCreateBulk{err: fmt.Errorf("calling to LeaseFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeaseFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeaseFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LeaseFile.
func (c *LeaseFileClient) Update() *LeaseFileUpdate {
	mutation := newLeaseFileMutation(c.config, OpUpdate)
	return &LeaseFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeaseFileClient) UpdateOne(_m *LeaseFile) *LeaseFileUpdateOne {
	mutation := newLeaseFileMutation(c.config, OpUpdateOne, withLeaseFile(_m))
	return &LeaseFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeaseFileClient) UpdateOneID(id uuid.UUID) *LeaseFileUpdateOne {
	mutation := newLeaseFileMutation(c.config, OpUpdateOne, withLeaseFileID(id))
	return &LeaseFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LeaseFile.
func (c *LeaseFileClient) Delete() *LeaseFileDelete {
	mutation := newLeaseFileMutation(c.config, OpDelete)
	return &LeaseFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeaseFileClient) DeleteOne(_m *LeaseFile) *LeaseFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeaseFileClient) DeleteOneID(id uuid.UUID) *LeaseFileDeleteOne {
	builder := c.Delete().Where(leasefile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeaseFileDeleteOne{builder}
}

// Query returns a query builder for LeaseFile.
func (c *LeaseFileClient) Query() *LeaseFileQuery {
	return &LeaseFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLeaseFile},
		inters: c.Interceptors(),
	}
}

// Get returns a LeaseFile entity by its id.
func (c *LeaseFileClient) Get(ctx context.Context, id uuid.UUID) (*LeaseFile, error) {
	return c.Query().Where(leasefile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeaseFileClient) GetX(ctx context.Context, id uuid.UUID) *LeaseFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPortfolio queries the portfolio edge of a LeaseFile.
func (c *LeaseFileClient) QueryPortfolio(_m *LeaseFile) *PortfolioQuery {
	query := (&PortfolioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(leasefile.Table, leasefile.FieldID, id),
			sqlgraph.To(portfolio.Table, portfolio.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leasefile.PortfolioTable, leasefile.PortfolioColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLease queries the lease edge of a LeaseFile.
func (c *LeaseFileClient) QueryLease(_m *LeaseFile) *LeaseQuery {
	query := (&LeaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(leasefile.Table, leasefile.FieldID, id),
			sqlgraph.To(lease.Table, lease.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leasefile.LeaseTable, leasefile.LeaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a LeaseFile.
func (c *LeaseFileClient) QueryJobs(_m *LeaseFile) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(leasefile.Table, leasefile.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, leasefile.JobsTable, leasefile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeaseFileClient) Hooks() []Hook {
	return c.hooks.LeaseFile
}

// Interceptors returns the client interceptors.
func (c *LeaseFileClient) Interceptors() []Interceptor {
	return c.inters.LeaseFile
}

func (c *LeaseFileClient) mutate(ctx context.Context, m *LeaseFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeaseFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeaseFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeaseFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeaseFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LeaseFile mutation op: %q", m.Op())
	}
}

// PortfolioClient is a client for the Portfolio schema.
type PortfolioClient struct {
	config
}

// NewPortfolioClient returns a client for the Portfolio from the given config.
func NewPortfolioClient(c config) *PortfolioClient {
	return &PortfolioClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `portfolio.Hooks(f(g(h())))`.
func (c *PortfolioClient) Use(hooks ...Hook) {
	c.hooks.Portfolio = append(c.hooks.Portfolio, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `portfolio.Intercept(f(g(h())))`.
func (c *PortfolioClient) Intercept(interceptors ...Interceptor) {
	c.inters.Portfolio = append(c.inters.Portfolio, interceptors...)
}

// Create returns a builder for creating a Portfolio entity.
func (c *PortfolioClient) Create() *PortfolioCreate {
	mutation := newPortfolioMutation(c.config, OpCreate)
	return &PortfolioCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Portfolio entities.
func (c *PortfolioClient) CreateBulk(builders ...*PortfolioCreate) *PortfolioCreateBulk {
	return &PortfolioCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PortfolioClient) MapCreateBulk(slice any, setFunc func(*PortfolioCreate, int)) *PortfolioCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PortfolioCreateBulk{err: fmt.Errorf("calling to PortfolioClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PortfolioCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PortfolioCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Portfolio.
func (c *PortfolioClient) Update() *PortfolioUpdate {
	mutation := newPortfolioMutation(c.config, OpUpdate)
	return &PortfolioUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PortfolioClient) UpdateOne(_m *Portfolio) *PortfolioUpdateOne {
	mutation := newPortfolioMutation(c.config, OpUpdateOne, withPortfolio(_m))
	return &PortfolioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PortfolioClient) UpdateOneID(id uuid.UUID) *PortfolioUpdateOne {
	mutation := newPortfolioMutation(c.config, OpUpdateOne, withPortfolioID(id))
	return &PortfolioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Portfolio.
func (c *PortfolioClient) Delete() *PortfolioDelete {
	mutation := newPortfolioMutation(c.config, OpDelete)
	return &PortfolioDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PortfolioClient) DeleteOne(_m *Portfolio) *PortfolioDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PortfolioClient) DeleteOneID(id uuid.UUID) *PortfolioDeleteOne {
	builder := c.Delete().Where(portfolio.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PortfolioDeleteOne{builder}
}

// Query returns a query builder for Portfolio.
func (c *PortfolioClient) Query() *PortfolioQuery {
	return &PortfolioQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePortfolio},
		inters: c.Interceptors(),
	}
}

// Get returns a Portfolio entity by its id.
func (c *PortfolioClient) Get(ctx context.Context, id uuid.UUID) (*Portfolio, error) {
	return c.Query().Where(portfolio.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PortfolioClient) GetX(ctx context.Context, id uuid.UUID) *Portfolio {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLeases queries the leases edge of a Portfolio.
func (c *PortfolioClient) QueryLeases(_m *Portfolio) *LeaseQuery {
	query := (&LeaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(portfolio.Table, portfolio.FieldID, id),
			sqlgraph.To(lease.Table, lease.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, portfolio.LeasesTable, portfolio.LeasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Portfolio.
func (c *PortfolioClient) QueryFiles(_m *Portfolio) *LeaseFileQuery {
	query := (&LeaseFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(portfolio.Table, portfolio.FieldID, id),
			sqlgraph.To(leasefile.Table, leasefile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, portfolio.FilesTable, portfolio.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Portfolio.
func (c *PortfolioClient) QueryJobs(_m *Portfolio) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(portfolio.Table, portfolio.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, portfolio.JobsTable, portfolio.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PortfolioClient) Hooks() []Hook {
	return c.hooks.Portfolio
}

// Interceptors returns the client interceptors.
func (c *PortfolioClient) Interceptors() []Interceptor {
	return c.inters.Portfolio
}

func (c *PortfolioClient) mutate(ctx context.Context, m *PortfolioMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PortfolioCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PortfolioUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PortfolioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PortfolioDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Portfolio mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractJob, Lease, LeaseFile, Portfolio []ent.Hook
	}
	inters struct {
		ExtractJob, Lease, LeaseFile, Portfolio []ent.Interceptor
	}
)
