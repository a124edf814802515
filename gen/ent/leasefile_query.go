// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/extractjob"
	"github.com/solargrid-io/lease-tracker/gen/ent/lease"
	"github.com/solargrid-io/lease-tracker/gen/ent/leasefile"
	"github.com/solargrid-io/lease-tracker/gen/ent/portfolio"
	"github.com/solargrid-io/lease-tracker/gen/ent/predicate"
)

// LeaseFileQuery is the builder for querying LeaseFile entities.
type LeaseFileQuery struct {
	config
	ctx           *QueryContext
	order         []leasefile.OrderOption
	inters        []Interceptor
	predicates    []predicate.LeaseFile
	withPortfolio *PortfolioQuery
	withLease     *LeaseQuery
	withJobs      *ExtractJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LeaseFileQuery builder.
func (_q *LeaseFileQuery) Where(ps ...predicate.LeaseFile) *LeaseFileQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LeaseFileQuery) Limit(limit int) *LeaseFileQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LeaseFileQuery) Offset(offset int) *LeaseFileQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LeaseFileQuery) Unique(unique bool) *LeaseFileQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LeaseFileQuery) Order(o ...leasefile.OrderOption) *LeaseFileQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPortfolio chains the current query on the "portfolio" edge.
func (_q *LeaseFileQuery) QueryPortfolio() *PortfolioQuery {
	query := (&PortfolioClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(leasefile.Table, leasefile.FieldID, selector),
			sqlgraph.To(portfolio.Table, portfolio.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leasefile.PortfolioTable, leasefile.PortfolioColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLease chains the current query on the "lease" edge.
func (_q *LeaseFileQuery) QueryLease() *LeaseQuery {
	query := (&LeaseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(leasefile.Table, leasefile.FieldID, selector),
			sqlgraph.To(lease.Table, lease.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leasefile.LeaseTable, leasefile.LeaseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryJobs chains the current query on the "jobs" edge.
func (_q *LeaseFileQuery) QueryJobs() *ExtractJobQuery {
	query := (&ExtractJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(leasefile.Table, leasefile.FieldID, selector),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, leasefile.JobsTable, leasefile.JobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LeaseFile entity from the query.
// Returns a *NotFoundError when no LeaseFile was found.
func (_q *LeaseFileQuery) First(ctx context.Context) (*LeaseFile, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{leasefile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LeaseFileQuery) FirstX(ctx context.Context) *LeaseFile {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LeaseFile ID from the query.
// Returns a *NotFoundError when no LeaseFile ID was found.
func (_q *LeaseFileQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{leasefile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LeaseFileQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LeaseFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LeaseFile entity is found.
// Returns a *NotFoundError when no LeaseFile entities are found.
func (_q *LeaseFileQuery) Only(ctx context.Context) (*LeaseFile, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{leasefile.Label}
	default:
		return nil, &NotSingularError{leasefile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LeaseFileQuery) OnlyX(ctx context.Context) *LeaseFile {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LeaseFile ID in the query.
// Returns a *NotSingularError when more than one LeaseFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LeaseFileQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{leasefile.Label}
	default:
		err = &NotSingularError{leasefile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LeaseFileQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LeaseFiles.
func (_q *LeaseFileQuery) All(ctx context.Context) ([]*LeaseFile, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LeaseFile, *LeaseFileQuery]()
	return withInterceptors[[]*LeaseFile](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LeaseFileQuery) AllX(ctx context.Context) []*LeaseFile {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LeaseFile IDs.
func (_q *LeaseFileQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(leasefile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LeaseFileQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LeaseFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LeaseFileQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LeaseFileQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LeaseFileQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *LeaseFileQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LeaseFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LeaseFileQuery) Clone() *LeaseFileQuery {
	if _q == nil {
		return nil
	}
	return &LeaseFileQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]leasefile.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.LeaseFile{}, _q.predicates...),
		withPortfolio: _q.withPortfolio.Clone(),
		withLease:     _q.withLease.Clone(),
		withJobs:      _q.withJobs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPortfolio tells the query-builder to eager-load the nodes that are connected to
// the "portfolio" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LeaseFileQuery) WithPortfolio(opts ...func(*PortfolioQuery)) *LeaseFileQuery {
	query := (&PortfolioClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPortfolio = query
	return _q
}

// WithLease tells the query-builder to eager-load the nodes that are connected to
// the "lease" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LeaseFileQuery) WithLease(opts ...func(*LeaseQuery)) *LeaseFileQuery {
	query := (&LeaseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLease = query
	return _q
}

// WithJobs tells the query-builder to eager-load the nodes that are connected to
// the "jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LeaseFileQuery) WithJobs(opts ...func(*ExtractJobQuery)) *LeaseFileQuery {
	query := (&ExtractJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withJobs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PortfolioID uuid.UUID `json:"portfolio_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LeaseFile.Query().
//		GroupBy(leasefile.FieldPortfolioID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LeaseFileQuery) GroupBy(field string, fields ...string) *LeaseFileGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LeaseFileGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = leasefile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PortfolioID uuid.UUID `json:"portfolio_id,omitempty"`
//	}
//
//	client.LeaseFile.Query().
//		Select(leasefile.FieldPortfolioID).
//		Scan(ctx, &v)
func (_q *LeaseFileQuery) Select(fields ...string) *LeaseFileSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LeaseFileSelect{LeaseFileQuery: _q}
	sbuild.label = leasefile.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LeaseFileSelect configured with the given aggregations.
func (_q *LeaseFileQuery) Aggregate(fns ...AggregateFunc) *LeaseFileSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LeaseFileQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !leasefile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *LeaseFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LeaseFile, error) {
	var (
		nodes       = []*LeaseFile{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withPortfolio != nil,
			_q.withLease != nil,
			_q.withJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LeaseFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LeaseFile{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPortfolio; query != nil {
		if err := _q.loadPortfolio(ctx, query, nodes, nil,
			func(n *LeaseFile, e *Portfolio) { n.Edges.Portfolio = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLease; query != nil {
		if err := _q.loadLease(ctx, query, nodes, nil,
			func(n *LeaseFile, e *Lease) { n.Edges.Lease = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withJobs; query != nil {
		if err := _q.loadJobs(ctx, query, nodes,
			func(n *LeaseFile) { n.Edges.Jobs = []*ExtractJob{} },
			func(n *LeaseFile, e *ExtractJob) { n.Edges.Jobs = append(n.Edges.Jobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LeaseFileQuery) loadPortfolio(ctx context.Context, query *PortfolioQuery, nodes []*LeaseFile, init func(*LeaseFile), assign func(*LeaseFile, *Portfolio)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LeaseFile)
	for i := range nodes {
		fk := nodes[i].PortfolioID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(portfolio.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "portfolio_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LeaseFileQuery) loadLease(ctx context.Context, query *LeaseQuery, nodes []*LeaseFile, init func(*LeaseFile), assign func(*LeaseFile, *Lease)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LeaseFile)
	for i := range nodes {
		if nodes[i].LeaseID == nil {
			continue
		}
		fk := *nodes[i].LeaseID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(lease.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "lease_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LeaseFileQuery) loadJobs(ctx context.Context, query *ExtractJobQuery, nodes []*LeaseFile, init func(*LeaseFile), assign func(*LeaseFile, *ExtractJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*LeaseFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractjob.FieldFileID)
	}
	query.Where(predicate.ExtractJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(leasefile.JobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *LeaseFileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LeaseFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(leasefile.Table, leasefile.Columns, sqlgraph.NewFieldSpec(leasefile.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leasefile.FieldID)
		for i := range fields {
			if fields[i] != leasefile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPortfolio != nil {
			_spec.Node.AddColumnOnce(leasefile.FieldPortfolioID)
		}
		if _q.withLease != nil {
			_spec.Node.AddColumnOnce(leasefile.FieldLeaseID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *LeaseFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(leasefile.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = leasefile.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LeaseFileGroupBy is the group-by builder for LeaseFile entities.
type LeaseFileGroupBy struct {
	selector
	build *LeaseFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LeaseFileGroupBy) Aggregate(fns ...AggregateFunc) *LeaseFileGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LeaseFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LeaseFileQuery, *LeaseFileGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LeaseFileGroupBy) sqlScan(ctx context.Context, root *LeaseFileQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LeaseFileSelect is the builder for selecting fields of LeaseFile entities.
type LeaseFileSelect struct {
	*LeaseFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LeaseFileSelect) Aggregate(fns ...AggregateFunc) *LeaseFileSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LeaseFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LeaseFileQuery, *LeaseFileSelect](ctx, _s.LeaseFileQuery, _s, _s.inters, v)
}

func (_s *LeaseFileSelect) sqlScan(ctx context.Context, root *LeaseFileQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
