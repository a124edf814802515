// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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

// ExtractJobQuery is the builder for querying ExtractJob entities.
type ExtractJobQuery struct {
	config
	ctx           *QueryContext
	order         []extractjob.OrderOption
	inters        []Interceptor
	predicates    []predicate.ExtractJob
	withFile      *LeaseFileQuery
	withPortfolio *PortfolioQuery
	withLease     *LeaseQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExtractJobQuery builder.
func (_q *ExtractJobQuery) Where(ps ...predicate.ExtractJob) *ExtractJobQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExtractJobQuery) Limit(limit int) *ExtractJobQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExtractJobQuery) Offset(offset int) *ExtractJobQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExtractJobQuery) Unique(unique bool) *ExtractJobQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExtractJobQuery) Order(o ...extractjob.OrderOption) *ExtractJobQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFile chains the current query on the "file" edge.
func (_q *ExtractJobQuery) QueryFile() *LeaseFileQuery {
	query := (&LeaseFileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, selector),
			sqlgraph.To(leasefile.Table, leasefile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FileTable, extractjob.FileColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPortfolio chains the current query on the "portfolio" edge.
func (_q *ExtractJobQuery) QueryPortfolio() *PortfolioQuery {
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
			sqlgraph.From(extractjob.Table, extractjob.FieldID, selector),
			sqlgraph.To(portfolio.Table, portfolio.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.PortfolioTable, extractjob.PortfolioColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLease chains the current query on the "lease" edge.
func (_q *ExtractJobQuery) QueryLease() *LeaseQuery {
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
			sqlgraph.From(extractjob.Table, extractjob.FieldID, selector),
			sqlgraph.To(lease.Table, lease.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.LeaseTable, extractjob.LeaseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExtractJob entity from the query.
// Returns a *NotFoundError when no ExtractJob was found.
func (_q *ExtractJobQuery) First(ctx context.Context) (*ExtractJob, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{extractjob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExtractJobQuery) FirstX(ctx context.Context) *ExtractJob {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExtractJob ID from the query.
// Returns a *NotFoundError when no ExtractJob ID was found.
func (_q *ExtractJobQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{extractjob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExtractJobQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExtractJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExtractJob entity is found.
// Returns a *NotFoundError when no ExtractJob entities are found.
func (_q *ExtractJobQuery) Only(ctx context.Context) (*ExtractJob, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{extractjob.Label}
	default:
		return nil, &NotSingularError{extractjob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExtractJobQuery) OnlyX(ctx context.Context) *ExtractJob {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExtractJob ID in the query.
// Returns a *NotSingularError when more than one ExtractJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExtractJobQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{extractjob.Label}
	default:
		err = &NotSingularError{extractjob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExtractJobQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExtractJobs.
func (_q *ExtractJobQuery) All(ctx context.Context) ([]*ExtractJob, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExtractJob, *ExtractJobQuery]()
	return withInterceptors[[]*ExtractJob](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExtractJobQuery) AllX(ctx context.Context) []*ExtractJob {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExtractJob IDs.
func (_q *ExtractJobQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(extractjob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExtractJobQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExtractJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExtractJobQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExtractJobQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExtractJobQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExtractJobQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExtractJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExtractJobQuery) Clone() *ExtractJobQuery {
	if _q == nil {
		return nil
	}
	return &ExtractJobQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]extractjob.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.ExtractJob{}, _q.predicates...),
		withFile:      _q.withFile.Clone(),
		withPortfolio: _q.withPortfolio.Clone(),
		withLease:     _q.withLease.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFile tells the query-builder to eager-load the nodes that are connected to
// the "file" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractJobQuery) WithFile(opts ...func(*LeaseFileQuery)) *ExtractJobQuery {
	query := (&LeaseFileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFile = query
	return _q
}

// WithPortfolio tells the query-builder to eager-load the nodes that are connected to
// the "portfolio" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractJobQuery) WithPortfolio(opts ...func(*PortfolioQuery)) *ExtractJobQuery {
	query := (&PortfolioClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPortfolio = query
	return _q
}

// WithLease tells the query-builder to eager-load the nodes that are connected to
// the "lease" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractJobQuery) WithLease(opts ...func(*LeaseQuery)) *ExtractJobQuery {
	query := (&LeaseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLease = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FileID uuid.UUID `json:"file_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExtractJob.Query().
//		GroupBy(extractjob.FieldFileID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExtractJobQuery) GroupBy(field string, fields ...string) *ExtractJobGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExtractJobGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = extractjob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FileID uuid.UUID `json:"file_id,omitempty"`
//	}
//
//	client.ExtractJob.Query().
//		Select(extractjob.FieldFileID).
//		Scan(ctx, &v)
func (_q *ExtractJobQuery) Select(fields ...string) *ExtractJobSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExtractJobSelect{ExtractJobQuery: _q}
	sbuild.label = extractjob.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExtractJobSelect configured with the given aggregations.
func (_q *ExtractJobQuery) Aggregate(fns ...AggregateFunc) *ExtractJobSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExtractJobQuery) prepareQuery(ctx context.Context) error {
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
		if !extractjob.ValidColumn(f) {
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

func (_q *ExtractJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExtractJob, error) {
	var (
		nodes       = []*ExtractJob{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withFile != nil,
			_q.withPortfolio != nil,
			_q.withLease != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExtractJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExtractJob{config: _q.config}
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
	if query := _q.withFile; query != nil {
		if err := _q.loadFile(ctx, query, nodes, nil,
			func(n *ExtractJob, e *LeaseFile) { n.Edges.File = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPortfolio; query != nil {
		if err := _q.loadPortfolio(ctx, query, nodes, nil,
			func(n *ExtractJob, e *Portfolio) { n.Edges.Portfolio = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLease; query != nil {
		if err := _q.loadLease(ctx, query, nodes, nil,
			func(n *ExtractJob, e *Lease) { n.Edges.Lease = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExtractJobQuery) loadFile(ctx context.Context, query *LeaseFileQuery, nodes []*ExtractJob, init func(*ExtractJob), assign func(*ExtractJob, *LeaseFile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractJob)
	for i := range nodes {
		fk := nodes[i].FileID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(leasefile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "file_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExtractJobQuery) loadPortfolio(ctx context.Context, query *PortfolioQuery, nodes []*ExtractJob, init func(*ExtractJob), assign func(*ExtractJob, *Portfolio)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractJob)
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
func (_q *ExtractJobQuery) loadLease(ctx context.Context, query *LeaseQuery, nodes []*ExtractJob, init func(*ExtractJob), assign func(*ExtractJob, *Lease)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractJob)
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

func (_q *ExtractJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExtractJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractjob.FieldID)
		for i := range fields {
			if fields[i] != extractjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFile != nil {
			_spec.Node.AddColumnOnce(extractjob.FieldFileID)
		}
		if _q.withPortfolio != nil {
			_spec.Node.AddColumnOnce(extractjob.FieldPortfolioID)
		}
		if _q.withLease != nil {
			_spec.Node.AddColumnOnce(extractjob.FieldLeaseID)
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

func (_q *ExtractJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(extractjob.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = extractjob.Columns
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

// ExtractJobGroupBy is the group-by builder for ExtractJob entities.
type ExtractJobGroupBy struct {
	selector
	build *ExtractJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExtractJobGroupBy) Aggregate(fns ...AggregateFunc) *ExtractJobGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExtractJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractJobQuery, *ExtractJobGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExtractJobGroupBy) sqlScan(ctx context.Context, root *ExtractJobQuery, v any) error {
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

// ExtractJobSelect is the builder for selecting fields of ExtractJob entities.
type ExtractJobSelect struct {
	*ExtractJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExtractJobSelect) Aggregate(fns ...AggregateFunc) *ExtractJobSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExtractJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractJobQuery, *ExtractJobSelect](ctx, _s.ExtractJobQuery, _s, _s.inters, v)
}

func (_s *ExtractJobSelect) sqlScan(ctx context.Context, root *ExtractJobQuery, v any) error {
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
