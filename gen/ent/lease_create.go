// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/extractjob"
	"github.com/solargrid-io/lease-tracker/gen/ent/lease"
	"github.com/solargrid-io/lease-tracker/gen/ent/leasefile"
	"github.com/solargrid-io/lease-tracker/gen/ent/portfolio"
)

// LeaseCreate is the builder for creating a Lease entity.
type LeaseCreate struct {
	config
	mutation *LeaseMutation
	hooks    []Hook
}

// SetPortfolioID sets the "portfolio_id" field.
func (_c *LeaseCreate) SetPortfolioID(v uuid.UUID) *LeaseCreate {
	_c.mutation.SetPortfolioID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *LeaseCreate) SetName(v string) *LeaseCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAnnualRent sets the "annual_rent" field.
func (_c *LeaseCreate) SetAnnualRent(v int) *LeaseCreate {
	_c.mutation.SetAnnualRent(v)
	return _c
}

// SetNillableAnnualRent sets the "annual_rent" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableAnnualRent(v *int) *LeaseCreate {
	if v != nil {
		_c.SetAnnualRent(*v)
	}
	return _c
}

// SetTermYears sets the "term_years" field.
func (_c *LeaseCreate) SetTermYears(v int) *LeaseCreate {
	_c.mutation.SetTermYears(v)
	return _c
}

// SetNillableTermYears sets the "term_years" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableTermYears(v *int) *LeaseCreate {
	if v != nil {
		_c.SetTermYears(*v)
	}
	return _c
}

// SetEscalator sets the "escalator" field.
func (_c *LeaseCreate) SetEscalator(v float64) *LeaseCreate {
	_c.mutation.SetEscalator(v)
	return _c
}

// SetNillableEscalator sets the "escalator" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableEscalator(v *float64) *LeaseCreate {
	if v != nil {
		_c.SetEscalator(*v)
	}
	return _c
}

// SetRiskTier sets the "risk_tier" field.
func (_c *LeaseCreate) SetRiskTier(v string) *LeaseCreate {
	_c.mutation.SetRiskTier(v)
	return _c
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableRiskTier(v *string) *LeaseCreate {
	if v != nil {
		_c.SetRiskTier(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *LeaseCreate) SetLocation(v string) *LeaseCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableLocation(v *string) *LeaseCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetAcres sets the "acres" field.
func (_c *LeaseCreate) SetAcres(v float64) *LeaseCreate {
	_c.mutation.SetAcres(v)
	return _c
}

// SetNillableAcres sets the "acres" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableAcres(v *float64) *LeaseCreate {
	if v != nil {
		_c.SetAcres(*v)
	}
	return _c
}

// SetDeveloper sets the "developer" field.
func (_c *LeaseCreate) SetDeveloper(v string) *LeaseCreate {
	_c.mutation.SetDeveloper(v)
	return _c
}

// SetNillableDeveloper sets the "developer" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableDeveloper(v *string) *LeaseCreate {
	if v != nil {
		_c.SetDeveloper(*v)
	}
	return _c
}

// SetLandowners sets the "landowners" field.
func (_c *LeaseCreate) SetLandowners(v string) *LeaseCreate {
	_c.mutation.SetLandowners(v)
	return _c
}

// SetNillableLandowners sets the "landowners" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableLandowners(v *string) *LeaseCreate {
	if v != nil {
		_c.SetLandowners(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *LeaseCreate) SetNeedsReview(v bool) *LeaseCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableNeedsReview(v *bool) *LeaseCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeaseCreate) SetCreatedAt(v time.Time) *LeaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableCreatedAt(v *time.Time) *LeaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeaseCreate) SetUpdatedAt(v time.Time) *LeaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableUpdatedAt(v *time.Time) *LeaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LeaseCreate) SetID(v uuid.UUID) *LeaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableID(v *uuid.UUID) *LeaseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPortfolio sets the "portfolio" edge to the Portfolio entity.
func (_c *LeaseCreate) SetPortfolio(v *Portfolio) *LeaseCreate {
	return _c.SetPortfolioID(v.ID)
}

// AddFileIDs adds the "files" edge to the LeaseFile entity by IDs.
func (_c *LeaseCreate) AddFileIDs(ids ...uuid.UUID) *LeaseCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the LeaseFile entity.
func (_c *LeaseCreate) AddFiles(v ...*LeaseFile) *LeaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *LeaseCreate) AddJobIDs(ids ...uuid.UUID) *LeaseCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *LeaseCreate) AddJobs(v ...*ExtractJob) *LeaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the LeaseMutation object of the builder.
func (_c *LeaseCreate) Mutation() *LeaseMutation {
	return _c.mutation
}

// Save creates the Lease in the database.
func (_c *LeaseCreate) Save(ctx context.Context) (*Lease, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeaseCreate) SaveX(ctx context.Context) *Lease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeaseCreate) defaults() {
	if _, ok := _c.mutation.Escalator(); !ok {
		v := lease.DefaultEscalator
		_c.mutation.SetEscalator(v)
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		v := lease.DefaultRiskTier
		_c.mutation.SetRiskTier(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := lease.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lease.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lease.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := lease.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeaseCreate) check() error {
	if _, ok := _c.mutation.PortfolioID(); !ok {
		return &ValidationError{Name: "portfolio_id", err: errors.New(`ent: missing required field "Lease.portfolio_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Lease.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := lease.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lease.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Escalator(); !ok {
		return &ValidationError{Name: "escalator", err: errors.New(`ent: missing required field "Lease.escalator"`)}
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		return &ValidationError{Name: "risk_tier", err: errors.New(`ent: missing required field "Lease.risk_tier"`)}
	}
	if v, ok := _c.mutation.RiskTier(); ok {
		if err := lease.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "Lease.risk_tier": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Acres(); ok {
		if err := lease.AcresValidator(v); err != nil {
			return &ValidationError{Name: "acres", err: fmt.Errorf(`ent: validator failed for field "Lease.acres": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Lease.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lease.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lease.updated_at"`)}
	}
	if len(_c.mutation.PortfolioIDs()) == 0 {
		return &ValidationError{Name: "portfolio", err: errors.New(`ent: missing required edge "Lease.portfolio"`)}
	}
	return nil
}

func (_c *LeaseCreate) sqlSave(ctx context.Context) (*Lease, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeaseCreate) createSpec() (*Lease, *sqlgraph.CreateSpec) {
	var (
		_node = &Lease{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lease.Table, sqlgraph.NewFieldSpec(lease.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lease.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AnnualRent(); ok {
		_spec.SetField(lease.FieldAnnualRent, field.TypeInt, value)
		_node.AnnualRent = &value
	}
	if value, ok := _c.mutation.TermYears(); ok {
		_spec.SetField(lease.FieldTermYears, field.TypeInt, value)
		_node.TermYears = &value
	}
	if value, ok := _c.mutation.Escalator(); ok {
		_spec.SetField(lease.FieldEscalator, field.TypeFloat64, value)
		_node.Escalator = value
	}
	if value, ok := _c.mutation.RiskTier(); ok {
		_spec.SetField(lease.FieldRiskTier, field.TypeString, value)
		_node.RiskTier = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(lease.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.Acres(); ok {
		_spec.SetField(lease.FieldAcres, field.TypeFloat64, value)
		_node.Acres = &value
	}
	if value, ok := _c.mutation.Developer(); ok {
		_spec.SetField(lease.FieldDeveloper, field.TypeString, value)
		_node.Developer = &value
	}
	if value, ok := _c.mutation.Landowners(); ok {
		_spec.SetField(lease.FieldLandowners, field.TypeString, value)
		_node.Landowners = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(lease.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lease.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lease.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PortfolioIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lease.PortfolioTable,
			Columns: []string{lease.PortfolioColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portfolio.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PortfolioID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lease.FilesTable,
			Columns: []string{lease.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leasefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lease.JobsTable,
			Columns: []string{lease.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeaseCreateBulk is the builder for creating many Lease entities in bulk.
type LeaseCreateBulk struct {
	config
	err      error
	builders []*LeaseCreate
}

// Save creates the Lease entities in the database.
func (_c *LeaseCreateBulk) Save(ctx context.Context) ([]*Lease, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lease, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeaseMutation)
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
func (_c *LeaseCreateBulk) SaveX(ctx context.Context) []*Lease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
