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

// LeaseFileCreate is the builder for creating a LeaseFile entity.
type LeaseFileCreate struct {
	config
	mutation *LeaseFileMutation
	hooks    []Hook
}

// SetPortfolioID sets the "portfolio_id" field.
func (_c *LeaseFileCreate) SetPortfolioID(v uuid.UUID) *LeaseFileCreate {
	_c.mutation.SetPortfolioID(v)
	return _c
}

// SetLeaseID sets the "lease_id" field.
func (_c *LeaseFileCreate) SetLeaseID(v uuid.UUID) *LeaseFileCreate {
	_c.mutation.SetLeaseID(v)
	return _c
}

// SetNillableLeaseID sets the "lease_id" field if the given value is not nil.
func (_c *LeaseFileCreate) SetNillableLeaseID(v *uuid.UUID) *LeaseFileCreate {
	if v != nil {
		_c.SetLeaseID(*v)
	}
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *LeaseFileCreate) SetSourcePath(v string) *LeaseFileCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *LeaseFileCreate) SetFilename(v string) *LeaseFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *LeaseFileCreate) SetFileExt(v string) *LeaseFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *LeaseFileCreate) SetFileSize(v int) *LeaseFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *LeaseFileCreate) SetContentHash(v []byte) *LeaseFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *LeaseFileCreate) SetUploadedAt(v time.Time) *LeaseFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *LeaseFileCreate) SetNillableUploadedAt(v *time.Time) *LeaseFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LeaseFileCreate) SetID(v uuid.UUID) *LeaseFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LeaseFileCreate) SetNillableID(v *uuid.UUID) *LeaseFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPortfolio sets the "portfolio" edge to the Portfolio entity.
func (_c *LeaseFileCreate) SetPortfolio(v *Portfolio) *LeaseFileCreate {
	return _c.SetPortfolioID(v.ID)
}

// SetLease sets the "lease" edge to the Lease entity.
func (_c *LeaseFileCreate) SetLease(v *Lease) *LeaseFileCreate {
	return _c.SetLeaseID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *LeaseFileCreate) AddJobIDs(ids ...uuid.UUID) *LeaseFileCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *LeaseFileCreate) AddJobs(v ...*ExtractJob) *LeaseFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the LeaseFileMutation object of the builder.
func (_c *LeaseFileCreate) Mutation() *LeaseFileMutation {
	return _c.mutation
}

// Save creates the LeaseFile in the database.
func (_c *LeaseFileCreate) Save(ctx context.Context) (*LeaseFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeaseFileCreate) SaveX(ctx context.Context) *LeaseFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeaseFileCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := leasefile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := leasefile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeaseFileCreate) check() error {
	if _, ok := _c.mutation.PortfolioID(); !ok {
		return &ValidationError{Name: "portfolio_id", err: errors.New(`ent: missing required field "LeaseFile.portfolio_id"`)}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "LeaseFile.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := leasefile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "LeaseFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := leasefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "LeaseFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := leasefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "LeaseFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := leasefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "LeaseFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := leasefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "LeaseFile.uploaded_at"`)}
	}
	if len(_c.mutation.PortfolioIDs()) == 0 {
		return &ValidationError{Name: "portfolio", err: errors.New(`ent: missing required edge "LeaseFile.portfolio"`)}
	}
	return nil
}

func (_c *LeaseFileCreate) sqlSave(ctx context.Context) (*LeaseFile, error) {
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

func (_c *LeaseFileCreate) createSpec() (*LeaseFile, *sqlgraph.CreateSpec) {
	var (
		_node = &LeaseFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leasefile.Table, sqlgraph.NewFieldSpec(leasefile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(leasefile.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(leasefile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(leasefile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(leasefile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(leasefile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(leasefile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.PortfolioIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leasefile.PortfolioTable,
			Columns: []string{leasefile.PortfolioColumn},
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
	if nodes := _c.mutation.LeaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leasefile.LeaseTable,
			Columns: []string{leasefile.LeaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lease.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LeaseID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   leasefile.JobsTable,
			Columns: []string{leasefile.JobsColumn},
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

// LeaseFileCreateBulk is the builder for creating many LeaseFile entities in bulk.
type LeaseFileCreateBulk struct {
	config
	err      error
	builders []*LeaseFileCreate
}

// Save creates the LeaseFile entities in the database.
func (_c *LeaseFileCreateBulk) Save(ctx context.Context) ([]*LeaseFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeaseFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeaseFileMutation)
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
func (_c *LeaseFileCreateBulk) SaveX(ctx context.Context) []*LeaseFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
