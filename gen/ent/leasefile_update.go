// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// LeaseFileUpdate is the builder for updating LeaseFile entities.
type LeaseFileUpdate struct {
	config
	hooks    []Hook
	mutation *LeaseFileMutation
}

// Where appends a list predicates to the LeaseFileUpdate builder.
func (_u *LeaseFileUpdate) Where(ps ...predicate.LeaseFile) *LeaseFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPortfolioID sets the "portfolio_id" field.
func (_u *LeaseFileUpdate) SetPortfolioID(v uuid.UUID) *LeaseFileUpdate {
	_u.mutation.SetPortfolioID(v)
	return _u
}

// SetNillablePortfolioID sets the "portfolio_id" field if the given value is not nil.
func (_u *LeaseFileUpdate) SetNillablePortfolioID(v *uuid.UUID) *LeaseFileUpdate {
	if v != nil {
		_u.SetPortfolioID(*v)
	}
	return _u
}

// SetLeaseID sets the "lease_id" field.
func (_u *LeaseFileUpdate) SetLeaseID(v uuid.UUID) *LeaseFileUpdate {
	_u.mutation.SetLeaseID(v)
	return _u
}

// SetNillableLeaseID sets the "lease_id" field if the given value is not nil.
func (_u *LeaseFileUpdate) SetNillableLeaseID(v *uuid.UUID) *LeaseFileUpdate {
	if v != nil {
		_u.SetLeaseID(*v)
	}
	return _u
}

// ClearLeaseID clears the value of the "lease_id" field.
func (_u *LeaseFileUpdate) ClearLeaseID() *LeaseFileUpdate {
	_u.mutation.ClearLeaseID()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *LeaseFileUpdate) SetSourcePath(v string) *LeaseFileUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *LeaseFileUpdate) SetNillableSourcePath(v *string) *LeaseFileUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *LeaseFileUpdate) SetFilename(v string) *LeaseFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *LeaseFileUpdate) SetNillableFilename(v *string) *LeaseFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *LeaseFileUpdate) SetFileExt(v string) *LeaseFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *LeaseFileUpdate) SetNillableFileExt(v *string) *LeaseFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *LeaseFileUpdate) SetFileSize(v int) *LeaseFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *LeaseFileUpdate) SetNillableFileSize(v *int) *LeaseFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *LeaseFileUpdate) AddFileSize(v int) *LeaseFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *LeaseFileUpdate) SetContentHash(v []byte) *LeaseFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *LeaseFileUpdate) SetUploadedAt(v time.Time) *LeaseFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *LeaseFileUpdate) SetNillableUploadedAt(v *time.Time) *LeaseFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetPortfolio sets the "portfolio" edge to the Portfolio entity.
func (_u *LeaseFileUpdate) SetPortfolio(v *Portfolio) *LeaseFileUpdate {
	return _u.SetPortfolioID(v.ID)
}

// SetLease sets the "lease" edge to the Lease entity.
func (_u *LeaseFileUpdate) SetLease(v *Lease) *LeaseFileUpdate {
	return _u.SetLeaseID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *LeaseFileUpdate) AddJobIDs(ids ...uuid.UUID) *LeaseFileUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *LeaseFileUpdate) AddJobs(v ...*ExtractJob) *LeaseFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LeaseFileMutation object of the builder.
func (_u *LeaseFileUpdate) Mutation() *LeaseFileMutation {
	return _u.mutation
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (_u *LeaseFileUpdate) ClearPortfolio() *LeaseFileUpdate {
	_u.mutation.ClearPortfolio()
	return _u
}

// ClearLease clears the "lease" edge to the Lease entity.
func (_u *LeaseFileUpdate) ClearLease() *LeaseFileUpdate {
	_u.mutation.ClearLease()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *LeaseFileUpdate) ClearJobs() *LeaseFileUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *LeaseFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *LeaseFileUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *LeaseFileUpdate) RemoveJobs(v ...*ExtractJob) *LeaseFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeaseFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaseFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeaseFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaseFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaseFileUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := leasefile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := leasefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := leasefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := leasefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := leasefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.content_hash": %w`, err)}
		}
	}
	if _u.mutation.PortfolioCleared() && len(_u.mutation.PortfolioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeaseFile.portfolio"`)
	}
	return nil
}

func (_u *LeaseFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leasefile.Table, leasefile.Columns, sqlgraph.NewFieldSpec(leasefile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(leasefile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(leasefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(leasefile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(leasefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(leasefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(leasefile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(leasefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.PortfolioCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PortfolioIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leasefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeaseFileUpdateOne is the builder for updating a single LeaseFile entity.
type LeaseFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeaseFileMutation
}

// SetPortfolioID sets the "portfolio_id" field.
func (_u *LeaseFileUpdateOne) SetPortfolioID(v uuid.UUID) *LeaseFileUpdateOne {
	_u.mutation.SetPortfolioID(v)
	return _u
}

// SetNillablePortfolioID sets the "portfolio_id" field if the given value is not nil.
func (_u *LeaseFileUpdateOne) SetNillablePortfolioID(v *uuid.UUID) *LeaseFileUpdateOne {
	if v != nil {
		_u.SetPortfolioID(*v)
	}
	return _u
}

// SetLeaseID sets the "lease_id" field.
func (_u *LeaseFileUpdateOne) SetLeaseID(v uuid.UUID) *LeaseFileUpdateOne {
	_u.mutation.SetLeaseID(v)
	return _u
}

// SetNillableLeaseID sets the "lease_id" field if the given value is not nil.
func (_u *LeaseFileUpdateOne) SetNillableLeaseID(v *uuid.UUID) *LeaseFileUpdateOne {
	if v != nil {
		_u.SetLeaseID(*v)
	}
	return _u
}

// ClearLeaseID clears the value of the "lease_id" field.
func (_u *LeaseFileUpdateOne) ClearLeaseID() *LeaseFileUpdateOne {
	_u.mutation.ClearLeaseID()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *LeaseFileUpdateOne) SetSourcePath(v string) *LeaseFileUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *LeaseFileUpdateOne) SetNillableSourcePath(v *string) *LeaseFileUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *LeaseFileUpdateOne) SetFilename(v string) *LeaseFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *LeaseFileUpdateOne) SetNillableFilename(v *string) *LeaseFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *LeaseFileUpdateOne) SetFileExt(v string) *LeaseFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *LeaseFileUpdateOne) SetNillableFileExt(v *string) *LeaseFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *LeaseFileUpdateOne) SetFileSize(v int) *LeaseFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *LeaseFileUpdateOne) SetNillableFileSize(v *int) *LeaseFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *LeaseFileUpdateOne) AddFileSize(v int) *LeaseFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *LeaseFileUpdateOne) SetContentHash(v []byte) *LeaseFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *LeaseFileUpdateOne) SetUploadedAt(v time.Time) *LeaseFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *LeaseFileUpdateOne) SetNillableUploadedAt(v *time.Time) *LeaseFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetPortfolio sets the "portfolio" edge to the Portfolio entity.
func (_u *LeaseFileUpdateOne) SetPortfolio(v *Portfolio) *LeaseFileUpdateOne {
	return _u.SetPortfolioID(v.ID)
}

// SetLease sets the "lease" edge to the Lease entity.
func (_u *LeaseFileUpdateOne) SetLease(v *Lease) *LeaseFileUpdateOne {
	return _u.SetLeaseID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *LeaseFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *LeaseFileUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *LeaseFileUpdateOne) AddJobs(v ...*ExtractJob) *LeaseFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LeaseFileMutation object of the builder.
func (_u *LeaseFileUpdateOne) Mutation() *LeaseFileMutation {
	return _u.mutation
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (_u *LeaseFileUpdateOne) ClearPortfolio() *LeaseFileUpdateOne {
	_u.mutation.ClearPortfolio()
	return _u
}

// ClearLease clears the "lease" edge to the Lease entity.
func (_u *LeaseFileUpdateOne) ClearLease() *LeaseFileUpdateOne {
	_u.mutation.ClearLease()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *LeaseFileUpdateOne) ClearJobs() *LeaseFileUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *LeaseFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *LeaseFileUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *LeaseFileUpdateOne) RemoveJobs(v ...*ExtractJob) *LeaseFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the LeaseFileUpdate builder.
func (_u *LeaseFileUpdateOne) Where(ps ...predicate.LeaseFile) *LeaseFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeaseFileUpdateOne) Select(field string, fields ...string) *LeaseFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeaseFile entity.
func (_u *LeaseFileUpdateOne) Save(ctx context.Context) (*LeaseFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaseFileUpdateOne) SaveX(ctx context.Context) *LeaseFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeaseFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaseFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaseFileUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := leasefile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := leasefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := leasefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := leasefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := leasefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "LeaseFile.content_hash": %w`, err)}
		}
	}
	if _u.mutation.PortfolioCleared() && len(_u.mutation.PortfolioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeaseFile.portfolio"`)
	}
	return nil
}

func (_u *LeaseFileUpdateOne) sqlSave(ctx context.Context) (_node *LeaseFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leasefile.Table, leasefile.Columns, sqlgraph.NewFieldSpec(leasefile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeaseFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leasefile.FieldID)
		for _, f := range fields {
			if !leasefile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leasefile.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(leasefile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(leasefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(leasefile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(leasefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(leasefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(leasefile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(leasefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.PortfolioCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PortfolioIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LeaseFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leasefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
