// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/extractjob"
	"github.com/solargrid-io/lease-tracker/gen/ent/lease"
	"github.com/solargrid-io/lease-tracker/gen/ent/leasefile"
	"github.com/solargrid-io/lease-tracker/gen/ent/portfolio"
	"github.com/solargrid-io/lease-tracker/gen/ent/predicate"
)

// ExtractJobUpdate is the builder for updating ExtractJob entities.
type ExtractJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractJobMutation
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdate) Where(ps ...predicate.ExtractJob) *ExtractJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ExtractJobUpdate) SetFileID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFileID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetPortfolioID sets the "portfolio_id" field.
func (_u *ExtractJobUpdate) SetPortfolioID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetPortfolioID(v)
	return _u
}

// SetNillablePortfolioID sets the "portfolio_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillablePortfolioID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetPortfolioID(*v)
	}
	return _u
}

// SetLeaseID sets the "lease_id" field.
func (_u *ExtractJobUpdate) SetLeaseID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetLeaseID(v)
	return _u
}

// SetNillableLeaseID sets the "lease_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableLeaseID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetLeaseID(*v)
	}
	return _u
}

// ClearLeaseID clears the value of the "lease_id" field.
func (_u *ExtractJobUpdate) ClearLeaseID() *ExtractJobUpdate {
	_u.mutation.ClearLeaseID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractJobUpdate) SetFormat(v string) *ExtractJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFormat(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdate) SetStartedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdate) SetFinishedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdate) ClearFinishedAt() *ExtractJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdate) SetStatus(v string) *ExtractJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStatus(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ExtractJobUpdate) ClearStatus() *ExtractJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdate) SetErrorMessage(v string) *ExtractJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableErrorMessage(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdate) ClearErrorMessage() *ExtractJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *ExtractJobUpdate) SetExtractionConfidence(v float32) *ExtractJobUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableExtractionConfidence(v *float32) *ExtractJobUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *ExtractJobUpdate) AddExtractionConfidence(v float32) *ExtractJobUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *ExtractJobUpdate) ClearExtractionConfidence() *ExtractJobUpdate {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractJobUpdate) SetNeedsReview(v bool) *ExtractJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableNeedsReview(v *bool) *ExtractJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetDocText sets the "doc_text" field.
func (_u *ExtractJobUpdate) SetDocText(v string) *ExtractJobUpdate {
	_u.mutation.SetDocText(v)
	return _u
}

// SetNillableDocText sets the "doc_text" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableDocText(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetDocText(*v)
	}
	return _u
}

// ClearDocText clears the value of the "doc_text" field.
func (_u *ExtractJobUpdate) ClearDocText() *ExtractJobUpdate {
	_u.mutation.ClearDocText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ExtractJobUpdate) SetExtractedJSON(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ExtractJobUpdate) AppendExtractedJSON(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ExtractJobUpdate) ClearExtractedJSON() *ExtractJobUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetMethod sets the "method" field.
func (_u *ExtractJobUpdate) SetMethod(v string) *ExtractJobUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableMethod(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *ExtractJobUpdate) ClearMethod() *ExtractJobUpdate {
	_u.mutation.ClearMethod()
	return _u
}

// SetMethodParams sets the "method_params" field.
func (_u *ExtractJobUpdate) SetMethodParams(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.SetMethodParams(v)
	return _u
}

// AppendMethodParams appends value to the "method_params" field.
func (_u *ExtractJobUpdate) AppendMethodParams(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.AppendMethodParams(v)
	return _u
}

// ClearMethodParams clears the value of the "method_params" field.
func (_u *ExtractJobUpdate) ClearMethodParams() *ExtractJobUpdate {
	_u.mutation.ClearMethodParams()
	return _u
}

// SetFile sets the "file" edge to the LeaseFile entity.
func (_u *ExtractJobUpdate) SetFile(v *LeaseFile) *ExtractJobUpdate {
	return _u.SetFileID(v.ID)
}

// SetPortfolio sets the "portfolio" edge to the Portfolio entity.
func (_u *ExtractJobUpdate) SetPortfolio(v *Portfolio) *ExtractJobUpdate {
	return _u.SetPortfolioID(v.ID)
}

// SetLease sets the "lease" edge to the Lease entity.
func (_u *ExtractJobUpdate) SetLease(v *Lease) *ExtractJobUpdate {
	return _u.SetLeaseID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdate) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the LeaseFile entity.
func (_u *ExtractJobUpdate) ClearFile() *ExtractJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (_u *ExtractJobUpdate) ClearPortfolio() *ExtractJobUpdate {
	_u.mutation.ClearPortfolio()
	return _u
}

// ClearLease clears the "lease" edge to the Lease entity.
func (_u *ExtractJobUpdate) ClearLease() *ExtractJobUpdate {
	_u.mutation.ClearLease()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.file"`)
	}
	if _u.mutation.PortfolioCleared() && len(_u.mutation.PortfolioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.portfolio"`)
	}
	return nil
}

func (_u *ExtractJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(extractjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(extractjob.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extractjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DocText(); ok {
		_spec.SetField(extractjob.FieldDocText, field.TypeString, value)
	}
	if _u.mutation.DocTextCleared() {
		_spec.ClearField(extractjob.FieldDocText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(extractjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(extractjob.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(extractjob.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.MethodParams(); ok {
		_spec.SetField(extractjob.FieldMethodParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMethodParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldMethodParams, value)
		})
	}
	if _u.mutation.MethodParamsCleared() {
		_spec.ClearField(extractjob.FieldMethodParams, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leasefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leasefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PortfolioCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.PortfolioTable,
			Columns: []string{extractjob.PortfolioColumn},
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
			Table:   extractjob.PortfolioTable,
			Columns: []string{extractjob.PortfolioColumn},
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
			Table:   extractjob.LeaseTable,
			Columns: []string{extractjob.LeaseColumn},
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
			Table:   extractjob.LeaseTable,
			Columns: []string{extractjob.LeaseColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractJobUpdateOne is the builder for updating a single ExtractJob entity.
type ExtractJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *ExtractJobUpdateOne) SetFileID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFileID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetPortfolioID sets the "portfolio_id" field.
func (_u *ExtractJobUpdateOne) SetPortfolioID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetPortfolioID(v)
	return _u
}

// SetNillablePortfolioID sets the "portfolio_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillablePortfolioID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetPortfolioID(*v)
	}
	return _u
}

// SetLeaseID sets the "lease_id" field.
func (_u *ExtractJobUpdateOne) SetLeaseID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetLeaseID(v)
	return _u
}

// SetNillableLeaseID sets the "lease_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableLeaseID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetLeaseID(*v)
	}
	return _u
}

// ClearLeaseID clears the value of the "lease_id" field.
func (_u *ExtractJobUpdateOne) ClearLeaseID() *ExtractJobUpdateOne {
	_u.mutation.ClearLeaseID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractJobUpdateOne) SetFormat(v string) *ExtractJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFormat(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdateOne) SetStartedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdateOne) SetFinishedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdateOne) ClearFinishedAt() *ExtractJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdateOne) SetStatus(v string) *ExtractJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStatus(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ExtractJobUpdateOne) ClearStatus() *ExtractJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdateOne) SetErrorMessage(v string) *ExtractJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdateOne) ClearErrorMessage() *ExtractJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *ExtractJobUpdateOne) SetExtractionConfidence(v float32) *ExtractJobUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableExtractionConfidence(v *float32) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *ExtractJobUpdateOne) AddExtractionConfidence(v float32) *ExtractJobUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *ExtractJobUpdateOne) ClearExtractionConfidence() *ExtractJobUpdateOne {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractJobUpdateOne) SetNeedsReview(v bool) *ExtractJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableNeedsReview(v *bool) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetDocText sets the "doc_text" field.
func (_u *ExtractJobUpdateOne) SetDocText(v string) *ExtractJobUpdateOne {
	_u.mutation.SetDocText(v)
	return _u
}

// SetNillableDocText sets the "doc_text" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableDocText(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetDocText(*v)
	}
	return _u
}

// ClearDocText clears the value of the "doc_text" field.
func (_u *ExtractJobUpdateOne) ClearDocText() *ExtractJobUpdateOne {
	_u.mutation.ClearDocText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ExtractJobUpdateOne) SetExtractedJSON(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ExtractJobUpdateOne) AppendExtractedJSON(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ExtractJobUpdateOne) ClearExtractedJSON() *ExtractJobUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetMethod sets the "method" field.
func (_u *ExtractJobUpdateOne) SetMethod(v string) *ExtractJobUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableMethod(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *ExtractJobUpdateOne) ClearMethod() *ExtractJobUpdateOne {
	_u.mutation.ClearMethod()
	return _u
}

// SetMethodParams sets the "method_params" field.
func (_u *ExtractJobUpdateOne) SetMethodParams(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.SetMethodParams(v)
	return _u
}

// AppendMethodParams appends value to the "method_params" field.
func (_u *ExtractJobUpdateOne) AppendMethodParams(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.AppendMethodParams(v)
	return _u
}

// ClearMethodParams clears the value of the "method_params" field.
func (_u *ExtractJobUpdateOne) ClearMethodParams() *ExtractJobUpdateOne {
	_u.mutation.ClearMethodParams()
	return _u
}

// SetFile sets the "file" edge to the LeaseFile entity.
func (_u *ExtractJobUpdateOne) SetFile(v *LeaseFile) *ExtractJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetPortfolio sets the "portfolio" edge to the Portfolio entity.
func (_u *ExtractJobUpdateOne) SetPortfolio(v *Portfolio) *ExtractJobUpdateOne {
	return _u.SetPortfolioID(v.ID)
}

// SetLease sets the "lease" edge to the Lease entity.
func (_u *ExtractJobUpdateOne) SetLease(v *Lease) *ExtractJobUpdateOne {
	return _u.SetLeaseID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdateOne) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the LeaseFile entity.
func (_u *ExtractJobUpdateOne) ClearFile() *ExtractJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (_u *ExtractJobUpdateOne) ClearPortfolio() *ExtractJobUpdateOne {
	_u.mutation.ClearPortfolio()
	return _u
}

// ClearLease clears the "lease" edge to the Lease entity.
func (_u *ExtractJobUpdateOne) ClearLease() *ExtractJobUpdateOne {
	_u.mutation.ClearLease()
	return _u
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdateOne) Where(ps ...predicate.ExtractJob) *ExtractJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractJobUpdateOne) Select(field string, fields ...string) *ExtractJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractJob entity.
func (_u *ExtractJobUpdateOne) Save(ctx context.Context) (*ExtractJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) SaveX(ctx context.Context) *ExtractJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.file"`)
	}
	if _u.mutation.PortfolioCleared() && len(_u.mutation.PortfolioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.portfolio"`)
	}
	return nil
}

func (_u *ExtractJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractjob.FieldID)
		for _, f := range fields {
			if !extractjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractjob.FieldID {
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
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(extractjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(extractjob.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extractjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DocText(); ok {
		_spec.SetField(extractjob.FieldDocText, field.TypeString, value)
	}
	if _u.mutation.DocTextCleared() {
		_spec.ClearField(extractjob.FieldDocText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(extractjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(extractjob.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(extractjob.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.MethodParams(); ok {
		_spec.SetField(extractjob.FieldMethodParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMethodParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldMethodParams, value)
		})
	}
	if _u.mutation.MethodParamsCleared() {
		_spec.ClearField(extractjob.FieldMethodParams, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leasefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leasefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PortfolioCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.PortfolioTable,
			Columns: []string{extractjob.PortfolioColumn},
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
			Table:   extractjob.PortfolioTable,
			Columns: []string{extractjob.PortfolioColumn},
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
			Table:   extractjob.LeaseTable,
			Columns: []string{extractjob.LeaseColumn},
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
			Table:   extractjob.LeaseTable,
			Columns: []string{extractjob.LeaseColumn},
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
	_node = &ExtractJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
