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

// LeaseUpdate is the builder for updating Lease entities.
type LeaseUpdate struct {
	config
	hooks    []Hook
	mutation *LeaseMutation
}

// Where appends a list predicates to the LeaseUpdate builder.
func (_u *LeaseUpdate) Where(ps ...predicate.Lease) *LeaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPortfolioID sets the "portfolio_id" field.
func (_u *LeaseUpdate) SetPortfolioID(v uuid.UUID) *LeaseUpdate {
	_u.mutation.SetPortfolioID(v)
	return _u
}

// SetNillablePortfolioID sets the "portfolio_id" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillablePortfolioID(v *uuid.UUID) *LeaseUpdate {
	if v != nil {
		_u.SetPortfolioID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LeaseUpdate) SetName(v string) *LeaseUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableName(v *string) *LeaseUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAnnualRent sets the "annual_rent" field.
func (_u *LeaseUpdate) SetAnnualRent(v int) *LeaseUpdate {
	_u.mutation.ResetAnnualRent()
	_u.mutation.SetAnnualRent(v)
	return _u
}

// SetNillableAnnualRent sets the "annual_rent" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableAnnualRent(v *int) *LeaseUpdate {
	if v != nil {
		_u.SetAnnualRent(*v)
	}
	return _u
}

// AddAnnualRent adds value to the "annual_rent" field.
func (_u *LeaseUpdate) AddAnnualRent(v int) *LeaseUpdate {
	_u.mutation.AddAnnualRent(v)
	return _u
}

// ClearAnnualRent clears the value of the "annual_rent" field.
func (_u *LeaseUpdate) ClearAnnualRent() *LeaseUpdate {
	_u.mutation.ClearAnnualRent()
	return _u
}

// SetTermYears sets the "term_years" field.
func (_u *LeaseUpdate) SetTermYears(v int) *LeaseUpdate {
	_u.mutation.ResetTermYears()
	_u.mutation.SetTermYears(v)
	return _u
}

// SetNillableTermYears sets the "term_years" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableTermYears(v *int) *LeaseUpdate {
	if v != nil {
		_u.SetTermYears(*v)
	}
	return _u
}

// AddTermYears adds value to the "term_years" field.
func (_u *LeaseUpdate) AddTermYears(v int) *LeaseUpdate {
	_u.mutation.AddTermYears(v)
	return _u
}

// ClearTermYears clears the value of the "term_years" field.
func (_u *LeaseUpdate) ClearTermYears() *LeaseUpdate {
	_u.mutation.ClearTermYears()
	return _u
}

// SetEscalator sets the "escalator" field.
func (_u *LeaseUpdate) SetEscalator(v float64) *LeaseUpdate {
	_u.mutation.ResetEscalator()
	_u.mutation.SetEscalator(v)
	return _u
}

// SetNillableEscalator sets the "escalator" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableEscalator(v *float64) *LeaseUpdate {
	if v != nil {
		_u.SetEscalator(*v)
	}
	return _u
}

// AddEscalator adds value to the "escalator" field.
func (_u *LeaseUpdate) AddEscalator(v float64) *LeaseUpdate {
	_u.mutation.AddEscalator(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *LeaseUpdate) SetRiskTier(v string) *LeaseUpdate {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableRiskTier(v *string) *LeaseUpdate {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *LeaseUpdate) SetLocation(v string) *LeaseUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableLocation(v *string) *LeaseUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *LeaseUpdate) ClearLocation() *LeaseUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetAcres sets the "acres" field.
func (_u *LeaseUpdate) SetAcres(v float64) *LeaseUpdate {
	_u.mutation.ResetAcres()
	_u.mutation.SetAcres(v)
	return _u
}

// SetNillableAcres sets the "acres" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableAcres(v *float64) *LeaseUpdate {
	if v != nil {
		_u.SetAcres(*v)
	}
	return _u
}

// AddAcres adds value to the "acres" field.
func (_u *LeaseUpdate) AddAcres(v float64) *LeaseUpdate {
	_u.mutation.AddAcres(v)
	return _u
}

// ClearAcres clears the value of the "acres" field.
func (_u *LeaseUpdate) ClearAcres() *LeaseUpdate {
	_u.mutation.ClearAcres()
	return _u
}

// SetDeveloper sets the "developer" field.
func (_u *LeaseUpdate) SetDeveloper(v string) *LeaseUpdate {
	_u.mutation.SetDeveloper(v)
	return _u
}

// SetNillableDeveloper sets the "developer" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableDeveloper(v *string) *LeaseUpdate {
	if v != nil {
		_u.SetDeveloper(*v)
	}
	return _u
}

// ClearDeveloper clears the value of the "developer" field.
func (_u *LeaseUpdate) ClearDeveloper() *LeaseUpdate {
	_u.mutation.ClearDeveloper()
	return _u
}

// SetLandowners sets the "landowners" field.
func (_u *LeaseUpdate) SetLandowners(v string) *LeaseUpdate {
	_u.mutation.SetLandowners(v)
	return _u
}

// SetNillableLandowners sets the "landowners" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableLandowners(v *string) *LeaseUpdate {
	if v != nil {
		_u.SetLandowners(*v)
	}
	return _u
}

// ClearLandowners clears the value of the "landowners" field.
func (_u *LeaseUpdate) ClearLandowners() *LeaseUpdate {
	_u.mutation.ClearLandowners()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *LeaseUpdate) SetNeedsReview(v bool) *LeaseUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableNeedsReview(v *bool) *LeaseUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LeaseUpdate) SetCreatedAt(v time.Time) *LeaseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LeaseUpdate) SetNillableCreatedAt(v *time.Time) *LeaseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeaseUpdate) SetUpdatedAt(v time.Time) *LeaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPortfolio sets the "portfolio" edge to the Portfolio entity.
func (_u *LeaseUpdate) SetPortfolio(v *Portfolio) *LeaseUpdate {
	return _u.SetPortfolioID(v.ID)
}

// AddFileIDs adds the "files" edge to the LeaseFile entity by IDs.
func (_u *LeaseUpdate) AddFileIDs(ids ...uuid.UUID) *LeaseUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the LeaseFile entity.
func (_u *LeaseUpdate) AddFiles(v ...*LeaseFile) *LeaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *LeaseUpdate) AddJobIDs(ids ...uuid.UUID) *LeaseUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *LeaseUpdate) AddJobs(v ...*ExtractJob) *LeaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LeaseMutation object of the builder.
func (_u *LeaseUpdate) Mutation() *LeaseMutation {
	return _u.mutation
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (_u *LeaseUpdate) ClearPortfolio() *LeaseUpdate {
	_u.mutation.ClearPortfolio()
	return _u
}

// ClearFiles clears all "files" edges to the LeaseFile entity.
func (_u *LeaseUpdate) ClearFiles() *LeaseUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to LeaseFile entities by IDs.
func (_u *LeaseUpdate) RemoveFileIDs(ids ...uuid.UUID) *LeaseUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to LeaseFile entities.
func (_u *LeaseUpdate) RemoveFiles(v ...*LeaseFile) *LeaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *LeaseUpdate) ClearJobs() *LeaseUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *LeaseUpdate) RemoveJobIDs(ids ...uuid.UUID) *LeaseUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *LeaseUpdate) RemoveJobs(v ...*ExtractJob) *LeaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lease.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaseUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lease.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lease.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := lease.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "Lease.risk_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Acres(); ok {
		if err := lease.AcresValidator(v); err != nil {
			return &ValidationError{Name: "acres", err: fmt.Errorf(`ent: validator failed for field "Lease.acres": %w`, err)}
		}
	}
	if _u.mutation.PortfolioCleared() && len(_u.mutation.PortfolioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lease.portfolio"`)
	}
	return nil
}

func (_u *LeaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lease.Table, lease.Columns, sqlgraph.NewFieldSpec(lease.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lease.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnnualRent(); ok {
		_spec.SetField(lease.FieldAnnualRent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnnualRent(); ok {
		_spec.AddField(lease.FieldAnnualRent, field.TypeInt, value)
	}
	if _u.mutation.AnnualRentCleared() {
		_spec.ClearField(lease.FieldAnnualRent, field.TypeInt)
	}
	if value, ok := _u.mutation.TermYears(); ok {
		_spec.SetField(lease.FieldTermYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTermYears(); ok {
		_spec.AddField(lease.FieldTermYears, field.TypeInt, value)
	}
	if _u.mutation.TermYearsCleared() {
		_spec.ClearField(lease.FieldTermYears, field.TypeInt)
	}
	if value, ok := _u.mutation.Escalator(); ok {
		_spec.SetField(lease.FieldEscalator, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEscalator(); ok {
		_spec.AddField(lease.FieldEscalator, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(lease.FieldRiskTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(lease.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(lease.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Acres(); ok {
		_spec.SetField(lease.FieldAcres, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAcres(); ok {
		_spec.AddField(lease.FieldAcres, field.TypeFloat64, value)
	}
	if _u.mutation.AcresCleared() {
		_spec.ClearField(lease.FieldAcres, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Developer(); ok {
		_spec.SetField(lease.FieldDeveloper, field.TypeString, value)
	}
	if _u.mutation.DeveloperCleared() {
		_spec.ClearField(lease.FieldDeveloper, field.TypeString)
	}
	if value, ok := _u.mutation.Landowners(); ok {
		_spec.SetField(lease.FieldLandowners, field.TypeString, value)
	}
	if _u.mutation.LandownersCleared() {
		_spec.ClearField(lease.FieldLandowners, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(lease.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(lease.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lease.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PortfolioCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PortfolioIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeaseUpdateOne is the builder for updating a single Lease entity.
type LeaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeaseMutation
}

// SetPortfolioID sets the "portfolio_id" field.
func (_u *LeaseUpdateOne) SetPortfolioID(v uuid.UUID) *LeaseUpdateOne {
	_u.mutation.SetPortfolioID(v)
	return _u
}

// SetNillablePortfolioID sets the "portfolio_id" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillablePortfolioID(v *uuid.UUID) *LeaseUpdateOne {
	if v != nil {
		_u.SetPortfolioID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LeaseUpdateOne) SetName(v string) *LeaseUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableName(v *string) *LeaseUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAnnualRent sets the "annual_rent" field.
func (_u *LeaseUpdateOne) SetAnnualRent(v int) *LeaseUpdateOne {
	_u.mutation.ResetAnnualRent()
	_u.mutation.SetAnnualRent(v)
	return _u
}

// SetNillableAnnualRent sets the "annual_rent" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableAnnualRent(v *int) *LeaseUpdateOne {
	if v != nil {
		_u.SetAnnualRent(*v)
	}
	return _u
}

// AddAnnualRent adds value to the "annual_rent" field.
func (_u *LeaseUpdateOne) AddAnnualRent(v int) *LeaseUpdateOne {
	_u.mutation.AddAnnualRent(v)
	return _u
}

// ClearAnnualRent clears the value of the "annual_rent" field.
func (_u *LeaseUpdateOne) ClearAnnualRent() *LeaseUpdateOne {
	_u.mutation.ClearAnnualRent()
	return _u
}

// SetTermYears sets the "term_years" field.
func (_u *LeaseUpdateOne) SetTermYears(v int) *LeaseUpdateOne {
	_u.mutation.ResetTermYears()
	_u.mutation.SetTermYears(v)
	return _u
}

// SetNillableTermYears sets the "term_years" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableTermYears(v *int) *LeaseUpdateOne {
	if v != nil {
		_u.SetTermYears(*v)
	}
	return _u
}

// AddTermYears adds value to the "term_years" field.
func (_u *LeaseUpdateOne) AddTermYears(v int) *LeaseUpdateOne {
	_u.mutation.AddTermYears(v)
	return _u
}

// ClearTermYears clears the value of the "term_years" field.
func (_u *LeaseUpdateOne) ClearTermYears() *LeaseUpdateOne {
	_u.mutation.ClearTermYears()
	return _u
}

// SetEscalator sets the "escalator" field.
func (_u *LeaseUpdateOne) SetEscalator(v float64) *LeaseUpdateOne {
	_u.mutation.ResetEscalator()
	_u.mutation.SetEscalator(v)
	return _u
}

// SetNillableEscalator sets the "escalator" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableEscalator(v *float64) *LeaseUpdateOne {
	if v != nil {
		_u.SetEscalator(*v)
	}
	return _u
}

// AddEscalator adds value to the "escalator" field.
func (_u *LeaseUpdateOne) AddEscalator(v float64) *LeaseUpdateOne {
	_u.mutation.AddEscalator(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *LeaseUpdateOne) SetRiskTier(v string) *LeaseUpdateOne {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableRiskTier(v *string) *LeaseUpdateOne {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *LeaseUpdateOne) SetLocation(v string) *LeaseUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableLocation(v *string) *LeaseUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *LeaseUpdateOne) ClearLocation() *LeaseUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetAcres sets the "acres" field.
func (_u *LeaseUpdateOne) SetAcres(v float64) *LeaseUpdateOne {
	_u.mutation.ResetAcres()
	_u.mutation.SetAcres(v)
	return _u
}

// SetNillableAcres sets the "acres" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableAcres(v *float64) *LeaseUpdateOne {
	if v != nil {
		_u.SetAcres(*v)
	}
	return _u
}

// AddAcres adds value to the "acres" field.
func (_u *LeaseUpdateOne) AddAcres(v float64) *LeaseUpdateOne {
	_u.mutation.AddAcres(v)
	return _u
}

// ClearAcres clears the value of the "acres" field.
func (_u *LeaseUpdateOne) ClearAcres() *LeaseUpdateOne {
	_u.mutation.ClearAcres()
	return _u
}

// SetDeveloper sets the "developer" field.
func (_u *LeaseUpdateOne) SetDeveloper(v string) *LeaseUpdateOne {
	_u.mutation.SetDeveloper(v)
	return _u
}

// SetNillableDeveloper sets the "developer" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableDeveloper(v *string) *LeaseUpdateOne {
	if v != nil {
		_u.SetDeveloper(*v)
	}
	return _u
}

// ClearDeveloper clears the value of the "developer" field.
func (_u *LeaseUpdateOne) ClearDeveloper() *LeaseUpdateOne {
	_u.mutation.ClearDeveloper()
	return _u
}

// SetLandowners sets the "landowners" field.
func (_u *LeaseUpdateOne) SetLandowners(v string) *LeaseUpdateOne {
	_u.mutation.SetLandowners(v)
	return _u
}

// SetNillableLandowners sets the "landowners" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableLandowners(v *string) *LeaseUpdateOne {
	if v != nil {
		_u.SetLandowners(*v)
	}
	return _u
}

// ClearLandowners clears the value of the "landowners" field.
func (_u *LeaseUpdateOne) ClearLandowners() *LeaseUpdateOne {
	_u.mutation.ClearLandowners()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *LeaseUpdateOne) SetNeedsReview(v bool) *LeaseUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableNeedsReview(v *bool) *LeaseUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LeaseUpdateOne) SetCreatedAt(v time.Time) *LeaseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LeaseUpdateOne) SetNillableCreatedAt(v *time.Time) *LeaseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeaseUpdateOne) SetUpdatedAt(v time.Time) *LeaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPortfolio sets the "portfolio" edge to the Portfolio entity.
func (_u *LeaseUpdateOne) SetPortfolio(v *Portfolio) *LeaseUpdateOne {
	return _u.SetPortfolioID(v.ID)
}

// AddFileIDs adds the "files" edge to the LeaseFile entity by IDs.
func (_u *LeaseUpdateOne) AddFileIDs(ids ...uuid.UUID) *LeaseUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the LeaseFile entity.
func (_u *LeaseUpdateOne) AddFiles(v ...*LeaseFile) *LeaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *LeaseUpdateOne) AddJobIDs(ids ...uuid.UUID) *LeaseUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *LeaseUpdateOne) AddJobs(v ...*ExtractJob) *LeaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LeaseMutation object of the builder.
func (_u *LeaseUpdateOne) Mutation() *LeaseMutation {
	return _u.mutation
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (_u *LeaseUpdateOne) ClearPortfolio() *LeaseUpdateOne {
	_u.mutation.ClearPortfolio()
	return _u
}

// ClearFiles clears all "files" edges to the LeaseFile entity.
func (_u *LeaseUpdateOne) ClearFiles() *LeaseUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to LeaseFile entities by IDs.
func (_u *LeaseUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *LeaseUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to LeaseFile entities.
func (_u *LeaseUpdateOne) RemoveFiles(v ...*LeaseFile) *LeaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *LeaseUpdateOne) ClearJobs() *LeaseUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *LeaseUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *LeaseUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *LeaseUpdateOne) RemoveJobs(v ...*ExtractJob) *LeaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the LeaseUpdate builder.
func (_u *LeaseUpdateOne) Where(ps ...predicate.Lease) *LeaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeaseUpdateOne) Select(field string, fields ...string) *LeaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lease entity.
func (_u *LeaseUpdateOne) Save(ctx context.Context) (*Lease, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaseUpdateOne) SaveX(ctx context.Context) *Lease {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lease.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaseUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lease.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lease.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := lease.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "Lease.risk_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Acres(); ok {
		if err := lease.AcresValidator(v); err != nil {
			return &ValidationError{Name: "acres", err: fmt.Errorf(`ent: validator failed for field "Lease.acres": %w`, err)}
		}
	}
	if _u.mutation.PortfolioCleared() && len(_u.mutation.PortfolioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lease.portfolio"`)
	}
	return nil
}

func (_u *LeaseUpdateOne) sqlSave(ctx context.Context) (_node *Lease, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lease.Table, lease.Columns, sqlgraph.NewFieldSpec(lease.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lease.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lease.FieldID)
		for _, f := range fields {
			if !lease.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lease.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lease.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnnualRent(); ok {
		_spec.SetField(lease.FieldAnnualRent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnnualRent(); ok {
		_spec.AddField(lease.FieldAnnualRent, field.TypeInt, value)
	}
	if _u.mutation.AnnualRentCleared() {
		_spec.ClearField(lease.FieldAnnualRent, field.TypeInt)
	}
	if value, ok := _u.mutation.TermYears(); ok {
		_spec.SetField(lease.FieldTermYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTermYears(); ok {
		_spec.AddField(lease.FieldTermYears, field.TypeInt, value)
	}
	if _u.mutation.TermYearsCleared() {
		_spec.ClearField(lease.FieldTermYears, field.TypeInt)
	}
	if value, ok := _u.mutation.Escalator(); ok {
		_spec.SetField(lease.FieldEscalator, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEscalator(); ok {
		_spec.AddField(lease.FieldEscalator, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(lease.FieldRiskTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(lease.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(lease.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Acres(); ok {
		_spec.SetField(lease.FieldAcres, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAcres(); ok {
		_spec.AddField(lease.FieldAcres, field.TypeFloat64, value)
	}
	if _u.mutation.AcresCleared() {
		_spec.ClearField(lease.FieldAcres, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Developer(); ok {
		_spec.SetField(lease.FieldDeveloper, field.TypeString, value)
	}
	if _u.mutation.DeveloperCleared() {
		_spec.ClearField(lease.FieldDeveloper, field.TypeString)
	}
	if value, ok := _u.mutation.Landowners(); ok {
		_spec.SetField(lease.FieldLandowners, field.TypeString, value)
	}
	if _u.mutation.LandownersCleared() {
		_spec.ClearField(lease.FieldLandowners, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(lease.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(lease.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lease.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PortfolioCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PortfolioIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lease{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
