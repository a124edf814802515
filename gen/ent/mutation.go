// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/extractjob"
	"github.com/solargrid-io/lease-tracker/gen/ent/lease"
	"github.com/solargrid-io/lease-tracker/gen/ent/leasefile"
	"github.com/solargrid-io/lease-tracker/gen/ent/portfolio"
	"github.com/solargrid-io/lease-tracker/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractJob = "ExtractJob"
	TypeLease      = "Lease"
	TypeLeaseFile  = "LeaseFile"
	TypePortfolio  = "Portfolio"
)

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	format                   *string
	started_at               *time.Time
	finished_at              *time.Time
	status                   *string
	error_message            *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	needs_review             *bool
	doc_text                 *string
	extracted_json           *json.RawMessage
	appendextracted_json     json.RawMessage
	method                   *string
	method_params            *json.RawMessage
	appendmethod_params      json.RawMessage
	clearedFields            map[string]struct{}
	file                     *uuid.UUID
	clearedfile              bool
	portfolio                *uuid.UUID
	clearedportfolio         bool
	lease                    *uuid.UUID
	clearedlease             bool
	done                     bool
	oldValue                 func(context.Context) (*ExtractJob, error)
	predicates               []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractJobMutation) ResetFileID() {
	m.file = nil
}

// SetPortfolioID sets the "portfolio_id" field.
func (m *ExtractJobMutation) SetPortfolioID(u uuid.UUID) {
	m.portfolio = &u
}

// PortfolioID returns the value of the "portfolio_id" field in the mutation.
func (m *ExtractJobMutation) PortfolioID() (r uuid.UUID, exists bool) {
	v := m.portfolio
	if v == nil {
		return
	}
	return *v, true
}

// OldPortfolioID returns the old "portfolio_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldPortfolioID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPortfolioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPortfolioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPortfolioID: %w", err)
	}
	return oldValue.PortfolioID, nil
}

// ResetPortfolioID resets all changes to the "portfolio_id" field.
func (m *ExtractJobMutation) ResetPortfolioID() {
	m.portfolio = nil
}

// SetLeaseID sets the "lease_id" field.
func (m *ExtractJobMutation) SetLeaseID(u uuid.UUID) {
	m.lease = &u
}

// LeaseID returns the value of the "lease_id" field in the mutation.
func (m *ExtractJobMutation) LeaseID() (r uuid.UUID, exists bool) {
	v := m.lease
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseID returns the old "lease_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldLeaseID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseID: %w", err)
	}
	return oldValue.LeaseID, nil
}

// ClearLeaseID clears the value of the "lease_id" field.
func (m *ExtractJobMutation) ClearLeaseID() {
	m.lease = nil
	m.clearedFields[extractjob.FieldLeaseID] = struct{}{}
}

// LeaseIDCleared returns if the "lease_id" field was cleared in this mutation.
func (m *ExtractJobMutation) LeaseIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldLeaseID]
	return ok
}

// ResetLeaseID resets all changes to the "lease_id" field.
func (m *ExtractJobMutation) ResetLeaseID() {
	m.lease = nil
	delete(m.clearedFields, extractjob.FieldLeaseID)
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ExtractJobMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ExtractJobMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ExtractJobMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ExtractJobMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *ExtractJobMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[extractjob.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ExtractJobMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, extractjob.FieldExtractionConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetDocText sets the "doc_text" field.
func (m *ExtractJobMutation) SetDocText(s string) {
	m.doc_text = &s
}

// DocText returns the value of the "doc_text" field in the mutation.
func (m *ExtractJobMutation) DocText() (r string, exists bool) {
	v := m.doc_text
	if v == nil {
		return
	}
	return *v, true
}

// OldDocText returns the old "doc_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldDocText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocText: %w", err)
	}
	return oldValue.DocText, nil
}

// ClearDocText clears the value of the "doc_text" field.
func (m *ExtractJobMutation) ClearDocText() {
	m.doc_text = nil
	m.clearedFields[extractjob.FieldDocText] = struct{}{}
}

// DocTextCleared returns if the "doc_text" field was cleared in this mutation.
func (m *ExtractJobMutation) DocTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldDocText]
	return ok
}

// ResetDocText resets all changes to the "doc_text" field.
func (m *ExtractJobMutation) ResetDocText() {
	m.doc_text = nil
	delete(m.clearedFields, extractjob.FieldDocText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// SetMethod sets the "method" field.
func (m *ExtractJobMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ExtractJobMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *ExtractJobMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[extractjob.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *ExtractJobMutation) MethodCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *ExtractJobMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, extractjob.FieldMethod)
}

// SetMethodParams sets the "method_params" field.
func (m *ExtractJobMutation) SetMethodParams(jm json.RawMessage) {
	m.method_params = &jm
	m.appendmethod_params = nil
}

// MethodParams returns the value of the "method_params" field in the mutation.
func (m *ExtractJobMutation) MethodParams() (r json.RawMessage, exists bool) {
	v := m.method_params
	if v == nil {
		return
	}
	return *v, true
}

// OldMethodParams returns the old "method_params" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldMethodParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethodParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethodParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethodParams: %w", err)
	}
	return oldValue.MethodParams, nil
}

// AppendMethodParams adds jm to the "method_params" field.
func (m *ExtractJobMutation) AppendMethodParams(jm json.RawMessage) {
	m.appendmethod_params = append(m.appendmethod_params, jm...)
}

// AppendedMethodParams returns the list of values that were appended to the "method_params" field in this mutation.
func (m *ExtractJobMutation) AppendedMethodParams() (json.RawMessage, bool) {
	if len(m.appendmethod_params) == 0 {
		return nil, false
	}
	return m.appendmethod_params, true
}

// ClearMethodParams clears the value of the "method_params" field.
func (m *ExtractJobMutation) ClearMethodParams() {
	m.method_params = nil
	m.appendmethod_params = nil
	m.clearedFields[extractjob.FieldMethodParams] = struct{}{}
}

// MethodParamsCleared returns if the "method_params" field was cleared in this mutation.
func (m *ExtractJobMutation) MethodParamsCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldMethodParams]
	return ok
}

// ResetMethodParams resets all changes to the "method_params" field.
func (m *ExtractJobMutation) ResetMethodParams() {
	m.method_params = nil
	m.appendmethod_params = nil
	delete(m.clearedFields, extractjob.FieldMethodParams)
}

// ClearFile clears the "file" edge to the LeaseFile entity.
func (m *ExtractJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the LeaseFile entity was cleared.
func (m *ExtractJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (m *ExtractJobMutation) ClearPortfolio() {
	m.clearedportfolio = true
	m.clearedFields[extractjob.FieldPortfolioID] = struct{}{}
}

// PortfolioCleared reports if the "portfolio" edge to the Portfolio entity was cleared.
func (m *ExtractJobMutation) PortfolioCleared() bool {
	return m.clearedportfolio
}

// PortfolioIDs returns the "portfolio" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PortfolioID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) PortfolioIDs() (ids []uuid.UUID) {
	if id := m.portfolio; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPortfolio resets all changes to the "portfolio" edge.
func (m *ExtractJobMutation) ResetPortfolio() {
	m.portfolio = nil
	m.clearedportfolio = false
}

// ClearLease clears the "lease" edge to the Lease entity.
func (m *ExtractJobMutation) ClearLease() {
	m.clearedlease = true
	m.clearedFields[extractjob.FieldLeaseID] = struct{}{}
}

// LeaseCleared reports if the "lease" edge to the Lease entity was cleared.
func (m *ExtractJobMutation) LeaseCleared() bool {
	return m.LeaseIDCleared() || m.clearedlease
}

// LeaseIDs returns the "lease" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeaseID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) LeaseIDs() (ids []uuid.UUID) {
	if id := m.lease; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLease resets all changes to the "lease" edge.
func (m *ExtractJobMutation) ResetLease() {
	m.lease = nil
	m.clearedlease = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.file != nil {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.portfolio != nil {
		fields = append(fields, extractjob.FieldPortfolioID)
	}
	if m.lease != nil {
		fields = append(fields, extractjob.FieldLeaseID)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, extractjob.FieldNeedsReview)
	}
	if m.doc_text != nil {
		fields = append(fields, extractjob.FieldDocText)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.method != nil {
		fields = append(fields, extractjob.FieldMethod)
	}
	if m.method_params != nil {
		fields = append(fields, extractjob.FieldMethodParams)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldFileID:
		return m.FileID()
	case extractjob.FieldPortfolioID:
		return m.PortfolioID()
	case extractjob.FieldLeaseID:
		return m.LeaseID()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case extractjob.FieldNeedsReview:
		return m.NeedsReview()
	case extractjob.FieldDocText:
		return m.DocText()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractjob.FieldMethod:
		return m.Method()
	case extractjob.FieldMethodParams:
		return m.MethodParams()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldFileID:
		return m.OldFileID(ctx)
	case extractjob.FieldPortfolioID:
		return m.OldPortfolioID(ctx)
	case extractjob.FieldLeaseID:
		return m.OldLeaseID(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case extractjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractjob.FieldDocText:
		return m.OldDocText(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractjob.FieldMethod:
		return m.OldMethod(ctx)
	case extractjob.FieldMethodParams:
		return m.OldMethodParams(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractjob.FieldPortfolioID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPortfolioID(v)
		return nil
	case extractjob.FieldLeaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseID(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case extractjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractjob.FieldDocText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocText(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractjob.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case extractjob.FieldMethodParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethodParams(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldLeaseID) {
		fields = append(fields, extractjob.FieldLeaseID)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldExtractionConfidence) {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.FieldCleared(extractjob.FieldDocText) {
		fields = append(fields, extractjob.FieldDocText)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.FieldCleared(extractjob.FieldMethod) {
		fields = append(fields, extractjob.FieldMethod)
	}
	if m.FieldCleared(extractjob.FieldMethodParams) {
		fields = append(fields, extractjob.FieldMethodParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldLeaseID:
		m.ClearLeaseID()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case extractjob.FieldDocText:
		m.ClearDocText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractjob.FieldMethod:
		m.ClearMethod()
		return nil
	case extractjob.FieldMethodParams:
		m.ClearMethodParams()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldFileID:
		m.ResetFileID()
		return nil
	case extractjob.FieldPortfolioID:
		m.ResetPortfolioID()
		return nil
	case extractjob.FieldLeaseID:
		m.ResetLeaseID()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case extractjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractjob.FieldDocText:
		m.ResetDocText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractjob.FieldMethod:
		m.ResetMethod()
		return nil
	case extractjob.FieldMethodParams:
		m.ResetMethodParams()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.file != nil {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.portfolio != nil {
		edges = append(edges, extractjob.EdgePortfolio)
	}
	if m.lease != nil {
		edges = append(edges, extractjob.EdgeLease)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgePortfolio:
		if id := m.portfolio; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeLease:
		if id := m.lease; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfile {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.clearedportfolio {
		edges = append(edges, extractjob.EdgePortfolio)
	}
	if m.clearedlease {
		edges = append(edges, extractjob.EdgeLease)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeFile:
		return m.clearedfile
	case extractjob.EdgePortfolio:
		return m.clearedportfolio
	case extractjob.EdgeLease:
		return m.clearedlease
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ClearFile()
		return nil
	case extractjob.EdgePortfolio:
		m.ClearPortfolio()
		return nil
	case extractjob.EdgeLease:
		m.ClearLease()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ResetFile()
		return nil
	case extractjob.EdgePortfolio:
		m.ResetPortfolio()
		return nil
	case extractjob.EdgeLease:
		m.ResetLease()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// LeaseMutation represents an operation that mutates the Lease nodes in the graph.
type LeaseMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	annual_rent      *int
	addannual_rent   *int
	term_years       *int
	addterm_years    *int
	escalator        *float64
	addescalator     *float64
	risk_tier        *string
	location         *string
	acres            *float64
	addacres         *float64
	developer        *string
	landowners       *string
	needs_review     *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	portfolio        *uuid.UUID
	clearedportfolio bool
	files            map[uuid.UUID]struct{}
	removedfiles     map[uuid.UUID]struct{}
	clearedfiles     bool
	jobs             map[uuid.UUID]struct{}
	removedjobs      map[uuid.UUID]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*Lease, error)
	predicates       []predicate.Lease
}

var _ ent.Mutation = (*LeaseMutation)(nil)

// leaseOption allows management of the mutation configuration using functional options.
type leaseOption func(*LeaseMutation)

// newLeaseMutation creates new mutation for the Lease entity.
func newLeaseMutation(c config, op Op, opts ...leaseOption) *LeaseMutation {
	m := &LeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeaseID sets the ID field of the mutation.
func withLeaseID(id uuid.UUID) leaseOption {
	return func(m *LeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *Lease
		)
		m.oldValue = func(ctx context.Context) (*Lease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLease sets the old Lease of the mutation.
func withLease(node *Lease) leaseOption {
	return func(m *LeaseMutation) {
		m.oldValue = func(context.Context) (*Lease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lease entities.
func (m *LeaseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeaseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeaseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPortfolioID sets the "portfolio_id" field.
func (m *LeaseMutation) SetPortfolioID(u uuid.UUID) {
	m.portfolio = &u
}

// PortfolioID returns the value of the "portfolio_id" field in the mutation.
func (m *LeaseMutation) PortfolioID() (r uuid.UUID, exists bool) {
	v := m.portfolio
	if v == nil {
		return
	}
	return *v, true
}

// OldPortfolioID returns the old "portfolio_id" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldPortfolioID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPortfolioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPortfolioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPortfolioID: %w", err)
	}
	return oldValue.PortfolioID, nil
}

// ResetPortfolioID resets all changes to the "portfolio_id" field.
func (m *LeaseMutation) ResetPortfolioID() {
	m.portfolio = nil
}

// SetName sets the "name" field.
func (m *LeaseMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LeaseMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LeaseMutation) ResetName() {
	m.name = nil
}

// SetAnnualRent sets the "annual_rent" field.
func (m *LeaseMutation) SetAnnualRent(i int) {
	m.annual_rent = &i
	m.addannual_rent = nil
}

// AnnualRent returns the value of the "annual_rent" field in the mutation.
func (m *LeaseMutation) AnnualRent() (r int, exists bool) {
	v := m.annual_rent
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnualRent returns the old "annual_rent" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldAnnualRent(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnualRent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnualRent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnualRent: %w", err)
	}
	return oldValue.AnnualRent, nil
}

// AddAnnualRent adds i to the "annual_rent" field.
func (m *LeaseMutation) AddAnnualRent(i int) {
	if m.addannual_rent != nil {
		*m.addannual_rent += i
	} else {
		m.addannual_rent = &i
	}
}

// AddedAnnualRent returns the value that was added to the "annual_rent" field in this mutation.
func (m *LeaseMutation) AddedAnnualRent() (r int, exists bool) {
	v := m.addannual_rent
	if v == nil {
		return
	}
	return *v, true
}

// ClearAnnualRent clears the value of the "annual_rent" field.
func (m *LeaseMutation) ClearAnnualRent() {
	m.annual_rent = nil
	m.addannual_rent = nil
	m.clearedFields[lease.FieldAnnualRent] = struct{}{}
}

// AnnualRentCleared returns if the "annual_rent" field was cleared in this mutation.
func (m *LeaseMutation) AnnualRentCleared() bool {
	_, ok := m.clearedFields[lease.FieldAnnualRent]
	return ok
}

// ResetAnnualRent resets all changes to the "annual_rent" field.
func (m *LeaseMutation) ResetAnnualRent() {
	m.annual_rent = nil
	m.addannual_rent = nil
	delete(m.clearedFields, lease.FieldAnnualRent)
}

// SetTermYears sets the "term_years" field.
func (m *LeaseMutation) SetTermYears(i int) {
	m.term_years = &i
	m.addterm_years = nil
}

// TermYears returns the value of the "term_years" field in the mutation.
func (m *LeaseMutation) TermYears() (r int, exists bool) {
	v := m.term_years
	if v == nil {
		return
	}
	return *v, true
}

// OldTermYears returns the old "term_years" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldTermYears(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTermYears is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTermYears requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTermYears: %w", err)
	}
	return oldValue.TermYears, nil
}

// AddTermYears adds i to the "term_years" field.
func (m *LeaseMutation) AddTermYears(i int) {
	if m.addterm_years != nil {
		*m.addterm_years += i
	} else {
		m.addterm_years = &i
	}
}

// AddedTermYears returns the value that was added to the "term_years" field in this mutation.
func (m *LeaseMutation) AddedTermYears() (r int, exists bool) {
	v := m.addterm_years
	if v == nil {
		return
	}
	return *v, true
}

// ClearTermYears clears the value of the "term_years" field.
func (m *LeaseMutation) ClearTermYears() {
	m.term_years = nil
	m.addterm_years = nil
	m.clearedFields[lease.FieldTermYears] = struct{}{}
}

// TermYearsCleared returns if the "term_years" field was cleared in this mutation.
func (m *LeaseMutation) TermYearsCleared() bool {
	_, ok := m.clearedFields[lease.FieldTermYears]
	return ok
}

// ResetTermYears resets all changes to the "term_years" field.
func (m *LeaseMutation) ResetTermYears() {
	m.term_years = nil
	m.addterm_years = nil
	delete(m.clearedFields, lease.FieldTermYears)
}

// SetEscalator sets the "escalator" field.
func (m *LeaseMutation) SetEscalator(f float64) {
	m.escalator = &f
	m.addescalator = nil
}

// Escalator returns the value of the "escalator" field in the mutation.
func (m *LeaseMutation) Escalator() (r float64, exists bool) {
	v := m.escalator
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalator returns the old "escalator" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldEscalator(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalator: %w", err)
	}
	return oldValue.Escalator, nil
}

// AddEscalator adds f to the "escalator" field.
func (m *LeaseMutation) AddEscalator(f float64) {
	if m.addescalator != nil {
		*m.addescalator += f
	} else {
		m.addescalator = &f
	}
}

// AddedEscalator returns the value that was added to the "escalator" field in this mutation.
func (m *LeaseMutation) AddedEscalator() (r float64, exists bool) {
	v := m.addescalator
	if v == nil {
		return
	}
	return *v, true
}

// ResetEscalator resets all changes to the "escalator" field.
func (m *LeaseMutation) ResetEscalator() {
	m.escalator = nil
	m.addescalator = nil
}

// SetRiskTier sets the "risk_tier" field.
func (m *LeaseMutation) SetRiskTier(s string) {
	m.risk_tier = &s
}

// RiskTier returns the value of the "risk_tier" field in the mutation.
func (m *LeaseMutation) RiskTier() (r string, exists bool) {
	v := m.risk_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskTier returns the old "risk_tier" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldRiskTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskTier: %w", err)
	}
	return oldValue.RiskTier, nil
}

// ResetRiskTier resets all changes to the "risk_tier" field.
func (m *LeaseMutation) ResetRiskTier() {
	m.risk_tier = nil
}

// SetLocation sets the "location" field.
func (m *LeaseMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *LeaseMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *LeaseMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[lease.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *LeaseMutation) LocationCleared() bool {
	_, ok := m.clearedFields[lease.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *LeaseMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, lease.FieldLocation)
}

// SetAcres sets the "acres" field.
func (m *LeaseMutation) SetAcres(f float64) {
	m.acres = &f
	m.addacres = nil
}

// Acres returns the value of the "acres" field in the mutation.
func (m *LeaseMutation) Acres() (r float64, exists bool) {
	v := m.acres
	if v == nil {
		return
	}
	return *v, true
}

// OldAcres returns the old "acres" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldAcres(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcres is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcres requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcres: %w", err)
	}
	return oldValue.Acres, nil
}

// AddAcres adds f to the "acres" field.
func (m *LeaseMutation) AddAcres(f float64) {
	if m.addacres != nil {
		*m.addacres += f
	} else {
		m.addacres = &f
	}
}

// AddedAcres returns the value that was added to the "acres" field in this mutation.
func (m *LeaseMutation) AddedAcres() (r float64, exists bool) {
	v := m.addacres
	if v == nil {
		return
	}
	return *v, true
}

// ClearAcres clears the value of the "acres" field.
func (m *LeaseMutation) ClearAcres() {
	m.acres = nil
	m.addacres = nil
	m.clearedFields[lease.FieldAcres] = struct{}{}
}

// AcresCleared returns if the "acres" field was cleared in this mutation.
func (m *LeaseMutation) AcresCleared() bool {
	_, ok := m.clearedFields[lease.FieldAcres]
	return ok
}

// ResetAcres resets all changes to the "acres" field.
func (m *LeaseMutation) ResetAcres() {
	m.acres = nil
	m.addacres = nil
	delete(m.clearedFields, lease.FieldAcres)
}

// SetDeveloper sets the "developer" field.
func (m *LeaseMutation) SetDeveloper(s string) {
	m.developer = &s
}

// Developer returns the value of the "developer" field in the mutation.
func (m *LeaseMutation) Developer() (r string, exists bool) {
	v := m.developer
	if v == nil {
		return
	}
	return *v, true
}

// OldDeveloper returns the old "developer" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldDeveloper(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeveloper is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeveloper requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeveloper: %w", err)
	}
	return oldValue.Developer, nil
}

// ClearDeveloper clears the value of the "developer" field.
func (m *LeaseMutation) ClearDeveloper() {
	m.developer = nil
	m.clearedFields[lease.FieldDeveloper] = struct{}{}
}

// DeveloperCleared returns if the "developer" field was cleared in this mutation.
func (m *LeaseMutation) DeveloperCleared() bool {
	_, ok := m.clearedFields[lease.FieldDeveloper]
	return ok
}

// ResetDeveloper resets all changes to the "developer" field.
func (m *LeaseMutation) ResetDeveloper() {
	m.developer = nil
	delete(m.clearedFields, lease.FieldDeveloper)
}

// SetLandowners sets the "landowners" field.
func (m *LeaseMutation) SetLandowners(s string) {
	m.landowners = &s
}

// Landowners returns the value of the "landowners" field in the mutation.
func (m *LeaseMutation) Landowners() (r string, exists bool) {
	v := m.landowners
	if v == nil {
		return
	}
	return *v, true
}

// OldLandowners returns the old "landowners" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldLandowners(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLandowners is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLandowners requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLandowners: %w", err)
	}
	return oldValue.Landowners, nil
}

// ClearLandowners clears the value of the "landowners" field.
func (m *LeaseMutation) ClearLandowners() {
	m.landowners = nil
	m.clearedFields[lease.FieldLandowners] = struct{}{}
}

// LandownersCleared returns if the "landowners" field was cleared in this mutation.
func (m *LeaseMutation) LandownersCleared() bool {
	_, ok := m.clearedFields[lease.FieldLandowners]
	return ok
}

// ResetLandowners resets all changes to the "landowners" field.
func (m *LeaseMutation) ResetLandowners() {
	m.landowners = nil
	delete(m.clearedFields, lease.FieldLandowners)
}

// SetNeedsReview sets the "needs_review" field.
func (m *LeaseMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *LeaseMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *LeaseMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (m *LeaseMutation) ClearPortfolio() {
	m.clearedportfolio = true
	m.clearedFields[lease.FieldPortfolioID] = struct{}{}
}

// PortfolioCleared reports if the "portfolio" edge to the Portfolio entity was cleared.
func (m *LeaseMutation) PortfolioCleared() bool {
	return m.clearedportfolio
}

// PortfolioIDs returns the "portfolio" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PortfolioID instead. It exists only for internal usage by the builders.
func (m *LeaseMutation) PortfolioIDs() (ids []uuid.UUID) {
	if id := m.portfolio; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPortfolio resets all changes to the "portfolio" edge.
func (m *LeaseMutation) ResetPortfolio() {
	m.portfolio = nil
	m.clearedportfolio = false
}

// AddFileIDs adds the "files" edge to the LeaseFile entity by ids.
func (m *LeaseMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the LeaseFile entity.
func (m *LeaseMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the LeaseFile entity was cleared.
func (m *LeaseMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the LeaseFile entity by IDs.
func (m *LeaseMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the LeaseFile entity.
func (m *LeaseMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *LeaseMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *LeaseMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *LeaseMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *LeaseMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *LeaseMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *LeaseMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *LeaseMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *LeaseMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *LeaseMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the LeaseMutation builder.
func (m *LeaseMutation) Where(ps ...predicate.Lease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lease).
func (m *LeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeaseMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.portfolio != nil {
		fields = append(fields, lease.FieldPortfolioID)
	}
	if m.name != nil {
		fields = append(fields, lease.FieldName)
	}
	if m.annual_rent != nil {
		fields = append(fields, lease.FieldAnnualRent)
	}
	if m.term_years != nil {
		fields = append(fields, lease.FieldTermYears)
	}
	if m.escalator != nil {
		fields = append(fields, lease.FieldEscalator)
	}
	if m.risk_tier != nil {
		fields = append(fields, lease.FieldRiskTier)
	}
	if m.location != nil {
		fields = append(fields, lease.FieldLocation)
	}
	if m.acres != nil {
		fields = append(fields, lease.FieldAcres)
	}
	if m.developer != nil {
		fields = append(fields, lease.FieldDeveloper)
	}
	if m.landowners != nil {
		fields = append(fields, lease.FieldLandowners)
	}
	if m.needs_review != nil {
		fields = append(fields, lease.FieldNeedsReview)
	}
	if m.created_at != nil {
		fields = append(fields, lease.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lease.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lease.FieldPortfolioID:
		return m.PortfolioID()
	case lease.FieldName:
		return m.Name()
	case lease.FieldAnnualRent:
		return m.AnnualRent()
	case lease.FieldTermYears:
		return m.TermYears()
	case lease.FieldEscalator:
		return m.Escalator()
	case lease.FieldRiskTier:
		return m.RiskTier()
	case lease.FieldLocation:
		return m.Location()
	case lease.FieldAcres:
		return m.Acres()
	case lease.FieldDeveloper:
		return m.Developer()
	case lease.FieldLandowners:
		return m.Landowners()
	case lease.FieldNeedsReview:
		return m.NeedsReview()
	case lease.FieldCreatedAt:
		return m.CreatedAt()
	case lease.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lease.FieldPortfolioID:
		return m.OldPortfolioID(ctx)
	case lease.FieldName:
		return m.OldName(ctx)
	case lease.FieldAnnualRent:
		return m.OldAnnualRent(ctx)
	case lease.FieldTermYears:
		return m.OldTermYears(ctx)
	case lease.FieldEscalator:
		return m.OldEscalator(ctx)
	case lease.FieldRiskTier:
		return m.OldRiskTier(ctx)
	case lease.FieldLocation:
		return m.OldLocation(ctx)
	case lease.FieldAcres:
		return m.OldAcres(ctx)
	case lease.FieldDeveloper:
		return m.OldDeveloper(ctx)
	case lease.FieldLandowners:
		return m.OldLandowners(ctx)
	case lease.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case lease.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lease.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lease.FieldPortfolioID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPortfolioID(v)
		return nil
	case lease.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lease.FieldAnnualRent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnualRent(v)
		return nil
	case lease.FieldTermYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTermYears(v)
		return nil
	case lease.FieldEscalator:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalator(v)
		return nil
	case lease.FieldRiskTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskTier(v)
		return nil
	case lease.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case lease.FieldAcres:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcres(v)
		return nil
	case lease.FieldDeveloper:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeveloper(v)
		return nil
	case lease.FieldLandowners:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLandowners(v)
		return nil
	case lease.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case lease.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lease.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeaseMutation) AddedFields() []string {
	var fields []string
	if m.addannual_rent != nil {
		fields = append(fields, lease.FieldAnnualRent)
	}
	if m.addterm_years != nil {
		fields = append(fields, lease.FieldTermYears)
	}
	if m.addescalator != nil {
		fields = append(fields, lease.FieldEscalator)
	}
	if m.addacres != nil {
		fields = append(fields, lease.FieldAcres)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lease.FieldAnnualRent:
		return m.AddedAnnualRent()
	case lease.FieldTermYears:
		return m.AddedTermYears()
	case lease.FieldEscalator:
		return m.AddedEscalator()
	case lease.FieldAcres:
		return m.AddedAcres()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lease.FieldAnnualRent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnnualRent(v)
		return nil
	case lease.FieldTermYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTermYears(v)
		return nil
	case lease.FieldEscalator:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEscalator(v)
		return nil
	case lease.FieldAcres:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAcres(v)
		return nil
	}
	return fmt.Errorf("unknown Lease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lease.FieldAnnualRent) {
		fields = append(fields, lease.FieldAnnualRent)
	}
	if m.FieldCleared(lease.FieldTermYears) {
		fields = append(fields, lease.FieldTermYears)
	}
	if m.FieldCleared(lease.FieldLocation) {
		fields = append(fields, lease.FieldLocation)
	}
	if m.FieldCleared(lease.FieldAcres) {
		fields = append(fields, lease.FieldAcres)
	}
	if m.FieldCleared(lease.FieldDeveloper) {
		fields = append(fields, lease.FieldDeveloper)
	}
	if m.FieldCleared(lease.FieldLandowners) {
		fields = append(fields, lease.FieldLandowners)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeaseMutation) ClearField(name string) error {
	switch name {
	case lease.FieldAnnualRent:
		m.ClearAnnualRent()
		return nil
	case lease.FieldTermYears:
		m.ClearTermYears()
		return nil
	case lease.FieldLocation:
		m.ClearLocation()
		return nil
	case lease.FieldAcres:
		m.ClearAcres()
		return nil
	case lease.FieldDeveloper:
		m.ClearDeveloper()
		return nil
	case lease.FieldLandowners:
		m.ClearLandowners()
		return nil
	}
	return fmt.Errorf("unknown Lease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeaseMutation) ResetField(name string) error {
	switch name {
	case lease.FieldPortfolioID:
		m.ResetPortfolioID()
		return nil
	case lease.FieldName:
		m.ResetName()
		return nil
	case lease.FieldAnnualRent:
		m.ResetAnnualRent()
		return nil
	case lease.FieldTermYears:
		m.ResetTermYears()
		return nil
	case lease.FieldEscalator:
		m.ResetEscalator()
		return nil
	case lease.FieldRiskTier:
		m.ResetRiskTier()
		return nil
	case lease.FieldLocation:
		m.ResetLocation()
		return nil
	case lease.FieldAcres:
		m.ResetAcres()
		return nil
	case lease.FieldDeveloper:
		m.ResetDeveloper()
		return nil
	case lease.FieldLandowners:
		m.ResetLandowners()
		return nil
	case lease.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case lease.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lease.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.portfolio != nil {
		edges = append(edges, lease.EdgePortfolio)
	}
	if m.files != nil {
		edges = append(edges, lease.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, lease.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lease.EdgePortfolio:
		if id := m.portfolio; id != nil {
			return []ent.Value{*id}
		}
	case lease.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case lease.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfiles != nil {
		edges = append(edges, lease.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, lease.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeaseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lease.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case lease.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedportfolio {
		edges = append(edges, lease.EdgePortfolio)
	}
	if m.clearedfiles {
		edges = append(edges, lease.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, lease.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeaseMutation) EdgeCleared(name string) bool {
	switch name {
	case lease.EdgePortfolio:
		return m.clearedportfolio
	case lease.EdgeFiles:
		return m.clearedfiles
	case lease.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeaseMutation) ClearEdge(name string) error {
	switch name {
	case lease.EdgePortfolio:
		m.ClearPortfolio()
		return nil
	}
	return fmt.Errorf("unknown Lease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeaseMutation) ResetEdge(name string) error {
	switch name {
	case lease.EdgePortfolio:
		m.ResetPortfolio()
		return nil
	case lease.EdgeFiles:
		m.ResetFiles()
		return nil
	case lease.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Lease edge %s", name)
}

// LeaseFileMutation represents an operation that mutates the LeaseFile nodes in the graph.
type LeaseFileMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	source_path      *string
	filename         *string
	file_ext         *string
	file_size        *int
	addfile_size     *int
	content_hash     *[]byte
	uploaded_at      *time.Time
	clearedFields    map[string]struct{}
	portfolio        *uuid.UUID
	clearedportfolio bool
	lease            *uuid.UUID
	clearedlease     bool
	jobs             map[uuid.UUID]struct{}
	removedjobs      map[uuid.UUID]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*LeaseFile, error)
	predicates       []predicate.LeaseFile
}

var _ ent.Mutation = (*LeaseFileMutation)(nil)

// leasefileOption allows management of the mutation configuration using functional options.
type leasefileOption func(*LeaseFileMutation)

// newLeaseFileMutation creates new mutation for the LeaseFile entity.
func newLeaseFileMutation(c config, op Op, opts ...leasefileOption) *LeaseFileMutation {
	m := &LeaseFileMutation{
		config:        c,
		op:            op,
		typ:           TypeLeaseFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeaseFileID sets the ID field of the mutation.
func withLeaseFileID(id uuid.UUID) leasefileOption {
	return func(m *LeaseFileMutation) {
		var (
			err   error
			once  sync.Once
			value *LeaseFile
		)
		m.oldValue = func(ctx context.Context) (*LeaseFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeaseFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeaseFile sets the old LeaseFile of the mutation.
func withLeaseFile(node *LeaseFile) leasefileOption {
	return func(m *LeaseFileMutation) {
		m.oldValue = func(context.Context) (*LeaseFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeaseFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeaseFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LeaseFile entities.
func (m *LeaseFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeaseFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeaseFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeaseFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPortfolioID sets the "portfolio_id" field.
func (m *LeaseFileMutation) SetPortfolioID(u uuid.UUID) {
	m.portfolio = &u
}

// PortfolioID returns the value of the "portfolio_id" field in the mutation.
func (m *LeaseFileMutation) PortfolioID() (r uuid.UUID, exists bool) {
	v := m.portfolio
	if v == nil {
		return
	}
	return *v, true
}

// OldPortfolioID returns the old "portfolio_id" field's value of the LeaseFile entity.
// If the LeaseFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseFileMutation) OldPortfolioID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPortfolioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPortfolioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPortfolioID: %w", err)
	}
	return oldValue.PortfolioID, nil
}

// ResetPortfolioID resets all changes to the "portfolio_id" field.
func (m *LeaseFileMutation) ResetPortfolioID() {
	m.portfolio = nil
}

// SetLeaseID sets the "lease_id" field.
func (m *LeaseFileMutation) SetLeaseID(u uuid.UUID) {
	m.lease = &u
}

// LeaseID returns the value of the "lease_id" field in the mutation.
func (m *LeaseFileMutation) LeaseID() (r uuid.UUID, exists bool) {
	v := m.lease
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseID returns the old "lease_id" field's value of the LeaseFile entity.
// If the LeaseFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseFileMutation) OldLeaseID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseID: %w", err)
	}
	return oldValue.LeaseID, nil
}

// ClearLeaseID clears the value of the "lease_id" field.
func (m *LeaseFileMutation) ClearLeaseID() {
	m.lease = nil
	m.clearedFields[leasefile.FieldLeaseID] = struct{}{}
}

// LeaseIDCleared returns if the "lease_id" field was cleared in this mutation.
func (m *LeaseFileMutation) LeaseIDCleared() bool {
	_, ok := m.clearedFields[leasefile.FieldLeaseID]
	return ok
}

// ResetLeaseID resets all changes to the "lease_id" field.
func (m *LeaseFileMutation) ResetLeaseID() {
	m.lease = nil
	delete(m.clearedFields, leasefile.FieldLeaseID)
}

// SetSourcePath sets the "source_path" field.
func (m *LeaseFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *LeaseFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the LeaseFile entity.
// If the LeaseFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *LeaseFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFilename sets the "filename" field.
func (m *LeaseFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *LeaseFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the LeaseFile entity.
// If the LeaseFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *LeaseFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *LeaseFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *LeaseFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the LeaseFile entity.
// If the LeaseFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *LeaseFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *LeaseFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *LeaseFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the LeaseFile entity.
// If the LeaseFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *LeaseFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *LeaseFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *LeaseFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentHash sets the "content_hash" field.
func (m *LeaseFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *LeaseFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the LeaseFile entity.
// If the LeaseFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *LeaseFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *LeaseFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *LeaseFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the LeaseFile entity.
// If the LeaseFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *LeaseFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (m *LeaseFileMutation) ClearPortfolio() {
	m.clearedportfolio = true
	m.clearedFields[leasefile.FieldPortfolioID] = struct{}{}
}

// PortfolioCleared reports if the "portfolio" edge to the Portfolio entity was cleared.
func (m *LeaseFileMutation) PortfolioCleared() bool {
	return m.clearedportfolio
}

// PortfolioIDs returns the "portfolio" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PortfolioID instead. It exists only for internal usage by the builders.
func (m *LeaseFileMutation) PortfolioIDs() (ids []uuid.UUID) {
	if id := m.portfolio; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPortfolio resets all changes to the "portfolio" edge.
func (m *LeaseFileMutation) ResetPortfolio() {
	m.portfolio = nil
	m.clearedportfolio = false
}

// ClearLease clears the "lease" edge to the Lease entity.
func (m *LeaseFileMutation) ClearLease() {
	m.clearedlease = true
	m.clearedFields[leasefile.FieldLeaseID] = struct{}{}
}

// LeaseCleared reports if the "lease" edge to the Lease entity was cleared.
func (m *LeaseFileMutation) LeaseCleared() bool {
	return m.LeaseIDCleared() || m.clearedlease
}

// LeaseIDs returns the "lease" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeaseID instead. It exists only for internal usage by the builders.
func (m *LeaseFileMutation) LeaseIDs() (ids []uuid.UUID) {
	if id := m.lease; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLease resets all changes to the "lease" edge.
func (m *LeaseFileMutation) ResetLease() {
	m.lease = nil
	m.clearedlease = false
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *LeaseFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *LeaseFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *LeaseFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *LeaseFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *LeaseFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *LeaseFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *LeaseFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the LeaseFileMutation builder.
func (m *LeaseFileMutation) Where(ps ...predicate.LeaseFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeaseFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeaseFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeaseFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeaseFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeaseFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeaseFile).
func (m *LeaseFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeaseFileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.portfolio != nil {
		fields = append(fields, leasefile.FieldPortfolioID)
	}
	if m.lease != nil {
		fields = append(fields, leasefile.FieldLeaseID)
	}
	if m.source_path != nil {
		fields = append(fields, leasefile.FieldSourcePath)
	}
	if m.filename != nil {
		fields = append(fields, leasefile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, leasefile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, leasefile.FieldFileSize)
	}
	if m.content_hash != nil {
		fields = append(fields, leasefile.FieldContentHash)
	}
	if m.uploaded_at != nil {
		fields = append(fields, leasefile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeaseFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leasefile.FieldPortfolioID:
		return m.PortfolioID()
	case leasefile.FieldLeaseID:
		return m.LeaseID()
	case leasefile.FieldSourcePath:
		return m.SourcePath()
	case leasefile.FieldFilename:
		return m.Filename()
	case leasefile.FieldFileExt:
		return m.FileExt()
	case leasefile.FieldFileSize:
		return m.FileSize()
	case leasefile.FieldContentHash:
		return m.ContentHash()
	case leasefile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeaseFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leasefile.FieldPortfolioID:
		return m.OldPortfolioID(ctx)
	case leasefile.FieldLeaseID:
		return m.OldLeaseID(ctx)
	case leasefile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case leasefile.FieldFilename:
		return m.OldFilename(ctx)
	case leasefile.FieldFileExt:
		return m.OldFileExt(ctx)
	case leasefile.FieldFileSize:
		return m.OldFileSize(ctx)
	case leasefile.FieldContentHash:
		return m.OldContentHash(ctx)
	case leasefile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeaseFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leasefile.FieldPortfolioID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPortfolioID(v)
		return nil
	case leasefile.FieldLeaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseID(v)
		return nil
	case leasefile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case leasefile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case leasefile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case leasefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case leasefile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case leasefile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeaseFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeaseFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, leasefile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeaseFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case leasefile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case leasefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown LeaseFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeaseFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leasefile.FieldLeaseID) {
		fields = append(fields, leasefile.FieldLeaseID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeaseFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeaseFileMutation) ClearField(name string) error {
	switch name {
	case leasefile.FieldLeaseID:
		m.ClearLeaseID()
		return nil
	}
	return fmt.Errorf("unknown LeaseFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeaseFileMutation) ResetField(name string) error {
	switch name {
	case leasefile.FieldPortfolioID:
		m.ResetPortfolioID()
		return nil
	case leasefile.FieldLeaseID:
		m.ResetLeaseID()
		return nil
	case leasefile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case leasefile.FieldFilename:
		m.ResetFilename()
		return nil
	case leasefile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case leasefile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case leasefile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case leasefile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown LeaseFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeaseFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.portfolio != nil {
		edges = append(edges, leasefile.EdgePortfolio)
	}
	if m.lease != nil {
		edges = append(edges, leasefile.EdgeLease)
	}
	if m.jobs != nil {
		edges = append(edges, leasefile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeaseFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case leasefile.EdgePortfolio:
		if id := m.portfolio; id != nil {
			return []ent.Value{*id}
		}
	case leasefile.EdgeLease:
		if id := m.lease; id != nil {
			return []ent.Value{*id}
		}
	case leasefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeaseFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobs != nil {
		edges = append(edges, leasefile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeaseFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case leasefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeaseFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedportfolio {
		edges = append(edges, leasefile.EdgePortfolio)
	}
	if m.clearedlease {
		edges = append(edges, leasefile.EdgeLease)
	}
	if m.clearedjobs {
		edges = append(edges, leasefile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeaseFileMutation) EdgeCleared(name string) bool {
	switch name {
	case leasefile.EdgePortfolio:
		return m.clearedportfolio
	case leasefile.EdgeLease:
		return m.clearedlease
	case leasefile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeaseFileMutation) ClearEdge(name string) error {
	switch name {
	case leasefile.EdgePortfolio:
		m.ClearPortfolio()
		return nil
	case leasefile.EdgeLease:
		m.ClearLease()
		return nil
	}
	return fmt.Errorf("unknown LeaseFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeaseFileMutation) ResetEdge(name string) error {
	switch name {
	case leasefile.EdgePortfolio:
		m.ResetPortfolio()
		return nil
	case leasefile.EdgeLease:
		m.ResetLease()
		return nil
	case leasefile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown LeaseFile edge %s", name)
}

// PortfolioMutation represents an operation that mutates the Portfolio nodes in the graph.
type PortfolioMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	region        *string
	description   *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	leases        map[uuid.UUID]struct{}
	removedleases map[uuid.UUID]struct{}
	clearedleases bool
	files         map[uuid.UUID]struct{}
	removedfiles  map[uuid.UUID]struct{}
	clearedfiles  bool
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*Portfolio, error)
	predicates    []predicate.Portfolio
}

var _ ent.Mutation = (*PortfolioMutation)(nil)

// portfolioOption allows management of the mutation configuration using functional options.
type portfolioOption func(*PortfolioMutation)

// newPortfolioMutation creates new mutation for the Portfolio entity.
func newPortfolioMutation(c config, op Op, opts ...portfolioOption) *PortfolioMutation {
	m := &PortfolioMutation{
		config:        c,
		op:            op,
		typ:           TypePortfolio,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPortfolioID sets the ID field of the mutation.
func withPortfolioID(id uuid.UUID) portfolioOption {
	return func(m *PortfolioMutation) {
		var (
			err   error
			once  sync.Once
			value *Portfolio
		)
		m.oldValue = func(ctx context.Context) (*Portfolio, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Portfolio.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPortfolio sets the old Portfolio of the mutation.
func withPortfolio(node *Portfolio) portfolioOption {
	return func(m *PortfolioMutation) {
		m.oldValue = func(context.Context) (*Portfolio, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PortfolioMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PortfolioMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Portfolio entities.
func (m *PortfolioMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PortfolioMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PortfolioMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Portfolio.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PortfolioMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PortfolioMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PortfolioMutation) ResetName() {
	m.name = nil
}

// SetRegion sets the "region" field.
func (m *PortfolioMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *PortfolioMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldRegion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ClearRegion clears the value of the "region" field.
func (m *PortfolioMutation) ClearRegion() {
	m.region = nil
	m.clearedFields[portfolio.FieldRegion] = struct{}{}
}

// RegionCleared returns if the "region" field was cleared in this mutation.
func (m *PortfolioMutation) RegionCleared() bool {
	_, ok := m.clearedFields[portfolio.FieldRegion]
	return ok
}

// ResetRegion resets all changes to the "region" field.
func (m *PortfolioMutation) ResetRegion() {
	m.region = nil
	delete(m.clearedFields, portfolio.FieldRegion)
}

// SetDescription sets the "description" field.
func (m *PortfolioMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PortfolioMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PortfolioMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[portfolio.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PortfolioMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[portfolio.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PortfolioMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, portfolio.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *PortfolioMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PortfolioMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PortfolioMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PortfolioMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PortfolioMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PortfolioMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddLeaseIDs adds the "leases" edge to the Lease entity by ids.
func (m *PortfolioMutation) AddLeaseIDs(ids ...uuid.UUID) {
	if m.leases == nil {
		m.leases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.leases[ids[i]] = struct{}{}
	}
}

// ClearLeases clears the "leases" edge to the Lease entity.
func (m *PortfolioMutation) ClearLeases() {
	m.clearedleases = true
}

// LeasesCleared reports if the "leases" edge to the Lease entity was cleared.
func (m *PortfolioMutation) LeasesCleared() bool {
	return m.clearedleases
}

// RemoveLeaseIDs removes the "leases" edge to the Lease entity by IDs.
func (m *PortfolioMutation) RemoveLeaseIDs(ids ...uuid.UUID) {
	if m.removedleases == nil {
		m.removedleases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.leases, ids[i])
		m.removedleases[ids[i]] = struct{}{}
	}
}

// RemovedLeases returns the removed IDs of the "leases" edge to the Lease entity.
func (m *PortfolioMutation) RemovedLeasesIDs() (ids []uuid.UUID) {
	for id := range m.removedleases {
		ids = append(ids, id)
	}
	return
}

// LeasesIDs returns the "leases" edge IDs in the mutation.
func (m *PortfolioMutation) LeasesIDs() (ids []uuid.UUID) {
	for id := range m.leases {
		ids = append(ids, id)
	}
	return
}

// ResetLeases resets all changes to the "leases" edge.
func (m *PortfolioMutation) ResetLeases() {
	m.leases = nil
	m.clearedleases = false
	m.removedleases = nil
}

// AddFileIDs adds the "files" edge to the LeaseFile entity by ids.
func (m *PortfolioMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the LeaseFile entity.
func (m *PortfolioMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the LeaseFile entity was cleared.
func (m *PortfolioMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the LeaseFile entity by IDs.
func (m *PortfolioMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the LeaseFile entity.
func (m *PortfolioMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *PortfolioMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *PortfolioMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *PortfolioMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *PortfolioMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *PortfolioMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *PortfolioMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *PortfolioMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *PortfolioMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *PortfolioMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the PortfolioMutation builder.
func (m *PortfolioMutation) Where(ps ...predicate.Portfolio) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PortfolioMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PortfolioMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Portfolio, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PortfolioMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PortfolioMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Portfolio).
func (m *PortfolioMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PortfolioMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, portfolio.FieldName)
	}
	if m.region != nil {
		fields = append(fields, portfolio.FieldRegion)
	}
	if m.description != nil {
		fields = append(fields, portfolio.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, portfolio.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, portfolio.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PortfolioMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case portfolio.FieldName:
		return m.Name()
	case portfolio.FieldRegion:
		return m.Region()
	case portfolio.FieldDescription:
		return m.Description()
	case portfolio.FieldCreatedAt:
		return m.CreatedAt()
	case portfolio.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PortfolioMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case portfolio.FieldName:
		return m.OldName(ctx)
	case portfolio.FieldRegion:
		return m.OldRegion(ctx)
	case portfolio.FieldDescription:
		return m.OldDescription(ctx)
	case portfolio.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case portfolio.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Portfolio field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortfolioMutation) SetField(name string, value ent.Value) error {
	switch name {
	case portfolio.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case portfolio.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case portfolio.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case portfolio.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case portfolio.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Portfolio field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PortfolioMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PortfolioMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortfolioMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Portfolio numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PortfolioMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(portfolio.FieldRegion) {
		fields = append(fields, portfolio.FieldRegion)
	}
	if m.FieldCleared(portfolio.FieldDescription) {
		fields = append(fields, portfolio.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PortfolioMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PortfolioMutation) ClearField(name string) error {
	switch name {
	case portfolio.FieldRegion:
		m.ClearRegion()
		return nil
	case portfolio.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Portfolio nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PortfolioMutation) ResetField(name string) error {
	switch name {
	case portfolio.FieldName:
		m.ResetName()
		return nil
	case portfolio.FieldRegion:
		m.ResetRegion()
		return nil
	case portfolio.FieldDescription:
		m.ResetDescription()
		return nil
	case portfolio.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case portfolio.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Portfolio field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PortfolioMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.leases != nil {
		edges = append(edges, portfolio.EdgeLeases)
	}
	if m.files != nil {
		edges = append(edges, portfolio.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, portfolio.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PortfolioMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case portfolio.EdgeLeases:
		ids := make([]ent.Value, 0, len(m.leases))
		for id := range m.leases {
			ids = append(ids, id)
		}
		return ids
	case portfolio.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case portfolio.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PortfolioMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedleases != nil {
		edges = append(edges, portfolio.EdgeLeases)
	}
	if m.removedfiles != nil {
		edges = append(edges, portfolio.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, portfolio.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PortfolioMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case portfolio.EdgeLeases:
		ids := make([]ent.Value, 0, len(m.removedleases))
		for id := range m.removedleases {
			ids = append(ids, id)
		}
		return ids
	case portfolio.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case portfolio.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PortfolioMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedleases {
		edges = append(edges, portfolio.EdgeLeases)
	}
	if m.clearedfiles {
		edges = append(edges, portfolio.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, portfolio.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PortfolioMutation) EdgeCleared(name string) bool {
	switch name {
	case portfolio.EdgeLeases:
		return m.clearedleases
	case portfolio.EdgeFiles:
		return m.clearedfiles
	case portfolio.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PortfolioMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Portfolio unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PortfolioMutation) ResetEdge(name string) error {
	switch name {
	case portfolio.EdgeLeases:
		m.ResetLeases()
		return nil
	case portfolio.EdgeFiles:
		m.ResetFiles()
		return nil
	case portfolio.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Portfolio edge %s", name)
}
