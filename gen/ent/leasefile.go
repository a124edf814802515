// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/lease"
	"github.com/solargrid-io/lease-tracker/gen/ent/leasefile"
	"github.com/solargrid-io/lease-tracker/gen/ent/portfolio"
)

// LeaseFile is the model entity for the LeaseFile schema.
type LeaseFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PortfolioID holds the value of the "portfolio_id" field.
	PortfolioID uuid.UUID `json:"portfolio_id,omitempty"`
	// LeaseID holds the value of the "lease_id" field.
	LeaseID *uuid.UUID `json:"lease_id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeaseFileQuery when eager-loading is set.
	Edges        LeaseFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeaseFileEdges holds the relations/edges for other nodes in the graph.
type LeaseFileEdges struct {
	// Portfolio holds the value of the portfolio edge.
	Portfolio *Portfolio `json:"portfolio,omitempty"`
	// Lease holds the value of the lease edge.
	Lease *Lease `json:"lease,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PortfolioOrErr returns the Portfolio value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeaseFileEdges) PortfolioOrErr() (*Portfolio, error) {
	if e.Portfolio != nil {
		return e.Portfolio, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: portfolio.Label}
	}
	return nil, &NotLoadedError{edge: "portfolio"}
}

// LeaseOrErr returns the Lease value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeaseFileEdges) LeaseOrErr() (*Lease, error) {
	if e.Lease != nil {
		return e.Lease, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: lease.Label}
	}
	return nil, &NotLoadedError{edge: "lease"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e LeaseFileEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeaseFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leasefile.FieldLeaseID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case leasefile.FieldContentHash:
			values[i] = new([]byte)
		case leasefile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case leasefile.FieldSourcePath, leasefile.FieldFilename, leasefile.FieldFileExt:
			values[i] = new(sql.NullString)
		case leasefile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case leasefile.FieldID, leasefile.FieldPortfolioID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeaseFile fields.
func (_m *LeaseFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leasefile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case leasefile.FieldPortfolioID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field portfolio_id", values[i])
			} else if value != nil {
				_m.PortfolioID = *value
			}
		case leasefile.FieldLeaseID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field lease_id", values[i])
			} else if value.Valid {
				_m.LeaseID = new(uuid.UUID)
				*_m.LeaseID = *value.S.(*uuid.UUID)
			}
		case leasefile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case leasefile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case leasefile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case leasefile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case leasefile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case leasefile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LeaseFile.
// This includes values selected through modifiers, order, etc.
func (_m *LeaseFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPortfolio queries the "portfolio" edge of the LeaseFile entity.
func (_m *LeaseFile) QueryPortfolio() *PortfolioQuery {
	return NewLeaseFileClient(_m.config).QueryPortfolio(_m)
}

// QueryLease queries the "lease" edge of the LeaseFile entity.
func (_m *LeaseFile) QueryLease() *LeaseQuery {
	return NewLeaseFileClient(_m.config).QueryLease(_m)
}

// QueryJobs queries the "jobs" edge of the LeaseFile entity.
func (_m *LeaseFile) QueryJobs() *ExtractJobQuery {
	return NewLeaseFileClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this LeaseFile.
// Note that you need to call LeaseFile.Unwrap() before calling this method if this LeaseFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeaseFile) Update() *LeaseFileUpdateOne {
	return NewLeaseFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeaseFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeaseFile) Unwrap() *LeaseFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeaseFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeaseFile) String() string {
	var builder strings.Builder
	builder.WriteString("LeaseFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("portfolio_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PortfolioID))
	builder.WriteString(", ")
	if v := _m.LeaseID; v != nil {
		builder.WriteString("lease_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeaseFiles is a parsable slice of LeaseFile.
type LeaseFiles []*LeaseFile
